package repository

import (
	"context"

	"github.com/mato-o/birdwatching-db-app/internal/datastore/entities"
)

// SpeciesRepository provides access to the bird species catalog. The
// catalog is managed externally; the service reads it and performs the
// audited delete.
type SpeciesRepository interface {
	// Create adds a species. Fails with ErrDuplicateKey when the common
	// name is taken. scientificName may be empty.
	Create(ctx context.Context, commonName, scientificName string) (*entities.BirdSpecies, error)

	// GetByID retrieves a species. Fails with ErrSpeciesNotFound.
	GetByID(ctx context.Context, id uint) (*entities.BirdSpecies, error)

	// GetByCommonName retrieves a species by its common name. Fails with
	// ErrSpeciesNotFound.
	GetByCommonName(ctx context.Context, commonName string) (*entities.BirdSpecies, error)

	// Delete removes a species and writes a SpeciesAudit entry in the
	// same transaction, replacing a database-side trigger. Fails with
	// ErrSpeciesNotFound when absent; sightings referencing the species
	// surface as ErrConstraintViolation through the foreign key.
	Delete(ctx context.Context, id uint) error
}
