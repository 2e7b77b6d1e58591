package repository

import (
	"context"

	"github.com/mato-o/birdwatching-db-app/internal/datastore/entities"
)

// LocationRepository provides access to birdwatching sites. Locations are
// seed data; nothing in the service deletes them.
type LocationRepository interface {
	// Create adds a location. Fails with ErrDuplicateKey when the
	// (name, region) pair already exists.
	Create(ctx context.Context, name, region string, latitude, longitude float64) (*entities.Location, error)

	// GetByID retrieves a location. Fails with ErrLocationNotFound.
	GetByID(ctx context.Context, id uint) (*entities.Location, error)

	// GetAll retrieves all locations ordered by region and name.
	GetAll(ctx context.Context) ([]entities.Location, error)
}
