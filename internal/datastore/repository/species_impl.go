package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mato-o/birdwatching-db-app/internal/datastore"
	"github.com/mato-o/birdwatching-db-app/internal/datastore/entities"
	"github.com/mato-o/birdwatching-db-app/internal/errors"
)

// speciesRepository implements SpeciesRepository.
type speciesRepository struct {
	store *datastore.Store
}

// NewSpeciesRepository creates a new SpeciesRepository.
func NewSpeciesRepository(store *datastore.Store) SpeciesRepository {
	return &speciesRepository{store: store}
}

func (r *speciesRepository) Create(ctx context.Context, commonName, scientificName string) (*entities.BirdSpecies, error) {
	start := time.Now()

	species := &entities.BirdSpecies{
		CommonName: commonName,
	}
	if scientificName != "" {
		species.ScientificName = &scientificName
	}

	err := translate(r.store.Transaction(ctx, func(tx *gorm.DB) error {
		return tx.Create(species).Error
	}))

	r.store.Track("create_species", tableBirdSpecies, start, err)
	if err != nil {
		return nil, err
	}
	return species, nil
}

func (r *speciesRepository) GetByID(ctx context.Context, id uint) (*entities.BirdSpecies, error) {
	var species entities.BirdSpecies
	err := r.store.DB.WithContext(ctx).First(&species, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSpeciesNotFound
	}
	if err != nil {
		return nil, translate(err)
	}
	return &species, nil
}

func (r *speciesRepository) GetByCommonName(ctx context.Context, commonName string) (*entities.BirdSpecies, error) {
	var species entities.BirdSpecies
	err := r.store.DB.WithContext(ctx).
		Where("common_name = ?", commonName).
		First(&species).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSpeciesNotFound
	}
	if err != nil {
		return nil, translate(err)
	}
	return &species, nil
}

func (r *speciesRepository) Delete(ctx context.Context, id uint) error {
	start := time.Now()

	err := translate(r.store.Transaction(ctx, func(tx *gorm.DB) error {
		var species entities.BirdSpecies
		if err := lockRow(r.store, tx, &species, id, ErrSpeciesNotFound); err != nil {
			return err
		}

		// Audit entry and delete commit or roll back together.
		audit := entities.SpeciesAudit{
			EntryID:    uuid.NewString(),
			SpeciesID:  species.ID,
			CommonName: species.CommonName,
			Action:     "delete",
		}
		if err := tx.Create(&audit).Error; err != nil {
			return err
		}

		return tx.Delete(&entities.BirdSpecies{}, id).Error
	}))

	r.store.Track("delete_species", tableBirdSpecies, start, err)
	return err
}
