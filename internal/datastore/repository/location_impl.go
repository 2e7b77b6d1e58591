package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/mato-o/birdwatching-db-app/internal/datastore"
	"github.com/mato-o/birdwatching-db-app/internal/datastore/entities"
	"github.com/mato-o/birdwatching-db-app/internal/errors"
)

// locationRepository implements LocationRepository.
type locationRepository struct {
	store *datastore.Store
}

// NewLocationRepository creates a new LocationRepository.
func NewLocationRepository(store *datastore.Store) LocationRepository {
	return &locationRepository{store: store}
}

func (r *locationRepository) Create(ctx context.Context, name, region string, latitude, longitude float64) (*entities.Location, error) {
	start := time.Now()

	location := &entities.Location{
		Name:      name,
		Region:    region,
		Latitude:  latitude,
		Longitude: longitude,
	}

	err := translate(r.store.Transaction(ctx, func(tx *gorm.DB) error {
		return tx.Create(location).Error
	}))

	r.store.Track("create_location", tableLocations, start, err)
	if err != nil {
		return nil, err
	}
	return location, nil
}

func (r *locationRepository) GetByID(ctx context.Context, id uint) (*entities.Location, error) {
	var location entities.Location
	err := r.store.DB.WithContext(ctx).First(&location, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrLocationNotFound
	}
	if err != nil {
		return nil, translate(err)
	}
	return &location, nil
}

func (r *locationRepository) GetAll(ctx context.Context) ([]entities.Location, error) {
	var locations []entities.Location
	err := r.store.DB.WithContext(ctx).
		Order("region ASC").
		Order("name ASC").
		Find(&locations).Error
	if err != nil {
		return nil, translate(err)
	}
	return locations, nil
}
