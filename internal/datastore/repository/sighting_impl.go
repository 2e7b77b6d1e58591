package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mato-o/birdwatching-db-app/internal/datastore"
	"github.com/mato-o/birdwatching-db-app/internal/datastore/entities"
	"github.com/mato-o/birdwatching-db-app/internal/errors"
)

// sightingRepository implements SightingRepository.
type sightingRepository struct {
	store *datastore.Store
}

// NewSightingRepository creates a new SightingRepository.
func NewSightingRepository(store *datastore.Store) SightingRepository {
	return &sightingRepository{store: store}
}

func (r *sightingRepository) Log(ctx context.Context, userID, eventID, birdID uint, sightedAt time.Time, locationNote string) (*entities.Sighting, error) {
	start := time.Now()

	sighting := &entities.Sighting{
		UserID:    userID,
		EventID:   eventID,
		BirdID:    birdID,
		SightedAt: sightedAt,
	}
	if locationNote != "" {
		sighting.LocationNote = &locationNote
	}

	err := translate(r.store.Transaction(ctx, func(tx *gorm.DB) error {
		// Fixed lock order across all sighting writers: user, event,
		// species. Concurrent calls acquire the same locks in the same
		// order and therefore cannot deadlock on each other.
		var user entities.User
		if err := lockRow(r.store, tx, &user, userID, ErrUserNotFound); err != nil {
			return err
		}
		var event entities.Event
		if err := lockRow(r.store, tx, &event, eventID, ErrEventNotFound); err != nil {
			return err
		}
		var species entities.BirdSpecies
		if err := lockRow(r.store, tx, &species, birdID, ErrSpeciesNotFound); err != nil {
			return err
		}

		return tx.Omit(clause.Associations).Create(sighting).Error
	}))

	r.store.Track("log_sighting", tableSightings, start, err)
	if err != nil {
		return nil, err
	}
	return sighting, nil
}

func (r *sightingRepository) GetByID(ctx context.Context, id uint) (*entities.Sighting, error) {
	var sighting entities.Sighting
	err := r.store.DB.WithContext(ctx).First(&sighting, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrSightingNotFound
	}
	if err != nil {
		return nil, translate(err)
	}
	return &sighting, nil
}

func (r *sightingRepository) MostCommonBird(ctx context.Context) (string, error) {
	var row struct {
		CommonName string
		Total      int64
	}

	err := r.store.DB.WithContext(ctx).
		Table(tableSightings).
		Select("bird_species.common_name AS common_name, COUNT(*) AS total").
		Joins("JOIN bird_species ON bird_species.id = sightings.bird_id").
		Group("bird_species.id, bird_species.common_name").
		Order("total DESC").
		Order("bird_species.common_name ASC"). // deterministic tie-break
		Limit(1).
		Scan(&row).Error
	if err != nil {
		return "", translate(err)
	}

	if row.Total == 0 {
		return NoSightingsSentinel, nil
	}
	return row.CommonName, nil
}

func (r *sightingRepository) CountForUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.store.DB.WithContext(ctx).
		Model(&entities.Sighting{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, translate(err)
	}
	return count, nil
}

func (r *sightingRepository) DeleteForUser(ctx context.Context, userID uint) (int64, error) {
	start := time.Now()

	var removed int64
	err := translate(r.store.Transaction(ctx, func(tx *gorm.DB) error {
		res := tx.Where("user_id = ?", userID).Delete(&entities.Sighting{})
		if res.Error != nil {
			return res.Error
		}
		removed = res.RowsAffected
		return nil
	}))

	r.store.Track("delete_sightings_for_user", tableSightings, start, err)
	if err != nil {
		return 0, err
	}
	return removed, nil
}
