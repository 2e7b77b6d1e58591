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

// participationRepository implements ParticipationRepository.
type participationRepository struct {
	store *datastore.Store
}

// NewParticipationRepository creates a new ParticipationRepository.
func NewParticipationRepository(store *datastore.Store) ParticipationRepository {
	return &participationRepository{store: store}
}

func (r *participationRepository) Register(ctx context.Context, userID, eventID uint) (*entities.Participation, error) {
	start := time.Now()

	participation := &entities.Participation{
		UserID:  userID,
		EventID: eventID,
	}

	err := translate(r.store.Transaction(ctx, func(tx *gorm.DB) error {
		// Lock both parents before the existence checks are read. A
		// concurrent delete_user against the same user blocks on this
		// lock instead of racing the insert.
		var user entities.User
		if err := lockRow(r.store, tx, &user, userID, ErrUserNotFound); err != nil {
			return err
		}
		var event entities.Event
		if err := lockRow(r.store, tx, &event, eventID, ErrEventNotFound); err != nil {
			return err
		}

		// Lock the participation slot, then check it. Two simultaneous
		// registrations for the same pair serialize here; the second one
		// sees the row and is rejected.
		var existing entities.Participation
		err := r.store.Locked(tx).
			Where("user_id = ? AND event_id = ?", userID, eventID).
			First(&existing).Error
		if err == nil {
			return ErrAlreadyRegistered
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		if err := tx.Omit(clause.Associations).Create(participation).Error; err != nil {
			// SQLite has no row locks, so both transactions can pass the
			// slot check there; the composite primary key rejects the
			// loser on insert.
			if datastore.Categorize(err) == datastore.CategoryUniqueViolation {
				return ErrAlreadyRegistered
			}
			return err
		}
		return nil
	}))

	r.store.Track("register_user", tableParticipations, start, err)
	if err != nil {
		return nil, err
	}
	return participation, nil
}

func (r *participationRepository) Unregister(ctx context.Context, userID, eventID uint) error {
	start := time.Now()

	err := translate(r.store.Transaction(ctx, func(tx *gorm.DB) error {
		res := tx.Where("user_id = ? AND event_id = ?", userID, eventID).
			Delete(&entities.Participation{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrParticipationNotFound
		}
		return nil
	}))

	r.store.Track("unregister_user", tableParticipations, start, err)
	return err
}

func (r *participationRepository) ListForUser(ctx context.Context, userID uint) ([]entities.Participation, error) {
	var participations []entities.Participation
	err := r.store.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&participations).Error
	if err != nil {
		return nil, translate(err)
	}
	return participations, nil
}

func (r *participationRepository) CountForUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.store.DB.WithContext(ctx).
		Model(&entities.Participation{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, translate(err)
	}
	return count, nil
}
