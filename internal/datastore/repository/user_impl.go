package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/mato-o/birdwatching-db-app/internal/datastore"
	"github.com/mato-o/birdwatching-db-app/internal/datastore/entities"
	"github.com/mato-o/birdwatching-db-app/internal/errors"
)

// userRepository implements UserRepository.
type userRepository struct {
	store *datastore.Store
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(store *datastore.Store) UserRepository {
	return &userRepository{store: store}
}

func (r *userRepository) Add(ctx context.Context, fullName, email string) (*entities.User, error) {
	start := time.Now()

	user := &entities.User{
		FullName: fullName,
		Email:    email,
	}

	err := translate(r.store.Transaction(ctx, func(tx *gorm.DB) error {
		return tx.Create(user).Error
	}))

	r.store.Track("add_user", tableUsers, start, err)
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	var user entities.User
	err := r.store.DB.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *userRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.store.DB.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, translate(err)
	}
	return count > 0, nil
}

func (r *userRepository) ChangeEmail(ctx context.Context, id uint, newEmail string) error {
	start := time.Now()

	err := translate(r.store.Transaction(ctx, func(tx *gorm.DB) error {
		res := tx.Model(&entities.User{}).Where("id = ?", id).Update("email", newEmail)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrUserNotFound
		}
		return nil
	}))

	r.store.Track("change_email", tableUsers, start, err)
	return err
}

func (r *userRepository) Delete(ctx context.Context, id uint) error {
	start := time.Now()

	err := translate(r.store.Transaction(ctx, func(tx *gorm.DB) error {
		// Lock the user row before reading the dependency counts so a
		// concurrent registration against the same user serializes with
		// this delete instead of racing it.
		var user entities.User
		if err := lockRow(r.store, tx, &user, id, ErrUserNotFound); err != nil {
			return err
		}

		var participations int64
		if err := tx.Model(&entities.Participation{}).
			Where("user_id = ?", id).
			Count(&participations).Error; err != nil {
			return err
		}
		if participations > 0 {
			return ErrUserHasParticipations
		}

		var sightings int64
		if err := tx.Model(&entities.Sighting{}).
			Where("user_id = ?", id).
			Count(&sightings).Error; err != nil {
			return err
		}
		if sightings > 0 {
			return ErrUserHasSightings
		}

		return tx.Delete(&entities.User{}, id).Error
	}))

	r.store.Track("delete_user", tableUsers, start, err)
	return err
}
