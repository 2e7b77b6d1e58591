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

// eventRepository implements EventRepository.
type eventRepository struct {
	store *datastore.Store
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(store *datastore.Store) EventRepository {
	return &eventRepository{store: store}
}

func (r *eventRepository) Create(ctx context.Context, name string, locationID uint, startDate, endDate time.Time) (*entities.Event, error) {
	start := time.Now()

	event := &entities.Event{
		Name:       name,
		LocationID: locationID,
		StartDate:  startDate,
		EndDate:    endDate,
	}

	err := translate(r.store.Transaction(ctx, func(tx *gorm.DB) error {
		// Lock the location so it cannot disappear between the check and
		// the insert.
		var location entities.Location
		if err := lockRow(r.store, tx, &location, locationID, ErrLocationNotFound); err != nil {
			return err
		}

		// Omit associations so GORM doesn't try to save the zero-valued
		// Location field alongside the event.
		return tx.Omit(clause.Associations).Create(event).Error
	}))

	r.store.Track("create_event", tableEvents, start, err)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (r *eventRepository) GetByID(ctx context.Context, id uint) (*entities.Event, error) {
	var event entities.Event
	err := r.store.DB.WithContext(ctx).First(&event, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, translate(err)
	}
	return &event, nil
}

func (r *eventRepository) Cancel(ctx context.Context, id uint) error {
	start := time.Now()

	err := translate(r.store.Transaction(ctx, func(tx *gorm.DB) error {
		var event entities.Event
		if err := lockRow(r.store, tx, &event, id, ErrEventNotFound); err != nil {
			return err
		}
		return tx.Delete(&entities.Event{}, id).Error
	}))

	r.store.Track("cancel_event", tableEvents, start, err)
	return err
}

func (r *eventRepository) Duration(ctx context.Context, id uint) (int, error) {
	event, err := r.GetByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return int(event.EndDate.Sub(event.StartDate).Hours() / 24), nil
}
