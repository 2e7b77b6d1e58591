package repository

import (
	"context"
	"time"

	"github.com/mato-o/birdwatching-db-app/internal/datastore/entities"
)

// EventRepository manages the event lifecycle.
type EventRepository interface {
	// Create schedules a new event. The location is exclusive-locked and
	// validated inside the transaction; a missing location fails with
	// ErrLocationNotFound. An end date before the start date violates
	// the store-side CHECK and fails with ErrConstraintViolation. A
	// duplicate (name, start date) pair fails with ErrDuplicateKey.
	Create(ctx context.Context, name string, locationID uint, startDate, endDate time.Time) (*entities.Event, error)

	// GetByID retrieves an event. Fails with ErrEventNotFound.
	GetByID(ctx context.Context, id uint) (*entities.Event, error)

	// Cancel removes an event. The event row is exclusive-locked first;
	// fails with ErrEventNotFound when absent. Dependent registrations
	// or sightings surface as ErrConstraintViolation through the foreign
	// keys; there is no additional dependent-row guard.
	Cancel(ctx context.Context, id uint) error

	// Duration returns the event length in whole days. An event running
	// 2025-04-01 through 2025-04-03 lasts 2 days. Fails with
	// ErrEventNotFound.
	Duration(ctx context.Context, id uint) (int, error)
}
