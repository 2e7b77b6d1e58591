package repository

import (
	"context"
	"time"

	"github.com/mato-o/birdwatching-db-app/internal/datastore/entities"
)

// WeatherRepository manages the weather records captured during events.
type WeatherRepository interface {
	// Record stores a weather observation for an event. The event is
	// exclusive-locked and validated; fails with ErrEventNotFound. A
	// second record for the same event and time fails with
	// ErrDuplicateKey.
	Record(ctx context.Context, eventID uint, recordedAt time.Time, temperature, windSpeed float64, humidity int, conditions string) (*entities.WeatherRecord, error)

	// ListForEvent returns the event's weather records ordered by
	// observation time.
	ListForEvent(ctx context.Context, eventID uint) ([]entities.WeatherRecord, error)

	// Latest returns the most recent weather record across all events,
	// or nil when none exist.
	Latest(ctx context.Context) (*entities.WeatherRecord, error)
}
