package repository

import (
	"context"
	"time"

	"github.com/mato-o/birdwatching-db-app/internal/datastore/entities"
)

// NoSightingsSentinel is the normal result of MostCommonBird when no
// sightings have been logged. It is not an error.
const NoSightingsSentinel = "No sightings recorded"

// SightingRepository manages the sighting log. Sightings are immutable
// once logged; only the administrative DeleteForUser removes them.
type SightingRepository interface {
	// Log records a sighting. All three parent rows are exclusive-locked
	// in a fixed order (user, then event, then species) so concurrent
	// calls cannot deadlock on each other; a missing parent fails with
	// the matching not-found error. A duplicate (user, event, bird,
	// timestamp) tuple fails with ErrDuplicateKey. locationNote may be
	// empty.
	Log(ctx context.Context, userID, eventID, birdID uint, sightedAt time.Time, locationNote string) (*entities.Sighting, error)

	// GetByID retrieves a sighting. Fails with ErrSightingNotFound.
	GetByID(ctx context.Context, id uint) (*entities.Sighting, error)

	// MostCommonBird returns the common name of the species with the
	// most sightings. Ties break lexicographically by common name
	// ascending so the result is deterministic. When no sightings exist
	// it returns NoSightingsSentinel with a nil error.
	MostCommonBird(ctx context.Context) (string, error)

	// CountForUser returns the number of sightings logged by the user.
	CountForUser(ctx context.Context, userID uint) (int64, error)

	// DeleteForUser removes all sightings logged by the user and returns
	// how many were removed. Used to clear the deletion guard before a
	// user is removed.
	DeleteForUser(ctx context.Context, userID uint) (int64, error)
}
