package repository

import (
	"context"

	"github.com/mato-o/birdwatching-db-app/internal/datastore/entities"
)

// ParticipationRepository manages event registrations, at most one per
// (user, event) pair.
type ParticipationRepository interface {
	// Register adds a registration. Both parents are exclusive-locked so
	// a concurrent delete cannot remove them mid-operation; a missing
	// user or event fails with ErrUserNotFound or ErrEventNotFound. The
	// participation slot is then locked and checked: a second
	// registration for the same pair fails with ErrAlreadyRegistered,
	// including when two callers race; at most one insert succeeds.
	Register(ctx context.Context, userID, eventID uint) (*entities.Participation, error)

	// Unregister removes a registration. Fails with
	// ErrParticipationNotFound when no row was removed.
	Unregister(ctx context.Context, userID, eventID uint) error

	// CountForUser returns the number of events the user is registered
	// for.
	CountForUser(ctx context.Context, userID uint) (int64, error)

	// ListForUser returns the user's registrations ordered by creation
	// time.
	ListForUser(ctx context.Context, userID uint) ([]entities.Participation, error)
}
