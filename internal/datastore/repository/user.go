package repository

import (
	"context"

	"github.com/mato-o/birdwatching-db-app/internal/datastore/entities"
)

// UserRepository manages the birdwatcher lifecycle.
type UserRepository interface {
	// Add registers a new user. The registration date defaults to the
	// creation time. Fails with ErrDuplicateKey when the email is
	// already registered.
	Add(ctx context.Context, fullName, email string) (*entities.User, error)

	// GetByID retrieves a user. Fails with ErrUserNotFound.
	GetByID(ctx context.Context, id uint) (*entities.User, error)

	// Exists reports whether a user with the given id is present.
	Exists(ctx context.Context, id uint) (bool, error)

	// ChangeEmail updates the user's email address. Fails with
	// ErrUserNotFound when no row was updated and with ErrDuplicateKey
	// when the new address collides with another user.
	ChangeEmail(ctx context.Context, id uint, newEmail string) error

	// Delete removes a user. The user row is exclusive-locked first to
	// serialize concurrent deletes and registrations against the same
	// user. Fails with ErrUserNotFound when the user does not exist,
	// with ErrUserHasParticipations while event registrations reference
	// the user, and with ErrUserHasSightings while logged sightings do.
	Delete(ctx context.Context, id uint) error
}
