// Package repository provides the domain registries over the relational
// store: identity, events, participation, sightings, species, weather and
// reporting projections.
package repository

import (
	"fmt"

	"github.com/mato-o/birdwatching-db-app/internal/errors"
)

// Failure taxonomy. Every repository operation fails with exactly one of
// these base sentinels (usually via an entity-specific wrapper below), so
// callers can match the class with errors.Is without string comparison.
var (
	// ErrNotFound indicates a referenced entity is absent.
	ErrNotFound = errors.NewStd("record not found")

	// ErrDuplicateKey indicates a unique-constraint violation on a
	// natural key (email, event name+start, sighting tuple).
	ErrDuplicateKey = errors.NewStd("duplicate key")

	// ErrAlreadyExists indicates a domain-level duplicate, such as
	// registering a user twice for the same event.
	ErrAlreadyExists = errors.NewStd("already exists")

	// ErrPreconditionFailed indicates dependent rows block a destructive
	// operation.
	ErrPreconditionFailed = errors.NewStd("precondition failed")

	// ErrConstraintViolation indicates a store-level check failed, such
	// as an event ending before it starts.
	ErrConstraintViolation = errors.NewStd("constraint violation")

	// ErrContention indicates a lock wait timed out or a deadlock was
	// detected. The operation made no change; the caller may retry it.
	ErrContention = errors.NewStd("lock contention, operation may be retried")
)

// Entity-specific wrappers. Each satisfies errors.Is for both itself and
// its base sentinel.
var (
	ErrUserNotFound          = fmt.Errorf("user %w", ErrNotFound)
	ErrLocationNotFound      = fmt.Errorf("location %w", ErrNotFound)
	ErrEventNotFound         = fmt.Errorf("event %w", ErrNotFound)
	ErrSpeciesNotFound       = fmt.Errorf("bird species %w", ErrNotFound)
	ErrParticipationNotFound = fmt.Errorf("participation %w", ErrNotFound)
	ErrSightingNotFound      = fmt.Errorf("sighting %w", ErrNotFound)

	// ErrAlreadyRegistered rejects a second registration for the same
	// (user, event) pair.
	ErrAlreadyRegistered = fmt.Errorf("user is already registered for this event: %w", ErrAlreadyExists)

	// ErrUserHasParticipations blocks user deletion while event
	// registrations reference the user.
	ErrUserHasParticipations = fmt.Errorf("user has event registrations: %w", ErrPreconditionFailed)

	// ErrUserHasSightings blocks user deletion while logged sightings
	// reference the user.
	ErrUserHasSightings = fmt.Errorf("user has logged sightings: %w", ErrPreconditionFailed)
)
