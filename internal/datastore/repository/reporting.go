package repository

import (
	"context"
	"time"
)

// UserParticipationRow is one row of the user participations projection.
type UserParticipationRow struct {
	UserID    uint
	FullName  string
	Email     string
	EventID   uint
	EventName string
	StartDate time.Time
	EndDate   time.Time
}

// EventLocationRow is one row of the events-with-location projection.
type EventLocationRow struct {
	EventID      uint
	EventName    string
	StartDate    time.Time
	EndDate      time.Time
	LocationName string
	Region       string
	Latitude     float64
	Longitude    float64
}

// SightingDetailRow is one row of the sighting details projection.
type SightingDetailRow struct {
	SightingID   uint
	SightedAt    time.Time
	LocationNote *string
	FullName     string
	EventName    string
	CommonName   string
}

// ReportingRepository provides the read-only projections consumed by
// reporting views and external callers. Pure queries, no side effects.
type ReportingRepository interface {
	// UserParticipations lists the events a user is registered for.
	UserParticipations(ctx context.Context, userID uint) ([]UserParticipationRow, error)

	// EventsWithLocation lists all events joined with their location,
	// ordered by start date.
	EventsWithLocation(ctx context.Context) ([]EventLocationRow, error)

	// SightingDetails lists an event's sightings joined with observer
	// and species, ordered by sighting time.
	SightingDetails(ctx context.Context, eventID uint) ([]SightingDetailRow, error)
}
