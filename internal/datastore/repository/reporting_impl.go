package repository

import (
	"context"

	"github.com/mato-o/birdwatching-db-app/internal/datastore"
)

// reportingRepository implements ReportingRepository.
type reportingRepository struct {
	store *datastore.Store
}

// NewReportingRepository creates a new ReportingRepository.
func NewReportingRepository(store *datastore.Store) ReportingRepository {
	return &reportingRepository{store: store}
}

func (r *reportingRepository) UserParticipations(ctx context.Context, userID uint) ([]UserParticipationRow, error) {
	var rows []UserParticipationRow
	err := r.store.DB.WithContext(ctx).
		Table(tableParticipations).
		Select(`users.id AS user_id, users.full_name, users.email,
			events.id AS event_id, events.name AS event_name,
			events.start_date, events.end_date`).
		Joins("JOIN users ON users.id = participations.user_id").
		Joins("JOIN events ON events.id = participations.event_id").
		Where("participations.user_id = ?", userID).
		Order("events.start_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func (r *reportingRepository) EventsWithLocation(ctx context.Context) ([]EventLocationRow, error) {
	var rows []EventLocationRow
	err := r.store.DB.WithContext(ctx).
		Table(tableEvents).
		Select(`events.id AS event_id, events.name AS event_name,
			events.start_date, events.end_date,
			locations.name AS location_name, locations.region,
			locations.latitude, locations.longitude`).
		Joins("JOIN locations ON locations.id = events.location_id").
		Order("events.start_date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

func (r *reportingRepository) SightingDetails(ctx context.Context, eventID uint) ([]SightingDetailRow, error) {
	var rows []SightingDetailRow
	err := r.store.DB.WithContext(ctx).
		Table(tableSightings).
		Select(`sightings.id AS sighting_id, sightings.sighted_at,
			sightings.location_note,
			users.full_name, events.name AS event_name,
			bird_species.common_name`).
		Joins("JOIN users ON users.id = sightings.user_id").
		Joins("JOIN events ON events.id = sightings.event_id").
		Joins("JOIN bird_species ON bird_species.id = sightings.bird_id").
		Where("sightings.event_id = ?", eventID).
		Order("sightings.sighted_at ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, translate(err)
	}
	return rows, nil
}
