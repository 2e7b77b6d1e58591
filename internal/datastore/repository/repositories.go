package repository

import "github.com/mato-o/birdwatching-db-app/internal/datastore"

// Repositories bundles all registries over one store.
type Repositories struct {
	Users          UserRepository
	Locations      LocationRepository
	Events         EventRepository
	Participations ParticipationRepository
	Sightings      SightingRepository
	Species        SpeciesRepository
	Weather        WeatherRepository
	Reports        ReportingRepository
}

// New creates the full repository set.
func New(store *datastore.Store) *Repositories {
	return &Repositories{
		Users:          NewUserRepository(store),
		Locations:      NewLocationRepository(store),
		Events:         NewEventRepository(store),
		Participations: NewParticipationRepository(store),
		Sightings:      NewSightingRepository(store),
		Species:        NewSpeciesRepository(store),
		Weather:        NewWeatherRepository(store),
		Reports:        NewReportingRepository(store),
	}
}
