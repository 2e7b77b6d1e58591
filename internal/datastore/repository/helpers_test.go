package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	"github.com/mato-o/birdwatching-db-app/internal/conf"
	"github.com/mato-o/birdwatching-db-app/internal/datastore"
	"github.com/mato-o/birdwatching-db-app/internal/datastore/entities"
	"github.com/mato-o/birdwatching-db-app/internal/observability/metrics"
)

// newTestStore opens a fresh SQLite database in a temp directory. Tests
// exercise real GORM behavior, not mocks.
func newTestStore(t *testing.T) *datastore.Store {
	t.Helper()

	settings := &conf.Settings{}
	settings.Database.SQLite.Enabled = true
	settings.Database.SQLite.Path = filepath.Join(t.TempDir(), "birdwatch-test.db")

	store, err := datastore.Open(settings)
	require.NoError(t, err, "failed to open test database")

	// Attach metrics so the instrumentation path runs under test too.
	m, err := metrics.NewDatastoreMetrics(prometheus.NewRegistry())
	require.NoError(t, err, "failed to create datastore metrics")
	store.SetMetrics(m)

	t.Cleanup(func() { _ = store.Close() })
	return store
}

func newTestRepositories(t *testing.T) *Repositories {
	t.Helper()
	return New(newTestStore(t))
}

func seedLocation(t *testing.T, repos *Repositories) *entities.Location {
	t.Helper()
	location, err := repos.Locations.Create(context.Background(), "Oak Grove", "North", 61.4978, 23.7610)
	require.NoError(t, err, "failed to seed location")
	return location
}

func seedUser(t *testing.T, repos *Repositories, fullName, email string) *entities.User {
	t.Helper()
	user, err := repos.Users.Add(context.Background(), fullName, email)
	require.NoError(t, err, "failed to seed user %s", email)
	return user
}

func seedEvent(t *testing.T, repos *Repositories, name string, locationID uint, start, end time.Time) *entities.Event {
	t.Helper()
	event, err := repos.Events.Create(context.Background(), name, locationID, start, end)
	require.NoError(t, err, "failed to seed event %s", name)
	return event
}

func seedSpecies(t *testing.T, repos *Repositories, commonName, scientificName string) *entities.BirdSpecies {
	t.Helper()
	species, err := repos.Species.Create(context.Background(), commonName, scientificName)
	require.NoError(t, err, "failed to seed species %s", commonName)
	return species
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
