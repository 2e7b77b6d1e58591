package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mato-o/birdwatching-db-app/internal/datastore/entities"
)

func TestLogSighting(t *testing.T) {
	t.Parallel()

	repos := newTestRepositories(t)
	location := seedLocation(t, repos)
	user := seedUser(t, repos, "Alice Example", "alice@example.com")
	event := seedEvent(t, repos, "Spring Birdwatch", location.ID, date(2025, 4, 1), date(2025, 4, 3))
	species := seedSpecies(t, repos, "Eurasian Wren", "Troglodytes troglodytes")

	sighting, err := repos.Sightings.Log(context.Background(), user.ID, event.ID, species.ID,
		date(2025, 4, 1).Add(7*time.Hour), "north shore reeds")
	require.NoError(t, err)
	require.NotZero(t, sighting.ID)
	require.NotNil(t, sighting.LocationNote)
	assert.Equal(t, "north shore reeds", *sighting.LocationNote)
}

func TestLogSighting_MissingBird(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	repos := New(store)
	location := seedLocation(t, repos)
	user := seedUser(t, repos, "Alice Example", "alice@example.com")
	event := seedEvent(t, repos, "Spring Birdwatch", location.ID, date(2025, 4, 1), date(2025, 4, 3))

	_, err := repos.Sightings.Log(context.Background(), user.ID, event.ID, 9999,
		date(2025, 4, 1).Add(7*time.Hour), "")
	require.ErrorIs(t, err, ErrSpeciesNotFound)
	require.ErrorIs(t, err, ErrNotFound)

	// Nothing may have been inserted.
	var count int64
	require.NoError(t, store.DB.Model(&entities.Sighting{}).Count(&count).Error)
	assert.Zero(t, count, "failed log_sighting must not leave a row behind")
}

func TestLogSighting_DuplicateTuple(t *testing.T) {
	t.Parallel()

	repos := newTestRepositories(t)
	location := seedLocation(t, repos)
	user := seedUser(t, repos, "Alice Example", "alice@example.com")
	event := seedEvent(t, repos, "Spring Birdwatch", location.ID, date(2025, 4, 1), date(2025, 4, 3))
	species := seedSpecies(t, repos, "Eurasian Wren", "Troglodytes troglodytes")

	seenAt := date(2025, 4, 1).Add(7 * time.Hour)
	_, err := repos.Sightings.Log(context.Background(), user.ID, event.ID, species.ID, seenAt, "")
	require.NoError(t, err)

	_, err = repos.Sightings.Log(context.Background(), user.ID, event.ID, species.ID, seenAt, "")
	require.ErrorIs(t, err, ErrDuplicateKey)
}

func TestMostCommonBird(t *testing.T) {
	t.Parallel()

	repos := newTestRepositories(t)
	location := seedLocation(t, repos)
	user := seedUser(t, repos, "Alice Example", "alice@example.com")
	event := seedEvent(t, repos, "Spring Birdwatch", location.ID, date(2025, 4, 1), date(2025, 4, 3))
	wren := seedSpecies(t, repos, "Eurasian Wren", "Troglodytes troglodytes")
	robin := seedSpecies(t, repos, "European Robin", "Erithacus rubecula")

	base := date(2025, 4, 1)
	for i := range 3 {
		_, err := repos.Sightings.Log(context.Background(), user.ID, event.ID, wren.ID,
			base.Add(time.Duration(i)*time.Hour), "")
		require.NoError(t, err)
	}
	_, err := repos.Sightings.Log(context.Background(), user.ID, event.ID, robin.ID, base, "")
	require.NoError(t, err)

	name, err := repos.Sightings.MostCommonBird(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Eurasian Wren", name)
}

func TestMostCommonBird_Empty(t *testing.T) {
	t.Parallel()

	repos := newTestRepositories(t)

	name, err := repos.Sightings.MostCommonBird(context.Background())
	require.NoError(t, err, "an empty sighting log is a normal result, not an error")
	assert.Equal(t, NoSightingsSentinel, name)
}

func TestMostCommonBird_TieBreaksLexicographically(t *testing.T) {
	t.Parallel()

	repos := newTestRepositories(t)
	location := seedLocation(t, repos)
	user := seedUser(t, repos, "Alice Example", "alice@example.com")
	event := seedEvent(t, repos, "Spring Birdwatch", location.ID, date(2025, 4, 1), date(2025, 4, 3))
	wren := seedSpecies(t, repos, "Eurasian Wren", "")
	tit := seedSpecies(t, repos, "Blue Tit", "")

	base := date(2025, 4, 1)
	for i := range 2 {
		at := base.Add(time.Duration(i) * time.Hour)
		_, err := repos.Sightings.Log(context.Background(), user.ID, event.ID, wren.ID, at, "")
		require.NoError(t, err)
		_, err = repos.Sightings.Log(context.Background(), user.ID, event.ID, tit.ID, at, "")
		require.NoError(t, err)
	}

	name, err := repos.Sightings.MostCommonBird(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Blue Tit", name, "equal counts break by common name ascending")
}

// TestUserLifecycleWithSightings walks the full scenario: a registered user
// who has logged a sighting cannot be deleted until both the registration
// and the sightings are removed.
func TestUserLifecycleWithSightings(t *testing.T) {
	t.Parallel()

	repos := newTestRepositories(t)
	ctx := context.Background()

	location := seedLocation(t, repos)
	alice := seedUser(t, repos, "Alice", "alice@example.com")
	event := seedEvent(t, repos, "Spring Birdwatch", location.ID, date(2025, 4, 1), date(2025, 4, 3))
	species := seedSpecies(t, repos, "Eurasian Wren", "Troglodytes troglodytes")

	days, err := repos.Events.Duration(ctx, event.ID)
	require.NoError(t, err)
	require.Equal(t, 2, days)

	_, err = repos.Participations.Register(ctx, alice.ID, event.ID)
	require.NoError(t, err)
	_, err = repos.Sightings.Log(ctx, alice.ID, event.ID, species.ID, date(2025, 4, 2), "old oak")
	require.NoError(t, err)

	// Registered and with a sighting: delete is blocked.
	err = repos.Users.Delete(ctx, alice.ID)
	require.ErrorIs(t, err, ErrPreconditionFailed)

	// Unregistering is not enough; the sighting still blocks.
	require.NoError(t, repos.Participations.Unregister(ctx, alice.ID, event.ID))
	err = repos.Users.Delete(ctx, alice.ID)
	require.ErrorIs(t, err, ErrUserHasSightings)

	// Clearing the sightings releases the guard.
	removed, err := repos.Sightings.DeleteForUser(ctx, alice.ID)
	require.NoError(t, err)
	require.Equal(t, int64(1), removed)

	require.NoError(t, repos.Users.Delete(ctx, alice.ID))
	_, err = repos.Users.GetByID(ctx, alice.ID)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestSightingGetByID(t *testing.T) {
	t.Parallel()

	repos := newTestRepositories(t)
	location := seedLocation(t, repos)
	user := seedUser(t, repos, "Alice Example", "alice@example.com")
	event := seedEvent(t, repos, "Spring Birdwatch", location.ID, date(2025, 4, 1), date(2025, 4, 3))
	species := seedSpecies(t, repos, "Eurasian Wren", "Troglodytes troglodytes")

	logged, err := repos.Sightings.Log(context.Background(), user.ID, event.ID, species.ID,
		date(2025, 4, 2).Add(8*time.Hour), "")
	require.NoError(t, err)

	sighting, err := repos.Sightings.GetByID(context.Background(), logged.ID)
	require.NoError(t, err)
	assert.Equal(t, species.ID, sighting.BirdID)

	_, err = repos.Sightings.GetByID(context.Background(), 9999)
	require.ErrorIs(t, err, ErrSightingNotFound)
	require.ErrorIs(t, err, ErrNotFound)
}
