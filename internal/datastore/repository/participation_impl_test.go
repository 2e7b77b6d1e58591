package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mato-o/birdwatching-db-app/internal/errors"
)

func TestRegister(t *testing.T) {
	t.Parallel()

	repos := newTestRepositories(t)
	location := seedLocation(t, repos)
	user := seedUser(t, repos, "Alice Example", "alice@example.com")
	event := seedEvent(t, repos, "Spring Birdwatch", location.ID, date(2025, 4, 1), date(2025, 4, 3))

	participation, err := repos.Participations.Register(context.Background(), user.ID, event.ID)
	require.NoError(t, err)
	assert.Equal(t, user.ID, participation.UserID)
	assert.Equal(t, event.ID, participation.EventID)

	count, err := repos.Participations.CountForUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestRegister_Duplicate(t *testing.T) {
	t.Parallel()

	repos := newTestRepositories(t)
	location := seedLocation(t, repos)
	user := seedUser(t, repos, "Alice Example", "alice@example.com")
	event := seedEvent(t, repos, "Spring Birdwatch", location.ID, date(2025, 4, 1), date(2025, 4, 3))

	_, err := repos.Participations.Register(context.Background(), user.ID, event.ID)
	require.NoError(t, err)

	_, err = repos.Participations.Register(context.Background(), user.ID, event.ID)
	require.ErrorIs(t, err, ErrAlreadyRegistered)
	require.ErrorIs(t, err, ErrAlreadyExists)
}

func TestRegister_MissingUser(t *testing.T) {
	t.Parallel()

	repos := newTestRepositories(t)
	location := seedLocation(t, repos)
	event := seedEvent(t, repos, "Spring Birdwatch", location.ID, date(2025, 4, 1), date(2025, 4, 3))

	_, err := repos.Participations.Register(context.Background(), 9999, event.ID)
	require.ErrorIs(t, err, ErrUserNotFound)
}

func TestRegister_MissingEvent(t *testing.T) {
	t.Parallel()

	repos := newTestRepositories(t)
	user := seedUser(t, repos, "Alice Example", "alice@example.com")

	_, err := repos.Participations.Register(context.Background(), user.ID, 9999)
	require.ErrorIs(t, err, ErrEventNotFound)
}

func TestUnregister_Absent(t *testing.T) {
	t.Parallel()

	repos := newTestRepositories(t)
	user := seedUser(t, repos, "Alice Example", "alice@example.com")

	err := repos.Participations.Unregister(context.Background(), user.ID, 9999)
	require.ErrorIs(t, err, ErrParticipationNotFound)
}

func TestRegister_AfterUnregister(t *testing.T) {
	t.Parallel()

	repos := newTestRepositories(t)
	location := seedLocation(t, repos)
	user := seedUser(t, repos, "Alice Example", "alice@example.com")
	event := seedEvent(t, repos, "Spring Birdwatch", location.ID, date(2025, 4, 1), date(2025, 4, 3))

	_, err := repos.Participations.Register(context.Background(), user.ID, event.ID)
	require.NoError(t, err)
	require.NoError(t, repos.Participations.Unregister(context.Background(), user.ID, event.ID))

	_, err = repos.Participations.Register(context.Background(), user.ID, event.ID)
	require.NoError(t, err, "re-registration after unregister should succeed")
}

// TestRegister_ConcurrentDoubleInsert verifies that simultaneous
// registrations for the same (user, event) pair never both succeed. The
// losers fail with the domain duplicate error, or with contention when the
// store rejects the competing write transaction outright.
func TestRegister_ConcurrentDoubleInsert(t *testing.T) {
	t.Parallel()

	repos := newTestRepositories(t)
	location := seedLocation(t, repos)
	user := seedUser(t, repos, "Alice Example", "alice@example.com")
	event := seedEvent(t, repos, "Spring Birdwatch", location.ID, date(2025, 4, 1), date(2025, 4, 3))

	const attempts = 4
	results := make([]error, attempts)

	var wg sync.WaitGroup
	wg.Add(attempts)
	for i := range attempts {
		go func() {
			defer wg.Done()
			_, err := repos.Participations.Register(context.Background(), user.ID, event.ID)
			results[i] = err
		}()
	}
	wg.Wait()

	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
			continue
		}
		if !errors.Is(err, ErrAlreadyExists) && !errors.Is(err, ErrContention) {
			t.Fatalf("unexpected registration error: %v", err)
		}
	}
	assert.Equal(t, 1, successes, "exactly one concurrent registration must succeed")

	count, err := repos.Participations.CountForUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count, "no double-insert may be visible")
}

func TestListForUser(t *testing.T) {
	t.Parallel()

	repos := newTestRepositories(t)
	location := seedLocation(t, repos)
	user := seedUser(t, repos, "Alice Example", "alice@example.com")
	spring := seedEvent(t, repos, "Spring Birdwatch", location.ID, date(2025, 4, 1), date(2025, 4, 3))
	autumn := seedEvent(t, repos, "Autumn Migration", location.ID, date(2025, 9, 15), date(2025, 9, 17))

	_, err := repos.Participations.Register(context.Background(), user.ID, spring.ID)
	require.NoError(t, err)
	_, err = repos.Participations.Register(context.Background(), user.ID, autumn.ID)
	require.NoError(t, err)

	participations, err := repos.Participations.ListForUser(context.Background(), user.ID)
	require.NoError(t, err)
	require.Len(t, participations, 2)
	assert.Equal(t, spring.ID, participations[0].EventID)
	assert.Equal(t, autumn.ID, participations[1].EventID)
}
