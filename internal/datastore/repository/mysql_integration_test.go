//go:build integration

package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcmysql "github.com/testcontainers/testcontainers-go/modules/mysql"

	"github.com/mato-o/birdwatching-db-app/internal/datastore"
)

// newMySQLTestStore starts a MySQL container and opens a migrated store
// against it. MySQL supports SELECT ... FOR UPDATE, so these tests
// exercise the real row-locking path that SQLite only approximates.
func newMySQLTestStore(t *testing.T) (*datastore.Store, testcontainers.Container) {
	t.Helper()

	ctx := context.Background()

	container, err := tcmysql.Run(ctx, "mysql:8.4",
		tcmysql.WithDatabase("birdwatch"),
		tcmysql.WithUsername("birdwatch"),
		tcmysql.WithPassword("birdwatch"),
	)
	require.NoError(t, err, "failed to start mysql container")
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	dsn, err := container.ConnectionString(ctx, "charset=utf8mb4", "parseTime=True", "loc=UTC")
	require.NoError(t, err, "failed to get mysql connection string")

	store, err := datastore.OpenMySQLDSN(dsn, false)
	require.NoError(t, err, "failed to open mysql store")
	t.Cleanup(func() { _ = store.Close() })

	return store, container
}

func TestMySQL_RegisterConcurrentDoubleInsert(t *testing.T) {
	store, _ := newMySQLTestStore(t)
	repos := New(store)
	ctx := context.Background()

	location, err := repos.Locations.Create(ctx, "Oak Grove", "North", 61.4978, 23.7610)
	require.NoError(t, err)
	user, err := repos.Users.Add(ctx, "Alice Example", "alice@example.com")
	require.NoError(t, err)
	event, err := repos.Events.Create(ctx, "Spring Birdwatch", location.ID, date(2025, 4, 1), date(2025, 4, 3))
	require.NoError(t, err)

	const attempts = 8
	results := make([]error, attempts)

	var wg sync.WaitGroup
	wg.Add(attempts)
	for i := range attempts {
		go func() {
			defer wg.Done()
			_, err := repos.Participations.Register(ctx, user.ID, event.ID)
			results[i] = err
		}()
	}
	wg.Wait()

	// With real row locks the losers serialize behind the winner and see
	// the committed row: exactly one success, the rest domain duplicates.
	successes := 0
	for _, err := range results {
		if err == nil {
			successes++
			continue
		}
		assert.ErrorIs(t, err, ErrAlreadyExists)
	}
	assert.Equal(t, 1, successes)

	count, err := repos.Participations.CountForUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestMySQL_DeleteUserSerializesWithRegistration(t *testing.T) {
	store, _ := newMySQLTestStore(t)
	repos := New(store)
	ctx := context.Background()

	location, err := repos.Locations.Create(ctx, "Oak Grove", "North", 61.4978, 23.7610)
	require.NoError(t, err)
	user, err := repos.Users.Add(ctx, "Alice Example", "alice@example.com")
	require.NoError(t, err)
	event, err := repos.Events.Create(ctx, "Spring Birdwatch", location.ID, date(2025, 4, 1), date(2025, 4, 3))
	require.NoError(t, err)

	var wg sync.WaitGroup
	var registerErr, deleteErr error
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, registerErr = repos.Participations.Register(ctx, user.ID, event.ID)
	}()
	go func() {
		defer wg.Done()
		deleteErr = repos.Users.Delete(ctx, user.ID)
	}()
	wg.Wait()

	// Whichever transaction acquired the user lock first serialized the
	// other. The end state must be consistent either way.
	count, err := repos.Participations.CountForUser(ctx, user.ID)
	require.NoError(t, err)

	if deleteErr == nil {
		// Delete won: the registration must have failed afterwards.
		require.Error(t, registerErr)
		require.ErrorIs(t, registerErr, ErrUserNotFound)
		assert.Equal(t, int64(0), count)
	} else {
		// Registration won: the delete saw the dependent row.
		require.NoError(t, registerErr)
		require.ErrorIs(t, deleteErr, ErrPreconditionFailed)
		assert.Equal(t, int64(1), count)
	}
}
