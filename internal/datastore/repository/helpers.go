package repository

import (
	"gorm.io/gorm"

	"github.com/mato-o/birdwatching-db-app/internal/datastore"
	"github.com/mato-o/birdwatching-db-app/internal/errors"
)

// lockRow acquires an exclusive lock on the row with the given primary key
// and loads it into dest. Returns notFound when no such row exists. Parent
// rows are locked this way before any existence or uniqueness check is
// read, so a concurrent delete of the parent cannot race with a dependent
// insert.
func lockRow(store *datastore.Store, tx *gorm.DB, dest any, id uint, notFound error) error {
	err := store.Locked(tx).First(dest, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}
	return err
}
