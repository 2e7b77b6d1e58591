package datastore

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mato-o/birdwatching-db-app/internal/conf"
	"github.com/mato-o/birdwatching-db-app/internal/errors"
)

// openSQLite sets up the SQLite database connection with the recommended
// pragmas: WAL for concurrent readers, a busy timeout so write transactions
// wait for each other instead of failing immediately, and foreign key
// enforcement which SQLite leaves off by default.
func openSQLite(settings *conf.Settings) (*gorm.DB, error) {
	path := settings.Database.SQLite.Path
	if path == "" {
		return nil, errors.Newf("sqlite enabled but no database path configured").
			Component("datastore").
			Category(errors.CategoryConfiguration).
			Build()
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=ON", path)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormLogLevel(settings.Debug)),
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Newf("failed to open SQLite database: %w", err).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("path", path).
			Build()
	}

	return db, nil
}
