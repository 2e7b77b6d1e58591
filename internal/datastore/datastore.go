// Package datastore opens and manages the relational store shared by the
// service's registries. It provides the transaction boundary, exclusive
// row locking and database error categorization the repositories build on.
package datastore

import (
	"context"
	"sync"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mato-o/birdwatching-db-app/internal/conf"
	"github.com/mato-o/birdwatching-db-app/internal/datastore/entities"
	"github.com/mato-o/birdwatching-db-app/internal/errors"
	"github.com/mato-o/birdwatching-db-app/internal/observability/metrics"
)

// Supported dialects.
const (
	DialectSQLite = "sqlite"
	DialectMySQL  = "mysql"
)

// Store wraps the GORM database and knows which dialect it talks to.
// All repository operations go through a Store.
type Store struct {
	DB      *gorm.DB
	dialect string

	metricsMu sync.RWMutex
	metrics   *metrics.DatastoreMetrics
}

// Open connects to the configured database, runs schema migration and
// returns the ready Store. Exactly one database backend must be enabled.
func Open(settings *conf.Settings) (*Store, error) {
	var (
		db      *gorm.DB
		dialect string
		err     error
	)

	switch {
	case settings.Database.SQLite.Enabled:
		db, err = openSQLite(settings)
		dialect = DialectSQLite
	case settings.Database.MySQL.Enabled:
		db, err = openMySQL(settings)
		dialect = DialectMySQL
	default:
		return nil, errors.Newf("no database backend enabled").
			Component("datastore").
			Category(errors.CategoryConfiguration).
			Build()
	}
	if err != nil {
		return nil, err
	}

	store := &Store{DB: db, dialect: dialect}
	if err := store.migrate(); err != nil {
		return nil, err
	}

	getLogger().Info("database opened", "dialect", dialect)
	return store, nil
}

// Dialect returns the active database dialect.
func (s *Store) Dialect() string {
	return s.dialect
}

// Close releases the underlying database connection.
func (s *Store) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return errors.New(err).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("operation", "close").
			Build()
	}
	return sqlDB.Close()
}

// migrate creates or updates the schema for all entities.
func (s *Store) migrate() error {
	err := s.DB.AutoMigrate(
		&entities.Location{},
		&entities.User{},
		&entities.Event{},
		&entities.Participation{},
		&entities.BirdSpecies{},
		&entities.Sighting{},
		&entities.WeatherRecord{},
		&entities.SpeciesAudit{},
	)
	if err != nil {
		return errors.New(err).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("operation", "auto_migrate").
			Build()
	}
	return nil
}

// Transaction runs fn inside one database transaction: commit on nil
// return, rollback on error. Every mutating registry operation uses this
// as its atomicity boundary.
func (s *Store) Transaction(ctx context.Context, fn func(tx *gorm.DB) error) error {
	err := s.DB.WithContext(ctx).Transaction(fn)

	if m := s.getMetrics(); m != nil {
		if err != nil {
			m.RecordTransaction("rollback")
		} else {
			m.RecordTransaction("committed")
		}
	}
	return err
}

// Locked applies an exclusive row lock (SELECT ... FOR UPDATE) to the query
// on dialects that support it. SQLite has no row locks; its single-writer
// transaction model provides the same serialization, so the query is
// returned unchanged there and the unique and foreign key constraints
// backstop the check-then-act sequences.
func (s *Store) Locked(tx *gorm.DB) *gorm.DB {
	if s.dialect == DialectMySQL {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// SetMetrics attaches datastore metrics. Safe for concurrent use.
func (s *Store) SetMetrics(m *metrics.DatastoreMetrics) {
	s.metricsMu.Lock()
	defer s.metricsMu.Unlock()
	s.metrics = m
}

func (s *Store) getMetrics() *metrics.DatastoreMetrics {
	s.metricsMu.RLock()
	defer s.metricsMu.RUnlock()
	return s.metrics
}

// Track records duration, outcome and error classification for one
// repository operation. Call it deferred with the operation start time.
func (s *Store) Track(operation, table string, start time.Time, err error) {
	elapsed := time.Since(start)

	if m := s.getMetrics(); m != nil {
		m.RecordDbOperationDuration(operation, table, elapsed.Seconds())
		if err != nil {
			category := Categorize(err)
			m.RecordDbOperation(operation, table, "error")
			m.RecordDbOperationError(operation, table, category)
			if category == CategoryLocked || category == CategoryDeadlock {
				m.RecordLockContention(table)
			}
		} else {
			m.RecordDbOperation(operation, table, "success")
		}
	}

	if err != nil {
		getLogger().Debug("operation failed",
			"operation", operation,
			"table", table,
			"duration_ms", elapsed.Milliseconds(),
			"error", err)
	}
}

// gormLogLevel picks the GORM log verbosity from the debug setting.
func gormLogLevel(debug bool) gormlogger.LogLevel {
	if debug {
		return gormlogger.Info
	}
	return gormlogger.Silent
}
