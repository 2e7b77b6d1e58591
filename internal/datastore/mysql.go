package datastore

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/mato-o/birdwatching-db-app/internal/conf"
	"github.com/mato-o/birdwatching-db-app/internal/errors"
)

// openMySQL sets up the MySQL database connection.
func openMySQL(settings *conf.Settings) (*gorm.DB, error) {
	cfg := settings.Database.MySQL

	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		cfg.Username, cfg.Password, cfg.Host, cfg.Port, cfg.Database)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormLogLevel(settings.Debug)),
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Newf("failed to open MySQL database: %w", err).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("host", cfg.Host).
			Context("database", cfg.Database).
			Build()
	}

	return db, nil
}

// OpenMySQLDSN opens a MySQL store from a raw DSN. Used by integration
// tests that provision their own database.
func OpenMySQLDSN(dsn string, debug bool) (*Store, error) {
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormLogLevel(debug)),
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Newf("failed to open MySQL database: %w", err).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}

	store := &Store{DB: db, dialect: DialectMySQL}
	if err := store.migrate(); err != nil {
		return nil, err
	}
	return store, nil
}
