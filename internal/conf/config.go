// Package conf loads and exposes the service configuration.
package conf

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"

	"github.com/mato-o/birdwatching-db-app/internal/errors"
)

// Settings holds the full service configuration, populated from the config
// file, environment variables and command line flags.
type Settings struct {
	Debug bool // true to enable debug logging

	Main struct {
		Name string // service instance name, used in logs
	}

	Database struct {
		SQLite struct {
			Enabled bool   // true to operate on the SQLite database
			Path    string // path to the database file
		}
		MySQL struct {
			Enabled  bool   // true to operate on the MySQL database
			Username string // MySQL username
			Password string // MySQL password
			Database string // MySQL database name
			Host     string // MySQL server host
			Port     string // MySQL server port
		}
	}

	Logging struct {
		Path string // directory for per-component log files
	}
}

var (
	settingsInstance *Settings
	settingsOnce     sync.Once
	settingsMu       sync.RWMutex
)

// Load reads the configuration file and returns the populated Settings.
// A missing config file is not an error; defaults apply.
func Load() (*Settings, error) {
	setDefaults()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	for _, path := range configPaths() {
		viper.AddConfigPath(path)
	}
	viper.SetEnvPrefix("birdwatch")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, errors.Newf("reading config file: %w", err).
				Component("conf").
				Category(errors.CategoryConfiguration).
				Build()
		}
	}

	settings := &Settings{}
	if err := viper.Unmarshal(settings); err != nil {
		return nil, errors.Newf("unmarshaling config: %w", err).
			Component("conf").
			Category(errors.CategoryConfiguration).
			Build()
	}

	if err := validate(settings); err != nil {
		return nil, err
	}

	settingsMu.Lock()
	settingsInstance = settings
	settingsMu.Unlock()

	return settings, nil
}

// Setting returns the loaded settings, loading them on first use.
func Setting() *Settings {
	settingsOnce.Do(func() {
		settingsMu.RLock()
		loaded := settingsInstance != nil
		settingsMu.RUnlock()
		if !loaded {
			if _, err := Load(); err != nil {
				panic(fmt.Sprintf("conf: failed to load settings: %v", err))
			}
		}
	})

	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settingsInstance
}

func validate(s *Settings) error {
	if s.Database.SQLite.Enabled && s.Database.MySQL.Enabled {
		return errors.Newf("both sqlite and mysql outputs enabled, pick one").
			Component("conf").
			Category(errors.CategoryConfiguration).
			Build()
	}
	if s.Database.MySQL.Enabled {
		if s.Database.MySQL.Host == "" || s.Database.MySQL.Database == "" {
			return errors.Newf("mysql enabled but host or database name missing").
				Component("conf").
				Category(errors.CategoryConfiguration).
				Build()
		}
	}
	return nil
}

func configPaths() []string {
	return []string{
		".",
		"$HOME/.config/birdwatching-db-app",
		"/etc/birdwatching-db-app",
	}
}
