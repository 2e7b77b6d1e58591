// Package datastore logging setup, following the project-wide convention
// of a per-component file logger under the logs/ directory.
package datastore

import (
	"io"
	"log/slog"
	"sync"

	"github.com/mato-o/birdwatching-db-app/internal/errors"
	"github.com/mato-o/birdwatching-db-app/internal/logging"
)

var (
	datastoreLogger   *slog.Logger
	datastoreLevelVar = new(slog.LevelVar) // dynamic level control
	loggerCloseFunc   func() error
	loggerOnce        sync.Once
	loggerMu          sync.RWMutex

	defaultLogPath = "logs/datastore.log"
)

// InitializeLogger initializes the datastore logger with the specified log
// file path. Safe to call multiple times; initialization happens only once.
func InitializeLogger(logFilePath string) error {
	var initErr error

	loggerOnce.Do(func() {
		if logFilePath == "" {
			logFilePath = defaultLogPath
		}

		datastoreLevelVar.Set(slog.LevelInfo)

		logger, closeFunc, err := logging.NewFileLogger(logFilePath, "datastore", datastoreLevelVar)
		if err != nil {
			// Fall back to a no-op logger rather than failing the service
			logger = slog.New(slog.NewTextHandler(io.Discard, nil))
			closeFunc = func() error { return nil }
			initErr = errors.Newf("datastore: failed to initialize file logger: %v", err).
				Component("datastore").
				Category(errors.CategoryFileIO).
				Context("log_file", logFilePath).
				Build()
		}

		loggerMu.Lock()
		datastoreLogger = logger
		loggerCloseFunc = closeFunc
		loggerMu.Unlock()
	})

	return initErr
}

// SetLogLevel adjusts the datastore log verbosity at runtime.
func SetLogLevel(level slog.Level) {
	datastoreLevelVar.Set(level)
}

// CloseLogger releases the log file writer.
func CloseLogger() error {
	loggerMu.RLock()
	closeFunc := loggerCloseFunc
	loggerMu.RUnlock()

	if closeFunc != nil {
		return closeFunc()
	}
	return nil
}

// getLogger returns the datastore logger, falling back to the process
// default when InitializeLogger has not run.
func getLogger() *slog.Logger {
	loggerMu.RLock()
	defer loggerMu.RUnlock()

	if datastoreLogger != nil {
		return datastoreLogger
	}
	return slog.Default()
}
