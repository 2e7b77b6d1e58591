// Package migrate provides the migrate command for the birdwatch CLI
package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mato-o/birdwatching-db-app/internal/conf"
	"github.com/mato-o/birdwatching-db-app/internal/datastore"
)

// Command creates and returns the migrate command
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		Long:  `Migrate opens the configured database and brings its schema up to date. It is safe to run repeatedly; existing data is preserved.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigrate(settings)
		},
	}

	return cmd
}

func runMigrate(settings *conf.Settings) error {
	// Open runs schema migration as part of connecting.
	store, err := datastore.Open(settings)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	fmt.Printf("Database schema is up to date (%s)\n", store.Dialect())
	return nil
}
