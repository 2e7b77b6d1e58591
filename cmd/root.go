package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mato-o/birdwatching-db-app/cmd/migrate"
	"github.com/mato-o/birdwatching-db-app/cmd/report"
	"github.com/mato-o/birdwatching-db-app/internal/conf"
	"github.com/mato-o/birdwatching-db-app/internal/datastore"
)

// RootCommand creates and returns the root command
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "birdwatch",
		Short: "Birdwatching event tracker CLI",
	}

	// Set up the global flags for the root command.
	setupFlags(rootCmd, settings)

	// Add sub-commands to the root command.
	subcommands := []*cobra.Command{
		migrate.Command(settings),
		report.Command(settings),
	}

	rootCmd.AddCommand(subcommands...)

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return initialize(settings)
	}

	return rootCmd
}

// initialize runs before any subcommand, after flags and config are bound.
func initialize(settings *conf.Settings) error {
	logPath := filepath.Join(settings.Logging.Path, "datastore.log")
	if err := datastore.InitializeLogger(logPath); err != nil {
		// Log file trouble shouldn't block the command; the datastore
		// falls back to the default logger.
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	if settings.Debug {
		datastore.SetLogLevel(slog.LevelDebug)
	}
	return nil
}

// setupFlags defines flags that are global to the command line interface
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings) error {
	rootCmd.PersistentFlags().BoolVarP(&settings.Debug, "debug", "d", viper.GetBool("debug"), "Enable debug output")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		return fmt.Errorf("error binding flags: %v", err)
	}

	return nil
}
