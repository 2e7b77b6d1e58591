// Package report provides the report command for the birdwatch CLI
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/mato-o/birdwatching-db-app/internal/conf"
	"github.com/mato-o/birdwatching-db-app/internal/datastore"
	"github.com/mato-o/birdwatching-db-app/internal/datastore/repository"
)

// Command creates and returns the report command
func Command(settings *conf.Settings) *cobra.Command {
	var userID uint64
	var eventID uint64

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print reporting projections from the database",
		Long:  `Report prints the most frequently sighted bird and, depending on the flags given, the events a user is registered for or the sighting log of an event.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(settings, uint(userID), uint(eventID))
		},
	}

	cmd.Flags().Uint64Var(&userID, "user", 0, "List event registrations for this user ID")
	cmd.Flags().Uint64Var(&eventID, "event", 0, "List sightings recorded during this event ID")

	return cmd
}

func runReport(settings *conf.Settings, userID, eventID uint) error {
	store, err := datastore.Open(settings)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer store.Close()

	repos := repository.New(store)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mostCommon, err := repos.Sightings.MostCommonBird(ctx)
	if err != nil {
		return fmt.Errorf("failed to query most common bird: %w", err)
	}
	fmt.Printf("Most common bird: %s\n", mostCommon)

	if userID != 0 {
		if err := printUserParticipations(ctx, repos, userID); err != nil {
			return err
		}
	}

	if eventID != 0 {
		if err := printSightingDetails(ctx, repos, eventID); err != nil {
			return err
		}
	}

	if userID == 0 && eventID == 0 {
		return printEvents(ctx, repos)
	}

	return nil
}

func printUserParticipations(ctx context.Context, repos *repository.Repositories, userID uint) error {
	rows, err := repos.Reports.UserParticipations(ctx, userID)
	if err != nil {
		return fmt.Errorf("failed to query participations for user %d: %w", userID, err)
	}

	fmt.Printf("\nRegistrations for user %d:\n", userID)
	if len(rows) == 0 {
		fmt.Println("  (none)")
		return nil
	}
	for _, row := range rows {
		fmt.Printf("  %s (%s to %s)\n",
			row.EventName,
			row.StartDate.Format("2006-01-02"),
			row.EndDate.Format("2006-01-02"))
	}
	return nil
}

func printSightingDetails(ctx context.Context, repos *repository.Repositories, eventID uint) error {
	rows, err := repos.Reports.SightingDetails(ctx, eventID)
	if err != nil {
		return fmt.Errorf("failed to query sightings for event %d: %w", eventID, err)
	}

	fmt.Printf("\nSightings during event %d:\n", eventID)
	if len(rows) == 0 {
		fmt.Println("  (none)")
		return nil
	}
	for _, row := range rows {
		note := ""
		if row.LocationNote != nil {
			note = " at " + *row.LocationNote
		}
		fmt.Printf("  %s  %s by %s%s\n",
			row.SightedAt.Format("2006-01-02 15:04"),
			row.CommonName,
			row.FullName,
			note)
	}
	return nil
}

func printEvents(ctx context.Context, repos *repository.Repositories) error {
	rows, err := repos.Reports.EventsWithLocation(ctx)
	if err != nil {
		return fmt.Errorf("failed to query events: %w", err)
	}

	fmt.Println("\nEvents:")
	if len(rows) == 0 {
		fmt.Println("  (none)")
		return nil
	}
	for _, row := range rows {
		fmt.Printf("  [%d] %s at %s, %s (%s to %s)\n",
			row.EventID,
			row.EventName,
			row.LocationName,
			row.Region,
			row.StartDate.Format("2006-01-02"),
			row.EndDate.Format("2006-01-02"))
	}
	return nil
}
