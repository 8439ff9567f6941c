package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voalerta/flight-service/internal/database"
	"github.com/voalerta/flight-service/internal/monitor"
	"github.com/voalerta/flight-service/internal/notify"
)

var checkAll bool

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flight-id]",
	Short: "Run a price check for monitored flights",
	Long: `Run one monitoring cycle immediately. With a flight id, checks only that
flight; with --all, checks every active flight. Observations are persisted and
alerts are sent exactly as in the scheduled cycle.`,
	Example: `  flight-service check 2f1f5b0e-8a43-4c6e-9f70-1c8a31d2b9aa
  flight-service check --all`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().BoolVar(&checkAll, "all", false, "Check every active flight")
}

func runCheck(cmd *cobra.Command, args []string) error {
	if !checkAll && len(args) == 0 {
		return fmt.Errorf("a flight id or --all is required")
	}

	provider, err := newProvider()
	if err != nil {
		return err
	}
	checker := monitor.NewChecker(provider, notify.NewDispatcher(cfg.Notifications))

	ctx := context.Background()

	var trips []database.Trip
	if checkAll {
		trips, err = database.ActiveTrips(ctx)
		if err != nil {
			return fmt.Errorf("failed to load active flights: %w", err)
		}
		if len(trips) == 0 {
			logger.Info().Msg("No active flights to check")
			return nil
		}
	} else {
		trip, err := database.GetTrip(ctx, args[0])
		if err != nil {
			return fmt.Errorf("failed to load flight: %w", err)
		}
		trips = []database.Trip{*trip}
	}

	for i := range trips {
		trip := &trips[i]
		result, err := checker.CheckTrip(ctx, trip)
		if err != nil {
			logger.Error().Err(err).Str("flight", trip.ID).Msg("Check failed")
			continue
		}
		if !result.Success {
			logger.Warn().
				Str("flight", trip.ID).
				Str("route", fmt.Sprintf("%s-%s", trip.Origin, trip.Destination)).
				Str("reason", result.Message+result.Error).
				Msg("No price recorded")
			continue
		}
		logger.Info().
			Str("flight", trip.ID).
			Str("route", fmt.Sprintf("%s-%s", trip.Origin, trip.Destination)).
			Float64("price", result.Price).
			Str("currency", result.Currency).
			Bool("notified", result.ShouldNotify).
			Msg("Price recorded")
	}

	return nil
}
