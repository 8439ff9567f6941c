// Package jobs holds the periodic maintenance tasks that keep the database
// from growing unbounded.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/voalerta/flight-service/internal/database"
)

// RetentionConfig configures retention policies for cleanup jobs
type RetentionConfig struct {
	ObservationRetentionDays int
}

// DefaultRetentionConfig returns sensible retention defaults
func DefaultRetentionConfig() RetentionConfig {
	return RetentionConfig{
		ObservationRetentionDays: 90, // Keep price history for 90 days
	}
}

// CleanupOldObservations removes price history beyond the retention window.
// Old observations only matter for charts; trips keep their running lowest
// price regardless.
func CleanupOldObservations(ctx context.Context, cfg RetentionConfig) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -cfg.ObservationRetentionDays)

	result, err := database.Pool().Exec(ctx, `
		DELETE FROM price_history
		WHERE checked_at < $1
	`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup old observations: %w", err)
	}

	rowsDeleted := int(result.RowsAffected())
	slog.Info("cleaned up old price observations", "rows_deleted", rowsDeleted, "cutoff", cutoff)
	return rowsDeleted, nil
}

// DeactivateDepartedTrips turns off monitoring for trips whose departure date
// has passed. The trip and its history stay readable.
func DeactivateDepartedTrips(ctx context.Context) (int, error) {
	result, err := database.Pool().Exec(ctx, `
		UPDATE flights_to_monitor
		SET is_active = FALSE
		WHERE is_active
		  AND departure_date < CURRENT_DATE
	`)
	if err != nil {
		return 0, fmt.Errorf("deactivate departed trips: %w", err)
	}

	rowsUpdated := int(result.RowsAffected())
	if rowsUpdated > 0 {
		slog.Info("deactivated departed trips", "rows_updated", rowsUpdated)
	}
	return rowsUpdated, nil
}

// RunMaintenance executes every cleanup task, logging failures without
// aborting the rest.
func RunMaintenance(ctx context.Context, cfg RetentionConfig) {
	if _, err := CleanupOldObservations(ctx, cfg); err != nil {
		slog.Error("observation cleanup failed", "error", err)
	}
	if _, err := DeactivateDepartedTrips(ctx); err != nil {
		slog.Error("trip deactivation failed", "error", err)
	}
}
