package monitor

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/voalerta/flight-service/config"
)

// Worker drives the periodic monitoring cycle. Trips are checked one at a
// time with a deliberate delay between provider calls.
type Worker struct {
	checker *Checker
	store   TripStore
	cfg     config.MonitorConfig

	cron   *cron.Cron
	cancel context.CancelFunc
	logger zerolog.Logger
}

// NewWorker creates a monitoring worker on the given schedule.
func NewWorker(checker *Checker, cfg config.MonitorConfig) *Worker {
	return &Worker{
		checker: checker,
		store:   checker.store,
		cfg:     cfg,
		cron:    cron.New(),
		logger:  log.With().Str("component", "monitor-worker").Logger(),
	}
}

// Start schedules the periodic cycle and runs an initial check shortly after
// startup so a fresh deployment does not wait a full period.
func (w *Worker) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel

	if _, err := w.cron.AddFunc(w.cfg.Schedule, func() { w.runCycle(ctx) }); err != nil {
		cancel()
		return err
	}

	go func() {
		select {
		case <-ctx.Done():
			return
		case <-time.After(w.cfg.InitialDelay):
		}
		w.logger.Info().Msg("running initial monitoring check")
		w.runCycle(ctx)
	}()

	w.cron.Start()
	w.logger.Info().Str("schedule", w.cfg.Schedule).Msg("monitoring worker started")
	return nil
}

// Stop cancels the running cycle and waits for scheduled jobs to finish.
func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	<-w.cron.Stop().Done()
	w.logger.Info().Msg("monitoring worker stopped")
}

// runCycle checks every active trip sequentially.
func (w *Worker) runCycle(ctx context.Context) {
	started := time.Now()
	w.logger.Info().Msg("monitoring cycle starting")

	trips, err := w.store.ActiveTrips(ctx)
	if err != nil {
		w.logger.Error().Err(err).Msg("listing active trips failed")
		return
	}
	if len(trips) == 0 {
		w.logger.Info().Msg("no active trips to monitor")
		return
	}

	for i := range trips {
		if ctx.Err() != nil {
			w.logger.Warn().Msg("monitoring cycle cancelled")
			return
		}
		if _, err := w.checker.CheckTrip(ctx, &trips[i]); err != nil {
			w.logger.Error().Err(err).Str("trip_id", trips[i].ID).Msg("trip check failed")
		}

		// Spread provider calls out instead of bursting.
		if i < len(trips)-1 {
			select {
			case <-ctx.Done():
				return
			case <-time.After(w.cfg.InterTripDelay):
			}
		}
	}

	cycleDuration.Observe(time.Since(started).Seconds())
	w.logger.Info().
		Int("trips", len(trips)).
		Dur("elapsed", time.Since(started)).
		Msg("monitoring cycle completed")
}
