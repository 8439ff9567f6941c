// Package search implements the smart-search fan-out engine. One run explores
// three independent neighborhoods of the caller's parameters, flexible dates,
// nearby airports and alternate cabin classes, and reduces every candidate
// into a single best-overall recommendation with savings metrics.
package search

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/voalerta/flight-service/internal/flight"
)

// Per-sweep provider result limits.
const (
	baselineLimit = 1
	dateLimit     = 5
	airportLimit  = 3
	classLimit    = 3
)

// OfferClient is the provider call the engine fans out over. Offers come back
// sorted ascending by normalized price.
type OfferClient interface {
	SearchOffers(ctx context.Context, params flight.SearchParams, limit int) ([]flight.Offer, error)
}

// Config holds the fan-out policy knobs.
type Config struct {
	// FlexDays is the half-width of the flexible-dates window.
	FlexDays int
	// MinDaysAhead gates the flexible-dates sweep: departures closer than
	// this many days are not date-swept.
	MinDaysAhead int
	// CallTimeout bounds one provider call.
	CallTimeout time.Duration
}

// DefaultConfig returns the standard fan-out policy.
func DefaultConfig() Config {
	return Config{
		FlexDays:     3,
		MinDaysAhead: 7,
		CallTimeout:  20 * time.Second,
	}
}

// Engine runs fan-out searches against an offer provider.
type Engine struct {
	client OfferClient
	cfg    Config
	now    func() time.Time
	logger zerolog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock injects a clock, used by tests to pin the date-sweep gate.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// NewEngine creates a fan-out engine.
func NewEngine(client OfferClient, cfg Config, opts ...Option) *Engine {
	if cfg.FlexDays <= 0 {
		cfg.FlexDays = 3
	}
	if cfg.MinDaysAhead <= 0 {
		cfg.MinDaysAhead = 7
	}
	if cfg.CallTimeout <= 0 {
		cfg.CallTimeout = 20 * time.Second
	}
	e := &Engine{
		client: client,
		cfg:    cfg,
		now:    time.Now,
		logger: log.With().Str("component", "search").Logger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Run executes the full fan-out for one parameter set. Individual provider
// failures degrade the result instead of aborting it; the only error returned
// is parameter validation.
func (e *Engine) Run(ctx context.Context, params flight.SearchParams) (*Bundle, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	params = params.Normalized()

	started := e.now()
	bundle := &Bundle{
		FlexibleDates:    []DateOption{},
		NearbyAirports:   []AirportOption{},
		DifferentClasses: []ClassOption{},
	}

	if offer, ok := e.cheapest(ctx, params, baselineLimit, "baseline"); ok {
		bundle.Original = &Baseline{
			Price:    offer.Price.TotalBRL,
			Currency: flight.ReferenceCurrency,
			Offer:    offer,
		}
	}

	// The three sweeps are independent; only the reduction needs all of them.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		bundle.FlexibleDates = e.sweepDates(gctx, params)
		return nil
	})
	g.Go(func() error {
		bundle.NearbyAirports = e.sweepAirports(gctx, params)
		return nil
	})
	g.Go(func() error {
		bundle.DifferentClasses = e.sweepClasses(gctx, params)
		return nil
	})
	_ = g.Wait() // sweeps never return errors

	bundle.BestOverall = reduce(bundle)

	runDuration.Observe(e.now().Sub(started).Seconds())
	e.logger.Info().
		Str("route", params.Origin+"-"+params.Destination).
		Int("date_options", len(bundle.FlexibleDates)).
		Int("airport_options", len(bundle.NearbyAirports)).
		Int("class_options", len(bundle.DifferentClasses)).
		Bool("has_baseline", bundle.Original != nil).
		Msg("fan-out search completed")
	return bundle, nil
}

// cheapest issues one bounded provider call and returns the cheapest offer.
// Failures and empty results both report false.
func (e *Engine) cheapest(ctx context.Context, params flight.SearchParams, limit int, sweep string) (flight.Offer, bool) {
	callCtx, cancel := context.WithTimeout(ctx, e.cfg.CallTimeout)
	defer cancel()

	offers, err := e.client.SearchOffers(callCtx, params, limit)
	if err != nil {
		sweepErrors.WithLabelValues(sweep).Inc()
		e.logger.Warn().Err(err).
			Str("sweep", sweep).
			Str("route", params.Origin+"-"+params.Destination).
			Str("date", params.DepartureDate).
			Msg("provider call failed, skipping combination")
		return flight.Offer{}, false
	}
	sweepCalls.WithLabelValues(sweep).Inc()
	if len(offers) == 0 {
		return flight.Offer{}, false
	}
	return offers[0], true
}

// sweepDates explores the ±FlexDays window around the original dates. It is
// skipped entirely for near-term departures.
func (e *Engine) sweepDates(ctx context.Context, params flight.SearchParams) []DateOption {
	if !e.dateSweepAllowed(params.DepartureDate) {
		e.logger.Debug().Str("date", params.DepartureDate).Msg("departure too close, skipping date sweep")
		return []DateOption{}
	}

	depDates := dateRange(params.DepartureDate, e.cfg.FlexDays)
	retDates := []string{""}
	if params.ReturnDate != "" {
		retDates = dateRange(params.ReturnDate, e.cfg.FlexDays)
	}

	results := []DateOption{}
	for _, dep := range depDates {
		for _, ret := range retDates {
			p := params
			p.DepartureDate = dep
			p.ReturnDate = ret
			offer, ok := e.cheapest(ctx, p, dateLimit, "dates")
			if !ok {
				continue
			}
			results = append(results, DateOption{
				DepartureDate:    dep,
				ReturnDate:       ret,
				Price:            offer.Price.TotalBRL,
				Currency:         flight.ReferenceCurrency,
				OriginalPrice:    offer.Price.Total,
				OriginalCurrency: offer.Price.Currency,
				Offer:            offer,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Price < results[j].Price })

	// Savings compare against this sweep's own entry for the original dates,
	// not the global baseline.
	for _, r := range results {
		if r.DepartureDate == params.DepartureDate && r.ReturnDate == params.ReturnDate {
			origPrice := r.Price
			for i := range results {
				s := origPrice - results[i].Price
				pct := roundPercent(s / origPrice * 100)
				results[i].Savings = &s
				results[i].SavingsPercent = &pct
			}
			break
		}
	}
	return results
}

func (e *Engine) dateSweepAllowed(departureDate string) bool {
	dep, err := time.Parse(flight.DateLayout, departureDate)
	if err != nil {
		return false
	}
	daysUntil := int(math.Floor(dep.Sub(e.now()).Hours() / 24))
	return daysUntil > e.cfg.MinDaysAhead
}

// sweepAirports crosses the known alternates of both endpoints, skipping the
// original pair which the baseline already covers.
func (e *Engine) sweepAirports(ctx context.Context, params flight.SearchParams) []AirportOption {
	origins := expandAirports(params.Origin)
	destinations := expandAirports(params.Destination)

	results := []AirportOption{}
	for _, origin := range origins {
		for _, destination := range destinations {
			if origin == params.Origin && destination == params.Destination {
				continue
			}
			p := params
			p.Origin = origin
			p.Destination = destination
			offer, ok := e.cheapest(ctx, p, airportLimit, "airports")
			if !ok {
				continue
			}
			results = append(results, AirportOption{
				Origin:           origin,
				Destination:      destination,
				Price:            offer.Price.TotalBRL,
				Currency:         flight.ReferenceCurrency,
				OriginalPrice:    offer.Price.Total,
				OriginalCurrency: offer.Price.Currency,
				Offer:            offer,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].Price < results[j].Price })
	return results
}

// sweepClasses tries every cabin class in fare order.
func (e *Engine) sweepClasses(ctx context.Context, params flight.SearchParams) []ClassOption {
	results := []ClassOption{}
	for _, class := range flight.CabinClasses {
		p := params
		p.TravelClass = class
		offer, ok := e.cheapest(ctx, p, classLimit, "classes")
		if !ok {
			continue
		}
		results = append(results, ClassOption{
			Class:            class,
			Price:            offer.Price.TotalBRL,
			Currency:         flight.ReferenceCurrency,
			OriginalPrice:    offer.Price.Total,
			OriginalCurrency: offer.Price.Currency,
			Offer:            offer,
		})
	}
	return results
}

// reduce picks the minimum-price candidate across the baseline and all three
// sweeps, attaching savings against the baseline when one exists.
func reduce(b *Bundle) *BestOption {
	var best *BestOption

	consider := func(c BestOption) {
		if best == nil || c.Price < best.Price {
			best = &c
		}
	}

	if b.Original != nil {
		consider(BestOption{
			Source:   SourceBaseline,
			Price:    b.Original.Price,
			Currency: b.Original.Currency,
			Offer:    b.Original.Offer,
		})
	}
	for _, d := range b.FlexibleDates {
		consider(BestOption{
			Source:        SourceDates,
			Price:         d.Price,
			Currency:      d.Currency,
			Offer:         d.Offer,
			DepartureDate: d.DepartureDate,
			ReturnDate:    d.ReturnDate,
		})
	}
	for _, a := range b.NearbyAirports {
		consider(BestOption{
			Source:      SourceAirports,
			Price:       a.Price,
			Currency:    a.Currency,
			Offer:       a.Offer,
			Origin:      a.Origin,
			Destination: a.Destination,
		})
	}
	for _, c := range b.DifferentClasses {
		consider(BestOption{
			Source:   SourceClasses,
			Price:    c.Price,
			Currency: c.Currency,
			Offer:    c.Offer,
			Class:    c.Class,
		})
	}

	if best != nil && b.Original != nil {
		savings := b.Original.Price - best.Price
		pct := roundPercent(savings / b.Original.Price * 100)
		best.Savings = &savings
		best.SavingsPercent = &pct
	}
	return best
}

// dateRange lists the dates from center-days to center+days inclusive.
func dateRange(center string, days int) []string {
	t, err := time.Parse(flight.DateLayout, center)
	if err != nil {
		return nil
	}
	dates := make([]string, 0, 2*days+1)
	for i := -days; i <= days; i++ {
		dates = append(dates, t.AddDate(0, 0, i).Format(flight.DateLayout))
	}
	return dates
}

func roundPercent(x float64) float64 {
	return math.Round(x*10) / 10
}
