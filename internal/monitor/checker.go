package monitor

import (
	"context"
	"encoding/json"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/voalerta/flight-service/internal/amadeus"
	"github.com/voalerta/flight-service/internal/database"
	"github.com/voalerta/flight-service/internal/flight"
	"github.com/voalerta/flight-service/internal/notify"
)

// PriceSource quotes the cheapest current offer for a parameter set. A nil
// quote with a nil error means the provider has no offers.
type PriceSource interface {
	LowestPrice(ctx context.Context, params flight.SearchParams) (*amadeus.Quote, error)
}

// TripStore persists trip state and price history.
type TripStore interface {
	ActiveTrips(ctx context.Context) ([]database.Trip, error)
	AddObservation(ctx context.Context, flightID string, price float64, currency string, offerData json.RawMessage) (*database.PriceObservation, error)
	ApplyCheckResult(ctx context.Context, id string, checkedAt time.Time, lastPrice, lowestPrice float64) error
}

// AlertDispatcher fans one alert out to its channels, fire and forget.
type AlertDispatcher interface {
	Dispatch(a notify.Alert)
}

// dbStore adapts the database package to TripStore.
type dbStore struct{}

func (dbStore) ActiveTrips(ctx context.Context) ([]database.Trip, error) {
	return database.ActiveTrips(ctx)
}

func (dbStore) AddObservation(ctx context.Context, flightID string, price float64, currency string, offerData json.RawMessage) (*database.PriceObservation, error) {
	return database.AddObservation(ctx, flightID, price, currency, offerData)
}

func (dbStore) ApplyCheckResult(ctx context.Context, id string, checkedAt time.Time, lastPrice, lowestPrice float64) error {
	return database.ApplyCheckResult(ctx, id, checkedAt, lastPrice, lowestPrice)
}

// CheckResult is the outcome of one trip check, also served by the on-demand
// check endpoint.
type CheckResult struct {
	Success      bool          `json:"success"`
	Message      string        `json:"message,omitempty"`
	Error        string        `json:"error,omitempty"`
	Price        float64       `json:"price,omitempty"`
	Currency     string        `json:"currency,omitempty"`
	ShouldNotify bool          `json:"shouldNotify"`
	Offer        *flight.Offer `json:"offer,omitempty"`
}

// Checker runs one price check per trip: quote, persist, decide, notify.
type Checker struct {
	source     PriceSource
	store      TripStore
	dispatcher AlertDispatcher
	now        func() time.Time
	logger     zerolog.Logger
}

// NewChecker creates a checker backed by the shared database pool.
func NewChecker(source PriceSource, dispatcher AlertDispatcher) *Checker {
	return newChecker(source, dbStore{}, dispatcher, time.Now)
}

func newChecker(source PriceSource, store TripStore, dispatcher AlertDispatcher, now func() time.Time) *Checker {
	return &Checker{
		source:     source,
		store:      store,
		dispatcher: dispatcher,
		now:        now,
		logger:     log.With().Str("component", "monitor").Logger(),
	}
}

// CheckTrip runs one full check for a trip. Provider failures and empty
// results are reported in the CheckResult; only persistence failures return
// an error.
func (c *Checker) CheckTrip(ctx context.Context, trip *database.Trip) (*CheckResult, error) {
	c.logger.Info().
		Str("trip_id", trip.ID).
		Str("route", trip.Origin+" → "+trip.Destination).
		Msg("checking trip")

	quote, err := c.source.LowestPrice(ctx, tripParams(trip))
	if err != nil {
		checksTotal.WithLabelValues("provider_error").Inc()
		c.logger.Error().Err(err).Str("trip_id", trip.ID).Msg("price check failed")
		return &CheckResult{Success: false, Error: err.Error()}, nil
	}
	if quote == nil {
		checksTotal.WithLabelValues("no_offers").Inc()
		c.logger.Warn().Str("trip_id", trip.ID).Msg("no offers found")
		return &CheckResult{Success: false, Message: "no offers found"}, nil
	}

	offerData, err := json.Marshal(quote.Offer)
	if err != nil {
		return nil, err
	}
	if _, err := c.store.AddObservation(ctx, trip.ID, quote.Price, quote.Currency, offerData); err != nil {
		return nil, err
	}

	decision := Evaluate(trip, quote.Price, c.now())
	if err := c.store.ApplyCheckResult(ctx, trip.ID, decision.LastCheckedAt, decision.LastPrice, decision.LowestPrice); err != nil {
		return nil, err
	}

	if decision.ShouldNotify {
		notificationsTotal.Inc()
		c.dispatcher.Dispatch(alertFor(trip, quote))
		c.logger.Info().Str("trip_id", trip.ID).Float64("price", quote.Price).Msg("alert dispatched")
	}

	checksTotal.WithLabelValues("ok").Inc()
	c.logger.Info().
		Str("trip_id", trip.ID).
		Float64("price", quote.Price).
		Str("currency", quote.Currency).
		Bool("notified", decision.ShouldNotify).
		Msg("trip checked")

	offer := quote.Offer
	return &CheckResult{
		Success:      true,
		Price:        quote.Price,
		Currency:     quote.Currency,
		ShouldNotify: decision.ShouldNotify,
		Offer:        &offer,
	}, nil
}

func tripParams(trip *database.Trip) flight.SearchParams {
	p := flight.SearchParams{
		Origin:        trip.Origin,
		Destination:   trip.Destination,
		DepartureDate: trip.DepartureDate.Format(flight.DateLayout),
		Adults:        trip.Adults,
		Children:      trip.Children,
		Infants:       trip.Infants,
		TravelClass:   trip.TravelClass,
	}
	if trip.ReturnDate != nil {
		p.ReturnDate = trip.ReturnDate.Format(flight.DateLayout)
	}
	return p
}

// alertFor assembles the alert from the trip's state before the check was
// applied, so the previous price shows the pre-check value.
func alertFor(trip *database.Trip, quote *amadeus.Quote) notify.Alert {
	a := notify.Alert{
		Origin:        trip.Origin,
		Destination:   trip.Destination,
		DepartureDate: trip.DepartureDate,
		ReturnDate:    trip.ReturnDate,
		Adults:        trip.Adults,
		TravelClass:   trip.TravelClass,
		Currency:      quote.Currency,
		CurrentPrice:  quote.Price,
		PreviousPrice: trip.LastPrice,
		TargetPrice:   trip.TargetPrice,
		Email:         trip.NotificationEmail,
	}
	if trip.NotificationChatID != nil {
		a.TelegramChatID = *trip.NotificationChatID
	}
	return a
}
