package monitor

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voalerta/flight-service/internal/amadeus"
	"github.com/voalerta/flight-service/internal/database"
	"github.com/voalerta/flight-service/internal/flight"
	"github.com/voalerta/flight-service/internal/notify"
)

type fakeSource struct {
	quote  *amadeus.Quote
	err    error
	params []flight.SearchParams
}

func (f *fakeSource) LowestPrice(_ context.Context, p flight.SearchParams) (*amadeus.Quote, error) {
	f.params = append(f.params, p)
	return f.quote, f.err
}

type appliedState struct {
	id          string
	checkedAt   time.Time
	lastPrice   float64
	lowestPrice float64
}

type fakeStore struct {
	trips        []database.Trip
	observations []database.PriceObservation
	applied      []appliedState
	obsErr       error
	applyErr     error
}

func (f *fakeStore) ActiveTrips(context.Context) ([]database.Trip, error) {
	return f.trips, nil
}

func (f *fakeStore) AddObservation(_ context.Context, flightID string, price float64, currency string, offerData json.RawMessage) (*database.PriceObservation, error) {
	if f.obsErr != nil {
		return nil, f.obsErr
	}
	obs := database.PriceObservation{FlightID: flightID, Price: price, Currency: currency, OfferData: offerData}
	f.observations = append(f.observations, obs)
	return &obs, nil
}

func (f *fakeStore) ApplyCheckResult(_ context.Context, id string, checkedAt time.Time, lastPrice, lowestPrice float64) error {
	if f.applyErr != nil {
		return f.applyErr
	}
	f.applied = append(f.applied, appliedState{id, checkedAt, lastPrice, lowestPrice})
	return nil
}

type fakeDispatcher struct {
	alerts []notify.Alert
}

func (f *fakeDispatcher) Dispatch(a notify.Alert) {
	f.alerts = append(f.alerts, a)
}

func quoteFor(price float64) *amadeus.Quote {
	return &amadeus.Quote{
		Price:    price,
		Currency: "BRL",
		Offer:    flight.Offer{ID: "o1", Price: flight.Price{TotalBRL: price, Currency: "BRL", Total: price}},
	}
}

func monitoredTrip() *database.Trip {
	ret := time.Date(2026, 10, 22, 0, 0, 0, 0, time.UTC)
	return &database.Trip{
		ID:                "trip-1",
		Origin:            "GRU",
		Destination:       "JFK",
		DepartureDate:     time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
		ReturnDate:        &ret,
		Adults:            2,
		TravelClass:       flight.ClassEconomy,
		NotificationEmail: "user@example.com",
		IsActive:          true,
	}
}

func TestCheckTripPersistsAndNotifies(t *testing.T) {
	source := &fakeSource{quote: quoteFor(940)}
	store := &fakeStore{}
	dispatcher := &fakeDispatcher{}
	trip := monitoredTrip()
	trip.LastPrice = ptr(1000)
	trip.LowestPrice = ptr(950)

	c := newChecker(source, store, dispatcher, func() time.Time { return checkTime })
	result, err := c.CheckTrip(context.Background(), trip)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 940.0, result.Price)
	assert.True(t, result.ShouldNotify)

	require.Len(t, store.observations, 1)
	assert.Equal(t, "trip-1", store.observations[0].FlightID)
	assert.Equal(t, 940.0, store.observations[0].Price)
	assert.NotEmpty(t, store.observations[0].OfferData)

	require.Len(t, store.applied, 1)
	assert.Equal(t, checkTime, store.applied[0].checkedAt)
	assert.Equal(t, 940.0, store.applied[0].lastPrice)
	assert.Equal(t, 940.0, store.applied[0].lowestPrice)

	require.Len(t, dispatcher.alerts, 1)
	alert := dispatcher.alerts[0]
	assert.Equal(t, "user@example.com", alert.Email)
	assert.Equal(t, 940.0, alert.CurrentPrice)
	// The alert shows the pre-check price as "previous".
	require.NotNil(t, alert.PreviousPrice)
	assert.Equal(t, 1000.0, *alert.PreviousPrice)

	require.Len(t, source.params, 1)
	assert.Equal(t, "2026-10-15", source.params[0].DepartureDate)
	assert.Equal(t, "2026-10-22", source.params[0].ReturnDate)
}

func TestCheckTripQuietObservationStillPersisted(t *testing.T) {
	source := &fakeSource{quote: quoteFor(990)}
	store := &fakeStore{}
	dispatcher := &fakeDispatcher{}
	trip := monitoredTrip()
	trip.LastPrice = ptr(1000)

	c := newChecker(source, store, dispatcher, func() time.Time { return checkTime })
	result, err := c.CheckTrip(context.Background(), trip)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.False(t, result.ShouldNotify)
	assert.Len(t, store.observations, 1)
	assert.Len(t, store.applied, 1)
	assert.Empty(t, dispatcher.alerts)
}

func TestCheckTripNoOffers(t *testing.T) {
	c := newChecker(&fakeSource{}, &fakeStore{}, &fakeDispatcher{}, time.Now)
	result, err := c.CheckTrip(context.Background(), monitoredTrip())
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "no offers found", result.Message)
}

func TestCheckTripProviderError(t *testing.T) {
	source := &fakeSource{err: errors.New("provider down")}
	store := &fakeStore{}
	c := newChecker(source, store, &fakeDispatcher{}, time.Now)

	result, err := c.CheckTrip(context.Background(), monitoredTrip())
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Equal(t, "provider down", result.Error)
	assert.Empty(t, store.observations)
}

func TestCheckTripPersistenceErrorPropagates(t *testing.T) {
	source := &fakeSource{quote: quoteFor(940)}
	store := &fakeStore{applyErr: errors.New("db down")}
	c := newChecker(source, store, &fakeDispatcher{}, time.Now)

	_, err := c.CheckTrip(context.Background(), monitoredTrip())
	assert.Error(t, err)
}
