package currency

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpx "github.com/voalerta/flight-service/internal/http"
	"github.com/voalerta/flight-service/internal/http/ratelimit"
)

func fastClient() *httpx.Client {
	return httpx.NewClient(ratelimit.Config{
		RequestsPerSecond: 1000,
		MaxRetries:        0,
		InitialBackoffMs:  1,
		MaxBackoffMs:      1,
	})
}

func TestConvertSeededRates(t *testing.T) {
	c := NewConverter(fastClient(), "http://unused.invalid", time.Hour,
		WithRates(map[string]float64{"USD": 1.00, "BRL": 5.80, "EUR": 0.92}, time.Now()),
	)
	ctx := context.Background()

	got, err := c.Convert(ctx, 100, "USD", "BRL")
	require.NoError(t, err)
	assert.Equal(t, 580.0, got)

	got, err = c.Convert(ctx, 580, "BRL", "USD")
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)

	// Pivot through USD: 92 EUR -> 100 USD -> 580 BRL.
	got, err = c.Convert(ctx, 92, "EUR", "BRL")
	require.NoError(t, err)
	assert.Equal(t, 580.0, got)
}

func TestConvertSameCurrency(t *testing.T) {
	c := NewConverter(fastClient(), "http://unused.invalid", time.Hour)
	got, err := c.Convert(context.Background(), 123.45, "BRL", "BRL")
	require.NoError(t, err)
	assert.Equal(t, 123.45, got)
}

func TestConvertUnknownCurrencyAtFaceValue(t *testing.T) {
	c := NewConverter(fastClient(), "http://unused.invalid", time.Hour,
		WithRates(map[string]float64{"USD": 1.00, "BRL": 5.80}, time.Now()),
	)
	got, err := c.Convert(context.Background(), 100, "XYZ", "USD")
	require.NoError(t, err)
	assert.Equal(t, 100.0, got)
}

func TestRefreshAfterTTL(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`{"base":"USD","rates":{"USD":1.0,"BRL":6.00}}`))
	}))
	defer srv.Close()

	clock := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	c := NewConverter(fastClient(), srv.URL, time.Hour,
		WithClock(func() time.Time { return clock }),
		WithRates(map[string]float64{"USD": 1.00, "BRL": 5.80}, clock),
	)
	ctx := context.Background()

	got, err := c.Convert(ctx, 100, "USD", "BRL")
	require.NoError(t, err)
	assert.Equal(t, 580.0, got)
	assert.Equal(t, int32(0), calls.Load(), "fresh table should not refetch")

	clock = clock.Add(2 * time.Hour)
	got, err = c.Convert(ctx, 100, "USD", "BRL")
	require.NoError(t, err)
	assert.Equal(t, 600.0, got)
	assert.Equal(t, int32(1), calls.Load())
}

func TestFallbackRatesWhenProviderDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	c := NewConverter(fastClient(), srv.URL, time.Hour)

	got, err := c.Convert(context.Background(), 100, "USD", "BRL")
	require.NoError(t, err)
	assert.Equal(t, 580.0, got)
}

func TestStaleTableSurvivesFailedRefresh(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	clock := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	c := NewConverter(fastClient(), srv.URL, time.Hour,
		WithClock(func() time.Time { return clock }),
		WithRates(map[string]float64{"USD": 1.00, "BRL": 5.50}, clock),
	)

	clock = clock.Add(2 * time.Hour)
	got, err := c.Convert(context.Background(), 100, "USD", "BRL")
	require.NoError(t, err)
	assert.Equal(t, 550.0, got, "stale table is better than none")
}
