// Package currency converts offer prices into the reference currency using a
// periodically refreshed exchange-rate table.
package currency

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	httpx "github.com/voalerta/flight-service/internal/http"
)

// fallbackRates are used when the rate provider is unreachable and no cached
// table exists. Approximate, USD-based.
var fallbackRates = map[string]float64{
	"USD": 1.00,
	"BRL": 5.80,
	"EUR": 0.92,
	"GBP": 0.79,
}

// Converter holds a USD-based rate table with an explicit TTL checked on
// every read. The clock is injected so staleness is testable without real
// time passing.
type Converter struct {
	mu        sync.RWMutex
	rates     map[string]float64
	fetchedAt time.Time

	ratesURL string
	ttl      time.Duration
	client   *httpx.Client
	now      func() time.Time
	logger   zerolog.Logger
}

// Option configures a Converter.
type Option func(*Converter)

// WithClock injects a clock, used by tests.
func WithClock(now func() time.Time) Option {
	return func(c *Converter) { c.now = now }
}

// WithRates seeds the rate table, used by tests to avoid network fetches.
func WithRates(rates map[string]float64, fetchedAt time.Time) Option {
	return func(c *Converter) {
		c.rates = rates
		c.fetchedAt = fetchedAt
	}
}

// NewConverter creates a converter refreshing from ratesURL at most once per ttl.
func NewConverter(client *httpx.Client, ratesURL string, ttl time.Duration, opts ...Option) *Converter {
	c := &Converter{
		ratesURL: ratesURL,
		ttl:      ttl,
		client:   client,
		now:      time.Now,
		logger:   log.With().Str("component", "currency").Logger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type ratesResponse struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// refresh fetches a fresh rate table. On failure it falls back to the
// previous table, or to the static fallback rates when none exists.
func (c *Converter) refresh(ctx context.Context) {
	var resp ratesResponse
	if err := c.client.GetJSON(ctx, c.ratesURL, nil, &resp); err != nil {
		c.logger.Error().Err(err).Msg("Failed to fetch exchange rates")
		c.mu.Lock()
		if c.rates == nil {
			c.rates = fallbackRates
			c.fetchedAt = c.now()
		}
		c.mu.Unlock()
		return
	}

	c.mu.Lock()
	c.rates = resp.Rates
	c.fetchedAt = c.now()
	c.mu.Unlock()
	c.logger.Info().Int("currencies", len(resp.Rates)).Msg("Exchange rates updated")
}

// currentRates returns a fresh-enough rate table, refreshing if the TTL has
// elapsed since the last fetch.
func (c *Converter) currentRates(ctx context.Context) map[string]float64 {
	c.mu.RLock()
	fresh := c.rates != nil && c.now().Sub(c.fetchedAt) <= c.ttl
	rates := c.rates
	c.mu.RUnlock()

	if fresh {
		return rates
	}

	c.refresh(ctx)

	c.mu.RLock()
	rates = c.rates
	c.mu.RUnlock()
	return rates
}

// Convert converts amount from one currency to another, pivoting through USD.
// Unknown currencies convert at 1:1 against USD, matching the provider's
// behavior of quoting unknowns at face value.
func (c *Converter) Convert(ctx context.Context, amount float64, from, to string) (float64, error) {
	if from == to {
		return amount, nil
	}

	rates := c.currentRates(ctx)
	if rates == nil {
		return 0, fmt.Errorf("no exchange rates available")
	}

	amountUSD := amount
	if from != "USD" {
		rate := rates[from]
		if rate == 0 {
			rate = 1
		}
		amountUSD = amount / rate
	}

	converted := amountUSD
	if to != "USD" {
		rate := rates[to]
		if rate == 0 {
			rate = 1
		}
		converted = amountUSD * rate
	}

	return math.Round(converted*100) / 100, nil
}
