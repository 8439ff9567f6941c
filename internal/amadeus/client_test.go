package amadeus

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voalerta/flight-service/internal/currency"
	"github.com/voalerta/flight-service/internal/flight"
	httpx "github.com/voalerta/flight-service/internal/http"
	"github.com/voalerta/flight-service/internal/http/ratelimit"
)

func testConverter(t *testing.T) *currency.Converter {
	t.Helper()
	rates := map[string]float64{"USD": 1.00, "BRL": 5.80, "EUR": 0.92}
	return currency.NewConverter(nil, "", time.Hour,
		currency.WithRates(rates, time.Now()))
}

func fastHTTPClient() *httpx.Client {
	cfg := ratelimit.Config{RequestsPerSecond: 1000, MaxRetries: 0, InitialBackoffMs: 1, MaxBackoffMs: 1}
	return httpx.NewClient(cfg)
}

func tokenHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if r.PostForm.Get("grant_type") != "client_credentials" {
		http.Error(w, "bad grant", http.StatusBadRequest)
		return
	}
	json.NewEncoder(w).Encode(map[string]any{
		"access_token": "test-token",
		"token_type":   "Bearer",
		"expires_in":   1799,
	})
}

func sampleParams() flight.SearchParams {
	return flight.SearchParams{
		Origin:        "GRU",
		Destination:   "JFK",
		DepartureDate: "2026-10-10",
		Adults:        1,
	}
}

func TestSearchOffersNormalizesAndSorts(t *testing.T) {
	var offerCalls int
	mux := http.NewServeMux()
	mux.HandleFunc(tokenPath, tokenHandler)
	mux.HandleFunc(offersPath, func(w http.ResponseWriter, r *http.Request) {
		offerCalls++
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "GRU", r.URL.Query().Get("originLocationCode"))
		assert.Equal(t, "ECONOMY", r.URL.Query().Get("travelClass"))
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{
					"id":    "2",
					"price": map[string]any{"total": "500.00", "currency": "USD"},
				},
				{
					"id":    "1",
					"price": map[string]any{"total": "2000.00", "currency": "BRL"},
				},
			},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client, err := NewClient(srv.URL, "id", "secret", fastHTTPClient(), testConverter(t), Options{})
	require.NoError(t, err)

	offers, err := client.SearchOffers(context.Background(), sampleParams(), 10)
	require.NoError(t, err)
	require.Len(t, offers, 2)

	// 2000 BRL sorts below 500 USD (2900 BRL at the test rate).
	assert.Equal(t, "1", offers[0].ID)
	assert.Equal(t, 2000.0, offers[0].Price.TotalBRL)
	assert.Equal(t, "2", offers[1].ID)
	assert.Equal(t, 2900.0, offers[1].Price.TotalBRL)

	// Second call hits the cache, not the server.
	_, err = client.SearchOffers(context.Background(), sampleParams(), 10)
	require.NoError(t, err)
	assert.Equal(t, 1, offerCalls)
}

func TestSearchOffersRejectsInvalidParams(t *testing.T) {
	client, err := NewClient("http://unused", "id", "secret", fastHTTPClient(), testConverter(t), Options{})
	require.NoError(t, err)

	_, err = client.SearchOffers(context.Background(), flight.SearchParams{Origin: "GRU"}, 10)
	assert.Error(t, err)
}

func TestLowestPriceEmpty(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(tokenPath, tokenHandler)
	mux.HandleFunc(offersPath, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client, err := NewClient(srv.URL, "id", "secret", fastHTTPClient(), testConverter(t), Options{})
	require.NoError(t, err)

	quote, err := client.LowestPrice(context.Background(), sampleParams())
	require.NoError(t, err)
	assert.Nil(t, quote)
}

func TestLowestPricePicksCheapest(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(tokenPath, tokenHandler)
	mux.HandleFunc(offersPath, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{
				{"id": "a", "price": map[string]any{"total": "3100.00", "currency": "BRL"}},
				{"id": "b", "price": map[string]any{"total": "2850.50", "currency": "BRL"}},
			},
		})
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client, err := NewClient(srv.URL, "id", "secret", fastHTTPClient(), testConverter(t), Options{})
	require.NoError(t, err)

	quote, err := client.LowestPrice(context.Background(), sampleParams())
	require.NoError(t, err)
	require.NotNil(t, quote)
	assert.Equal(t, 2850.50, quote.Price)
	assert.Equal(t, "BRL", quote.Currency)
	assert.Equal(t, "b", quote.Offer.ID)
}

func TestLocationsFallsBackToLocalTable(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc(tokenPath, tokenHandler)
	mux.HandleFunc(locationsPath, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusServiceUnavailable)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client, err := NewClient(srv.URL, "id", "secret", fastHTTPClient(), testConverter(t), Options{})
	require.NoError(t, err)

	locs, err := client.Locations(context.Background(), "guarulhos")
	require.NoError(t, err)
	require.NotEmpty(t, locs)
	assert.Equal(t, "GRU", locs[0].IATACode)
	assert.Contains(t, locs[0].Label, "GRU - ")
}

func TestLocationsShortKeyword(t *testing.T) {
	client, err := NewClient("http://unused", "id", "secret", fastHTTPClient(), testConverter(t), Options{})
	require.NoError(t, err)

	locs, err := client.Locations(context.Background(), "g")
	require.NoError(t, err)
	assert.Empty(t, locs)
}

func TestNewClientRequiresCredentials(t *testing.T) {
	_, err := NewClient("http://unused", "", "", fastHTTPClient(), testConverter(t), Options{})
	assert.Error(t, err)
}
