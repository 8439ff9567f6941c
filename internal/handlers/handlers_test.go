package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voalerta/flight-service/config"
	"github.com/voalerta/flight-service/internal/amadeus"
	"github.com/voalerta/flight-service/internal/currency"
	httpx "github.com/voalerta/flight-service/internal/http"
	"github.com/voalerta/flight-service/internal/http/ratelimit"
	"github.com/voalerta/flight-service/internal/monitor"
	"github.com/voalerta/flight-service/internal/notify"
	"github.com/voalerta/flight-service/internal/search"
)

// setupRouter wires the handler package against a provider whose upstream is
// always down, so every offers call falls back or fails fast without network.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	t.Cleanup(upstream.Close)

	client := httpx.NewClient(ratelimit.Config{
		RequestsPerSecond: 1000,
		MaxRetries:        0,
		InitialBackoffMs:  1,
		MaxBackoffMs:      1,
	})
	converter := currency.NewConverter(client, upstream.URL, time.Hour,
		currency.WithRates(map[string]float64{"USD": 1.00, "BRL": 5.80}, time.Now()),
	)

	provider, err := amadeus.NewClient(upstream.URL, "id", "secret", client, converter, amadeus.Options{})
	require.NoError(t, err)

	engine := search.NewEngine(provider, search.DefaultConfig())
	checker := monitor.NewChecker(provider, notify.NewDispatcher(config.NotificationsConfig{}))
	Init(provider, engine, checker)

	router := gin.New()
	router.GET("/health", HealthCheck)
	router.POST("/api/flights", CreateTrip)
	router.PUT("/api/flights/:id", UpdateTrip)
	router.POST("/api/flights/search/smart", SmartSearch)
	router.GET("/api/flights/airports/search", SearchAirports)
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHealthCheckWithoutDatabase(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(router, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.Contains(t, rec.Body.String(), `"database":"not configured"`)
}

func TestSearchAirportsShortQuery(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/flights/airports/search?q=g", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", rec.Body.String())
}

func TestSearchAirportsFallsBackToLocalTable(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/flights/airports/search?q=guarulhos", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"iataCode":"GRU"`)
}

func TestCreateTripRejectsMissingFields(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/flights", `{"origin":"GRU"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateTripRejectsBadDate(t *testing.T) {
	router := setupRouter(t)

	body := `{"origin":"GRU","destination":"JFK","departureDate":"15/10/2026","notificationEmail":"user@example.com"}`
	rec := doRequest(router, http.MethodPost, "/api/flights", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateTripRejectsInvertedRange(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(router, http.MethodPut, "/api/flights/some-id", `{"min_price":900,"max_price":500}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "min_price must not exceed max_price")
}

func TestSmartSearchRejectsMissingRoute(t *testing.T) {
	router := setupRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/flights/search/smart", `{"departureDate":"2026-10-15"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
