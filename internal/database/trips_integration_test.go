package database

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// setupTestDB starts a disposable postgres container and points the shared
// pool at it.
func setupTestDB(ctx context.Context, t *testing.T) func() {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "test",
				"POSTGRES_PASSWORD": "test",
				"POSTGRES_DB":       "test",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections"),
		},
		Started: true,
	})
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connString := fmt.Sprintf("postgres://test:test@%s:%s/test?sslmode=disable", host, port.Port())
	require.NoError(t, Connect(ctx, connString, 5, 1, time.Hour, 30*time.Minute))
	require.NoError(t, EnsureSchema(ctx))

	return func() {
		Close()
		container.Terminate(ctx)
	}
}

func testTrip() *Trip {
	return &Trip{
		Origin:            "GRU",
		Destination:       "JFK",
		DepartureDate:     time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC),
		NotificationEmail: "user@example.com",
		IsActive:          true,
	}
}

func TestTripLifecycle(t *testing.T) {
	ctx := context.Background()
	cleanup := setupTestDB(ctx, t)
	defer cleanup()

	trip := testTrip()
	require.NoError(t, CreateTrip(ctx, trip))
	assert.NotEmpty(t, trip.ID)
	assert.Equal(t, 1, trip.Adults)
	assert.Equal(t, "ECONOMY", trip.TravelClass)
	assert.False(t, trip.CreatedAt.IsZero())

	loaded, err := GetTrip(ctx, trip.ID)
	require.NoError(t, err)
	assert.Equal(t, "GRU", loaded.Origin)
	assert.Nil(t, loaded.LastPrice)

	trips, err := ListTrips(ctx)
	require.NoError(t, err)
	assert.Len(t, trips, 1)

	target := 2500.0
	active := false
	updated, err := UpdateTripSettings(ctx, trip.ID, TripSettings{
		TargetPrice: &target,
		IsActive:    &active,
	})
	require.NoError(t, err)
	require.NotNil(t, updated.TargetPrice)
	assert.Equal(t, 2500.0, *updated.TargetPrice)
	assert.False(t, updated.IsActive)
	// Untouched fields keep their values.
	assert.Equal(t, "user@example.com", updated.NotificationEmail)

	activeTrips, err := ActiveTrips(ctx)
	require.NoError(t, err)
	assert.Empty(t, activeTrips)

	require.NoError(t, DeleteTrip(ctx, trip.ID))
	_, err = GetTrip(ctx, trip.ID)
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestTripNotFound(t *testing.T) {
	ctx := context.Background()
	cleanup := setupTestDB(ctx, t)
	defer cleanup()

	_, err := GetTrip(ctx, "missing")
	assert.ErrorIs(t, err, ErrTripNotFound)

	err = DeleteTrip(ctx, "missing")
	assert.ErrorIs(t, err, ErrTripNotFound)

	_, err = UpdateTripSettings(ctx, "missing", TripSettings{})
	assert.ErrorIs(t, err, ErrTripNotFound)
}

func TestObservationsAndStats(t *testing.T) {
	ctx := context.Background()
	cleanup := setupTestDB(ctx, t)
	defer cleanup()

	trip := testTrip()
	require.NoError(t, CreateTrip(ctx, trip))

	offer := json.RawMessage(`{"id":"o1"}`)
	for _, price := range []float64{3000, 2800, 3100} {
		obs, err := AddObservation(ctx, trip.ID, price, "BRL", offer)
		require.NoError(t, err)
		assert.NotZero(t, obs.ID)
	}

	history, err := PriceHistory(ctx, trip.ID, 2)
	require.NoError(t, err)
	assert.Len(t, history, 2)

	stats, err := GetTripStats(ctx, trip.ID)
	require.NoError(t, err)
	require.NotNil(t, stats)
	assert.Equal(t, 2800.0, stats.Lowest)
	assert.Equal(t, 3100.0, stats.Highest)
	assert.Equal(t, 3, stats.TotalChecks)
	assert.InDelta(t, 2966.67, stats.Average, 0.01)

	// Deleting the trip cascades its history.
	require.NoError(t, DeleteTrip(ctx, trip.ID))
	history, err = PriceHistory(ctx, trip.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestApplyCheckResult(t *testing.T) {
	ctx := context.Background()
	cleanup := setupTestDB(ctx, t)
	defer cleanup()

	trip := testTrip()
	require.NoError(t, CreateTrip(ctx, trip))

	checkedAt := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, ApplyCheckResult(ctx, trip.ID, checkedAt, 2900, 2800))

	loaded, err := GetTrip(ctx, trip.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.LastPrice)
	assert.Equal(t, 2900.0, *loaded.LastPrice)
	require.NotNil(t, loaded.LowestPrice)
	assert.Equal(t, 2800.0, *loaded.LowestPrice)
	require.NotNil(t, loaded.LastCheckedAt)
}
