package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ErrTripNotFound is returned when a trip id does not exist.
var ErrTripNotFound = errors.New("trip not found")

const tripColumns = `
	id, origin, destination, departure_date, return_date,
	adults, children, infants, travel_class,
	target_price, min_price, max_price,
	notification_email, notification_telegram_chat_id,
	is_active, last_checked_at, last_price, lowest_price, created_at`

func scanTrip(row pgx.Row) (*Trip, error) {
	var t Trip
	err := row.Scan(
		&t.ID, &t.Origin, &t.Destination, &t.DepartureDate, &t.ReturnDate,
		&t.Adults, &t.Children, &t.Infants, &t.TravelClass,
		&t.TargetPrice, &t.MinPrice, &t.MaxPrice,
		&t.NotificationEmail, &t.NotificationChatID,
		&t.IsActive, &t.LastCheckedAt, &t.LastPrice, &t.LowestPrice, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTrip inserts a new monitored trip. The id and created_at fields are
// assigned here; monitoring state starts empty.
func CreateTrip(ctx context.Context, t *Trip) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Adults == 0 {
		t.Adults = 1
	}
	if t.TravelClass == "" {
		t.TravelClass = "ECONOMY"
	}
	t.IsActive = true

	row := Pool().QueryRow(ctx, `
		INSERT INTO flights_to_monitor (
			id, origin, destination, departure_date, return_date,
			adults, children, infants, travel_class,
			target_price, min_price, max_price,
			notification_email, notification_telegram_chat_id, is_active
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
		RETURNING created_at
	`,
		t.ID, t.Origin, t.Destination, t.DepartureDate, t.ReturnDate,
		t.Adults, t.Children, t.Infants, t.TravelClass,
		t.TargetPrice, t.MinPrice, t.MaxPrice,
		t.NotificationEmail, t.NotificationChatID, t.IsActive,
	)
	if err := row.Scan(&t.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}
	return nil
}

// GetTrip loads one trip by id.
func GetTrip(ctx context.Context, id string) (*Trip, error) {
	row := Pool().QueryRow(ctx, `SELECT `+tripColumns+` FROM flights_to_monitor WHERE id = $1`, id)
	t, err := scanTrip(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTripNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load trip %s: %w", id, err)
	}
	return t, nil
}

// ListTrips returns all trips, newest first.
func ListTrips(ctx context.Context) ([]Trip, error) {
	rows, err := Pool().Query(ctx, `SELECT `+tripColumns+` FROM flights_to_monitor ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query trips: %w", err)
	}
	defer rows.Close()

	return collectTrips(rows)
}

// ActiveTrips returns all trips with is_active = true.
func ActiveTrips(ctx context.Context) ([]Trip, error) {
	rows, err := Pool().Query(ctx, `SELECT `+tripColumns+` FROM flights_to_monitor WHERE is_active ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query active trips: %w", err)
	}
	defer rows.Close()

	return collectTrips(rows)
}

func collectTrips(rows pgx.Rows) ([]Trip, error) {
	var trips []Trip
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, *t)
	}
	return trips, rows.Err()
}

// TripSettings are the user-editable trip fields. Nil means "leave unchanged".
type TripSettings struct {
	TargetPrice        *float64
	MinPrice           *float64
	MaxPrice           *float64
	NotificationEmail  *string
	NotificationChatID *string
	IsActive           *bool
}

// UpdateTripSettings applies user edits and returns the updated trip.
func UpdateTripSettings(ctx context.Context, id string, s TripSettings) (*Trip, error) {
	row := Pool().QueryRow(ctx, `
		UPDATE flights_to_monitor SET
			target_price                  = COALESCE($2, target_price),
			min_price                     = COALESCE($3, min_price),
			max_price                     = COALESCE($4, max_price),
			notification_email            = COALESCE($5, notification_email),
			notification_telegram_chat_id = COALESCE($6, notification_telegram_chat_id),
			is_active                     = COALESCE($7, is_active)
		WHERE id = $1
		RETURNING `+tripColumns+`
	`, id, s.TargetPrice, s.MinPrice, s.MaxPrice, s.NotificationEmail, s.NotificationChatID, s.IsActive)

	t, err := scanTrip(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrTripNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update trip %s: %w", id, err)
	}
	return t, nil
}

// ApplyCheckResult persists the monitoring state computed by the decision
// engine in a single write.
func ApplyCheckResult(ctx context.Context, id string, checkedAt time.Time, lastPrice, lowestPrice float64) error {
	tag, err := Pool().Exec(ctx, `
		UPDATE flights_to_monitor
		SET last_checked_at = $2, last_price = $3, lowest_price = $4
		WHERE id = $1
	`, id, checkedAt, lastPrice, lowestPrice)
	if err != nil {
		return fmt.Errorf("failed to persist check result for trip %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTripNotFound
	}
	return nil
}

// DeleteTrip removes a trip. Its price history is removed by the
// ON DELETE CASCADE constraint on price_history.flight_id.
func DeleteTrip(ctx context.Context, id string) error {
	tag, err := Pool().Exec(ctx, `DELETE FROM flights_to_monitor WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete trip %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrTripNotFound
	}
	return nil
}

// AddObservation appends one price history record for a trip.
func AddObservation(ctx context.Context, flightID string, price float64, currency string, offerData json.RawMessage) (*PriceObservation, error) {
	obs := PriceObservation{
		FlightID:  flightID,
		Price:     price,
		Currency:  currency,
		OfferData: offerData,
	}
	row := Pool().QueryRow(ctx, `
		INSERT INTO price_history (flight_id, price, currency, offer_data)
		VALUES ($1, $2, $3, $4)
		RETURNING id, checked_at
	`, flightID, price, currency, offerData)
	if err := row.Scan(&obs.ID, &obs.CheckedAt); err != nil {
		return nil, fmt.Errorf("failed to append price observation: %w", err)
	}
	return &obs, nil
}

// PriceHistory returns up to limit observations for a trip, newest first.
func PriceHistory(ctx context.Context, flightID string, limit int) ([]PriceObservation, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := Pool().Query(ctx, `
		SELECT id, flight_id, price, currency, offer_data, checked_at
		FROM price_history
		WHERE flight_id = $1
		ORDER BY checked_at DESC
		LIMIT $2
	`, flightID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query price history: %w", err)
	}
	defer rows.Close()

	var history []PriceObservation
	for rows.Next() {
		var o PriceObservation
		if err := rows.Scan(&o.ID, &o.FlightID, &o.Price, &o.Currency, &o.OfferData, &o.CheckedAt); err != nil {
			return nil, fmt.Errorf("failed to scan observation: %w", err)
		}
		history = append(history, o)
	}
	return history, rows.Err()
}

// GetTripStats aggregates a trip's price history. Returns nil when the trip
// has no observations yet.
func GetTripStats(ctx context.Context, flightID string) (*TripStats, error) {
	var (
		stats TripStats
		count int
	)
	err := Pool().QueryRow(ctx, `
		SELECT COUNT(*),
		       COALESCE(MIN(price), 0),
		       COALESCE(MAX(price), 0),
		       COALESCE(AVG(price), 0)
		FROM price_history
		WHERE flight_id = $1
	`, flightID).Scan(&count, &stats.Lowest, &stats.Highest, &stats.Average)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate price history: %w", err)
	}
	if count == 0 {
		return nil, nil
	}
	stats.TotalChecks = count

	err = Pool().QueryRow(ctx, `
		SELECT price, currency, checked_at
		FROM price_history
		WHERE flight_id = $1
		ORDER BY checked_at DESC
		LIMIT 1
	`, flightID).Scan(&stats.Current, &stats.Currency, &stats.LastChecked)
	if err != nil {
		return nil, fmt.Errorf("failed to load latest observation: %w", err)
	}

	return &stats, nil
}
