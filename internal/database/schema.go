package database

import (
	"context"
	"fmt"
)

// schema mirrors migrations/001_init.sql. Applied at startup so a fresh
// database works without a separate migration step.
const schema = `
CREATE TABLE IF NOT EXISTS flights_to_monitor (
	id TEXT PRIMARY KEY,
	origin VARCHAR(3) NOT NULL,
	destination VARCHAR(3) NOT NULL,
	departure_date DATE NOT NULL,
	return_date DATE,
	adults INTEGER NOT NULL DEFAULT 1,
	children INTEGER NOT NULL DEFAULT 0,
	infants INTEGER NOT NULL DEFAULT 0,
	travel_class VARCHAR(20) NOT NULL DEFAULT 'ECONOMY',
	target_price DECIMAL(10,2),
	min_price DECIMAL(10,2),
	max_price DECIMAL(10,2),
	notification_email VARCHAR(255) NOT NULL,
	notification_telegram_chat_id VARCHAR(50),
	is_active BOOLEAN NOT NULL DEFAULT TRUE,
	last_checked_at TIMESTAMPTZ,
	last_price DECIMAL(10,2),
	lowest_price DECIMAL(10,2),
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_flights_active ON flights_to_monitor(is_active);
CREATE INDEX IF NOT EXISTS idx_flights_dates ON flights_to_monitor(departure_date, return_date);

CREATE TABLE IF NOT EXISTS price_history (
	id BIGSERIAL PRIMARY KEY,
	flight_id TEXT NOT NULL REFERENCES flights_to_monitor(id) ON DELETE CASCADE,
	price DECIMAL(10,2) NOT NULL,
	currency VARCHAR(3) NOT NULL DEFAULT 'BRL',
	offer_data JSONB,
	checked_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_price_history_flight ON price_history(flight_id);
CREATE INDEX IF NOT EXISTS idx_price_history_checked ON price_history(checked_at DESC);
`

// EnsureSchema creates the tables and indexes if they do not exist yet.
func EnsureSchema(ctx context.Context) error {
	if _, err := Pool().Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
