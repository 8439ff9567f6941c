package database

import (
	"encoding/json"
	"time"
)

// Trip is a user's persistent request to monitor a route/date for price
// changes. Policy fields (target_price, min_price, max_price) and the
// notification targets are edited by the user; last_checked_at, last_price
// and lowest_price are written only by the monitoring worker.
type Trip struct {
	ID                 string     `json:"id"`
	Origin             string     `json:"origin"`
	Destination        string     `json:"destination"`
	DepartureDate      time.Time  `json:"departure_date"`
	ReturnDate         *time.Time `json:"return_date"`
	Adults             int        `json:"adults"`
	Children           int        `json:"children"`
	Infants            int        `json:"infants"`
	TravelClass        string     `json:"travel_class"`
	TargetPrice        *float64   `json:"target_price"`        // legacy single-threshold policy
	MinPrice           *float64   `json:"min_price"`
	MaxPrice           *float64   `json:"max_price"`
	NotificationEmail  string     `json:"notification_email"`
	NotificationChatID *string    `json:"notification_telegram_chat_id"`
	IsActive           bool       `json:"is_active"`
	LastCheckedAt      *time.Time `json:"last_checked_at"`
	LastPrice          *float64   `json:"last_price"`
	LowestPrice        *float64   `json:"lowest_price"`
	CreatedAt          time.Time  `json:"created_at"`
}

// PriceObservation is one append-only price history record for a trip.
type PriceObservation struct {
	ID        int64           `json:"id"`
	FlightID  string          `json:"flight_id"`
	Price     float64         `json:"price"`
	Currency  string          `json:"currency"`
	OfferData json.RawMessage `json:"offer_data"`
	CheckedAt time.Time       `json:"checked_at"`
}

// TripStats summarizes a trip's price history.
type TripStats struct {
	Current     float64   `json:"current"`
	Lowest      float64   `json:"lowest"`
	Highest     float64   `json:"highest"`
	Average     float64   `json:"average"`
	Currency    string    `json:"currency"`
	TotalChecks int       `json:"totalChecks"`
	LastChecked time.Time `json:"lastChecked"`
}
