// Package notify delivers price alerts over email and telegram. Channels are
// attempted independently and delivery failures are logged, never propagated,
// so a broken channel cannot block the monitoring cycle.
package notify

import (
	"fmt"
	"time"
)

// Alert carries everything a notification channel needs to render one price
// alert. It is a read-only value assembled by the monitor.
type Alert struct {
	Origin        string
	Destination   string
	DepartureDate time.Time
	ReturnDate    *time.Time
	Adults        int
	TravelClass   string

	Currency      string
	CurrentPrice  float64
	PreviousPrice *float64
	TargetPrice   *float64

	Email          string
	TelegramChatID string
}

// PriceChange returns the delta and percent change against the previous
// price. Both are zero when no previous price exists.
func (a Alert) PriceChange() (delta, percent float64) {
	if a.PreviousPrice == nil || *a.PreviousPrice == 0 {
		return 0, 0
	}
	delta = a.CurrentPrice - *a.PreviousPrice
	percent = delta / *a.PreviousPrice * 100
	return delta, percent
}

// IsDecrease reports whether the price dropped against the previous price.
func (a Alert) IsDecrease() bool {
	delta, _ := a.PriceChange()
	return delta < 0
}

// TargetReached reports whether the current price is at or below the trip's
// legacy target price.
func (a Alert) TargetReached() bool {
	return a.TargetPrice != nil && a.CurrentPrice <= *a.TargetPrice
}

// Route renders the origin-destination pair for display.
func (a Alert) Route() string {
	return fmt.Sprintf("%s → %s", a.Origin, a.Destination)
}

// formatDate renders a travel date in pt-BR day/month/year order.
func formatDate(t time.Time) string {
	return t.Format("02/01/2006")
}
