// Package monitor turns freshly observed prices into trip state updates and
// notification decisions, and drives the periodic check cycle.
package monitor

import (
	"time"

	"github.com/voalerta/flight-service/internal/database"
)

// DropThreshold is the relative price drop that triggers a notification on
// its own, independent of any price policy.
const DropThreshold = 0.05

// Policy is a trip's notification price rule. Exactly one variant applies to
// a trip at a time; PolicyFromTrip resolves the precedence once so no caller
// re-derives it.
type Policy interface {
	// InRange reports whether a price satisfies the policy.
	InRange(price float64) bool
}

// NoPolicy never matches. Trips without price thresholds still notify on
// relative drops.
type NoPolicy struct{}

func (NoPolicy) InRange(float64) bool { return false }

// TargetPolicy matches prices at or below a single legacy target.
type TargetPolicy struct {
	Target float64
}

func (p TargetPolicy) InRange(price float64) bool { return price <= p.Target }

// CeilingPolicy matches prices at or below a maximum.
type CeilingPolicy struct {
	Max float64
}

func (p CeilingPolicy) InRange(price float64) bool { return price <= p.Max }

// RangePolicy matches prices inside [Min, Max]. An inverted range never
// matches.
type RangePolicy struct {
	Min float64
	Max float64
}

func (p RangePolicy) InRange(price float64) bool { return price >= p.Min && price <= p.Max }

// PolicyFromTrip resolves a trip's nullable policy columns into one variant.
// A full range wins over a bare ceiling, which wins over the legacy target.
func PolicyFromTrip(t *database.Trip) Policy {
	switch {
	case t.MinPrice != nil && t.MaxPrice != nil:
		return RangePolicy{Min: *t.MinPrice, Max: *t.MaxPrice}
	case t.MaxPrice != nil:
		return CeilingPolicy{Max: *t.MaxPrice}
	case t.TargetPrice != nil:
		return TargetPolicy{Target: *t.TargetPrice}
	default:
		return NoPolicy{}
	}
}

// Decision is the outcome of evaluating one observed price against a trip.
// The state fields are the values the store should persist; they are computed
// regardless of whether a notification fires.
type Decision struct {
	ShouldNotify  bool
	InRange       bool
	DroppedEnough bool

	LastCheckedAt time.Time
	LastPrice     float64
	LowestPrice   float64
}

// Evaluate decides whether an observed price warrants notifying the trip's
// owner and computes the trip's next persisted state. It is a pure function
// over the trip, the price and the clock reading.
func Evaluate(trip *database.Trip, price float64, now time.Time) Decision {
	d := Decision{
		LastCheckedAt: now,
		LastPrice:     price,
		LowestPrice:   price,
	}
	if trip.LowestPrice != nil && *trip.LowestPrice < price {
		d.LowestPrice = *trip.LowestPrice
	}

	d.InRange = PolicyFromTrip(trip).InRange(price)

	if trip.LastPrice != nil && price < *trip.LastPrice {
		drop := (*trip.LastPrice - price) / *trip.LastPrice
		d.DroppedEnough = drop >= DropThreshold
	}

	d.ShouldNotify = d.InRange || d.DroppedEnough
	return d
}
