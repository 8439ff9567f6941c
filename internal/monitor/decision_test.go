package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/voalerta/flight-service/internal/database"
)

func ptr(v float64) *float64 { return &v }

var checkTime = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func TestEvaluateDropThreshold(t *testing.T) {
	tests := []struct {
		name      string
		lastPrice *float64
		price     float64
		notify    bool
	}{
		{"six percent drop notifies", ptr(1000), 940, true},
		{"four percent drop stays quiet", ptr(1000), 960, false},
		{"exactly five percent notifies", ptr(1000), 950, true},
		{"price increase stays quiet", ptr(1000), 1100, false},
		{"no previous price stays quiet", nil, 940, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			trip := &database.Trip{LastPrice: tt.lastPrice}
			d := Evaluate(trip, tt.price, checkTime)
			assert.Equal(t, tt.notify, d.ShouldNotify)
			assert.False(t, d.InRange)
		})
	}
}

func TestEvaluateRangePolicy(t *testing.T) {
	trip := &database.Trip{MinPrice: ptr(500), MaxPrice: ptr(800)}

	d := Evaluate(trip, 750, checkTime)
	assert.True(t, d.InRange)
	assert.True(t, d.ShouldNotify)

	d = Evaluate(trip, 450, checkTime)
	assert.False(t, d.InRange)
	assert.False(t, d.ShouldNotify)

	d = Evaluate(trip, 850, checkTime)
	assert.False(t, d.InRange)
}

func TestEvaluateInvertedRangeNeverMatches(t *testing.T) {
	trip := &database.Trip{MinPrice: ptr(800), MaxPrice: ptr(500)}
	d := Evaluate(trip, 650, checkTime)
	assert.False(t, d.InRange)
}

func TestEvaluateCeilingAndTargetPolicies(t *testing.T) {
	ceiling := &database.Trip{MaxPrice: ptr(800)}
	assert.True(t, Evaluate(ceiling, 799, checkTime).ShouldNotify)
	assert.False(t, Evaluate(ceiling, 801, checkTime).ShouldNotify)

	target := &database.Trip{TargetPrice: ptr(600)}
	assert.True(t, Evaluate(target, 600, checkTime).ShouldNotify)
	assert.False(t, Evaluate(target, 601, checkTime).ShouldNotify)
}

func TestEvaluateRangeTakesPrecedenceOverTarget(t *testing.T) {
	// 450 satisfies the legacy target but falls outside the range; the
	// range variant wins.
	trip := &database.Trip{MinPrice: ptr(500), MaxPrice: ptr(800), TargetPrice: ptr(700)}
	d := Evaluate(trip, 450, checkTime)
	assert.False(t, d.InRange)
	assert.False(t, d.ShouldNotify)
}

func TestEvaluateDropFiresEvenOutsideRange(t *testing.T) {
	trip := &database.Trip{MinPrice: ptr(500), MaxPrice: ptr(600), LastPrice: ptr(1000)}
	d := Evaluate(trip, 900, checkTime)
	assert.False(t, d.InRange)
	assert.True(t, d.DroppedEnough)
	assert.True(t, d.ShouldNotify)
}

func TestEvaluateLowestPriceMonotone(t *testing.T) {
	trip := &database.Trip{}
	prices := []float64{900, 850, 950, 800}
	want := []float64{900, 850, 850, 800}

	for i, price := range prices {
		d := Evaluate(trip, price, checkTime)
		assert.Equal(t, want[i], d.LowestPrice, "step %d", i)
		trip.LastPrice = &d.LastPrice
		trip.LowestPrice = &d.LowestPrice
	}
}

func TestEvaluateAlwaysUpdatesState(t *testing.T) {
	trip := &database.Trip{LastPrice: ptr(1000), LowestPrice: ptr(700)}
	d := Evaluate(trip, 990, checkTime)
	assert.False(t, d.ShouldNotify)
	assert.Equal(t, checkTime, d.LastCheckedAt)
	assert.Equal(t, 990.0, d.LastPrice)
	assert.Equal(t, 700.0, d.LowestPrice)
}

func TestPolicyFromTripVariants(t *testing.T) {
	assert.IsType(t, NoPolicy{}, PolicyFromTrip(&database.Trip{}))
	assert.IsType(t, TargetPolicy{}, PolicyFromTrip(&database.Trip{TargetPrice: ptr(1)}))
	assert.IsType(t, CeilingPolicy{}, PolicyFromTrip(&database.Trip{MaxPrice: ptr(1)}))
	assert.IsType(t, RangePolicy{}, PolicyFromTrip(&database.Trip{MinPrice: ptr(1), MaxPrice: ptr(2)}))
	// A bare min has no usable bound.
	assert.IsType(t, NoPolicy{}, PolicyFromTrip(&database.Trip{MinPrice: ptr(1)}))
}
