package search

import "github.com/voalerta/flight-service/internal/flight"

// Baseline is the cheapest offer for the caller's exact original parameters.
type Baseline struct {
	Price    float64      `json:"price"`
	Currency string       `json:"currency"`
	Offer    flight.Offer `json:"offer"`
}

// DateOption is the cheapest offer found for one date pair in the
// flexible-dates sweep. Savings fields compare against the sweep's own entry
// for the original date pair and are nil when that entry is absent.
type DateOption struct {
	DepartureDate    string       `json:"departureDate"`
	ReturnDate       string       `json:"returnDate,omitempty"`
	Price            float64      `json:"price"`
	Currency         string       `json:"currency"`
	OriginalPrice    float64      `json:"originalPrice"`
	OriginalCurrency string       `json:"originalCurrency"`
	Offer            flight.Offer `json:"offer"`
	Savings          *float64     `json:"savings"`
	SavingsPercent   *float64     `json:"savingsPercent,omitempty"`
}

// AirportOption is the cheapest offer found for one alternate airport pair.
type AirportOption struct {
	Origin           string       `json:"origin"`
	Destination      string       `json:"destination"`
	Price            float64      `json:"price"`
	Currency         string       `json:"currency"`
	OriginalPrice    float64      `json:"originalPrice"`
	OriginalCurrency string       `json:"originalCurrency"`
	Offer            flight.Offer `json:"offer"`
}

// ClassOption is the cheapest offer found for one cabin class.
type ClassOption struct {
	Class            string       `json:"class"`
	Price            float64      `json:"price"`
	Currency         string       `json:"currency"`
	OriginalPrice    float64      `json:"originalPrice"`
	OriginalCurrency string       `json:"originalCurrency"`
	Offer            flight.Offer `json:"offer"`
}

// Best-overall source buckets.
const (
	SourceBaseline = "original"
	SourceDates    = "flexibleDates"
	SourceAirports = "nearbyAirports"
	SourceClasses  = "differentClasses"
)

// BestOption is the single cheapest candidate across the baseline and all
// three sweeps. Source names the bucket it came from; the dimension fields of
// the other buckets stay empty. Savings fields compare against the baseline
// and are nil when no baseline was found.
type BestOption struct {
	Source           string       `json:"source"`
	Price            float64      `json:"price"`
	Currency         string       `json:"currency"`
	Offer            flight.Offer `json:"offer"`
	DepartureDate    string       `json:"departureDate,omitempty"`
	ReturnDate       string       `json:"returnDate,omitempty"`
	Origin           string       `json:"origin,omitempty"`
	Destination      string       `json:"destination,omitempty"`
	Class            string       `json:"class,omitempty"`
	Savings          *float64     `json:"savings,omitempty"`
	SavingsPercent   *float64     `json:"savingsPercent,omitempty"`
}

// Bundle is the aggregate result of one fan-out run.
type Bundle struct {
	Original         *Baseline       `json:"original"`
	FlexibleDates    []DateOption    `json:"flexibleDates"`
	NearbyAirports   []AirportOption `json:"nearbyAirports"`
	DifferentClasses []ClassOption   `json:"differentClasses"`
	BestOverall      *BestOption     `json:"bestOverall"`
}

// Summary condenses a Bundle for list views.
type Summary struct {
	TotalOptions   int      `json:"totalOptions"`
	OriginalPrice  *float64 `json:"originalPrice,omitempty"`
	BestPrice      *float64 `json:"bestPrice,omitempty"`
	Savings        *float64 `json:"savings,omitempty"`
	SavingsPercent *float64 `json:"savingsPercent,omitempty"`
}

// Recommendations is the trimmed presentation of a Bundle.
type Recommendations struct {
	BestDeal         *BestOption     `json:"bestDeal"`
	FlexibleDates    []DateOption    `json:"flexibleDates"`
	NearbyAirports   []AirportOption `json:"nearbyAirports"`
	DifferentClasses []ClassOption   `json:"differentClasses"`
}

// FormattedBundle pairs a summary with trimmed recommendation lists.
type FormattedBundle struct {
	Summary         Summary         `json:"summary"`
	Recommendations Recommendations `json:"recommendations"`
}

// Format condenses the bundle for API responses, capping the flexible-date
// list at five entries and the airport list at three.
func (b *Bundle) Format() FormattedBundle {
	f := FormattedBundle{
		Summary: Summary{
			TotalOptions: len(b.FlexibleDates) + len(b.NearbyAirports) + len(b.DifferentClasses),
		},
		Recommendations: Recommendations{
			BestDeal:         b.BestOverall,
			FlexibleDates:    capSlice(b.FlexibleDates, 5),
			NearbyAirports:   capSlice(b.NearbyAirports, 3),
			DifferentClasses: b.DifferentClasses,
		},
	}
	if b.Original != nil {
		f.Summary.OriginalPrice = &b.Original.Price
	}
	if b.BestOverall != nil {
		f.Summary.BestPrice = &b.BestOverall.Price
		f.Summary.Savings = b.BestOverall.Savings
		f.Summary.SavingsPercent = b.BestOverall.SavingsPercent
	}
	return f
}

func capSlice[T any](s []T, n int) []T {
	if len(s) > n {
		return s[:n]
	}
	return s
}
