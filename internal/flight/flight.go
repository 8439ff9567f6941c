// Package flight holds the shared flight-search value objects used by the
// provider client, the smart-search engine, and the monitoring worker.
package flight

import (
	"fmt"
	"time"
)

// DateLayout is the wire format for all travel dates.
const DateLayout = "2006-01-02"

// ReferenceCurrency is the currency every offer price is normalized into.
const ReferenceCurrency = "BRL"

// Cabin classes accepted by the offers provider, in fixed fare order.
const (
	ClassEconomy        = "ECONOMY"
	ClassPremiumEconomy = "PREMIUM_ECONOMY"
	ClassBusiness       = "BUSINESS"
	ClassFirst          = "FIRST"
)

// CabinClasses lists the supported cabin classes in fare order.
var CabinClasses = []string{ClassEconomy, ClassPremiumEconomy, ClassBusiness, ClassFirst}

// SearchParams is an immutable set of search parameters for one offers query.
// ReturnDate is empty for one-way trips.
type SearchParams struct {
	Origin        string `json:"originLocationCode"`
	Destination   string `json:"destinationLocationCode"`
	DepartureDate string `json:"departureDate"`
	ReturnDate    string `json:"returnDate,omitempty"`
	Adults        int    `json:"adults"`
	Children      int    `json:"children"`
	Infants       int    `json:"infants"`
	TravelClass   string `json:"travelClass"`
}

// Validate rejects parameter sets that must never reach the provider.
func (p SearchParams) Validate() error {
	if p.Origin == "" {
		return fmt.Errorf("missing origin location code")
	}
	if p.Destination == "" {
		return fmt.Errorf("missing destination location code")
	}
	if p.DepartureDate == "" {
		return fmt.Errorf("missing departure date")
	}
	if _, err := time.Parse(DateLayout, p.DepartureDate); err != nil {
		return fmt.Errorf("invalid departure date %q: %w", p.DepartureDate, err)
	}
	if p.ReturnDate != "" {
		if _, err := time.Parse(DateLayout, p.ReturnDate); err != nil {
			return fmt.Errorf("invalid return date %q: %w", p.ReturnDate, err)
		}
	}
	if p.Adults < 1 {
		return fmt.Errorf("at least one adult required")
	}
	return nil
}

// Normalized returns a copy with defaults applied, suitable as a cache key.
func (p SearchParams) Normalized() SearchParams {
	if p.Adults == 0 {
		p.Adults = 1
	}
	if p.TravelClass == "" {
		p.TravelClass = ClassEconomy
	}
	return p
}

// CacheKey renders the normalized parameters as a stable string key.
func (p SearchParams) CacheKey() string {
	n := p.Normalized()
	return fmt.Sprintf("%s:%s:%s:%s:%d:%d:%d:%s",
		n.Origin, n.Destination, n.DepartureDate, n.ReturnDate,
		n.Adults, n.Children, n.Infants, n.TravelClass)
}

// Price is an offer's total price, both as quoted by the provider and
// normalized into the reference currency.
type Price struct {
	Total    float64 `json:"total"`
	Currency string  `json:"currency"`
	TotalBRL float64 `json:"totalBRL"`
}

// Endpoint is one end of a flight segment.
type Endpoint struct {
	IATACode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

// Segment is one non-stop leg within an itinerary.
type Segment struct {
	Departure       Endpoint `json:"departure"`
	Arrival         Endpoint `json:"arrival"`
	CarrierCode     string   `json:"carrierCode"`
	CarrierName     string   `json:"carrierName"`
	Number          string   `json:"number"`
	Aircraft        string   `json:"aircraft,omitempty"`
	Duration        string   `json:"duration"`
	NumberOfStops   int      `json:"numberOfStops"`
	BlacklistedInEU bool     `json:"blacklistedInEU"`
}

// Itinerary is one direction of travel, outbound or return.
type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

// Offer is one priced, bookable itinerary returned by the provider.
// It is never mutated after construction.
type Offer struct {
	ID                     string      `json:"id"`
	Price                  Price       `json:"price"`
	Itineraries            []Itinerary `json:"itineraries"`
	ValidatingAirlineCodes []string    `json:"validatingAirlineCodes"`
	NumberOfBookableSeats  int         `json:"numberOfBookableSeats"`
}
