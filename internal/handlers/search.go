package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/voalerta/flight-service/internal/amadeus"
	"github.com/voalerta/flight-service/internal/flight"
)

// SmartSearchRequest is the payload for a fan-out search
type SmartSearchRequest struct {
	OriginLocationCode      string `json:"originLocationCode" binding:"required"`
	DestinationLocationCode string `json:"destinationLocationCode" binding:"required"`
	DepartureDate           string `json:"departureDate" binding:"required"`
	ReturnDate              string `json:"returnDate"`
	Adults                  int    `json:"adults"`
	Children                int    `json:"children"`
	Infants                 int    `json:"infants"`
	TravelClass             string `json:"travelClass"`
}

// SmartSearch fans a search out over flexible dates, nearby airports and
// cabin classes and returns the best recommendation
// @Summary Smart flight search
// @Description Explores flexible dates, nearby airports and alternate cabin classes around the requested parameters
// @Tags search
// @Accept json
// @Produce json
// @Param search body SmartSearchRequest true "Search parameters"
// @Success 200 {object} search.FormattedBundle
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/flights/search/smart [post]
func SmartSearch(c *gin.Context) {
	var req SmartSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := flight.SearchParams{
		Origin:        req.OriginLocationCode,
		Destination:   req.DestinationLocationCode,
		DepartureDate: req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Adults:        req.Adults,
		Children:      req.Children,
		Infants:       req.Infants,
		TravelClass:   req.TravelClass,
	}

	bundle, err := engine.Run(c.Request.Context(), params)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, bundle.Format())
}

// SearchAirports serves airport autocomplete
// @Summary Airport autocomplete
// @Description Searches airports and cities by free text, falling back to the built-in table when the provider is unavailable
// @Tags search
// @Produce json
// @Param q query string true "Search text, at least 2 characters"
// @Success 200 {array} amadeus.Location
// @Router /api/flights/airports/search [get]
func SearchAirports(c *gin.Context) {
	q := c.Query("q")
	if len(q) < 2 {
		c.JSON(http.StatusOK, []amadeus.Location{})
		return
	}

	locations, err := provider.Locations(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to search airports"})
		return
	}
	if locations == nil {
		locations = []amadeus.Location{}
	}
	c.JSON(http.StatusOK, locations)
}

// TripOffers returns live offers for a monitored trip
// @Summary Live offers for a trip
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {array} flight.Offer
// @Failure 404 {object} map[string]string "Not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/flights/{id}/offers [get]
func TripOffers(c *gin.Context) {
	trip, ok := loadTrip(c)
	if !ok {
		return
	}

	params := flight.SearchParams{
		Origin:        trip.Origin,
		Destination:   trip.Destination,
		DepartureDate: trip.DepartureDate.Format(flight.DateLayout),
		Adults:        trip.Adults,
		Children:      trip.Children,
		Infants:       trip.Infants,
		TravelClass:   trip.TravelClass,
	}
	if trip.ReturnDate != nil {
		params.ReturnDate = trip.ReturnDate.Format(flight.DateLayout)
	}

	offers, err := provider.SearchOffers(c.Request.Context(), params, 20)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch offers"})
		return
	}
	c.JSON(http.StatusOK, offers)
}
