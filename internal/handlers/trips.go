package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/voalerta/flight-service/internal/database"
	"github.com/voalerta/flight-service/internal/flight"
)

// CreateTripRequest is the payload for registering a trip to monitor
type CreateTripRequest struct {
	Origin                     string   `json:"origin" binding:"required"`
	Destination                string   `json:"destination" binding:"required"`
	DepartureDate              string   `json:"departureDate" binding:"required"`
	ReturnDate                 *string  `json:"returnDate"`
	Adults                     int      `json:"adults"`
	Children                   int      `json:"children"`
	Infants                    int      `json:"infants"`
	TravelClass                string   `json:"travelClass"`
	TargetPrice                *float64 `json:"targetPrice"`
	MinPrice                   *float64 `json:"minPrice"`
	MaxPrice                   *float64 `json:"maxPrice"`
	NotificationEmail          string   `json:"notificationEmail" binding:"required"`
	NotificationTelegramChatID *string  `json:"notificationTelegramChatId"`
}

// CreateTrip registers a new trip for price monitoring
// @Summary Create monitored trip
// @Description Registers a route and date to watch, with an optional price policy
// @Tags trips
// @Accept json
// @Produce json
// @Param trip body CreateTripRequest true "Trip to monitor"
// @Success 201 {object} database.Trip
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/flights [post]
func CreateTrip(c *gin.Context) {
	var req CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	departure, err := time.Parse(flight.DateLayout, req.DepartureDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid departureDate, expected YYYY-MM-DD"})
		return
	}

	trip := database.Trip{
		Origin:             req.Origin,
		Destination:        req.Destination,
		DepartureDate:      departure,
		Adults:             req.Adults,
		Children:           req.Children,
		Infants:            req.Infants,
		TravelClass:        req.TravelClass,
		TargetPrice:        req.TargetPrice,
		MinPrice:           req.MinPrice,
		MaxPrice:           req.MaxPrice,
		NotificationEmail:  req.NotificationEmail,
		NotificationChatID: req.NotificationTelegramChatID,
		IsActive:           true,
	}
	if req.ReturnDate != nil && *req.ReturnDate != "" {
		ret, err := time.Parse(flight.DateLayout, *req.ReturnDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid returnDate, expected YYYY-MM-DD"})
			return
		}
		trip.ReturnDate = &ret
	}

	if err := database.CreateTrip(c.Request.Context(), &trip); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create trip"})
		return
	}

	c.JSON(http.StatusCreated, trip)
}

// ListTrips returns every monitored trip
// @Summary List monitored trips
// @Tags trips
// @Produce json
// @Success 200 {array} database.Trip
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/flights [get]
func ListTrips(c *gin.Context) {
	trips, err := database.ListTrips(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list trips"})
		return
	}
	c.JSON(http.StatusOK, trips)
}

// GetTrip returns one monitored trip
// @Summary Get monitored trip
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} database.Trip
// @Failure 404 {object} map[string]string "Not found"
// @Router /api/flights/{id} [get]
func GetTrip(c *gin.Context) {
	trip, ok := loadTrip(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, trip)
}

// UpdateTripRequest carries the user-editable trip fields. Absent fields are
// left unchanged.
type UpdateTripRequest struct {
	TargetPrice                *float64 `json:"target_price"`
	MinPrice                   *float64 `json:"min_price"`
	MaxPrice                   *float64 `json:"max_price"`
	NotificationEmail          *string  `json:"notification_email"`
	NotificationTelegramChatID *string  `json:"notification_telegram_chat_id"`
	IsActive                   *bool    `json:"is_active"`
}

// UpdateTrip edits a trip's price policy and notification settings
// @Summary Update monitored trip
// @Tags trips
// @Accept json
// @Produce json
// @Param id path string true "Trip ID"
// @Param updates body UpdateTripRequest true "Fields to update"
// @Success 200 {object} database.Trip
// @Failure 400 {object} map[string]string "Bad request"
// @Failure 404 {object} map[string]string "Not found"
// @Router /api/flights/{id} [put]
func UpdateTrip(c *gin.Context) {
	var req UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.MinPrice != nil && req.MaxPrice != nil && *req.MinPrice > *req.MaxPrice {
		c.JSON(http.StatusBadRequest, gin.H{"error": "min_price must not exceed max_price"})
		return
	}

	trip, err := database.UpdateTripSettings(c.Request.Context(), c.Param("id"), database.TripSettings{
		TargetPrice:        req.TargetPrice,
		MinPrice:           req.MinPrice,
		MaxPrice:           req.MaxPrice,
		NotificationEmail:  req.NotificationEmail,
		NotificationChatID: req.NotificationTelegramChatID,
		IsActive:           req.IsActive,
	})
	if errors.Is(err, database.ErrTripNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Flight not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update trip"})
		return
	}

	c.JSON(http.StatusOK, trip)
}

// DeleteTrip removes a trip and cascades its price history
// @Summary Delete monitored trip
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string "Not found"
// @Router /api/flights/{id} [delete]
func DeleteTrip(c *gin.Context) {
	err := database.DeleteTrip(c.Request.Context(), c.Param("id"))
	if errors.Is(err, database.ErrTripNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Flight not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete trip"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Flight deleted successfully"})
}

// CheckTripNow forces an immediate price check for a trip
// @Summary On-demand price check
// @Description Quotes the current lowest price, records it and applies the notification rules
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} monitor.CheckResult
// @Failure 404 {object} map[string]string "Not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /api/flights/{id}/check [post]
func CheckTripNow(c *gin.Context) {
	trip, ok := loadTrip(c)
	if !ok {
		return
	}

	result, err := checker.CheckTrip(c.Request.Context(), trip)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to persist check result"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// TripHistory returns a trip's price observations, newest first
// @Summary Price history
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Param limit query int false "Maximum observations to return" default(100)
// @Success 200 {array} database.PriceObservation
// @Failure 404 {object} map[string]string "Not found"
// @Router /api/flights/{id}/history [get]
func TripHistory(c *gin.Context) {
	trip, ok := loadTrip(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	history, err := database.PriceHistory(c.Request.Context(), trip.ID, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load price history"})
		return
	}
	c.JSON(http.StatusOK, history)
}

// TripStatsResponse pairs a trip with its price statistics
type TripStatsResponse struct {
	Flight  *database.Trip      `json:"flight"`
	Stats   *database.TripStats `json:"stats,omitempty"`
	Message string              `json:"message,omitempty"`
}

// TripStats returns aggregate price statistics for a trip
// @Summary Price statistics
// @Tags trips
// @Produce json
// @Param id path string true "Trip ID"
// @Success 200 {object} TripStatsResponse
// @Failure 404 {object} map[string]string "Not found"
// @Router /api/flights/{id}/stats [get]
func TripStats(c *gin.Context) {
	trip, ok := loadTrip(c)
	if !ok {
		return
	}

	stats, err := database.GetTripStats(c.Request.Context(), trip.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load stats"})
		return
	}
	if stats == nil {
		c.JSON(http.StatusOK, TripStatsResponse{Flight: trip, Message: "No price history available yet"})
		return
	}
	c.JSON(http.StatusOK, TripStatsResponse{Flight: trip, Stats: stats})
}

// loadTrip fetches the trip named by the :id path param, writing the error
// response itself when the trip cannot be served.
func loadTrip(c *gin.Context) (*database.Trip, bool) {
	trip, err := database.GetTrip(c.Request.Context(), c.Param("id"))
	if errors.Is(err, database.ErrTripNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Flight not found"})
		return nil, false
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load trip"})
		return nil, false
	}
	return trip, true
}
