package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/velomad/rideplanner/internal/core/domain"
	"github.com/velomad/rideplanner/internal/core/ports"

	"github.com/gin-gonic/gin"
)

// dateTimeLayout is the naive ISO form used by ride payloads and responses
// ("2025-10-05T18:30:00"). Timestamps without an offset are taken as UTC.
const dateTimeLayout = "2006-01-02T15:04:05"

const dateLayout = "2006-01-02"

type RideHandler struct {
	rideService ports.RideService
	logger      ports.LoggerPort
	metrics     ports.MetricsPort
}

type RideRequest struct {
	Title         string   `json:"title" binding:"required" example:"Evening Shakeout"`
	DateTime      string   `json:"date_time" binding:"required" example:"2025-10-05T18:30:00"`
	Pace          string   `json:"pace" binding:"required" example:"easy"`
	DistanceKm    *float64 `json:"distance_km" binding:"required" example:"8.5"`
	StartLocation string   `json:"start_location" binding:"required" example:"Retiro Park main gate"`
	CoffeeShopID  *int64   `json:"coffee_shop_id" example:"1"`
	Notes         *string  `json:"notes" example:"Social pace."`
}

type UpdateRide struct {
	Title         *string  `json:"title,omitempty" example:"Evening Shakeout (revised)"`
	DateTime      *string  `json:"date_time,omitempty" example:"2025-10-05T18:45:00"`
	Pace          *string  `json:"pace,omitempty" example:"moderate"`
	DistanceKm    *float64 `json:"distance_km,omitempty" example:"10"`
	StartLocation *string  `json:"start_location,omitempty" example:"Retiro Park main gate"`
	CoffeeShopID  *int64   `json:"coffee_shop_id,omitempty" example:"1"`
	Notes         *string  `json:"notes,omitempty" example:"Longer loop."`
}

type RideResponse struct {
	ID            int64   `json:"id"`
	Title         string  `json:"title"`
	DateTime      string  `json:"date_time"`
	Pace          string  `json:"pace"`
	DistanceKm    float64 `json:"distance_km"`
	StartLocation string  `json:"start_location"`
	CoffeeShopID  *int64  `json:"coffee_shop_id"`
	Notes         *string `json:"notes"`
}

func NewRideHandler(
	rideService ports.RideService,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
) *RideHandler {
	return &RideHandler{
		rideService: rideService,
		logger:      logger,
		metrics:     metrics,
	}
}

// @Summary Create a group ride
// @Description Create a ride; a supplied coffee_shop_id must reference an existing shop
// @Tags rides
// @Accept json
// @Produce json
// @Param request body RideRequest true "Ride payload"
// @Success 201 {object} RideResponse "Ride created"
// @Failure 400 {object} errorResponse "coffee_shop_id does not resolve to a shop"
// @Failure 422 {object} errorResponse "Validation error"
// @Router /rides [post]
func (h *RideHandler) CreateRide(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req RideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create ride", map[string]interface{}{
			"error": err.Error(),
		})
		newValidationErrorResponse(c, err)
		return
	}

	dateTime, err := parseDateTime(req.DateTime)
	if err != nil {
		h.logger.Error("Invalid date_time in create ride", map[string]interface{}{
			"date_time": req.DateTime,
			"error":     err.Error(),
		})
		newErrorResponse(c, http.StatusUnprocessableEntity, "Invalid date_time, expected ISO 8601")
		return
	}

	ride := &domain.GroupRide{
		Title:         req.Title,
		DateTime:      dateTime,
		Pace:          req.Pace,
		DistanceKm:    *req.DistanceKm,
		StartLocation: req.StartLocation,
		CoffeeShopID:  req.CoffeeShopID,
		Notes:         req.Notes,
	}

	createdRide, err := h.rideService.CreateRide(c.Request.Context(), ride)
	if err != nil {
		respondRideError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toRideResponse(createdRide))
}

// @Summary List group rides
// @Description Return rides, optionally filtered by exact pace and/or calendar date; filters combine conjunctively
// @Tags rides
// @Produce json
// @Param pace query string false "Exact pace match" example(easy)
// @Param on_date query string false "Calendar date (YYYY-MM-DD); matches rides within that day" example(2025-10-05)
// @Success 200 {array} RideResponse "Rides"
// @Failure 422 {object} errorResponse "Malformed on_date"
// @Router /rides [get]
func (h *RideHandler) ListRides(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	pace := c.Query("pace")

	var onDate *time.Time
	if raw := c.Query("on_date"); raw != "" {
		day, err := time.Parse(dateLayout, raw)
		if err != nil {
			h.logger.Error("Invalid on_date filter", map[string]interface{}{
				"on_date": raw,
				"error":   err.Error(),
			})
			newErrorResponse(c, http.StatusUnprocessableEntity, "Invalid on_date, expected YYYY-MM-DD")
			return
		}
		onDate = &day
	}

	rides, err := h.rideService.ListRides(c.Request.Context(), pace, onDate)
	if err != nil {
		respondRideError(c, err)
		return
	}

	responses := make([]RideResponse, len(rides))
	for i, ride := range rides {
		responses[i] = toRideResponse(ride)
	}

	c.JSON(http.StatusOK, responses)
}

// @Summary Get a group ride
// @Description Fetch one ride by id
// @Tags rides
// @Produce json
// @Param id path int true "Ride ID" example(1)
// @Success 200 {object} RideResponse "Ride found"
// @Failure 404 {object} errorResponse "Ride not found"
// @Router /rides/{id} [get]
func (h *RideHandler) GetRide(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	rideID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.logger.Error("Invalid ride ID format", map[string]interface{}{
			"ride_id": c.Param("id"),
		})
		newErrorResponse(c, http.StatusUnprocessableEntity, "Invalid ride ID")
		return
	}

	ride, err := h.rideService.GetRideByID(c.Request.Context(), rideID)
	if err != nil {
		respondRideError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRideResponse(ride))
}

// @Summary Update a group ride
// @Description Apply the supplied fields to a ride; fields absent from the payload keep their stored values
// @Tags rides
// @Accept json
// @Produce json
// @Param id path int true "Ride ID" example(1)
// @Param request body UpdateRide true "Fields to update"
// @Success 200 {object} RideResponse "Ride updated"
// @Failure 400 {object} errorResponse "coffee_shop_id does not resolve to a shop"
// @Failure 404 {object} errorResponse "Ride not found"
// @Failure 422 {object} errorResponse "Validation error"
// @Router /rides/{id} [put]
func (h *RideHandler) UpdateRide(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	rideID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.logger.Error("Invalid ride ID format", map[string]interface{}{
			"ride_id": c.Param("id"),
		})
		newErrorResponse(c, http.StatusUnprocessableEntity, "Invalid ride ID")
		return
	}

	existingRide, err := h.rideService.GetRideByID(c.Request.Context(), rideID)
	if err != nil {
		respondRideError(c, err)
		return
	}

	var req UpdateRide
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update ride", map[string]interface{}{
			"error": err.Error(),
		})
		newValidationErrorResponse(c, err)
		return
	}

	// only overwrite fields the caller actually supplied
	if req.Title != nil {
		existingRide.Title = *req.Title
	}
	if req.DateTime != nil {
		dateTime, err := parseDateTime(*req.DateTime)
		if err != nil {
			h.logger.Error("Invalid date_time in update ride", map[string]interface{}{
				"date_time": *req.DateTime,
				"error":     err.Error(),
			})
			newErrorResponse(c, http.StatusUnprocessableEntity, "Invalid date_time, expected ISO 8601")
			return
		}
		existingRide.DateTime = dateTime
	}
	if req.Pace != nil {
		existingRide.Pace = *req.Pace
	}
	if req.DistanceKm != nil {
		existingRide.DistanceKm = *req.DistanceKm
	}
	if req.StartLocation != nil {
		existingRide.StartLocation = *req.StartLocation
	}
	if req.CoffeeShopID != nil {
		existingRide.CoffeeShopID = req.CoffeeShopID
	}
	if req.Notes != nil {
		existingRide.Notes = req.Notes
	}

	updatedRide, err := h.rideService.UpdateRide(c.Request.Context(), existingRide)
	if err != nil {
		respondRideError(c, err)
		return
	}

	c.JSON(http.StatusOK, toRideResponse(updatedRide))
}

// @Summary Delete a group ride
// @Description Delete a ride and return a confirmation
// @Tags rides
// @Produce json
// @Param id path int true "Ride ID" example(1)
// @Success 200 {object} deleteResponse "Ride deleted"
// @Failure 404 {object} errorResponse "Ride not found"
// @Router /rides/{id} [delete]
func (h *RideHandler) DeleteRide(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	rideID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.logger.Error("Invalid ride ID format", map[string]interface{}{
			"ride_id": c.Param("id"),
		})
		newErrorResponse(c, http.StatusUnprocessableEntity, "Invalid ride ID")
		return
	}

	if err := h.rideService.DeleteRide(c.Request.Context(), rideID); err != nil {
		respondRideError(c, err)
		return
	}

	c.JSON(http.StatusOK, deleteResponse{
		Ok:      true,
		Message: "Ride deleted successfully.",
	})
}

func parseDateTime(raw string) (time.Time, error) {
	if t, err := time.Parse(dateTimeLayout, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}

func toRideResponse(ride *domain.GroupRide) RideResponse {
	return RideResponse{
		ID:            ride.ID,
		Title:         ride.Title,
		DateTime:      ride.DateTime.Format(dateTimeLayout),
		Pace:          ride.Pace,
		DistanceKm:    ride.DistanceKm,
		StartLocation: ride.StartLocation,
		CoffeeShopID:  ride.CoffeeShopID,
		Notes:         ride.Notes,
	}
}
