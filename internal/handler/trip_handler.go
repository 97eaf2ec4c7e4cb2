package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taxi-dashboard/internal/models"
	"taxi-dashboard/internal/service"
	"taxi-dashboard/pkg/response"
)

// TripHandler handles HTTP requests for trips
type TripHandler struct {
	service *service.TripService
}

// NewTripHandler creates a new trip handler
func NewTripHandler(service *service.TripService) *TripHandler {
	return &TripHandler{service: service}
}

// GetTrips handles GET /api/v1/trips
func (h *TripHandler) GetTrips(c *gin.Context) {
	var filter models.TripFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return
	}

	// Clamp up front so the reported pagination matches what the
	// repository actually applied
	filter.Normalize()

	trips, total, err := h.service.GetTrips(filter)
	if err != nil {
		var invalid service.ErrInvalidFilter
		if errors.As(err, &invalid) {
			response.Error(c, http.StatusBadRequest, "Invalid filter", err)
			return
		}
		response.Error(c, http.StatusInternalServerError, "Failed to get trips", err)
		return
	}

	totalPages := int(total) / filter.PageSize
	if int(total)%filter.PageSize > 0 {
		totalPages++
	}

	if trips == nil {
		trips = []models.TripRecord{}
	}

	response.Success(c, models.TripsResponse{
		Data:       trips,
		Total:      total,
		Page:       filter.Page,
		PageSize:   filter.PageSize,
		TotalPages: totalPages,
	})
}
