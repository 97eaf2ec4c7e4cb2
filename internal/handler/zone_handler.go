package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"taxi-dashboard/internal/service"
	"taxi-dashboard/pkg/response"
)

// ZoneHandler handles HTTP requests for reference data
type ZoneHandler struct {
	service *service.ZoneService
}

// NewZoneHandler creates a new zone handler
func NewZoneHandler(service *service.ZoneService) *ZoneHandler {
	return &ZoneHandler{service: service}
}

// GetZones handles GET /api/v1/zones
func (h *ZoneHandler) GetZones(c *gin.Context) {
	zones, err := h.service.GetZones()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get zones", err)
		return
	}
	response.Success(c, zones)
}

// GetPaymentTypes handles GET /api/v1/payment-types
func (h *ZoneHandler) GetPaymentTypes(c *gin.Context) {
	options, err := h.service.GetPaymentTypes()
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Failed to get payment types", err)
		return
	}
	response.Success(c, options)
}
