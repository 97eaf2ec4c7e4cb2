package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"taxi-dashboard/internal/models"
	"taxi-dashboard/internal/service"
	"taxi-dashboard/pkg/response"
)

// StatsHandler handles HTTP requests for dashboard aggregates
type StatsHandler struct {
	statsService *service.StatsService
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(statsService *service.StatsService) *StatsHandler {
	return &StatsHandler{
		statsService: statsService,
	}
}

func bindStatsFilter(c *gin.Context) (models.StatsFilter, bool) {
	var filter models.StatsFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.Error(c, http.StatusBadRequest, "Invalid query parameters", err)
		return filter, false
	}
	return filter, true
}

func respond(c *gin.Context, data interface{}, err error) {
	if err != nil {
		var invalid service.ErrInvalidFilter
		if errors.As(err, &invalid) {
			response.Error(c, http.StatusBadRequest, "Invalid filter", err)
			return
		}
		response.InternalError(c, err.Error())
		return
	}
	response.Success(c, data)
}

// GetSummary handles GET /api/v1/stats/summary
func (h *StatsHandler) GetSummary(c *gin.Context) {
	filter, ok := bindStatsFilter(c)
	if !ok {
		return
	}
	summary, err := h.statsService.GetSummary(filter)
	respond(c, summary, err)
}

// GetTripsByHour handles GET /api/v1/stats/trips-by-hour
func (h *StatsHandler) GetTripsByHour(c *gin.Context) {
	filter, ok := bindStatsFilter(c)
	if !ok {
		return
	}
	buckets, err := h.statsService.GetTripsByHour(filter)
	respond(c, buckets, err)
}

// GetFareDistribution handles GET /api/v1/stats/fare-distribution
func (h *StatsHandler) GetFareDistribution(c *gin.Context) {
	filter, ok := bindStatsFilter(c)
	if !ok {
		return
	}
	buckets, err := h.statsService.GetFareDistribution(filter)
	respond(c, buckets, err)
}

// GetDistanceDistribution handles GET /api/v1/stats/distance-distribution
func (h *StatsHandler) GetDistanceDistribution(c *gin.Context) {
	filter, ok := bindStatsFilter(c)
	if !ok {
		return
	}
	buckets, err := h.statsService.GetDistanceDistribution(filter)
	respond(c, buckets, err)
}

// GetPaymentBreakdown handles GET /api/v1/stats/payment-breakdown
func (h *StatsHandler) GetPaymentBreakdown(c *gin.Context) {
	filter, ok := bindStatsFilter(c)
	if !ok {
		return
	}
	shares, err := h.statsService.GetPaymentBreakdown(filter)
	respond(c, shares, err)
}

// GetTopZones handles GET /api/v1/stats/top-zones
func (h *StatsHandler) GetTopZones(c *gin.Context) {
	filter, ok := bindStatsFilter(c)
	if !ok {
		return
	}
	zones, err := h.statsService.GetTopZones(filter)
	respond(c, zones, err)
}

// GetHeatmap handles GET /api/v1/stats/heatmap
func (h *StatsHandler) GetHeatmap(c *gin.Context) {
	filter, ok := bindStatsFilter(c)
	if !ok {
		return
	}
	cells, err := h.statsService.GetHeatmap(filter)
	respond(c, cells, err)
}
