package api

import (
	"database/sql"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"taxi-dashboard/internal/config"
	"taxi-dashboard/internal/handler"
	"taxi-dashboard/internal/middleware"
	"taxi-dashboard/internal/repository"
	"taxi-dashboard/internal/service"
)

// SetupRouter wires repositories, services, and handlers onto the gin
// engine
func SetupRouter(cfg *config.Config, logger *zap.Logger, db *sql.DB) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger(logger))

	// CORS middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	tripHandler := handler.NewTripHandler(
		service.NewTripService(repository.NewTripRepository(db)))
	statsHandler := handler.NewStatsHandler(
		service.NewStatsService(repository.NewStatsRepository(db), cfg.TopZonesLimit))
	zoneHandler := handler.NewZoneHandler(
		service.NewZoneService(repository.NewZoneRepository(db)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Taxi dashboard API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		api.GET("/trips", tripHandler.GetTrips)
		api.GET("/zones", zoneHandler.GetZones)
		api.GET("/payment-types", zoneHandler.GetPaymentTypes)

		stats := api.Group("/stats")
		{
			stats.GET("/summary", statsHandler.GetSummary)
			stats.GET("/trips-by-hour", statsHandler.GetTripsByHour)
			stats.GET("/fare-distribution", statsHandler.GetFareDistribution)
			stats.GET("/distance-distribution", statsHandler.GetDistanceDistribution)
			stats.GET("/payment-breakdown", statsHandler.GetPaymentBreakdown)
			stats.GET("/top-zones", statsHandler.GetTopZones)
			stats.GET("/heatmap", statsHandler.GetHeatmap)
		}
	}

	return r
}
