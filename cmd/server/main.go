package main

import (
	"log"

	"go.uber.org/zap"

	"taxi-dashboard/internal/api"
	"taxi-dashboard/internal/config"
	"taxi-dashboard/internal/database"
	"taxi-dashboard/internal/logging"
)

func main() {
	cfg := config.Load()

	logger, err := logging.NewLogger()
	if err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}
	defer logger.Sync()

	// Open the cleaned dataset; refuses to start when the pipeline has
	// not produced one yet
	dbConfig := database.Config{
		Path: cfg.DatasetPath,
	}
	if err := database.Init(dbConfig); err != nil {
		logger.Fatal("Failed to open cleaned dataset", zap.Error(err))
	}
	defer database.Close()

	router := api.SetupRouter(cfg, logger, database.GetDB())

	logger.Info("Server starting", zap.String("port", cfg.Port))
	if err := router.Run(cfg.Port); err != nil {
		logger.Fatal("Failed to start server", zap.Error(err))
	}
}
