package main

import (
	"os"

	"github.com/gin-gonic/gin"

	"hotel-revenue-dashboard/config"
	"hotel-revenue-dashboard/handlers"
	"hotel-revenue-dashboard/predictor"
	"hotel-revenue-dashboard/storage"
	"hotel-revenue-dashboard/utils"
)

func main() {
	// ================== Bootstrap ====================
	cfg := config.Load()
	logger := utils.NewLogger(cfg.Verbose)

	logger.Info("Hotel Revenue Dashboard API")
	logger.Info("Store: %s | Model: %s | Port: %s", cfg.DatabaseDSN, cfg.ModelPath, cfg.ServerPort)

	// =================== Booking store ====================
	store, err := storage.NewBookingStore(cfg.DatabaseDSN, logger)
	if err != nil {
		logger.Error("Cannot open booking store: %v", err)
		os.Exit(1)
	}
	defer store.Close()

	// Load eagerly so a broken table fails the process, not the first request.
	if _, err := store.Load(); err != nil {
		logger.Error("Failed to load booking table: %v", err)
		os.Exit(1)
	}

	// =================== Wiring ====================
	exporter := storage.NewCSVWriter(logger)
	model := predictor.NewService(cfg.ModelPath, logger)
	dashboard := handlers.NewDashboard(store, exporter, model, logger)

	// =================== HTTP server ====================
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})

	dashboard.Register(r)

	logger.Info("Listening on %s", cfg.ServerPort)
	if err := r.Run(cfg.ServerPort); err != nil {
		logger.Error("Server failed: %v", err)
		os.Exit(1)
	}
}
