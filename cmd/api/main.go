package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/AngelsOB/BrewTool-sub000/internal/api/handlers"
	"github.com/AngelsOB/BrewTool-sub000/internal/api/middleware"
	"github.com/AngelsOB/BrewTool-sub000/internal/logging"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	logging.Setup()

	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	equipmentHandler := handlers.NewEquipmentHandler()
	calculateHandler := handlers.NewCalculateHandler(equipmentHandler.EquipmentDir())
	formulaHandler := handlers.NewFormulaHandler()

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Prometheus scrape endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/calculate", calculateHandler.Calculate)
		api.POST("/scale", handlers.Scale)
		api.POST("/water", handlers.Water)

		api.GET("/equipment", equipmentHandler.ListEquipment)
		api.GET("/formulas", formulaHandler.ListFormulas)
		api.GET("/catalog/:kind", handlers.GetCatalog)
	}

	addr := fmt.Sprintf(":%s", port)
	slog.Info("Starting API server", "addr", addr)
	if err := router.Run(addr); err != nil {
		slog.Error("Server exited", "error", err)
		os.Exit(1)
	}
}
