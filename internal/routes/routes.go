package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/runcheck/backend/internal/controllers"
	"github.com/runcheck/backend/internal/services"
)

// SetupRoutes configures all application routes
func SetupRoutes(r *gin.Engine) {
	// Initialize services
	analysisService := services.NewAnalysisService()

	// Initialize controllers
	analysisController := controllers.NewAnalysisController(analysisService)

	// API routes
	api := r.Group("/api/v1")
	{
		// Analysis routes
		analysis := api.Group("/analysis")
		{
			analysis.POST("/run", analysisController.RunAnalysis)
		}
	}

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
