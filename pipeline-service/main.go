package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"supervisionlab-backend/pipeline-service/handlers"
	"supervisionlab-backend/shared/config"
)

func main() {
	// Load configuration
	config.LoadConfig()

	router := gin.Default()

	// Pipeline endpoints
	router.POST("/api/pipeline/trigger", handlers.TriggerPipeline)
	router.GET("/api/pipeline/jobs", handlers.ListJobs)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "pipeline",
		})
	})

	port := strings.Split(config.GetConfig().PipelineURL, ":")[2]
	log.Printf("Pipeline Service starting on port %s...", port)
	router.Run(":" + port)
}
