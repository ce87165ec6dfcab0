package main

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"supervisionlab-backend/mock-service/handlers"
	"supervisionlab-backend/mock-service/middleware"
	"supervisionlab-backend/shared/config"
	"supervisionlab-backend/shared/synth"
)

func main() {
	// Load configuration
	config.LoadConfig()

	// Generate the snapshot once and inject it into the handler; there is no
	// ambient global dataset.
	log.Println("🌱 Generating mock CRM dataset...")
	snapshot := synth.New(synth.DefaultSeed).GenerateAll()
	log.Printf("Generated %d contacts, %d companies, %d deals",
		len(snapshot.Contacts), len(snapshot.Companies), len(snapshot.Deals))

	crmHandler := handlers.NewCRMHandler(snapshot)

	router := gin.Default()
	router.Use(cors.Default())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "mock-hubspot",
		})
	})

	authorized := router.Group("/", middleware.APIKeyAuthMiddleware())

	// CRM API v3 endpoints
	authorized.GET("/crm/v3/objects/:objectType", crmHandler.ListObjects)
	authorized.GET("/crm/v3/objects/:objectType/:objectID", crmHandler.GetObject)
	authorized.POST("/crm/v3/objects/:objectType/search", crmHandler.SearchObjects)
	authorized.GET("/crm/v3/schemas", crmHandler.ListSchemas)
	authorized.GET("/crm/v3/schemas/:objectType", crmHandler.GetSchema)

	// Legacy aliases for client-compatibility testing
	authorized.GET("/contacts/v1/lists/all/contacts/all", crmHandler.LegacyContacts)
	authorized.GET("/deals/v1/deal/paged", crmHandler.LegacyDeals)
	authorized.GET("/companies/v2/companies/paged", crmHandler.LegacyCompanies)

	// Any unrecognized path gets an empty but correctly shaped envelope
	router.NoRoute(middleware.APIKeyAuthMiddleware(), crmHandler.CatchAll)

	port := strings.Split(config.GetConfig().MockHubSpotURL, ":")[2]
	log.Printf("Mock HubSpot Service starting on port %s...", port)
	router.Run(":" + port)
}
