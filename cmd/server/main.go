package main

import (
	"log"
	"time"

	"personal-crm/internal/api"
	"personal-crm/internal/campaign"
	"personal-crm/internal/config"
	"personal-crm/internal/database"
	"personal-crm/internal/phone"
	"personal-crm/internal/waha"
	"personal-crm/internal/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.LoadConfig()
	database.Init(cfg)

	r := gin.Default()

	// CORS Middleware
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	contactRepo := database.NewContactRepository(database.DB)
	relationshipRepo := database.NewRelationshipRepository(database.DB)
	tagRepo := database.NewTagRepository(database.DB)

	wahaClient := waha.NewClient(cfg)
	normalizer := phone.NewNormalizer(cfg.DefaultCountryCode)

	dispatcher := campaign.NewDispatcher(contactRepo, relationshipRepo, wahaClient, normalizer)
	dispatcher.MinDelay = secondsToDuration(cfg.CampaignMinDelaySeconds)
	dispatcher.MaxDelay = secondsToDuration(cfg.CampaignMaxDelaySeconds)

	hub := ws.NewHub()
	go hub.Run()

	contactHandler := api.NewContactHandler(contactRepo)
	tagHandler := api.NewTagHandler(tagRepo)
	relationshipHandler := api.NewRelationshipHandler(relationshipRepo)
	templateHandler := api.NewTemplateHandler()
	campaignHandler := api.NewCampaignHandler(dispatcher, contactRepo, hub)
	wahaHandler := api.NewWahaHandler(wahaClient)

	// Live campaign progress
	r.GET("/ws", func(c *gin.Context) {
		hub.ServeWs(c.Writer, c.Request)
	})

	apiGroup := r.Group("/api")
	{
		// Contact Routes
		apiGroup.GET("/contacts", contactHandler.GetContacts)
		apiGroup.GET("/contacts/search", contactHandler.SearchContacts)
		apiGroup.GET("/contacts/export", contactHandler.ExportContacts)
		apiGroup.GET("/contacts/:id", contactHandler.GetContact)
		apiGroup.POST("/contacts", contactHandler.CreateContact)
		apiGroup.PUT("/contacts/:id", contactHandler.UpdateContact)
		apiGroup.DELETE("/contacts/:id", contactHandler.DeleteContact)

		// Tag Routes
		apiGroup.GET("/tags", tagHandler.GetTagTypes)
		apiGroup.GET("/contacts/:id/tags", tagHandler.GetContactTags)
		apiGroup.POST("/tags/bulk", tagHandler.BulkAddTag)

		// Relationship Routes
		apiGroup.GET("/relationships/types", relationshipHandler.GetRelationshipTypes)
		apiGroup.GET("/contacts/:id/relationships", relationshipHandler.GetContactRelationships)
		apiGroup.POST("/relationships", relationshipHandler.CreateRelationship)
		apiGroup.DELETE("/relationships/:id", relationshipHandler.DeleteRelationship)

		// Template Routes
		apiGroup.GET("/templates", templateHandler.GetTemplates)
		apiGroup.POST("/templates", templateHandler.CreateTemplate)
		apiGroup.PUT("/templates/:id", templateHandler.UpdateTemplate)
		apiGroup.DELETE("/templates/:id", templateHandler.DeleteTemplate)

		// Campaign Routes
		apiGroup.GET("/campaign/recipients", campaignHandler.GetRecipients)
		apiGroup.POST("/campaign/preview", campaignHandler.Preview)
		apiGroup.POST("/campaign/send", campaignHandler.Send)
		apiGroup.GET("/campaign/logs", campaignHandler.GetLogs)

		// WAHA Routes
		apiGroup.GET("/waha/status", wahaHandler.GetStatus)
		apiGroup.GET("/waha/sessions", wahaHandler.GetSessions)
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

func secondsToDuration(seconds int) time.Duration {
	return time.Duration(seconds) * time.Second
}
