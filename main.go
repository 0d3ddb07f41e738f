package main

import (
	"log"
	"net/http"
	"os"

	"resto-api/config"
	"resto-api/handlers"
	"resto-api/identity"
	"resto-api/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Set Gin mode
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.DebugMode)
	}

	cfg := config.Load()

	// Store and identity provider, initialized once and injected
	db := config.InitDB(cfg.DBPath)
	auth := identity.New(db, cfg.JWTSecret)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for the web and mobile frontends
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Resto Ordering API",
		})
	})

	// Register all routes
	routes.SetupRoutes(r, handlers.New(db, auth))

	log.Printf("🚀 Serveur démarré sur http://localhost:%s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
