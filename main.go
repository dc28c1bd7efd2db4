package main

import (
	"log"

	"github.com/sentipay/sentipay/config"
	"github.com/sentipay/sentipay/controllers"
	"github.com/sentipay/sentipay/routes"
	"github.com/sentipay/sentipay/utils"
)

func main() {
	// Initialize logger
	if err := utils.InitLogger(); err != nil {
		log.Fatal("Failed to initialize logger:", err)
	}

	// Load environment variables
	cfg, err := config.LoadConfig()
	if err != nil {
		utils.LogError("Error loading config: %v", err)
		log.Fatal("Error loading config:", err)
	}

	// Initialize database
	config.InitDB()

	// Initialize Redis (optional, caching is best effort)
	if err := config.InitRedis(); err != nil {
		utils.LogError("Redis unavailable, continuing without cache: %v", err)
	}

	// Seed the admin account when configured
	if err := controllers.EnsureAdminUser(); err != nil {
		utils.LogError("Failed to ensure admin user: %v", err)
		log.Fatal("Failed to ensure admin user:", err)
	}

	// Set up router
	router := routes.SetupRouter()

	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	utils.LogInfo("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		utils.LogError("Error starting server: %v", err)
		log.Fatal("Error starting server:", err)
	}
}
