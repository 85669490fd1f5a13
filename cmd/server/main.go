package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"bloodbridge/internal/adapters/http/middleware"
	"bloodbridge/internal/adapters/http/routes"
	"bloodbridge/internal/adapters/persistence/models"
	"bloodbridge/internal/adapters/persistence/repositories"
	"bloodbridge/internal/config"
	"bloodbridge/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "bloodbridge/docs" // Swagger docs
)

// @title Blood Bridge API
// @version 1.0
// @description Blood donor and request registry API

// @host localhost:5000
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed the admin account
	if err := config.NewSeeder(db, cfg).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed database: %v", err)
	}

	// Start the daily admin digest
	digestService := services.NewDigestService(
		repositories.NewDonorRepository(db),
		repositories.NewRequestRepository(db),
	)
	digestService.Start()
	defer digestService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Blood Bridge API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db and cfg for dependency injection)
	routes.Setup(app, db, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
