package routes

import (
	"bloodbridge/internal/adapters/http/handlers"
	"bloodbridge/internal/adapters/http/middleware"
	"bloodbridge/internal/adapters/persistence/repositories"
	"bloodbridge/internal/config"
	"bloodbridge/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	accountRepo := repositories.NewAccountRepository(db)
	donorRepo := repositories.NewDonorRepository(db)
	requestRepo := repositories.NewRequestRepository(db)

	// Initialize services
	authService := services.NewAuthService(accountRepo, cfg)
	donorService := services.NewDonorService(donorRepo)
	requestService := services.NewRequestService(requestRepo)
	dashboardService := services.NewDashboardService(donorRepo, requestRepo)
	contactService := services.NewContactService(donorRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	donorHandler := handlers.NewDonorHandler(donorService)
	requestHandler := handlers.NewRequestHandler(requestService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	contactHandler := handlers.NewContactHandler(contactService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API group
	api := app.Group("/api")
	setupAPIRoutes(api, authHandler, donorHandler, requestHandler, dashboardHandler, contactHandler, cfg)
}

// setupAPIRoutes configures the /api route table
func setupAPIRoutes(
	router fiber.Router,
	authHandler *handlers.AuthHandler,
	donorHandler *handlers.DonorHandler,
	requestHandler *handlers.RequestHandler,
	dashboardHandler *handlers.DashboardHandler,
	contactHandler *handlers.ContactHandler,
	cfg *config.Config,
) {
	// Public routes: login and the submission/listing endpoints behind the
	// public forms
	router.Post("/login", authHandler.Login)
	router.Post("/donors", donorHandler.Create)
	router.Get("/donors", donorHandler.ListActive)
	router.Post("/requests", requestHandler.Create)

	// Protected routes (admin bearer token)
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(cfg))
	protected.Use(middleware.AdminOnly())

	protected.Get("/dashboard", dashboardHandler.Get)
	protected.Put("/donors/:id/donate", donorHandler.MarkDonated)
	protected.Put("/donors/:id/activate", donorHandler.Reactivate)
	protected.Put("/requests/:id", requestHandler.UpdateStatus)
	protected.Post("/contact-donor", contactHandler.ContactDonor)
}
