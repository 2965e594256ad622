package routes

import (
	"loanguard/internal/adapters/http/handlers"
	"loanguard/internal/adapters/http/middleware"
	"loanguard/internal/adapters/persistence/repositories"
	"loanguard/internal/adapters/scoring"
	"loanguard/internal/config"
	"loanguard/internal/core/services"
	"loanguard/internal/pkg/ratelimit"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes with the default collaborators: the real
// scoring client and a limiter built from config.
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) error {
	scoringClient, err := scoring.NewHTTPClient(cfg.Scoring.BaseURL, cfg.Scoring.Credentials)
	if err != nil {
		return err
	}

	limiter := ratelimit.New(cfg.RateLimit.MaxCalls, cfg.RateLimit.Window)

	SetupWithDeps(app, db, cfg, scoringClient, limiter)
	return nil
}

// SetupWithDeps configures all routes with injected collaborators. Tests
// use this to swap the scoring client and the limiter.
func SetupWithDeps(app *fiber.App, db *gorm.DB, cfg *config.Config, scoringClient scoring.Client, limiter *ratelimit.Limiter) {
	// Repositories
	adminRepo := repositories.NewAdminRepository(db)
	loanRepo := repositories.NewLoanRepository(db)

	// Services
	authService := services.NewAuthService(adminRepo, cfg)
	loanService := services.NewLoanService(loanRepo, scoringClient)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(loanService)
	loanHandler := handlers.NewLoanHandler(loanService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Public auth routes
	app.Post("/sign-up/", authHandler.SignUp)
	app.Post("/token/", authHandler.Token)

	// Admin routes (bearer token required)
	admin := app.Group("/admin", middleware.AuthMiddleware(authService))
	admin.Get("/", adminHandler.ListRecords)
	admin.Patch("/", adminHandler.UpdateRecord)
	admin.Delete("/", adminHandler.DeleteRecord)

	// Public loan-check route behind the global window limiter
	app.Post("/check-loan/", middleware.RateLimitMiddleware(limiter), loanHandler.CheckLoan)
}
