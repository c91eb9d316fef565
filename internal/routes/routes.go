package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/moodflowapp/moodflow-backend/internal/config"
	"github.com/moodflowapp/moodflow-backend/internal/handlers"
	"github.com/moodflowapp/moodflow-backend/internal/middleware"
	"github.com/moodflowapp/moodflow-backend/internal/mood"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	webhookHandler *handlers.WebhookHandler,
	subscriptionHandler *handlers.SubscriptionHandler,
	legalHandler *handlers.LegalHandler,
	configHandler *handlers.RemoteConfigHandler,
	moodHandler *mood.Handler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	// Health
	api.Get("/health", healthHandler.Check)

	// Remote Config (public, read-only)
	api.Get("/config", configHandler.GetConfig)

	// Legal pages
	api.Get("/legal/privacy", legalHandler.PrivacyPolicy)
	api.Get("/legal/terms", legalHandler.TermsOfService)

	// Webhooks — header auth, no JWT
	webhooks := api.Group("/webhooks")
	webhooks.Post("/revenuecat", webhookHandler.HandleRevenueCat)

	// Protected routes (JWT required). The JWT middleware is scoped to this
	// group so it never affects public routes.
	protected := api.Group("/p", middleware.JWTProtected(cfg))

	protected.Get("/subscription/status", subscriptionHandler.GetStatus)

	moods := protected.Group("/moods")
	moods.Post("/", moodHandler.Create)
	moods.Get("/", moodHandler.List)
	moods.Get("/today", moodHandler.Today)
	moods.Get("/search", moodHandler.Search)
	moods.Get("/streak", moodHandler.GetStreak)
	moods.Get("/calendar", moodHandler.Calendar)
	moods.Get("/stats", moodHandler.Stats)
	moods.Get("/trends", moodHandler.Trends)
	moods.Get("/insights", moodHandler.Insights)
	moods.Get("/:id", moodHandler.Get)
	moods.Delete("/:id", moodHandler.Delete)

	// Admin config management (protected + admin required)
	admin := api.Group("/admin", middleware.JWTProtected(cfg), middleware.AdminRequired(cfg))
	admin.Put("/config/:key", configHandler.SetConfigKey)
	admin.Delete("/config/:key", configHandler.DeleteConfigKey)
}
