package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"gorm.io/gorm"

	"github.com/cemunal/contenthub/internal/config"
	"github.com/cemunal/contenthub/internal/handlers"
	"github.com/cemunal/contenthub/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	db *gorm.DB,
	userHandler *handlers.UserHandler,
	contentTypeHandler *handlers.ContentTypeHandler,
	contentHandler *handlers.ContentHandler,
	mediaHandler *handlers.MediaHandler,
	healthHandler *handlers.HealthHandler,
) {
	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", healthHandler.Check)

	// Auth — stricter rate limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/login", userHandler.Login)

	// Users — registration and reads are public, deactivation is admin-only
	api.Post("/users", userHandler.Create)
	api.Get("/users", userHandler.List)
	api.Get("/users/username/:username", userHandler.GetByUsername)
	api.Get("/users/:id", userHandler.GetByID)
	api.Delete("/users/:id", middleware.JWTProtected(cfg), middleware.AdminRequired(db), userHandler.Deactivate)

	// Content types
	api.Get("/content-types", contentTypeHandler.List)
	api.Get("/content-types/identifier/:apiIdentifier", contentTypeHandler.GetByAPIIdentifier)
	api.Get("/content-types/:id", contentTypeHandler.GetByID)
	api.Post("/content-types", middleware.JWTProtected(cfg), contentTypeHandler.Create)
	api.Delete("/content-types/:id", middleware.JWTProtected(cfg), middleware.AdminRequired(db), contentTypeHandler.Deactivate)

	// Contents
	api.Get("/contents", contentHandler.List)
	api.Get("/contents/slug/:contentTypeId/:slug", contentHandler.GetBySlug)
	api.Get("/contents/:id", contentHandler.GetByID)
	api.Post("/contents", middleware.JWTProtected(cfg), contentHandler.Create)
	api.Post("/contents/:id/publish", middleware.JWTProtected(cfg), contentHandler.Publish)

	// Media — metadata bookkeeping only, bytes live elsewhere
	api.Get("/media", mediaHandler.List)
	api.Get("/media/:id", mediaHandler.GetByID)
	api.Post("/media", middleware.JWTProtected(cfg), mediaHandler.Upload)
}
