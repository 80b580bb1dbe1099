package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/momentumhq/momentum-backend/internal/config"
	"github.com/momentumhq/momentum-backend/internal/handlers"
	"github.com/momentumhq/momentum-backend/internal/middleware"
)

func Setup(
	app *fiber.App,
	cfg *config.Config,
	authHandler *handlers.AuthHandler,
	habitHandler *handlers.HabitHandler,
	inventoryHandler *handlers.InventoryHandler,
	achievementHandler *handlers.AchievementHandler,
	userHandler *handlers.UserHandler,
	healthHandler *handlers.HealthHandler,
) {
	// General rate limiter: 60 req/min per IP
	app.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	app.Get("/health", healthHandler.Check)

	// Auth — public, with a stricter rate limit: 10 req/min per IP
	authLimiter := limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	})
	app.Post("/register", authLimiter, authHandler.Register)
	app.Post("/login", authLimiter, authHandler.Login)
	app.Post("/auth/refresh", authLimiter, authHandler.Refresh)

	// Everything below requires a valid bearer token.
	protected := middleware.JWTProtected(cfg)

	app.Post("/auth/logout", protected, authHandler.Logout)

	app.Get("/habits", protected, habitHandler.ListHabits)
	app.Post("/habits", protected, habitHandler.CreateHabit)
	app.Put("/habits/:id", protected, habitHandler.UpdateHabit)
	app.Delete("/habits/:id", protected, habitHandler.DeleteHabit)
	app.Post("/habits/:id/complete", protected, habitHandler.CompleteHabit)

	app.Get("/inventory", protected, inventoryHandler.GetInventory)
	app.Post("/inventory/purchase", protected, inventoryHandler.PurchaseItem)
	app.Post("/inventory/use", protected, inventoryHandler.UseItem)

	app.Get("/achievements", protected, achievementHandler.ListAchievements)
	app.Post("/achievements/:id/claim", protected, achievementHandler.ClaimAchievement)

	app.Get("/user/profile", protected, userHandler.GetProfile)
	app.Get("/user/stats", protected, userHandler.GetStats)
}
