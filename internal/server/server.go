package server

import (
	"time"

	"catalog/internal/config"
	"catalog/internal/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// multipartOverhead leaves room for form fields and boundaries around the largest allowed file.
const multipartOverhead = 1 << 20

// NewApp builds the Fiber app with middleware, static uploads and product routes.
func NewApp(cfg config.Config, productHandler *handlers.ProductHandler) *fiber.App {
	app := fiber.New(fiber.Config{
		BodyLimit: int(cfg.MaxUploadSize) + multipartOverhead,
	})

	// --- Middleware ---
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH,OPTIONS",
	}))

	app.Static("/uploads", cfg.UploadDir)

	// --- API Routes ---
	api := app.Group("/api")
	productHandler.RegisterRoutes(api)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	return app
}
