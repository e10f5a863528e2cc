package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"gorm.io/gorm"

	"flashdeck.app/configs"
)

// SetupRoutes wires the shared middleware and every API route onto app.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	cfg := configs.LoadAppConfig()

	app.Use(recoverMiddleware.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins,
	}))

	registerAPIRoutes(app, db)

	// Catches everything no route matched.
	app.Use(notFoundHandler)
}

func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Resource not found"})
}
