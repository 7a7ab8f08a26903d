package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/interfaces/api/handlers"
)

func SetupRoutes(app *fiber.App, h *handlers.Handlers) {
	// Root + health
	SetupInfoRoutes(app, h)

	// API group (path ตาม contract — ไม่มี version prefix)
	api := app.Group("/api")
	SetupTaskRoutes(api, h)

	// 404 fallback สำหรับทุก path ที่ไม่ match
	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"message": "Route not found",
		})
	})
}
