package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/interfaces/api/handlers"
)

func SetupInfoRoutes(app *fiber.App, h *handlers.Handlers) {
	app.Get("/", h.InfoHandler.Root)
	app.Get("/health", h.InfoHandler.Health)
}
