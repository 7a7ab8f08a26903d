package handlers

import (
	"github.com/gofiber/fiber/v2"
)

// InfoHandler liveness/info endpoint ที่ root path
type InfoHandler struct {
	appName string
	version string
}

func NewInfoHandler(appName, version string) *InfoHandler {
	return &InfoHandler{appName: appName, version: version}
}

// Root ตอบข้อมูล API (GET /)
func (h *InfoHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Task Management API is running",
		"version": h.version,
		"endpoints": fiber.Map{
			"tasks": "/api/tasks",
		},
	})
}

// Health liveness check (GET /health)
func (h *InfoHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"message": "Server is running",
		"service": h.appName,
	})
}
