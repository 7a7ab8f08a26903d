package routes

import (
	"github.com/gofiber/fiber/v2"

	"taskboard/interfaces/api/handlers"
)

func SetupTaskRoutes(api fiber.Router, h *handlers.Handlers) {
	tasks := api.Group("/tasks")

	tasks.Post("/", h.TaskHandler.Create)           // สร้าง task ใหม่
	tasks.Get("/", h.TaskHandler.List)              // ดึง tasks ทั้งหมด (filter ด้วย ?status=)
	tasks.Patch("/:id", h.TaskHandler.UpdateStatus) // เปลี่ยน status
	tasks.Delete("/:id", h.TaskHandler.Delete)      // ลบ task
}
