package handlers

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/models"
	"taskboard/domain/repositories"
	"taskboard/domain/services"
	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

type TaskHandler struct {
	taskService services.TaskService
}

func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// Create สร้าง task ใหม่ (POST /api/tasks)
func (h *TaskHandler) Create(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var req dto.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Task creation rejected", "errors", fieldErrors)
		return utils.ValidationErrorResponse(c, fieldErrors[0].Message, fieldErrors)
	}

	task, err := h.taskService.CreateTask(ctx, &req)
	if err != nil {
		if isValidationError(err) {
			logger.WarnContext(ctx, "Task creation rejected", "error", err)
			return utils.BadRequestResponse(c, err.Error())
		}
		logger.ErrorContext(ctx, "Task creation failed", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.CreatedResponse(c, dto.TaskToTaskResponse(task), "Task created successfully")
}

// List ดึง tasks ทั้งหมด พร้อม status filter (GET /api/tasks?status=X)
func (h *TaskHandler) List(c *fiber.Ctx) error {
	ctx := c.UserContext()

	var filter dto.TaskFilterRequest
	if err := c.QueryParser(&filter); err != nil {
		return utils.BadRequestResponse(c, "Invalid query parameters")
	}

	var status *models.TaskStatus
	if filter.Status != "" {
		parsed, ok := models.ParseTaskStatus(filter.Status)
		if !ok {
			logger.WarnContext(ctx, "Invalid status filter", "status", filter.Status)
			return utils.BadRequestResponse(c, models.InvalidStatusMessage)
		}
		status = &parsed
	}

	tasks, err := h.taskService.ListTasks(ctx, status)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	message := fmt.Sprintf("%d task(s) retrieved successfully", len(tasks))
	return utils.SuccessResponse(c, dto.TasksToTaskResponses(tasks), message)
}

// UpdateStatus เปลี่ยน status ของ task (PATCH /api/tasks/:id)
func (h *TaskHandler) UpdateStatus(c *fiber.Ctx) error {
	ctx := c.UserContext()

	// id ที่ parse ไม่ผ่านคือ client input ผิด — ต้องเป็น 400 ไม่ใช่ 500
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID format")
	}

	var req dto.UpdateTaskStatusRequest
	if err := c.BodyParser(&req); err != nil {
		logger.WarnContext(ctx, "Invalid request body", "error", err)
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	if err := utils.ValidateStruct(&req); err != nil {
		fieldErrors := utils.GetValidationErrors(err)
		return utils.ValidationErrorResponse(c, fieldErrors[0].Message, fieldErrors)
	}

	status, ok := models.ParseTaskStatus(req.Status)
	if !ok {
		logger.WarnContext(ctx, "Invalid status value", "status", req.Status)
		return utils.BadRequestResponse(c, models.InvalidStatusMessage)
	}

	task, err := h.taskService.UpdateTaskStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Task not found with id: %s", id))
		}
		logger.ErrorContext(ctx, "Task status update failed", "task_id", id, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.TaskToTaskResponse(task), "Task status updated successfully")
}

// Delete ลบ task (DELETE /api/tasks/:id)
func (h *TaskHandler) Delete(c *fiber.Ctx) error {
	ctx := c.UserContext()

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid task ID format")
	}

	task, err := h.taskService.DeleteTask(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrTaskNotFound) {
			return utils.NotFoundResponse(c, fmt.Sprintf("Task not found with id: %s", id))
		}
		logger.ErrorContext(ctx, "Task delete failed", "task_id", id, "error", err)
		return utils.InternalServerErrorResponse(c)
	}

	return utils.SuccessResponse(c, dto.DeletedTaskResponse{ID: task.ID}, "Task deleted successfully")
}

func isValidationError(err error) bool {
	return errors.Is(err, services.ErrTitleRequired) ||
		errors.Is(err, services.ErrTitleTooLong) ||
		errors.Is(err, services.ErrStatusInvalid)
}
