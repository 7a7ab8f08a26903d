package dto

import (
	"time"

	"github.com/google/uuid"

	"taskboard/domain/models"
)

// === Requests ===

type CreateTaskRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// TaskFilterRequest query string ของ GET /api/tasks
// status ตรวจสอบด้วย models.ParseTaskStatus ไม่ใช่ validator tag
// เพื่อให้ชุด status ที่ valid อยู่ที่เดียว
type TaskFilterRequest struct {
	Status string `query:"status"`
}

// === Responses ===

type TaskResponse struct {
	ID          uuid.UUID         `json:"id"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Status      models.TaskStatus `json:"status"`
	CreatedAt   time.Time         `json:"createdAt"`
	UpdatedAt   time.Time         `json:"updatedAt"`
}

// DeletedTaskResponse คืนเฉพาะ id ของ task ที่ถูกลบ
type DeletedTaskResponse struct {
	ID uuid.UUID `json:"id"`
}

// === Mappers ===

// TaskToTaskResponse map model เป็น response — การ rename identifier ของ storage
// เป็น "id" เกิดที่ boundary นี้เท่านั้น ไม่แก้ model ที่ shared
func TaskToTaskResponse(task *models.Task) *TaskResponse {
	if task == nil {
		return nil
	}
	return &TaskResponse{
		ID:          task.ID,
		Title:       task.Title,
		Description: task.Description,
		Status:      task.Status,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

func TasksToTaskResponses(tasks []*models.Task) []TaskResponse {
	responses := make([]TaskResponse, len(tasks))
	for i, task := range tasks {
		responses[i] = *TaskToTaskResponse(task)
	}
	return responses
}
