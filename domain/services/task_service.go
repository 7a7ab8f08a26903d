package services

import (
	"context"

	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/models"
)

type TaskService interface {
	CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error)
	ListTasks(ctx context.Context, status *models.TaskStatus) ([]*models.Task, error)
	UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status models.TaskStatus) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID uuid.UUID) (*models.Task, error)
	Counts(ctx context.Context) (map[models.TaskStatus]int64, error)
}
