package serviceimpl

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskboard/domain/dto"
	"taskboard/domain/models"
	"taskboard/domain/ports"
	"taskboard/domain/repositories"
	"taskboard/domain/services"
	redispkg "taskboard/infrastructure/redis"
	"taskboard/pkg/logger"
)

type TaskServiceImpl struct {
	taskRepo  repositories.TaskRepository
	cache     *redispkg.TaskListCache // nil = ไม่ใช้ cache
	publisher ports.TaskEventPublisherPort
}

func NewTaskService(taskRepo repositories.TaskRepository, cache *redispkg.TaskListCache, publisher ports.TaskEventPublisherPort) services.TaskService {
	if publisher == nil {
		publisher = ports.NoopTaskEventPublisher{}
	}
	return &TaskServiceImpl{
		taskRepo:  taskRepo,
		cache:     cache,
		publisher: publisher,
	}
}

func (s *TaskServiceImpl) CreateTask(ctx context.Context, req *dto.CreateTaskRequest) (*models.Task, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, services.ErrTitleRequired
	}
	if len([]rune(title)) > models.TitleMaxLength {
		return nil, services.ErrTitleTooLong
	}

	now := time.Now()
	task := &models.Task{
		ID:          uuid.New(),
		Title:       title,
		Description: strings.TrimSpace(req.Description),
		Status:      models.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		logger.ErrorContext(ctx, "Failed to create task", "error", err)
		return nil, err
	}

	s.invalidateCache(ctx)
	s.publisher.PublishTaskCreated(ctx, task)

	logger.InfoContext(ctx, "Task created", "task_id", task.ID, "title", task.Title)
	return task, nil
}

func (s *TaskServiceImpl) ListTasks(ctx context.Context, status *models.TaskStatus) ([]*models.Task, error) {
	if s.cache != nil {
		if tasks, ok := s.cache.Get(ctx, status); ok {
			return tasks, nil
		}
	}

	tasks, err := s.taskRepo.List(ctx, status)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to list tasks", "error", err)
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, status, tasks)
	}
	return tasks, nil
}

func (s *TaskServiceImpl) UpdateTaskStatus(ctx context.Context, taskID uuid.UUID, status models.TaskStatus) (*models.Task, error) {
	if !status.IsValid() {
		return nil, services.ErrStatusInvalid
	}

	task, previous, err := s.taskRepo.UpdateStatus(ctx, taskID, status)
	if err != nil {
		logger.WarnContext(ctx, "Task status update failed", "task_id", taskID, "error", err)
		return nil, err
	}

	s.invalidateCache(ctx)
	s.publisher.PublishTaskStatusChanged(ctx, task, previous)

	logger.InfoContext(ctx, "Task status updated", "task_id", taskID, "status", status)
	return task, nil
}

func (s *TaskServiceImpl) DeleteTask(ctx context.Context, taskID uuid.UUID) (*models.Task, error) {
	task, err := s.taskRepo.Delete(ctx, taskID)
	if err != nil {
		logger.WarnContext(ctx, "Task delete failed", "task_id", taskID, "error", err)
		return nil, err
	}

	s.invalidateCache(ctx)
	s.publisher.PublishTaskDeleted(ctx, task)

	logger.InfoContext(ctx, "Task deleted", "task_id", taskID)
	return task, nil
}

func (s *TaskServiceImpl) Counts(ctx context.Context) (map[models.TaskStatus]int64, error) {
	return s.taskRepo.CountByStatus(ctx)
}

func (s *TaskServiceImpl) invalidateCache(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
