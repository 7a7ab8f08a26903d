package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"taskboard/domain/models"
	"taskboard/domain/repositories"
)

type TaskRepositoryImpl struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepositoryImpl{db: db}
}

func (r *TaskRepositoryImpl) Create(ctx context.Context, task *models.Task) error {
	if err := r.db.WithContext(ctx).Create(task).Error; err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}
	return nil
}

// List เรียงล่าสุดก่อนเสมอ — ลำดับนี้เป็น contract ของ API ไม่ใช่แค่ convenience
func (r *TaskRepositoryImpl) List(ctx context.Context, status *models.TaskStatus) ([]*models.Task, error) {
	query := r.db.WithContext(ctx).Order("created_at DESC")
	if status != nil {
		query = query.Where("status = ?", *status)
	}

	tasks := []*models.Task{}
	if err := query.Find(&tasks).Error; err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (r *TaskRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, status models.TaskStatus) (*models.Task, models.TaskStatus, error) {
	// อ่านก่อนอัปเดต — event ต้องรายงาน status ก่อนหน้า
	var task models.Task
	if err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", repositories.ErrTaskNotFound
		}
		return nil, "", fmt.Errorf("failed to find task: %w", err)
	}
	previous := task.Status

	now := time.Now()
	result := r.db.WithContext(ctx).Model(&models.Task{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": now,
		})
	if err := result.Error; err != nil {
		return nil, "", fmt.Errorf("failed to update task status: %w", err)
	}
	if result.RowsAffected == 0 {
		// โดนลบไประหว่าง read กับ update
		return nil, "", repositories.ErrTaskNotFound
	}

	task.Status = status
	task.UpdatedAt = now
	return &task, previous, nil
}

func (r *TaskRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) (*models.Task, error) {
	// ดึง snapshot ก่อนลบ — API ต้องคืน id ของ record ที่หายไป
	var task models.Task
	err := r.db.WithContext(ctx).First(&task, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repositories.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to find task: %w", err)
	}

	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Task{})
	if err := result.Error; err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}
	if result.RowsAffected == 0 {
		return nil, repositories.ErrTaskNotFound
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) CountByStatus(ctx context.Context) (map[models.TaskStatus]int64, error) {
	type row struct {
		Status models.TaskStatus
		Count  int64
	}
	var rows []row

	err := r.db.WithContext(ctx).
		Model(&models.Task{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count tasks: %w", err)
	}

	counts := make(map[models.TaskStatus]int64, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}
