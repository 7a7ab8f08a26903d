package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"taskboard/domain/models"
)

// ErrTaskNotFound id ถูก format แต่ไม่มี record ใน store
var ErrTaskNotFound = errors.New("task not found")

type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	// List คืน tasks เรียงตาม created_at ล่าสุดก่อน
	// status = nil หมายถึงไม่ filter; ไม่เจออะไรคืน slice ว่าง ไม่ใช่ error
	List(ctx context.Context, status *models.TaskStatus) ([]*models.Task, error)
	// UpdateStatus เปลี่ยนเฉพาะ status + updated_at
	// คืน record ที่อัปเดตแล้วพร้อม status ก่อนอัปเดต (สำหรับ event payload)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.TaskStatus) (*models.Task, models.TaskStatus, error)
	// Delete ลบแบบ hard delete แล้วคืน snapshot ก่อนลบ
	Delete(ctx context.Context, id uuid.UUID) (*models.Task, error)
	CountByStatus(ctx context.Context) (map[models.TaskStatus]int64, error)
}
