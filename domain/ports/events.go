package ports

import (
	"context"

	"taskboard/domain/models"
)

// ═══════════════════════════════════════════════════════════════════════════════
// Task Event Publisher Port - แจ้ง lifecycle events ของ task
// ═══════════════════════════════════════════════════════════════════════════════

// TaskEventPublisherPort - Interface สำหรับ publish task events
// implementation จริงอยู่ที่ infrastructure/nats; ถ้าไม่ได้ config NATS ใช้ Noop
type TaskEventPublisherPort interface {
	PublishTaskCreated(ctx context.Context, task *models.Task)
	PublishTaskStatusChanged(ctx context.Context, task *models.Task, previous models.TaskStatus)
	PublishTaskDeleted(ctx context.Context, task *models.Task)
}

// NoopTaskEventPublisher ใช้ตอนที่ไม่ได้เปิด event publishing
type NoopTaskEventPublisher struct{}

func (NoopTaskEventPublisher) PublishTaskCreated(ctx context.Context, task *models.Task) {}
func (NoopTaskEventPublisher) PublishTaskStatusChanged(ctx context.Context, task *models.Task, previous models.TaskStatus) {
}
func (NoopTaskEventPublisher) PublishTaskDeleted(ctx context.Context, task *models.Task) {}
