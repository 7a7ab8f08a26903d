package nats

import (
	"context"
	"encoding/json"
	"time"

	"taskboard/domain/models"
	"taskboard/domain/ports"
	"taskboard/pkg/logger"
)

// TaskEventPublisher implement ports.TaskEventPublisherPort ด้วย core NATS publish
// events เป็น best-effort — publish พลาดแค่ log ไม่ทำให้ request พัง
type TaskEventPublisher struct {
	client *Client
}

func NewTaskEventPublisher(client *Client) ports.TaskEventPublisherPort {
	return &TaskEventPublisher{client: client}
}

// taskEvent payload ของทุก event (JSON)
type taskEvent struct {
	TaskID         string            `json:"taskId"`
	Title          string            `json:"title"`
	Status         models.TaskStatus `json:"status"`
	PreviousStatus models.TaskStatus `json:"previousStatus,omitempty"`
	OccurredAt     time.Time         `json:"occurredAt"`
}

func (p *TaskEventPublisher) publish(ctx context.Context, subject string, event taskEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to marshal task event", "subject", subject, "error", err)
		return
	}

	if err := p.client.Publish(subject, data); err != nil {
		logger.WarnContext(ctx, "Failed to publish task event",
			"subject", subject,
			"task_id", event.TaskID,
			"error", err,
		)
		return
	}

	logger.DebugContext(ctx, "Task event published", "subject", subject, "task_id", event.TaskID)
}

func (p *TaskEventPublisher) PublishTaskCreated(ctx context.Context, task *models.Task) {
	p.publish(ctx, SubjectTaskCreated, taskEvent{
		TaskID:     task.ID.String(),
		Title:      task.Title,
		Status:     task.Status,
		OccurredAt: time.Now(),
	})
}

func (p *TaskEventPublisher) PublishTaskStatusChanged(ctx context.Context, task *models.Task, previous models.TaskStatus) {
	p.publish(ctx, SubjectTaskStatusChanged, taskEvent{
		TaskID:         task.ID.String(),
		Title:          task.Title,
		Status:         task.Status,
		PreviousStatus: previous,
		OccurredAt:     time.Now(),
	})
}

func (p *TaskEventPublisher) PublishTaskDeleted(ctx context.Context, task *models.Task) {
	p.publish(ctx, SubjectTaskDeleted, taskEvent{
		TaskID:     task.ID.String(),
		Title:      task.Title,
		Status:     task.Status,
		OccurredAt: time.Now(),
	})
}
