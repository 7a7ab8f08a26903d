package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"taskboard/domain/models"
	"taskboard/pkg/logger"
)

const (
	taskListKeyPrefix = "tasks:list:"
	taskListKeyAll    = taskListKeyPrefix + "all"
	taskListTTL       = 30 * time.Second
)

// TaskListCache cache-aside สำหรับผลลัพธ์ list
// TTL สั้น + invalidate ทุก mutation เพื่อไม่ให้ client เห็น list ค้าง
type TaskListCache struct {
	client *Client
}

func NewTaskListCache(client *Client) *TaskListCache {
	return &TaskListCache{client: client}
}

func listKey(status *models.TaskStatus) string {
	if status == nil {
		return taskListKeyAll
	}
	return taskListKeyPrefix + string(*status)
}

// Get คืน (tasks, true) เมื่อ cache hit; (nil, false) เมื่อ miss หรือ Redis มีปัญหา
// cache พังต้องไม่ทำให้ request พัง — แค่ log แล้วไปอ่าน store
func (c *TaskListCache) Get(ctx context.Context, status *models.TaskStatus) ([]*models.Task, bool) {
	var tasks []*models.Task
	err := c.client.GetJSON(ctx, listKey(status), &tasks)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.WarnContext(ctx, "Task list cache read failed", "error", err)
		}
		return nil, false
	}
	return tasks, true
}

func (c *TaskListCache) Set(ctx context.Context, status *models.TaskStatus, tasks []*models.Task) {
	if err := c.client.SetJSON(ctx, listKey(status), tasks, taskListTTL); err != nil {
		logger.WarnContext(ctx, "Task list cache write failed", "error", err)
	}
}

// Invalidate ลบทุก list key — เรียกหลัง create/update/delete
func (c *TaskListCache) Invalidate(ctx context.Context) {
	if _, err := c.client.ScanAndDelete(ctx, taskListKeyPrefix+"*"); err != nil {
		logger.WarnContext(ctx, "Task list cache invalidation failed", "error", err)
	}
}
