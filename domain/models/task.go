package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus สถานะของ task (enum 3 ค่า)
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusCompleted  TaskStatus = "completed"
)

// InvalidStatusMessage ข้อความ error เดียวที่ใช้ทั้ง list filter และ status update
// (single source of truth — ห้าม hardcode ชุด status ที่อื่น)
const InvalidStatusMessage = "Invalid status. Must be one of: pending, in-progress, completed"

// TitleMaxLength ความยาว title สูงสุด (ตรงกับ validation ฝั่ง client)
const TitleMaxLength = 100

// AllStatuses ลำดับตาม lifecycle
func AllStatuses() []TaskStatus {
	return []TaskStatus{StatusPending, StatusInProgress, StatusCompleted}
}

// ParseTaskStatus ตรวจสอบและแปลง string เป็น TaskStatus
func ParseTaskStatus(s string) (TaskStatus, bool) {
	status := TaskStatus(s)
	return status, status.IsValid()
}

func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// NextStatus คืนสถานะถัดไปตาม lifecycle (pending → in-progress → completed)
// ใช้ฝั่ง client เท่านั้น — server ยอมรับการเปลี่ยนสถานะทุกทิศทาง
func (s TaskStatus) NextStatus() (TaskStatus, bool) {
	switch s {
	case StatusPending:
		return StatusInProgress, true
	case StatusInProgress:
		return StatusCompleted, true
	}
	return "", false
}

type Task struct {
	ID          uuid.UUID  `gorm:"primaryKey;type:uuid"`
	Title       string     `gorm:"size:100;not null"`
	Description string     `gorm:"default:''"`
	Status      TaskStatus `gorm:"size:20;not null;default:'pending';index"`
	CreatedAt   time.Time  `gorm:"index"`
	UpdatedAt   time.Time
}

func (Task) TableName() string {
	return "tasks"
}
