// Package taskstate เก็บ snapshot ของ task list ฝั่ง client
// พร้อม optimistic update และ rollback — snapshot นี้ไม่ใช่ source of truth
// กระทบแค่การ render; ความจริงอยู่ที่ server เสมอ
package taskstate

import (
	"context"
	"sync"

	"taskboard/client/taskapi"
	"taskboard/domain/dto"
	"taskboard/domain/models"
)

// Filter ค่า filter ปัจจุบัน — "all" หรือหนึ่งใน status enum
type Filter string

const FilterAll Filter = "all"

func (f Filter) status() *models.TaskStatus {
	if f == FilterAll {
		return nil
	}
	s := models.TaskStatus(f)
	return &s
}

// TaskCounts จำนวน task แยกตาม status — derive จาก snapshot เสมอ ไม่เก็บแยก
type TaskCounts struct {
	All        int
	Pending    int
	InProgress int
	Completed  int
}

type Store struct {
	client *taskapi.Client

	// opMu serialize ทุก operation ตั้งแต่ optimistic apply จน reconcile/rollback
	// เพื่อให้ mutation ใหม่ที่มาระหว่าง rollback ต้องรอ rollback จบก่อน
	opMu sync.Mutex

	// mu ป้องกัน snapshot สำหรับอ่าน/เขียนระยะสั้น
	mu      sync.RWMutex
	tasks   []dto.TaskResponse
	loading bool
	errMsg  string
	filter  Filter
}

func NewStore(client *taskapi.Client) *Store {
	return &Store{
		client: client,
		filter: FilterAll,
	}
}

// ========== Snapshot accessors ==========

// Tasks คืน copy ของ snapshot ปัจจุบัน
func (s *Store) Tasks() []dto.TaskResponse {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]dto.TaskResponse, len(s.tasks))
	copy(out, s.tasks)
	return out
}

func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Err คืนข้อความ error ล่าสุด ("" คือไม่มี)
func (s *Store) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.errMsg
}

func (s *Store) Filter() Filter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filter
}

func (s *Store) SetFilter(f Filter) {
	s.mu.Lock()
	s.filter = f
	s.mu.Unlock()
}

// Counts นับจาก snapshot — ไม่มี state แยกให้ drift ได้
func (s *Store) Counts() TaskCounts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := TaskCounts{All: len(s.tasks)}
	for _, t := range s.tasks {
		switch t.Status {
		case models.StatusPending:
			counts.Pending++
		case models.StatusInProgress:
			counts.InProgress++
		case models.StatusCompleted:
			counts.Completed++
		}
	}
	return counts
}

// ========== Operations ==========

// Refresh ดึง list ตาม filter ปัจจุบันมาแทน snapshot
// loading ถูกเคลียร์เสมอไม่ว่าจะสำเร็จหรือพลาด
func (s *Store) Refresh(ctx context.Context) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()
	return s.refresh(ctx)
}

// refresh เวอร์ชันที่เรียกตอนถือ opMu อยู่แล้ว (ใช้ตอน rollback)
func (s *Store) refresh(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	filter := s.filter
	s.mu.Unlock()

	tasks, err := s.client.ListTasks(ctx, filter.status())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.errMsg = err.Error()
		return err
	}
	s.tasks = tasks
	return nil
}

// Create สร้าง task — สำเร็จแล้ว prepend เข้า snapshot, พลาดแล้ว snapshot ไม่เปลี่ยน
func (s *Store) Create(ctx context.Context, title, description string) (*dto.TaskResponse, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	s.errMsg = ""
	s.mu.Unlock()

	task, err := s.client.CreateTask(ctx, title, description)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.errMsg = err.Error()
		return nil, err
	}
	s.tasks = append([]dto.TaskResponse{*task}, s.tasks...)
	return task, nil
}

// UpdateStatus เปลี่ยน status แบบ optimistic:
// apply ลง snapshot ทันที → เรียก server → สำเร็จแล้ว reconcile ด้วย record
// จาก server (รวม updatedAt) → พลาดแล้ว rollback ด้วย refresh เต็ม
func (s *Store) UpdateStatus(ctx context.Context, taskID string, status models.TaskStatus) (*dto.TaskResponse, error) {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	s.errMsg = ""
	for i := range s.tasks {
		if s.tasks[i].ID.String() == taskID {
			s.tasks[i].Status = status
			break
		}
	}
	s.mu.Unlock()

	task, err := s.client.UpdateTaskStatus(ctx, taskID, status)
	if err != nil {
		// rollback — เอาความจริงจาก server กลับมา
		// refresh เคลียร์ errMsg เอง ดังนั้นต้องบันทึก error หลัง rollback จบ
		// ไม่งั้นข้อความหายและ UI ไม่มีอะไรให้แสดง
		_ = s.refresh(ctx)
		s.mu.Lock()
		s.errMsg = err.Error()
		s.mu.Unlock()
		return nil, err
	}

	s.mu.Lock()
	for i := range s.tasks {
		if s.tasks[i].ID == task.ID {
			s.tasks[i] = *task
			break
		}
	}
	s.mu.Unlock()
	return task, nil
}

// Delete ลบแบบ optimistic — เอาออกจาก snapshot ก่อน เรียก server ทีหลัง
func (s *Store) Delete(ctx context.Context, taskID string) error {
	s.opMu.Lock()
	defer s.opMu.Unlock()

	s.mu.Lock()
	s.errMsg = ""
	filtered := s.tasks[:0:0]
	for _, t := range s.tasks {
		if t.ID.String() != taskID {
			filtered = append(filtered, t)
		}
	}
	s.tasks = filtered
	s.mu.Unlock()

	if _, err := s.client.DeleteTask(ctx, taskID); err != nil {
		// บันทึก error หลัง rollback เช่นเดียวกับ UpdateStatus
		_ = s.refresh(ctx)
		s.mu.Lock()
		s.errMsg = err.Error()
		s.mu.Unlock()
		return err
	}
	return nil
}
