package taskstate

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"taskboard/client/taskapi"
	"taskboard/domain/dto"
	"taskboard/domain/models"
)

// fakeAPI server จำลองที่คุมจังหวะ request ได้ สำหรับทดสอบ optimistic flow
type fakeAPI struct {
	mu    sync.Mutex
	tasks []dto.TaskResponse

	failUpdate   bool
	blockUpdate  chan struct{} // ถ้า set: PATCH ค้างจนกว่า channel จะปิด
	blockList    chan struct{} // ถ้า set: GET ค้างจนกว่า channel จะปิด
	listStarted  chan struct{} // ปิดเมื่อ GET แรกเข้ามา
	listRequests int
}

func (f *fakeAPI) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			f.mu.Lock()
			f.listRequests++
			started := f.listStarted
			f.listStarted = nil
			block := f.blockList
			f.mu.Unlock()
			if started != nil {
				close(started)
			}
			if block != nil {
				<-block
			}
			f.mu.Lock()
			snapshot := make([]dto.TaskResponse, len(f.tasks))
			copy(snapshot, f.tasks)
			f.mu.Unlock()
			writeEnvelope(w, 200, snapshot)

		case http.MethodPost:
			var req dto.CreateTaskRequest
			json.NewDecoder(r.Body).Decode(&req)
			task := dto.TaskResponse{
				ID:        uuid.New(),
				Title:     req.Title,
				Status:    models.StatusPending,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}
			f.mu.Lock()
			f.tasks = append([]dto.TaskResponse{task}, f.tasks...)
			f.mu.Unlock()
			writeEnvelope(w, 201, task)

		case http.MethodPatch:
			f.mu.Lock()
			block := f.blockUpdate
			fail := f.failUpdate
			f.mu.Unlock()
			if block != nil {
				<-block
			}
			if fail {
				writeError(w, 404, "Task not found")
				return
			}
			var req dto.UpdateTaskStatusRequest
			json.NewDecoder(r.Body).Decode(&req)
			id := r.URL.Path[len("/api/tasks/"):]
			f.mu.Lock()
			defer f.mu.Unlock()
			for i := range f.tasks {
				if f.tasks[i].ID.String() == id {
					f.tasks[i].Status = models.TaskStatus(req.Status)
					f.tasks[i].UpdatedAt = time.Now()
					writeEnvelope(w, 200, f.tasks[i])
					return
				}
			}
			writeError(w, 404, "Task not found")

		case http.MethodDelete:
			id := r.URL.Path[len("/api/tasks/"):]
			f.mu.Lock()
			defer f.mu.Unlock()
			for i := range f.tasks {
				if f.tasks[i].ID.String() == id {
					deleted := f.tasks[i]
					f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
					writeEnvelope(w, 200, dto.DeletedTaskResponse{ID: deleted.ID})
					return
				}
			}
			writeError(w, 404, "Task not found")
		}
	})
}

func writeEnvelope(w http.ResponseWriter, status int, data any) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"success":    true,
		"message":    "ok",
		"statusCode": status,
		"data":       data,
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"success":    false,
		"message":    message,
		"statusCode": status,
	})
}

func serverTask(title string, status models.TaskStatus) dto.TaskResponse {
	return dto.TaskResponse{
		ID:        uuid.New(),
		Title:     title,
		Status:    status,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func setupStore(t *testing.T, api *fakeAPI) *Store {
	t.Helper()
	server := httptest.NewServer(api.handler())
	t.Cleanup(server.Close)
	return NewStore(taskapi.NewClient(server.URL))
}

func TestStore_Refresh(t *testing.T) {
	api := &fakeAPI{tasks: []dto.TaskResponse{
		serverTask("one", models.StatusPending),
		serverTask("two", models.StatusCompleted),
	}}
	store := setupStore(t, api)
	ctx := context.Background()

	if err := store.Refresh(ctx); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if store.Loading() {
		t.Error("loading not cleared after refresh")
	}
	if store.Err() != "" {
		t.Errorf("unexpected error: %q", store.Err())
	}
	if tasks := store.Tasks(); len(tasks) != 2 || tasks[0].Title != "one" {
		t.Errorf("unexpected snapshot: %+v", tasks)
	}
}

func TestStore_RefreshFailureClearsLoading(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close() // จำลอง server ล่ม

	store := NewStore(taskapi.NewClient(url))
	if err := store.Refresh(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if store.Loading() {
		t.Error("loading must be cleared on failure too")
	}
	if store.Err() == "" {
		t.Error("error message not recorded")
	}
}

func TestStore_CreatePrepends(t *testing.T) {
	api := &fakeAPI{tasks: []dto.TaskResponse{serverTask("existing", models.StatusPending)}}
	store := setupStore(t, api)
	ctx := context.Background()

	if err := store.Refresh(ctx); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	task, err := store.Create(ctx, "new on top", "")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	tasks := store.Tasks()
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(tasks))
	}
	if tasks[0].ID != task.ID || tasks[0].Title != "new on top" {
		t.Errorf("new task not prepended: %+v", tasks[0])
	}
}

// สถานะใหม่ต้องปรากฏใน snapshot ทันที ก่อนที่ network call จะจบ
func TestStore_OptimisticUpdateVisibleBeforeServerResponds(t *testing.T) {
	task := serverTask("slow update", models.StatusPending)
	block := make(chan struct{})
	api := &fakeAPI{
		tasks:       []dto.TaskResponse{task},
		blockUpdate: block,
	}
	store := setupStore(t, api)
	ctx := context.Background()

	if err := store.Refresh(ctx); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = store.UpdateStatus(ctx, task.ID.String(), models.StatusInProgress)
	}()

	// รอจน optimistic change ปรากฏ — server ยัง block อยู่
	deadline := time.After(2 * time.Second)
	for {
		tasks := store.Tasks()
		if len(tasks) == 1 && tasks[0].Status == models.StatusInProgress {
			break
		}
		select {
		case <-deadline:
			t.Fatal("optimistic status change not visible while request in flight")
		case <-time.After(5 * time.Millisecond):
		}
	}

	close(block)
	<-done

	// หลัง reconcile ต้องเป็น record จาก server (updatedAt ใหม่)
	tasks := store.Tasks()
	if tasks[0].Status != models.StatusInProgress {
		t.Errorf("expected in-progress after reconcile, got %s", tasks[0].Status)
	}
	if !tasks[0].UpdatedAt.After(task.UpdatedAt) {
		t.Error("snapshot not reconciled with server record")
	}
}

// update พลาด → refresh ดึงความจริงจาก server กลับมา
func TestStore_UpdateFailureRollsBack(t *testing.T) {
	task := serverTask("stubborn", models.StatusPending)
	api := &fakeAPI{
		tasks:      []dto.TaskResponse{task},
		failUpdate: true,
	}
	store := setupStore(t, api)
	ctx := context.Background()

	if err := store.Refresh(ctx); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	if _, err := store.UpdateStatus(ctx, task.ID.String(), models.StatusCompleted); err == nil {
		t.Fatal("expected update failure")
	}

	tasks := store.Tasks()
	if tasks[0].Status != models.StatusPending {
		t.Errorf("rollback failed: status is %s", tasks[0].Status)
	}
	// rollback refresh ต้องไม่ลบข้อความ error ของ mutation ที่พลาด
	if store.Err() != "Task not found" {
		t.Errorf("error message lost after rollback: %q", store.Err())
	}
}

func TestStore_DeleteOptimisticAndRollback(t *testing.T) {
	keep := serverTask("keep", models.StatusPending)
	gone := serverTask("gone", models.StatusCompleted)

	t.Run("success removes locally", func(t *testing.T) {
		api := &fakeAPI{tasks: []dto.TaskResponse{keep, gone}}
		store := setupStore(t, api)
		ctx := context.Background()

		if err := store.Refresh(ctx); err != nil {
			t.Fatalf("Refresh() error = %v", err)
		}
		if err := store.Delete(ctx, gone.ID.String()); err != nil {
			t.Fatalf("Delete() error = %v", err)
		}
		tasks := store.Tasks()
		if len(tasks) != 1 || tasks[0].ID != keep.ID {
			t.Errorf("unexpected snapshot: %+v", tasks)
		}
	})

	t.Run("failure restores server truth", func(t *testing.T) {
		api := &fakeAPI{tasks: []dto.TaskResponse{keep}}
		store := setupStore(t, api)
		ctx := context.Background()

		if err := store.Refresh(ctx); err != nil {
			t.Fatalf("Refresh() error = %v", err)
		}
		// ลบ id ที่ server ไม่รู้จัก — optimistic removal ต้องถูกย้อนกลับ
		if err := store.Delete(ctx, uuid.New().String()); err == nil {
			t.Fatal("expected delete failure")
		}
		tasks := store.Tasks()
		if len(tasks) != 1 || tasks[0].ID != keep.ID {
			t.Errorf("snapshot not restored: %+v", tasks)
		}
		// ข้อความ error ต้องรอด rollback refresh มาถึง UI
		if store.Err() != "Task not found" {
			t.Errorf("error message lost after rollback: %q", store.Err())
		}
	})
}

// mutation ใหม่ที่ยิงระหว่าง rollback กำลังทำงาน ต้องรอ rollback จบก่อนเสมอ
func TestStore_MutationWaitsForInflightRollback(t *testing.T) {
	victim := serverTask("victim", models.StatusPending)
	other := serverTask("other", models.StatusPending)
	blockList := make(chan struct{})
	listStarted := make(chan struct{})
	api := &fakeAPI{
		tasks:      []dto.TaskResponse{victim, other},
		failUpdate: true,
	}
	store := setupStore(t, api)
	ctx := context.Background()

	if err := store.Refresh(ctx); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	// ให้ rollback refresh ค้าง เพื่อเปิดหน้าต่าง race
	api.mu.Lock()
	api.blockList = blockList
	api.listStarted = listStarted
	api.mu.Unlock()

	updateDone := make(chan struct{})
	go func() {
		defer close(updateDone)
		_, _ = store.UpdateStatus(ctx, victim.ID.String(), models.StatusCompleted)
	}()

	// รอจน rollback refresh เริ่มยิง GET แล้วค้างอยู่
	select {
	case <-listStarted:
	case <-time.After(2 * time.Second):
		t.Fatal("rollback refresh never started")
	}

	deleteDone := make(chan struct{})
	go func() {
		defer close(deleteDone)
		_ = store.Delete(ctx, other.ID.String())
	}()

	// delete ต้องยังไม่แตะ snapshot — opMu ถูกถือโดย rollback อยู่
	time.Sleep(50 * time.Millisecond)
	select {
	case <-deleteDone:
		t.Fatal("delete completed while rollback still in flight")
	default:
	}

	api.mu.Lock()
	api.blockList = nil
	api.mu.Unlock()
	close(blockList)
	<-updateDone
	<-deleteDone

	// ลำดับสุดท้าย: rollback คืนความจริง แล้ว delete ค่อย apply
	tasks := store.Tasks()
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task, got %d", len(tasks))
	}
	if tasks[0].ID != victim.ID {
		t.Errorf("expected victim to remain, got %+v", tasks[0])
	}
	if tasks[0].Status != models.StatusPending {
		t.Errorf("rollback lost: status is %s", tasks[0].Status)
	}
}

func TestStore_CountsDeriveFromSnapshot(t *testing.T) {
	api := &fakeAPI{tasks: []dto.TaskResponse{
		serverTask("a", models.StatusPending),
		serverTask("b", models.StatusPending),
		serverTask("c", models.StatusInProgress),
		serverTask("d", models.StatusCompleted),
	}}
	store := setupStore(t, api)

	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}

	counts := store.Counts()
	if counts.All != 4 || counts.Pending != 2 || counts.InProgress != 1 || counts.Completed != 1 {
		t.Errorf("unexpected counts: %+v", counts)
	}
}

func TestStore_FilterPassedToServer(t *testing.T) {
	var gotStatus string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotStatus = r.URL.Query().Get("status")
		writeEnvelope(w, 200, []dto.TaskResponse{})
	}))
	defer server.Close()

	store := NewStore(taskapi.NewClient(server.URL))
	store.SetFilter(Filter(models.StatusCompleted))

	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if gotStatus != "completed" {
		t.Errorf("expected status=completed, got %q", gotStatus)
	}

	store.SetFilter(FilterAll)
	if err := store.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if gotStatus != "" {
		t.Errorf("expected no status filter, got %q", gotStatus)
	}
}
