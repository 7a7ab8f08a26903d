// Package taskapi เป็น HTTP client ของ Taskboard API — หนึ่ง method ต่อหนึ่ง operation
package taskapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"taskboard/domain/dto"
	"taskboard/domain/models"
)

// ข้อความ transport error — แยก 3 กรณีตาม taxonomy:
// server ตอบ error body / ไม่มี response / สร้าง request ไม่ได้
var (
	ErrNoResponse   = errors.New("No response from server. Please check if the backend is running.")
	ErrRequestSetup = errors.New("Error setting up request")
)

// APIError คือ error ที่ server ตอบกลับมาพร้อม status code
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "An error occurred"
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// envelope ตรงกับ response ของ server — data แปลงเป็น target ภายหลัง
type envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Data       json.RawMessage `json:"data"`
	StatusCode int             `json:"statusCode"`
}

// ListTasks ดึง tasks พร้อม optional status filter
func (c *Client) ListTasks(ctx context.Context, status *models.TaskStatus) ([]dto.TaskResponse, error) {
	path := "/api/tasks"
	if status != nil {
		path += "?status=" + url.QueryEscape(string(*status))
	}

	var tasks []dto.TaskResponse
	if err := c.do(ctx, http.MethodGet, path, nil, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// CreateTask สร้าง task ใหม่
func (c *Client) CreateTask(ctx context.Context, title, description string) (*dto.TaskResponse, error) {
	body := dto.CreateTaskRequest{
		Title:       title,
		Description: description,
	}

	var task dto.TaskResponse
	if err := c.do(ctx, http.MethodPost, "/api/tasks", body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// UpdateTaskStatus เปลี่ยน status ของ task
func (c *Client) UpdateTaskStatus(ctx context.Context, taskID string, status models.TaskStatus) (*dto.TaskResponse, error) {
	body := dto.UpdateTaskStatusRequest{
		Status: string(status),
	}

	var task dto.TaskResponse
	if err := c.do(ctx, http.MethodPatch, "/api/tasks/"+url.PathEscape(taskID), body, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// DeleteTask ลบ task แล้วคืน id ที่ถูกลบ
func (c *Client) DeleteTask(ctx context.Context, taskID string) (*dto.DeletedTaskResponse, error) {
	var deleted dto.DeletedTaskResponse
	if err := c.do(ctx, http.MethodDelete, "/api/tasks/"+url.PathEscape(taskID), nil, &deleted); err != nil {
		return nil, err
	}
	return &deleted, nil
}

// do ยิง request แล้ว unmarshal envelope.data ลง target
func (c *Client) do(ctx context.Context, method, path string, body any, target any) error {
	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return ErrRequestSetup
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return ErrRequestSetup
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return ErrNoResponse
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return ErrNoResponse
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("malformed response from server: %w", err)
	}

	if !env.Success {
		message := env.Message
		if message == "" {
			message = "An error occurred"
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if target != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, target); err != nil {
			return fmt.Errorf("malformed response from server: %w", err)
		}
	}
	return nil
}
