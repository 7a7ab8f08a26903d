package handlers

import (
	"taskboard/domain/services"
)

// Handlers รวม handler ทั้งหมดสำหรับ route setup
type Handlers struct {
	TaskHandler *TaskHandler
	InfoHandler *InfoHandler
}

// Services dependencies ที่ handlers ต้องใช้
type Services struct {
	TaskService services.TaskService
	AppName     string
	AppVersion  string
}

func NewHandlers(s *Services) *Handlers {
	return &Handlers{
		TaskHandler: NewTaskHandler(s.TaskService),
		InfoHandler: NewInfoHandler(s.AppName, s.AppVersion),
	}
}
