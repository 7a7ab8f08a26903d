package services

import (
	"errors"

	"taskboard/domain/models"
)

// Validation errors ระดับ service — ข้อความตรงกับที่ API ตอบกลับ
// handler ใช้ err.Error() ใส่ envelope ได้ตรงๆ
var (
	ErrTitleRequired = errors.New("Title is required")
	ErrTitleTooLong  = errors.New("Title cannot exceed 100 characters")
	ErrStatusInvalid = errors.New(models.InvalidStatusMessage)
)
