package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ========== Response Envelope ==========

// Response envelope เดียวกันทุก endpoint:
// success → {success:true, message, data, statusCode}
// error   → {success:false, message, statusCode, errors?}
type Response struct {
	Success    bool   `json:"success"`
	Message    string `json:"message"`
	Data       any    `json:"data,omitempty"`
	Errors     any    `json:"errors,omitempty"`
	StatusCode int    `json:"statusCode"`
}

// NewSuccess สร้าง envelope สำเร็จ (pure function — handler เป็นคนเขียนลง response)
func NewSuccess(data any, message string, statusCode int) Response {
	if message == "" {
		message = "Success"
	}
	if statusCode == 0 {
		statusCode = fiber.StatusOK
	}
	return Response{
		Success:    true,
		Message:    message,
		Data:       data,
		StatusCode: statusCode,
	}
}

// NewError สร้าง envelope ล้มเหลว — errors ใส่เฉพาะตอนที่มีรายละเอียด field
func NewError(message string, statusCode int, errors any) Response {
	if message == "" {
		message = "Error"
	}
	if statusCode == 0 {
		statusCode = fiber.StatusInternalServerError
	}
	return Response{
		Success:    false,
		Message:    message,
		Errors:     errors,
		StatusCode: statusCode,
	}
}

// ========== Fiber Helpers ==========

func SuccessResponse(c *fiber.Ctx, data any, message string) error {
	return c.Status(fiber.StatusOK).JSON(NewSuccess(data, message, fiber.StatusOK))
}

func CreatedResponse(c *fiber.Ctx, data any, message string) error {
	return c.Status(fiber.StatusCreated).JSON(NewSuccess(data, message, fiber.StatusCreated))
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, errors any) error {
	return c.Status(statusCode).JSON(NewError(message, statusCode, errors))
}

func BadRequestResponse(c *fiber.Ctx, message string) error {
	return ErrorResponse(c, fiber.StatusBadRequest, message, nil)
}

func ValidationErrorResponse(c *fiber.Ctx, message string, errors any) error {
	return ErrorResponse(c, fiber.StatusBadRequest, message, errors)
}

func NotFoundResponse(c *fiber.Ctx, message string) error {
	if message == "" {
		message = "Resource not found"
	}
	return ErrorResponse(c, fiber.StatusNotFound, message, nil)
}

func InternalServerErrorResponse(c *fiber.Ctx) error {
	return ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error", nil)
}
