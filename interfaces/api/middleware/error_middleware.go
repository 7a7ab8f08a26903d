package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"taskboard/pkg/logger"
	"taskboard/pkg/utils"
)

// ErrorHandler fallback สำหรับ error ที่หลุดจาก handler
// ไม่ leak รายละเอียดภายในออกไปกับ 500
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			code = fiberErr.Code
			message = fiberErr.Message
		}

		if code >= 500 {
			logger.ErrorContext(c.UserContext(), "Unhandled error", "path", c.Path(), "error", err)
			message = "Internal server error"
		}

		return utils.ErrorResponse(c, code, message, nil)
	}
}
