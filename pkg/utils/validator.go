package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct ตรวจ struct ตาม validate tags
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

// FieldError รายละเอียด validation error รายฟิลด์ สำหรับใส่ใน envelope.errors
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// GetValidationErrors แปลง validator error เป็นรายการ FieldError
func GetValidationErrors(err error) []FieldError {
	var fieldErrors []FieldError

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}

	for _, fe := range validationErrors {
		fieldErrors = append(fieldErrors, FieldError{
			Field:   strings.ToLower(fe.Field()),
			Message: fieldErrorMessage(fe),
		})
	}
	return fieldErrors
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s cannot exceed %s characters", fe.Field(), fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
}
