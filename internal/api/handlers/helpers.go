package handlers

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FormatValidationErrors flattens validator output into the errors array
// carried alongside the "Validation error" message.
func FormatValidationErrors(errs validator.ValidationErrors) []string {
	messages := make([]string, 0, len(errs))
	for _, fieldError := range errs {
		fieldName := fieldError.Field()
		switch fieldError.Tag() {
		case "required":
			messages = append(messages, fmt.Sprintf("Field '%s' is required", fieldName))
		case "email":
			messages = append(messages, fmt.Sprintf("Field '%s' must be a valid email address", fieldName))
		case "min":
			messages = append(messages, fmt.Sprintf("Field '%s' must have at least %s entries", fieldName, fieldError.Param()))
		case "max":
			messages = append(messages, fmt.Sprintf("Field '%s' must be at most %s characters long", fieldName, fieldError.Param()))
		case "url":
			messages = append(messages, fmt.Sprintf("Field '%s' must be a valid URL", fieldName))
		case "jobtype":
			messages = append(messages, fmt.Sprintf("Field '%s' must be a valid job type", fieldName))
		case "explevel":
			messages = append(messages, fmt.Sprintf("Field '%s' must be a valid experience level", fieldName))
		case "appstatus":
			messages = append(messages, fmt.Sprintf("Field '%s' must be a valid application status", fieldName))
		default:
			messages = append(messages, fmt.Sprintf("Field validation for '%s' failed on the '%s' tag", fieldName, fieldError.Tag()))
		}
	}
	return messages
}
