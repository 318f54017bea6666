// internal/transport/dto/validator.go
package dto

import (
	"jobboard/internal/models"

	"github.com/go-playground/validator/v10"
)

// NewValidator returns a validator with the enum tags the request DTOs use.
// The enum values contain spaces ("Full-time", "Under Review"), which rules
// out the builtin oneof tag.
func NewValidator() *validator.Validate {
	validate := validator.New()

	validate.RegisterValidation("jobtype", func(fl validator.FieldLevel) bool {
		return models.JobType(fl.Field().String()).Valid()
	})
	validate.RegisterValidation("explevel", func(fl validator.FieldLevel) bool {
		return models.ExperienceLevel(fl.Field().String()).Valid()
	})
	validate.RegisterValidation("appstatus", func(fl validator.FieldLevel) bool {
		return models.ApplicationStatus(fl.Field().String()).Valid()
	})

	return validate
}
