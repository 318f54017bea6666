package dto

import "jobboard/internal/models"

// --- Job Request DTOs ---

// CreateJobRequest defines the structure for creating a new job posting.
// The recruiter id is taken from the auth context, never from the body.
type CreateJobRequest struct {
	Title           string `json:"title" validate:"required,max=200"`
	CompanyName     string `json:"companyName" validate:"required,max=200"`
	CompanyLogo     *string `json:"companyLogo,omitempty" validate:"omitempty,url"`
	Location        string `json:"location" validate:"required,max=200"`
	JobType         models.JobType         `json:"jobType" validate:"required,jobtype"`
	ExperienceLevel models.ExperienceLevel `json:"experienceLevel" validate:"required,explevel"`

	Description      string   `json:"description" validate:"required"`
	Requirements     []string `json:"requirements" validate:"required,min=1,dive,required"`
	Responsibilities []string `json:"responsibilities" validate:"required,min=1,dive,required"`
	Skills           []string `json:"skills" validate:"required,min=1,dive,required"`

	SalaryMin      *int   `json:"salaryMin,omitempty" validate:"omitempty,gte=0"`
	SalaryMax      *int   `json:"salaryMax,omitempty" validate:"omitempty,gte=0"`
	SalaryCurrency string `json:"salaryCurrency,omitempty" validate:"omitempty,max=10"`

	IsActive *bool `json:"isActive,omitempty"`
}

// UpdateJobRequest defines the partial update for an existing job. Nil fields
// are left untouched; nil slices mean "not provided", never "clear".
type UpdateJobRequest struct {
	Title           *string                 `json:"title,omitempty" validate:"omitempty,max=200"`
	CompanyName     *string                 `json:"companyName,omitempty" validate:"omitempty,max=200"`
	CompanyLogo     *string                 `json:"companyLogo,omitempty" validate:"omitempty,url"`
	Location        *string                 `json:"location,omitempty" validate:"omitempty,max=200"`
	JobType         *models.JobType         `json:"jobType,omitempty" validate:"omitempty,jobtype"`
	ExperienceLevel *models.ExperienceLevel `json:"experienceLevel,omitempty" validate:"omitempty,explevel"`

	Description      *string  `json:"description,omitempty"`
	Requirements     []string `json:"requirements,omitempty" validate:"omitempty,min=1,dive,required"`
	Responsibilities []string `json:"responsibilities,omitempty" validate:"omitempty,min=1,dive,required"`
	Skills           []string `json:"skills,omitempty" validate:"omitempty,min=1,dive,required"`

	SalaryMin      *int    `json:"salaryMin,omitempty" validate:"omitempty,gte=0"`
	SalaryMax      *int    `json:"salaryMax,omitempty" validate:"omitempty,gte=0"`
	SalaryCurrency *string `json:"salaryCurrency,omitempty" validate:"omitempty,max=10"`

	IsActive *bool `json:"isActive,omitempty"`
}

// JobDetailResponse is a job plus the viewer-specific hasApplied flag used by
// the public job detail endpoint.
type JobDetailResponse struct {
	models.Job
	HasApplied bool `json:"hasApplied"`
}
