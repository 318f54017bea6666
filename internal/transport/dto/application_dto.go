package dto

import (
	"jobboard/internal/models"

	"github.com/google/uuid"
)

// ApplyRequest is the body of POST /api/jobs/:id/apply. The resume URL is
// copied from the applicant's profile server-side, not taken from the body.
type ApplyRequest struct {
	CoverLetter *string `json:"coverLetter,omitempty"`
}

// UpdateApplicationStatusRequest carries the new status for an application.
// Membership in the closed status set is validated; ordering of transitions
// is intentionally not.
type UpdateApplicationStatusRequest struct {
	Status models.ApplicationStatus `json:"status" validate:"required,appstatus"`
}

// CreateApplicationRequest is the storage-level insert payload.
type CreateApplicationRequest struct {
	JobID       uuid.UUID
	ApplicantID string
	ResumeURL   string
	CoverLetter *string
}

// ApplicationWithJob is an application joined with its parent job, as served
// to the applicant dashboard.
type ApplicationWithJob struct {
	models.Application
	Job *models.Job `json:"job,omitempty"`
}
