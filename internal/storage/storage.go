package storage

import (
	"context"

	"jobboard/internal/models"
	"jobboard/internal/transport/dto"

	"github.com/google/uuid"
)

// UserRepository defines the interface for user data operations. Users are
// keyed by the identity provider's subject string, not a locally generated id.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
	// Upsert inserts the user or, if the id already exists, updates the
	// identity fields and refreshes updated_at. It must be a single
	// conflict-resolving statement so concurrent logins cannot race.
	Upsert(ctx context.Context, req *dto.UpsertUserRequest) (*models.User, error)
	Update(ctx context.Context, req *dto.UpdateUserRequest) (*models.User, error)
	ListPendingRecruiters(ctx context.Context) ([]models.User, error)
	Approve(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
}

// JobRepository defines the interface for job data operations.
type JobRepository interface {
	Create(ctx context.Context, recruiterID string, req *dto.CreateJobRequest) (*models.Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error)
	ListActive(ctx context.Context) ([]models.Job, error)
	ListByRecruiter(ctx context.Context, recruiterID string) ([]models.Job, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateJobRequest) (*models.Job, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ApplicationRepository defines the interface for application data operations.
type ApplicationRepository interface {
	// Create inserts a new application with status defaulted to Submitted.
	// A unique-violation on (job_id, applicant_id) is reported as ErrConflict;
	// the constraint, not the HasApplied pre-check, is the source of truth.
	Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error)
	ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error)
	ListByApplicant(ctx context.Context, applicantID string) ([]models.Application, error)
	HasApplied(ctx context.Context, jobID uuid.UUID, applicantID string) (bool, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error)
}

// StatsRepository provides the aggregate counting reads behind the dashboard
// endpoints.
type StatsRepository interface {
	SuperadminStats(ctx context.Context) (*dto.SuperadminStatsResponse, error)
	RecruiterStats(ctx context.Context, recruiterID string) (*dto.RecruiterStatsResponse, error)
	ApplicantStats(ctx context.Context, applicantID string) (*dto.ApplicantStatsResponse, error)
}
