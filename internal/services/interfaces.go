package services

import (
	"context"

	"jobboard/internal/models"
	"jobboard/internal/transport/dto"

	"github.com/google/uuid"
)

// UserService defines the interface for user and recruiter-approval business
// logic.
type UserService interface {
	// SyncUser performs the login-driven upsert from identity-provider claims.
	SyncUser(ctx context.Context, req *dto.UpsertUserRequest) (*models.User, error)
	GetUser(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, userID string, req *dto.UpdateProfileRequest) (*models.User, error)
	ListPendingRecruiters(ctx context.Context) ([]models.User, error)
	ApproveRecruiter(ctx context.Context, id string) error
	RejectRecruiter(ctx context.Context, id string) error
}

// JobService defines the interface for job-related business logic.
type JobService interface {
	CreateJob(ctx context.Context, recruiter *models.User, req *dto.CreateJobRequest) (*models.Job, error)
	// GetJob returns the job plus the hasApplied flag for viewerID. An empty
	// viewerID (no session) always yields hasApplied=false.
	GetJob(ctx context.Context, id uuid.UUID, viewerID string) (*dto.JobDetailResponse, error)
	ListActiveJobs(ctx context.Context) ([]models.Job, error)
	ListJobsByRecruiter(ctx context.Context, recruiterID string) ([]models.Job, error)
	UpdateJob(ctx context.Context, id uuid.UUID, callerID string, req *dto.UpdateJobRequest) (*models.Job, error)
	DeleteJob(ctx context.Context, id uuid.UUID, callerID string) error
}

// ApplicationService defines the interface for application business logic.
type ApplicationService interface {
	Apply(ctx context.Context, jobID uuid.UUID, applicantID string, req *dto.ApplyRequest) (*models.Application, error)
	// GetApplication enforces per-role access: applicants see their own,
	// recruiters see applications to their own jobs, superadmins see all.
	GetApplication(ctx context.Context, id uuid.UUID, caller *models.User) (*models.Application, error)
	ListForApplicant(ctx context.Context, applicantID string) ([]dto.ApplicationWithJob, error)
	ListForJob(ctx context.Context, jobID uuid.UUID, callerID string) ([]models.Application, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, callerID string, status models.ApplicationStatus) (*models.Application, error)
}

// StatsService defines the interface for the dashboard counting reads.
type StatsService interface {
	SuperadminStats(ctx context.Context) (*dto.SuperadminStatsResponse, error)
	RecruiterStats(ctx context.Context, recruiterID string) (*dto.RecruiterStatsResponse, error)
	ApplicantStats(ctx context.Context, applicantID string) (*dto.ApplicantStatsResponse, error)
}
