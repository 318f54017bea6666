package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"jobboard/internal/models"
	"jobboard/internal/storage"
	"jobboard/internal/transport/dto"

	"github.com/google/uuid"
)

type applicationService struct {
	appRepo  storage.ApplicationRepository
	jobRepo  storage.JobRepository
	userRepo storage.UserRepository
}

// NewApplicationService creates a new instance of ApplicationService.
func NewApplicationService(appRepo storage.ApplicationRepository, jobRepo storage.JobRepository, userRepo storage.UserRepository) ApplicationService {
	return &applicationService{appRepo: appRepo, jobRepo: jobRepo, userRepo: userRepo}
}

// Apply submits an application. Order matters: the job must exist (404
// before anything else), the duplicate fast path runs next, then the
// applicant's profile must carry a resume. The resume URL is copied at this
// instant; later profile edits do not touch submitted applications. The
// unique index backs the duplicate check, so a racing second apply still
// surfaces as ErrConflict.
func (s *applicationService) Apply(ctx context.Context, jobID uuid.UUID, applicantID string, req *dto.ApplyRequest) (*models.Application, error) {
	if _, err := s.jobRepo.GetByID(ctx, jobID); err != nil {
		return nil, mapRepoError(err, "fetching job for application")
	}

	applied, err := s.appRepo.HasApplied(ctx, jobID, applicantID)
	if err != nil {
		log.Printf("ApplicationService: Error checking prior application for job %s: %v", jobID, err)
		return nil, fmt.Errorf("internal error checking prior application: %w", err)
	}
	if applied {
		return nil, fmt.Errorf("%w: already applied to job", ErrConflict)
	}

	applicant, err := s.userRepo.GetByID(ctx, applicantID)
	if err != nil {
		return nil, mapRepoError(err, "fetching applicant profile")
	}
	if applicant.ResumeURL == nil || *applicant.ResumeURL == "" {
		return nil, fmt.Errorf("%w: resume required before applying", ErrValidation)
	}

	application, err := s.appRepo.Create(ctx, &dto.CreateApplicationRequest{
		JobID:       jobID,
		ApplicantID: applicantID,
		ResumeURL:   *applicant.ResumeURL,
		CoverLetter: req.CoverLetter,
	})
	if err != nil {
		log.Printf("ApplicationService: Error creating application for job %s: %v", jobID, err)
		return nil, mapRepoError(err, "creating application")
	}

	return application, nil
}

// GetApplication loads an application and enforces per-role access. The
// not-found check precedes every ownership comparison.
func (s *applicationService) GetApplication(ctx context.Context, id uuid.UUID, caller *models.User) (*models.Application, error) {
	application, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "getting application by ID")
	}

	switch caller.Role {
	case models.RoleApplicant:
		if application.ApplicantID != caller.ID {
			log.Printf("ApplicationService: Forbidden read of application %s by applicant %s", id, caller.ID)
			return nil, ErrForbidden
		}
	case models.RoleRecruiter:
		job, err := s.jobRepo.GetByID(ctx, application.JobID)
		if err != nil {
			return nil, mapRepoError(err, "fetching parent job for access check")
		}
		if job.RecruiterID != caller.ID {
			log.Printf("ApplicationService: Forbidden read of application %s by recruiter %s", id, caller.ID)
			return nil, ErrForbidden
		}
	case models.RoleSuperadmin:
		// Blanket read access.
	}

	return application, nil
}

// ListForApplicant returns the applicant's applications, each joined with
// its parent job for the dashboard.
func (s *applicationService) ListForApplicant(ctx context.Context, applicantID string) ([]dto.ApplicationWithJob, error) {
	applications, err := s.appRepo.ListByApplicant(ctx, applicantID)
	if err != nil {
		log.Printf("ApplicationService: Error listing applications for applicant %s: %v", applicantID, err)
		return nil, fmt.Errorf("internal error listing applications: %w", err)
	}

	result := make([]dto.ApplicationWithJob, 0, len(applications))
	for _, application := range applications {
		entry := dto.ApplicationWithJob{Application: application}
		job, err := s.jobRepo.GetByID(ctx, application.JobID)
		if err == nil {
			entry.Job = job
		} else if !isNotFound(err) {
			return nil, mapRepoError(err, "fetching job for application listing")
		}
		result = append(result, entry)
	}

	return result, nil
}

// ListForJob returns a job's applications to its owning recruiter.
func (s *applicationService) ListForJob(ctx context.Context, jobID uuid.UUID, callerID string) ([]models.Application, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, mapRepoError(err, "fetching job for application listing")
	}
	if job.RecruiterID != callerID {
		log.Printf("ApplicationService: Forbidden application listing on job %s by user %s", jobID, callerID)
		return nil, ErrForbidden
	}

	applications, err := s.appRepo.ListByJob(ctx, jobID)
	if err != nil {
		log.Printf("ApplicationService: Error listing applications for job %s: %v", jobID, err)
		return nil, fmt.Errorf("internal error listing applications: %w", err)
	}

	return applications, nil
}

// UpdateStatus sets a new status after verifying the caller owns the parent
// job. Membership in the closed status set is the only lifecycle rule;
// arbitrary jumps between statuses are allowed.
func (s *applicationService) UpdateStatus(ctx context.Context, id uuid.UUID, callerID string, status models.ApplicationStatus) (*models.Application, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrValidation, status)
	}

	application, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "getting application for status update")
	}

	job, err := s.jobRepo.GetByID(ctx, application.JobID)
	if err != nil {
		return nil, mapRepoError(err, "fetching parent job for status update")
	}
	if job.RecruiterID != callerID {
		log.Printf("ApplicationService: Forbidden status update on application %s by user %s", id, callerID)
		return nil, ErrForbidden
	}

	updated, err := s.appRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		log.Printf("ApplicationService: Error updating status of application %s: %v", id, err)
		return nil, mapRepoError(err, "updating application status")
	}

	return updated, nil
}

func isNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}
