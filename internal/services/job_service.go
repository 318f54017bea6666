package services

import (
	"context"
	"fmt"
	"log"

	"jobboard/internal/cache"
	"jobboard/internal/models"
	"jobboard/internal/storage"
	"jobboard/internal/transport/dto"

	"github.com/google/uuid"
)

type jobService struct {
	jobRepo storage.JobRepository
	appRepo storage.ApplicationRepository
	cache   *cache.JobListCache
}

// NewJobService creates a new instance of JobService. The cache may be nil;
// listings then always hit the database.
func NewJobService(jobRepo storage.JobRepository, appRepo storage.ApplicationRepository, listCache *cache.JobListCache) JobService {
	return &jobService{jobRepo: jobRepo, appRepo: appRepo, cache: listCache}
}

// CreateJob inserts a posting owned by the recruiter. An unapproved
// recruiter is functionally inert: role match alone is not enough.
func (s *jobService) CreateJob(ctx context.Context, recruiter *models.User, req *dto.CreateJobRequest) (*models.Job, error) {
	if !recruiter.IsApproved {
		log.Printf("JobService: Unapproved recruiter %s attempted to create a job", recruiter.ID)
		return nil, fmt.Errorf("%w: recruiter account pending approval", ErrForbidden)
	}

	job, err := s.jobRepo.Create(ctx, recruiter.ID, req)
	if err != nil {
		log.Printf("JobService: Error creating job: %v", err)
		return nil, mapRepoError(err, "creating job")
	}

	s.cache.Invalidate(ctx)
	return job, nil
}

// GetJob returns the job with the viewer-specific hasApplied flag. The flag
// is computed only when a session is present.
func (s *jobService) GetJob(ctx context.Context, id uuid.UUID, viewerID string) (*dto.JobDetailResponse, error) {
	job, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "getting job by ID")
	}

	detail := &dto.JobDetailResponse{Job: *job}
	if viewerID != "" {
		applied, err := s.appRepo.HasApplied(ctx, id, viewerID)
		if err != nil {
			log.Printf("JobService: Error checking hasApplied for job %s viewer %s: %v", id, viewerID, err)
			return nil, fmt.Errorf("internal error checking application state: %w", err)
		}
		detail.HasApplied = applied
	}

	return detail, nil
}

func (s *jobService) ListActiveJobs(ctx context.Context) ([]models.Job, error) {
	if jobs, ok := s.cache.Get(ctx); ok {
		return jobs, nil
	}

	jobs, err := s.jobRepo.ListActive(ctx)
	if err != nil {
		log.Printf("JobService: Error listing active jobs: %v", err)
		return nil, fmt.Errorf("internal error listing active jobs: %w", err)
	}

	s.cache.Set(ctx, jobs)
	return jobs, nil
}

func (s *jobService) ListJobsByRecruiter(ctx context.Context, recruiterID string) ([]models.Job, error) {
	jobs, err := s.jobRepo.ListByRecruiter(ctx, recruiterID)
	if err != nil {
		log.Printf("JobService: Error listing jobs for recruiter %s: %v", recruiterID, err)
		return nil, fmt.Errorf("internal error listing recruiter jobs: %w", err)
	}
	return jobs, nil
}

// UpdateJob mutates a posting after re-verifying ownership against the
// freshly loaded row. Not-found is checked before ownership so a missing job
// never leaks as a 403.
func (s *jobService) UpdateJob(ctx context.Context, id uuid.UUID, callerID string, req *dto.UpdateJobRequest) (*models.Job, error) {
	existing, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err, "fetching job for update")
	}
	if existing.RecruiterID != callerID {
		log.Printf("JobService: Forbidden update attempt on job %s by user %s", id, callerID)
		return nil, ErrForbidden
	}

	job, err := s.jobRepo.Update(ctx, id, req)
	if err != nil {
		log.Printf("JobService: Error updating job %s: %v", id, err)
		return nil, mapRepoError(err, "updating job")
	}

	s.cache.Invalidate(ctx)
	return job, nil
}

// DeleteJob removes a posting after re-verifying ownership. The FK cascade
// removes its applications.
func (s *jobService) DeleteJob(ctx context.Context, id uuid.UUID, callerID string) error {
	existing, err := s.jobRepo.GetByID(ctx, id)
	if err != nil {
		return mapRepoError(err, "fetching job for delete")
	}
	if existing.RecruiterID != callerID {
		log.Printf("JobService: Forbidden delete attempt on job %s by user %s", id, callerID)
		return ErrForbidden
	}

	if err := s.jobRepo.Delete(ctx, id); err != nil {
		log.Printf("JobService: Error deleting job %s: %v", id, err)
		return mapRepoError(err, "deleting job")
	}

	s.cache.Invalidate(ctx)
	return nil
}
