package postgres

import (
	"context"
	"fmt"
	"log"

	"jobboard/internal/models"
	"jobboard/internal/storage"
	"jobboard/internal/transport/dto"

	"github.com/jackc/pgx/v5/pgxpool"
)

// StatsRepo implements the storage.StatsRepository interface using
// PostgreSQL. All operations are pure counting reads.
type StatsRepo struct {
	db Querier
}

// NewStatsRepo creates a new StatsRepo.
func NewStatsRepo(db *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{db: db}
}

var _ storage.StatsRepository = (*StatsRepo)(nil)

func (r *StatsRepo) count(ctx context.Context, query string, args ...any) (int, error) {
	var n int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// SuperadminStats aggregates platform-wide counts.
func (r *StatsRepo) SuperadminStats(ctx context.Context) (*dto.SuperadminStatsResponse, error) {
	var stats dto.SuperadminStatsResponse
	var err error

	if stats.TotalRecruiters, err = r.count(ctx,
		`SELECT COUNT(*) FROM users WHERE role = $1`, models.RoleRecruiter); err != nil {
		log.Printf("Error counting recruiters: %v\n", err)
		return nil, fmt.Errorf("failed to count recruiters: %w", err)
	}
	if stats.PendingRecruiters, err = r.count(ctx,
		`SELECT COUNT(*) FROM users WHERE role = $1 AND is_approved = FALSE`, models.RoleRecruiter); err != nil {
		log.Printf("Error counting pending recruiters: %v\n", err)
		return nil, fmt.Errorf("failed to count pending recruiters: %w", err)
	}
	if stats.ActiveJobs, err = r.count(ctx,
		`SELECT COUNT(*) FROM jobs WHERE is_active = TRUE`); err != nil {
		log.Printf("Error counting active jobs: %v\n", err)
		return nil, fmt.Errorf("failed to count active jobs: %w", err)
	}
	if stats.TotalApplicants, err = r.count(ctx,
		`SELECT COUNT(*) FROM users WHERE role = $1`, models.RoleApplicant); err != nil {
		log.Printf("Error counting applicants: %v\n", err)
		return nil, fmt.Errorf("failed to count applicants: %w", err)
	}

	return &stats, nil
}

// RecruiterStats aggregates counts over a recruiter's own jobs. TotalViews
// stays zero until view tracking exists.
func (r *StatsRepo) RecruiterStats(ctx context.Context, recruiterID string) (*dto.RecruiterStatsResponse, error) {
	var stats dto.RecruiterStatsResponse
	var err error

	if stats.JobsPosted, err = r.count(ctx,
		`SELECT COUNT(*) FROM jobs WHERE recruiter_id = $1`, recruiterID); err != nil {
		log.Printf("Error counting jobs for recruiter %s: %v\n", recruiterID, err)
		return nil, fmt.Errorf("failed to count recruiter jobs: %w", err)
	}
	if stats.ActiveApplications, err = r.count(ctx, `
		SELECT COUNT(*) FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE j.recruiter_id = $1`, recruiterID); err != nil {
		log.Printf("Error counting applications for recruiter %s: %v\n", recruiterID, err)
		return nil, fmt.Errorf("failed to count recruiter applications: %w", err)
	}

	return &stats, nil
}

// ApplicantStats aggregates counts over an applicant's applications.
// ProfileViews stays zero until view tracking exists.
func (r *StatsRepo) ApplicantStats(ctx context.Context, applicantID string) (*dto.ApplicantStatsResponse, error) {
	var stats dto.ApplicantStatsResponse
	var err error

	if stats.ApplicationsSubmitted, err = r.count(ctx,
		`SELECT COUNT(*) FROM applications WHERE applicant_id = $1`, applicantID); err != nil {
		log.Printf("Error counting applications for applicant %s: %v\n", applicantID, err)
		return nil, fmt.Errorf("failed to count applicant applications: %w", err)
	}
	if stats.InReview, err = r.count(ctx,
		`SELECT COUNT(*) FROM applications WHERE applicant_id = $1 AND status = ANY($2)`,
		applicantID,
		[]string{string(models.StatusSubmitted), string(models.StatusUnderReview), string(models.StatusInterviewing)},
	); err != nil {
		log.Printf("Error counting in-review applications for applicant %s: %v\n", applicantID, err)
		return nil, fmt.Errorf("failed to count in-review applications: %w", err)
	}

	return &stats, nil
}
