package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"

	"jobboard/internal/models"
	"jobboard/internal/storage"
	"jobboard/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationColumns = `id, job_id, applicant_id, resume_url, cover_letter, status,
	created_at, updated_at`

// ApplicationRepo implements the storage.ApplicationRepository interface
// using PostgreSQL.
type ApplicationRepo struct {
	db Querier
}

// NewApplicationRepo creates a new ApplicationRepo.
func NewApplicationRepo(db *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{db: db}
}

var _ storage.ApplicationRepository = (*ApplicationRepo)(nil)

func scanApplication(row pgx.Row) (*models.Application, error) {
	var a models.Application
	err := row.Scan(
		&a.ID, &a.JobID, &a.ApplicantID, &a.ResumeURL, &a.CoverLetter, &a.Status,
		&a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Create inserts a new application with status defaulted to Submitted. The
// unique index on (job_id, applicant_id) is the authoritative duplicate
// check: a violation comes back as storage.ErrConflict no matter what the
// caller pre-checked.
func (r *ApplicationRepo) Create(ctx context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
	query := fmt.Sprintf(`
		INSERT INTO applications (id, job_id, applicant_id, resume_url, cover_letter, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING %s`, applicationColumns)

	application, err := scanApplication(r.db.QueryRow(ctx, query,
		uuid.New(), req.JobID, req.ApplicantID, req.ResumeURL, req.CoverLetter, models.StatusSubmitted,
	))
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			log.Printf("Error creating application: applicant %s already applied to job %s\n", req.ApplicantID, req.JobID)
			return nil, fmt.Errorf("failed to create application: already applied: %w", storage.ErrConflict)
		}
		if isPgError(err, pgForeignKeyViolation) {
			log.Printf("Error creating application: job %s or applicant %s missing: %v\n", req.JobID, req.ApplicantID, err)
			return nil, fmt.Errorf("failed to create application: invalid reference: %w", storage.ErrNotFound)
		}
		log.Printf("Error creating application: %v\n", err)
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	log.Printf("Application created successfully with ID: %s", application.ID)
	return application, nil
}

// GetByID retrieves a specific application by its ID.
func (r *ApplicationRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	query := fmt.Sprintf(`SELECT %s FROM applications WHERE id = $1`, applicationColumns)

	application, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning application by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get application by ID %s: %w", id, err)
	}

	return application, nil
}

// ListByJob retrieves the applications submitted to a job, newest-first.
func (r *ApplicationRepo) ListByJob(ctx context.Context, jobID uuid.UUID) ([]models.Application, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM applications
		WHERE job_id = $1
		ORDER BY created_at DESC`, applicationColumns)

	rows, err := r.db.Query(ctx, query, jobID)
	if err != nil {
		log.Printf("Error querying applications by job %s: %v\n", jobID, err)
		return nil, fmt.Errorf("failed to query applications by job: %w", err)
	}
	defer rows.Close()

	applications, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		log.Printf("Error scanning applications by job %s: %v\n", jobID, err)
		return nil, fmt.Errorf("failed to scan applications by job: %w", err)
	}

	if applications == nil {
		applications = []models.Application{}
	}

	return applications, nil
}

// ListByApplicant retrieves the applications an applicant has submitted,
// newest-first.
func (r *ApplicationRepo) ListByApplicant(ctx context.Context, applicantID string) ([]models.Application, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM applications
		WHERE applicant_id = $1
		ORDER BY created_at DESC`, applicationColumns)

	rows, err := r.db.Query(ctx, query, applicantID)
	if err != nil {
		log.Printf("Error querying applications by applicant %s: %v\n", applicantID, err)
		return nil, fmt.Errorf("failed to query applications by applicant: %w", err)
	}
	defer rows.Close()

	applications, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Application])
	if err != nil {
		log.Printf("Error scanning applications by applicant %s: %v\n", applicantID, err)
		return nil, fmt.Errorf("failed to scan applications by applicant: %w", err)
	}

	if applications == nil {
		applications = []models.Application{}
	}

	return applications, nil
}

// HasApplied reports whether an application exists for the (job, applicant)
// pair. Used as a fast path; the unique index remains the real guard.
func (r *ApplicationRepo) HasApplied(ctx context.Context, jobID uuid.UUID, applicantID string) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM applications WHERE job_id = $1 AND applicant_id = $2)`

	var exists bool
	if err := r.db.QueryRow(ctx, query, jobID, applicantID).Scan(&exists); err != nil {
		log.Printf("Error checking application existence for job %s / applicant %s: %v\n", jobID, applicantID, err)
		return false, fmt.Errorf("failed to check application existence: %w", err)
	}

	return exists, nil
}

// UpdateStatus sets the status and refreshes updated_at.
func (r *ApplicationRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.ApplicationStatus) (*models.Application, error) {
	query := fmt.Sprintf(`
		UPDATE applications
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING %s`, applicationColumns)

	application, err := scanApplication(r.db.QueryRow(ctx, query, status, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating application status %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update application status %s: %w", id, err)
	}

	return application, nil
}
