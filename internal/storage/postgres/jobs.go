package postgres

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"jobboard/internal/models"
	"jobboard/internal/storage"
	"jobboard/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobColumns = `id, recruiter_id, title, company_name, company_logo, location,
	job_type, experience_level, description, requirements, responsibilities, skills,
	salary_min, salary_max, salary_currency, is_active, created_at, updated_at`

// JobRepo implements the storage.JobRepository interface using PostgreSQL.
type JobRepo struct {
	db Querier
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(db *pgxpool.Pool) *JobRepo {
	return &JobRepo{db: db}
}

var _ storage.JobRepository = (*JobRepo)(nil)

func scanJob(row pgx.Row) (*models.Job, error) {
	var j models.Job
	err := row.Scan(
		&j.ID, &j.RecruiterID, &j.Title, &j.CompanyName, &j.CompanyLogo, &j.Location,
		&j.JobType, &j.ExperienceLevel, &j.Description, &j.Requirements, &j.Responsibilities, &j.Skills,
		&j.SalaryMin, &j.SalaryMax, &j.SalaryCurrency, &j.IsActive, &j.CreatedAt, &j.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// Create saves a new job posting owned by recruiterID.
func (r *JobRepo) Create(ctx context.Context, recruiterID string, req *dto.CreateJobRequest) (*models.Job, error) {
	currency := req.SalaryCurrency
	if currency == "" {
		currency = "USD"
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	query := fmt.Sprintf(`
		INSERT INTO jobs (id, recruiter_id, title, company_name, company_logo, location,
			job_type, experience_level, description, requirements, responsibilities, skills,
			salary_min, salary_max, salary_currency, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, NOW(), NOW())
		RETURNING %s`, jobColumns)

	job, err := scanJob(r.db.QueryRow(ctx, query,
		uuid.New(), recruiterID, req.Title, req.CompanyName, req.CompanyLogo, req.Location,
		req.JobType, req.ExperienceLevel, req.Description, req.Requirements, req.Responsibilities, req.Skills,
		req.SalaryMin, req.SalaryMax, currency, isActive,
	))
	if err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			log.Printf("Error creating job: unknown recruiter %s: %v\n", recruiterID, err)
			return nil, fmt.Errorf("failed to create job: invalid recruiter ID: %w", storage.ErrConflict)
		}
		log.Printf("Error creating job: %v\n", err)
		return nil, fmt.Errorf("failed to create job: %w", err)
	}

	log.Printf("Job created successfully with ID: %s", job.ID)
	return job, nil
}

// GetByID retrieves a specific job by its ID.
func (r *JobRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	query := fmt.Sprintf(`SELECT %s FROM jobs WHERE id = $1`, jobColumns)

	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning job by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get job by ID %s: %w", id, err)
	}

	return job, nil
}

// ListActive retrieves the public job board: active postings only,
// newest-first.
func (r *JobRepo) ListActive(ctx context.Context) ([]models.Job, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM jobs
		WHERE is_active = TRUE
		ORDER BY created_at DESC`, jobColumns)

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		log.Printf("Error querying active jobs: %v\n", err)
		return nil, fmt.Errorf("failed to query active jobs: %w", err)
	}
	defer rows.Close()

	jobs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		log.Printf("Error scanning active jobs: %v\n", err)
		return nil, fmt.Errorf("failed to scan active jobs: %w", err)
	}

	if jobs == nil {
		jobs = []models.Job{}
	}

	return jobs, nil
}

// ListByRecruiter retrieves every job a recruiter owns, active or not,
// newest-first.
func (r *JobRepo) ListByRecruiter(ctx context.Context, recruiterID string) ([]models.Job, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM jobs
		WHERE recruiter_id = $1
		ORDER BY created_at DESC`, jobColumns)

	rows, err := r.db.Query(ctx, query, recruiterID)
	if err != nil {
		log.Printf("Error querying jobs by recruiter %s: %v\n", recruiterID, err)
		return nil, fmt.Errorf("failed to query jobs by recruiter: %w", err)
	}
	defer rows.Close()

	jobs, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Job])
	if err != nil {
		log.Printf("Error scanning jobs by recruiter %s: %v\n", recruiterID, err)
		return nil, fmt.Errorf("failed to scan jobs by recruiter: %w", err)
	}

	if jobs == nil {
		jobs = []models.Job{}
	}

	return jobs, nil
}

// Update modifies an existing job based on non-nil fields in the request DTO.
func (r *JobRepo) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateJobRequest) (*models.Job, error) {
	var setClauses []string
	args := []any{}
	argID := 1

	addSet := func(column string, value any) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argID))
		argID++
	}

	if req.Title != nil {
		addSet("title", *req.Title)
	}
	if req.CompanyName != nil {
		addSet("company_name", *req.CompanyName)
	}
	if req.CompanyLogo != nil {
		addSet("company_logo", *req.CompanyLogo)
	}
	if req.Location != nil {
		addSet("location", *req.Location)
	}
	if req.JobType != nil {
		addSet("job_type", *req.JobType)
	}
	if req.ExperienceLevel != nil {
		addSet("experience_level", *req.ExperienceLevel)
	}
	if req.Description != nil {
		addSet("description", *req.Description)
	}
	if req.Requirements != nil {
		addSet("requirements", req.Requirements)
	}
	if req.Responsibilities != nil {
		addSet("responsibilities", req.Responsibilities)
	}
	if req.Skills != nil {
		addSet("skills", req.Skills)
	}
	if req.SalaryMin != nil {
		addSet("salary_min", *req.SalaryMin)
	}
	if req.SalaryMax != nil {
		addSet("salary_max", *req.SalaryMax)
	}
	if req.SalaryCurrency != nil {
		addSet("salary_currency", *req.SalaryCurrency)
	}
	if req.IsActive != nil {
		addSet("is_active", *req.IsActive)
	}

	// An all-nil request degenerates to a bare updated_at refresh and
	// still returns the current row.
	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE jobs SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(setClauses, ", "), argID, jobColumns)

	job, err := scanJob(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating job %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to update job %s: %w", id, err)
	}

	return job, nil
}

// Delete removes a job by its ID. The FK cascade removes its applications.
func (r *JobRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM jobs WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		log.Printf("Error deleting job %s: %v\n", id, err)
		return fmt.Errorf("failed to delete job %s: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	log.Printf("Job deleted successfully: %s", id)
	return nil
}
