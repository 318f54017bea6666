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

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, email, first_name, last_name, profile_image_url, role,
	company_name, company_website, is_approved,
	phone, location, resume_url, skills, experience, education, bio,
	created_at, updated_at`

// UserRepo implements the storage.UserRepository interface using PostgreSQL.
type UserRepo struct {
	db Querier
}

// NewUserRepo creates a new UserRepo.
func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

var _ storage.UserRepository = (*UserRepo)(nil)

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	err := row.Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.ProfileImageURL, &u.Role,
		&u.CompanyName, &u.CompanyWebsite, &u.IsApproved,
		&u.Phone, &u.Location, &u.ResumeURL, &u.Skills, &u.Experience, &u.Education, &u.Bio,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}

// GetByID retrieves a single user by the identity-provider subject id.
func (r *UserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := fmt.Sprintf(`SELECT %s FROM users WHERE id = $1`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error scanning user by ID %s: %v\n", id, err)
		return nil, fmt.Errorf("failed to get user by ID %s: %w", id, err)
	}

	return user, nil
}

// Upsert inserts a user row keyed by the provider subject, or refreshes the
// identity fields of an existing row. A single ON CONFLICT statement keeps
// concurrent logins of the same identity from racing. Role and approval are
// only ever written on the initial insert.
func (r *UserRepo) Upsert(ctx context.Context, req *dto.UpsertUserRequest) (*models.User, error) {
	role := models.RoleApplicant
	if req.Role != nil {
		role = *req.Role
	}

	query := fmt.Sprintf(`
		INSERT INTO users (id, email, first_name, last_name, profile_image_url, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		ON CONFLICT (id) DO UPDATE SET
			email = EXCLUDED.email,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			profile_image_url = EXCLUDED.profile_image_url,
			updated_at = NOW()
		RETURNING %s`, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query,
		req.ID, req.Email, req.FirstName, req.LastName, req.ProfileImageURL, role,
	))
	if err != nil {
		if isPgError(err, pgUniqueViolation) {
			// A different subject already owns this email.
			log.Printf("Error upserting user %s: duplicate email %s\n", req.ID, req.Email)
			return nil, fmt.Errorf("failed to upsert user: email already in use: %w", storage.ErrConflict)
		}
		log.Printf("Error upserting user %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to upsert user %s: %w", req.ID, err)
	}

	return user, nil
}

// Update merges the non-nil fields into the existing row and refreshes
// updated_at.
func (r *UserRepo) Update(ctx context.Context, req *dto.UpdateUserRequest) (*models.User, error) {
	var setClauses []string
	args := []any{}
	argID := 1

	addSet := func(column string, value any) {
		args = append(args, value)
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", column, argID))
		argID++
	}

	if req.FirstName != nil {
		addSet("first_name", *req.FirstName)
	}
	if req.LastName != nil {
		addSet("last_name", *req.LastName)
	}
	if req.ProfileImageURL != nil {
		addSet("profile_image_url", *req.ProfileImageURL)
	}
	if req.CompanyName != nil {
		addSet("company_name", *req.CompanyName)
	}
	if req.CompanyWebsite != nil {
		addSet("company_website", *req.CompanyWebsite)
	}
	if req.Phone != nil {
		addSet("phone", *req.Phone)
	}
	if req.Location != nil {
		addSet("location", *req.Location)
	}
	if req.ResumeURL != nil {
		addSet("resume_url", *req.ResumeURL)
	}
	if req.Skills != nil {
		addSet("skills", req.Skills)
	}
	if req.Experience != nil {
		addSet("experience", *req.Experience)
	}
	if req.Education != nil {
		addSet("education", *req.Education)
	}
	if req.Bio != nil {
		addSet("bio", *req.Bio)
	}

	// An all-nil request degenerates to a bare updated_at refresh and
	// still returns the current row.
	setClauses = append(setClauses, "updated_at = NOW()")
	args = append(args, req.ID)

	query := fmt.Sprintf(`UPDATE users SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(setClauses, ", "), argID, userColumns)

	user, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		log.Printf("Error updating user %s: %v\n", req.ID, err)
		return nil, fmt.Errorf("failed to update user %s: %w", req.ID, err)
	}

	return user, nil
}

// ListPendingRecruiters retrieves recruiters still awaiting superadmin
// approval. Ordered by signup time so the display is stable.
func (r *UserRepo) ListPendingRecruiters(ctx context.Context) ([]models.User, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM users
		WHERE role = $1 AND is_approved = FALSE
		ORDER BY created_at DESC`, userColumns)

	rows, err := r.db.Query(ctx, query, models.RoleRecruiter)
	if err != nil {
		log.Printf("Error querying pending recruiters: %v\n", err)
		return nil, fmt.Errorf("failed to query pending recruiters: %w", err)
	}
	defer rows.Close()

	users, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.User])
	if err != nil {
		log.Printf("Error scanning pending recruiters: %v\n", err)
		return nil, fmt.Errorf("failed to scan pending recruiters: %w", err)
	}

	if users == nil {
		users = []models.User{}
	}

	return users, nil
}

// Approve sets is_approved on a recruiter. Re-approving an already-approved
// recruiter is a no-op success.
func (r *UserRepo) Approve(ctx context.Context, id string) error {
	query := `UPDATE users SET is_approved = TRUE, updated_at = NOW() WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		log.Printf("Error approving recruiter %s: %v\n", id, err)
		return fmt.Errorf("failed to approve recruiter %s: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}

// Reject hard-deletes the user row. The FK cascade removes any jobs and
// applications hanging off it.
func (r *UserRepo) Reject(ctx context.Context, id string) error {
	query := `DELETE FROM users WHERE id = $1`

	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		log.Printf("Error rejecting recruiter %s: %v\n", id, err)
		return fmt.Errorf("failed to reject recruiter %s: %w", id, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}

	return nil
}
