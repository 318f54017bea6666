package integration_tests

import (
	"context"
	"os"
	"testing"
	"time"

	"jobboard/internal/database"
	"jobboard/internal/models"
	"jobboard/internal/storage/postgres"
	"jobboard/internal/transport/dto"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

var testPool *pgxpool.Pool

// getTestPool connects to the database named by TEST_DATABASE_URL and makes
// sure the schema exists. Tests are skipped when the variable is unset so
// the unit suites keep running without a live Postgres.
func getTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL environment variable not set")
	}

	if testPool != nil {
		return testPool
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err, "Failed to connect to test database")
	require.NoError(t, database.EnsureSchema(ctx, pool), "Failed to create/check schema")

	testPool = pool
	return testPool
}

// cleanupTables truncates the given tables for test isolation.
func cleanupTables(ctx context.Context, t *testing.T, pool *pgxpool.Pool, tables ...string) {
	t.Helper()
	for _, table := range tables {
		_, err := pool.Exec(ctx, "TRUNCATE TABLE "+table+" CASCADE")
		require.NoError(t, err, "Failed to truncate %s table", table)
	}
}

// Helper to create a pointer to a Role
func ptrRole(r models.Role) *models.Role { return &r }

// Helper function to create a user for tests
func createTestUser(t *testing.T, ctx context.Context, pool *pgxpool.Pool, id, email string, role models.Role) *models.User {
	t.Helper()
	userRepo := postgres.NewUserRepo(pool)
	user, err := userRepo.Upsert(ctx, &dto.UpsertUserRequest{
		ID:    id,
		Email: email,
		Role:  ptrRole(role),
	})
	require.NoError(t, err, "Failed to create test user %s", email)
	require.NotNil(t, user)
	return user
}

// Helper function to create a job for tests
func createTestJob(t *testing.T, ctx context.Context, pool *pgxpool.Pool, recruiterID string) *models.Job {
	t.Helper()
	jobRepo := postgres.NewJobRepo(pool)
	job, err := jobRepo.Create(ctx, recruiterID, &dto.CreateJobRequest{
		Title:            "Backend Engineer",
		CompanyName:      "Acme",
		Location:         "Remote",
		JobType:          models.JobTypeFullTime,
		ExperienceLevel:  models.ExperienceMid,
		Description:      "Build services.",
		Requirements:     []string{"Go"},
		Responsibilities: []string{"Ship features"},
		Skills:           []string{"Go"},
	})
	require.NoError(t, err, "Failed to create test job for recruiter %s", recruiterID)
	require.NotNil(t, job)
	return job
}

// Helper function to create an application for tests
func createTestApplication(t *testing.T, ctx context.Context, pool *pgxpool.Pool, jobID uuid.UUID, applicantID string) *models.Application {
	t.Helper()
	appRepo := postgres.NewApplicationRepo(pool)
	application, err := appRepo.Create(ctx, &dto.CreateApplicationRequest{
		JobID:       jobID,
		ApplicantID: applicantID,
		ResumeURL:   "https://cdn.example.com/resume.pdf",
	})
	require.NoError(t, err, "Failed to create test application for job %s", jobID)
	require.NotNil(t, application)
	return application
}
