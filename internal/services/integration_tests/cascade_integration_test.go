package integration_tests

import (
	"context"
	"testing"

	"jobboard/internal/models"
	"jobboard/internal/storage"
	"jobboard/internal/storage/postgres"
	"jobboard/internal/transport/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobDelete_Integration_CascadesApplications(t *testing.T) {
	pool := getTestPool(t)
	ctx := context.Background()
	defer cleanupTables(ctx, t, pool, "applications", "jobs", "users")

	recruiter := createTestUser(t, ctx, pool, "idp|cascade-rec-1", "cascade-rec-1@test.com", models.RoleRecruiter)
	applicant := createTestUser(t, ctx, pool, "idp|cascade-app-1", "cascade-app-1@test.com", models.RoleApplicant)
	job := createTestJob(t, ctx, pool, recruiter.ID)
	application := createTestApplication(t, ctx, pool, job.ID, applicant.ID)

	jobRepo := postgres.NewJobRepo(pool)
	appRepo := postgres.NewApplicationRepo(pool)
	userRepo := postgres.NewUserRepo(pool)

	require.NoError(t, jobRepo.Delete(ctx, job.ID))

	_, err := jobRepo.GetByID(ctx, job.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = appRepo.GetByID(ctx, application.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Users on either side of the deleted job survive.
	_, err = userRepo.GetByID(ctx, recruiter.ID)
	assert.NoError(t, err)
	_, err = userRepo.GetByID(ctx, applicant.ID)
	assert.NoError(t, err)
}

func TestRecruiterReject_Integration_CascadesJobsAndApplications(t *testing.T) {
	pool := getTestPool(t)
	ctx := context.Background()
	defer cleanupTables(ctx, t, pool, "applications", "jobs", "users")

	recruiter := createTestUser(t, ctx, pool, "idp|cascade-rec-2", "cascade-rec-2@test.com", models.RoleRecruiter)
	applicant := createTestUser(t, ctx, pool, "idp|cascade-app-2", "cascade-app-2@test.com", models.RoleApplicant)
	job := createTestJob(t, ctx, pool, recruiter.ID)
	application := createTestApplication(t, ctx, pool, job.ID, applicant.ID)

	jobRepo := postgres.NewJobRepo(pool)
	appRepo := postgres.NewApplicationRepo(pool)
	userRepo := postgres.NewUserRepo(pool)

	require.NoError(t, userRepo.Reject(ctx, recruiter.ID))

	_, err := userRepo.GetByID(ctx, recruiter.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = jobRepo.GetByID(ctx, job.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)
	_, err = appRepo.GetByID(ctx, application.ID)
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// The applicant only loses the application rows, not the account.
	_, err = userRepo.GetByID(ctx, applicant.ID)
	assert.NoError(t, err)
}

func TestUserUpdate_Integration_EmptyRequestRefreshesRow(t *testing.T) {
	pool := getTestPool(t)
	ctx := context.Background()
	defer cleanupTables(ctx, t, pool, "users")

	applicant := createTestUser(t, ctx, pool, "idp|empty-upd-1", "empty-upd-1@test.com", models.RoleApplicant)

	userRepo := postgres.NewUserRepo(pool)
	updated, err := userRepo.Update(ctx, &dto.UpdateUserRequest{ID: applicant.ID})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, applicant.Email, updated.Email)
	assert.False(t, updated.UpdatedAt.Before(applicant.UpdatedAt))
}
