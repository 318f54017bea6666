package services_test

import (
	"context"
	"testing"

	mock_storage "jobboard/internal/mocks"
	"jobboard/internal/models"
	"jobboard/internal/services"
	"jobboard/internal/storage"
	"jobboard/internal/transport/dto"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newJobServiceForTest(t *testing.T) (services.JobService, *mock_storage.MockJobRepository, *mock_storage.MockApplicationRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockJobRepo := mock_storage.NewMockJobRepository(ctrl)
	mockAppRepo := mock_storage.NewMockApplicationRepository(ctrl)
	// No Redis in unit tests; a nil cache always misses.
	return services.NewJobService(mockJobRepo, mockAppRepo, nil), mockJobRepo, mockAppRepo
}

func validCreateJobRequest() *dto.CreateJobRequest {
	return &dto.CreateJobRequest{
		Title:            "Backend Engineer",
		CompanyName:      "Acme",
		Location:         "Remote",
		JobType:          models.JobTypeFullTime,
		ExperienceLevel:  models.ExperienceMid,
		Description:      "Build services.",
		Requirements:     []string{"Go"},
		Responsibilities: []string{"Ship features"},
		Skills:           []string{"Go", "Postgres"},
	}
}

func TestJobService_CreateJob(t *testing.T) {
	recruiter := &models.User{ID: "rec-1", Role: models.RoleRecruiter, IsApproved: true}

	t.Run("Success", func(t *testing.T) {
		jobService, mockJobRepo, _ := newJobServiceForTest(t)
		req := validCreateJobRequest()

		created := &models.Job{ID: uuid.New(), RecruiterID: recruiter.ID, Title: req.Title, IsActive: true}
		mockJobRepo.EXPECT().Create(gomock.Any(), recruiter.ID, req).Return(created, nil).Times(1)

		job, err := jobService.CreateJob(context.Background(), recruiter, req)
		require.NoError(t, err)
		assert.Equal(t, recruiter.ID, job.RecruiterID)
		assert.True(t, job.IsActive)
	})

	t.Run("Forbidden - unapproved recruiter never reaches storage", func(t *testing.T) {
		jobService, _, _ := newJobServiceForTest(t)
		pending := &models.User{ID: "rec-2", Role: models.RoleRecruiter, IsApproved: false}

		job, err := jobService.CreateJob(context.Background(), pending, validCreateJobRequest())
		assert.ErrorIs(t, err, services.ErrForbidden)
		assert.Nil(t, job)
	})
}

func TestJobService_GetJob(t *testing.T) {
	jobID := uuid.New()
	stored := &models.Job{ID: jobID, RecruiterID: "rec-1", Title: "Backend Engineer", IsActive: true}

	t.Run("Anonymous viewer - hasApplied stays false without a lookup", func(t *testing.T) {
		jobService, mockJobRepo, _ := newJobServiceForTest(t)
		mockJobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(stored, nil).Times(1)

		detail, err := jobService.GetJob(context.Background(), jobID, "")
		require.NoError(t, err)
		assert.False(t, detail.HasApplied)
	})

	t.Run("Authenticated viewer who applied", func(t *testing.T) {
		jobService, mockJobRepo, mockAppRepo := newJobServiceForTest(t)
		mockJobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(stored, nil).Times(1)
		mockAppRepo.EXPECT().HasApplied(gomock.Any(), jobID, "app-1").Return(true, nil).Times(1)

		detail, err := jobService.GetJob(context.Background(), jobID, "app-1")
		require.NoError(t, err)
		assert.True(t, detail.HasApplied)
	})

	t.Run("Not found", func(t *testing.T) {
		jobService, mockJobRepo, _ := newJobServiceForTest(t)
		mockJobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(nil, storage.ErrNotFound).Times(1)

		_, err := jobService.GetJob(context.Background(), jobID, "app-1")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}

func TestJobService_ListActiveJobs(t *testing.T) {
	jobService, mockJobRepo, _ := newJobServiceForTest(t)

	active := []models.Job{
		{ID: uuid.New(), IsActive: true},
		{ID: uuid.New(), IsActive: true},
	}
	mockJobRepo.EXPECT().ListActive(gomock.Any()).Return(active, nil).Times(1)

	jobs, err := jobService.ListActiveJobs(context.Background())
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	for _, job := range jobs {
		assert.True(t, job.IsActive)
	}
}

func TestJobService_UpdateJob(t *testing.T) {
	jobID := uuid.New()
	owned := &models.Job{ID: jobID, RecruiterID: "rec-1"}
	newTitle := "Senior Backend Engineer"

	t.Run("Success - owner updates", func(t *testing.T) {
		jobService, mockJobRepo, _ := newJobServiceForTest(t)
		req := &dto.UpdateJobRequest{Title: &newTitle}

		mockJobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(owned, nil).Times(1)
		mockJobRepo.EXPECT().Update(gomock.Any(), jobID, req).Return(&models.Job{ID: jobID, RecruiterID: "rec-1", Title: newTitle}, nil).Times(1)

		job, err := jobService.UpdateJob(context.Background(), jobID, "rec-1", req)
		require.NoError(t, err)
		assert.Equal(t, newTitle, job.Title)
	})

	t.Run("Forbidden - non-owner, job untouched", func(t *testing.T) {
		jobService, mockJobRepo, _ := newJobServiceForTest(t)
		mockJobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(owned, nil).Times(1)
		// No Update expectation: the mutation must not run.

		_, err := jobService.UpdateJob(context.Background(), jobID, "rec-2", &dto.UpdateJobRequest{Title: &newTitle})
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("Not found beats ownership", func(t *testing.T) {
		jobService, mockJobRepo, _ := newJobServiceForTest(t)
		mockJobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(nil, storage.ErrNotFound).Times(1)

		_, err := jobService.UpdateJob(context.Background(), jobID, "rec-2", &dto.UpdateJobRequest{Title: &newTitle})
		assert.ErrorIs(t, err, services.ErrNotFound)
		assert.NotErrorIs(t, err, services.ErrForbidden)
	})
}

func TestJobService_DeleteJob(t *testing.T) {
	jobID := uuid.New()
	owned := &models.Job{ID: jobID, RecruiterID: "rec-1"}

	t.Run("Success", func(t *testing.T) {
		jobService, mockJobRepo, _ := newJobServiceForTest(t)
		mockJobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(owned, nil).Times(1)
		mockJobRepo.EXPECT().Delete(gomock.Any(), jobID).Return(nil).Times(1)

		require.NoError(t, jobService.DeleteJob(context.Background(), jobID, "rec-1"))
	})

	t.Run("Forbidden - non-owner", func(t *testing.T) {
		jobService, mockJobRepo, _ := newJobServiceForTest(t)
		mockJobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(owned, nil).Times(1)

		err := jobService.DeleteJob(context.Background(), jobID, "rec-2")
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("Not found", func(t *testing.T) {
		jobService, mockJobRepo, _ := newJobServiceForTest(t)
		mockJobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(nil, storage.ErrNotFound).Times(1)

		err := jobService.DeleteJob(context.Background(), jobID, "rec-1")
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}
