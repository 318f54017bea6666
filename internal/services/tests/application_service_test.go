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

func newApplicationServiceForTest(t *testing.T) (services.ApplicationService, *mock_storage.MockApplicationRepository, *mock_storage.MockJobRepository, *mock_storage.MockUserRepository) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockAppRepo := mock_storage.NewMockApplicationRepository(ctrl)
	mockJobRepo := mock_storage.NewMockJobRepository(ctrl)
	mockUserRepo := mock_storage.NewMockUserRepository(ctrl)
	return services.NewApplicationService(mockAppRepo, mockJobRepo, mockUserRepo), mockAppRepo, mockJobRepo, mockUserRepo
}

func TestApplicationService_Apply(t *testing.T) {
	jobID := uuid.New()
	applicantID := "app-1"
	job := &models.Job{ID: jobID, RecruiterID: "rec-1", IsActive: true}
	applicant := &models.User{ID: applicantID, Role: models.RoleApplicant, ResumeURL: ptr("https://cdn.example.com/resume.pdf")}

	t.Run("Success - resume copied from profile", func(t *testing.T) {
		appService, mockAppRepo, mockJobRepo, mockUserRepo := newApplicationServiceForTest(t)

		mockJobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(job, nil).Times(1)
		mockAppRepo.EXPECT().HasApplied(gomock.Any(), jobID, applicantID).Return(false, nil).Times(1)
		mockUserRepo.EXPECT().GetByID(gomock.Any(), applicantID).Return(applicant, nil).Times(1)
		mockAppRepo.EXPECT().
			Create(gomock.Any(), gomock.AssignableToTypeOf(&dto.CreateApplicationRequest{})).
			DoAndReturn(func(_ context.Context, req *dto.CreateApplicationRequest) (*models.Application, error) {
				assert.Equal(t, jobID, req.JobID)
				assert.Equal(t, applicantID, req.ApplicantID)
				assert.Equal(t, *applicant.ResumeURL, req.ResumeURL)
				return &models.Application{
					ID:          uuid.New(),
					JobID:       req.JobID,
					ApplicantID: req.ApplicantID,
					ResumeURL:   req.ResumeURL,
					Status:      models.StatusSubmitted,
				}, nil
			}).Times(1)

		application, err := appService.Apply(context.Background(), jobID, applicantID, &dto.ApplyRequest{})
		require.NoError(t, err)
		assert.Equal(t, models.StatusSubmitted, application.Status)
		assert.Equal(t, *applicant.ResumeURL, application.ResumeURL)
	})

	t.Run("Job not found - checked before anything else", func(t *testing.T) {
		appService, _, mockJobRepo, _ := newApplicationServiceForTest(t)
		mockJobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(nil, storage.ErrNotFound).Times(1)

		_, err := appService.Apply(context.Background(), jobID, applicantID, &dto.ApplyRequest{})
		assert.ErrorIs(t, err, services.ErrNotFound)
	})

	t.Run("Already applied - fast path, no insert", func(t *testing.T) {
		appService, mockAppRepo, mockJobRepo, _ := newApplicationServiceForTest(t)
		mockJobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(job, nil).Times(1)
		mockAppRepo.EXPECT().HasApplied(gomock.Any(), jobID, applicantID).Return(true, nil).Times(1)

		_, err := appService.Apply(context.Background(), jobID, applicantID, &dto.ApplyRequest{})
		assert.ErrorIs(t, err, services.ErrConflict)
	})

	t.Run("Already applied - race lost at the unique constraint", func(t *testing.T) {
		appService, mockAppRepo, mockJobRepo, mockUserRepo := newApplicationServiceForTest(t)
		mockJobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(job, nil).Times(1)
		mockAppRepo.EXPECT().HasApplied(gomock.Any(), jobID, applicantID).Return(false, nil).Times(1)
		mockUserRepo.EXPECT().GetByID(gomock.Any(), applicantID).Return(applicant, nil).Times(1)
		mockAppRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, storage.ErrConflict).Times(1)

		_, err := appService.Apply(context.Background(), jobID, applicantID, &dto.ApplyRequest{})
		assert.ErrorIs(t, err, services.ErrConflict)
	})

	t.Run("Missing resume - rejected, no insert", func(t *testing.T) {
		appService, mockAppRepo, mockJobRepo, mockUserRepo := newApplicationServiceForTest(t)
		noResume := &models.User{ID: applicantID, Role: models.RoleApplicant}

		mockJobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(job, nil).Times(1)
		mockAppRepo.EXPECT().HasApplied(gomock.Any(), jobID, applicantID).Return(false, nil).Times(1)
		mockUserRepo.EXPECT().GetByID(gomock.Any(), applicantID).Return(noResume, nil).Times(1)

		_, err := appService.Apply(context.Background(), jobID, applicantID, &dto.ApplyRequest{})
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("Empty resume string - same as missing", func(t *testing.T) {
		appService, mockAppRepo, mockJobRepo, mockUserRepo := newApplicationServiceForTest(t)
		emptyResume := &models.User{ID: applicantID, Role: models.RoleApplicant, ResumeURL: ptr("")}

		mockJobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(job, nil).Times(1)
		mockAppRepo.EXPECT().HasApplied(gomock.Any(), jobID, applicantID).Return(false, nil).Times(1)
		mockUserRepo.EXPECT().GetByID(gomock.Any(), applicantID).Return(emptyResume, nil).Times(1)

		_, err := appService.Apply(context.Background(), jobID, applicantID, &dto.ApplyRequest{})
		assert.ErrorIs(t, err, services.ErrValidation)
	})
}

func TestApplicationService_GetApplication(t *testing.T) {
	applicationID := uuid.New()
	jobID := uuid.New()
	application := &models.Application{ID: applicationID, JobID: jobID, ApplicantID: "app-1"}
	parentJob := &models.Job{ID: jobID, RecruiterID: "rec-1"}

	t.Run("Applicant reads own application", func(t *testing.T) {
		appService, mockAppRepo, _, _ := newApplicationServiceForTest(t)
		mockAppRepo.EXPECT().GetByID(gomock.Any(), applicationID).Return(application, nil).Times(1)

		got, err := appService.GetApplication(context.Background(), applicationID, &models.User{ID: "app-1", Role: models.RoleApplicant})
		require.NoError(t, err)
		assert.Equal(t, applicationID, got.ID)
	})

	t.Run("Applicant denied on someone else's application", func(t *testing.T) {
		appService, mockAppRepo, _, _ := newApplicationServiceForTest(t)
		mockAppRepo.EXPECT().GetByID(gomock.Any(), applicationID).Return(application, nil).Times(1)

		_, err := appService.GetApplication(context.Background(), applicationID, &models.User{ID: "app-2", Role: models.RoleApplicant})
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("Recruiter reads application on own job", func(t *testing.T) {
		appService, mockAppRepo, mockJobRepo, _ := newApplicationServiceForTest(t)
		mockAppRepo.EXPECT().GetByID(gomock.Any(), applicationID).Return(application, nil).Times(1)
		mockJobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(parentJob, nil).Times(1)

		got, err := appService.GetApplication(context.Background(), applicationID, &models.User{ID: "rec-1", Role: models.RoleRecruiter})
		require.NoError(t, err)
		assert.Equal(t, applicationID, got.ID)
	})

	t.Run("Recruiter denied on another recruiter's job", func(t *testing.T) {
		appService, mockAppRepo, mockJobRepo, _ := newApplicationServiceForTest(t)
		mockAppRepo.EXPECT().GetByID(gomock.Any(), applicationID).Return(application, nil).Times(1)
		mockJobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(parentJob, nil).Times(1)

		_, err := appService.GetApplication(context.Background(), applicationID, &models.User{ID: "rec-2", Role: models.RoleRecruiter})
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("Superadmin reads anything", func(t *testing.T) {
		appService, mockAppRepo, _, _ := newApplicationServiceForTest(t)
		mockAppRepo.EXPECT().GetByID(gomock.Any(), applicationID).Return(application, nil).Times(1)

		got, err := appService.GetApplication(context.Background(), applicationID, &models.User{ID: "admin", Role: models.RoleSuperadmin})
		require.NoError(t, err)
		assert.Equal(t, applicationID, got.ID)
	})

	t.Run("Not found beats ownership", func(t *testing.T) {
		appService, mockAppRepo, _, _ := newApplicationServiceForTest(t)
		mockAppRepo.EXPECT().GetByID(gomock.Any(), applicationID).Return(nil, storage.ErrNotFound).Times(1)

		_, err := appService.GetApplication(context.Background(), applicationID, &models.User{ID: "app-2", Role: models.RoleApplicant})
		assert.ErrorIs(t, err, services.ErrNotFound)
		assert.NotErrorIs(t, err, services.ErrForbidden)
	})
}

func TestApplicationService_ListForApplicant(t *testing.T) {
	appService, mockAppRepo, mockJobRepo, _ := newApplicationServiceForTest(t)

	jobID := uuid.New()
	applications := []models.Application{
		{ID: uuid.New(), JobID: jobID, ApplicantID: "app-1"},
	}
	job := &models.Job{ID: jobID, Title: "Backend Engineer"}

	mockAppRepo.EXPECT().ListByApplicant(gomock.Any(), "app-1").Return(applications, nil).Times(1)
	mockJobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(job, nil).Times(1)

	result, err := appService.ListForApplicant(context.Background(), "app-1")
	require.NoError(t, err)
	require.Len(t, result, 1)
	require.NotNil(t, result[0].Job)
	assert.Equal(t, "Backend Engineer", result[0].Job.Title)
}

func TestApplicationService_ListForJob(t *testing.T) {
	jobID := uuid.New()
	parentJob := &models.Job{ID: jobID, RecruiterID: "rec-1"}

	t.Run("Owner lists applications", func(t *testing.T) {
		appService, mockAppRepo, mockJobRepo, _ := newApplicationServiceForTest(t)
		mockJobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(parentJob, nil).Times(1)
		mockAppRepo.EXPECT().ListByJob(gomock.Any(), jobID).Return([]models.Application{{ID: uuid.New(), JobID: jobID}}, nil).Times(1)

		applications, err := appService.ListForJob(context.Background(), jobID, "rec-1")
		require.NoError(t, err)
		assert.Len(t, applications, 1)
	})

	t.Run("Non-owner denied", func(t *testing.T) {
		appService, _, mockJobRepo, _ := newApplicationServiceForTest(t)
		mockJobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(parentJob, nil).Times(1)

		_, err := appService.ListForJob(context.Background(), jobID, "rec-2")
		assert.ErrorIs(t, err, services.ErrForbidden)
	})
}

func TestApplicationService_UpdateStatus(t *testing.T) {
	applicationID := uuid.New()
	jobID := uuid.New()
	application := &models.Application{ID: applicationID, JobID: jobID, ApplicantID: "app-1", Status: models.StatusSubmitted}
	parentJob := &models.Job{ID: jobID, RecruiterID: "rec-1"}

	t.Run("Owner sets any valid status, ordering not enforced", func(t *testing.T) {
		appService, mockAppRepo, mockJobRepo, _ := newApplicationServiceForTest(t)
		mockAppRepo.EXPECT().GetByID(gomock.Any(), applicationID).Return(application, nil).Times(1)
		mockJobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(parentJob, nil).Times(1)
		mockAppRepo.EXPECT().UpdateStatus(gomock.Any(), applicationID, models.StatusAccepted).
			Return(&models.Application{ID: applicationID, JobID: jobID, Status: models.StatusAccepted}, nil).Times(1)

		// Submitted straight to Accepted is allowed.
		updated, err := appService.UpdateStatus(context.Background(), applicationID, "rec-1", models.StatusAccepted)
		require.NoError(t, err)
		assert.Equal(t, models.StatusAccepted, updated.Status)
	})

	t.Run("Unknown status rejected before any load", func(t *testing.T) {
		appService, _, _, _ := newApplicationServiceForTest(t)

		_, err := appService.UpdateStatus(context.Background(), applicationID, "rec-1", models.ApplicationStatus("Archived"))
		assert.ErrorIs(t, err, services.ErrValidation)
	})

	t.Run("Non-owner denied, status untouched", func(t *testing.T) {
		appService, mockAppRepo, mockJobRepo, _ := newApplicationServiceForTest(t)
		mockAppRepo.EXPECT().GetByID(gomock.Any(), applicationID).Return(application, nil).Times(1)
		mockJobRepo.EXPECT().GetByID(gomock.Any(), jobID).Return(parentJob, nil).Times(1)

		_, err := appService.UpdateStatus(context.Background(), applicationID, "rec-2", models.StatusRejected)
		assert.ErrorIs(t, err, services.ErrForbidden)
	})

	t.Run("Application not found", func(t *testing.T) {
		appService, mockAppRepo, _, _ := newApplicationServiceForTest(t)
		mockAppRepo.EXPECT().GetByID(gomock.Any(), applicationID).Return(nil, storage.ErrNotFound).Times(1)

		_, err := appService.UpdateStatus(context.Background(), applicationID, "rec-1", models.StatusUnderReview)
		assert.ErrorIs(t, err, services.ErrNotFound)
	})
}
