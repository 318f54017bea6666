package routes_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobboard/internal/models"
	"jobboard/internal/storage"
	"jobboard/internal/transport/dto"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func expectSuperadmin(repos testRepos) {
	repos.users.EXPECT().GetByID(gomock.Any(), "admin").Return(&models.User{
		ID:   "admin",
		Role: models.RoleSuperadmin,
	}, nil).Times(1)
}

func TestApproveRecruiter_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, repos := newTestRouter(ctrl)

	// The repo reports success whether or not the flag was already set.
	expectSuperadmin(repos)
	repos.users.EXPECT().Approve(gomock.Any(), "rec-1").Return(nil).Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/superadmin/approve-recruiter/rec-1", nil)
	req.Header.Set("Authorization", authHeader(t, "admin", models.RoleSuperadmin))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Recruiter approved successfully", decodeBody(t, rec)["message"])
}

func TestApproveRecruiter_UnknownID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, repos := newTestRouter(ctrl)

	expectSuperadmin(repos)
	repos.users.EXPECT().Approve(gomock.Any(), "missing").Return(storage.ErrNotFound).Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/superadmin/approve-recruiter/missing", nil)
	req.Header.Set("Authorization", authHeader(t, "admin", models.RoleSuperadmin))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRejectRecruiter(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, repos := newTestRouter(ctrl)

	expectSuperadmin(repos)
	repos.users.EXPECT().Reject(gomock.Any(), "rec-1").Return(nil).Times(1)

	req := httptest.NewRequest(http.MethodPost, "/api/superadmin/reject-recruiter/rec-1", nil)
	req.Header.Set("Authorization", authHeader(t, "admin", models.RoleSuperadmin))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Recruiter rejected successfully", decodeBody(t, rec)["message"])
}

func TestSuperadminRoutes_WrongRole(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, repos := newTestRouter(ctrl)

	repos.users.EXPECT().GetByID(gomock.Any(), "rec-1").Return(&models.User{
		ID:   "rec-1",
		Role: models.RoleRecruiter,
	}, nil).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/superadmin/stats", nil)
	req.Header.Set("Authorization", authHeader(t, "rec-1", models.RoleRecruiter))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSuperadminStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, repos := newTestRouter(ctrl)

	expectSuperadmin(repos)
	repos.stats.EXPECT().SuperadminStats(gomock.Any()).Return(&dto.SuperadminStatsResponse{
		TotalRecruiters:   5,
		PendingRecruiters: 2,
		ActiveJobs:        10,
		TotalApplicants:   40,
	}, nil).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/superadmin/stats", nil)
	req.Header.Set("Authorization", authHeader(t, "admin", models.RoleSuperadmin))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var stats dto.SuperadminStatsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 2, stats.PendingRecruiters)
}

func TestPendingRecruiters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, repos := newTestRouter(ctrl)

	expectSuperadmin(repos)
	repos.users.EXPECT().ListPendingRecruiters(gomock.Any()).Return([]models.User{
		{ID: "rec-1", Role: models.RoleRecruiter, IsApproved: false},
	}, nil).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/superadmin/pending-recruiters", nil)
	req.Header.Set("Authorization", authHeader(t, "admin", models.RoleSuperadmin))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var users []models.User
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	require.Len(t, users, 1)
	assert.False(t, users[0].IsApproved)
}
