package routes_test

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"jobboard/internal/models"
	"jobboard/internal/transport/dto"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestGetCurrentUser_SyncsFromClaims(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, repos := newTestRouter(ctrl)

	repos.users.EXPECT().
		Upsert(gomock.Any(), gomock.AssignableToTypeOf(&dto.UpsertUserRequest{})).
		DoAndReturn(func(_ context.Context, req *dto.UpsertUserRequest) (*models.User, error) {
			assert.Equal(t, "app-1", req.ID)
			assert.Equal(t, "app-1@example.com", req.Email)
			return &models.User{ID: req.ID, Email: req.Email, Role: models.RoleApplicant}, nil
		}).Times(1)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	req.Header.Set("Authorization", authHeader(t, "app-1", models.RoleApplicant))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "app-1", body["id"])
	assert.Equal(t, "applicant", body["role"])
}

func TestGetCurrentUser_NoSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, _ := newTestRouter(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetCurrentUser_GarbageToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, _ := newTestRouter(ctrl)

	req := httptest.NewRequest(http.MethodGet, "/api/auth/user", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestUpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, repos := newTestRouter(ctrl)

	repos.users.EXPECT().
		Update(gomock.Any(), gomock.AssignableToTypeOf(&dto.UpdateUserRequest{})).
		DoAndReturn(func(_ context.Context, update *dto.UpdateUserRequest) (*models.User, error) {
			assert.Equal(t, "app-1", update.ID)
			assert.Equal(t, "https://cdn.example.com/resume.pdf", *update.ResumeURL)
			return &models.User{ID: update.ID, ResumeURL: update.ResumeURL, Role: models.RoleApplicant}, nil
		}).Times(1)

	payload := `{"resumeUrl":"https://cdn.example.com/resume.pdf"}`
	req := httptest.NewRequest(http.MethodPut, "/api/profile", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authHeader(t, "app-1", models.RoleApplicant))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestUpdateProfile_EmptyBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, repos := newTestRouter(ctrl)

	// An empty body is a valid no-op update; it must reach storage and
	// come back 200, not fail upstream.
	repos.users.EXPECT().
		Update(gomock.Any(), gomock.AssignableToTypeOf(&dto.UpdateUserRequest{})).
		DoAndReturn(func(_ context.Context, update *dto.UpdateUserRequest) (*models.User, error) {
			assert.Equal(t, "app-1", update.ID)
			assert.Nil(t, update.FirstName)
			assert.Nil(t, update.ResumeURL)
			return &models.User{ID: update.ID, Email: "app-1@example.com", Role: models.RoleApplicant}, nil
		}).Times(1)

	req := httptest.NewRequest(http.MethodPut, "/api/profile", bytes.NewBufferString(`{}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authHeader(t, "app-1", models.RoleApplicant))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "app-1", decodeBody(t, rec)["id"])
}

func TestUpdateProfile_InvalidURL(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	router, _ := newTestRouter(ctrl)

	payload := `{"resumeUrl":"not a url"}`
	req := httptest.NewRequest(http.MethodPut, "/api/profile", bytes.NewBufferString(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authHeader(t, "app-1", models.RoleApplicant))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "Validation error", body["message"])
	assert.NotEmpty(t, body["errors"])
}
