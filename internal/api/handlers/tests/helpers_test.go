package routes_test

import (
	"time"

	"jobboard/config"
	"jobboard/internal/api/middleware"
	"jobboard/internal/api/routes"
	"jobboard/internal/app"
	mock_storage "jobboard/internal/mocks"
	"jobboard/internal/models"
	"jobboard/internal/services"
	"jobboard/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
)

const testSessionSecret = "test-session-secret"

func generateTestToken(userID, email string, role *models.Role, secret string) (string, error) {
	claims := &middleware.SessionClaims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(15 * time.Minute)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

type testRepos struct {
	users        *mock_storage.MockUserRepository
	jobs         *mock_storage.MockJobRepository
	applications *mock_storage.MockApplicationRepository
	stats        *mock_storage.MockStatsRepository
}

// newTestRouter wires the full route table over mocked repositories so
// handler tests exercise the real middleware chain and services.
func newTestRouter(ctrl *gomock.Controller) (*gin.Engine, testRepos) {
	gin.SetMode(gin.TestMode)

	repos := testRepos{
		users:        mock_storage.NewMockUserRepository(ctrl),
		jobs:         mock_storage.NewMockJobRepository(ctrl),
		applications: mock_storage.NewMockApplicationRepository(ctrl),
		stats:        mock_storage.NewMockStatsRepository(ctrl),
	}

	application := &app.Application{
		Config: &config.Config{
			Session: config.SessionConfig{Secret: testSessionSecret},
		},
		Validator: dto.NewValidator(),

		UserService:        services.NewUserService(repos.users),
		JobService:         services.NewJobService(repos.jobs, repos.applications, nil),
		ApplicationService: services.NewApplicationService(repos.applications, repos.jobs, repos.users),
		StatsService:       services.NewStatsService(repos.stats),
	}

	router := gin.New()
	routes.RegisterRoutes(router, application)
	return router, repos
}
