// internal/api/routes/applicant_routes.go
package routes

import (
	"jobboard/internal/api/handlers"
	"jobboard/internal/api/middleware"
	"jobboard/internal/app"
	"jobboard/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterApplicantRoutes registers the applicant dashboard routes.
func RegisterApplicantRoutes(
	rg *gin.RouterGroup,
	applicantHandler handlers.ApplicantHandlerInterface,
	sessionAuth gin.HandlerFunc,
	app *app.Application,
) {
	applicant := rg.Group("/applicant")
	applicant.Use(sessionAuth, middleware.RequireRole(app.UserService, models.RoleApplicant))
	{
		applicant.GET("/stats", applicantHandler.GetStats)
		applicant.GET("/applications", applicantHandler.ListOwnApplications)
	}
}
