// internal/api/routes/recruiter_routes.go
package routes

import (
	"jobboard/internal/api/handlers"
	"jobboard/internal/api/middleware"
	"jobboard/internal/app"
	"jobboard/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterRecruiterRoutes registers the recruiter dashboard routes.
func RegisterRecruiterRoutes(
	rg *gin.RouterGroup,
	recruiterHandler handlers.RecruiterHandlerInterface,
	sessionAuth gin.HandlerFunc,
	app *app.Application,
) {
	recruiter := rg.Group("/recruiter")
	recruiter.Use(sessionAuth, middleware.RequireRole(app.UserService, models.RoleRecruiter))
	{
		recruiter.GET("/stats", recruiterHandler.GetStats)
		recruiter.GET("/jobs", recruiterHandler.ListOwnJobs)
	}
}
