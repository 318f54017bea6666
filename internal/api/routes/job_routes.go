// internal/api/routes/job_routes.go
package routes

import (
	"jobboard/internal/api/handlers"
	"jobboard/internal/api/middleware"
	"jobboard/internal/app"
	"jobboard/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterJobRoutes registers all routes related to jobs. The board reads
// are public; mutations are recruiter-only and apply is applicant-only.
func RegisterJobRoutes(
	rg *gin.RouterGroup,
	jobHandler handlers.JobHandlerInterface,
	applicationHandler handlers.ApplicationHandlerInterface,
	sessionAuth gin.HandlerFunc,
	optionalAuth gin.HandlerFunc,
	app *app.Application,
) {
	requireRecruiter := middleware.RequireRole(app.UserService, models.RoleRecruiter)
	requireApplicant := middleware.RequireRole(app.UserService, models.RoleApplicant)

	jobs := rg.Group("/jobs")
	{
		jobs.GET("", jobHandler.ListJobs)              // Public board listing
		jobs.GET("/:id", optionalAuth, jobHandler.GetJob) // Public detail, hasApplied when a session is present

		jobs.POST("", sessionAuth, requireRecruiter, jobHandler.CreateJob)
		jobs.PUT("/:id", sessionAuth, requireRecruiter, jobHandler.UpdateJob)
		jobs.DELETE("/:id", sessionAuth, requireRecruiter, jobHandler.DeleteJob)
		jobs.GET("/:id/applications", sessionAuth, requireRecruiter, applicationHandler.ListJobApplications)

		jobs.POST("/:id/apply", sessionAuth, requireApplicant, applicationHandler.Apply)
	}
}
