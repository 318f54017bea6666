// internal/api/routes/application_routes.go
package routes

import (
	"jobboard/internal/api/handlers"
	"jobboard/internal/api/middleware"
	"jobboard/internal/app"
	"jobboard/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterApplicationRoutes registers the application routes. The single
// read is open to any authenticated role; the service enforces per-role
// ownership. Status changes stay recruiter-only.
func RegisterApplicationRoutes(
	rg *gin.RouterGroup,
	applicationHandler handlers.ApplicationHandlerInterface,
	sessionAuth gin.HandlerFunc,
	app *app.Application,
) {
	applications := rg.Group("/applications")
	applications.Use(sessionAuth)
	{
		applications.GET("/:id", applicationHandler.GetApplication)
		applications.PUT("/:id/status", middleware.RequireRole(app.UserService, models.RoleRecruiter), applicationHandler.UpdateStatus)
	}
}
