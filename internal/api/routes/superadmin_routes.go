// internal/api/routes/superadmin_routes.go
package routes

import (
	"jobboard/internal/api/handlers"
	"jobboard/internal/api/middleware"
	"jobboard/internal/app"
	"jobboard/internal/models"

	"github.com/gin-gonic/gin"
)

// RegisterSuperadminRoutes registers the approval console routes. Every
// route requires a session with the superadmin role.
func RegisterSuperadminRoutes(
	rg *gin.RouterGroup,
	superadminHandler handlers.SuperadminHandlerInterface,
	sessionAuth gin.HandlerFunc,
	app *app.Application,
) {
	superadmin := rg.Group("/superadmin")
	superadmin.Use(sessionAuth, middleware.RequireRole(app.UserService, models.RoleSuperadmin))
	{
		superadmin.GET("/stats", superadminHandler.GetStats)
		superadmin.GET("/pending-recruiters", superadminHandler.ListPendingRecruiters)
		superadmin.POST("/approve-recruiter/:id", superadminHandler.ApproveRecruiter)
		superadmin.POST("/reject-recruiter/:id", superadminHandler.RejectRecruiter)
	}
}
