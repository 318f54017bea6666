// internal/api/routes/profile_routes.go
package routes

import (
	"jobboard/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterProfileRoutes registers the self-service profile route. Any
// authenticated role may edit its own profile.
func RegisterProfileRoutes(
	rg *gin.RouterGroup,
	profileHandler handlers.ProfileHandlerInterface,
	sessionAuth gin.HandlerFunc,
) {
	rg.PUT("/profile", sessionAuth, profileHandler.UpdateProfile)
}
