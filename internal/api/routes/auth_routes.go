// internal/api/routes/auth_routes.go
package routes

import (
	"jobboard/internal/api/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers the session-bound auth routes.
func RegisterAuthRoutes(
	rg *gin.RouterGroup,
	authHandler handlers.AuthHandlerInterface,
	sessionAuth gin.HandlerFunc,
) {
	auth := rg.Group("/auth")
	auth.Use(sessionAuth)
	{
		auth.GET("/user", authHandler.GetCurrentUser) // Current profile, syncing from session claims
	}
}
