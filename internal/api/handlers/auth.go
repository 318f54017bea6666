// internal/api/handlers/auth.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"jobboard/internal/api/middleware"
	"jobboard/internal/services"
	"jobboard/internal/transport/dto"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds dependencies for the session-bound auth endpoints.
type AuthHandler struct {
	service services.UserService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service services.UserService) *AuthHandler {
	return &AuthHandler{service: service}
}

// GetCurrentUser godoc
// @Summary      Get the current user
// @Description  Returns the caller's profile, upserting the user row from the session claims. This is the login sync point: first call creates the row, later calls refresh identity fields.
// @Tags         auth
// @Produce      json
// @Success      200 {object}  models.User "Current user profile"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /auth/user [get]
// @Security     BearerAuth
func (h *AuthHandler) GetCurrentUser(c *gin.Context) {
	claims, err := middleware.GetSessionClaims(c)
	if err != nil {
		log.Printf("GetCurrentUser: Error getting session claims: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	user, err := h.service.SyncUser(c.Request.Context(), &dto.UpsertUserRequest{
		ID:              claims.Subject,
		Email:           claims.Email,
		FirstName:       claims.FirstName,
		LastName:        claims.LastName,
		ProfileImageURL: claims.ProfileImageURL,
		Role:            claims.Role,
	})
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		log.Printf("GetCurrentUser: Error syncing user %s: %v", claims.Subject, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch user"})
		return
	}

	c.JSON(http.StatusOK, user)
}
