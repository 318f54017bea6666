// internal/api/handlers/profile.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"jobboard/internal/api/middleware"
	"jobboard/internal/services"
	"jobboard/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// ProfileHandler holds dependencies for the self-service profile endpoint.
type ProfileHandler struct {
	service   services.UserService
	validator *validator.Validate
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(service services.UserService, validate *validator.Validate) *ProfileHandler {
	return &ProfileHandler{service: service, validator: validate}
}

// UpdateProfile godoc
// @Summary      Update own profile
// @Description  Merges the supplied profile fields into the caller's row. Role and approval state are not accepted here.
// @Tags         profile
// @Accept       json
// @Produce      json
// @Param        profile body dto.UpdateProfileRequest true "Profile fields to update"
// @Success      200 {object}  models.User "Updated profile"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      404 {object}  map[string]string "User Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /profile [put]
// @Security     BearerAuth
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	claims, err := middleware.GetSessionClaims(c)
	if err != nil {
		log.Printf("UpdateProfile: Error getting session claims: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation error",
			"errors":  FormatValidationErrors(err.(validator.ValidationErrors)),
		})
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), claims.Subject, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Printf("UpdateProfile: Error updating profile for %s: %v", claims.Subject, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, user)
}
