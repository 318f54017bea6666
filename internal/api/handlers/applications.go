// internal/api/handlers/applications.go
package handlers

import (
	"errors"
	"io"
	"log"
	"net/http"

	"jobboard/internal/api/middleware"
	"jobboard/internal/services"
	"jobboard/internal/transport/dto"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// ApplicationHandler holds dependencies for application operations.
type ApplicationHandler struct {
	service     services.ApplicationService
	userService services.UserService
	validator   *validator.Validate
}

// NewApplicationHandler creates a new ApplicationHandler.
func NewApplicationHandler(service services.ApplicationService, userService services.UserService, validate *validator.Validate) *ApplicationHandler {
	return &ApplicationHandler{service: service, userService: userService, validator: validate}
}

// Apply godoc
// @Summary      Apply to a job
// @Description  Submits an application with the resume currently on the caller's profile. One application per job per applicant.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Param        application body dto.ApplyRequest false "Optional cover letter"
// @Success      200 {object}  models.Application "Application submitted"
// @Failure      400 {object}  map[string]string "Bad Request - Already applied or missing resume"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id}/apply [post]
// @Security     BearerAuth
func (h *ApplicationHandler) Apply(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		log.Printf("Apply: Error getting current user: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		return
	}

	// Body is optional; an absent body just means no cover letter.
	var req dto.ApplyRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}

	application, err := h.service.Apply(c.Request.Context(), jobID, user.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		} else if errors.Is(err, services.ErrConflict) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "You have already applied to this job"})
		} else if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Please upload your resume in your profile before applying"})
		} else {
			log.Printf("Apply: Error submitting application for job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to submit application"})
		}
		return
	}

	c.JSON(http.StatusOK, application)
}

// GetApplication godoc
// @Summary      Get an application by ID
// @Description  Applicants see their own applications, recruiters those on their own jobs, superadmins all of them.
// @Tags         applications
// @Produce      json
// @Param        id path      string true  "Application ID" Format(uuid)
// @Success      200 {object}  models.Application "Application"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      404 {object}  map[string]string "Application Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications/{id} [get]
// @Security     BearerAuth
func (h *ApplicationHandler) GetApplication(c *gin.Context) {
	claims, err := middleware.GetSessionClaims(c)
	if err != nil {
		log.Printf("GetApplication: Error getting session claims: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
		return
	}

	caller, err := h.userService.GetUser(c.Request.Context(), claims.Subject)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		log.Printf("GetApplication: Error loading caller %s: %v", claims.Subject, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch application"})
		return
	}

	application, err := h.service.GetApplication(c.Request.Context(), applicationID, caller)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
		} else {
			log.Printf("GetApplication: Error fetching application %s: %v", applicationID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch application"})
		}
		return
	}

	c.JSON(http.StatusOK, application)
}

// ListJobApplications godoc
// @Summary      List applications for a job
// @Description  Returns a job's applications newest-first. Owner only.
// @Tags         applications
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Success      200 {array}   models.Application "Applications"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not the owner"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id}/applications [get]
// @Security     BearerAuth
func (h *ApplicationHandler) ListJobApplications(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		log.Printf("ListJobApplications: Error getting current user: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		return
	}

	applications, err := h.service.ListForJob(c.Request.Context(), jobID, user.ID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden: Not your job"})
		} else {
			log.Printf("ListJobApplications: Error listing applications for job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch applications"})
		}
		return
	}

	c.JSON(http.StatusOK, applications)
}

// UpdateStatus godoc
// @Summary      Update application status
// @Description  Sets a new status on the application. Only the recruiter owning the parent job may do this.
// @Tags         applications
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Application ID" Format(uuid)
// @Param        status body dto.UpdateApplicationStatusRequest true "New status"
// @Success      200 {object}  models.Application "Updated application"
// @Failure      400 {object}  map[string]string "Bad Request - Missing or invalid status"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not the owner"
// @Failure      404 {object}  map[string]string "Application Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applications/{id}/status [put]
// @Security     BearerAuth
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		log.Printf("UpdateStatus: Error getting current user: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Status is required"})
		return
	}
	if err := h.validator.Struct(req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": "Validation error",
			"errors":  FormatValidationErrors(err.(validator.ValidationErrors)),
		})
		return
	}

	application, err := h.service.UpdateStatus(c.Request.Context(), applicationID, user.ID, req.Status)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Application not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden: Not your job"})
		} else if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		} else {
			log.Printf("UpdateStatus: Error updating application %s: %v", applicationID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update application status"})
		}
		return
	}

	c.JSON(http.StatusOK, application)
}
