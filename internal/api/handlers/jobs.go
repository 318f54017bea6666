// internal/api/handlers/jobs.go
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
	"github.com/google/uuid"
)

// JobHandler holds dependencies for job operations.
type JobHandler struct {
	service   services.JobService
	validator *validator.Validate
}

// NewJobHandler creates a new JobHandler.
func NewJobHandler(service services.JobService, validate *validator.Validate) *JobHandler {
	return &JobHandler{service: service, validator: validate}
}

// ListJobs godoc
// @Summary      List active jobs
// @Description  Public board listing. Only active jobs, newest-first.
// @Tags         jobs
// @Produce      json
// @Success      200 {array}   models.Job "Active jobs"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	jobs, err := h.service.ListActiveJobs(c.Request.Context())
	if err != nil {
		log.Printf("ListJobs: Error listing active jobs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch jobs"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}

// GetJob godoc
// @Summary      Get a job by ID
// @Description  Public job detail. When the request carries a session, the response includes whether that user has applied.
// @Tags         jobs
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Success      200 {object}  dto.JobDetailResponse "Job with hasApplied flag"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		return
	}

	detail, err := h.service.GetJob(c.Request.Context(), jobID, middleware.SessionUserID(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
			return
		}
		log.Printf("GetJob: Error fetching job %s: %v", jobID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch job"})
		return
	}

	c.JSON(http.StatusOK, detail)
}

// CreateJob godoc
// @Summary      Create a job posting
// @Description  Adds a posting owned by the authenticated recruiter. Requires an approved recruiter account.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job body      dto.CreateJobRequest true  "Job details"
// @Success      200 {object}  models.Job "Job created"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Recruiter not approved"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs [post]
// @Security     BearerAuth
func (h *JobHandler) CreateJob(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		log.Printf("CreateJob: Error getting current user: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	var req dto.CreateJobRequest
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

	job, err := h.service.CreateJob(c.Request.Context(), user, &req)
	if err != nil {
		if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden: Recruiter account pending approval"})
			return
		}
		log.Printf("CreateJob: Error creating job for recruiter %s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create job"})
		return
	}

	c.JSON(http.StatusOK, job)
}

// UpdateJob godoc
// @Summary      Update a job posting
// @Description  Merges the supplied fields into the job. Owner only.
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Param        job body      dto.UpdateJobRequest true "Fields to update"
// @Success      200 {object}  models.Job "Updated job"
// @Failure      400 {object}  map[string]string "Bad Request - Invalid input"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not the owner"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id} [put]
// @Security     BearerAuth
func (h *JobHandler) UpdateJob(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		log.Printf("UpdateJob: Error getting current user: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		return
	}

	var req dto.UpdateJobRequest
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

	job, err := h.service.UpdateJob(c.Request.Context(), jobID, user.ID, &req)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden: Not your job"})
		} else {
			log.Printf("UpdateJob: Error updating job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update job"})
		}
		return
	}

	c.JSON(http.StatusOK, job)
}

// DeleteJob godoc
// @Summary      Delete a job posting
// @Description  Removes the job and, via cascade, its applications. Owner only.
// @Tags         jobs
// @Produce      json
// @Param        id path      string true  "Job ID" Format(uuid)
// @Success      200 {object}  map[string]string "Job deleted"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden - Not the owner"
// @Failure      404 {object}  map[string]string "Job Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /jobs/{id} [delete]
// @Security     BearerAuth
func (h *JobHandler) DeleteJob(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		log.Printf("DeleteJob: Error getting current user: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		return
	}

	if err := h.service.DeleteJob(c.Request.Context(), jobID, user.ID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Job not found"})
		} else if errors.Is(err, services.ErrForbidden) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden: Not your job"})
		} else {
			log.Printf("DeleteJob: Error deleting job %s: %v", jobID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete job"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}
