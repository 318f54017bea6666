// internal/api/handlers/recruiter.go
package handlers

import (
	"log"
	"net/http"

	"jobboard/internal/api/middleware"
	"jobboard/internal/services"

	"github.com/gin-gonic/gin"
)

// RecruiterHandler holds dependencies for the recruiter dashboard endpoints.
type RecruiterHandler struct {
	jobService   services.JobService
	statsService services.StatsService
}

// NewRecruiterHandler creates a new RecruiterHandler.
func NewRecruiterHandler(jobService services.JobService, statsService services.StatsService) *RecruiterHandler {
	return &RecruiterHandler{jobService: jobService, statsService: statsService}
}

// GetStats godoc
// @Summary      Recruiter dashboard counts
// @Description  Returns the caller's job count and active application count.
// @Tags         recruiter
// @Produce      json
// @Success      200 {object}  dto.RecruiterStatsResponse "Own counts"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /recruiter/stats [get]
// @Security     BearerAuth
func (h *RecruiterHandler) GetStats(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		log.Printf("RecruiterHandler: Error getting current user: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	stats, err := h.statsService.RecruiterStats(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("RecruiterHandler: Error fetching stats for %s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListOwnJobs godoc
// @Summary      List the caller's jobs
// @Description  Returns every job the recruiter owns, active or not, newest-first.
// @Tags         recruiter
// @Produce      json
// @Success      200 {array}   models.Job "Own jobs"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /recruiter/jobs [get]
// @Security     BearerAuth
func (h *RecruiterHandler) ListOwnJobs(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		log.Printf("RecruiterHandler: Error getting current user: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	jobs, err := h.jobService.ListJobsByRecruiter(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("RecruiterHandler: Error listing jobs for %s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch jobs"})
		return
	}
	c.JSON(http.StatusOK, jobs)
}
