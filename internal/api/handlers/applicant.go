// internal/api/handlers/applicant.go
package handlers

import (
	"log"
	"net/http"

	"jobboard/internal/api/middleware"
	"jobboard/internal/services"

	"github.com/gin-gonic/gin"
)

// ApplicantHandler holds dependencies for the applicant dashboard endpoints.
type ApplicantHandler struct {
	appService   services.ApplicationService
	statsService services.StatsService
}

// NewApplicantHandler creates a new ApplicantHandler.
func NewApplicantHandler(appService services.ApplicationService, statsService services.StatsService) *ApplicantHandler {
	return &ApplicantHandler{appService: appService, statsService: statsService}
}

// GetStats godoc
// @Summary      Applicant dashboard counts
// @Description  Returns the caller's submitted and in-review application counts.
// @Tags         applicant
// @Produce      json
// @Success      200 {object}  dto.ApplicantStatsResponse "Own counts"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applicant/stats [get]
// @Security     BearerAuth
func (h *ApplicantHandler) GetStats(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		log.Printf("ApplicantHandler: Error getting current user: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	stats, err := h.statsService.ApplicantStats(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("ApplicantHandler: Error fetching stats for %s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListOwnApplications godoc
// @Summary      List the caller's applications
// @Description  Returns the applicant's applications newest-first, each joined with its job.
// @Tags         applicant
// @Produce      json
// @Success      200 {array}   dto.ApplicationWithJob "Own applications"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /applicant/applications [get]
// @Security     BearerAuth
func (h *ApplicantHandler) ListOwnApplications(c *gin.Context) {
	user, err := middleware.GetCurrentUser(c)
	if err != nil {
		log.Printf("ApplicantHandler: Error getting current user: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
		return
	}

	applications, err := h.appService.ListForApplicant(c.Request.Context(), user.ID)
	if err != nil {
		log.Printf("ApplicantHandler: Error listing applications for %s: %v", user.ID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch applications"})
		return
	}
	c.JSON(http.StatusOK, applications)
}
