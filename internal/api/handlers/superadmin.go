// internal/api/handlers/superadmin.go
package handlers

import (
	"errors"
	"log"
	"net/http"

	"jobboard/internal/services"

	"github.com/gin-gonic/gin"
)

// SuperadminHandler holds dependencies for the superadmin console endpoints.
type SuperadminHandler struct {
	userService  services.UserService
	statsService services.StatsService
}

// NewSuperadminHandler creates a new SuperadminHandler.
func NewSuperadminHandler(userService services.UserService, statsService services.StatsService) *SuperadminHandler {
	return &SuperadminHandler{userService: userService, statsService: statsService}
}

// GetStats godoc
// @Summary      Platform-wide counts
// @Description  Returns recruiter, pending-recruiter, active-job and applicant totals.
// @Tags         superadmin
// @Produce      json
// @Success      200 {object}  dto.SuperadminStatsResponse "Aggregate counts"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /superadmin/stats [get]
// @Security     BearerAuth
func (h *SuperadminHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.SuperadminStats(c.Request.Context())
	if err != nil {
		log.Printf("SuperadminHandler: Error fetching stats: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// ListPendingRecruiters godoc
// @Summary      List unapproved recruiters
// @Description  Returns recruiter accounts awaiting approval, newest-first.
// @Tags         superadmin
// @Produce      json
// @Success      200 {array}   models.User "Pending recruiters"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /superadmin/pending-recruiters [get]
// @Security     BearerAuth
func (h *SuperadminHandler) ListPendingRecruiters(c *gin.Context) {
	recruiters, err := h.userService.ListPendingRecruiters(c.Request.Context())
	if err != nil {
		log.Printf("SuperadminHandler: Error listing pending recruiters: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch pending recruiters"})
		return
	}
	c.JSON(http.StatusOK, recruiters)
}

// ApproveRecruiter godoc
// @Summary      Approve a recruiter
// @Description  Sets the approval flag on the recruiter account. Idempotent.
// @Tags         superadmin
// @Produce      json
// @Param        id path      string true  "User ID"
// @Success      200 {object}  map[string]string "Recruiter approved"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      404 {object}  map[string]string "User Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /superadmin/approve-recruiter/{id} [post]
// @Security     BearerAuth
func (h *SuperadminHandler) ApproveRecruiter(c *gin.Context) {
	id := c.Param("id")

	if err := h.userService.ApproveRecruiter(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Printf("SuperadminHandler: Error approving recruiter %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to approve recruiter"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recruiter approved successfully"})
}

// RejectRecruiter godoc
// @Summary      Reject a recruiter
// @Description  Permanently deletes the recruiter account. Their jobs and the jobs' applications go with it.
// @Tags         superadmin
// @Produce      json
// @Param        id path      string true  "User ID"
// @Success      200 {object}  map[string]string "Recruiter rejected"
// @Failure      401 {object}  map[string]string "Unauthorized"
// @Failure      403 {object}  map[string]string "Forbidden"
// @Failure      404 {object}  map[string]string "User Not Found"
// @Failure      500 {object}  map[string]string "Internal Server Error"
// @Router       /superadmin/reject-recruiter/{id} [post]
// @Security     BearerAuth
func (h *SuperadminHandler) RejectRecruiter(c *gin.Context) {
	id := c.Param("id")

	if err := h.userService.RejectRecruiter(c.Request.Context(), id); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
			return
		}
		log.Printf("SuperadminHandler: Error rejecting recruiter %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to reject recruiter"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Recruiter rejected successfully"})
}
