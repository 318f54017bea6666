package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthCheck is the liveness probe for load balancers and uptime monitors.
//
// @Summary      Health check
// @Description  Reports whether the API is up
// @Tags         Health
// @Produce      json
// @Success      200 {object} map[string]string "Service is up"
// @Router       /health [get]
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "jobboard-api",
	})
}
