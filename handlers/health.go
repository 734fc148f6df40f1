package handlers

import (
	"net/http"

	"catering/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness plus the last dependency health snapshot.
func HealthHandler(c *gin.Context) {
	status := utils.GetHealthStatus()
	code := http.StatusOK
	if !status.Healthy() {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{"status": statusText(status), "services": status.Services, "checkedAt": status.CheckedAt})
}

func statusText(s utils.HealthStatus) string {
	if s.Healthy() {
		return "ok"
	}
	return "degraded"
}
