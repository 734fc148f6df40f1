package handlers

import (
	"net/http"
	"time"

	"catering/services/dashboard"
	"catering/utils"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	Dashboard dashboard.DashboardService
	Now       func() time.Time
}

func NewDashboardHandler(svc dashboard.DashboardService) *DashboardHandler {
	return &DashboardHandler{Dashboard: svc, Now: time.Now}
}

// SummaryHandler returns the current month's cards and the six-month trend.
func (h *DashboardHandler) SummaryHandler(c *gin.Context) {
	data, err := h.Dashboard.Summary(c.Request.Context(), h.Now())
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	utils.JSONOK(c, http.StatusOK, data)
}
