package handlers

import (
	"net/http"
	"time"

	"catering/services/calendar"
	"catering/utils"

	"github.com/gin-gonic/gin"
)

type CalendarHandler struct {
	Calendar calendar.CalendarService
	Location *time.Location
	Now      func() time.Time
}

func NewCalendarHandler(svc calendar.CalendarService, loc *time.Location) *CalendarHandler {
	if loc == nil {
		loc = time.Local
	}
	return &CalendarHandler{Calendar: svc, Location: loc, Now: time.Now}
}

// MonthHandler handles GET /api/calendar?year&month; both default to the current month.
func (h *CalendarHandler) MonthHandler(c *gin.Context) {
	const op = "getCalendar"
	now := h.Now().In(h.Location)
	year, err := intQuery(c, op, "year", now.Year())
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	month, err := intQuery(c, op, "month", int(now.Month()))
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}

	cal, err := h.Calendar.Month(c.Request.Context(), year, time.Month(month))
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	utils.JSONOK(c, http.StatusOK, cal)
}

func (h *CalendarHandler) UpcomingHandler(c *gin.Context) {
	dates, err := h.Calendar.UpcomingDates(c.Request.Context())
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	utils.JSONOK(c, http.StatusOK, dates)
}
