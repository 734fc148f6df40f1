package handlers

import (
	"net/http"
	"time"

	"catering/services/online"
	"catering/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OnlineHandler serves the staged online submissions.
type OnlineHandler struct {
	Online online.OnlineService
	Now    func() time.Time
}

func NewOnlineHandler(svc online.OnlineService) *OnlineHandler {
	return &OnlineHandler{Online: svc, Now: time.Now}
}

func (h *OnlineHandler) ListHandler(c *gin.Context) {
	rows, err := h.Online.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	utils.JSONOK(c, http.StatusOK, rows)
}

// PromoteHandler moves a staged submission into the official table.
func (h *OnlineHandler) PromoteHandler(c *gin.Context) {
	id, err := idParam(c, "promoteReservation")
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	res, err := h.Online.PromoteByID(c.Request.Context(), id)
	if err != nil {
		if res != nil {
			// the official row exists but the staged row could not be removed
			utils.JSONError(c, err, res)
			return
		}
		utils.JSONError(c, err, nil)
		return
	}
	getLogger(c).Info("Online reservation accepted", zap.Int64("stagedId", id), zap.Int64("id", res.ID))
	utils.JSONOK(c, http.StatusOK, res)
}

// RejectHandler deletes one staged submission.
func (h *OnlineHandler) RejectHandler(c *gin.Context) {
	id, err := idParam(c, "deleteOnlineReservation")
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	if err := h.Online.Reject(c.Request.Context(), id); err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	utils.JSONOK(c, http.StatusOK, nil)
}

// PurgeHandler drops lapsed submissions and returns the remaining ones.
func (h *OnlineHandler) PurgeHandler(c *gin.Context) {
	remaining, err := h.Online.PurgeExpired(c.Request.Context(), h.Now())
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	utils.JSONOK(c, http.StatusOK, remaining)
}
