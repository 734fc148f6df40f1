package handlers

import (
	"net/http"

	"catering/middleware"
	"catering/services/account"
	"catering/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AccountHandler serves the signed-in user's credentials.
type AccountHandler struct {
	Account account.AccountService
}

func NewAccountHandler(svc account.AccountService) *AccountHandler {
	return &AccountHandler{Account: svc}
}

type updateFieldRequest struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// GetHandler returns the credentials. On a provider failure the defaults are
// still sent with success false.
func (h *AccountHandler) GetHandler(c *gin.Context) {
	creds, err := h.Account.GetCredentials(c.Request.Context(), c.GetString(middleware.ContextUserID))
	if err != nil {
		utils.JSONError(c, err, creds)
		return
	}
	utils.JSONOK(c, http.StatusOK, creds)
}

// UpdateHandler changes one credential field.
func (h *AccountHandler) UpdateHandler(c *gin.Context) {
	var req updateFieldRequest
	if err := bindJSON(c, "updateUserCredentials", &req); err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	creds, err := h.Account.UpdateField(c.Request.Context(), c.GetString(middleware.ContextUserID), req.Field, req.Value)
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	getLogger(c).Info("Account updated", zap.String("field", req.Field))
	utils.JSONOK(c, http.StatusOK, creds)
}
