package handlers

import (
	"net/http"

	"catering/middleware"
	"catering/services/auth"
	"catering/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler serves sign-in, sign-out and session lookup.
type AuthHandler struct {
	Auth auth.AuthService
}

func NewAuthHandler(svc auth.AuthService) *AuthHandler {
	return &AuthHandler{Auth: svc}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginHandler exchanges email and password for a session token.
func (h *AuthHandler) LoginHandler(c *gin.Context) {
	var req loginRequest
	if err := bindJSON(c, "signIn", &req); err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	session, err := h.Auth.SignInWithPassword(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	getLogger(c).Info("Login succeeded", zap.String("userId", session.User.ID))
	utils.JSONOK(c, http.StatusOK, session)
}

// LogoutHandler revokes the presented token.
func (h *AuthHandler) LogoutHandler(c *gin.Context) {
	if err := h.Auth.SignOut(c.Request.Context(), middleware.BearerToken(c)); err != nil {
		utils.JSONError(c, err, nil)
		return
	}
	utils.JSONOK(c, http.StatusOK, nil)
}

// SessionHandler returns the session the auth middleware resolved.
func (h *AuthHandler) SessionHandler(c *gin.Context) {
	session, ok := middleware.SessionFrom(c)
	if !ok {
		utils.JSONError(c, utils.AuthError("getSession", "not signed in", nil), nil)
		return
	}
	utils.JSONOK(c, http.StatusOK, session)
}
