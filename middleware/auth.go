package middleware

import (
	"strings"

	"catering/models"
	"catering/services/auth"
	"catering/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by AuthMiddleware.
const (
	ContextUserID  = "userID"
	ContextSession = "session"
	ContextToken   = "token"
)

// BearerToken extracts the token of an "Authorization: Bearer" header.
func BearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

// AuthMiddleware rejects requests without a live session token.
func AuthMiddleware(authSvc auth.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := BearerToken(c)
		if token == "" {
			utils.JSONError(c, utils.AuthError("authenticate", "Missing or invalid Authorization header", nil), nil)
			c.Abort()
			return
		}

		session, err := authSvc.GetSession(c.Request.Context(), token)
		if err != nil {
			utils.JSONError(c, err, nil)
			c.Abort()
			return
		}

		c.Set(ContextUserID, session.User.ID)
		c.Set(ContextSession, session)
		c.Set(ContextToken, token)
		c.Next()
	}
}

// SessionFrom returns the session AuthMiddleware stored, if any.
func SessionFrom(c *gin.Context) (*models.Session, bool) {
	v, ok := c.Get(ContextSession)
	if !ok {
		return nil, false
	}
	s, ok := v.(*models.Session)
	return s, ok
}
