package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/user/reelfind/internal/auth"
	"github.com/user/reelfind/internal/utils"
)

const (
	// TokenCookie carries the session token. It is HTTP-only, so page
	// scripts never see it.
	TokenCookie = "token"

	ctxUserIDKey = "user_id"
	ctxEmailKey  = "email"
	ctxNameKey   = "name"
)

// RequireAuth rejects requests without a valid session. Expired and
// invalid tokens are treated identically. Browser navigations are
// redirected to the sign-in page with the requested path preserved as
// the post-login redirect target; API requests get a 401.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := auth.CurrentSession(extractToken(c), secret)
		if session == nil {
			if strings.Contains(c.GetHeader("Accept"), "text/html") {
				c.Redirect(http.StatusFound, "/auth/signin?redirect="+url.QueryEscape(c.Request.URL.Path))
				c.Abort()
				return
			}
			utils.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, session.User.ID)
		c.Set(ctxEmailKey, session.User.Email)
		c.Set(ctxNameKey, session.User.Name)
		c.Next()
	}
}

// OptionalAuth attaches identity when a valid session is present and
// lets the request through either way.
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if session := auth.CurrentSession(extractToken(c), secret); session != nil {
			c.Set(ctxUserIDKey, session.User.ID)
			c.Set(ctxEmailKey, session.User.Email)
			c.Set(ctxNameKey, session.User.Name)
		}
		c.Next()
	}
}

// extractToken reads the session token from the cookie, falling back to
// a bearer header for non-browser clients.
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(TokenCookie); err == nil {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// GetUserID returns the signed-in user id, or "" when anonymous.
func GetUserID(c *gin.Context) string {
	if userID, exists := c.Get(ctxUserIDKey); exists {
		return userID.(string)
	}
	return ""
}
