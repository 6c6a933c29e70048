package middleware

import (
	"net/http"

	"doenerkiosk/internal/auth"

	"github.com/gin-gonic/gin"
)

// AdminRequired validates the session cookie once per request and attaches
// the admin role to the context. Unauthenticated callers are redirected to
// the login page instead of seeing the admin operation.
func AdminRequired(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.SessionCookie)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/admin")
			c.Abort()
			return
		}

		role, err := auth.ValidateSessionToken(secret, token)
		if err != nil {
			c.Redirect(http.StatusSeeOther, "/admin")
			c.Abort()
			return
		}

		c.Set("adminRole", role)
		c.Next()
	}
}
