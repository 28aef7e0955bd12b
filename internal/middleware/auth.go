package middleware

import (
	"net/http"

	"estoque/internal/session"

	"github.com/gin-gonic/gin"
)

const UserIDKey = "user_id"

// RequireSession gates every business route behind a valid session. An
// unauthenticated request is redirected to the login entry point instead of
// erroring, matching the form-driven flow.
func RequireSession(sessions *session.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := sessions.ReadToken(c.Request)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		userID, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			sessions.ClearCookie(c.Writer)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// CurrentUserID retrieves the authenticated user from the Gin context.
// Zero means the route was not gated by RequireSession.
func CurrentUserID(c *gin.Context) uint {
	id, _ := c.Get(UserIDKey)
	uid, _ := id.(uint)
	return uid
}
