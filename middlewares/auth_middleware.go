package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/exoticlanka/backoffice/utils"
)

// AuthContext is the per-request authenticated identity produced by the
// session guard. Handlers read it from the gin context instead of any
// ambient session state.
type AuthContext struct {
	UserID    uint
	Username  string
	SessionID string
}

const authContextKey = "authContext"

// SessionGuard verifies the session cookie before any protected page
// runs. Unauthenticated requests are redirected to the login page and
// do no further work.
func SessionGuard() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(utils.SessionCookie)
		if err != nil || cookie == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		claims, err := utils.ParseSessionToken(cookie)
		if err != nil {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set(authContextKey, AuthContext{
			UserID:    claims.UserID,
			Username:  claims.Username,
			SessionID: claims.ID,
		})
		c.Next()
	}
}

// GetAuthContext returns the identity set by SessionGuard.
func GetAuthContext(c *gin.Context) (AuthContext, bool) {
	v, exists := c.Get(authContextKey)
	if !exists {
		return AuthContext{}, false
	}
	auth, ok := v.(AuthContext)
	return auth, ok
}
