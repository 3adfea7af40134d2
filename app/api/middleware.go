package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/zamwe/zamwe-web/app/session"
)

const (
	sessionCookie = "zamwe_session"
	sessionKey    = "session"
)

// sessionMiddleware attaches the visitor's session, creating one when needed.
// The cookie is re-issued on every request so its expiry slides with the
// session's idle timeout.
func sessionMiddleware(store *session.Store, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, _ := c.Cookie(sessionCookie)

		sess, _ := store.Open(cookie)
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookie, sess.ID.String(), int(ttl.Seconds()), "/", "", false, true)

		c.Set(sessionKey, sess)
		c.Next()
	}
}

func currentSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}
