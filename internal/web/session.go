package web

import (
	"github.com/gin-gonic/gin"

	"trayafront/internal/session"
)

const (
	sessionCookieName = "trayafront_session"
	sessionCookieAge  = 24 * 60 * 60 // seconds
	ctxKeySessionID   = "session_id"
)

// ensureSession resolves the visitor's chat session from the cookie,
// creating a fresh session (and rewriting the cookie) when the cookie is
// missing or refers to an evicted session.
func ensureSession(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, _ := c.Cookie(sessionCookieName)
		sess := store.GetOrCreate(id)
		if sess.ID != id {
			c.SetCookie(sessionCookieName, sess.ID, sessionCookieAge, "/", "", false, true)
		}
		c.Set(ctxKeySessionID, sess.ID)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(ctxKeySessionID)
}
