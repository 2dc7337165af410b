package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionCookieName is the cookie carrying the session id.
const SessionCookieName = "session_id"

// MustLogInMessage is the body error for missing or invalid sessions.
const MustLogInMessage = "You must be logged in"

const contextKeyOwnerID = "owner_id"

// OwnerIDFromContext returns the current user ID set by RequireSession. uuid.Nil if not set.
func OwnerIDFromContext(c *gin.Context) uuid.UUID {
	v, ok := c.Get(contextKeyOwnerID)
	if !ok {
		return uuid.Nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return uuid.Nil
	}
	return id
}

// RequireSession returns a middleware that checks for a valid session cookie
// and sets the current user ID in context. If missing or invalid, responds with 401.
func RequireSession(sessions *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := c.Cookie(SessionCookieName)
		if err != nil || sessionID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": MustLogInMessage})
			return
		}
		userID, ok := sessions.GetUserID(c.Request.Context(), sessionID)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": MustLogInMessage})
			return
		}
		c.Set(contextKeyOwnerID, userID)
		c.Next()
	}
}

// SetSessionCookie writes the httpOnly session cookie.
func SetSessionCookie(c *gin.Context, sessionID string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, sessionID, maxAge, "/", "", secure, true)
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}
