package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const guestSessionLifetime = 24 * time.Hour

// POST /api/auth/guest
// Issues a session id for an anonymous menu visitor. The id keys that
// visitor's cart; persisted carts expire with the session.
func CreateGuestSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := uuid.NewString()
		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"expires_at": time.Now().Add(guestSessionLifetime),
		})
	}
}
