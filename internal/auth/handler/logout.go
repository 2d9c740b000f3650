package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/MuhammadZainDev/VOQ-backend/internal/logger"
	"github.com/MuhammadZainDev/VOQ-backend/internal/session"
)

func (h *Handler) Logout(c *gin.Context) {

	// Destroy whatever session the cookie names. A missing or already
	// destroyed session is not an error here.
	cookie, err := c.Request.Cookie(session.CookieName)
	if err == nil && cookie.Value != "" {
		if sessionID, ok := session.Verify(h.cookieSecret, cookie.Value); ok {
			if err := h.sessionStore.Delete(c.Request.Context(), sessionID); err != nil {
				logger.Error("session delete failed", map[string]any{"error": err.Error()})
				c.JSON(http.StatusInternalServerError, gin.H{"msg": "Logout failed"})
				return
			}
		}
	}

	session.ClearCookie(c.Writer, session.CookieOptions{
		Path:     "/",
		Secure:   h.secureCookies,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	c.JSON(http.StatusOK, gin.H{"msg": "Logged out successfully"})
}
