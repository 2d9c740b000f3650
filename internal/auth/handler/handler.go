package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/MuhammadZainDev/VOQ-backend/internal/auth"
	"github.com/MuhammadZainDev/VOQ-backend/internal/middleware"
	"github.com/MuhammadZainDev/VOQ-backend/internal/session"
	"github.com/MuhammadZainDev/VOQ-backend/internal/user"
)

type Handler struct {
	service      *auth.Service
	users        user.Store
	sessionStore session.Store

	cookieSecret  string
	secureCookies bool
}

func NewHandler(
	service *auth.Service,
	users user.Store,
	sessionStore session.Store,
	cookieSecret string,
	secureCookies bool,
) *Handler {
	return &Handler{
		service:       service,
		users:         users,
		sessionStore:  sessionStore,
		cookieSecret:  cookieSecret,
		secureCookies: secureCookies,
	}
}

// RegisterRoutes mounts the public auth routes and the guarded routes.
// Logout stays public: it is idempotent and destroys whatever session the
// cookie names, valid or not.
func (h *Handler) RegisterRoutes(r *gin.Engine, guard *middleware.AuthMiddleware) {
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.POST("/logout", h.Logout)

	protected := r.Group("/")
	protected.Use(middleware.GinRequireAuth(guard))

	protected.GET("/current-user", h.CurrentUser)
	protected.GET("/user/dashboard", h.UserDashboard)
	protected.GET("/admin/dashboard", h.AdminDashboard)
}

// startSession persists a new session for u and sets the signed cookie.
// The response must not be written until the store acknowledges the write.
func (h *Handler) startSession(c *gin.Context, u *user.User) error {
	sessionID, err := session.GenerateID()
	if err != nil {
		return err
	}

	now := time.Now()
	expiresAt := now.Add(session.TTL)

	err = h.sessionStore.Create(c.Request.Context(), session.Session{
		SessionID: sessionID,
		UserID:    u.ID,
		Role:      string(u.Role),
		CreatedAt: now,
		ExpiresAt: expiresAt,
	})
	if err != nil {
		return err
	}

	session.SetCookie(
		c.Writer,
		session.Sign(h.cookieSecret, sessionID),
		expiresAt,
		session.CookieOptions{
			Secure:   h.secureCookies,
			SameSite: http.SameSiteLaxMode,
		},
	)

	return nil
}
