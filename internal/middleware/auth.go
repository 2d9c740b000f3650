package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/MuhammadZainDev/VOQ-backend/internal/session"
)

// Payload is the authenticated session payload attached to the request
// context. Role reflects the user's role at session creation; it is not
// re-read from the user store per request.
type Payload struct {
	UserID string
	Role   string
}

// unexported, collision-proof context key
type payloadContextKeyType struct{}

var payloadKey = payloadContextKeyType{}

// FromContext extracts the authenticated session payload from context.
func FromContext(ctx context.Context) (Payload, bool) {
	p, ok := ctx.Value(payloadKey).(Payload)
	return p, ok
}

type AuthMiddleware struct {
	Store  session.Store
	Secret string
}

func NewAuthMiddleware(store session.Store, secret string) *AuthMiddleware {
	return &AuthMiddleware{Store: store, Secret: secret}
}

func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1. Read session cookie
		cookie, err := r.Cookie(session.CookieName)
		if err != nil || cookie.Value == "" {
			unauthorized(w)
			return
		}

		// 2. Check the cookie signature; a tampered value is no session
		sessionID, ok := session.Verify(a.Secret, cookie.Value)
		if !ok {
			unauthorized(w)
			return
		}

		// 3. Load session
		sess, err := a.Store.Get(r.Context(), sessionID)
		if err != nil || sess == nil {
			unauthorized(w)
			return
		}

		// 4. Enforce session expiry
		if time.Now().After(sess.ExpiresAt) {
			_ = a.Store.Delete(r.Context(), sessionID)
			unauthorized(w)
			return
		}

		// 5. Attach session payload to context
		ctx := context.WithValue(r.Context(), payloadKey, Payload{
			UserID: sess.UserID,
			Role:   sess.Role,
		})

		// 6. Continue request
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write([]byte(`{"msg":"Unauthorized"}`))
}
