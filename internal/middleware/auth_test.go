package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhammadZainDev/VOQ-backend/internal/session"
)

const testSecret = "test-secret"

func newGuardTest(t *testing.T) (*AuthMiddleware, session.Store, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := session.NewRedisStore(rdb)

	return NewAuthMiddleware(store, testSecret), store, func() {
		_ = rdb.Close()
		mr.Close()
	}
}

func protectedHandler(captured *Payload) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		p, ok := FromContext(r.Context())
		if ok && captured != nil {
			*captured = p
		}
		w.WriteHeader(http.StatusOK)
	})
}

func doRequest(guard *AuthMiddleware, captured *Payload, cookie *http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	guard.RequireAuth(protectedHandler(captured)).ServeHTTP(rec, req)
	return rec
}

func TestRequireAuthRejectsMissingCookie(t *testing.T) {
	guard, _, done := newGuardTest(t)
	defer done()

	rec := doRequest(guard, nil, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"msg":"Unauthorized"}`, rec.Body.String())
}

func TestRequireAuthRejectsUnsignedCookie(t *testing.T) {
	guard, store, done := newGuardTest(t)
	defer done()

	now := time.Now()
	require.NoError(t, store.Create(context.Background(), session.Session{
		SessionID: "sid-1",
		UserID:    "u-1",
		Role:      "USER",
		CreatedAt: now,
		ExpiresAt: now.Add(session.TTL),
	}))

	// Raw session ID without a valid signature must not authenticate.
	rec := doRequest(guard, nil, &http.Cookie{Name: session.CookieName, Value: "sid-1"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(guard, nil, &http.Cookie{
		Name:  session.CookieName,
		Value: session.Sign("wrong-secret", "sid-1"),
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthRejectsUnknownSession(t *testing.T) {
	guard, _, done := newGuardTest(t)
	defer done()

	rec := doRequest(guard, nil, &http.Cookie{
		Name:  session.CookieName,
		Value: session.Sign(testSecret, "never-created"),
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireAuthPassesPayloadThrough(t *testing.T) {
	guard, store, done := newGuardTest(t)
	defer done()

	now := time.Now()
	require.NoError(t, store.Create(context.Background(), session.Session{
		SessionID: "sid-1",
		UserID:    "u-1",
		Role:      "ADMIN",
		CreatedAt: now,
		ExpiresAt: now.Add(session.TTL),
	}))

	var p Payload
	rec := doRequest(guard, &p, &http.Cookie{
		Name:  session.CookieName,
		Value: session.Sign(testSecret, "sid-1"),
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u-1", p.UserID)
	assert.Equal(t, "ADMIN", p.Role)
}

func TestRequireAuthDeletesExpiredSession(t *testing.T) {
	guard, store, done := newGuardTest(t)
	defer done()
	ctx := context.Background()

	// The redis TTL normally reaps expired sessions; the guard still
	// checks ExpiresAt itself in case the record lingers.
	now := time.Now()
	require.NoError(t, store.Create(ctx, session.Session{
		SessionID: "sid-1",
		UserID:    "u-1",
		Role:      "USER",
		CreatedAt: now.Add(-6 * time.Hour),
		ExpiresAt: now.Add(time.Second),
	}))

	time.Sleep(1100 * time.Millisecond)

	rec := doRequest(guard, nil, &http.Cookie{
		Name:  session.CookieName,
		Value: session.Sign(testSecret, "sid-1"),
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
