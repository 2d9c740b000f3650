package session

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRedisStoreTest(t *testing.T) (*RedisStore, *miniredis.Miniredis, func()) {
	t.Helper()

	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis start: %v", err)
	}

	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStore(rdb)

	return store, mr, func() {
		_ = rdb.Close()
		mr.Close()
	}
}

func testSession(id string) Session {
	now := time.Now()
	return Session{
		SessionID: id,
		UserID:    "u-1",
		Role:      "USER",
		CreatedAt: now,
		ExpiresAt: now.Add(TTL),
	}
}

func TestRedisStoreCreateAndGet(t *testing.T) {
	store, _, done := newRedisStoreTest(t)
	defer done()
	ctx := context.Background()

	sess := testSession("sid-1")
	require.NoError(t, store.Create(ctx, sess))

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "sid-1", got.SessionID)
	assert.Equal(t, "u-1", got.UserID)
	assert.Equal(t, "USER", got.Role)
	assert.WithinDuration(t, sess.ExpiresAt, got.ExpiresAt, time.Second)
}

func TestRedisStoreGetMissingReturnsNil(t *testing.T) {
	store, _, done := newRedisStoreTest(t)
	defer done()

	got, err := store.Get(context.Background(), "no-such-session")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStoreCreateRejectsIncomplete(t *testing.T) {
	store, _, done := newRedisStoreTest(t)
	defer done()
	ctx := context.Background()

	sess := testSession("sid-1")
	sess.UserID = ""
	assert.Error(t, store.Create(ctx, sess))

	expired := testSession("sid-2")
	expired.ExpiresAt = time.Now().Add(-time.Minute)
	assert.Error(t, store.Create(ctx, expired))
}

func TestRedisStoreDeleteIsIdempotent(t *testing.T) {
	store, _, done := newRedisStoreTest(t)
	defer done()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, testSession("sid-1")))
	require.NoError(t, store.Delete(ctx, "sid-1"))
	require.NoError(t, store.Delete(ctx, "sid-1"))

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestRedisStoreExpiryHandledByStore(t *testing.T) {
	store, mr, done := newRedisStoreTest(t)
	defer done()
	ctx := context.Background()

	require.NoError(t, store.Create(ctx, testSession("sid-1")))

	mr.FastForward(TTL + time.Minute)

	got, err := store.Get(ctx, "sid-1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
