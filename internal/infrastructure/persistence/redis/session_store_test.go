package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blueprint-ai-api/internal/domain/entity"
)

func newTestStore(t *testing.T, ttl time.Duration) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	client := NewClientFromRedis(rdb)
	return NewSessionStore(client, "blueprint:session", ttl), mr
}

func TestRedisSessionStoreGetMissing(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)

	session, err := store.Get(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestRedisSessionStoreRoundTrip(t *testing.T) {
	store, _ := newTestStore(t, time.Hour)
	ctx := context.Background()

	s := entity.NewDesignSession("s1")
	s.Append(entity.DesignVersion{
		Version:      1,
		Feedback:     entity.FeedbackInitialGeneration,
		ChangesMade:  []string{entity.ChangeInitialCreation},
		CurrentFloor: 1,
	})
	s.SetCurrentFloor(1)
	require.NoError(t, store.Save(ctx, s))

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "s1", got.ID)
	require.Len(t, got.Versions, 1)
	assert.Equal(t, entity.FeedbackInitialGeneration, got.Versions[0].Feedback)
	assert.Equal(t, 1, got.CurrentFloor)
}

func TestRedisSessionStoreKeyAndTTL(t *testing.T) {
	store, mr := newTestStore(t, time.Hour)
	ctx := context.Background()

	s := entity.NewDesignSession("s1")
	require.NoError(t, store.Save(ctx, s))

	key := "blueprint:session:s1"
	assert.True(t, mr.Exists(key))
	ttl := mr.TTL(key)
	assert.Greater(t, ttl, time.Duration(0))
	assert.LessOrEqual(t, ttl, time.Hour)
}

func TestRedisSessionStoreExpiry(t *testing.T) {
	store, mr := newTestStore(t, time.Minute)
	ctx := context.Background()

	s := entity.NewDesignSession("s1")
	require.NoError(t, store.Save(ctx, s))

	mr.FastForward(2 * time.Minute)

	got, err := store.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Nil(t, got)
}
