package ratelimit

import (
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_DeniesAfterLimit(t *testing.T) {
	store := NewMemoryStore(3, time.Minute)

	for i := 0; i < 3; i++ {
		allowed, err := store.Allow("10.0.0.1")
		require.NoError(t, err)
		assert.True(t, allowed, "request %d", i+1)
	}

	allowed, _ := store.Allow("10.0.0.1")
	assert.False(t, allowed)

	allowed, err := store.Allow("10.0.0.2")
	require.NoError(t, err)
	assert.True(t, allowed, "limits are per identifier")
}

func TestRedisStore_FallsBackWhenRedisIsUnreachable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client, 1, time.Minute, NewMemoryStore(1, time.Minute), nil)

	allowed, err := store.Allow("10.0.0.1")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, _ = store.Allow("10.0.0.1")
	assert.False(t, allowed)
}

func TestRedisStore_KeyChangesPerWindow(t *testing.T) {
	s := &redisStore{window: time.Minute}
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	s.now = func() time.Time { return base }
	first := s.key("ip")
	s.now = func() time.Time { return base.Add(59 * time.Second) }
	same := s.key("ip")
	s.now = func() time.Time { return base.Add(time.Minute) }
	next := s.key("ip")

	assert.Equal(t, first, same)
	assert.NotEqual(t, first, next)
	assert.Contains(t, first, "sms:ratelimit:ip:")
}
