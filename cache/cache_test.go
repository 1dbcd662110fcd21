package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
)

func newTestStore(t *testing.T) (Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	return NewRedisStoreWithClient(redis.NewClient(&redis.Options{Addr: mr.Addr()})), mr
}

func TestSetGet(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	assert.NoError(t, s.Set(ctx, "otp:+100", "123456", time.Minute))

	v, err := s.Get(ctx, "otp:+100")
	assert.NoError(t, err)
	assert.Equal(t, "123456", v)
}

func TestGetMissingKey(t *testing.T) {
	s, _ := newTestStore(t)

	_, err := s.Get(context.Background(), "nothing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestExpiry(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	assert.NoError(t, s.Set(ctx, "k", "v", time.Minute))
	mr.FastForward(2 * time.Minute)

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	s, _ := newTestStore(t)
	ctx := context.Background()

	assert.NoError(t, s.Set(ctx, "k", "v", time.Minute))
	assert.NoError(t, s.Delete(ctx, "k"))

	_, err := s.Get(ctx, "k")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestIncrSetsTTLOnFirstIncrement(t *testing.T) {
	s, mr := newTestStore(t)
	ctx := context.Background()

	n, err := s.Incr(ctx, "attempts", time.Minute)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)

	mr.FastForward(30 * time.Second)
	n, err = s.Incr(ctx, "attempts", time.Minute)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), n)

	// the second increment does not extend the window
	mr.FastForward(31 * time.Second)
	n, err = s.Incr(ctx, "attempts", time.Minute)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestKeysArePrefixed(t *testing.T) {
	s, mr := newTestStore(t)

	assert.NoError(t, s.Set(context.Background(), "k", "v", time.Minute))
	assert.True(t, mr.Exists("frilo:k"))
}
