package cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
)

const (
	cacheLogPrefix = "cache"
	keyPrefix      = "frilo:"
)

var (
	ErrNotFound = errors.New("cache key not found")
)

// Store is a key value store with per-key expiry
type Store interface {
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Get(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error
	// Incr increments a counter and sets its expiry when it is created
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
	Ping(ctx context.Context) error
	Close() error
}

type redisStore struct {
	client *redis.Client
}

// NewRedisStore connects to the redis server of a redis:// url
func NewRedisStore(url string) (Store, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return NewRedisStoreWithClient(redis.NewClient(opts)), nil
}

func NewRedisStoreWithClient(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (r *redisStore) Set(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, keyPrefix+key, value, ttl).Err()
}

func (r *redisStore) Get(ctx context.Context, key string) (string, error) {
	v, err := r.client.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}
	return v, nil
}

func (r *redisStore) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, keyPrefix+key).Err()
}

func (r *redisStore) Incr(ctx context.Context, key string, ttl time.Duration) (int64, error) {
	k := keyPrefix + key

	n, err := r.client.Incr(ctx, k).Result()
	if err != nil {
		log.WithField("prefix", cacheLogPrefix).WithError(err).WithField("key", key).Error("fail to increment counter")
		return 0, err
	}

	if n == 1 {
		if err := r.client.Expire(ctx, k, ttl).Err(); err != nil {
			return 0, err
		}
	}
	return n, nil
}

func (r *redisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *redisStore) Close() error {
	return r.client.Close()
}
