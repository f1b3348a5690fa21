// Package lock provides the per-car mutex taken around booking creation.
// The database row lock and exclusion constraint remain authoritative; this
// layer only keeps competing requests from piling up on the same row.
package lock

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v8"
	"go.uber.org/zap"
)

type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

type RedisLocker struct {
	rs  *redsync.Redsync
	ttl time.Duration
	log *zap.Logger
}

func NewRedisClient(url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	return redis.NewClient(opts), nil
}

func NewRedisLocker(client *redis.Client, ttl time.Duration, log *zap.Logger) *RedisLocker {
	return &RedisLocker{
		rs:  redsync.New(goredis.NewPool(client)),
		ttl: ttl,
		log: log,
	}
}

func (l *RedisLocker) Lock(ctx context.Context, key string) (func(), error) {
	mutex := l.rs.NewMutex(
		"javadrive:lock:"+key,
		redsync.WithExpiry(l.ttl),
		redsync.WithTries(32),
		redsync.WithRetryDelay(100*time.Millisecond),
	)

	if err := mutex.LockContext(ctx); err != nil {
		return nil, err
	}

	return func() {
		// Unlock must outlive a cancelled request context.
		unlockCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		if _, err := mutex.UnlockContext(unlockCtx); err != nil {
			l.log.Warn("booking lock release failed", zap.String("key", key), zap.Error(err))
		}
	}, nil
}

// Noop is used when no Redis is configured.
type Noop struct{}

func (Noop) Lock(context.Context, string) (func(), error) {
	return func() {}, nil
}

var (
	_ Locker = (*RedisLocker)(nil)
	_ Locker = Noop{}
)
