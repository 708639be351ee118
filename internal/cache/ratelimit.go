package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/rs/zerolog"
)

// LoginLimiter is a fixed-window counter backed by Redis, keyed by caller
// identity (client IP). It fails open: when Redis is not configured or
// unreachable, login attempts are allowed rather than locking everyone out.
type LoginLimiter struct {
	rdb    *redis.Client
	limit  int
	window time.Duration
	log    zerolog.Logger
}

func NewLoginLimiter(rdb *redis.Client, limit int, window time.Duration, log zerolog.Logger) *LoginLimiter {
	if limit <= 0 {
		limit = 10
	}
	if window <= 0 {
		window = time.Minute
	}
	return &LoginLimiter{rdb: rdb, limit: limit, window: window, log: log}
}

func (l *LoginLimiter) Allow(ctx context.Context, key string) bool {
	if l == nil || l.rdb == nil {
		return true
	}

	k := "login_attempts:" + key
	count, err := l.rdb.Incr(ctx, k).Result()
	if err != nil {
		l.log.Warn().Err(err).Msg("login limiter unavailable, failing open")
		return true
	}
	if count == 1 {
		l.rdb.Expire(ctx, k, l.window)
	}

	return count <= int64(l.limit)
}
