package grpc

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type FetchFunc[T any] func(ctx context.Context) (T, error)

const (
	defaultFetchTimeout = 5 * time.Second
	defaultSetTimeout   = 2 * time.Second

	maxTTLJitter    = 15 * time.Second
	maxRefreshDelay = 500 * time.Millisecond
)

// addTTLJitter spreads expirations by up to ±maxTTLJitter, never below half the ttl.
func addTTLJitter(ttl time.Duration) time.Duration {
	if ttl <= 0 {
		return ttl
	}
	jitter := time.Duration(rand.Int64N(int64(2*maxTTLJitter))) - maxTTLJitter
	if out := ttl + jitter; out >= ttl/2 {
		return out
	}
	return ttl / 2
}

func storeValue(c Cacher, key string, value any, ttl time.Duration, logger *zap.Logger, reason string) {
	ctx, cancel := context.WithTimeout(context.Background(), defaultSetTimeout)
	defer cancel()

	ttl = addTTLJitter(ttl)
	if err := c.Set(ctx, key, value, ttl); err != nil {
		logger.Warn("cache set failed",
			zap.String("key", key),
			zap.String("reason", reason),
			zap.Error(err))
		return
	}
	logger.Debug("cache stored",
		zap.String("key", key),
		zap.String("reason", reason),
		zap.Duration("ttl", ttl))
}

// triggerBackgroundRefresh re-fetches key after a hit so hot entries never expire under load.
func triggerBackgroundRefresh[T any](
	c Cacher,
	sf *singleflight.Group,
	key string,
	ttl time.Duration,
	logger *zap.Logger,
	fn FetchFunc[T],
) {
	go func() {
		time.Sleep(rand.N(maxRefreshDelay))

		_, _, _ = sf.Do(key+":refresh", func() (any, error) {
			ctx, cancel := context.WithTimeout(context.Background(), defaultFetchTimeout)
			defer cancel()

			value, err := fn(ctx)
			if err != nil {
				logger.Warn("background refresh failed", zap.String("key", key), zap.Error(err))
				return nil, err
			}
			storeValue(c, key, value, ttl, logger, "refresh")
			return value, nil
		})
	}()
}

// FindAndCache reads key through the cache. Misses are fetched once per key
// across concurrent callers and stored asynchronously; hits schedule a refresh.
// Cache errors are treated as misses.
func FindAndCache[T any](
	ctx context.Context,
	c Cacher,
	sf *singleflight.Group,
	key string,
	ttl time.Duration,
	logger *zap.Logger,
	fn FetchFunc[T],
) (T, error) {
	var zero T
	if logger == nil {
		logger = zap.NewNop()
	}

	var cached T
	err := c.Get(ctx, key, &cached)
	switch {
	case err == nil:
		logger.Debug("cache hit", zap.String("key", key))
		triggerBackgroundRefresh(c, sf, key, ttl, logger, fn)
		return cached, nil
	case errors.Is(err, redis.Nil):
		logger.Debug("cache miss", zap.String("key", key))
	default:
		logger.Warn("cache get error (treating as miss)", zap.String("key", key), zap.Error(err))
	}

	v, err, shared := sf.Do(key, func() (any, error) {
		value, err := fn(ctx)
		if err != nil {
			return nil, err
		}
		go storeValue(c, key, value, ttl, logger, "miss")
		return value, nil
	})
	if err != nil {
		logger.Debug("fetch failed", zap.String("key", key), zap.Error(err))
		return zero, err
	}

	value, ok := v.(T)
	if !ok {
		logger.Error("singleflight type mismatch", zap.String("key", key))
		return zero, fmt.Errorf("type mismatch for key %q", key)
	}
	if shared {
		logger.Debug("singleflight shared result", zap.String("key", key))
	}
	return value, nil
}
