// Package ratelimit provides the stores behind the global request throttle.
package ratelimit

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"sms/config"
	"sms/internal/domain/lifecycle"
	"sms/internal/errors"

	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	keyPrefix        = "sms:ratelimit"
	redisCallTimeout = 200 * time.Millisecond
	memoryExpiresIn  = 3 * time.Minute
)

// Params defines the parameters required for the rate limit store
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New returns the store used by the rate limiter middleware, or nil when throttling is disabled.
// With a Redis address the counters are shared across instances; otherwise they live in memory.
func New(params Params) middleware.RateLimiterStore {
	cfg := params.Config.RateLimit
	if cfg == nil || !cfg.Enabled {
		return nil
	}

	memory := NewMemoryStore(cfg.RequestsPerWindow, cfg.Window)
	if cfg.Redis.Addr == "" {
		return memory
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			// An unreachable Redis degrades to per-instance limits instead of blocking startup.
			if err := client.Ping(ctx).Err(); err != nil {
				params.Logger.WarnContext(ctx, "Redis ping failed, rate limiting falls back to memory",
					slog.String("addr", cfg.Redis.Addr), slog.Any("error", err))
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return NewRedisStore(client, cfg.RequestsPerWindow, cfg.Window, memory, params.Logger)
}

// NewMemoryStore builds echo's token bucket store sized to allow limit requests per window.
func NewMemoryStore(limit int, window time.Duration) middleware.RateLimiterStore {
	return middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(limit) / window.Seconds()),
		Burst:     limit,
		ExpiresIn: memoryExpiresIn,
	})
}

// redisStore is a fixed-window counter: one key per identifier and window, INCR + EXPIRE.
type redisStore struct {
	client   redis.Cmdable
	limit    int64
	window   time.Duration
	fallback middleware.RateLimiterStore
	logger   *slog.Logger
	now      func() time.Time
}

// NewRedisStore creates a Redis backed store. Calls that fail are answered by fallback.
func NewRedisStore(client redis.Cmdable, limit int, window time.Duration, fallback middleware.RateLimiterStore, logger *slog.Logger) middleware.RateLimiterStore {
	return &redisStore{
		client:   client,
		limit:    int64(limit),
		window:   window,
		fallback: fallback,
		logger:   logger,
		now:      time.Now,
	}
}

// Allow implements middleware.RateLimiterStore.
func (s *redisStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), redisCallTimeout)
	defer cancel()

	count, err := s.increment(ctx, s.key(identifier))
	if err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "Redis rate limit check failed", slog.Any("error", err))
		}

		return s.fallback.Allow(identifier)
	}

	return count <= s.limit, nil
}

func (s *redisStore) key(identifier string) string {
	bucket := s.now().UnixNano() / s.window.Nanoseconds()

	return fmt.Sprintf("%s:%s:%d", keyPrefix, identifier, bucket)
}

func (s *redisStore) increment(ctx context.Context, key string) (int64, error) {
	pipe := s.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, s.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, errors.Wrap(err, "failed to increment rate limit counter")
	}

	return incr.Val(), nil
}
