package persistence

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/maid-cafe-service/internal/config"
)

// ErrRedisDisabled is returned by Ping on a nil *Redis.
var ErrRedisDisabled = errors.New("redis disabled")

// Redis is an optional dependency reported by the health endpoints. Nothing
// reads or writes keys; the client only answers PING.
type Redis struct {
	client *redis.Client
}

// NewRedis builds a client for cfg. It returns nil when no address is configured.
// An unreachable server is logged at startup and surfaces later through Ping.
func NewRedis(ctx context.Context, cfg config.RedisConfig, logger *zap.Logger) *Redis {
	if cfg.Addr == "" {
		logger.Info("REDIS_ADDR not set; redis disabled")
		return nil
	}

	timeout := cfg.Timeout()
	r := &Redis{
		client: redis.NewClient(&redis.Options{
			Addr:         cfg.Addr,
			Password:     cfg.Password,
			DB:           cfg.DB,
			DialTimeout:  timeout,
			ReadTimeout:  timeout,
			WriteTimeout: timeout,
			PoolSize:     2,
			MaxRetries:   -1,
		}),
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := r.Ping(pingCtx); err != nil {
		logger.Warn("redis unreachable; readiness will report it", zap.String("addr", cfg.Addr), zap.Error(err))
	} else {
		logger.Info("redis reachable", zap.String("addr", cfg.Addr))
	}
	return r
}

// Ping checks connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	if r == nil {
		return ErrRedisDisabled
	}
	return r.client.Ping(ctx).Err()
}

// Close releases the client. Safe on nil.
func (r *Redis) Close() {
	if r != nil {
		_ = r.client.Close()
	}
}
