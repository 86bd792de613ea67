package cache

import (
	appbilling "github.com/crediario/backend/internal/application/billing"
	"github.com/crediario/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// NewIdempotencyStore builds the idempotency store for the deployment:
// Redis when enabled, otherwise in-memory. A Redis connection failure falls
// back to in-memory so a missing cache never keeps the service down.
func NewIdempotencyStore(cfg config.RedisConfig, logger *zap.Logger) appbilling.IdempotencyStore {
	if !cfg.Enabled {
		return NewInMemoryIdempotencyStore()
	}

	store, err := NewRedisIdempotencyStore(cfg)
	if err != nil {
		logger.Warn("Redis unavailable, falling back to in-memory idempotency store",
			zap.String("addr", cfg.Addr()),
			zap.Error(err))
		return NewInMemoryIdempotencyStore()
	}
	return store
}
