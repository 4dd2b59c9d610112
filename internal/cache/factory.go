package cache

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/rlsh74/tnsystems-website/internal/platform/config"
)

// NewStorage builds the limiter store selected by RATE_LIMIT_STORE.
func NewStorage(cfg *config.Config) (fiber.Storage, error) {
	switch cfg.RateLimit.Store {
	case config.StoreMemory, "":
		return NewMemoryStorage(time.Minute), nil
	case config.StoreRedis:
		return NewRedisStorage(RedisOptions{
			Address:  cfg.Redis.Address,
			Password: cfg.Redis.Password,
			Database: cfg.Redis.Database,
			PoolSize: cfg.Redis.PoolSize,
			Prefix:   cfg.Redis.Prefix,
		})
	default:
		return nil, fmt.Errorf("unsupported rate limit store: %s", cfg.RateLimit.Store)
	}
}
