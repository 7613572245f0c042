package cache

import (
	"fmt"

	"github.com/cabinetry/backend/internal/domain/configuration"
	"github.com/cabinetry/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// TemplateCacheFactory creates the configured template cache
type TemplateCacheFactory struct {
	cacheConfig           config.CacheConfig
	redisConfig           config.RedisConfig
	logger                *zap.Logger
	allowInMemoryFallback bool
}

// TemplateCacheFactoryOption is a functional option for configuring the factory
type TemplateCacheFactoryOption func(*TemplateCacheFactory)

// WithLogger sets the logger for the factory and the caches it creates
func WithLogger(logger *zap.Logger) TemplateCacheFactoryOption {
	return func(f *TemplateCacheFactory) {
		f.logger = logger
	}
}

// WithInMemoryFallback controls whether an unreachable Redis degrades to the in-memory cache.
// Default is true.
func WithInMemoryFallback(allow bool) TemplateCacheFactoryOption {
	return func(f *TemplateCacheFactory) {
		f.allowInMemoryFallback = allow
	}
}

// NewTemplateCacheFactory creates a new factory
func NewTemplateCacheFactory(cacheCfg config.CacheConfig, redisCfg config.RedisConfig, opts ...TemplateCacheFactoryOption) *TemplateCacheFactory {
	f := &TemplateCacheFactory{
		cacheConfig:           cacheCfg,
		redisConfig:           redisCfg,
		logger:                zap.NewNop(),
		allowInMemoryFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Create builds the cache selected by the backend setting
func (f *TemplateCacheFactory) Create() (configuration.TemplateCache, error) {
	if f.cacheConfig.Backend != "redis" {
		f.logger.Info("using in-memory template cache")
		return NewInMemoryTemplateCache(WithInMemoryLogger(f.logger)), nil
	}

	c, err := NewRedisTemplateCache(RedisConfig{
		Addr:      f.redisConfig.Addr(),
		Password:  f.redisConfig.Password,
		DB:        f.redisConfig.DB,
		KeyPrefix: f.cacheConfig.KeyPrefix,
	}, f.logger)
	if err == nil {
		f.logger.Info("using Redis template cache", zap.String("addr", f.redisConfig.Addr()))
		return c, nil
	}

	if !f.allowInMemoryFallback {
		return nil, fmt.Errorf("redis template cache unavailable: %w", err)
	}
	f.logger.Warn("Redis unavailable, falling back to in-memory template cache. "+
		"Listings will not be shared between instances.",
		zap.Error(err),
	)
	return NewInMemoryTemplateCache(WithInMemoryLogger(f.logger)), nil
}
