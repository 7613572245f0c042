package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cabinetry/backend/internal/domain/configuration"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RedisTemplateCache implements configuration.TemplateCache on Redis so replicas share listings.
// Each cabinet type keeps a set of its listing keys, used for invalidation.
type RedisTemplateCache struct {
	client    *redis.Client
	keyPrefix string
	logger    *zap.Logger
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// NewRedisTemplateCache connects to Redis and verifies the connection
func NewRedisTemplateCache(cfg RedisConfig, logger *zap.Logger) (*RedisTemplateCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisTemplateCacheWithClient(client, cfg.KeyPrefix, logger), nil
}

// NewRedisTemplateCacheWithClient wraps an existing client
func NewRedisTemplateCacheWithClient(client *redis.Client, keyPrefix string, logger *zap.Logger) *RedisTemplateCache {
	if keyPrefix == "" {
		keyPrefix = DefaultKeyPrefix
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisTemplateCache{client: client, keyPrefix: keyPrefix, logger: logger}
}

func (c *RedisTemplateCache) listingKey(cabinetTypeID uuid.UUID, userID *uuid.UUID) string {
	return c.keyPrefix + scopeKey(cabinetTypeID, userID)
}

func (c *RedisTemplateCache) indexKey(cabinetTypeID uuid.UUID) string {
	return c.keyPrefix + "idx:" + cabinetTypeID.String()
}

// Get reads a listing. An undecodable payload is dropped and reported as a miss.
func (c *RedisTemplateCache) Get(ctx context.Context, cabinetTypeID uuid.UUID, userID *uuid.UUID) ([]configuration.ConfigurationTemplate, bool, error) {
	key := c.listingKey(cabinetTypeID, userID)
	data, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read template cache: %w", err)
	}

	templates, err := decodeTemplates(data)
	if err != nil {
		c.logger.Warn("Dropping undecodable template listing", zap.String("key", key), zap.Error(err))
		_ = c.client.Del(ctx, key).Err()
		return nil, false, nil
	}
	return templates, true, nil
}

// Set writes a listing and registers it under the cabinet type's index
func (c *RedisTemplateCache) Set(ctx context.Context, cabinetTypeID uuid.UUID, userID *uuid.UUID, templates []configuration.ConfigurationTemplate, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTemplateTTL
	}
	data, err := encodeTemplates(templates)
	if err != nil {
		return err
	}

	key := c.listingKey(cabinetTypeID, userID)
	idx := c.indexKey(cabinetTypeID)
	_, err = c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, data, ttl)
		pipe.SAdd(ctx, idx, key)
		pipe.Expire(ctx, idx, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to write template cache: %w", err)
	}
	return nil
}

// InvalidateCabinetType deletes every listing registered for the cabinet type
func (c *RedisTemplateCache) InvalidateCabinetType(ctx context.Context, cabinetTypeID uuid.UUID) error {
	idx := c.indexKey(cabinetTypeID)
	keys, err := c.client.SMembers(ctx, idx).Result()
	if err != nil {
		return fmt.Errorf("failed to read template index: %w", err)
	}
	keys = append(keys, idx)
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to invalidate template cache: %w", err)
	}
	c.logger.Debug("Invalidated template listings",
		zap.String("cabinet_type_id", cabinetTypeID.String()),
		zap.Int("keys", len(keys)-1))
	return nil
}

// PingContext reports whether Redis is reachable
func (c *RedisTemplateCache) PingContext(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis client
func (c *RedisTemplateCache) Close() error {
	return c.client.Close()
}

var _ configuration.TemplateCache = (*RedisTemplateCache)(nil)
