package cache

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cabinetry/backend/internal/domain/configuration"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultCleanupInterval = 30 * time.Second

// InMemoryTemplateCache implements configuration.TemplateCache in process memory.
// Suitable for a single instance; state is not shared across replicas.
type InMemoryTemplateCache struct {
	entries sync.Map // map[string]*cacheEntry
	logger  *zap.Logger
	stopCh  chan struct{}
	stopped int32

	hits   int64
	misses int64
}

type cacheEntry struct {
	templates []configuration.ConfigurationTemplate
	expiresAt time.Time
}

func (e *cacheEntry) isExpired() bool {
	return time.Now().After(e.expiresAt)
}

// InMemoryTemplateCacheOption is a functional option for configuring the cache
type InMemoryTemplateCacheOption func(*InMemoryTemplateCache)

// WithInMemoryLogger sets the logger for the cache
func WithInMemoryLogger(logger *zap.Logger) InMemoryTemplateCacheOption {
	return func(c *InMemoryTemplateCache) {
		c.logger = logger
	}
}

// NewInMemoryTemplateCache creates the cache and starts its expiry sweeper; Close stops it
func NewInMemoryTemplateCache(opts ...InMemoryTemplateCacheOption) *InMemoryTemplateCache {
	c := &InMemoryTemplateCache{
		logger: zap.NewNop(),
		stopCh: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(c)
	}
	go c.cleanupExpired()
	return c
}

// Get returns a copy of the cached listing
func (c *InMemoryTemplateCache) Get(_ context.Context, cabinetTypeID uuid.UUID, userID *uuid.UUID) ([]configuration.ConfigurationTemplate, bool, error) {
	key := scopeKey(cabinetTypeID, userID)
	if value, ok := c.entries.Load(key); ok {
		entry := value.(*cacheEntry)
		if !entry.isExpired() {
			atomic.AddInt64(&c.hits, 1)
			return copyTemplates(entry.templates), true, nil
		}
		c.entries.Delete(key)
	}
	atomic.AddInt64(&c.misses, 1)
	c.logger.Debug("Template cache miss", zap.String("key", key))
	return nil, false, nil
}

// Set stores a copy of the listing
func (c *InMemoryTemplateCache) Set(_ context.Context, cabinetTypeID uuid.UUID, userID *uuid.UUID, templates []configuration.ConfigurationTemplate, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = DefaultTemplateTTL
	}
	c.entries.Store(scopeKey(cabinetTypeID, userID), &cacheEntry{
		templates: copyTemplates(templates),
		expiresAt: time.Now().Add(ttl),
	})
	return nil
}

// InvalidateCabinetType drops every scope cached for the cabinet type
func (c *InMemoryTemplateCache) InvalidateCabinetType(_ context.Context, cabinetTypeID uuid.UUID) error {
	prefix := cabinetTypeID.String() + ":"
	removed := 0
	c.entries.Range(func(key, _ any) bool {
		if strings.HasPrefix(key.(string), prefix) {
			c.entries.Delete(key)
			removed++
		}
		return true
	})
	c.logger.Debug("Invalidated template listings",
		zap.String("cabinet_type_id", cabinetTypeID.String()),
		zap.Int("removed", removed))
	return nil
}

// Close stops the background sweeper; safe to call more than once
func (c *InMemoryTemplateCache) Close() error {
	if atomic.CompareAndSwapInt32(&c.stopped, 0, 1) {
		close(c.stopCh)
	}
	return nil
}

// GetStats returns hit and miss counts
func (c *InMemoryTemplateCache) GetStats() (hits, misses int64) {
	return atomic.LoadInt64(&c.hits), atomic.LoadInt64(&c.misses)
}

// Count returns the number of cached listings, expired ones included until swept
func (c *InMemoryTemplateCache) Count() int {
	n := 0
	c.entries.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}

func (c *InMemoryTemplateCache) cleanupExpired() {
	ticker := time.NewTicker(defaultCleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.doCleanup()
		}
	}
}

func (c *InMemoryTemplateCache) doCleanup() {
	removed := 0
	c.entries.Range(func(key, value any) bool {
		if value.(*cacheEntry).isExpired() {
			c.entries.Delete(key)
			removed++
		}
		return true
	})
	if removed > 0 {
		c.logger.Debug("Cleaned up expired template listings", zap.Int("removed", removed))
	}
}

var _ configuration.TemplateCache = (*InMemoryTemplateCache)(nil)
