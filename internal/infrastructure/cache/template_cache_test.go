package cache

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/cabinetry/backend/internal/domain/catalog"
	"github.com/cabinetry/backend/internal/domain/configuration"
	"github.com/cabinetry/backend/internal/infrastructure/config"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestTemplate(t *testing.T, typeID uuid.UUID, userID *uuid.UUID, name string) configuration.ConfigurationTemplate {
	t.Helper()
	ct := &catalog.CabinetType{
		ID:    typeID,
		Name:  "Wall 450",
		Width: catalog.DimensionRange{Default: decimal.NewFromInt(450)},
	}
	tmpl, err := configuration.NewTemplate(userID, name, "desc", false, configuration.NewDefault(ct))
	require.NoError(t, err)
	return *tmpl
}

func TestInMemoryTemplateCache_GetSet(t *testing.T) {
	cache := NewInMemoryTemplateCache()
	defer cache.Close()
	ctx := context.Background()
	typeID, user := uuid.New(), uuid.New()

	_, ok, err := cache.Get(ctx, typeID, &user)
	require.NoError(t, err)
	assert.False(t, ok)

	listing := []configuration.ConfigurationTemplate{createTestTemplate(t, typeID, &user, "Mine")}
	require.NoError(t, cache.Set(ctx, typeID, &user, listing, time.Minute))

	got, ok, err := cache.Get(ctx, typeID, &user)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got, 1)
	assert.Equal(t, "Mine", got[0].Name)

	t.Run("scopes are separate", func(t *testing.T) {
		_, ok, err := cache.Get(ctx, typeID, nil)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		got[0].Name = "changed"
		again, _, _ := cache.Get(ctx, typeID, &user)
		assert.Equal(t, "Mine", again[0].Name)
	})

	t.Run("empty listing is a hit", func(t *testing.T) {
		other := uuid.New()
		require.NoError(t, cache.Set(ctx, other, nil, nil, time.Minute))
		got, ok, err := cache.Get(ctx, other, nil)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, got)
	})

	hits, misses := cache.GetStats()
	assert.Positive(t, hits)
	assert.Positive(t, misses)
}

func TestInMemoryTemplateCache_Expiry(t *testing.T) {
	cache := NewInMemoryTemplateCache()
	defer cache.Close()
	ctx := context.Background()
	typeID := uuid.New()

	require.NoError(t, cache.Set(ctx, typeID, nil, []configuration.ConfigurationTemplate{
		createTestTemplate(t, typeID, nil, "Global"),
	}, time.Millisecond))
	time.Sleep(5 * time.Millisecond)

	_, ok, err := cache.Get(ctx, typeID, nil)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 0, cache.Count())
}

func TestInMemoryTemplateCache_InvalidateCabinetType(t *testing.T) {
	cache := NewInMemoryTemplateCache()
	defer cache.Close()
	ctx := context.Background()
	typeID, otherType, user := uuid.New(), uuid.New(), uuid.New()

	require.NoError(t, cache.Set(ctx, typeID, nil, nil, time.Minute))
	require.NoError(t, cache.Set(ctx, typeID, &user, nil, time.Minute))
	require.NoError(t, cache.Set(ctx, otherType, nil, nil, time.Minute))

	require.NoError(t, cache.InvalidateCabinetType(ctx, typeID))

	_, ok, _ := cache.Get(ctx, typeID, nil)
	assert.False(t, ok)
	_, ok, _ = cache.Get(ctx, typeID, &user)
	assert.False(t, ok)
	_, ok, _ = cache.Get(ctx, otherType, nil)
	assert.True(t, ok)
}

func TestInMemoryTemplateCache_Concurrent(t *testing.T) {
	cache := NewInMemoryTemplateCache()
	defer cache.Close()
	ctx := context.Background()
	typeID := uuid.New()
	listing := []configuration.ConfigurationTemplate{createTestTemplate(t, typeID, nil, "Shared")}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			switch i % 3 {
			case 0:
				_ = cache.Set(ctx, typeID, nil, listing, time.Minute)
			case 1:
				_, _, _ = cache.Get(ctx, typeID, nil)
			default:
				_ = cache.InvalidateCabinetType(ctx, typeID)
			}
		}(i)
	}
	wg.Wait()
}

func TestInMemoryTemplateCache_CloseTwice(t *testing.T) {
	cache := NewInMemoryTemplateCache()
	assert.NoError(t, cache.Close())
	assert.NoError(t, cache.Close())
}

func TestTemplateCodec(t *testing.T) {
	typeID, user := uuid.New(), uuid.New()
	listing := []configuration.ConfigurationTemplate{
		createTestTemplate(t, typeID, &user, "Mine"),
		createTestTemplate(t, typeID, nil, "Global"),
	}

	data, err := encodeTemplates(listing)
	require.NoError(t, err)

	decoded, err := decodeTemplates(data)
	require.NoError(t, err)
	require.Len(t, decoded, 2)
	assert.Equal(t, listing[0].ID, decoded[0].ID)
	assert.Equal(t, &user, decoded[0].UserID)
	assert.True(t, decoded[1].IsGlobal())
	require.NotNil(t, decoded[1].Configuration())
	assert.True(t, decoded[1].Configuration().Width.Equal(decimal.NewFromInt(450)))

	_, err = decodeTemplates([]byte("{"))
	assert.Error(t, err)
}

func TestScopeKey(t *testing.T) {
	typeID, user := uuid.New(), uuid.New()
	assert.Equal(t, typeID.String()+":global", scopeKey(typeID, nil))
	assert.Equal(t, typeID.String()+":"+user.String(), scopeKey(typeID, &user))

	c := NewRedisTemplateCacheWithClient(nil, "", nil)
	assert.Equal(t, DefaultKeyPrefix+typeID.String()+":global", c.listingKey(typeID, nil))
	assert.Equal(t, DefaultKeyPrefix+"idx:"+typeID.String(), c.indexKey(typeID))
}

func TestTemplateCacheFactory(t *testing.T) {
	unreachable := config.RedisConfig{Host: "127.0.0.1", Port: 1}

	t.Run("memory backend", func(t *testing.T) {
		c, err := NewTemplateCacheFactory(config.CacheConfig{Backend: "memory"}, unreachable).Create()
		require.NoError(t, err)
		defer c.Close()
		assert.IsType(t, &InMemoryTemplateCache{}, c)
	})

	t.Run("redis unreachable falls back", func(t *testing.T) {
		c, err := NewTemplateCacheFactory(config.CacheConfig{Backend: "redis"}, unreachable).Create()
		require.NoError(t, err)
		defer c.Close()
		assert.IsType(t, &InMemoryTemplateCache{}, c)
	})

	t.Run("redis required", func(t *testing.T) {
		_, err := NewTemplateCacheFactory(config.CacheConfig{Backend: "redis"}, unreachable,
			WithInMemoryFallback(false)).Create()
		assert.Error(t, err)
	})
}
