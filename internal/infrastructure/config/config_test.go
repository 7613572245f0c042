package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestLoad(t *testing.T) {
	t.Run("loads default values when env vars not set", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "cabinet-backend", cfg.App.Name)
		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, "postgres", cfg.Database.Driver)
		assert.Equal(t, "localhost", cfg.Database.Host)
		assert.Equal(t, 5432, cfg.Database.Port)
		assert.Equal(t, "cabinetry", cfg.Database.DBName)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 5, cfg.Database.MaxIdleConns)
		assert.Equal(t, "memory", cfg.Cache.Backend)
		assert.Equal(t, 5*time.Minute, cfg.Cache.TemplateTTL)
		assert.Equal(t, "AUD", cfg.Pricing.Currency)
		assert.Equal(t, int32(2), cfg.Pricing.DisplayPlaces)
		assert.Equal(t, "cabinet-backend", cfg.Telemetry.ServiceName)
		assert.Equal(t, 1.0, cfg.Telemetry.SamplingRatio)
		assert.Equal(t, time.Minute, cfg.Telemetry.MetricsInterval)
		assert.False(t, cfg.Telemetry.Exporting())
	})

	t.Run("loads values from environment variables with CAB prefix", func(t *testing.T) {
		t.Setenv("CAB_APP_NAME", "test-app")
		t.Setenv("CAB_APP_PORT", "9000")
		t.Setenv("CAB_DATABASE_HOST", "testdb.local")
		t.Setenv("CAB_DATABASE_PORT", "5433")
		t.Setenv("CAB_DATABASE_MAX_OPEN_CONNS", "50")
		t.Setenv("CAB_DATABASE_MAX_IDLE_CONNS", "10")
		t.Setenv("CAB_CACHE_BACKEND", "redis")
		t.Setenv("CAB_CACHE_TEMPLATE_TTL", "90s")
		t.Setenv("CAB_PRICING_CURRENCY", "NZD")
		t.Setenv("CAB_PRICING_DISPLAY_PLACES", "3")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "test-app", cfg.App.Name)
		assert.Equal(t, "9000", cfg.App.Port)
		assert.Equal(t, "testdb.local", cfg.Database.Host)
		assert.Equal(t, 5433, cfg.Database.Port)
		assert.Equal(t, 50, cfg.Database.MaxOpenConns)
		assert.Equal(t, 10, cfg.Database.MaxIdleConns)
		assert.Equal(t, "redis", cfg.Cache.Backend)
		assert.Equal(t, 90*time.Second, cfg.Cache.TemplateTTL)
		assert.Equal(t, "NZD", cfg.Pricing.Currency)
		assert.Equal(t, int32(3), cfg.Pricing.DisplayPlaces)
	})

	t.Run("validates MaxIdleConns cannot exceed MaxOpenConns", func(t *testing.T) {
		t.Setenv("CAB_DATABASE_MAX_OPEN_CONNS", "10")
		t.Setenv("CAB_DATABASE_MAX_IDLE_CONNS", "20")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed")
	})

	t.Run("validates MaxIdleConns cannot be negative", func(t *testing.T) {
		t.Setenv("CAB_DATABASE_MAX_IDLE_CONNS", "-1")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "max_idle_conns cannot be negative")
	})

	tests := []struct {
		name string
		key  string
		val  string
		msg  string
	}{
		{"unknown driver", "CAB_DATABASE_DRIVER", "mysql", "database.driver"},
		{"unknown cache backend", "CAB_CACHE_BACKEND", "memcached", "cache.backend"},
		{"negative template ttl", "CAB_CACHE_TEMPLATE_TTL", "-1m", "cache.template_ttl"},
		{"too many display places", "CAB_PRICING_DISPLAY_PLACES", "9", "pricing.display_places"},
		{"malformed currency", "CAB_PRICING_CURRENCY", "DOLLARS", "pricing.currency"},
		{"sampling ratio above one", "CAB_TELEMETRY_SAMPLING_RATIO", "1.5", "telemetry.sampling_ratio"},
	}
	for _, tt := range tests {
		t.Run("rejects "+tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoad_ProductionValidation(t *testing.T) {
	setValidProductionBase := func(t *testing.T) {
		t.Setenv("CAB_APP_ENV", "production")
		t.Setenv("CAB_DATABASE_PASSWORD", "secure-password")
		t.Setenv("CAB_DATABASE_SSLMODE", "require")
	}

	t.Run("passes validation with valid production config", func(t *testing.T) {
		setValidProductionBase(t)
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "production", cfg.App.Env)
	})

	t.Run("requires database.password in production", func(t *testing.T) {
		setValidProductionBase(t)
		t.Setenv("CAB_DATABASE_PASSWORD", "")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.password is required in production")
	})

	t.Run("requires SSL enabled in production", func(t *testing.T) {
		setValidProductionBase(t)
		t.Setenv("CAB_DATABASE_SSLMODE", "disable")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database.sslmode cannot be 'disable' in production")
	})

	t.Run("rejects sqlite in production", func(t *testing.T) {
		setValidProductionBase(t)
		t.Setenv("CAB_DATABASE_DRIVER", "sqlite")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "sqlite is not supported in production")
	})
}

func TestDatabaseConfig_DSN(t *testing.T) {
	t.Run("generates valid postgres DSN", func(t *testing.T) {
		cfg := DatabaseConfig{
			Driver:   "postgres",
			Host:     "localhost",
			Port:     5432,
			User:     "testuser",
			Password: "testpass",
			DBName:   "testdb",
			SSLMode:  "disable",
		}

		dsn := cfg.DSN()
		assert.Contains(t, dsn, "localhost:5432")
		assert.Contains(t, dsn, "testuser")
		assert.Contains(t, dsn, "testdb")
		assert.Contains(t, dsn, "sslmode=disable")
	})

	t.Run("escapes special characters in password", func(t *testing.T) {
		cfg := DatabaseConfig{Driver: "postgres", Host: "localhost", Port: 5432, User: "user", Password: "pass@word#123", DBName: "db", SSLMode: "disable"}
		assert.Contains(t, cfg.DSN(), "pass%40word%23123")
	})

	t.Run("sqlite uses the file path", func(t *testing.T) {
		cfg := DatabaseConfig{Driver: "sqlite", Path: "/tmp/cab.db"}
		assert.Equal(t, "/tmp/cab.db", cfg.DSN())
	})
}

func TestPricingConfig_LanguageTag(t *testing.T) {
	p := PricingConfig{Locale: "en-NZ"}
	assert.Equal(t, language.MustParse("en-NZ"), p.LanguageTag())

	p.Locale = "!!"
	assert.Equal(t, language.MustParse("en-AU"), p.LanguageTag())
}

func TestRedisConfig_Addr(t *testing.T) {
	r := RedisConfig{Host: "cache", Port: 6380}
	assert.Equal(t, "cache:6380", r.Addr())
}

func TestTelemetryConfig_Exporting(t *testing.T) {
	tc := TelemetryConfig{Enabled: true}
	assert.False(t, tc.Exporting(), "no endpoint")

	tc.CollectorEndpoint = "otel-collector:4317"
	assert.True(t, tc.Exporting())

	tc.Enabled = false
	assert.False(t, tc.Exporting(), "nothing switched on")

	tc.LogsEnabled = true
	assert.True(t, tc.Exporting())
}
