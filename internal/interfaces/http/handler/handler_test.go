package handler

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cabinetry/backend/internal/application/configurator"
	"github.com/cabinetry/backend/internal/infrastructure/cache"
	"github.com/cabinetry/backend/internal/infrastructure/config"
	"github.com/cabinetry/backend/internal/infrastructure/persistence"
	"github.com/cabinetry/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
	middleware.SetupValidator()
}

// testEnv is a service backed by in-memory sqlite and an in-memory template cache
type testEnv struct {
	db      *persistence.Database
	service *configurator.Service
	router  *gin.Engine
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := persistence.NewDatabase(&config.DatabaseConfig{
		Driver:       "sqlite",
		Path:         ":memory:",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}, "silent", zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())

	templateCache := cache.NewInMemoryTemplateCache()
	t.Cleanup(func() {
		_ = templateCache.Close()
		_ = db.Close()
	})

	svc := configurator.NewService(
		persistence.NewGormSettingRepository(db.DB),
		persistence.NewGormTemplateRepository(db.DB),
		templateCache,
		time.Minute,
		configurator.DefaultDisplayConfig(),
		zap.NewNop(),
	)

	router := gin.New()
	router.Use(middleware.RequestID())
	return &testEnv{db: db, service: svc, router: router}
}

func (e *testEnv) do(method, path string, body any, headers ...string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// envelope is the decoded response shape
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *struct {
		Code      string `json:"code"`
		Message   string `json:"message"`
		RequestID string `json:"request_id"`
		Details   []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"details"`
	} `json:"error"`
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data any) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data), string(env.Data))
	}
	return env
}

// cabinetJSON is a 600x720x560 two door base cabinet
func cabinetJSON(id string) map[string]any {
	return map[string]any{
		"id":            id,
		"name":          "Base 600",
		"cabinet_style": "standard",
		"width":         map[string]any{"default": 600, "min": 300, "max": 1200},
		"height":        map[string]any{"default": 720, "min": 500, "max": 900},
		"depth":         map[string]any{"default": 560, "min": 300, "max": 650},
		"door_count":    2,
		"door_qty":      2,
	}
}
