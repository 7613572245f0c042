package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/cabinetry/backend/internal/application/configurator/dto"
	"github.com/cabinetry/backend/internal/domain/catalog"
	"github.com/cabinetry/backend/internal/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPricingEnv(t *testing.T) *testEnv {
	env := newTestEnv(t)
	h := NewPricingHandler(env.service)
	env.router.POST("/pricing/quote", h.Quote)
	env.router.POST("/pricing/hardware", h.Hardware)
	env.router.GET("/settings", h.Settings)
	return env
}

func quoteBody() map[string]any {
	styleID := uuid.NewString()
	return map[string]any{
		"cabinet_type": cabinetJSON(uuid.NewString()),
		"door_style":   map[string]any{"door_style_id": styleID, "door_style_name": "Shaker", "base_rate": 150},
		"color":        map[string]any{"id": uuid.NewString(), "name": "Snow", "surcharge_rate": 20, "door_style_id": styleID},
	}
}

func TestPricingHandler_Quote(t *testing.T) {
	t.Run("prices with stored settings", func(t *testing.T) {
		env := newPricingEnv(t)
		repo := persistence.NewGormSettingRepository(env.db.DB)
		require.NoError(t, repo.Upsert(context.Background(), catalog.SettingRow{Key: "gst_rate", Value: "10%"}))

		body := quoteBody()
		body["hardware_cost"] = 45
		w := env.do(http.MethodPost, "/pricing/quote", body)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp dto.QuoteResponse
		out := decode(t, w, &resp)
		assert.True(t, out.Success)
		assert.True(t, decimal.RequireFromString("345.708").Equal(resp.Price), resp.Price.String())
		assert.Contains(t, resp.Display, "345.71")
		assert.Equal(t, "AUD", resp.Currency)
	})

	t.Run("request settings override the store", func(t *testing.T) {
		env := newPricingEnv(t)
		body := quoteBody()
		body["settings"] = []map[string]string{{"key": "gst_rate", "value": "0"}}

		w := env.do(http.MethodPost, "/pricing/quote", body)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var resp dto.QuoteResponse
		decode(t, w, &resp)
		assert.True(t, decimal.RequireFromString("269.28").Equal(resp.Price), resp.Price.String())
	})

	t.Run("missing cabinet type is a validation error", func(t *testing.T) {
		env := newPricingEnv(t)
		w := env.do(http.MethodPost, "/pricing/quote", map[string]any{"width": 600})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		out := decode(t, w, nil)
		assert.False(t, out.Success)
		require.NotNil(t, out.Error)
		assert.Equal(t, "ERR_VALIDATION", out.Error.Code)
		require.NotEmpty(t, out.Error.Details)
		assert.Equal(t, "cabinet_type", out.Error.Details[0].Field)
	})

	t.Run("negative width is rejected", func(t *testing.T) {
		env := newPricingEnv(t)
		body := quoteBody()
		body["width"] = -1

		w := env.do(http.MethodPost, "/pricing/quote", body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed json", func(t *testing.T) {
		env := newPricingEnv(t)
		w := env.do(http.MethodPost, "/pricing/quote", `{"cabinet_type":`)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		out := decode(t, w, nil)
		require.NotNil(t, out.Error)
		assert.Equal(t, "ERR_INVALID_JSON", out.Error.Code)
	})
}

func TestPricingHandler_Hardware(t *testing.T) {
	env := newPricingEnv(t)
	brand := uuid.NewString()
	body := map[string]any{
		"cabinet_type": cabinetJSON(uuid.NewString()),
		"hardware": map[string]any{
			"brand_id":       brand,
			"order_quantity": 3,
			"requirements": []map[string]any{{
				"id":              uuid.NewString(),
				"hardware_type":   "hinge",
				"units_per_scope": 2,
				"unit_scope":      "per_door",
				"options": []map[string]any{
					{"id": uuid.NewString(), "brand_id": brand, "brand_name": "Blum", "unit_cost": 5},
				},
			}},
		},
	}

	w := env.do(http.MethodPost, "/pricing/hardware", body)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp dto.HardwareResponse
	decode(t, w, &resp)
	assert.True(t, decimal.NewFromInt(60).Equal(resp.Total), resp.Total.String())
	require.Len(t, resp.Lines, 1)
	assert.Equal(t, 12, resp.Lines[0].ResolvedQuantity)
	assert.Empty(t, resp.Gaps)
}

func TestPricingHandler_Settings(t *testing.T) {
	env := newPricingEnv(t)
	repo := persistence.NewGormSettingRepository(env.db.DB)
	require.NoError(t, repo.Upsert(context.Background(), catalog.SettingRow{Key: "gst_rate", Value: "15"}))

	w := env.do(http.MethodGet, "/settings", nil)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp dto.SettingsResponse
	decode(t, w, &resp)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "gst_rate", resp.Rows[0].Key)
	assert.True(t, decimal.RequireFromString("0.15").Equal(resp.Resolved.GSTRate))
	assert.True(t, decimal.NewFromInt(85).Equal(resp.Resolved.MaterialRate))
}
