package models

import (
	"testing"
	"time"

	"github.com/cabinetry/backend/internal/domain/catalog"
	"github.com/cabinetry/backend/internal/domain/configuration"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestConfigurationTemplateModel_TableName(t *testing.T) {
	assert.Equal(t, "configuration_templates", ConfigurationTemplateModel{}.TableName())
	assert.Equal(t, "global_settings", GlobalSettingModel{}.TableName())
}

func TestConfigurationTemplateModel_RoundTrip(t *testing.T) {
	ct := &catalog.CabinetType{
		ID:    uuid.New(),
		Name:  "Base 600",
		Width: catalog.DimensionRange{Default: decimal.NewFromInt(600)},
	}
	cfg := configuration.NewDefault(ct)
	brand := uuid.New()
	reqID, optID := uuid.New(), uuid.New()
	cfg.HardwareBrandID = &brand
	cfg.HardwareSelections = map[uuid.UUID]uuid.UUID{reqID: optID}

	userID := uuid.New()
	tmpl, err := configuration.NewTemplate(&userID, "My base", "kitchen run", false, cfg)
	require.NoError(t, err)

	model, err := ConfigurationTemplateModelFromDomain(tmpl)
	require.NoError(t, err)
	assert.Equal(t, tmpl.ID, model.ID)
	assert.Equal(t, ct.ID, model.CabinetTypeID)
	assert.Equal(t, &userID, model.UserID)
	assert.NotEmpty(t, model.Configuration)

	restored := model.ToDomain()
	assert.Equal(t, tmpl.ID, restored.ID)
	assert.Equal(t, "My base", restored.Name)
	assert.Equal(t, "kitchen run", restored.Description)
	assert.False(t, restored.IsDefault)

	got := restored.Configuration()
	require.NotNil(t, got)
	assert.Equal(t, ct.ID, got.CabinetTypeID)
	assert.True(t, got.Width.Equal(decimal.NewFromInt(600)))
	require.NotNil(t, got.HardwareBrandID)
	assert.Equal(t, brand, *got.HardwareBrandID)
	assert.Equal(t, optID, got.HardwareSelections[reqID])
}

func TestConfigurationTemplateModel_ToDomain_BadJSON(t *testing.T) {
	now := time.Now()
	model := &ConfigurationTemplateModel{
		BaseModel:     BaseModel{ID: uuid.New(), CreatedAt: now, UpdatedAt: now},
		CabinetTypeID: uuid.New(),
		Name:          "Broken",
		Configuration: datatypes.JSON(`{not json`),
	}

	restored := model.ToDomain()
	assert.Equal(t, "Broken", restored.Name)
	assert.Nil(t, restored.Configuration())
}

func TestGlobalSettingModel_ToDomain(t *testing.T) {
	m := GlobalSettingModelFromDomain(catalog.SettingRow{Key: "gst_rate", Value: "10%"})
	assert.Equal(t, catalog.SettingRow{Key: "gst_rate", Value: "10%"}, m.ToDomain())
}
