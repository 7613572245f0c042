package models

import (
	"encoding/json"
	"fmt"

	"github.com/cabinetry/backend/internal/domain/configuration"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

var templateLogger = zap.L().Named("configuration.models")

// ConfigurationTemplateModel is the persistence model for a saved configuration template.
// The configuration snapshot is stored whole as JSON.
type ConfigurationTemplateModel struct {
	BaseModel
	CabinetTypeID uuid.UUID      `gorm:"type:uuid;not null;index"`
	UserID        *uuid.UUID     `gorm:"type:uuid;index"`
	Name          string         `gorm:"type:varchar(100);not null"`
	Description   string         `gorm:"type:text"`
	IsDefault     bool           `gorm:"not null;default:false"`
	Configuration datatypes.JSON `gorm:"type:jsonb;not null"`
}

// TableName returns the table name for GORM
func (ConfigurationTemplateModel) TableName() string {
	return "configuration_templates"
}

// ToDomain converts the persistence model to a domain template.
// An unreadable snapshot is logged and yields a template without configuration.
func (m *ConfigurationTemplateModel) ToDomain() *configuration.ConfigurationTemplate {
	var cfg *configuration.CabinetConfiguration
	if len(m.Configuration) > 0 {
		cfg = &configuration.CabinetConfiguration{}
		if err := json.Unmarshal(m.Configuration, cfg); err != nil {
			templateLogger.Warn("failed to parse configuration JSON",
				zap.String("template_id", m.ID.String()),
				zap.Error(err))
			cfg = nil
		}
	}
	return configuration.RestoreTemplate(
		m.BaseModel.ToDomain(),
		m.CabinetTypeID,
		m.UserID,
		m.Name,
		m.Description,
		m.IsDefault,
		cfg,
	)
}

// FromDomain populates the model from a domain template
func (m *ConfigurationTemplateModel) FromDomain(t *configuration.ConfigurationTemplate) error {
	m.FromDomainBaseEntity(t.BaseEntity)
	m.CabinetTypeID = t.CabinetTypeID
	m.UserID = t.UserID
	m.Name = t.Name
	m.Description = t.Description
	m.IsDefault = t.IsDefault

	raw, err := json.Marshal(t.Configuration())
	if err != nil {
		return fmt.Errorf("failed to encode configuration: %w", err)
	}
	m.Configuration = datatypes.JSON(raw)
	return nil
}

// ConfigurationTemplateModelFromDomain creates a new persistence model from a domain template
func ConfigurationTemplateModelFromDomain(t *configuration.ConfigurationTemplate) (*ConfigurationTemplateModel, error) {
	m := &ConfigurationTemplateModel{}
	if err := m.FromDomain(t); err != nil {
		return nil, err
	}
	return m, nil
}
