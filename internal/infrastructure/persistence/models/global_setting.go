package models

import (
	"time"

	"github.com/cabinetry/backend/internal/domain/catalog"
)

// GlobalSettingModel is one key/value row of the global settings table.
// Values are kept raw; interpretation happens in the pricing domain.
type GlobalSettingModel struct {
	Key       string    `gorm:"type:varchar(100);primaryKey"`
	Value     string    `gorm:"type:varchar(255);not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (GlobalSettingModel) TableName() string {
	return "global_settings"
}

// ToDomain converts the model to a domain setting row
func (m *GlobalSettingModel) ToDomain() catalog.SettingRow {
	return catalog.SettingRow{Key: m.Key, Value: m.Value}
}

// GlobalSettingModelFromDomain creates a persistence model from a domain setting row
func GlobalSettingModelFromDomain(row catalog.SettingRow) *GlobalSettingModel {
	return &GlobalSettingModel{Key: row.Key, Value: row.Value}
}
