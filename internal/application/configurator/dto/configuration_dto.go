package dto

import (
	"time"

	"github.com/cabinetry/backend/internal/domain/configuration"
	"github.com/cabinetry/backend/internal/domain/shared/strategy"
	"github.com/google/uuid"
)

// DefaultConfigurationRequest asks for a cabinet type's default configuration
type DefaultConfigurationRequest struct {
	CabinetType *CabinetTypeRequest `json:"cabinet_type" binding:"required"`
}

// ValidateConfigurationRequest checks a configuration against its cabinet type
type ValidateConfigurationRequest struct {
	Configuration *configuration.CabinetConfiguration `json:"configuration" binding:"required"`
	CabinetType   *CabinetTypeRequest                 `json:"cabinet_type"`
}

// ConvertLegacyRequest converts a legacy payload. Unify moves the result to the unified state.
type ConvertLegacyRequest struct {
	Payload     configuration.LegacyPayload `json:"payload"`
	CabinetType *CabinetTypeRequest         `json:"cabinet_type"`
	Unify       bool                        `json:"unify"`
}

// ConvertProductRequest converts a product catalog payload
type ConvertProductRequest struct {
	Payload     configuration.ProductPayload `json:"payload"`
	CabinetType *CabinetTypeRequest          `json:"cabinet_type"`
	Unify       bool                         `json:"unify"`
}

// ConfigurationResponse wraps a configuration with its validation when a cabinet type was supplied
type ConfigurationResponse struct {
	Configuration *configuration.CabinetConfiguration `json:"configuration"`
	Validation    *strategy.ValidationResult          `json:"validation,omitempty"`
}

// ExportResponse renders a configuration in both interop shapes
type ExportResponse struct {
	Legacy  configuration.LegacyPayload  `json:"legacy"`
	Product configuration.ProductPayload `json:"product"`
}

// CompareRequest compares two configurations, a against b
type CompareRequest struct {
	A *configuration.CabinetConfiguration `json:"a" binding:"required"`
	B *configuration.CabinetConfiguration `json:"b" binding:"required"`
}

// CloneRequest copies a configuration with selected fields replaced
type CloneRequest struct {
	Base      *configuration.CabinetConfiguration `json:"base" binding:"required"`
	Overrides CloneOverrides                      `json:"overrides"`
}

// CloneOverrides are the replaceable fields of a clone; omitted fields keep the base value
type CloneOverrides struct {
	CabinetTypeID      *uuid.UUID                      `json:"cabinet_type_id"`
	Width              *float64                        `json:"width" binding:"omitempty,gte=0"`
	Height             *float64                        `json:"height" binding:"omitempty,gte=0"`
	Depth              *float64                        `json:"depth" binding:"omitempty,gte=0"`
	Corner             *configuration.CornerDimensions `json:"corner"`
	Quantity           *int                            `json:"quantity" binding:"omitempty,gte=1"`
	DoorStyleID        *uuid.UUID                      `json:"door_style_id"`
	ColorID            *uuid.UUID                      `json:"color_id"`
	FinishID           *uuid.UUID                      `json:"finish_id"`
	HardwareBrandID    *uuid.UUID                      `json:"hardware_brand_id"`
	HardwareSelections map[uuid.UUID]uuid.UUID         `json:"hardware_selections"`
	ProductID          *uuid.UUID                      `json:"product_id"`
	VariantID          *uuid.UUID                      `json:"variant_id"`
	SelectedOptions    map[string]string               `json:"selected_options"`
	Clear              []string                        `json:"clear" binding:"omitempty,dive,oneof=corner door_style color finish hardware_brand hardware_selections product variant selected_options"`
}

// ToDomain converts the overrides
func (o CloneOverrides) ToDomain() configuration.Overrides {
	return configuration.Overrides{
		CabinetTypeID:      o.CabinetTypeID,
		Width:              decimalPtr(o.Width),
		Height:             decimalPtr(o.Height),
		Depth:              decimalPtr(o.Depth),
		Corner:             o.Corner,
		Quantity:           o.Quantity,
		DoorStyleID:        o.DoorStyleID,
		ColorID:            o.ColorID,
		FinishID:           o.FinishID,
		HardwareBrandID:    o.HardwareBrandID,
		HardwareSelections: o.HardwareSelections,
		ProductID:          o.ProductID,
		VariantID:          o.VariantID,
		SelectedOptions:    o.SelectedOptions,
		Clear:              clearableFields(o.Clear),
	}
}

func clearableFields(names []string) []configuration.ClearableField {
	if len(names) == 0 {
		return nil
	}
	out := make([]configuration.ClearableField, len(names))
	for i, n := range names {
		out[i] = configuration.ClearableField(n)
	}
	return out
}

// SaveTemplateRequest stores a configuration as a named template
type SaveTemplateRequest struct {
	Name          string                              `json:"name" binding:"required,max=100"`
	Description   string                              `json:"description" binding:"max=1000"`
	IsDefault     bool                                `json:"is_default"`
	Configuration *configuration.CabinetConfiguration `json:"configuration" binding:"required"`
}

// ListTemplatesQuery selects templates of one cabinet type
type ListTemplatesQuery struct {
	CabinetTypeID string `form:"cabinet_type_id" binding:"required,uuid"`
}

// TemplateResponse is a stored template
type TemplateResponse struct {
	ID            uuid.UUID                           `json:"id"`
	CabinetTypeID uuid.UUID                           `json:"cabinet_type_id"`
	UserID        *uuid.UUID                          `json:"user_id,omitempty"`
	Name          string                              `json:"name"`
	Description   string                              `json:"description"`
	IsDefault     bool                                `json:"is_default"`
	Configuration *configuration.CabinetConfiguration `json:"configuration"`
	CreatedAt     time.Time                           `json:"created_at"`
	UpdatedAt     time.Time                           `json:"updated_at"`
}

// ToTemplateResponse converts a domain template
func ToTemplateResponse(t *configuration.ConfigurationTemplate) TemplateResponse {
	return TemplateResponse{
		ID:            t.ID,
		CabinetTypeID: t.CabinetTypeID,
		UserID:        t.UserID,
		Name:          t.Name,
		Description:   t.Description,
		IsDefault:     t.IsDefault,
		Configuration: t.Configuration(),
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

// ToTemplateResponses converts a template listing
func ToTemplateResponses(templates []configuration.ConfigurationTemplate) []TemplateResponse {
	out := make([]TemplateResponse, len(templates))
	for i := range templates {
		out[i] = ToTemplateResponse(&templates[i])
	}
	return out
}
