package configuration

import (
	"time"

	"github.com/cabinetry/backend/internal/domain/catalog"
	"github.com/cabinetry/backend/internal/domain/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Source tags which subsystem a configuration came from
type Source string

const (
	SourceLegacy  Source = "legacy"
	SourceProduct Source = "product"
	SourceUnified Source = "unified"
)

// IsValid returns true if the source is recognised
func (s Source) IsValid() bool {
	switch s {
	case SourceLegacy, SourceProduct, SourceUnified:
		return true
	default:
		return false
	}
}

// now is swapped in tests
var now = time.Now

// CornerDimensions are the independent leg dimensions of a corner cabinet, in mm
type CornerDimensions struct {
	LeftWidth  decimal.Decimal `json:"left_width"`
	RightWidth decimal.Decimal `json:"right_width"`
	LeftDepth  decimal.Decimal `json:"left_depth"`
	RightDepth decimal.Decimal `json:"right_depth"`
}

// CabinetConfiguration is the canonical record of a customer's cabinet selections
type CabinetConfiguration struct {
	CabinetTypeID      uuid.UUID               `json:"cabinet_type_id"`
	Width              decimal.Decimal         `json:"width"`
	Height             decimal.Decimal         `json:"height"`
	Depth              decimal.Decimal         `json:"depth"`
	Corner             *CornerDimensions       `json:"corner,omitempty"`
	Quantity           int                     `json:"quantity"`
	DoorStyleID        *uuid.UUID              `json:"door_style_id,omitempty"`
	ColorID            *uuid.UUID              `json:"color_id,omitempty"`
	FinishID           *uuid.UUID              `json:"finish_id,omitempty"`
	HardwareBrandID    *uuid.UUID              `json:"hardware_brand_id,omitempty"`
	HardwareSelections map[uuid.UUID]uuid.UUID `json:"hardware_selections,omitempty"`
	ProductID          *uuid.UUID              `json:"product_id,omitempty"`
	VariantID          *uuid.UUID              `json:"variant_id,omitempty"`
	SelectedOptions    map[string]string       `json:"selected_options,omitempty"`
	Source             Source                  `json:"source"`
	CreatedAt          time.Time               `json:"created_at"`
	UpdatedAt          time.Time               `json:"updated_at"`
}

// NewDefault creates a configuration populated from the cabinet type's defaults.
// Corner cabinets also get their corner leg defaults.
func NewDefault(ct *catalog.CabinetType) *CabinetConfiguration {
	ts := now()
	cfg := &CabinetConfiguration{
		Quantity:  1,
		Source:    SourceUnified,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	if ct == nil {
		return cfg
	}
	cfg.CabinetTypeID = ct.ID
	cfg.Width = ct.Width.Default
	cfg.Height = ct.Height.Default
	cfg.Depth = ct.Depth.Default
	if ct.IsCorner() {
		cfg.Corner = cornerDefaults(ct)
	}
	return cfg
}

func cornerDefaults(ct *catalog.CabinetType) *CornerDimensions {
	if ct.Corner == nil {
		return &CornerDimensions{}
	}
	return &CornerDimensions{
		LeftWidth:  ct.Corner.LeftWidth,
		RightWidth: ct.Corner.RightWidth,
		LeftDepth:  ct.Corner.LeftDepth,
		RightDepth: ct.Corner.RightDepth,
	}
}

// Copy returns a deep copy; maps and optional fields are not shared with the receiver
func (c *CabinetConfiguration) Copy() *CabinetConfiguration {
	if c == nil {
		return nil
	}
	out := *c
	if c.Corner != nil {
		corner := *c.Corner
		out.Corner = &corner
	}
	out.DoorStyleID = copyID(c.DoorStyleID)
	out.ColorID = copyID(c.ColorID)
	out.FinishID = copyID(c.FinishID)
	out.HardwareBrandID = copyID(c.HardwareBrandID)
	out.ProductID = copyID(c.ProductID)
	out.VariantID = copyID(c.VariantID)
	out.HardwareSelections = copySelections(c.HardwareSelections)
	out.SelectedOptions = copyOptions(c.SelectedOptions)
	return &out
}

// IsCorner reports whether the configuration carries corner dimensions
func (c *CabinetConfiguration) IsCorner() bool {
	return c.Corner != nil
}

// HasHardwareSelection reports whether a brand or explicit hardware choice is present
func (c *CabinetConfiguration) HasHardwareSelection() bool {
	return c.HardwareBrandID != nil || len(c.HardwareSelections) > 0
}

// HardwareSelector returns the selection strategy for this configuration.
// Explicit per-requirement choices win over a brand; nil when neither is set.
func (c *CabinetConfiguration) HardwareSelector() pricing.HardwareSelector {
	switch {
	case len(c.HardwareSelections) > 0:
		return pricing.NewExplicitSelector(c.HardwareSelections)
	case c.HardwareBrandID != nil:
		return pricing.NewBrandSelector(*c.HardwareBrandID)
	default:
		return nil
	}
}

func (c *CabinetConfiguration) touch() {
	c.UpdatedAt = now()
}

func copyID(id *uuid.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	v := *id
	return &v
}

func copySelections(m map[uuid.UUID]uuid.UUID) map[uuid.UUID]uuid.UUID {
	if m == nil {
		return nil
	}
	out := make(map[uuid.UUID]uuid.UUID, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func copyOptions(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
