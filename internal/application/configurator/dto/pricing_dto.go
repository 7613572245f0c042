package dto

import (
	"github.com/cabinetry/backend/internal/domain/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// HardwareSelectionRequest carries hardware requirements and how options are picked.
// Explicit selections win over a brand; with neither, every requirement is reported as a gap.
type HardwareSelectionRequest struct {
	Requirements  []HardwareRequirementRequest `json:"requirements" binding:"dive"`
	BrandID       *uuid.UUID                   `json:"brand_id"`
	Selections    map[uuid.UUID]uuid.UUID      `json:"selections"`
	OrderQuantity *int                         `json:"order_quantity" binding:"omitempty,gte=0"`
}

// Selector returns the hardware selection strategy the request asks for, nil when none
func (r *HardwareSelectionRequest) Selector() pricing.HardwareSelector {
	switch {
	case r == nil:
		return nil
	case len(r.Selections) > 0:
		return pricing.NewExplicitSelector(r.Selections)
	case r.BrandID != nil:
		return pricing.NewBrandSelector(*r.BrandID)
	default:
		return nil
	}
}

// Quantity returns the order quantity, 1 when omitted
func (r *HardwareSelectionRequest) Quantity() int {
	if r == nil || r.OrderQuantity == nil {
		return 1
	}
	return *r.OrderQuantity
}

// HardwareRequest prices hardware on its own
type HardwareRequest struct {
	CabinetType *CabinetTypeRequest      `json:"cabinet_type" binding:"required"`
	Hardware    HardwareSelectionRequest `json:"hardware"`
}

// HardwareResponse is a hardware calculation with a display total
type HardwareResponse struct {
	pricing.HardwareCost
	Currency string `json:"currency"`
	Display  string `json:"display"`
}

// QuoteRequest prices one cabinet.
// Omitted dimensions take the cabinet type's defaults. Omitted settings are read from the
// settings store. Hardware is priced from Hardware when present, else HardwareCost is used as given.
type QuoteRequest struct {
	CabinetType  *CabinetTypeRequest       `json:"cabinet_type" binding:"required"`
	Width        *float64                  `json:"width" binding:"omitempty,gte=0"`
	Height       *float64                  `json:"height" binding:"omitempty,gte=0"`
	Depth        *float64                  `json:"depth" binding:"omitempty,gte=0"`
	DoorStyle    *DoorStyleRequest         `json:"door_style"`
	Color        *ColorRequest             `json:"color"`
	Parts        []PartRequest             `json:"parts" binding:"dive"`
	Settings     []SettingRequest          `json:"settings" binding:"omitempty,dive"`
	Hardware     *HardwareSelectionRequest `json:"hardware"`
	HardwareCost *float64                  `json:"hardware_cost" binding:"omitempty,gte=0"`
}

// Dimensions resolves the requested dimensions against the cabinet type's defaults
func (r *QuoteRequest) Dimensions() (width, height, depth decimal.Decimal) {
	ct := r.CabinetType.ToDomain()
	width, height, depth = ct.Width.Default, ct.Height.Default, ct.Depth.Default
	if r.Width != nil {
		width = pricing.SafeDecimal(*r.Width)
	}
	if r.Height != nil {
		height = pricing.SafeDecimal(*r.Height)
	}
	if r.Depth != nil {
		depth = pricing.SafeDecimal(*r.Depth)
	}
	return width, height, depth
}

// QuoteResponse is a GST-inclusive price with its full breakdown
type QuoteResponse struct {
	Price     decimal.Decimal       `json:"price"`
	Currency  string                `json:"currency"`
	Display   string                `json:"display"`
	Breakdown pricing.Breakdown     `json:"breakdown"`
	Hardware  *pricing.HardwareCost `json:"hardware,omitempty"`
}

// SettingsResponse shows the stored rows and the rates they resolve to
type SettingsResponse struct {
	Rows     []SettingRequest `json:"rows"`
	Resolved pricing.Settings `json:"resolved"`
}
