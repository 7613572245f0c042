package dto

import (
	"github.com/cabinetry/backend/internal/domain/catalog"
	"github.com/cabinetry/backend/internal/domain/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Numeric request fields are float64 on the wire and pass through pricing.SafeDecimal,
// so a non-finite value becomes zero rather than poisoning the arithmetic.

// DimensionRangeRequest is a dimension's default and bounds in mm
type DimensionRangeRequest struct {
	Default float64 `json:"default" binding:"gte=0"`
	Min     float64 `json:"min" binding:"gte=0"`
	Max     float64 `json:"max" binding:"gte=0"`
}

func (r DimensionRangeRequest) toDomain() catalog.DimensionRange {
	return catalog.DimensionRange{
		Default: pricing.SafeDecimal(r.Default),
		Min:     pricing.SafeDecimal(r.Min),
		Max:     pricing.SafeDecimal(r.Max),
	}
}

// CornerDefaultsRequest holds a corner cabinet's default leg dimensions
type CornerDefaultsRequest struct {
	LeftWidth  float64 `json:"left_width" binding:"gte=0"`
	RightWidth float64 `json:"right_width" binding:"gte=0"`
	LeftDepth  float64 `json:"left_depth" binding:"gte=0"`
	RightDepth float64 `json:"right_depth" binding:"gte=0"`
}

// CabinetTypeRequest is the catalog cabinet type a request is priced against
type CabinetTypeRequest struct {
	ID          uuid.UUID              `json:"id" binding:"required"`
	Name        string                 `json:"name" binding:"max=200"`
	Category    string                 `json:"category"`
	Style       string                 `json:"cabinet_style" binding:"omitempty,oneof=standard corner"`
	Width       DimensionRangeRequest  `json:"width"`
	Height      DimensionRangeRequest  `json:"height"`
	Depth       DimensionRangeRequest  `json:"depth"`
	DoorCount   int                    `json:"door_count" binding:"gte=0"`
	DrawerCount int                    `json:"drawer_count" binding:"gte=0"`
	BacksQty    *int                   `json:"backs_qty" binding:"omitempty,gte=0"`
	BottomsQty  *int                   `json:"bottoms_qty" binding:"omitempty,gte=0"`
	SidesQty    *int                   `json:"sides_qty" binding:"omitempty,gte=0"`
	DoorQty     *int                   `json:"door_qty" binding:"omitempty,gte=0"`
	Corner      *CornerDefaultsRequest `json:"corner"`
}

// ToDomain converts the request to a catalog cabinet type
func (r *CabinetTypeRequest) ToDomain() *catalog.CabinetType {
	if r == nil {
		return nil
	}
	style := catalog.CabinetStyle(r.Style)
	if !style.IsValid() {
		style = catalog.CabinetStyleStandard
	}
	ct := &catalog.CabinetType{
		ID:          r.ID,
		Name:        r.Name,
		Category:    r.Category,
		Style:       style,
		Width:       r.Width.toDomain(),
		Height:      r.Height.toDomain(),
		Depth:       r.Depth.toDomain(),
		DoorCount:   r.DoorCount,
		DrawerCount: r.DrawerCount,
		BacksQty:    r.BacksQty,
		BottomsQty:  r.BottomsQty,
		SidesQty:    r.SidesQty,
		DoorQty:     r.DoorQty,
	}
	if r.Corner != nil {
		ct.Corner = &catalog.CornerDefaults{
			LeftWidth:  pricing.SafeDecimal(r.Corner.LeftWidth),
			RightWidth: pricing.SafeDecimal(r.Corner.RightWidth),
			LeftDepth:  pricing.SafeDecimal(r.Corner.LeftDepth),
			RightDepth: pricing.SafeDecimal(r.Corner.RightDepth),
		}
	}
	return ct
}

// PartRequest is a named cabinet part
type PartRequest struct {
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity" binding:"gte=0"`
	IsDoor   bool   `json:"is_door"`
}

// PartsToDomain converts part requests
func PartsToDomain(parts []PartRequest) []catalog.CabinetPart {
	out := make([]catalog.CabinetPart, len(parts))
	for i, p := range parts {
		out[i] = catalog.CabinetPart{Name: p.Name, Quantity: p.Quantity, IsDoor: p.IsDoor}
	}
	return out
}

// DoorStyleRequest is the selected door style and optional finish
type DoorStyleRequest struct {
	DoorStyleID   uuid.UUID  `json:"door_style_id" binding:"required"`
	DoorStyleName string     `json:"door_style_name"`
	BaseRate      float64    `json:"base_rate" binding:"gte=0"`
	FinishID      *uuid.UUID `json:"finish_id"`
	FinishName    string     `json:"finish_name"`
	FinishRate    *float64   `json:"finish_rate" binding:"omitempty,gte=0"`
}

// ToDomain converts the request to a catalog door style/finish pair
func (r *DoorStyleRequest) ToDomain() *catalog.DoorStyleFinish {
	if r == nil {
		return nil
	}
	return &catalog.DoorStyleFinish{
		DoorStyleID:   r.DoorStyleID,
		DoorStyleName: r.DoorStyleName,
		BaseRate:      pricing.SafeDecimal(r.BaseRate),
		FinishID:      r.FinishID,
		FinishName:    r.FinishName,
		FinishRate:    decimalPtr(r.FinishRate),
	}
}

// ColorRequest is the selected door color
type ColorRequest struct {
	ID            uuid.UUID `json:"id" binding:"required"`
	Name          string    `json:"name"`
	Swatch        string    `json:"swatch"`
	SurchargeRate float64   `json:"surcharge_rate" binding:"gte=0"`
	DoorStyleID   uuid.UUID `json:"door_style_id"`
}

// ToDomain converts the request to a catalog color
func (r *ColorRequest) ToDomain() *catalog.Color {
	if r == nil {
		return nil
	}
	return &catalog.Color{
		ID:            r.ID,
		Name:          r.Name,
		Swatch:        r.Swatch,
		SurchargeRate: pricing.SafeDecimal(r.SurchargeRate),
		DoorStyleID:   r.DoorStyleID,
	}
}

// HardwareOptionRequest is one brand's product for a hardware requirement
type HardwareOptionRequest struct {
	ID          uuid.UUID `json:"id" binding:"required"`
	BrandID     uuid.UUID `json:"brand_id" binding:"required"`
	BrandName   string    `json:"brand_name"`
	ProductID   uuid.UUID `json:"product_id"`
	ProductName string    `json:"product_name"`
	UnitCost    float64   `json:"unit_cost" binding:"gte=0"`
}

// HardwareRequirementRequest states how much of a hardware type a cabinet needs
type HardwareRequirementRequest struct {
	ID            uuid.UUID               `json:"id" binding:"required"`
	HardwareType  string                  `json:"hardware_type" binding:"required"`
	UnitsPerScope int                     `json:"units_per_scope" binding:"gte=0"`
	UnitScope     string                  `json:"unit_scope"`
	Options       []HardwareOptionRequest `json:"options" binding:"dive"`
}

// RequirementsToDomain converts requirement requests for the given cabinet type
func RequirementsToDomain(cabinetTypeID uuid.UUID, reqs []HardwareRequirementRequest) []catalog.HardwareRequirement {
	out := make([]catalog.HardwareRequirement, len(reqs))
	for i, r := range reqs {
		options := make([]catalog.HardwareOption, len(r.Options))
		for j, o := range r.Options {
			options[j] = catalog.HardwareOption{
				ID:          o.ID,
				BrandID:     o.BrandID,
				BrandName:   o.BrandName,
				ProductID:   o.ProductID,
				ProductName: o.ProductName,
				UnitCost:    pricing.SafeDecimal(o.UnitCost),
			}
		}
		out[i] = catalog.HardwareRequirement{
			ID:            r.ID,
			CabinetTypeID: cabinetTypeID,
			HardwareType:  r.HardwareType,
			UnitsPerScope: r.UnitsPerScope,
			UnitScope:     catalog.UnitScope(r.UnitScope),
			Options:       options,
		}
	}
	return out
}

// SettingRequest is a raw global setting row
type SettingRequest struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value"`
}

// SettingsToDomain converts setting rows; nil stays nil so the caller can tell "omitted" from "empty"
func SettingsToDomain(rows []SettingRequest) []catalog.SettingRow {
	if rows == nil {
		return nil
	}
	out := make([]catalog.SettingRow, len(rows))
	for i, r := range rows {
		out[i] = catalog.SettingRow{Key: r.Key, Value: r.Value}
	}
	return out
}

// decimalPtr converts an optional float
func decimalPtr(f *float64) *decimal.Decimal {
	if f == nil {
		return nil
	}
	d := pricing.SafeDecimal(*f)
	return &d
}
