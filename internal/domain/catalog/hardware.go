package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UnitScope is the basis a hardware requirement's quantity multiplies on
type UnitScope string

const (
	UnitScopePerCabinet UnitScope = "per_cabinet"
	UnitScopePerDoor    UnitScope = "per_door"
	UnitScopePerDrawer  UnitScope = "per_drawer"
)

// IsValid returns true if the unit scope is recognised
func (s UnitScope) IsValid() bool {
	switch s {
	case UnitScopePerCabinet, UnitScopePerDoor, UnitScopePerDrawer:
		return true
	default:
		return false
	}
}

// HardwareOption is a purchasable product of one brand satisfying a requirement
type HardwareOption struct {
	ID          uuid.UUID       `json:"id"`
	BrandID     uuid.UUID       `json:"brand_id"`
	BrandName   string          `json:"brand_name"`
	ProductID   uuid.UUID       `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
}

// HardwareRequirement states how much of a hardware type a cabinet type needs
type HardwareRequirement struct {
	ID            uuid.UUID        `json:"id"`
	CabinetTypeID uuid.UUID        `json:"cabinet_type_id"`
	HardwareType  string           `json:"hardware_type"`
	UnitsPerScope int              `json:"units_per_scope"`
	UnitScope     UnitScope        `json:"unit_scope"`
	Options       []HardwareOption `json:"options"`
}

// OptionForBrand returns the first option of the given brand
func (r *HardwareRequirement) OptionForBrand(brandID uuid.UUID) (*HardwareOption, bool) {
	for i := range r.Options {
		if r.Options[i].BrandID == brandID {
			return &r.Options[i], true
		}
	}
	return nil, false
}

// OptionByID returns the option with the given ID
func (r *HardwareRequirement) OptionByID(optionID uuid.UUID) (*HardwareOption, bool) {
	for i := range r.Options {
		if r.Options[i].ID == optionID {
			return &r.Options[i], true
		}
	}
	return nil, false
}
