package catalog

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CabinetStyle distinguishes box cabinets from L-shaped corner units
type CabinetStyle string

const (
	CabinetStyleStandard CabinetStyle = "standard"
	CabinetStyleCorner   CabinetStyle = "corner"
)

// IsValid returns true if the cabinet style is recognised
func (s CabinetStyle) IsValid() bool {
	return s == CabinetStyleStandard || s == CabinetStyleCorner
}

// Carcass quantity fallbacks used when a cabinet type leaves them unset
const (
	DefaultBacksQty   = 1
	DefaultBottomsQty = 1
	DefaultSidesQty   = 2
)

// DimensionRange holds the default and allowed range of one dimension in millimetres.
// A zero Max means the dimension has no upper bound.
type DimensionRange struct {
	Default decimal.Decimal `json:"default"`
	Min     decimal.Decimal `json:"min"`
	Max     decimal.Decimal `json:"max"`
}

// Contains reports whether v lies within [Min, Max] inclusive
func (r DimensionRange) Contains(v decimal.Decimal) bool {
	if v.LessThan(r.Min) {
		return false
	}
	if r.Max.IsPositive() && v.GreaterThan(r.Max) {
		return false
	}
	return true
}

// CornerDefaults holds the default left/right leg dimensions of a corner cabinet
type CornerDefaults struct {
	LeftWidth  decimal.Decimal `json:"left_width"`
	RightWidth decimal.Decimal `json:"right_width"`
	LeftDepth  decimal.Decimal `json:"left_depth"`
	RightDepth decimal.Decimal `json:"right_depth"`
}

// CabinetType is a catalog cabinet definition supplied by the data-access layer
type CabinetType struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Style       CabinetStyle    `json:"cabinet_style"`
	Width       DimensionRange  `json:"width"`
	Height      DimensionRange  `json:"height"`
	Depth       DimensionRange  `json:"depth"`
	DoorCount   int             `json:"door_count"`
	DrawerCount int             `json:"drawer_count"`
	BacksQty    *int            `json:"backs_qty,omitempty"`
	BottomsQty  *int            `json:"bottoms_qty,omitempty"`
	SidesQty    *int            `json:"sides_qty,omitempty"`
	DoorQty     *int            `json:"door_qty,omitempty"`
	Corner      *CornerDefaults `json:"corner,omitempty"`
}

// IsCorner returns true for corner cabinets
func (t *CabinetType) IsCorner() bool {
	return t != nil && t.Style == CabinetStyleCorner
}

// EffectiveDoorQty returns the door quantity used for pricing.
// DoorQty wins when set, otherwise DoorCount.
func (t *CabinetType) EffectiveDoorQty() int {
	if t == nil {
		return 0
	}
	if t.DoorQty != nil {
		return *t.DoorQty
	}
	return t.DoorCount
}

// EffectiveBacksQty returns the back panel quantity
func (t *CabinetType) EffectiveBacksQty() int {
	return qtyOrDefault(t, func(ct *CabinetType) *int { return ct.BacksQty }, DefaultBacksQty)
}

// EffectiveBottomsQty returns the bottom panel quantity
func (t *CabinetType) EffectiveBottomsQty() int {
	return qtyOrDefault(t, func(ct *CabinetType) *int { return ct.BottomsQty }, DefaultBottomsQty)
}

// EffectiveSidesQty returns the side panel quantity
func (t *CabinetType) EffectiveSidesQty() int {
	return qtyOrDefault(t, func(ct *CabinetType) *int { return ct.SidesQty }, DefaultSidesQty)
}

func qtyOrDefault(t *CabinetType, field func(*CabinetType) *int, fallback int) int {
	if t == nil {
		return fallback
	}
	if v := field(t); v != nil {
		return *v
	}
	return fallback
}

// CheckDimensionInvariants returns one message per dimension whose range is inconsistent
// (min > default, or default > max when max is set).
func (t *CabinetType) CheckDimensionInvariants() []string {
	var problems []string
	for _, d := range []struct {
		name string
		r    DimensionRange
	}{
		{"width", t.Width},
		{"height", t.Height},
		{"depth", t.Depth},
	} {
		if d.r.Min.GreaterThan(d.r.Default) {
			problems = append(problems, fmt.Sprintf("%s: min %s exceeds default %s", d.name, d.r.Min, d.r.Default))
		}
		if d.r.Max.IsPositive() && d.r.Default.GreaterThan(d.r.Max) {
			problems = append(problems, fmt.Sprintf("%s: default %s exceeds max %s", d.name, d.r.Default, d.r.Max))
		}
	}
	return problems
}

// CabinetPart is a named physical part of a cabinet type
type CabinetPart struct {
	ID            uuid.UUID `json:"id"`
	CabinetTypeID uuid.UUID `json:"cabinet_type_id"`
	Name          string    `json:"name"`
	Quantity      int       `json:"quantity"`
	IsDoor        bool      `json:"is_door"`
}
