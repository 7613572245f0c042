package pricing

import (
	"strings"

	"github.com/cabinetry/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// Part name fragments used to attribute cabinet parts to carcass categories
const (
	partMatchBack   = "back"
	partMatchBottom = "bottom"
	partMatchSide   = "side"
)

// PartQuantities holds the carcass panel counts used for material costing
type PartQuantities struct {
	Backs   int `json:"backs"`
	Bottoms int `json:"bottoms"`
	Sides   int `json:"sides"`
}

// ResolvePartQuantities derives carcass quantities for a cabinet type.
// The type's quantities (or fallbacks) apply first; for each category, the summed
// quantities of matching non-door parts replace the type's value.
// Door parts never contribute.
func ResolvePartQuantities(ct *catalog.CabinetType, parts []catalog.CabinetPart) PartQuantities {
	q := PartQuantities{
		Backs:   ct.EffectiveBacksQty(),
		Bottoms: ct.EffectiveBottomsQty(),
		Sides:   ct.EffectiveSidesQty(),
	}

	var backs, bottoms, sides int
	var hasBacks, hasBottoms, hasSides bool
	for _, p := range parts {
		if p.IsDoor || p.Quantity < 0 {
			continue
		}
		name := strings.ToLower(p.Name)
		switch {
		case strings.Contains(name, partMatchBack):
			backs += p.Quantity
			hasBacks = true
		case strings.Contains(name, partMatchBottom):
			bottoms += p.Quantity
			hasBottoms = true
		case strings.Contains(name, partMatchSide):
			sides += p.Quantity
			hasSides = true
		}
	}

	if hasBacks {
		q.Backs = backs
	}
	if hasBottoms {
		q.Bottoms = bottoms
	}
	if hasSides {
		q.Sides = sides
	}
	return q
}

// MaterialInput holds the inputs of a carcass material calculation. Dimensions are in mm.
type MaterialInput struct {
	Width      decimal.Decimal
	Height     decimal.Decimal
	Depth      decimal.Decimal
	Quantities PartQuantities
	Rate       decimal.Decimal
}

// MaterialCost is the carcass panel cost breakdown
type MaterialCost struct {
	WidthM     decimal.Decimal `json:"width_m"`
	HeightM    decimal.Decimal `json:"height_m"`
	DepthM     decimal.Decimal `json:"depth_m"`
	Quantities PartQuantities  `json:"quantities"`
	Rate       decimal.Decimal `json:"rate"`
	Back       decimal.Decimal `json:"back"`
	Bottom     decimal.Decimal `json:"bottom"`
	Side       decimal.Decimal `json:"side"`
	Total      decimal.Decimal `json:"total"`
}

// CalculateMaterialCost prices the carcass panels.
// back = w×h×backs×rate, bottom = w×d×bottoms×rate, side = w×d×sides×rate.
// No wastage factor is applied.
func CalculateMaterialCost(in MaterialInput) MaterialCost {
	w := toMetres(in.Width)
	h := toMetres(in.Height)
	d := toMetres(in.Depth)
	rate := nonNegative(in.Rate)

	back := w.Mul(h).Mul(decimal.NewFromInt(int64(in.Quantities.Backs))).Mul(rate)
	bottom := w.Mul(d).Mul(decimal.NewFromInt(int64(in.Quantities.Bottoms))).Mul(rate)
	side := w.Mul(d).Mul(decimal.NewFromInt(int64(in.Quantities.Sides))).Mul(rate)

	return MaterialCost{
		WidthM:     w,
		HeightM:    h,
		DepthM:     d,
		Quantities: in.Quantities,
		Rate:       rate,
		Back:       back,
		Bottom:     bottom,
		Side:       side,
		Total:      back.Add(bottom).Add(side),
	}
}
