package pricing

import (
	"fmt"

	"github.com/cabinetry/backend/internal/domain/catalog"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GapReason explains why a hardware requirement could not be priced
type GapReason string

const (
	GapReasonNoSelection    GapReason = "no_selection"
	GapReasonNoBrandOption  GapReason = "no_option_for_brand"
	GapReasonOptionNotFound GapReason = "option_not_found"
	// GapReasonInvalidQuantity marks a requirement whose units or scope count is negative,
	// or whose resolved quantity exceeds MaxResolvedQuantity
	GapReasonInvalidQuantity GapReason = "invalid_quantity"
)

// MaxResolvedQuantity is the largest hardware quantity a single requirement may resolve to
const MaxResolvedQuantity = 1_000_000

// HardwareLine is one priced hardware requirement
type HardwareLine struct {
	RequirementID    uuid.UUID         `json:"requirement_id"`
	HardwareType     string            `json:"hardware_type"`
	UnitScope        catalog.UnitScope `json:"unit_scope"`
	UnitsPerScope    int               `json:"units_per_scope"`
	Multiplier       int               `json:"multiplier"`
	OrderQuantity    int               `json:"order_quantity"`
	ResolvedQuantity int               `json:"resolved_quantity"`
	OptionID         uuid.UUID         `json:"option_id"`
	BrandName        string            `json:"brand_name"`
	ProductName      string            `json:"product_name"`
	UnitCost         decimal.Decimal   `json:"unit_cost"`
	Cost             decimal.Decimal   `json:"cost"`
	ScopeDefaulted   bool              `json:"scope_defaulted,omitempty"`
}

// HardwareGap is a requirement that contributed nothing because no option was resolved
type HardwareGap struct {
	RequirementID    uuid.UUID `json:"requirement_id"`
	HardwareType     string    `json:"hardware_type"`
	ResolvedQuantity int       `json:"resolved_quantity"`
	Reason           GapReason `json:"reason"`
}

// Message renders the gap for operators
func (g HardwareGap) Message() string {
	return fmt.Sprintf("%s x%d not priced: %s", g.HardwareType, g.ResolvedQuantity, g.Reason)
}

// HardwareCost is the result of a hardware calculation
type HardwareCost struct {
	Total decimal.Decimal `json:"total"`
	Lines []HardwareLine  `json:"lines"`
	Gaps  []HardwareGap   `json:"gaps"`
}

// HasGaps reports whether any requirement went unpriced
func (h HardwareCost) HasGaps() bool {
	return len(h.Gaps) > 0
}

// ScopeMultiplier returns the multiplier for a unit scope.
// The second return value is false when the scope is unknown and the per-cabinet multiplier was used.
func ScopeMultiplier(ct *catalog.CabinetType, scope catalog.UnitScope) (int, bool) {
	switch scope {
	case catalog.UnitScopePerCabinet:
		return 1, true
	case catalog.UnitScopePerDoor:
		if ct == nil {
			return 0, true
		}
		return ct.DoorCount, true
	case catalog.UnitScopePerDrawer:
		if ct == nil {
			return 0, true
		}
		return ct.DrawerCount, true
	default:
		return 1, false
	}
}

// ResolveQuantity returns units × scope multiplier × order quantity.
// A negative factor or a product above MaxResolvedQuantity resolves to 0.
func ResolveQuantity(ct *catalog.CabinetType, req *catalog.HardwareRequirement, orderQuantity int) (int, bool) {
	multiplier, known := ScopeMultiplier(ct, req.UnitScope)
	resolved, ok := resolveQuantity(req.UnitsPerScope, multiplier, orderQuantity)
	if !ok {
		return 0, known
	}
	return resolved, known
}

// resolveQuantity multiplies in decimal so large factors cannot wrap
func resolveQuantity(units, multiplier, orderQuantity int) (int, bool) {
	if units < 0 || multiplier < 0 || orderQuantity < 0 {
		return 0, false
	}
	product := decimal.NewFromInt(int64(units)).
		Mul(decimal.NewFromInt(int64(multiplier))).
		Mul(decimal.NewFromInt(int64(orderQuantity)))
	if product.GreaterThan(decimal.NewFromInt(MaxResolvedQuantity)) {
		return 0, false
	}
	return int(product.IntPart()), true
}

// CalculateHardwareCost prices every requirement through the selector.
// Requirements without a resolved option, or with an invalid quantity, add nothing to the
// total and are reported as gaps.
func CalculateHardwareCost(
	ct *catalog.CabinetType,
	requirements []catalog.HardwareRequirement,
	selector HardwareSelector,
	orderQuantity int,
) HardwareCost {
	if orderQuantity < 0 {
		orderQuantity = 0
	}
	result := HardwareCost{
		Total: decimal.Zero,
		Lines: make([]HardwareLine, 0, len(requirements)),
		Gaps:  make([]HardwareGap, 0),
	}

	for i := range requirements {
		req := &requirements[i]
		multiplier, known := ScopeMultiplier(ct, req.UnitScope)
		resolved, ok := resolveQuantity(req.UnitsPerScope, multiplier, orderQuantity)
		if !ok {
			result.Gaps = append(result.Gaps, HardwareGap{
				RequirementID: req.ID,
				HardwareType:  req.HardwareType,
				Reason:        GapReasonInvalidQuantity,
			})
			continue
		}

		var opt *catalog.HardwareOption
		reason := GapReasonNoSelection
		if selector != nil {
			opt, reason = selector.Select(req)
		}
		if opt == nil {
			result.Gaps = append(result.Gaps, HardwareGap{
				RequirementID:    req.ID,
				HardwareType:     req.HardwareType,
				ResolvedQuantity: resolved,
				Reason:           reason,
			})
			continue
		}

		unitCost := nonNegative(opt.UnitCost)
		cost := unitCost.Mul(decimal.NewFromInt(int64(resolved)))
		result.Lines = append(result.Lines, HardwareLine{
			RequirementID:    req.ID,
			HardwareType:     req.HardwareType,
			UnitScope:        req.UnitScope,
			UnitsPerScope:    req.UnitsPerScope,
			Multiplier:       multiplier,
			OrderQuantity:    orderQuantity,
			ResolvedQuantity: resolved,
			OptionID:         opt.ID,
			BrandName:        opt.BrandName,
			ProductName:      opt.ProductName,
			UnitCost:         unitCost,
			Cost:             cost,
			ScopeDefaulted:   !known,
		})
		result.Total = result.Total.Add(cost)
	}
	return result
}
