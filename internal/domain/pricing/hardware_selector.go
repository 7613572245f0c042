package pricing

import (
	"github.com/cabinetry/backend/internal/domain/catalog"
	"github.com/cabinetry/backend/internal/domain/shared/strategy"
	"github.com/google/uuid"
)

// Selector names
const (
	SelectorBrand    = "brand"
	SelectorExplicit = "explicit"
)

// HardwareSelector picks the option that satisfies a hardware requirement.
// When no option applies it returns nil and the gap reason.
type HardwareSelector interface {
	strategy.Strategy
	Select(req *catalog.HardwareRequirement) (*catalog.HardwareOption, GapReason)
}

// BrandSelector applies one brand uniformly across all requirements.
// When a requirement lists several products of the brand, the first listed option wins,
// so an explicit selection matches brand pricing only when it picks that same option.
type BrandSelector struct {
	strategy.BaseStrategy
	brandID uuid.UUID
}

// NewBrandSelector creates a selector that picks each requirement's option of the given brand
func NewBrandSelector(brandID uuid.UUID) *BrandSelector {
	return &BrandSelector{
		BaseStrategy: strategy.NewBaseStrategy(
			SelectorBrand,
			strategy.StrategyTypeHardwareSelection,
			"Selects the option of a single brand for every hardware requirement",
		),
		brandID: brandID,
	}
}

// BrandID returns the selected brand
func (s *BrandSelector) BrandID() uuid.UUID {
	return s.brandID
}

// Select implements HardwareSelector
func (s *BrandSelector) Select(req *catalog.HardwareRequirement) (*catalog.HardwareOption, GapReason) {
	if s.brandID == uuid.Nil {
		return nil, GapReasonNoSelection
	}
	if opt, ok := req.OptionForBrand(s.brandID); ok {
		return opt, ""
	}
	return nil, GapReasonNoBrandOption
}

// ExplicitSelector uses a per-requirement option choice
type ExplicitSelector struct {
	strategy.BaseStrategy
	selections map[uuid.UUID]uuid.UUID
}

// NewExplicitSelector creates a selector from a requirement ID -> option ID map.
// The map is copied.
func NewExplicitSelector(selections map[uuid.UUID]uuid.UUID) *ExplicitSelector {
	copied := make(map[uuid.UUID]uuid.UUID, len(selections))
	for k, v := range selections {
		copied[k] = v
	}
	return &ExplicitSelector{
		BaseStrategy: strategy.NewBaseStrategy(
			SelectorExplicit,
			strategy.StrategyTypeHardwareSelection,
			"Selects a user-chosen option per hardware requirement",
		),
		selections: copied,
	}
}

// Select implements HardwareSelector
func (s *ExplicitSelector) Select(req *catalog.HardwareRequirement) (*catalog.HardwareOption, GapReason) {
	optionID, ok := s.selections[req.ID]
	if !ok {
		return nil, GapReasonNoSelection
	}
	if opt, ok := req.OptionByID(optionID); ok {
		return opt, ""
	}
	return nil, GapReasonOptionNotFound
}
