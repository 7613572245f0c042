package configuration

import (
	"fmt"

	"github.com/cabinetry/backend/internal/domain/catalog"
	"github.com/cabinetry/backend/internal/domain/shared/strategy"
	"github.com/shopspring/decimal"
)

// Validation codes
const (
	CodeConfigurationMissing   = "CONFIGURATION_MISSING"
	CodeCabinetTypeMissing     = "CABINET_TYPE_MISSING"
	CodeCabinetTypeMismatch    = "CABINET_TYPE_MISMATCH"
	CodeDimensionOutOfRange    = "DIMENSION_OUT_OF_RANGE"
	CodeCornerDimensionMissing = "CORNER_DIMENSION_MISSING"
	CodeInvalidQuantity        = "INVALID_QUANTITY"

	CodeNoDoorStyle         = "NO_DOOR_STYLE"
	CodeNoColor             = "NO_COLOR"
	CodeNoHardwareSelection = "NO_HARDWARE_SELECTION"
	CodeFinishWithoutStyle  = "FINISH_WITHOUT_DOOR_STYLE"
)

// Validator checks a configuration against its cabinet type.
// It never corrects values.
type Validator struct {
	strategy.BaseStrategy
}

// NewValidator creates a new Validator
func NewValidator() *Validator {
	return &Validator{
		BaseStrategy: strategy.NewBaseStrategy(
			"cabinet_configuration",
			strategy.StrategyTypeValidation,
			"Checks cabinet dimensions, corner legs, quantity and selection completeness",
		),
	}
}

// Validate checks the configuration with the default validator
func Validate(cfg *CabinetConfiguration, ct *catalog.CabinetType) strategy.ValidationResult {
	return NewValidator().Validate(cfg, ct)
}

// Validate returns hard errors for range and quantity problems and warnings for incomplete selections
func (v *Validator) Validate(cfg *CabinetConfiguration, ct *catalog.CabinetType) strategy.ValidationResult {
	result := strategy.NewValidationResult()
	if cfg == nil {
		result.AddError("configuration", CodeConfigurationMissing, "configuration is required")
		return result
	}
	if ct == nil {
		result.AddError("cabinet_type_id", CodeCabinetTypeMissing, "cabinet type is required")
		return result
	}
	if cfg.CabinetTypeID != ct.ID {
		result.AddError("cabinet_type_id", CodeCabinetTypeMismatch,
			fmt.Sprintf("configuration is for cabinet type %s, not %s", cfg.CabinetTypeID, ct.ID))
	}

	if ct.IsCorner() {
		v.validateCorner(&result, cfg)
		checkRange(&result, "height", cfg.Height, ct.Height)
	} else {
		checkRange(&result, "width", cfg.Width, ct.Width)
		checkRange(&result, "height", cfg.Height, ct.Height)
		checkRange(&result, "depth", cfg.Depth, ct.Depth)
	}

	if cfg.Quantity < 1 {
		result.AddError("quantity", CodeInvalidQuantity, fmt.Sprintf("quantity must be at least 1, got %d", cfg.Quantity))
	}

	if cfg.DoorStyleID == nil {
		result.AddWarning("door_style_id", CodeNoDoorStyle, "no door style selected")
		if cfg.FinishID != nil {
			result.AddWarning("finish_id", CodeFinishWithoutStyle, "finish selected without a door style")
		}
	}
	if cfg.ColorID == nil {
		result.AddWarning("color_id", CodeNoColor, "no color selected")
	}
	if !cfg.HasHardwareSelection() {
		result.AddWarning("hardware_brand_id", CodeNoHardwareSelection, "no hardware brand or hardware selections")
	}
	return result
}

func (v *Validator) validateCorner(result *strategy.ValidationResult, cfg *CabinetConfiguration) {
	if cfg.Corner == nil {
		result.AddError("corner", CodeCornerDimensionMissing, "corner cabinets require left and right width and depth")
		return
	}
	for _, leg := range []struct {
		field string
		value decimal.Decimal
	}{
		{"corner.left_width", cfg.Corner.LeftWidth},
		{"corner.right_width", cfg.Corner.RightWidth},
		{"corner.left_depth", cfg.Corner.LeftDepth},
		{"corner.right_depth", cfg.Corner.RightDepth},
	} {
		if !leg.value.IsPositive() {
			result.AddError(leg.field, CodeCornerDimensionMissing, leg.field+" is required")
		}
	}
}

func checkRange(result *strategy.ValidationResult, field string, value decimal.Decimal, r catalog.DimensionRange) {
	if r.Contains(value) {
		return
	}
	if r.Max.IsPositive() {
		result.AddError(field, CodeDimensionOutOfRange,
			fmt.Sprintf("%s %s mm is outside %s-%s mm", field, value, r.Min, r.Max))
		return
	}
	result.AddError(field, CodeDimensionOutOfRange,
		fmt.Sprintf("%s %s mm is below minimum %s mm", field, value, r.Min))
}
