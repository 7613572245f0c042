package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidationResult(t *testing.T) {
	t.Run("new result is valid and empty", func(t *testing.T) {
		r := NewValidationResult()
		assert.True(t, r.IsValid)
		assert.Empty(t, r.Errors)
		assert.Empty(t, r.Warnings)
	})

	t.Run("warnings do not invalidate", func(t *testing.T) {
		r := NewValidationResult()
		r.AddWarning("color_id", "COLOR_NOT_SELECTED", "No color selected")
		assert.True(t, r.IsValid)
		assert.True(t, r.HasWarningCode("COLOR_NOT_SELECTED"))
	})

	t.Run("errors invalidate", func(t *testing.T) {
		r := NewValidationResult()
		r.AddError("quantity", "QUANTITY_TOO_LOW", "Quantity must be at least 1")
		assert.False(t, r.IsValid)
		assert.True(t, r.HasErrorCode("QUANTITY_TOO_LOW"))
		assert.Equal(t, ValidationSeverityError, r.Errors[0].Severity)
		assert.False(t, r.HasErrorCode("WIDTH_OUT_OF_RANGE"))
	})
}

func TestStrategyType(t *testing.T) {
	assert.True(t, StrategyTypeHardwareSelection.IsValid())
	assert.True(t, StrategyTypeValidation.IsValid())
	assert.False(t, StrategyType("pricing").IsValid())
	assert.Equal(t, "hardware_selection", StrategyTypeHardwareSelection.String())
}
