package configuration

import (
	"testing"
	"time"

	"github.com/cabinetry/backend/internal/domain/catalog"
	"github.com/cabinetry/backend/internal/domain/pricing"
	"github.com/cabinetry/backend/internal/domain/shared/strategy"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func idPtr(id uuid.UUID) *uuid.UUID {
	return &id
}

// freezeClock pins now() and returns a function that advances it
func freezeClock(t *testing.T) func(time.Duration) {
	t.Helper()
	current := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	prev := now
	now = func() time.Time { return current }
	t.Cleanup(func() { now = prev })
	return func(d time.Duration) { current = current.Add(d) }
}

func standardType() *catalog.CabinetType {
	return &catalog.CabinetType{
		ID:        uuid.New(),
		Name:      "Base 600",
		Style:     catalog.CabinetStyleStandard,
		Width:     catalog.DimensionRange{Default: dec("600"), Min: dec("300"), Max: dec("1200")},
		Height:    catalog.DimensionRange{Default: dec("720"), Min: dec("500"), Max: dec("900")},
		Depth:     catalog.DimensionRange{Default: dec("560"), Min: dec("300"), Max: dec("650")},
		DoorCount: 2,
	}
}

func cornerType() *catalog.CabinetType {
	ct := standardType()
	ct.Name = "Corner 900"
	ct.Style = catalog.CabinetStyleCorner
	ct.Corner = &catalog.CornerDefaults{
		LeftWidth:  dec("900"),
		RightWidth: dec("900"),
		LeftDepth:  dec("560"),
		RightDepth: dec("560"),
	}
	return ct
}

func completeConfig(ct *catalog.CabinetType) *CabinetConfiguration {
	cfg := NewDefault(ct)
	cfg.DoorStyleID = idPtr(uuid.New())
	cfg.ColorID = idPtr(uuid.New())
	cfg.HardwareBrandID = idPtr(uuid.New())
	return cfg
}

func TestNewDefault(t *testing.T) {
	freezeClock(t)

	t.Run("standard cabinet", func(t *testing.T) {
		ct := standardType()
		cfg := NewDefault(ct)
		assert.Equal(t, ct.ID, cfg.CabinetTypeID)
		assert.True(t, cfg.Width.Equal(dec("600")))
		assert.True(t, cfg.Height.Equal(dec("720")))
		assert.True(t, cfg.Depth.Equal(dec("560")))
		assert.Equal(t, 1, cfg.Quantity)
		assert.Nil(t, cfg.Corner)
		assert.Equal(t, SourceUnified, cfg.Source)
		assert.Equal(t, cfg.CreatedAt, cfg.UpdatedAt)
	})

	t.Run("corner cabinet gets corner defaults", func(t *testing.T) {
		cfg := NewDefault(cornerType())
		require.NotNil(t, cfg.Corner)
		assert.True(t, cfg.Corner.LeftWidth.Equal(dec("900")))
		assert.True(t, cfg.Corner.RightDepth.Equal(dec("560")))
	})

	t.Run("nil type", func(t *testing.T) {
		cfg := NewDefault(nil)
		assert.Equal(t, uuid.Nil, cfg.CabinetTypeID)
		assert.Equal(t, 1, cfg.Quantity)
	})
}

func TestCabinetConfiguration_Copy(t *testing.T) {
	cfg := completeConfig(standardType())
	cfg.HardwareSelections = map[uuid.UUID]uuid.UUID{uuid.New(): uuid.New()}
	cfg.SelectedOptions = map[string]string{"handle": "bar"}

	cp := cfg.Copy()
	*cp.DoorStyleID = uuid.New()
	cp.SelectedOptions["handle"] = "knob"
	for k := range cp.HardwareSelections {
		cp.HardwareSelections[k] = uuid.New()
	}

	assert.NotEqual(t, *cfg.DoorStyleID, *cp.DoorStyleID)
	assert.Equal(t, "bar", cfg.SelectedOptions["handle"])
	assert.False(t, sameSelections(cfg.HardwareSelections, cp.HardwareSelections))
}

func TestCabinetConfiguration_HardwareSelector(t *testing.T) {
	cfg := NewDefault(standardType())
	assert.Nil(t, cfg.HardwareSelector())

	cfg.HardwareBrandID = idPtr(uuid.New())
	assert.Equal(t, pricing.SelectorBrand, cfg.HardwareSelector().Name())

	cfg.HardwareSelections = map[uuid.UUID]uuid.UUID{uuid.New(): uuid.New()}
	assert.Equal(t, pricing.SelectorExplicit, cfg.HardwareSelector().Name())
}

func TestValidate(t *testing.T) {
	t.Run("complete default configuration is valid without warnings", func(t *testing.T) {
		ct := standardType()
		res := Validate(completeConfig(ct), ct)
		assert.True(t, res.IsValid)
		assert.Empty(t, res.Errors)
		assert.Empty(t, res.Warnings)
	})

	t.Run("dimension bounds are inclusive", func(t *testing.T) {
		ct := standardType()
		cfg := completeConfig(ct)
		cfg.Width = dec("300")
		cfg.Height = dec("900")
		assert.True(t, Validate(cfg, ct).IsValid)
	})

	tests := []struct {
		name   string
		mutate func(*CabinetConfiguration)
		field  string
		code   string
	}{
		{"width below min", func(c *CabinetConfiguration) { c.Width = dec("299") }, "width", CodeDimensionOutOfRange},
		{"height above max", func(c *CabinetConfiguration) { c.Height = dec("901") }, "height", CodeDimensionOutOfRange},
		{"depth above max", func(c *CabinetConfiguration) { c.Depth = dec("700") }, "depth", CodeDimensionOutOfRange},
		{"zero quantity", func(c *CabinetConfiguration) { c.Quantity = 0 }, "quantity", CodeInvalidQuantity},
		{"negative quantity", func(c *CabinetConfiguration) { c.Quantity = -2 }, "quantity", CodeInvalidQuantity},
		{"other cabinet type", func(c *CabinetConfiguration) { c.CabinetTypeID = uuid.New() }, "cabinet_type_id", CodeCabinetTypeMismatch},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ct := standardType()
			cfg := completeConfig(ct)
			tt.mutate(cfg)
			res := Validate(cfg, ct)
			assert.False(t, res.IsValid)
			require.Len(t, res.Errors, 1)
			assert.Equal(t, tt.field, res.Errors[0].Field)
			assert.Equal(t, tt.code, res.Errors[0].Code)
			assert.Equal(t, strategy.ValidationSeverityError, res.Errors[0].Severity)
		})
	}

	t.Run("does not correct values", func(t *testing.T) {
		ct := standardType()
		cfg := completeConfig(ct)
		cfg.Width = dec("5000")
		Validate(cfg, ct)
		assert.True(t, cfg.Width.Equal(dec("5000")))
	})

	t.Run("unbounded max", func(t *testing.T) {
		ct := standardType()
		ct.Width.Max = decimal.Zero
		cfg := completeConfig(ct)
		cfg.Width = dec("5000")
		assert.True(t, Validate(cfg, ct).IsValid)
	})

	t.Run("warnings do not block", func(t *testing.T) {
		ct := standardType()
		cfg := NewDefault(ct)
		cfg.FinishID = idPtr(uuid.New())
		res := Validate(cfg, ct)
		assert.True(t, res.IsValid)
		assert.True(t, res.HasWarningCode(CodeNoDoorStyle))
		assert.True(t, res.HasWarningCode(CodeNoColor))
		assert.True(t, res.HasWarningCode(CodeNoHardwareSelection))
		assert.True(t, res.HasWarningCode(CodeFinishWithoutStyle))
	})

	t.Run("explicit hardware selections satisfy hardware completeness", func(t *testing.T) {
		ct := standardType()
		cfg := completeConfig(ct)
		cfg.HardwareBrandID = nil
		cfg.HardwareSelections = map[uuid.UUID]uuid.UUID{uuid.New(): uuid.New()}
		assert.False(t, Validate(cfg, ct).HasWarningCode(CodeNoHardwareSelection))
	})

	t.Run("corner cabinet requires all four legs", func(t *testing.T) {
		ct := cornerType()
		cfg := completeConfig(ct)
		assert.True(t, Validate(cfg, ct).IsValid)

		cfg.Corner.RightDepth = decimal.Zero
		res := Validate(cfg, ct)
		assert.False(t, res.IsValid)
		require.Len(t, res.Errors, 1)
		assert.Equal(t, "corner.right_depth", res.Errors[0].Field)

		cfg.Corner = nil
		res = Validate(cfg, ct)
		assert.True(t, res.HasErrorCode(CodeCornerDimensionMissing))
	})

	t.Run("corner cabinet ignores width range", func(t *testing.T) {
		ct := cornerType()
		cfg := completeConfig(ct)
		cfg.Width = decimal.Zero
		assert.True(t, Validate(cfg, ct).IsValid)
	})

	t.Run("missing inputs", func(t *testing.T) {
		assert.True(t, Validate(nil, standardType()).HasErrorCode(CodeConfigurationMissing))
		assert.True(t, Validate(NewDefault(nil), nil).HasErrorCode(CodeCabinetTypeMissing))
	})

	t.Run("validator is a validation strategy", func(t *testing.T) {
		v := NewValidator()
		assert.Equal(t, strategy.StrategyTypeValidation, v.Type())
		assert.Equal(t, "cabinet_configuration", v.Name())
	})
}
