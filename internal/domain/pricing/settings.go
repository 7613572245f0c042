package pricing

import (
	"strings"

	"github.com/cabinetry/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// Setting keys recognised in the global settings table.
// Lookups ignore case and separators, so "gstRate" and "GST_RATE" both match.
const (
	SettingKeyMaterialRate = "material_rate"
	SettingKeyGSTRate      = "gst_rate"
)

var (
	// DefaultMaterialRate is the carcass material rate per m² used when none is configured
	DefaultMaterialRate = decimal.NewFromInt(85)
	// DefaultGSTRate is the GST fraction used when none is configured
	DefaultGSTRate = decimal.RequireFromString("0.10")

	hundred = decimal.NewFromInt(100)
)

// Settings holds the parsed global pricing rates
type Settings struct {
	MaterialRate decimal.Decimal `json:"material_rate"`
	GSTRate      decimal.Decimal `json:"gst_rate"`
}

// DefaultSettings returns settings with every rate at its fallback value
func DefaultSettings() Settings {
	return Settings{
		MaterialRate: DefaultMaterialRate,
		GSTRate:      DefaultGSTRate,
	}
}

// ResolveSettings parses raw setting rows into Settings.
// Unknown keys are ignored; missing, malformed or negative values keep the default.
// When a key repeats, the last valid row wins.
func ResolveSettings(rows []catalog.SettingRow) Settings {
	s := DefaultSettings()
	for _, row := range rows {
		switch normalizeSettingKey(row.Key) {
		case normalizeSettingKey(SettingKeyMaterialRate):
			if v, _, ok := parseRate(row.Value); ok {
				s.MaterialRate = v
			}
		case normalizeSettingKey(SettingKeyGSTRate):
			if v, percent, ok := parseRate(row.Value); ok {
				if !percent {
					v = normalizeGST(v)
				}
				s.GSTRate = v
			}
		}
	}
	return s
}

func normalizeSettingKey(key string) string {
	key = strings.ToLower(strings.TrimSpace(key))
	return strings.NewReplacer("_", "", "-", "", " ", "").Replace(key)
}

// parseRate accepts plain decimals and percentages ("10%").
// percent reports whether the value was already divided by 100.
func parseRate(raw string) (v decimal.Decimal, percent bool, ok bool) {
	raw = strings.TrimSpace(raw)
	percent = strings.HasSuffix(raw, "%")
	if percent {
		raw = strings.TrimSpace(strings.TrimSuffix(raw, "%"))
	}
	if raw == "" {
		return decimal.Zero, false, false
	}
	v, err := decimal.NewFromString(raw)
	if err != nil || v.IsNegative() {
		return decimal.Zero, false, false
	}
	if percent {
		v = v.Div(hundred)
	}
	return v, percent, true
}

// normalizeGST reads plain values above 1 as a percentage (10 -> 0.10)
func normalizeGST(v decimal.Decimal) decimal.Decimal {
	if v.GreaterThan(decimal.NewFromInt(1)) {
		return v.Div(hundred)
	}
	return v
}
