package pricing

import (
	"math"

	"github.com/shopspring/decimal"
)

var mmPerMetre = decimal.NewFromInt(1000)

// SafeDecimal converts a float to a decimal, mapping NaN and ±Inf to zero.
// decimal.NewFromFloat panics on those values, so every float entry point goes through here.
func SafeDecimal(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// SafeDecimalPtr is SafeDecimal for optional values; nil becomes zero
func SafeDecimalPtr(f *float64) decimal.Decimal {
	if f == nil {
		return decimal.Zero
	}
	return SafeDecimal(*f)
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

func toMetres(mm decimal.Decimal) decimal.Decimal {
	return nonNegative(mm).Div(mmPerMetre)
}
