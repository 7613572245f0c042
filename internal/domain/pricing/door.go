package pricing

import "github.com/shopspring/decimal"

// DoorInput holds the inputs of a door facing calculation. Dimensions are in mm, rates per m².
type DoorInput struct {
	Width          decimal.Decimal
	Height         decimal.Decimal
	DoorQty        int
	BaseRate       decimal.Decimal
	FinishRate     decimal.Decimal
	ColorSurcharge decimal.Decimal
}

// DoorCost is the door facing cost breakdown
type DoorCost struct {
	WidthM         decimal.Decimal `json:"width_m"`
	HeightM        decimal.Decimal `json:"height_m"`
	DoorQty        int             `json:"door_qty"`
	BaseRate       decimal.Decimal `json:"base_rate"`
	FinishRate     decimal.Decimal `json:"finish_rate"`
	ColorSurcharge decimal.Decimal `json:"color_surcharge"`
	TotalRate      decimal.Decimal `json:"total_rate"`
	Total          decimal.Decimal `json:"total"`
}

// CalculateDoorCost prices door facings: w×h×door_qty×(base + finish + surcharge).
// A cabinet without doors costs nothing regardless of rates.
func CalculateDoorCost(in DoorInput) DoorCost {
	out := DoorCost{
		WidthM:         toMetres(in.Width),
		HeightM:        toMetres(in.Height),
		DoorQty:        in.DoorQty,
		BaseRate:       nonNegative(in.BaseRate),
		FinishRate:     nonNegative(in.FinishRate),
		ColorSurcharge: nonNegative(in.ColorSurcharge),
		Total:          decimal.Zero,
	}
	out.TotalRate = out.BaseRate.Add(out.FinishRate).Add(out.ColorSurcharge)
	if in.DoorQty <= 0 {
		out.DoorQty = 0
		return out
	}
	out.Total = out.WidthM.Mul(out.HeightM).Mul(decimal.NewFromInt(int64(in.DoorQty))).Mul(out.TotalRate)
	return out
}
