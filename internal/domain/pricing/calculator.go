package pricing

import (
	"fmt"

	"github.com/cabinetry/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// Warning codes reported in a breakdown
const (
	WarningColorStyleMismatch = "COLOR_STYLE_MISMATCH"
	WarningColorWithoutStyle  = "COLOR_WITHOUT_DOOR_STYLE"
	WarningHardwareGap        = "HARDWARE_GAP"
	WarningCabinetTypeMissing = "CABINET_TYPE_MISSING"
	WarningNegativeHardware   = "NEGATIVE_HARDWARE_COST"
)

// Warning is a non-blocking data gap found while pricing
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PriceInput carries everything a price calculation needs.
// All catalog records are supplied by the caller; the calculator performs no lookups.
type PriceInput struct {
	CabinetType  *catalog.CabinetType
	Width        decimal.Decimal
	Height       decimal.Decimal
	Depth        decimal.Decimal
	DoorStyle    *catalog.DoorStyleFinish
	Color        *catalog.Color
	Parts        []catalog.CabinetPart
	Settings     []catalog.SettingRow
	HardwareCost decimal.Decimal
	HardwareGaps []HardwareGap
}

// Breakdown itemises a price with the inputs of every line
type Breakdown struct {
	Settings  Settings        `json:"settings"`
	Material  MaterialCost    `json:"material"`
	Door      DoorCost        `json:"door"`
	Hardware  decimal.Decimal `json:"hardware"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	GSTRate   decimal.Decimal `json:"gst_rate"`
	GSTAmount decimal.Decimal `json:"gst_amount"`
	Total     decimal.Decimal `json:"total"`
	Warnings  []Warning       `json:"warnings"`
}

// Quote is the price together with its breakdown
type Quote struct {
	Price     decimal.Decimal `json:"price"`
	Breakdown Breakdown       `json:"breakdown"`
}

// HasWarnings reports whether the quote carries data-gap warnings
func (q Quote) HasWarnings() bool {
	return len(q.Breakdown.Warnings) > 0
}

// Calculator aggregates material, door and hardware costs into a GST-inclusive price.
// It holds no state; every call is independent.
type Calculator struct{}

// NewCalculator creates a new Calculator
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Calculate prices a cabinet and returns the price with its breakdown
func (c *Calculator) Calculate(in PriceInput) Quote {
	b := Breakdown{Warnings: make([]Warning, 0)}
	if in.CabinetType == nil {
		b.addWarning(WarningCabinetTypeMissing, "cabinet type not supplied, carcass fallbacks used and no doors priced")
	}

	b.Settings = ResolveSettings(in.Settings)
	b.Material = CalculateMaterialCost(MaterialInput{
		Width:      in.Width,
		Height:     in.Height,
		Depth:      in.Depth,
		Quantities: ResolvePartQuantities(in.CabinetType, in.Parts),
		Rate:       b.Settings.MaterialRate,
	})

	doorIn := DoorInput{
		Width:   in.Width,
		Height:  in.Height,
		DoorQty: in.CabinetType.EffectiveDoorQty(),
	}
	if in.DoorStyle != nil {
		doorIn.BaseRate = in.DoorStyle.BaseRate
		doorIn.FinishRate = in.DoorStyle.EffectiveFinishRate()
	}
	doorIn.ColorSurcharge = b.colorSurcharge(in.DoorStyle, in.Color)
	b.Door = CalculateDoorCost(doorIn)

	b.Hardware = in.HardwareCost
	if b.Hardware.IsNegative() {
		b.addWarning(WarningNegativeHardware, fmt.Sprintf("hardware cost %s treated as zero", b.Hardware))
		b.Hardware = decimal.Zero
	}
	for _, gap := range in.HardwareGaps {
		b.addWarning(WarningHardwareGap, gap.Message())
	}

	b.Subtotal = b.Material.Total.Add(b.Door.Total).Add(b.Hardware)
	b.GSTRate = b.Settings.GSTRate
	b.GSTAmount = b.Subtotal.Mul(b.GSTRate)
	b.Total = b.Subtotal.Add(b.GSTAmount)

	return Quote{Price: b.Total, Breakdown: b}
}

// colorSurcharge returns the color's surcharge when it belongs to the selected door style
func (b *Breakdown) colorSurcharge(style *catalog.DoorStyleFinish, color *catalog.Color) decimal.Decimal {
	if color == nil {
		return decimal.Zero
	}
	if style == nil {
		b.addWarning(WarningColorWithoutStyle, fmt.Sprintf("color %q selected without a door style, surcharge ignored", color.Name))
		return decimal.Zero
	}
	if !color.BelongsTo(style.DoorStyleID) {
		b.addWarning(WarningColorStyleMismatch, fmt.Sprintf("color %q does not belong to door style %q, surcharge ignored", color.Name, style.DoorStyleName))
		return decimal.Zero
	}
	return color.SurchargeRate
}

func (b *Breakdown) addWarning(code, message string) {
	b.Warnings = append(b.Warnings, Warning{Code: code, Message: message})
}

// CalculatePrice is the positional form of Calculator.Calculate returning only the total
func CalculatePrice(
	ct *catalog.CabinetType,
	width, height, depth decimal.Decimal,
	style *catalog.DoorStyleFinish,
	color *catalog.Color,
	parts []catalog.CabinetPart,
	settings []catalog.SettingRow,
	hardwareCost decimal.Decimal,
) decimal.Decimal {
	return NewCalculator().Calculate(PriceInput{
		CabinetType:  ct,
		Width:        width,
		Height:       height,
		Depth:        depth,
		DoorStyle:    style,
		Color:        color,
		Parts:        parts,
		Settings:     settings,
		HardwareCost: hardwareCost,
	}).Price
}
