package configuration

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const noneLabel = "none"

// Comparison is the result of comparing two configurations
type Comparison struct {
	Identical   bool     `json:"identical"`
	Differences []string `json:"differences"`
}

// Compare diffs a against b field by field.
// Differences are ordered: cabinet type, dimensions, corner legs, door style, color, finish,
// hardware, quantity. Each reads "field: a → b".
func Compare(a, b *CabinetConfiguration) Comparison {
	d := differ{}
	if a == nil || b == nil {
		if a != b {
			d.add("configuration", presence(a != nil), presence(b != nil))
		}
		return d.result()
	}

	if a.CabinetTypeID != b.CabinetTypeID {
		d.add("cabinet type", a.CabinetTypeID.String(), b.CabinetTypeID.String())
	}
	d.decimal("width", a.Width, b.Width)
	d.decimal("height", a.Height, b.Height)
	d.decimal("depth", a.Depth, b.Depth)

	switch {
	case a.Corner == nil && b.Corner == nil:
	case a.Corner == nil || b.Corner == nil:
		d.add("corner dimensions", presence(a.Corner != nil), presence(b.Corner != nil))
	default:
		d.decimal("corner left width", a.Corner.LeftWidth, b.Corner.LeftWidth)
		d.decimal("corner right width", a.Corner.RightWidth, b.Corner.RightWidth)
		d.decimal("corner left depth", a.Corner.LeftDepth, b.Corner.LeftDepth)
		d.decimal("corner right depth", a.Corner.RightDepth, b.Corner.RightDepth)
	}

	d.id("door style", a.DoorStyleID, b.DoorStyleID)
	d.id("color", a.ColorID, b.ColorID)
	d.id("finish", a.FinishID, b.FinishID)
	d.id("hardware brand", a.HardwareBrandID, b.HardwareBrandID)
	if !sameSelections(a.HardwareSelections, b.HardwareSelections) {
		d.add("hardware selections",
			fmt.Sprintf("%d selected", len(a.HardwareSelections)),
			fmt.Sprintf("%d selected", len(b.HardwareSelections)))
	}

	if a.Quantity != b.Quantity {
		d.add("quantity", fmt.Sprint(a.Quantity), fmt.Sprint(b.Quantity))
	}
	return d.result()
}

type differ struct {
	differences []string
}

func (d *differ) add(field, from, to string) {
	d.differences = append(d.differences, fmt.Sprintf("%s: %s → %s", field, from, to))
}

func (d *differ) decimal(field string, a, b decimal.Decimal) {
	if !a.Equal(b) {
		d.add(field, a.String(), b.String())
	}
}

func (d *differ) id(field string, a, b *uuid.UUID) {
	switch {
	case a == nil && b == nil:
	case a == nil:
		d.add(field, noneLabel, b.String())
	case b == nil:
		d.add(field, a.String(), noneLabel)
	case *a != *b:
		d.add(field, a.String(), b.String())
	}
}

func (d *differ) result() Comparison {
	if d.differences == nil {
		d.differences = []string{}
	}
	return Comparison{
		Identical:   len(d.differences) == 0,
		Differences: d.differences,
	}
}

func presence(ok bool) string {
	if ok {
		return "set"
	}
	return noneLabel
}

func sameSelections(a, b map[uuid.UUID]uuid.UUID) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if bv, ok := b[k]; !ok || bv != v {
			return false
		}
	}
	return true
}
