package catalog

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DoorStyleFinish is a door style with its base rate and, optionally, the selected finish.
// Rates are per square metre.
type DoorStyleFinish struct {
	DoorStyleID   uuid.UUID        `json:"door_style_id"`
	DoorStyleName string           `json:"door_style_name"`
	BaseRate      decimal.Decimal  `json:"base_rate"`
	FinishID      *uuid.UUID       `json:"finish_id,omitempty"`
	FinishName    string           `json:"finish_name,omitempty"`
	FinishRate    *decimal.Decimal `json:"finish_rate,omitempty"`
}

// EffectiveFinishRate returns the finish rate, zero when no finish carries one
func (d *DoorStyleFinish) EffectiveFinishRate() decimal.Decimal {
	if d == nil || d.FinishRate == nil {
		return decimal.Zero
	}
	return *d.FinishRate
}

// Color is a door color belonging to exactly one door style
type Color struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	Swatch        string          `json:"swatch,omitempty"`
	SurchargeRate decimal.Decimal `json:"surcharge_rate"`
	DoorStyleID   uuid.UUID       `json:"door_style_id"`
}

// BelongsTo reports whether the color is offered for the given door style
func (c *Color) BelongsTo(doorStyleID uuid.UUID) bool {
	return c != nil && c.DoorStyleID == doorStyleID
}
