package configuration

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ClearableField names an optional field a clone may reset to unset
type ClearableField string

const (
	ClearCorner             ClearableField = "corner"
	ClearDoorStyle          ClearableField = "door_style"
	ClearColor              ClearableField = "color"
	ClearFinish             ClearableField = "finish"
	ClearHardwareBrand      ClearableField = "hardware_brand"
	ClearHardwareSelections ClearableField = "hardware_selections"
	ClearProduct            ClearableField = "product"
	ClearVariant            ClearableField = "variant"
	ClearSelectedOptions    ClearableField = "selected_options"
)

// Overrides lists the fields a clone may replace. Nil fields keep the base value.
// Fields named in Clear are unset after replacements are applied.
type Overrides struct {
	CabinetTypeID      *uuid.UUID
	Width              *decimal.Decimal
	Height             *decimal.Decimal
	Depth              *decimal.Decimal
	Corner             *CornerDimensions
	Quantity           *int
	DoorStyleID        *uuid.UUID
	ColorID            *uuid.UUID
	FinishID           *uuid.UUID
	HardwareBrandID    *uuid.UUID
	HardwareSelections map[uuid.UUID]uuid.UUID
	ProductID          *uuid.UUID
	VariantID          *uuid.UUID
	SelectedOptions    map[string]string
	Clear              []ClearableField
}

// Clone returns a copy of base with the overrides applied and UpdatedAt refreshed.
// Base is never mutated and the clone shares no maps with base or overrides.
func Clone(base *CabinetConfiguration, o Overrides) *CabinetConfiguration {
	out := base.Copy()
	if out == nil {
		return nil
	}
	if o.CabinetTypeID != nil {
		out.CabinetTypeID = *o.CabinetTypeID
	}
	if o.Width != nil {
		out.Width = *o.Width
	}
	if o.Height != nil {
		out.Height = *o.Height
	}
	if o.Depth != nil {
		out.Depth = *o.Depth
	}
	if o.Corner != nil {
		corner := *o.Corner
		out.Corner = &corner
	}
	if o.Quantity != nil {
		out.Quantity = *o.Quantity
	}
	if o.DoorStyleID != nil {
		out.DoorStyleID = copyID(o.DoorStyleID)
	}
	if o.ColorID != nil {
		out.ColorID = copyID(o.ColorID)
	}
	if o.FinishID != nil {
		out.FinishID = copyID(o.FinishID)
	}
	if o.HardwareBrandID != nil {
		out.HardwareBrandID = copyID(o.HardwareBrandID)
	}
	if o.HardwareSelections != nil {
		out.HardwareSelections = copySelections(o.HardwareSelections)
	}
	if o.ProductID != nil {
		out.ProductID = copyID(o.ProductID)
	}
	if o.VariantID != nil {
		out.VariantID = copyID(o.VariantID)
	}
	if o.SelectedOptions != nil {
		out.SelectedOptions = copyOptions(o.SelectedOptions)
	}
	for _, f := range o.Clear {
		out.clear(f)
	}
	out.touch()
	return out
}

func (c *CabinetConfiguration) clear(f ClearableField) {
	switch f {
	case ClearCorner:
		c.Corner = nil
	case ClearDoorStyle:
		c.DoorStyleID = nil
	case ClearColor:
		c.ColorID = nil
	case ClearFinish:
		c.FinishID = nil
	case ClearHardwareBrand:
		c.HardwareBrandID = nil
	case ClearHardwareSelections:
		c.HardwareSelections = nil
	case ClearProduct:
		c.ProductID = nil
	case ClearVariant:
		c.VariantID = nil
	case ClearSelectedOptions:
		c.SelectedOptions = nil
	}
}
