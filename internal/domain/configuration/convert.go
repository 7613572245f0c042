package configuration

import (
	"github.com/cabinetry/backend/internal/domain/catalog"
	"github.com/cabinetry/backend/internal/domain/pricing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Well-known keys of a product payload's option map
const (
	OptionDoorStyle     = "door_style"
	OptionColor         = "color"
	OptionFinish        = "finish"
	OptionHardwareBrand = "hardware_brand"
)

// CornerPayload is the corner leg shape shared by legacy and product payloads
type CornerPayload struct {
	LeftWidth  *float64 `json:"leftWidth,omitempty"`
	RightWidth *float64 `json:"rightWidth,omitempty"`
	LeftDepth  *float64 `json:"leftDepth,omitempty"`
	RightDepth *float64 `json:"rightDepth,omitempty"`
}

// LegacyPayload is the configuration shape produced by the legacy configurator.
// Every field is optional.
type LegacyPayload struct {
	CabinetTypeID      *string           `json:"cabinetTypeId,omitempty"`
	Width              *float64          `json:"width,omitempty"`
	Height             *float64          `json:"height,omitempty"`
	Depth              *float64          `json:"depth,omitempty"`
	Quantity           *int              `json:"quantity,omitempty"`
	DoorStyleID        *string           `json:"doorStyleId,omitempty"`
	ColorID            *string           `json:"colorId,omitempty"`
	FinishID           *string           `json:"finishId,omitempty"`
	HardwareBrandID    *string           `json:"hardwareBrandId,omitempty"`
	HardwareSelections map[string]string `json:"hardwareSelections,omitempty"`
	Corner             *CornerPayload    `json:"cornerConfiguration,omitempty"`
}

// ProductDimensions is the nested dimension block of a product payload
type ProductDimensions struct {
	Width  *float64       `json:"width,omitempty"`
	Height *float64       `json:"height,omitempty"`
	Depth  *float64       `json:"depth,omitempty"`
	Corner *CornerPayload `json:"corner,omitempty"`
}

// ProductPayload is the configuration shape produced by the product catalog flow.
// Door style, color, finish and hardware brand travel as selected options.
type ProductPayload struct {
	ProductID       *string            `json:"productId,omitempty"`
	VariantID       *string            `json:"variantId,omitempty"`
	CabinetTypeID   *string            `json:"cabinetTypeId,omitempty"`
	Dimensions      *ProductDimensions `json:"dimensions,omitempty"`
	Quantity        *int               `json:"quantity,omitempty"`
	SelectedOptions map[string]string  `json:"selectedOptions,omitempty"`
}

// ConvertLegacy maps a legacy payload onto the canonical configuration.
// Missing or malformed fields take the cabinet type's defaults; it never fails.
func ConvertLegacy(p LegacyPayload, ct *catalog.CabinetType) *CabinetConfiguration {
	cfg := NewDefault(ct)
	cfg.Source = SourceLegacy

	if id, ok := parseID(p.CabinetTypeID); ok {
		cfg.CabinetTypeID = id
	}
	cfg.Width = dimensionOr(p.Width, cfg.Width)
	cfg.Height = dimensionOr(p.Height, cfg.Height)
	cfg.Depth = dimensionOr(p.Depth, cfg.Depth)
	cfg.Quantity = quantityOr(p.Quantity, cfg.Quantity)
	cfg.DoorStyleID = optionalID(p.DoorStyleID)
	cfg.ColorID = optionalID(p.ColorID)
	cfg.FinishID = optionalID(p.FinishID)
	cfg.HardwareBrandID = optionalID(p.HardwareBrandID)
	cfg.HardwareSelections = parseSelections(p.HardwareSelections)
	applyCorner(cfg, p.Corner)
	return cfg
}

// ConvertProduct maps a product catalog payload onto the canonical configuration.
// Missing or malformed fields take the cabinet type's defaults; it never fails.
func ConvertProduct(p ProductPayload, ct *catalog.CabinetType) *CabinetConfiguration {
	cfg := NewDefault(ct)
	cfg.Source = SourceProduct

	if id, ok := parseID(p.CabinetTypeID); ok {
		cfg.CabinetTypeID = id
	}
	cfg.ProductID = optionalID(p.ProductID)
	cfg.VariantID = optionalID(p.VariantID)
	if p.Dimensions != nil {
		cfg.Width = dimensionOr(p.Dimensions.Width, cfg.Width)
		cfg.Height = dimensionOr(p.Dimensions.Height, cfg.Height)
		cfg.Depth = dimensionOr(p.Dimensions.Depth, cfg.Depth)
		applyCorner(cfg, p.Dimensions.Corner)
	}
	cfg.Quantity = quantityOr(p.Quantity, cfg.Quantity)
	cfg.SelectedOptions = copyOptions(p.SelectedOptions)
	cfg.DoorStyleID = optionID(p.SelectedOptions, OptionDoorStyle)
	cfg.ColorID = optionID(p.SelectedOptions, OptionColor)
	cfg.FinishID = optionID(p.SelectedOptions, OptionFinish)
	cfg.HardwareBrandID = optionID(p.SelectedOptions, OptionHardwareBrand)
	return cfg
}

// Unify moves a legacy or product configuration to the unified state.
// The result is a new instance; a unified input is returned as an unchanged copy.
func Unify(cfg *CabinetConfiguration) *CabinetConfiguration {
	out := cfg.Copy()
	if out == nil || out.Source == SourceUnified {
		return out
	}
	out.Source = SourceUnified
	out.touch()
	return out
}

// ToLegacy renders a configuration in the legacy shape for legacy consumers
func ToLegacy(cfg *CabinetConfiguration) LegacyPayload {
	typeID := cfg.CabinetTypeID.String()
	qty := cfg.Quantity
	return LegacyPayload{
		CabinetTypeID:      &typeID,
		Width:              floatPtr(cfg.Width),
		Height:             floatPtr(cfg.Height),
		Depth:              floatPtr(cfg.Depth),
		Quantity:           &qty,
		DoorStyleID:        idString(cfg.DoorStyleID),
		ColorID:            idString(cfg.ColorID),
		FinishID:           idString(cfg.FinishID),
		HardwareBrandID:    idString(cfg.HardwareBrandID),
		HardwareSelections: formatSelections(cfg.HardwareSelections),
		Corner:             cornerPayload(cfg.Corner),
	}
}

// ToProduct renders a configuration in the product catalog shape
func ToProduct(cfg *CabinetConfiguration) ProductPayload {
	typeID := cfg.CabinetTypeID.String()
	qty := cfg.Quantity
	options := copyOptions(cfg.SelectedOptions)
	if options == nil {
		options = make(map[string]string)
	}
	for key, id := range map[string]*uuid.UUID{
		OptionDoorStyle:     cfg.DoorStyleID,
		OptionColor:         cfg.ColorID,
		OptionFinish:        cfg.FinishID,
		OptionHardwareBrand: cfg.HardwareBrandID,
	} {
		if id != nil {
			options[key] = id.String()
		} else {
			delete(options, key)
		}
	}
	return ProductPayload{
		ProductID:     idString(cfg.ProductID),
		VariantID:     idString(cfg.VariantID),
		CabinetTypeID: &typeID,
		Dimensions: &ProductDimensions{
			Width:  floatPtr(cfg.Width),
			Height: floatPtr(cfg.Height),
			Depth:  floatPtr(cfg.Depth),
			Corner: cornerPayload(cfg.Corner),
		},
		Quantity:        &qty,
		SelectedOptions: options,
	}
}

func applyCorner(cfg *CabinetConfiguration, p *CornerPayload) {
	if p == nil {
		return
	}
	if cfg.Corner == nil {
		cfg.Corner = &CornerDimensions{}
	}
	cfg.Corner.LeftWidth = dimensionOr(p.LeftWidth, cfg.Corner.LeftWidth)
	cfg.Corner.RightWidth = dimensionOr(p.RightWidth, cfg.Corner.RightWidth)
	cfg.Corner.LeftDepth = dimensionOr(p.LeftDepth, cfg.Corner.LeftDepth)
	cfg.Corner.RightDepth = dimensionOr(p.RightDepth, cfg.Corner.RightDepth)
}

func cornerPayload(c *CornerDimensions) *CornerPayload {
	if c == nil {
		return nil
	}
	return &CornerPayload{
		LeftWidth:  floatPtr(c.LeftWidth),
		RightWidth: floatPtr(c.RightWidth),
		LeftDepth:  floatPtr(c.LeftDepth),
		RightDepth: floatPtr(c.RightDepth),
	}
}

// dimensionOr keeps the fallback for missing, non-finite or non-positive values
func dimensionOr(v *float64, fallback decimal.Decimal) decimal.Decimal {
	if v == nil {
		return fallback
	}
	d := pricing.SafeDecimal(*v)
	if !d.IsPositive() {
		return fallback
	}
	return d
}

func quantityOr(v *int, fallback int) int {
	if v == nil || *v < 1 {
		return fallback
	}
	return *v
}

func parseID(s *string) (uuid.UUID, bool) {
	if s == nil {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(*s)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

func optionalID(s *string) *uuid.UUID {
	id, ok := parseID(s)
	if !ok {
		return nil
	}
	return &id
}

func optionID(options map[string]string, key string) *uuid.UUID {
	v, ok := options[key]
	if !ok {
		return nil
	}
	return optionalID(&v)
}

func parseSelections(raw map[string]string) map[uuid.UUID]uuid.UUID {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[uuid.UUID]uuid.UUID, len(raw))
	for k, v := range raw {
		reqID, errK := uuid.Parse(k)
		optID, errV := uuid.Parse(v)
		if errK != nil || errV != nil {
			continue
		}
		out[reqID] = optID
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func formatSelections(m map[uuid.UUID]uuid.UUID) map[string]string {
	if len(m) == 0 {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k.String()] = v.String()
	}
	return out
}

func idString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}

func floatPtr(d decimal.Decimal) *float64 {
	f, _ := d.Float64()
	return &f
}
