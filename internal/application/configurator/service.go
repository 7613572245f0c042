package configurator

import (
	"context"
	"errors"
	"time"

	"github.com/cabinetry/backend/internal/application/configurator/dto"
	"github.com/cabinetry/backend/internal/domain/catalog"
	"github.com/cabinetry/backend/internal/domain/configuration"
	"github.com/cabinetry/backend/internal/domain/pricing"
	"github.com/cabinetry/backend/internal/domain/shared"
	"github.com/cabinetry/backend/internal/domain/shared/valueobject"
	"github.com/cabinetry/backend/internal/infrastructure/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// DisplayConfig controls how amounts are rendered for people
type DisplayConfig struct {
	Currency valueobject.Currency
	Locale   language.Tag
	Places   int32
}

// DefaultDisplayConfig renders AUD with two places in Australian English
func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		Currency: valueobject.DefaultCurrency,
		Locale:   language.MustParse("en-AU"),
		Places:   2,
	}
}

// Service is the application entry point of the configurator: quotes, hardware pricing,
// configuration reconciliation and template persistence.
type Service struct {
	settingRepo  catalog.SettingRepository
	templateRepo configuration.TemplateRepository
	cache        configuration.TemplateCache
	cacheTTL     time.Duration
	calculator   *pricing.Calculator
	display      DisplayConfig
	metrics      Metrics
	log          *zap.Logger
}

// NewService creates a new configurator service. cache may be nil.
func NewService(
	settingRepo catalog.SettingRepository,
	templateRepo configuration.TemplateRepository,
	cache configuration.TemplateCache,
	cacheTTL time.Duration,
	display DisplayConfig,
	log *zap.Logger,
) *Service {
	return &Service{
		settingRepo:  settingRepo,
		templateRepo: templateRepo,
		cache:        cache,
		cacheTTL:     cacheTTL,
		calculator:   pricing.NewCalculator(),
		display:      display,
		metrics:      nopMetrics{},
		log:          logger.OrNop(log),
	}
}

// WithMetrics sets the recorder for quote and template activity
func (s *Service) WithMetrics(m Metrics) *Service {
	if m != nil {
		s.metrics = m
	}
	return s
}

// Quote prices one cabinet and returns the price together with its breakdown
func (s *Service) Quote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResponse, error) {
	if req.CabinetType == nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "cabinet_type is required")
	}
	ct := req.CabinetType.ToDomain()
	width, height, depth := req.Dimensions()

	settings, err := s.settingsFor(ctx, dto.SettingsToDomain(req.Settings))
	if err != nil {
		return nil, err
	}

	in := pricing.PriceInput{
		CabinetType: ct,
		Width:       width,
		Height:      height,
		Depth:       depth,
		DoorStyle:   req.DoorStyle.ToDomain(),
		Color:       req.Color.ToDomain(),
		Parts:       dto.PartsToDomain(req.Parts),
		Settings:    settings,
	}

	var hardware *pricing.HardwareCost
	if req.Hardware != nil {
		hc := s.priceHardware(ctx, ct, *req.Hardware)
		hardware = &hc
		in.HardwareCost = hc.Total
		in.HardwareGaps = hc.Gaps
	} else if req.HardwareCost != nil {
		in.HardwareCost = pricing.SafeDecimal(*req.HardwareCost)
	}

	quote := s.calculator.Calculate(in)
	for _, w := range quote.Breakdown.Warnings {
		s.logFor(ctx).Warn("Quote data gap",
			zap.String("cabinet_type_id", ct.ID.String()),
			zap.String("code", w.Code),
			zap.String("message", w.Message))
	}

	s.metrics.QuoteCalculated(ctx, quote.Price, len(quote.Breakdown.Warnings))
	s.logFor(ctx).Info("Quote calculated",
		zap.String("cabinet_type_id", ct.ID.String()),
		zap.String("price", quote.Price.String()),
		zap.Int("warnings", len(quote.Breakdown.Warnings)))

	return &dto.QuoteResponse{
		Price:     quote.Price,
		Currency:  string(s.display.Currency),
		Display:   s.format(quote.Price),
		Breakdown: quote.Breakdown,
		Hardware:  hardware,
	}, nil
}

// PriceHardware prices hardware requirements on their own
func (s *Service) PriceHardware(ctx context.Context, req dto.HardwareRequest) (*dto.HardwareResponse, error) {
	if req.CabinetType == nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "cabinet_type is required")
	}
	hc := s.priceHardware(ctx, req.CabinetType.ToDomain(), req.Hardware)
	return &dto.HardwareResponse{
		HardwareCost: hc,
		Currency:     string(s.display.Currency),
		Display:      s.format(hc.Total),
	}, nil
}

func (s *Service) priceHardware(ctx context.Context, ct *catalog.CabinetType, req dto.HardwareSelectionRequest) pricing.HardwareCost {
	reqs := dto.RequirementsToDomain(ct.ID, req.Requirements)
	hc := pricing.CalculateHardwareCost(ct, reqs, req.Selector(), req.Quantity())
	for _, gap := range hc.Gaps {
		s.logFor(ctx).Warn("Hardware requirement not priced",
			zap.String("cabinet_type_id", ct.ID.String()),
			zap.String("requirement_id", gap.RequirementID.String()),
			zap.String("hardware_type", gap.HardwareType),
			zap.String("reason", string(gap.Reason)))
	}
	s.metrics.HardwareGaps(ctx, len(hc.Gaps))
	return hc
}

// settingsFor returns the rows to price with: the request's when supplied, else the stored rows.
// An unreadable store degrades to the built-in defaults.
func (s *Service) settingsFor(ctx context.Context, rows []catalog.SettingRow) ([]catalog.SettingRow, error) {
	if rows != nil || s.settingRepo == nil {
		return rows, nil
	}
	stored, err := s.settingRepo.FindAll(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		s.logFor(ctx).Warn("Failed to load global settings, using defaults", zap.Error(err))
		return nil, nil
	}
	return stored, nil
}

// Settings returns the stored settings and the rates they resolve to
func (s *Service) Settings(ctx context.Context) (*dto.SettingsResponse, error) {
	rows, err := s.settingsFor(ctx, nil)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SettingRequest, len(rows))
	for i, r := range rows {
		out[i] = dto.SettingRequest{Key: r.Key, Value: r.Value}
	}
	return &dto.SettingsResponse{Rows: out, Resolved: pricing.ResolveSettings(rows)}, nil
}

func (s *Service) format(amount decimal.Decimal) string {
	m, err := valueobject.NewMoney(amount, s.display.Currency)
	if err != nil {
		m = valueobject.NewMoneyDefault(amount)
	}
	return m.Display(s.display.Locale, s.display.Places)
}

// DefaultConfiguration builds the default configuration of a cabinet type
func (s *Service) DefaultConfiguration(req dto.DefaultConfigurationRequest) *dto.ConfigurationResponse {
	ct := req.CabinetType.ToDomain()
	cfg := configuration.NewDefault(ct)
	result := configuration.Validate(cfg, ct)
	return &dto.ConfigurationResponse{Configuration: cfg, Validation: &result}
}

// ValidateConfiguration checks a configuration; a missing cabinet type is itself reported
func (s *Service) ValidateConfiguration(req dto.ValidateConfigurationRequest) *dto.ConfigurationResponse {
	result := configuration.Validate(req.Configuration, req.CabinetType.ToDomain())
	return &dto.ConfigurationResponse{Configuration: req.Configuration, Validation: &result}
}

// ConvertLegacy maps a legacy payload to the canonical configuration
func (s *Service) ConvertLegacy(req dto.ConvertLegacyRequest) *dto.ConfigurationResponse {
	ct := req.CabinetType.ToDomain()
	return s.converted(configuration.ConvertLegacy(req.Payload, ct), ct, req.Unify)
}

// ConvertProduct maps a product catalog payload to the canonical configuration
func (s *Service) ConvertProduct(req dto.ConvertProductRequest) *dto.ConfigurationResponse {
	ct := req.CabinetType.ToDomain()
	return s.converted(configuration.ConvertProduct(req.Payload, ct), ct, req.Unify)
}

func (s *Service) converted(cfg *configuration.CabinetConfiguration, ct *catalog.CabinetType, unify bool) *dto.ConfigurationResponse {
	if unify {
		cfg = configuration.Unify(cfg)
	}
	resp := &dto.ConfigurationResponse{Configuration: cfg}
	if ct != nil {
		result := configuration.Validate(cfg, ct)
		resp.Validation = &result
	}
	return resp
}

// Export renders a configuration in the legacy and product shapes
func (s *Service) Export(cfg *configuration.CabinetConfiguration) (*dto.ExportResponse, error) {
	if cfg == nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "configuration is required")
	}
	return &dto.ExportResponse{
		Legacy:  configuration.ToLegacy(cfg),
		Product: configuration.ToProduct(cfg),
	}, nil
}

// Compare lists the differences between two configurations
func (s *Service) Compare(req dto.CompareRequest) configuration.Comparison {
	return configuration.Compare(req.A, req.B)
}

// Clone copies a configuration with overrides applied
func (s *Service) Clone(req dto.CloneRequest) *configuration.CabinetConfiguration {
	return configuration.Clone(req.Base, req.Overrides.ToDomain())
}

// SaveTemplate stores a configuration as a template owned by userID (nil for a global template)
func (s *Service) SaveTemplate(ctx context.Context, userID *uuid.UUID, req dto.SaveTemplateRequest) (*dto.TemplateResponse, error) {
	tmpl, err := configuration.NewTemplate(userID, req.Name, req.Description, req.IsDefault, req.Configuration)
	if err != nil {
		return nil, err
	}
	if err := s.templateRepo.Save(ctx, tmpl); err != nil {
		s.logFor(ctx).Error("Failed to save template", zap.Error(err))
		return nil, err
	}
	s.invalidate(ctx, tmpl.CabinetTypeID)

	s.logFor(ctx).Info("Template saved",
		zap.String("template_id", tmpl.ID.String()),
		zap.String("cabinet_type_id", tmpl.CabinetTypeID.String()))

	resp := dto.ToTemplateResponse(tmpl)
	return &resp, nil
}

// LoadTemplates lists the templates of a cabinet type visible to userID, default first then by name
func (s *Service) LoadTemplates(ctx context.Context, cabinetTypeID uuid.UUID, userID *uuid.UUID) ([]dto.TemplateResponse, error) {
	if s.cache != nil {
		cached, ok, err := s.cache.Get(ctx, cabinetTypeID, userID)
		if err != nil {
			s.logFor(ctx).Warn("Template cache read failed", zap.Error(err))
		} else {
			s.metrics.TemplateCacheLookup(ctx, ok)
			if ok {
				return dto.ToTemplateResponses(cached), nil
			}
		}
	}

	templates, err := s.templateRepo.FindForCabinetType(ctx, cabinetTypeID, userID)
	if err != nil {
		s.logFor(ctx).Error("Failed to load templates", zap.Error(err))
		return nil, err
	}
	configuration.SortTemplates(templates)

	if s.cache != nil {
		if err := s.cache.Set(ctx, cabinetTypeID, userID, templates, s.cacheTTL); err != nil {
			s.logFor(ctx).Warn("Template cache write failed", zap.Error(err))
		}
	}
	return dto.ToTemplateResponses(templates), nil
}

// DeleteTemplate removes a template the caller may delete
func (s *Service) DeleteTemplate(ctx context.Context, id uuid.UUID, userID *uuid.UUID) error {
	tmpl, err := s.templateRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return shared.NewDomainError("NOT_FOUND", "Template not found")
		}
		return err
	}
	if err := s.templateRepo.Delete(ctx, id, userID); err != nil {
		return err
	}
	s.invalidate(ctx, tmpl.CabinetTypeID)

	s.logFor(ctx).Info("Template deleted", zap.String("template_id", id.String()))
	return nil
}

func (s *Service) invalidate(ctx context.Context, cabinetTypeID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateCabinetType(ctx, cabinetTypeID); err != nil {
		s.logFor(ctx).Warn("Template cache invalidation failed",
			zap.String("cabinet_type_id", cabinetTypeID.String()),
			zap.Error(err))
	}
}

// logFor returns the service logger with the request's correlation fields
func (s *Service) logFor(ctx context.Context) *zap.Logger {
	return logger.Enrich(ctx, s.log)
}
