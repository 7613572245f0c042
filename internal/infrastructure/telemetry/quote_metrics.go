package telemetry

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// ErrMeterNil is returned when QuoteMetrics is built without a meter.
var ErrMeterNil = errors.New("telemetry: meter is nil")

// quotePriceBuckets cover single cabinets up to large joinery jobs, in currency units
var quotePriceBuckets = []float64{100, 250, 500, 1000, 2500, 5000, 10000, 25000}

// QuoteMetrics records pricing and template activity.
type QuoteMetrics struct {
	quotes       *Counter
	quotePrice   *Histogram
	hardwareGaps *Counter
	cacheLookups *Counter
}

// NewQuoteMetrics creates the pricing instruments on meter.
func NewQuoteMetrics(meter metric.Meter) (*QuoteMetrics, error) {
	if meter == nil {
		return nil, ErrMeterNil
	}
	var (
		qm  QuoteMetrics
		err error
	)
	if qm.quotes, err = NewCounter(meter, "cab_quotes_total", "Quotes calculated", "{quotes}"); err != nil {
		return nil, err
	}
	if qm.quotePrice, err = NewHistogram(meter, "cab_quote_price", "GST-inclusive quote price", "{currency}", quotePriceBuckets); err != nil {
		return nil, err
	}
	if qm.hardwareGaps, err = NewCounter(meter, "cab_hardware_gaps_total", "Hardware requirements left unpriced", "{requirements}"); err != nil {
		return nil, err
	}
	if qm.cacheLookups, err = NewCounter(meter, "cab_template_cache_lookups_total", "Template cache lookups", "{lookups}"); err != nil {
		return nil, err
	}
	return &qm, nil
}

// QuoteCalculated records one quote and its price.
func (m *QuoteMetrics) QuoteCalculated(ctx context.Context, price decimal.Decimal, warnings int) {
	attrs := attribute.Bool("has_warnings", warnings > 0)
	m.quotes.Inc(ctx, attrs)
	m.quotePrice.Record(ctx, price.InexactFloat64(), attrs)
}

// HardwareGaps records unpriced hardware requirements.
func (m *QuoteMetrics) HardwareGaps(ctx context.Context, gaps int) {
	if gaps <= 0 {
		return
	}
	m.hardwareGaps.Add(ctx, int64(gaps))
}

// TemplateCacheLookup records a template cache hit or miss.
func (m *QuoteMetrics) TemplateCacheLookup(ctx context.Context, hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	m.cacheLookups.Inc(ctx, attribute.String("result", result))
}
