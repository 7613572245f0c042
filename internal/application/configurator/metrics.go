package configurator

import (
	"context"

	"github.com/shopspring/decimal"
)

// Metrics records quote and template activity
type Metrics interface {
	QuoteCalculated(ctx context.Context, price decimal.Decimal, warnings int)
	HardwareGaps(ctx context.Context, gaps int)
	TemplateCacheLookup(ctx context.Context, hit bool)
}

type nopMetrics struct{}

func (nopMetrics) QuoteCalculated(context.Context, decimal.Decimal, int) {}
func (nopMetrics) HardwareGaps(context.Context, int) {}
func (nopMetrics) TemplateCacheLookup(context.Context, bool) {}
