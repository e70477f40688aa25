package pricing

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"metalfolio/internal/logger"
	"metalfolio/internal/models"
	"metalfolio/internal/provider"
	"metalfolio/internal/units"
)

// metalSymbols maps metals to their ISO 4217 commodity codes.
var metalSymbols = map[models.Metal]string{
	models.MetalGold:   "XAU",
	models.MetalSilver: "XAG",
}

// MetalPriceAdapter serves USD per-gram spot prices, one cache slot per metal.
type MetalPriceAdapter struct {
	source  provider.MetalPriceSource
	slots   map[models.Metal]*Slot[float64]
	timeout time.Duration
	log     *zap.SugaredLogger
}

// NewMetalPriceAdapter creates an adapter over source. timeout bounds each
// upstream request (0 disables it); a nil now uses time.Now.
func NewMetalPriceAdapter(source provider.MetalPriceSource, ttl, timeout time.Duration, now func() time.Time) *MetalPriceAdapter {
	slots := make(map[models.Metal]*Slot[float64], len(metalSymbols))
	for metal := range metalSymbols {
		slots[metal] = NewSlot[float64](ttl, now)
	}
	return &MetalPriceAdapter{
		source:  source,
		slots:   slots,
		timeout: timeout,
		log:     logger.Named("pricing.metals"),
	}
}

// PricePerGram returns the USD price of one gram of metal.
func (a *MetalPriceAdapter) PricePerGram(ctx context.Context, metal models.Metal) (Cached[float64], error) {
	slot, ok := a.slots[metal]
	if !ok {
		panic(fmt.Sprintf("pricing: unknown metal %q", string(metal)))
	}
	symbol := metalSymbols[metal]

	c, err := slot.Load(ctx, func(ctx context.Context) (float64, error) {
		return a.fetch(ctx, symbol)
	})
	if err != nil {
		a.log.Errorw("metal price unavailable", "metal", metal, "source", a.source.Name(), "error", err)
		return c, fmt.Errorf("%w: %s %s: %v", ErrSourceUnavailable, a.source.Name(), symbol, err)
	}

	switch c.Origin {
	case OriginCache:
		a.log.Debugw("using cached metal price", "metal", metal, "usd_per_gram", c.Value)
	case OriginStale:
		a.log.Warnw("metal price fetch failed, using expired cache",
			"metal", metal, "usd_per_gram", c.Value, "fetched_at", c.FetchedAt, "error", c.Err)
	}
	return c, nil
}

func (a *MetalPriceAdapter) fetch(ctx context.Context, symbol string) (float64, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	perOunce, err := a.source.FetchPricePerOunce(ctx, symbol, string(BaseCurrency))
	if err != nil {
		return 0, err
	}
	perGram := units.PerOunceToPerGram(perOunce)

	a.log.Infow("fetched metal price",
		"source", a.source.Name(),
		"symbol", symbol,
		"usd_per_ounce", perOunce,
		"usd_per_gram", perGram,
	)
	return perGram, nil
}

// Clear drops every cached price.
func (a *MetalPriceAdapter) Clear() {
	for _, slot := range a.slots {
		slot.Clear()
	}
	a.log.Debug("metal price cache cleared")
}
