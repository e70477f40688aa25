package pricing

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"metalfolio/internal/logger"
	"metalfolio/internal/provider"
)

// FXRateAdapter serves the USD→PKR exchange rate from a single cache slot.
type FXRateAdapter struct {
	source  provider.FXRateSource
	slot    *Slot[float64]
	timeout time.Duration
	log     *zap.SugaredLogger
}

// NewFXRateAdapter creates an adapter over source. timeout bounds each
// upstream request (0 disables it); a nil now uses time.Now.
func NewFXRateAdapter(source provider.FXRateSource, ttl, timeout time.Duration, now func() time.Time) *FXRateAdapter {
	return &FXRateAdapter{
		source:  source,
		slot:    NewSlot[float64](ttl, now),
		timeout: timeout,
		log:     logger.Named("pricing.fx"),
	}
}

// Rate returns the USD→PKR exchange rate.
func (a *FXRateAdapter) Rate(ctx context.Context) (Cached[ExchangeRate], error) {
	c, err := a.slot.Load(ctx, a.fetch)
	if err != nil {
		a.log.Errorw("exchange rate unavailable", "source", a.source.Name(), "error", err)
		return Cached[ExchangeRate]{}, fmt.Errorf("%w: %s %s%s: %v",
			ErrSourceUnavailable, a.source.Name(), BaseCurrency, LocalCurrency, err)
	}

	switch c.Origin {
	case OriginCache:
		a.log.Debugw("using cached exchange rate", "pkr_per_usd", c.Value)
	case OriginStale:
		a.log.Warnw("exchange rate fetch failed, using expired cache",
			"pkr_per_usd", c.Value, "fetched_at", c.FetchedAt, "error", c.Err)
	}

	return Cached[ExchangeRate]{
		Value: ExchangeRate{
			Base:       BaseCurrency,
			Target:     LocalCurrency,
			Rate:       c.Value,
			ObservedAt: c.FetchedAt,
		},
		FetchedAt: c.FetchedAt,
		Origin:    c.Origin,
		Err:       c.Err,
	}, nil
}

func (a *FXRateAdapter) fetch(ctx context.Context) (float64, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	rate, err := a.source.FetchRate(ctx, string(BaseCurrency), string(LocalCurrency))
	if err != nil {
		return 0, err
	}
	a.log.Infow("fetched exchange rate", "source", a.source.Name(), "pkr_per_usd", rate)
	return rate, nil
}

// Clear drops the cached rate.
func (a *FXRateAdapter) Clear() {
	a.slot.Clear()
	a.log.Debug("exchange rate cache cleared")
}
