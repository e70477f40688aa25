package pricing

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"metalfolio/internal/logger"
	"metalfolio/internal/models"
)

// MetalPricer serves USD per-gram metal prices.
type MetalPricer interface {
	PricePerGram(ctx context.Context, metal models.Metal) (Cached[float64], error)
}

// RatePricer serves the USD→PKR exchange rate.
type RatePricer interface {
	Rate(ctx context.Context) (Cached[ExchangeRate], error)
}

// Source produces price snapshots.
type Source interface {
	GetPrices(ctx context.Context) (Result, error)
}

// Aggregator composes the metal and FX adapters into one PriceSnapshot and
// keeps the last full snapshot for fallback.
type Aggregator struct {
	metals MetalPricer
	fx     RatePricer
	cache  *Slot[PriceSnapshot]
	now    func() time.Time
	log    *zap.SugaredLogger

	// refresh serialises GetPrices so a cache miss triggers one upstream round.
	refresh sync.Mutex
}

// NewAggregator creates an Aggregator whose snapshot cache lives for ttl.
// A nil now uses time.Now.
func NewAggregator(metals MetalPricer, fx RatePricer, ttl time.Duration, now func() time.Time) *Aggregator {
	if now == nil {
		now = time.Now
	}
	return &Aggregator{
		metals: metals,
		fx:     fx,
		cache:  NewSlot[PriceSnapshot](ttl, now),
		now:    now,
		log:    logger.Named("pricing.aggregator"),
	}
}

// GetPrices returns the current snapshot.
//
// A snapshot cached within its TTL is returned as-is, tagged cached. Otherwise
// gold, silver and the exchange rate are fetched concurrently and all three are
// awaited. When all succeed live a new snapshot is cached and returned. When
// any fails or only has expired data, the previous snapshot (even if expired)
// is returned tagged cached, so one snapshot never mixes refresh rounds. With
// no previous snapshot a failure is ErrNoDataAvailable.
func (a *Aggregator) GetPrices(ctx context.Context) (Result, error) {
	a.refresh.Lock()
	defer a.refresh.Unlock()

	if c, ok := a.cache.Peek(); ok && c.Origin == OriginCache {
		a.log.Debugw("using cached price snapshot", "updated_at", c.Value.UpdatedAt)
		return a.cachedResult(c), nil
	}

	var (
		gold, silver Cached[float64]
		rate         Cached[ExchangeRate]
		g            errgroup.Group
	)
	g.Go(func() (err error) {
		gold, err = a.metals.PricePerGram(ctx, models.MetalGold)
		return err
	})
	g.Go(func() (err error) {
		silver, err = a.metals.PricePerGram(ctx, models.MetalSilver)
		return err
	})
	g.Go(func() (err error) {
		rate, err = a.fx.Rate(ctx)
		return err
	})

	if err := g.Wait(); err != nil {
		if c, ok := a.cache.Peek(); ok {
			a.log.Warnw("price refresh failed, serving previous snapshot",
				"updated_at", c.Value.UpdatedAt, "error", err)
			return a.cachedResult(c), nil
		}
		a.log.Errorw("price refresh failed with no snapshot to fall back to", "error", err)
		return Result{}, fmt.Errorf("%w: %v", ErrNoDataAvailable, err)
	}

	now := a.now()
	if gold.Origin == OriginStale || silver.Origin == OriginStale || rate.Origin == OriginStale {
		// A component fell back to expired data: never mix it with fresh
		// values while a complete earlier snapshot exists.
		if c, ok := a.cache.Peek(); ok {
			a.log.Warnw("price source returned expired data, serving previous snapshot",
				"updated_at", c.Value.UpdatedAt)
			return a.cachedResult(c), nil
		}
		// No snapshot yet (e.g. after Clear): build one from the adapters'
		// last values, dated by the oldest, and do not store it.
		observedAt := oldest(gold.FetchedAt, silver.FetchedAt, rate.FetchedAt)
		snap := NewSnapshot(gold.Value, silver.Value, rate.Value, observedAt, ProvenanceCached)
		a.log.Warnw("serving snapshot built from expired source data", "updated_at", observedAt)
		return Result{Snapshot: snap, Age: now.Sub(observedAt)}, nil
	}

	snap := NewSnapshot(gold.Value, silver.Value, rate.Value, now, ProvenanceLive)
	a.cache.Store(snap)
	a.log.Infow("built live price snapshot",
		"gold_usd", snap.Gold.USD,
		"silver_usd", snap.Silver.USD,
		"pkr_per_usd", snap.Rates.PKR,
	)
	return Result{Snapshot: snap}, nil
}

// Clear drops the cached snapshot.
func (a *Aggregator) Clear() {
	a.cache.Clear()
}

func (a *Aggregator) cachedResult(c Cached[PriceSnapshot]) Result {
	return Result{
		Snapshot: c.Value.WithSource(ProvenanceCached),
		Age:      a.now().Sub(c.Value.UpdatedAt),
	}
}

func oldest(times ...time.Time) time.Time {
	o := times[0]
	for _, t := range times[1:] {
		if t.Before(o) {
			o = t
		}
	}
	return o
}

// MockSource serves MockSnapshot for environments with no live data source.
type MockSource struct {
	Now func() time.Time
}

// GetPrices returns the mock snapshot, observed now.
func (m MockSource) GetPrices(_ context.Context) (Result, error) {
	now := time.Now
	if m.Now != nil {
		now = m.Now
	}
	return Result{Snapshot: MockSnapshot(now())}, nil
}
