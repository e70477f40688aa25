// Package pricing turns unreliable upstream market data into one coherent
// price snapshot. Each source adapter keeps its own single-slot cache with
// stale fallback; the Aggregator joins the adapters, caches whole snapshots,
// and falls back to the last full snapshot when a refresh fails.
package pricing

import (
	"errors"
	"fmt"
	"time"

	"metalfolio/internal/models"
)

var (
	// ErrSourceUnavailable means an upstream source failed (network error,
	// non-2xx status, malformed payload or missing credential) and the adapter
	// had nothing cached to fall back to.
	ErrSourceUnavailable = errors.New("price source unavailable")

	// ErrNoDataAvailable means a snapshot could not be built and no earlier
	// snapshot exists to fall back to.
	ErrNoDataAvailable = errors.New("no price data available")
)

// Provenance tags how trustworthy a snapshot is.
type Provenance string

const (
	ProvenanceLive   Provenance = "live"
	ProvenanceCached Provenance = "cached"
	ProvenanceMock   Provenance = "mock"
)

// BaseCurrency is the currency every upstream quote is denominated in.
const BaseCurrency = models.CurrencyUSD

// LocalCurrency is the currency derived prices are converted into.
const LocalCurrency = models.CurrencyPKR

// ExchangeRate is the USD→target multiplier.
type ExchangeRate struct {
	Base       models.Currency `json:"base"`
	Target     models.Currency `json:"target"`
	Rate       float64         `json:"rate"`
	ObservedAt time.Time       `json:"observed_at"`
}

// CurrencyPrices holds a per-gram price in each supported currency.
type CurrencyPrices struct {
	USD float64 `json:"USD"`
	PKR float64 `json:"PKR"`
}

// In returns the price in currency c.
func (p CurrencyPrices) In(c models.Currency) float64 {
	switch c {
	case models.CurrencyUSD:
		return p.USD
	case models.CurrencyPKR:
		return p.PKR
	}
	panic(fmt.Sprintf("pricing: unknown currency %q", string(c)))
}

// Rates holds the multiplier from USD into each supported currency.
type Rates struct {
	USD       float64   `json:"USD"`
	PKR       float64   `json:"PKR"`
	Timestamp time.Time `json:"timestamp"`
}

// In returns the USD→c multiplier.
func (r Rates) In(c models.Currency) float64 {
	switch c {
	case models.CurrencyUSD:
		return r.USD
	case models.CurrencyPKR:
		return r.PKR
	}
	panic(fmt.Sprintf("pricing: unknown currency %q", string(c)))
}

// PriceSnapshot is one internally consistent set of current prices. PKR
// prices are always derived from USD prices and the exchange rate; snapshots
// are replaced wholesale and never mutated.
type PriceSnapshot struct {
	Gold      CurrencyPrices `json:"gold"`
	Silver    CurrencyPrices `json:"silver"`
	Rates     Rates          `json:"rates"`
	UpdatedAt time.Time      `json:"updatedAt"`
	Source    Provenance     `json:"source"`
}

// NewSnapshot builds a snapshot from USD per-gram prices and the USD→PKR rate.
func NewSnapshot(goldUSD, silverUSD float64, rate ExchangeRate, observedAt time.Time, source Provenance) PriceSnapshot {
	return PriceSnapshot{
		Gold:      CurrencyPrices{USD: goldUSD, PKR: goldUSD * rate.Rate},
		Silver:    CurrencyPrices{USD: silverUSD, PKR: silverUSD * rate.Rate},
		Rates:     Rates{USD: 1, PKR: rate.Rate, Timestamp: rate.ObservedAt},
		UpdatedAt: observedAt,
		Source:    source,
	}
}

// Prices returns the per-currency prices of metal.
func (s PriceSnapshot) Prices(metal models.Metal) CurrencyPrices {
	switch metal {
	case models.MetalGold:
		return s.Gold
	case models.MetalSilver:
		return s.Silver
	}
	panic(fmt.Sprintf("pricing: unknown metal %q", string(metal)))
}

// PricePerGram returns the price of one gram of metal in currency.
func (s PriceSnapshot) PricePerGram(metal models.Metal, currency models.Currency) float64 {
	return s.Prices(metal).In(currency)
}

// Convert converts amount between currencies at the snapshot's exchange rate.
func (s PriceSnapshot) Convert(amount float64, from, to models.Currency) float64 {
	if from == to {
		return amount
	}
	if from == BaseCurrency {
		return amount * s.Rates.In(to)
	}
	return amount / s.Rates.In(from) * s.Rates.In(to)
}

// WithSource returns a copy of s tagged with source.
func (s PriceSnapshot) WithSource(source Provenance) PriceSnapshot {
	s.Source = source
	return s
}

// Mock prices: gold at $65/g (~$2,023/oz), silver at $0.85/g (~$26.46/oz), 1 USD = 278 PKR.
const (
	MockGoldUSD   = 65.0
	MockSilverUSD = 0.85
	MockUSDToPKR  = 278.0
)

// MockSnapshot returns the fixed illustrative snapshot used when no live data
// source is configured. It is never substituted automatically on failure.
func MockSnapshot(now time.Time) PriceSnapshot {
	rate := ExchangeRate{Base: BaseCurrency, Target: LocalCurrency, Rate: MockUSDToPKR, ObservedAt: now}
	return NewSnapshot(MockGoldUSD, MockSilverUSD, rate, now, ProvenanceMock)
}

// FreshnessWindow is how long after observation a snapshot counts as fresh.
const FreshnessWindow = 5 * time.Minute

// Freshness reports whether a snapshot observed at observedAt is still fresh
// at now, and its age in whole minutes.
func Freshness(observedAt, now time.Time) (fresh bool, ageMinutes int) {
	age := now.Sub(observedAt)
	return age < FreshnessWindow, int(age / time.Minute)
}

// Result is the outcome of a price request: the snapshot, tagged live,
// cached or mock, and how old it was when served.
type Result struct {
	Snapshot PriceSnapshot
	Age      time.Duration
}

// Status returns the provenance of the served snapshot.
func (r Result) Status() Provenance {
	return r.Snapshot.Source
}
