// Package valuation computes current value and profit/loss of metal holdings
// against one price snapshot. Everything here is pure: no I/O, no rounding.
// Callers validate holdings at the boundary; an unknown metal or currency
// panics.
package valuation

import (
	"fmt"

	"metalfolio/internal/models"
	"metalfolio/internal/pricing"
)

// HoldingValuation is one holding valued against a snapshot.
type HoldingValuation struct {
	Holding             models.Holding
	Grams               float64
	CurrentPricePerGram float64
	CurrentValue        float64
	PurchaseValue       float64
	ProfitLoss          float64
	ProfitLossPercent   float64
	PortfolioPercentage float64
}

// MetalSummary aggregates every holding of one metal.
type MetalSummary struct {
	Metal                       models.Metal
	HoldingCount                int
	TotalGrams                  float64
	TotalPurchaseValue          float64
	TotalCurrentValue           float64
	CurrentPricePerGram         float64
	AveragePurchasePricePerGram float64
	ProfitLoss                  float64
	ProfitLossPercent           float64
}

// PortfolioTotals aggregates the whole portfolio.
type PortfolioTotals struct {
	TotalCurrentValue      float64
	TotalPurchaseValue     float64
	TotalProfitLoss        float64
	TotalProfitLossPercent float64
	HoldingCount           int
}

// Portfolio is a complete valuation paired with the snapshot it used.
type Portfolio struct {
	Snapshot pricing.PriceSnapshot
	Currency models.Currency
	Totals   PortfolioTotals
	// Summaries holds one entry per metal actually held, in models.Metals order.
	Summaries []MetalSummary
	Holdings  []HoldingValuation
}

// Summary returns the summary for metal, or nil if it is not held.
func (p *Portfolio) Summary(metal models.Metal) *MetalSummary {
	for i := range p.Summaries {
		if p.Summaries[i].Metal == metal {
			return &p.Summaries[i]
		}
	}
	return nil
}

// Valuer values holdings in one currency against one snapshot.
type Valuer struct {
	snap     pricing.PriceSnapshot
	currency models.Currency
}

// New returns a Valuer for currency. It panics if currency is unsupported.
func New(snap pricing.PriceSnapshot, currency models.Currency) *Valuer {
	if !currency.Valid() {
		panic(fmt.Sprintf("valuation: unknown currency %q", string(currency)))
	}
	return &Valuer{snap: snap, currency: currency}
}

// purchaseValue is what h cost, converted into the valuation currency at the
// snapshot's exchange rate.
func (v *Valuer) purchaseValue(h *models.Holding) float64 {
	return v.snap.Convert(h.PurchaseValue(), h.Currency, v.currency)
}

// MetalSummary summarises the holdings of metal. It returns nil when none of
// holdings is of that metal.
func (v *Valuer) MetalSummary(holdings []models.Holding, metal models.Metal) *MetalSummary {
	price := v.snap.PricePerGram(metal, v.currency)

	s := MetalSummary{Metal: metal, CurrentPricePerGram: price}
	for i := range holdings {
		h := &holdings[i]
		if h.Metal != metal {
			continue
		}
		s.HoldingCount++
		s.TotalGrams += h.Grams()
		s.TotalPurchaseValue += v.purchaseValue(h)
	}
	if s.HoldingCount == 0 {
		return nil
	}

	s.TotalCurrentValue = s.TotalGrams * price
	if s.TotalGrams > 0 {
		s.AveragePurchasePricePerGram = s.TotalPurchaseValue / s.TotalGrams
	}
	s.ProfitLoss = s.TotalCurrentValue - s.TotalPurchaseValue
	s.ProfitLossPercent = percent(s.ProfitLoss, s.TotalPurchaseValue)
	return &s
}

// PortfolioTotals sums the metal summaries of holdings.
func (v *Valuer) PortfolioTotals(holdings []models.Holding) PortfolioTotals {
	var t PortfolioTotals
	for _, metal := range models.Metals() {
		s := v.MetalSummary(holdings, metal)
		if s == nil {
			continue
		}
		t.TotalCurrentValue += s.TotalCurrentValue
		t.TotalPurchaseValue += s.TotalPurchaseValue
		t.HoldingCount += s.HoldingCount
	}
	t.TotalProfitLoss = t.TotalCurrentValue - t.TotalPurchaseValue
	t.TotalProfitLossPercent = percent(t.TotalProfitLoss, t.TotalPurchaseValue)
	return t
}

// Holding values a single holding. portfolioValue is the denominator for its
// share of the portfolio.
func (v *Valuer) Holding(h models.Holding, portfolioValue float64) HoldingValuation {
	grams := h.Grams()
	price := v.snap.PricePerGram(h.Metal, v.currency)
	current := grams * price
	purchase := v.purchaseValue(&h)
	pl := current - purchase

	return HoldingValuation{
		Holding:             h,
		Grams:               grams,
		CurrentPricePerGram: price,
		CurrentValue:        current,
		PurchaseValue:       purchase,
		ProfitLoss:          pl,
		ProfitLossPercent:   percent(pl, purchase),
		PortfolioPercentage: percent(current, portfolioValue),
	}
}

// AllHoldings values every holding against the same portfolio total.
func (v *Valuer) AllHoldings(holdings []models.Holding) []HoldingValuation {
	total := v.PortfolioTotals(holdings).TotalCurrentValue
	out := make([]HoldingValuation, len(holdings))
	for i, h := range holdings {
		out[i] = v.Holding(h, total)
	}
	return out
}

// Portfolio values holdings completely: totals, per-metal summaries and
// per-holding figures, all from the same snapshot.
func (v *Valuer) Portfolio(holdings []models.Holding) Portfolio {
	p := Portfolio{
		Snapshot: v.snap,
		Currency: v.currency,
		Totals:   v.PortfolioTotals(holdings),
		Holdings: make([]HoldingValuation, len(holdings)),
	}
	for _, metal := range models.Metals() {
		if s := v.MetalSummary(holdings, metal); s != nil {
			p.Summaries = append(p.Summaries, *s)
		}
	}
	for i, h := range holdings {
		p.Holdings[i] = v.Holding(h, p.Totals.TotalCurrentValue)
	}
	return p
}

// percent returns part/whole×100, or 0 when whole is 0.
func percent(part, whole float64) float64 {
	if whole == 0 {
		return 0
	}
	return part / whole * 100
}
