// Package charts derives chart series from valuations and recorded price
// history. Values are unrounded; presentation rounds them.
package charts

import (
	"slices"
	"time"

	"metalfolio/internal/models"
	"metalfolio/internal/valuation"
)

// Slice is one metal's share of the portfolio's current value.
type Slice struct {
	Metal models.Metal `json:"metal"`
	Name  string       `json:"name"`
	Value float64      `json:"value"`
}

// Contribution is one holding's current value.
type Contribution struct {
	HoldingID string       `json:"holding_id"`
	Name      string       `json:"name"`
	Metal     models.Metal `json:"metal"`
	Value     float64      `json:"value"`
}

// PricePoint is the per-gram price of each metal on one day.
type PricePoint struct {
	Date   time.Time `json:"date"`
	Gold   float64   `json:"gold"`
	Silver float64   `json:"silver"`
}

// ValuePoint is the portfolio's value on one day.
type ValuePoint struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// MetalBreakdown groups current value by metal. Metals with no value are
// omitted.
func MetalBreakdown(p valuation.Portfolio) []Slice {
	out := make([]Slice, 0, len(p.Summaries))
	for _, s := range p.Summaries {
		if s.TotalCurrentValue <= 0 {
			continue
		}
		out = append(out, Slice{Metal: s.Metal, Name: s.Metal.Title(), Value: s.TotalCurrentValue})
	}
	return out
}

// HoldingsContribution lists each holding's current value, highest first.
// Equal values keep their input order.
func HoldingsContribution(vals []valuation.HoldingValuation) []Contribution {
	out := make([]Contribution, len(vals))
	for i, v := range vals {
		out[i] = Contribution{
			HoldingID: v.Holding.ID,
			Name:      v.Holding.Metal.Title() + " " + string(v.Holding.Purity),
			Metal:     v.Holding.Metal,
			Value:     v.CurrentValue,
		}
	}
	slices.SortStableFunc(out, func(a, b Contribution) int {
		switch {
		case a.Value > b.Value:
			return -1
		case a.Value < b.Value:
			return 1
		}
		return 0
	})
	return out
}

// PriceHistory turns recorded daily prices into a series in currency,
// oldest first.
func PriceHistory(records []models.PriceHistory, currency models.Currency) []PricePoint {
	sorted := byDate(records)
	out := make([]PricePoint, len(sorted))
	for i := range sorted {
		r := &sorted[i]
		out[i] = PricePoint{
			Date:   day(r.Date),
			Gold:   r.PricePerGram(models.MetalGold, currency),
			Silver: r.PricePerGram(models.MetalSilver, currency),
		}
	}
	return out
}

// PortfolioValue values holdings on every recorded day, oldest first. A
// holding counts from its purchase date onwards.
func PortfolioValue(holdings []models.Holding, records []models.PriceHistory, currency models.Currency) []ValuePoint {
	if len(holdings) == 0 {
		return []ValuePoint{}
	}

	sorted := byDate(records)
	out := make([]ValuePoint, len(sorted))
	for i := range sorted {
		r := &sorted[i]
		d := day(r.Date)

		var value float64
		for j := range holdings {
			h := &holdings[j]
			if day(h.PurchaseDate).After(d) {
				continue
			}
			value += h.Grams() * r.PricePerGram(h.Metal, currency)
		}
		out[i] = ValuePoint{Date: d, Value: value}
	}
	return out
}

func byDate(records []models.PriceHistory) []models.PriceHistory {
	sorted := slices.Clone(records)
	slices.SortStableFunc(sorted, func(a, b models.PriceHistory) int {
		return a.Date.Compare(b.Date)
	})
	return sorted
}

// day truncates t to its calendar date in UTC.
func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
