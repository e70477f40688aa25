package handlers

import (
	"time"

	"metalfolio/internal/charts"
	"metalfolio/internal/format"
	"metalfolio/internal/models"
	"metalfolio/internal/pricing"
	"metalfolio/internal/services"
	"metalfolio/internal/units"
	"metalfolio/internal/valuation"
)

// PricesResponse is the current price snapshot plus its freshness.
type PricesResponse struct {
	pricing.PriceSnapshot
	IsFresh    bool `json:"isFresh"`
	AgeMinutes int  `json:"ageMinutes"`
}

func newPricesResponse(res pricing.Result, now time.Time) PricesResponse {
	fresh, age := pricing.Freshness(res.Snapshot.UpdatedAt, now)
	return PricesResponse{PriceSnapshot: res.Snapshot, IsFresh: fresh, AgeMinutes: age}
}

// TotalsResponse is PortfolioTotals rounded for display.
type TotalsResponse struct {
	TotalCurrentValue      float64 `json:"total_current_value"`
	TotalPurchaseValue     float64 `json:"total_purchase_value"`
	TotalProfitLoss        float64 `json:"total_profit_loss"`
	TotalProfitLossPercent float64 `json:"total_profit_loss_percent"`
	HoldingCount           int     `json:"holding_count"`
}

// MetalSummaryResponse is a MetalSummary rounded for display.
type MetalSummaryResponse struct {
	Metal                       models.Metal `json:"metal"`
	HoldingCount                int          `json:"holding_count"`
	TotalGrams                  float64      `json:"total_grams"`
	TotalPurchaseValue          float64      `json:"total_purchase_value"`
	TotalCurrentValue           float64      `json:"total_current_value"`
	CurrentPricePerGram         float64      `json:"current_price_per_gram"`
	AveragePurchasePricePerGram float64      `json:"average_purchase_price_per_gram"`
	ProfitLoss                  float64      `json:"profit_loss"`
	ProfitLossPercent           float64      `json:"profit_loss_percent"`
}

// HoldingValuationResponse is a holding with its valuation, rounded for display.
type HoldingValuationResponse struct {
	models.Holding
	QuantityDisplay     string  `json:"quantity_display"`
	Grams               float64 `json:"grams"`
	CurrentPricePerGram float64 `json:"current_price_per_gram"`
	CurrentValue        float64 `json:"current_value"`
	PurchaseValue       float64 `json:"purchase_value"`
	ProfitLoss          float64 `json:"profit_loss"`
	ProfitLossPercent   float64 `json:"profit_loss_percent"`
	PortfolioPercentage float64 `json:"portfolio_percentage"`
}

// PortfolioResponse is a user's valuation with the prices it was computed from.
type PortfolioResponse struct {
	Currency models.Currency       `json:"currency"`
	Totals   TotalsResponse        `json:"totals"`
	Gold     *MetalSummaryResponse `json:"gold"`
	Silver   *MetalSummaryResponse `json:"silver"`
	// Formatted holds display strings for the headline figures.
	Formatted FormattedTotals            `json:"formatted"`
	Holdings  []HoldingValuationResponse `json:"holdings"`
	Prices    PricesResponse             `json:"prices"`
}

// FormattedTotals are the portfolio totals as display strings.
type FormattedTotals struct {
	TotalCurrentValue      string `json:"total_current_value"`
	TotalProfitLoss        string `json:"total_profit_loss"`
	TotalProfitLossPercent string `json:"total_profit_loss_percent"`
}

func newMetalSummaryResponse(s *valuation.MetalSummary) *MetalSummaryResponse {
	if s == nil {
		return nil
	}
	return &MetalSummaryResponse{
		Metal:                       s.Metal,
		HoldingCount:                s.HoldingCount,
		TotalGrams:                  format.Round2(s.TotalGrams),
		TotalPurchaseValue:          format.Round2(s.TotalPurchaseValue),
		TotalCurrentValue:           format.Round2(s.TotalCurrentValue),
		CurrentPricePerGram:         format.Round2(s.CurrentPricePerGram),
		AveragePurchasePricePerGram: format.Round2(s.AveragePurchasePricePerGram),
		ProfitLoss:                  format.Round2(s.ProfitLoss),
		ProfitLossPercent:           format.Round2(s.ProfitLossPercent),
	}
}

func newHoldingValuationResponse(v valuation.HoldingValuation) HoldingValuationResponse {
	return HoldingValuationResponse{
		Holding:             v.Holding,
		QuantityDisplay:     units.FormatQuantity(v.Holding.Quantity, v.Holding.Unit),
		Grams:               format.Round2(v.Grams),
		CurrentPricePerGram: format.Round2(v.CurrentPricePerGram),
		CurrentValue:        format.Round2(v.CurrentValue),
		PurchaseValue:       format.Round2(v.PurchaseValue),
		ProfitLoss:          format.Round2(v.ProfitLoss),
		ProfitLossPercent:   format.Round2(v.ProfitLossPercent),
		PortfolioPercentage: format.Round2(v.PortfolioPercentage),
	}
}

func newPortfolioResponse(r *services.PortfolioReport, now time.Time) PortfolioResponse {
	p := &r.Valuation
	t := p.Totals

	holdings := make([]HoldingValuationResponse, len(p.Holdings))
	for i, v := range p.Holdings {
		holdings[i] = newHoldingValuationResponse(v)
	}

	return PortfolioResponse{
		Currency: p.Currency,
		Totals: TotalsResponse{
			TotalCurrentValue:      format.Round2(t.TotalCurrentValue),
			TotalPurchaseValue:     format.Round2(t.TotalPurchaseValue),
			TotalProfitLoss:        format.Round2(t.TotalProfitLoss),
			TotalProfitLossPercent: format.Round2(t.TotalProfitLossPercent),
			HoldingCount:           t.HoldingCount,
		},
		Gold:   newMetalSummaryResponse(p.Summary(models.MetalGold)),
		Silver: newMetalSummaryResponse(p.Summary(models.MetalSilver)),
		Formatted: FormattedTotals{
			TotalCurrentValue:      format.Currency(t.TotalCurrentValue, p.Currency),
			TotalProfitLoss:        format.CurrencyWithSign(t.TotalProfitLoss, p.Currency),
			TotalProfitLossPercent: format.Percentage(t.TotalProfitLossPercent, 1),
		},
		Holdings: holdings,
		Prices:   newPricesResponse(r.Prices, now),
	}
}

// PricePointResponse is one day of the price history chart.
type PricePointResponse struct {
	Date   string  `json:"date"`
	Gold   float64 `json:"gold"`
	Silver float64 `json:"silver"`
}

// ValuePointResponse is one day of the portfolio value chart.
type ValuePointResponse struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// ChartsResponse holds every portfolio chart series.
type ChartsResponse struct {
	Currency       models.Currency       `json:"currency"`
	Breakdown      []charts.Slice        `json:"metal_breakdown"`
	Contribution   []charts.Contribution `json:"holdings_contribution"`
	PriceHistory   []PricePointResponse  `json:"price_history"`
	PortfolioValue []ValuePointResponse  `json:"portfolio_value"`
	Prices         PricesResponse        `json:"prices"`
}

func newPricePoints(points []charts.PricePoint) []PricePointResponse {
	out := make([]PricePointResponse, len(points))
	for i, p := range points {
		out[i] = PricePointResponse{
			Date:   p.Date.Format(time.DateOnly),
			Gold:   format.Round2(p.Gold),
			Silver: format.Round2(p.Silver),
		}
	}
	return out
}

func newChartsResponse(c *services.PortfolioCharts, now time.Time) ChartsResponse {
	breakdown := make([]charts.Slice, len(c.Breakdown))
	for i, s := range c.Breakdown {
		s.Value = format.Round2(s.Value)
		breakdown[i] = s
	}
	contribution := make([]charts.Contribution, len(c.Contribution))
	for i, v := range c.Contribution {
		v.Value = format.Round2(v.Value)
		contribution[i] = v
	}
	values := make([]ValuePointResponse, len(c.PortfolioValue))
	for i, p := range c.PortfolioValue {
		values[i] = ValuePointResponse{Date: p.Date.Format(time.DateOnly), Value: format.Round2(p.Value)}
	}

	return ChartsResponse{
		Currency:       c.Currency,
		Breakdown:      breakdown,
		Contribution:   contribution,
		PriceHistory:   newPricePoints(c.PriceHistory),
		PortfolioValue: values,
		Prices:         newPricesResponse(c.Prices, now),
	}
}
