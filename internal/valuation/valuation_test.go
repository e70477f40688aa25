package valuation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metalfolio/internal/models"
	"metalfolio/internal/pricing"
	"metalfolio/internal/units"
)

func snapshot(goldUSD, silverUSD, rate float64) pricing.PriceSnapshot {
	fx := pricing.ExchangeRate{Base: models.CurrencyUSD, Target: models.CurrencyPKR, Rate: rate}
	return pricing.NewSnapshot(goldUSD, silverUSD, fx, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), pricing.ProvenanceLive)
}

func holding(metal models.Metal, qty float64, unit units.Unit, price float64, currency models.Currency) models.Holding {
	return models.Holding{
		Metal:         metal,
		Purity:        models.Purity24K,
		Quantity:      qty,
		Unit:          unit,
		PurchasePrice: price,
		Currency:      currency,
		PurchaseDate:  time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestEndToEndExample(t *testing.T) {
	snap := snapshot(65, 0.85, 278)
	holdings := []models.Holding{holding(models.MetalGold, 10, units.Gram, 60, models.CurrencyUSD)}

	t.Run("USD", func(t *testing.T) {
		vals := New(snap, models.CurrencyUSD).AllHoldings(holdings)
		require.Len(t, vals, 1)
		v := vals[0]
		assert.Equal(t, 10.0, v.Grams)
		assert.InDelta(t, 650, v.CurrentValue, 1e-9)
		assert.InDelta(t, 600, v.PurchaseValue, 1e-9)
		assert.InDelta(t, 50, v.ProfitLoss, 1e-9)
		assert.InDelta(t, 8.33, v.ProfitLossPercent, 0.005)
		assert.InDelta(t, 100, v.PortfolioPercentage, 1e-9)
	})

	t.Run("PKR", func(t *testing.T) {
		assert.Equal(t, 18070.0, snap.Gold.PKR)

		v := New(snap, models.CurrencyPKR).AllHoldings(holdings)[0]
		assert.InDelta(t, 180700, v.CurrentValue, 1e-6)
		assert.InDelta(t, 600*278, v.PurchaseValue, 1e-6)
		assert.InDelta(t, 8.33, v.ProfitLossPercent, 0.005)
		assert.InDelta(t, 100, v.PortfolioPercentage, 1e-9)
	})
}

func TestMetalSummary_Absent(t *testing.T) {
	v := New(snapshot(65, 0.85, 278), models.CurrencyPKR)

	assert.Nil(t, v.MetalSummary(nil, models.MetalGold))

	silverOnly := []models.Holding{holding(models.MetalSilver, 1, units.Kilogram, 800, models.CurrencyPKR)}
	assert.Nil(t, v.MetalSummary(silverOnly, models.MetalGold))
	assert.NotNil(t, v.MetalSummary(silverOnly, models.MetalSilver))
}

func TestMetalSummary_Aggregates(t *testing.T) {
	v := New(snapshot(65, 0.85, 278), models.CurrencyUSD)
	holdings := []models.Holding{
		holding(models.MetalGold, 1, units.Tola, 700, models.CurrencyUSD),
		holding(models.MetalGold, 1, units.Ounce, 556000, models.CurrencyPKR),
		holding(models.MetalSilver, 100, units.Gram, 1, models.CurrencyUSD),
	}

	s := v.MetalSummary(holdings, models.MetalGold)
	require.NotNil(t, s)

	grams := 11.6638 + 31.1035
	purchase := 700 + 556000.0/278
	assert.Equal(t, 2, s.HoldingCount)
	assert.InDelta(t, grams, s.TotalGrams, 1e-9)
	assert.InDelta(t, purchase, s.TotalPurchaseValue, 1e-9)
	assert.Equal(t, 65.0, s.CurrentPricePerGram)
	assert.InDelta(t, grams*65, s.TotalCurrentValue, 1e-9)
	assert.InDelta(t, purchase/grams, s.AveragePurchasePricePerGram, 1e-9)
	assert.InDelta(t, grams*65-purchase, s.ProfitLoss, 1e-9)
	assert.InDelta(t, (grams*65-purchase)/purchase*100, s.ProfitLossPercent, 1e-9)
}

func TestZeroDivisionGuards(t *testing.T) {
	t.Run("zero purchase value", func(t *testing.T) {
		v := New(snapshot(65, 0.85, 278), models.CurrencyUSD)
		holdings := []models.Holding{holding(models.MetalGold, 1, units.Gram, 0, models.CurrencyUSD)}

		s := v.MetalSummary(holdings, models.MetalGold)
		require.NotNil(t, s)
		assert.Equal(t, 0.0, s.ProfitLossPercent)
		assert.Equal(t, 0.0, v.Holding(holdings[0], 65).ProfitLossPercent)
		assert.Equal(t, 0.0, v.PortfolioTotals(holdings).TotalProfitLossPercent)
	})

	t.Run("zero portfolio value", func(t *testing.T) {
		v := New(snapshot(0, 0, 278), models.CurrencyPKR)
		holdings := []models.Holding{
			holding(models.MetalGold, 1, units.Gram, 10, models.CurrencyPKR),
			holding(models.MetalSilver, 1, units.Gram, 10, models.CurrencyPKR),
		}
		for _, hv := range v.AllHoldings(holdings) {
			assert.Equal(t, 0.0, hv.PortfolioPercentage)
		}
	})
}

func TestPortfolioTotals(t *testing.T) {
	v := New(snapshot(65, 0.85, 278), models.CurrencyUSD)

	t.Run("empty", func(t *testing.T) {
		assert.Equal(t, PortfolioTotals{}, v.PortfolioTotals(nil))
	})

	t.Run("sums both metals", func(t *testing.T) {
		holdings := []models.Holding{
			holding(models.MetalGold, 10, units.Gram, 60, models.CurrencyUSD),
			holding(models.MetalSilver, 100, units.Gram, 0.8, models.CurrencyUSD),
		}
		tot := v.PortfolioTotals(holdings)
		assert.Equal(t, 2, tot.HoldingCount)
		assert.InDelta(t, 650+85, tot.TotalCurrentValue, 1e-9)
		assert.InDelta(t, 600+80, tot.TotalPurchaseValue, 1e-9)
		assert.InDelta(t, 55, tot.TotalProfitLoss, 1e-9)
		assert.InDelta(t, 55.0/680*100, tot.TotalProfitLossPercent, 1e-9)
	})
}

func TestAllHoldings_PercentageClosure(t *testing.T) {
	v := New(snapshot(65.37, 0.83, 278.4), models.CurrencyPKR)
	holdings := []models.Holding{
		holding(models.MetalGold, 3, units.Tola, 200000, models.CurrencyPKR),
		holding(models.MetalGold, 0.5, units.Ounce, 2000, models.CurrencyUSD),
		holding(models.MetalSilver, 1.25, units.Kilogram, 230, models.CurrencyPKR),
		holding(models.MetalSilver, 17, units.Gram, 1, models.CurrencyUSD),
	}

	var sum float64
	for _, hv := range v.AllHoldings(holdings) {
		sum += hv.PortfolioPercentage
	}
	assert.InDelta(t, 100, sum, 0.01)
}

func TestPortfolio(t *testing.T) {
	v := New(snapshot(65, 0.85, 278), models.CurrencyUSD)
	holdings := []models.Holding{holding(models.MetalSilver, 100, units.Gram, 0.8, models.CurrencyUSD)}

	p := v.Portfolio(holdings)
	assert.Equal(t, models.CurrencyUSD, p.Currency)
	assert.Nil(t, p.Summary(models.MetalGold))
	require.NotNil(t, p.Summary(models.MetalSilver))
	assert.Len(t, p.Summaries, 1)
	require.Len(t, p.Holdings, 1)
	assert.InDelta(t, 100, p.Holdings[0].PortfolioPercentage, 1e-9)
	assert.Equal(t, v.PortfolioTotals(holdings), p.Totals)
}

func TestUnknownEnumsPanic(t *testing.T) {
	snap := snapshot(65, 0.85, 278)
	assert.Panics(t, func() { New(snap, models.Currency("EUR")) })

	v := New(snap, models.CurrencyUSD)
	assert.Panics(t, func() {
		v.Holding(holding(models.Metal("platinum"), 1, units.Gram, 1, models.CurrencyUSD), 1)
	})
}
