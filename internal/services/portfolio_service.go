package services

import (
	"context"

	"metalfolio/internal/charts"
	apperrors "metalfolio/internal/errors"
	"metalfolio/internal/models"
	"metalfolio/internal/valuation"
)

// portfolioService values a user's holdings against current prices.
type portfolioService struct {
	holdings HoldingServicer
	prices   PriceServicer
}

// NewPortfolioService creates a new PortfolioServicer.
func NewPortfolioService(holdings HoldingServicer, prices PriceServicer) PortfolioServicer {
	return &portfolioService{holdings: holdings, prices: prices}
}

// GetPortfolio values all of the user's holdings in currency.
func (s *portfolioService) GetPortfolio(ctx context.Context, userID string, currency models.Currency) (*PortfolioReport, error) {
	if !currency.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unsupported currency")
	}

	holdings, err := s.holdings.GetAllUserHoldings(userID)
	if err != nil {
		return nil, err
	}
	prices, err := s.prices.GetCurrentPrices(ctx)
	if err != nil {
		return nil, err
	}

	return &PortfolioReport{
		Prices:    *prices,
		Valuation: valuation.New(prices.Snapshot, currency).Portfolio(holdings),
	}, nil
}

// GetCharts builds every chart series for the user's portfolio. days selects
// the price history window.
func (s *portfolioService) GetCharts(ctx context.Context, userID string, currency models.Currency, days int) (*PortfolioCharts, error) {
	report, err := s.GetPortfolio(ctx, userID, currency)
	if err != nil {
		return nil, err
	}
	history, err := s.prices.GetPriceHistory(days)
	if err != nil {
		return nil, err
	}

	holdings := make([]models.Holding, len(report.Valuation.Holdings))
	for i, hv := range report.Valuation.Holdings {
		holdings[i] = hv.Holding
	}

	return &PortfolioCharts{
		Prices:         report.Prices,
		Currency:       currency,
		Breakdown:      charts.MetalBreakdown(report.Valuation),
		Contribution:   charts.HoldingsContribution(report.Valuation.Holdings),
		PriceHistory:   charts.PriceHistory(history, currency),
		PortfolioValue: charts.PortfolioValue(holdings, history, currency),
	}, nil
}
