package services

import (
	"context"
	"time"

	"metalfolio/internal/charts"
	"metalfolio/internal/models"
	"metalfolio/internal/pagination"
	"metalfolio/internal/pricing"
	"metalfolio/internal/units"
	"metalfolio/internal/valuation"
)

// HoldingInput holds the fields of a new holding.
type HoldingInput struct {
	Metal         models.Metal
	Purity        models.Purity
	Quantity      float64
	Unit          units.Unit
	PurchasePrice float64
	Currency      models.Currency
	PurchaseDate  time.Time
}

// HoldingUpdate holds the fields of a holding to change; nil fields are left as-is.
type HoldingUpdate struct {
	Metal         *models.Metal
	Purity        *models.Purity
	Quantity      *float64
	Unit          *units.Unit
	PurchasePrice *float64
	Currency      *models.Currency
	PurchaseDate  *time.Time
}

// HoldingServicer defines the contract for holding-related business logic.
type HoldingServicer interface {
	CreateHolding(userID string, in HoldingInput) (*models.Holding, error)
	GetUserHoldings(userID string, page pagination.PageRequest, metal *models.Metal) (*pagination.PageResponse[models.Holding], error)
	GetAllUserHoldings(userID string) ([]models.Holding, error)
	GetHoldingByID(userID, holdingID string) (*models.Holding, error)
	UpdateHolding(userID, holdingID string, upd HoldingUpdate) (*models.Holding, error)
	DeleteHolding(userID, holdingID string) error
}

// PreferencesUpdate holds the preferences to change; nil fields are left as-is.
type PreferencesUpdate struct {
	Currency              *models.DisplayCurrency
	Unit                  *units.Unit
	PriceAlertThreshold   *float64
	PushNotifications     *bool
	NotificationFrequency *models.NotificationFrequency
}

// PreferencesServicer defines the contract for user preference logic.
type PreferencesServicer interface {
	GetPreferences(userID string) (*models.UserPreferences, error)
	UpdatePreferences(userID string, upd PreferencesUpdate) (*models.UserPreferences, error)
}

// PriceServicer defines the contract for current and historical prices.
type PriceServicer interface {
	GetCurrentPrices(ctx context.Context) (*pricing.Result, error)
	RecordDailyPrices(ctx context.Context) (*models.PriceHistory, error)
	GetPriceHistory(days int) ([]models.PriceHistory, error)
}

// PortfolioReport is a user's full valuation together with the prices used.
type PortfolioReport struct {
	Prices    pricing.Result
	Valuation valuation.Portfolio
}

// PortfolioCharts holds every chart series for a user's portfolio.
type PortfolioCharts struct {
	Prices         pricing.Result
	Currency       models.Currency
	Breakdown      []charts.Slice
	Contribution   []charts.Contribution
	PriceHistory   []charts.PricePoint
	PortfolioValue []charts.ValuePoint
}

// PortfolioServicer defines the contract for portfolio valuation.
type PortfolioServicer interface {
	GetPortfolio(ctx context.Context, userID string, currency models.Currency) (*PortfolioReport, error)
	GetCharts(ctx context.Context, userID string, currency models.Currency, days int) (*PortfolioCharts, error)
}
