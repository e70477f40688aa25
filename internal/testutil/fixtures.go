package testutil

import (
	"testing"
	"time"

	"metalfolio/internal/models"
	"metalfolio/internal/units"
	"metalfolio/internal/uuid"

	"gorm.io/gorm"
)

// NewUserID returns a fresh user id as issued by the identity provider.
func NewUserID() string {
	return uuid.New()
}

// Date returns midnight UTC on the given day.
func Date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// CreateTestHolding creates a 24K holding bought on 2024-01-01.
func CreateTestHolding(t *testing.T, db *gorm.DB, userID string, metal models.Metal, quantity float64, unit units.Unit, price float64, currency models.Currency) *models.Holding {
	t.Helper()
	return CreateTestHoldingOn(t, db, userID, metal, quantity, unit, price, currency, Date(2024, 1, 1))
}

// CreateTestHoldingOn creates a 24K holding bought on the given date.
func CreateTestHoldingOn(t *testing.T, db *gorm.DB, userID string, metal models.Metal, quantity float64, unit units.Unit, price float64, currency models.Currency, bought time.Time) *models.Holding {
	t.Helper()

	holding := &models.Holding{
		UserID:        userID,
		Metal:         metal,
		Purity:        models.Purity24K,
		Quantity:      quantity,
		Unit:          unit,
		PurchasePrice: price,
		Currency:      currency,
		PurchaseDate:  bought,
	}
	if err := db.Create(holding).Error; err != nil {
		t.Fatalf("failed to create test holding: %v", err)
	}
	return holding
}

// CreateTestPriceHistory records prices for one day. PKR prices are derived
// from the USD prices and rate.
func CreateTestPriceHistory(t *testing.T, db *gorm.DB, date time.Time, goldUSD, silverUSD, rate float64) *models.PriceHistory {
	t.Helper()

	record := &models.PriceHistory{
		Date:         date,
		GoldUSD:      goldUSD,
		GoldPKR:      goldUSD * rate,
		SilverUSD:    silverUSD,
		SilverPKR:    silverUSD * rate,
		ExchangeRate: rate,
		Source:       "test",
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test price history: %v", err)
	}
	return record
}
