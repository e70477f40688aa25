package models

import (
	"time"

	"metalfolio/internal/uuid"

	"gorm.io/gorm"
)

// PriceHistory is the daily record of per-gram metal prices and the USD→PKR rate.
// This is time-series data: one row per calendar day, no soft deletes.
type PriceHistory struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Date         time.Time `gorm:"type:date;not null;uniqueIndex" json:"date"`
	GoldUSD      float64   `gorm:"not null" json:"gold_usd"`
	GoldPKR      float64   `gorm:"not null" json:"gold_pkr"`
	SilverUSD    float64   `gorm:"not null" json:"silver_usd"`
	SilverPKR    float64   `gorm:"not null" json:"silver_pkr"`
	ExchangeRate float64   `gorm:"not null" json:"exchange_rate"`
	Source       string    `gorm:"not null" json:"source"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// TableName pins the table name used by migrations.
func (PriceHistory) TableName() string {
	return "price_history"
}

// BeforeCreate hook generates a UUIDv7 for new records
func (p *PriceHistory) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New()
	}
	return nil
}

// PricePerGram returns the recorded price of metal in currency.
func (p *PriceHistory) PricePerGram(metal Metal, currency Currency) float64 {
	switch {
	case metal == MetalGold && currency == CurrencyUSD:
		return p.GoldUSD
	case metal == MetalGold && currency == CurrencyPKR:
		return p.GoldPKR
	case metal == MetalSilver && currency == CurrencyUSD:
		return p.SilverUSD
	case metal == MetalSilver && currency == CurrencyPKR:
		return p.SilverPKR
	}
	panic("models: unknown metal/currency " + string(metal) + "/" + string(currency))
}
