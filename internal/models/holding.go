package models

import (
	"time"

	"metalfolio/internal/units"
)

// Holding is one lot purchase of a metal owned by a single user.
// Quantity is expressed in Unit and PurchasePrice is the price paid per Unit,
// denominated in Currency.
type Holding struct {
	Base
	UserID        string     `gorm:"type:uuid;not null;index" json:"user_id"`
	Metal         Metal      `gorm:"not null" json:"metal"`
	Purity        Purity     `gorm:"not null" json:"purity"`
	Quantity      float64    `gorm:"not null" json:"quantity"`
	Unit          units.Unit `gorm:"not null" json:"unit"`
	PurchasePrice float64    `gorm:"column:buy_price;not null" json:"buy_price"`
	Currency      Currency   `gorm:"not null" json:"currency"`
	PurchaseDate  time.Time  `gorm:"column:buy_date;type:date;not null" json:"buy_date"`
}

// Grams returns the holding's quantity in the base unit.
func (h *Holding) Grams() float64 {
	return units.ToBaseUnit(h.Quantity, h.Unit)
}

// PurchaseValue returns the total amount paid, in the holding's own currency.
func (h *Holding) PurchaseValue() float64 {
	return h.PurchasePrice * h.Quantity
}
