package models

import (
	"time"

	"metalfolio/internal/uuid"

	"gorm.io/gorm"
)

// Base contains common columns for user-owned tables. Rows are hard-deleted:
// a deleted holding must stop contributing to valuations immediately.
type Base struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate hook generates a UUIDv7 for new records
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.New()
	}
	return nil
}
