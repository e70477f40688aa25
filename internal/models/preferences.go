package models

import "metalfolio/internal/units"

// UserPreferences stores per-user display and notification settings.
type UserPreferences struct {
	Base
	UserID                string                `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	Currency              DisplayCurrency       `gorm:"not null;default:'PKR'" json:"currency"`
	Unit                  units.Unit            `gorm:"not null;default:'tola'" json:"unit"`
	PriceAlertThreshold   float64               `gorm:"not null;default:5" json:"price_alert_threshold"`
	PushNotifications     bool                  `gorm:"not null;default:true" json:"push_notifications"`
	NotificationFrequency NotificationFrequency `gorm:"not null;default:'daily'" json:"notification_frequency"`
}

// DefaultPreferences returns the preferences a user starts with.
func DefaultPreferences(userID string) *UserPreferences {
	return &UserPreferences{
		UserID:                userID,
		Currency:              DisplayPKR,
		Unit:                  units.Tola,
		PriceAlertThreshold:   5,
		PushNotifications:     true,
		NotificationFrequency: NotifyDaily,
	}
}
