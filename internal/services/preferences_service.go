package services

import (
	"gorm.io/gorm"

	apperrors "metalfolio/internal/errors"
	"metalfolio/internal/models"
)

// preferencesService handles per-user display and notification settings.
type preferencesService struct {
	db *gorm.DB
}

// NewPreferencesService creates a new PreferencesServicer.
func NewPreferencesService(db *gorm.DB) PreferencesServicer {
	return &preferencesService{db: db}
}

// GetPreferences returns the user's preferences, creating the defaults on
// first access.
func (s *preferencesService) GetPreferences(userID string) (*models.UserPreferences, error) {
	var prefs models.UserPreferences
	if err := s.db.Where(models.UserPreferences{UserID: userID}).
		Attrs(*models.DefaultPreferences(userID)).
		FirstOrCreate(&prefs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &prefs, nil
}

// UpdatePreferences applies the non-nil fields of upd.
func (s *preferencesService) UpdatePreferences(userID string, upd PreferencesUpdate) (*models.UserPreferences, error) {
	switch {
	case upd.Currency != nil && !upd.Currency.Valid():
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unsupported display currency")
	case upd.Unit != nil && !upd.Unit.Valid():
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unsupported unit")
	case upd.NotificationFrequency != nil && !upd.NotificationFrequency.Valid():
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Unsupported notification frequency")
	case upd.PriceAlertThreshold != nil && (*upd.PriceAlertThreshold < 0 || *upd.PriceAlertThreshold > 100):
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "Price alert threshold must be between 0 and 100")
	}

	prefs, err := s.GetPreferences(userID)
	if err != nil {
		return nil, err
	}

	if upd.Currency != nil {
		prefs.Currency = *upd.Currency
	}
	if upd.Unit != nil {
		prefs.Unit = *upd.Unit
	}
	if upd.PriceAlertThreshold != nil {
		prefs.PriceAlertThreshold = *upd.PriceAlertThreshold
	}
	if upd.PushNotifications != nil {
		prefs.PushNotifications = *upd.PushNotifications
	}
	if upd.NotificationFrequency != nil {
		prefs.NotificationFrequency = *upd.NotificationFrequency
	}

	if err := s.db.Save(prefs).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return prefs, nil
}
