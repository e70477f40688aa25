package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "metalfolio/internal/errors"
	"metalfolio/internal/models"
	"metalfolio/internal/services"
	"metalfolio/internal/units"
)

// PreferencesHandler handles user preference requests.
type PreferencesHandler struct {
	preferencesService services.PreferencesServicer
}

// NewPreferencesHandler creates a new PreferencesHandler.
func NewPreferencesHandler(preferencesService services.PreferencesServicer) *PreferencesHandler {
	return &PreferencesHandler{preferencesService: preferencesService}
}

// UpdatePreferencesRequest represents a partial preferences update.
type UpdatePreferencesRequest struct {
	Currency              *models.DisplayCurrency       `json:"currency" binding:"omitempty,display_currency"`
	Unit                  *units.Unit                   `json:"unit" binding:"omitempty,unit"`
	PriceAlertThreshold   *float64                      `json:"price_alert_threshold" binding:"omitempty,gte=0,lte=100"`
	PushNotifications     *bool                         `json:"push_notifications"`
	NotificationFrequency *models.NotificationFrequency `json:"notification_frequency" binding:"omitempty,notification_frequency"`
}

// GetPreferences handles fetching the user's preferences.
// @Summary     Get preferences
// @Description Get the authenticated user's preferences, creating defaults on first access
// @Tags        preferences
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} models.UserPreferences "Preferences"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /preferences [get]
func (h *PreferencesHandler) GetPreferences(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	prefs, err := h.preferencesService.GetPreferences(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}

// UpdatePreferences handles a partial preferences update.
// @Summary     Update preferences
// @Tags        preferences
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body UpdatePreferencesRequest true "Fields to change"
// @Success     200 {object} models.UserPreferences "Preferences updated"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /preferences [put]
func (h *PreferencesHandler) UpdatePreferences(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	prefs, err := h.preferencesService.UpdatePreferences(userID, services.PreferencesUpdate{
		Currency:              req.Currency,
		Unit:                  req.Unit,
		PriceAlertThreshold:   req.PriceAlertThreshold,
		PushNotifications:     req.PushNotifications,
		NotificationFrequency: req.NotificationFrequency,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"preferences": prefs})
}
