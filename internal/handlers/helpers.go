package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	apperrors "metalfolio/internal/errors"
	"metalfolio/internal/middleware"
	"metalfolio/internal/models"
	"metalfolio/internal/uuid"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (string, error) {
	userID := c.GetString(middleware.UserIDKey)
	if userID == "" {
		return "", apperrors.ErrUnauthorized
	}
	return userID, nil
}

// parsePathID parses a UUID path parameter.
func parsePathID(c *gin.Context, param string) (string, error) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return id, nil
}

// parseCurrency reads the "currency" query parameter, defaulting to PKR.
func parseCurrency(c *gin.Context) (models.Currency, error) {
	currency := models.Currency(c.DefaultQuery("currency", string(models.CurrencyPKR)))
	if !currency.Valid() {
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "currency must be USD or PKR")
	}
	return currency, nil
}

// parseDate parses a calendar date in YYYY-MM-DD form as midnight UTC.
func parseDate(field, s string) (time.Time, error) {
	d, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, field+" must be a date in YYYY-MM-DD form")
	}
	return d, nil
}

// respondWithError writes a consistent JSON error response.
func respondWithError(c *gin.Context, err error) {
	middleware.WriteError(c, err)
}
