// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"metalfolio/internal/models"
	"metalfolio/internal/units"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterOn(v)
	}
}

// RegisterOn registers the custom validators on v.
func RegisterOn(v *validator.Validate) {
	_ = v.RegisterValidation("metal", validateMetal)
	_ = v.RegisterValidation("purity", validatePurity)
	_ = v.RegisterValidation("unit", validateUnit)
	_ = v.RegisterValidation("currency", validateCurrency)
	_ = v.RegisterValidation("display_currency", validateDisplayCurrency)
	_ = v.RegisterValidation("notification_frequency", validateNotificationFrequency)
}

func validateMetal(fl validator.FieldLevel) bool {
	return models.Metal(fl.Field().String()).Valid()
}

func validatePurity(fl validator.FieldLevel) bool {
	return models.Purity(fl.Field().String()).Valid()
}

func validateUnit(fl validator.FieldLevel) bool {
	return units.Unit(fl.Field().String()).Valid()
}

func validateCurrency(fl validator.FieldLevel) bool {
	return models.Currency(fl.Field().String()).Valid()
}

func validateDisplayCurrency(fl validator.FieldLevel) bool {
	return models.DisplayCurrency(fl.Field().String()).Valid()
}

func validateNotificationFrequency(fl validator.FieldLevel) bool {
	return models.NotificationFrequency(fl.Field().String()).Valid()
}
