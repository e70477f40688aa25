// Package provider defines the upstream market-data sources: a metals-price
// source quoting spot prices per troy ounce and an FX-rate source quoting
// USD exchange rates. Sources perform I/O only; caching and fallback live in
// the pricing package.
package provider

import (
	"context"
	"errors"
	"fmt"
)

// ErrNoCredential is returned, without any network access, when a source has
// no API key configured.
var ErrNoCredential = errors.New("api key not configured")

// MetalPriceSource fetches the spot price of a metal per troy ounce.
type MetalPriceSource interface {
	// Name returns the source's display name.
	Name() string

	// FetchPricePerOunce fetches the current price of the metal identified by
	// symbol (e.g. "XAU", "XAG") in the given currency.
	FetchPricePerOunce(ctx context.Context, symbol, currency string) (float64, error)
}

// FXRateSource fetches exchange rates.
type FXRateSource interface {
	// Name returns the source's display name.
	Name() string

	// FetchRate returns how many units of target one unit of base buys.
	FetchRate(ctx context.Context, base, target string) (float64, error)
}

// StatusError reports a non-2xx response from an upstream source.
type StatusError struct {
	Source     string
	StatusCode int
}

// Error implements the error interface.
func (e *StatusError) Error() string {
	return fmt.Sprintf("%s request failed: unexpected status %d", e.Source, e.StatusCode)
}
