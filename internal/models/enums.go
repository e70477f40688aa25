package models

import "fmt"

// Metal is a supported precious metal.
type Metal string

const (
	MetalGold   Metal = "gold"
	MetalSilver Metal = "silver"
)

// Metals returns every supported metal in display order.
func Metals() []Metal {
	return []Metal{MetalGold, MetalSilver}
}

// Valid reports whether m is a supported metal.
func (m Metal) Valid() bool {
	return m == MetalGold || m == MetalSilver
}

// Title returns the display name of the metal, e.g. "Gold".
func (m Metal) Title() string {
	switch m {
	case MetalGold:
		return "Gold"
	case MetalSilver:
		return "Silver"
	}
	panic(fmt.Sprintf("models: unknown metal %q", string(m)))
}

// Purity is the karat grade of a holding. It is informational only.
type Purity string

const (
	Purity24K   Purity = "24K"
	Purity22K   Purity = "22K"
	Purity21K   Purity = "21K"
	Purity18K   Purity = "18K"
	Purity14K   Purity = "14K"
	Purity9K    Purity = "9K"
	PurityOther Purity = "other"
)

// Valid reports whether p is a recognised purity grade.
func (p Purity) Valid() bool {
	switch p {
	case Purity24K, Purity22K, Purity21K, Purity18K, Purity14K, Purity9K, PurityOther:
		return true
	}
	return false
}

// Currency is a currency prices and purchases can be denominated in.
// USD is the base currency of every upstream quote.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyPKR Currency = "PKR"
)

// Valid reports whether c is a supported currency.
func (c Currency) Valid() bool {
	return c == CurrencyUSD || c == CurrencyPKR
}

// Symbol returns the display symbol for c.
func (c Currency) Symbol() string {
	switch c {
	case CurrencyUSD:
		return "$"
	case CurrencyPKR:
		return "₨"
	}
	return string(c)
}

// DisplayCurrency is a user's preferred display currency. BOTH shows USD and PKR side by side.
type DisplayCurrency string

const (
	DisplayUSD  DisplayCurrency = "USD"
	DisplayPKR  DisplayCurrency = "PKR"
	DisplayBoth DisplayCurrency = "BOTH"
)

// Valid reports whether d is a recognised display currency.
func (d DisplayCurrency) Valid() bool {
	switch d {
	case DisplayUSD, DisplayPKR, DisplayBoth:
		return true
	}
	return false
}

// NotificationFrequency controls how often price notifications are sent.
type NotificationFrequency string

const (
	NotifyDaily   NotificationFrequency = "daily"
	NotifyWeekly  NotificationFrequency = "weekly"
	NotifyMonthly NotificationFrequency = "monthly"
	NotifyNever   NotificationFrequency = "never"
)

// Valid reports whether f is a recognised notification frequency.
func (f NotificationFrequency) Valid() bool {
	switch f {
	case NotifyDaily, NotifyWeekly, NotifyMonthly, NotifyNever:
		return true
	}
	return false
}
