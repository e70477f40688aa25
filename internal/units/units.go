// Package units converts metal quantities between the supported mass units.
// Grams are the base unit; every other unit is defined by its gram factor in
// gramsPerUnit, which is the only place these factors live.
package units

import (
	"fmt"
	"strconv"
)

// Unit is a mass unit a holding's quantity can be recorded in.
type Unit string

const (
	Gram     Unit = "gram"
	Tola     Unit = "tola"
	Ounce    Unit = "ounce" // troy ounce
	Kilogram Unit = "kilogram"
)

// GramsPerTroyOunce is the factor used to turn per-ounce market quotes into per-gram prices.
const GramsPerTroyOunce = 31.1035

var gramsPerUnit = map[Unit]float64{
	Gram:     1,
	Tola:     11.6638,
	Ounce:    GramsPerTroyOunce,
	Kilogram: 1000,
}

var unitSymbols = map[Unit]string{
	Gram:     "g",
	Tola:     "tola",
	Ounce:    "oz",
	Kilogram: "kg",
}

// Valid reports whether u is one of the supported units.
func (u Unit) Valid() bool {
	_, ok := gramsPerUnit[u]
	return ok
}

// Factor returns the number of grams in one u. It panics on an unknown unit:
// units are validated at the boundary, so reaching here with one is a bug.
func Factor(u Unit) float64 {
	f, ok := gramsPerUnit[u]
	if !ok {
		panic(fmt.Sprintf("units: unknown unit %q", string(u)))
	}
	return f
}

// ToBaseUnit converts quantity in u to grams.
func ToBaseUnit(quantity float64, u Unit) float64 {
	return quantity * Factor(u)
}

// FromBaseUnit converts grams to a quantity in u.
func FromBaseUnit(grams float64, u Unit) float64 {
	return grams / Factor(u)
}

// PerOunceToPerGram converts a price quoted per troy ounce into a price per gram.
func PerOunceToPerGram(pricePerOunce float64) float64 {
	return pricePerOunce / GramsPerTroyOunce
}

// Symbol returns the short display symbol for u.
func (u Unit) Symbol() string {
	if s, ok := unitSymbols[u]; ok {
		return s
	}
	return string(u)
}

// FormatQuantity renders a quantity in its own unit, annotated with the gram
// equivalent for non-gram units, e.g. "2 tola (23.33g)".
func FormatQuantity(quantity float64, u Unit) string {
	q := strconv.FormatFloat(quantity, 'f', -1, 64)
	if u == Gram {
		return q + u.Symbol()
	}
	return fmt.Sprintf("%s %s (%.2fg)", q, u.Symbol(), ToBaseUnit(quantity, u))
}
