// Package money provides fixed-point currency amounts in minor units.
//
// Every balance calculation in the engine works on Amount values so that
// rounding happens exactly once, at the boundary where a float or string
// enters the system. Carrying fractional cents between calculations is the
// main source of drift in split apps, and integer cents make it impossible.
package money

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Amount is a quantity of money in minor units (cents for 2-decimal
// currencies). It is signed: negative amounts represent money owed.
type Amount int64

// FromFloat converts a float amount of major units (e.g. 12.34) to minor
// units, rounding half away from zero.
func FromFloat(f float64) Amount {
	return Amount(math.Round(f * 100))
}

// Parse converts a decimal string (e.g. "12.34") to minor units. Amounts
// with more than two fraction digits are rejected rather than silently
// rounded.
func Parse(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	cents := d.Shift(2)
	if !cents.IsInteger() {
		return 0, fmt.Errorf("amount %q has more than two decimal places", s)
	}
	return Amount(cents.IntPart()), nil
}

// Float64 returns the amount in major units. Safe for display and JSON
// encoding: any amount below ~2^53 cents is exactly representable.
func (a Amount) Float64() float64 {
	return float64(a) / 100
}

// Decimal returns the amount as an exact decimal in major units.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.New(int64(a), -2)
}

// Abs returns the magnitude of the amount.
func (a Amount) Abs() Amount {
	if a < 0 {
		return -a
	}
	return a
}

// String formats the amount in major units with two decimals, e.g. "-3.07".
func (a Amount) String() string {
	c := int64(a)
	sign := ""
	if c < 0 {
		sign = "-"
		c = -c
	}
	return fmt.Sprintf("%s%d.%02d", sign, c/100, c%100)
}
