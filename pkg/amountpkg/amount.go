// Package amountpkg provides parsing and validation of money amounts.
package amountpkg

import (
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// minFloatExponent is the exponent of the smallest subnormal float64.
// Every float64 has an exact decimal expansion with at most this many fractional digits.
const minFloatExponent = -1074

// Parse converts s to a decimal amount. The sign is not checked.
func Parse(s string) (decimal.Decimal, error) {
	return decimal.NewFromString(s)
}

// FromFloat returns the exact decimal value of the binary float f.
//
// Unlike decimal.NewFromFloat it does not pick the shortest representation,
// so FromFloat(1000.123) is 1000.12300000000004729372449219226837158203125.
func FromFloat(f float64) decimal.Decimal {
	return decimal.NewFromFloatWithExponent(f, minFloatExponent)
}

// ValidDecimal validates whether the field holds a decimal number.
var ValidDecimal validator.Func = func(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := Parse(s)

	return err == nil
}
