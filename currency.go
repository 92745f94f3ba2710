package money

import (
	"fmt"
	"regexp"
)

var currencyCodeRe = regexp.MustCompile(`^[A-Z]{3}$`)

// minorUnits lists currencies whose minor-unit count differs from the usual
// two decimal places (ISO 4217 exponent).
var minorUnits = map[string]int32{
	"BHD": 3,
	"IQD": 3,
	"JOD": 3,
	"KWD": 3,
	"LYD": 3,
	"OMR": 3,
	"TND": 3,
	"JPY": 0,
	"KRW": 0,
	"VND": 0,
	"CLP": 0,
	"ISK": 0,
}

// Currency is an ISO 4217 currency code together with its minor-unit count,
// which fixes the scale monetary amounts are rounded to.
type Currency struct {
	code  string
	scale int32
}

// NewCurrency creates a Currency after validating the code is exactly 3
// uppercase letters.
func NewCurrency(code string) (Currency, error) {
	if !currencyCodeRe.MatchString(code) {
		return Currency{}, fmt.Errorf("invalid currency code %q: must be exactly 3 uppercase letters", code)
	}
	scale, ok := minorUnits[code]
	if !ok {
		scale = 2
	}
	return Currency{code: code, scale: scale}, nil
}

// MustCurrency creates a Currency and panics on error. Intended for
// package-level variable initialization only.
func MustCurrency(code string) Currency {
	c, err := NewCurrency(code)
	if err != nil {
		panic(err)
	}
	return c
}

// Code returns the ISO 4217 currency code.
func (c Currency) Code() string {
	return c.code
}

// Scale returns the number of minor-unit decimal places for the currency.
func (c Currency) Scale() int32 {
	return c.scale
}

// String returns the currency code.
func (c Currency) String() string {
	return c.code
}

// Common currencies.
var (
	CAD = MustCurrency("CAD")
	USD = MustCurrency("USD")
	EUR = MustCurrency("EUR")
	GBP = MustCurrency("GBP")
	JPY = MustCurrency("JPY")
)
