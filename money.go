// Package money provides an immutable, exact-decimal monetary value bound to
// an ISO 4217 currency and a rounding mode. Every arithmetic operation brings
// the result back to the currency's minor-unit scale using the bound mode, so
// amounts never accumulate sub-cent residue.
package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Money represents an immutable monetary amount with currency and rounding
// mode. Fields are unexported to enforce immutability. The amount is always
// held at the currency's minor-unit scale.
type Money struct {
	amount   decimal.Decimal
	currency Currency
	rounding RoundingMode
}

// New creates a Money value from a decimal amount, rounding it to the
// currency scale with the given mode.
func New(amount decimal.Decimal, currency Currency, rounding RoundingMode) Money {
	return Money{
		amount:   rounding.apply(amount, currency.Scale()),
		currency: currency,
		rounding: rounding,
	}
}

// NewFromString parses an amount string into a Money value.
func NewFromString(amount string, currency Currency, rounding RoundingMode) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount %q: %w", amount, err)
	}
	return New(d, currency, rounding), nil
}

// MustParse is NewFromString panicking on error. Intended for tests and
// package-level variable initialization only.
func MustParse(amount string, currency Currency, rounding RoundingMode) Money {
	m, err := NewFromString(amount, currency, rounding)
	if err != nil {
		panic(err)
	}
	return m
}

// NewFromFloat64 converts a float64 into a Money value. The float is first
// converted to its shortest exact decimal representation, then rounded to the
// currency scale with the given mode.
func NewFromFloat64(amount float64, currency Currency, rounding RoundingMode) Money {
	return New(decimal.NewFromFloat(amount), currency, rounding)
}

// Zero returns a zero amount in the given currency and rounding mode.
func Zero(currency Currency, rounding RoundingMode) Money {
	return New(decimal.Zero, currency, rounding)
}

// Amount returns the decimal amount at currency scale.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency.
func (m Money) Currency() Currency {
	return m.currency
}

// Rounding returns the bound rounding mode.
func (m Money) Rounding() RoundingMode {
	return m.rounding
}

// IsZero returns true if the amount is zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive returns true if the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsNegative returns true if the amount is strictly less than zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// Add returns the sum of m and other, keeping m's rounding mode. Returns an
// error if the currencies do not match.
func (m Money) Add(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("currency mismatch: cannot add %s to %s", other.currency, m.currency)
	}
	return New(m.amount.Add(other.amount), m.currency, m.rounding), nil
}

// Subtract returns the difference of m minus other, keeping m's rounding
// mode. Returns an error if the currencies do not match.
func (m Money) Subtract(other Money) (Money, error) {
	if m.currency != other.currency {
		return Money{}, fmt.Errorf("currency mismatch: cannot subtract %s from %s", other.currency, m.currency)
	}
	return New(m.amount.Sub(other.amount), m.currency, m.rounding), nil
}

// Multiply returns m scaled by the given factor, rounded back to the currency
// scale with m's rounding mode.
func (m Money) Multiply(factor decimal.Decimal) Money {
	return New(m.amount.Mul(factor), m.currency, m.rounding)
}

// Negate returns m with the sign of the amount flipped.
func (m Money) Negate() Money {
	return Money{amount: m.amount.Neg(), currency: m.currency, rounding: m.rounding}
}

// Abs returns m with the absolute value of the amount.
func (m Money) Abs() Money {
	return Money{amount: m.amount.Abs(), currency: m.currency, rounding: m.rounding}
}

// Cmp compares m and other by amount, returning -1, 0 or 1. Returns an error
// if the currencies do not match.
func (m Money) Cmp(other Money) (int, error) {
	if m.currency != other.currency {
		return 0, fmt.Errorf("currency mismatch: cannot compare %s with %s", m.currency, other.currency)
	}
	return m.amount.Cmp(other.amount), nil
}

// GreaterThan returns true if m's amount is strictly greater than other's.
// Returns an error if the currencies do not match.
func (m Money) GreaterThan(other Money) (bool, error) {
	c, err := m.Cmp(other)
	if err != nil {
		return false, err
	}
	return c > 0, nil
}

// LessThan returns true if m's amount is strictly less than other's. Returns
// an error if the currencies do not match.
func (m Money) LessThan(other Money) (bool, error) {
	c, err := m.Cmp(other)
	if err != nil {
		return false, err
	}
	return c < 0, nil
}

// Equal returns true if amount, currency and rounding mode are all equal.
func (m Money) Equal(other Money) bool {
	return m.currency == other.currency &&
		m.rounding == other.rounding &&
		m.amount.Equal(other.amount)
}

// String formats the Money value as "<amount> <currency>" at currency scale,
// for example "100.00 CAD".
func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.amount.StringFixed(m.currency.Scale()), m.currency.Code())
}
