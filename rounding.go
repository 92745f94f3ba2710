package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RoundingMode selects how an amount is brought back to its currency scale
// after arithmetic. The zero value is RoundHalfUp.
type RoundingMode int

const (
	// RoundHalfUp rounds to the nearest value, ties away from zero.
	RoundHalfUp RoundingMode = iota
	// RoundHalfEven rounds to the nearest value, ties to the even neighbor.
	RoundHalfEven
	// RoundCeiling rounds toward positive infinity.
	RoundCeiling
	// RoundFloor rounds toward negative infinity.
	RoundFloor
	// RoundUp rounds away from zero.
	RoundUp
	// RoundDown rounds toward zero (truncation).
	RoundDown
)

// String returns the name of the rounding mode.
func (r RoundingMode) String() string {
	switch r {
	case RoundHalfUp:
		return "HALF_UP"
	case RoundHalfEven:
		return "HALF_EVEN"
	case RoundCeiling:
		return "CEILING"
	case RoundFloor:
		return "FLOOR"
	case RoundUp:
		return "UP"
	case RoundDown:
		return "DOWN"
	}
	return fmt.Sprintf("RoundingMode(%d)", int(r))
}

// apply rounds d to the given number of decimal places using the mode.
func (r RoundingMode) apply(d decimal.Decimal, places int32) decimal.Decimal {
	switch r {
	case RoundHalfEven:
		return d.RoundBank(places)
	case RoundCeiling:
		return d.RoundCeil(places)
	case RoundFloor:
		return d.RoundFloor(places)
	case RoundUp:
		return d.RoundUp(places)
	case RoundDown:
		return d.RoundDown(places)
	}
	return d.Round(places)
}
