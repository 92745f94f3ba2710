package loan

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/gheinze-sandbox/money"
)

// daysPerYear is assumed constant for per-diem interest, regardless of the
// actual calendar year.
const daysPerYear = 365

// PeriodRate converts a nominal annual rate into the effective rate per
// monthly period such that the annual compounding effect matches the given
// compounding frequency.
//
//	j = (1 + rate/(c*100))^(c/12) - 1
//
// The exponent normalizes to a 12-period year, so the result is a
// monthly-equivalent rate whatever the compounding frequency.
func PeriodRate(annualRatePercent float64, compoundingPeriodsPerYear int) float64 {
	c := float64(compoundingPeriodsPerYear)
	return math.Pow(1+annualRatePercent/(c*100.0), c/12.0) - 1
}

// InterestOnlyMonthlyPayment returns the raw monthly interest charge for an
// interest-only loan. No rounding is applied; the caller rounds to currency
// scale.
func InterestOnlyMonthlyPayment(amount float64, annualRatePercent float64) float64 {
	// percent to decimal, annual rate to monthly rate
	return amount * annualRatePercent / 100.0 / 12.0
}

// AmortizedMonthlyPayment returns the raw level monthly payment that retires
// the loan over the amortization period, using the monthly-equivalent period
// rate. No rounding is applied; the caller rounds to currency scale.
func AmortizedMonthlyPayment(
	loanAmount money.Money,
	annualRatePercent float64,
	compoundingPeriodsPerYear int,
	amortizationPeriodMonths int,
) float64 {
	a := loanAmount.Amount().InexactFloat64()
	j := PeriodRate(annualRatePercent, compoundingPeriodsPerYear)

	// payments per year, amortization period in years
	n := 12.0
	y := float64(amortizationPeriodMonths) / 12.0

	return a * j / (1.0 - math.Pow(j+1.0, -n*y))
}

// MonthlyPayment returns the calculated periodic payment for the terms,
// interest-only or amortized per the mode flag, rounded to the loan's
// currency scale with its rounding mode.
func MonthlyPayment(terms AmortizationTerms) money.Money {
	var raw float64
	if terms.InterestOnly {
		raw = InterestOnlyMonthlyPayment(terms.LoanAmount.Amount().InexactFloat64(), terms.InterestRate)
	} else {
		raw = AmortizedMonthlyPayment(
			terms.LoanAmount,
			terms.InterestRate,
			terms.CompoundingPeriodsPerYear,
			terms.AmortizationPeriodMonths,
		)
	}
	return money.NewFromFloat64(raw, terms.LoanAmount.Currency(), terms.LoanAmount.Rounding())
}

// PerDiem returns one day's interest on the given balance, rounded to
// currency scale. Typically used for the initial adjustment amount or late
// payments on payout. Assumes a constant 365-day year.
func PerDiem(amount money.Money, annualRatePercent float64) money.Money {
	return amount.Multiply(decimal.NewFromFloat(annualRatePercent * 0.01 / daysPerYear))
}

// AdjustmentAmount returns the per-diem interest multiplied by a day count.
// The daily amount is rounded to currency scale before multiplying, so
// fractional units accumulate: a raw per-diem of 32.111 becomes 32.12, and
// over 100 days the charge is 3212.00, not 3211.10. This matches adjustment
// charge convention and is not a periodic interest calculation.
func AdjustmentAmount(amount money.Money, annualRatePercent float64, days int) money.Money {
	return PerDiem(amount, annualRatePercent).Multiply(decimal.NewFromInt(int64(days)))
}
