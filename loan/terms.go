// Package loan computes amortization schedules: given the terms of a loan it
// derives the periodic payment and walks month by month from the adjustment
// date to payoff or term end, splitting each payment into interest, principal
// and remaining balance.
package loan

import (
	"errors"
	"fmt"
	"time"

	"github.com/gheinze-sandbox/money"
)

// CompoundingPeriod is a named interest-compounding frequency. Its value is
// the number of compounding periods per year.
type CompoundingPeriod int

const (
	// CompoundingMonthly compounds 12 times a year, the American convention.
	CompoundingMonthly CompoundingPeriod = 12
	// CompoundingSemiAnnually compounds twice a year, the Canadian mortgage
	// convention.
	CompoundingSemiAnnually CompoundingPeriod = 2
	// CompoundingAnnually compounds once a year.
	CompoundingAnnually CompoundingPeriod = 1
)

// PeriodsPerYear returns the number of compounding periods per year.
func (c CompoundingPeriod) PeriodsPerYear() int {
	return int(c)
}

// String returns the name of the compounding period.
func (c CompoundingPeriod) String() string {
	switch c {
	case CompoundingMonthly:
		return "Monthly"
	case CompoundingSemiAnnually:
		return "SemiAnnually"
	case CompoundingAnnually:
		return "Annually"
	}
	return fmt.Sprintf("CompoundingPeriod(%d)", int(c))
}

// AmortizationTerms holds the caller-supplied properties required to compute
// a payment schedule. The engine never mutates a terms value.
type AmortizationTerms struct {
	// LoanAmount is the original principal. Its currency and rounding mode
	// are used for all monetary values the schedule emits.
	LoanAmount money.Money

	// RegularPayment is the requested monthly payment. For amortized loans a
	// surplus over the calculated payment is applied as extra principal each
	// period; for interest-only loans it is accepted but never consulted.
	RegularPayment money.Money

	// StartDate is the legal start date of the loan.
	StartDate time.Time

	// AdjustmentDate is the date amortization calculations commence. It may
	// differ from StartDate to align payments to a billing cycle.
	AdjustmentDate time.Time

	// TermInMonths is the number of months after which the schedule stops
	// and any remaining principal is due in full.
	TermInMonths int

	// InterestOnly selects the interest-only payment mode: no principal is
	// ever retired and the balance stays constant.
	InterestOnly bool

	// AmortizationPeriodMonths is the number of months over which payments
	// are amortized. Paid to completion, the remaining principal would be
	// zero. Unused for interest-only loans.
	AmortizationPeriodMonths int

	// CompoundingPeriodsPerYear is the number of times a year interest
	// compounding is calculated. Canadian rules: 2. American rules: 12.
	CompoundingPeriodsPerYear int

	// InterestRate is the nominal annual rate as a percentage, e.g. 8.0 for
	// 8%. The effective rate is higher when compounding.
	InterestRate float64
}

// Validate reports whether the terms can produce a schedule at all. The
// requested-payment floor is checked separately at schedule construction,
// once the calculated payment is known.
func (t AmortizationTerms) Validate() error {
	if !t.LoanAmount.IsPositive() {
		return errors.New("loan amount must be positive")
	}
	if t.TermInMonths <= 0 {
		return errors.New("term in months must be positive")
	}
	if t.RegularPayment.Currency() != t.LoanAmount.Currency() {
		return fmt.Errorf("currency mismatch: regular payment in %s, loan amount in %s",
			t.RegularPayment.Currency(), t.LoanAmount.Currency())
	}
	if t.InterestRate < 0 {
		return errors.New("interest rate must not be negative")
	}
	if t.InterestOnly {
		return nil
	}
	if t.AmortizationPeriodMonths <= 0 {
		return errors.New("amortization period in months must be positive")
	}
	if t.CompoundingPeriodsPerYear <= 0 {
		return errors.New("compounding periods per year must be positive")
	}
	if t.InterestRate == 0 {
		return errors.New("interest rate must be positive for an amortized loan")
	}
	return nil
}
