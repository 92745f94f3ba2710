package loan

import (
	"errors"
	"fmt"
	"time"

	"github.com/gheinze-sandbox/money"
)

// ErrScheduleExhausted is returned by Schedule.Next once every payment in the
// schedule has been produced.
var ErrScheduleExhausted = errors.New("no payments remain in the schedule")

// Schedule lazily produces the ordered payments fulfilling a set of
// amortization terms, one period at a time. It is a forward-only, single-use
// sequence: construct it, pull payments with HasNext/Next until exhaustion,
// then discard it. A schedule owns its running state exclusively, so
// independent schedules may be consumed from different goroutines without
// locking.
//
// If the requested regular payment is greater than the calculated
// amortization payment, the monthly surplus is applied as an extra principal
// payment each period.
type Schedule struct {
	terms AmortizationTerms

	// zeroAmount carries the loan's currency and rounding mode.
	zeroAmount        money.Money
	calculatedPayment money.Money

	// Payments produced so far.
	paymentNumber    int
	remainingBalance money.Money

	// Amortized variant only.
	periodRate      float64
	periodicPayment money.Money
}

// NewSchedule validates the terms and constructs a schedule positioned before
// the first payment. A failing validation yields no schedule at all.
func NewSchedule(terms AmortizationTerms) (*Schedule, error) {
	if err := terms.Validate(); err != nil {
		return nil, fmt.Errorf("invalid amortization terms: %w", err)
	}

	currency := terms.LoanAmount.Currency()
	rounding := terms.LoanAmount.Rounding()

	calculated := MonthlyPayment(terms)

	// The regular payment has to be at least the calculated payment.
	if below, err := terms.RegularPayment.LessThan(calculated); err != nil {
		return nil, err
	} else if below {
		return nil, fmt.Errorf("regular payment %s is below the calculated periodic payment %s",
			terms.RegularPayment, calculated)
	}

	s := &Schedule{
		terms:             terms,
		zeroAmount:        money.Zero(currency, rounding),
		calculatedPayment: calculated,
		remainingBalance:  terms.LoanAmount,
	}

	if !terms.InterestOnly {
		s.periodRate = PeriodRate(terms.InterestRate, terms.CompoundingPeriodsPerYear)

		// Paying more than the calculated minimum retires extra principal.
		s.periodicPayment = calculated
		if more, err := terms.RegularPayment.GreaterThan(calculated); err != nil {
			return nil, err
		} else if more {
			s.periodicPayment = terms.RegularPayment
		}
	}

	return s, nil
}

// CalculatedPayment returns the theoretical minimum periodic payment for the
// terms, computed once at construction.
func (s *Schedule) CalculatedPayment() money.Money {
	return s.calculatedPayment
}

// HasNext reports whether another payment remains: the term has not been
// reached and there is still a balance to pay down.
func (s *Schedule) HasNext() bool {
	return s.paymentNumber < s.terms.TermInMonths && s.remainingBalance.IsPositive()
}

// Next produces the next payment in the schedule. It returns
// ErrScheduleExhausted when no payment remains.
func (s *Schedule) Next() (ScheduledPayment, error) {
	if !s.HasNext() {
		return ScheduledPayment{}, ErrScheduleExhausted
	}
	if s.terms.InterestOnly {
		return s.nextInterestOnly(), nil
	}
	return s.nextAmortized()
}

// nextInterestOnly emits a constant-interest period: the payment is always
// exactly the calculated interest charge, no principal is retired and the
// balance never moves. The requested regular payment is ignored.
func (s *Schedule) nextInterestOnly() ScheduledPayment {
	s.paymentNumber++
	return ScheduledPayment{
		PaymentNumber: s.paymentNumber,
		PaymentDate:   addMonths(s.terms.AdjustmentDate, s.paymentNumber),
		Interest:      s.calculatedPayment,
		Principal:     s.zeroAmount,
		Balance:       s.terms.LoanAmount,
	}
}

// nextAmortized charges interest on the current balance and applies the rest
// of the level payment to principal.
func (s *Schedule) nextAmortized() (ScheduledPayment, error) {
	s.paymentNumber++
	date := addMonths(s.terms.AdjustmentDate, s.paymentNumber)

	// Interest is re-derived from the true balance each period and rounded
	// independently, so rounding error never carries over.
	computedInterest := s.remainingBalance.Amount().InexactFloat64() * s.periodRate
	interest := money.NewFromFloat64(computedInterest,
		s.terms.LoanAmount.Currency(), s.terms.LoanAmount.Rounding())

	// The periodic payment is level, so anything that is not interest is
	// principal. The final payment is clamped so the balance cannot go
	// negative.
	principal, err := s.periodicPayment.Subtract(interest)
	if err != nil {
		return ScheduledPayment{}, err
	}
	if over, err := principal.GreaterThan(s.remainingBalance); err != nil {
		return ScheduledPayment{}, err
	} else if over {
		principal = s.remainingBalance
	}

	s.remainingBalance, err = s.remainingBalance.Subtract(principal)
	if err != nil {
		return ScheduledPayment{}, err
	}

	return ScheduledPayment{
		PaymentNumber: s.paymentNumber,
		PaymentDate:   date,
		Interest:      interest,
		Principal:     principal,
		Balance:       s.remainingBalance,
	}, nil
}

// Payments generates the complete schedule for the terms eagerly. The result
// is bounded by TermInMonths, or shorter if the balance is paid off first.
func Payments(terms AmortizationTerms) ([]ScheduledPayment, error) {
	s, err := NewSchedule(terms)
	if err != nil {
		return nil, err
	}

	schedule := make([]ScheduledPayment, 0, terms.TermInMonths)
	for s.HasNext() {
		p, err := s.Next()
		if err != nil {
			return nil, err
		}
		schedule = append(schedule, p)
	}
	return schedule, nil
}

// addMonths advances a date by whole months, clamping the day of month to the
// end of the target month: Jan 31 + 1 month = Feb 28, not Mar 3.
func addMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := first.AddDate(0, 1, -1).Day(); day > last {
		day = last
	}
	return first.AddDate(0, 0, day-1)
}
