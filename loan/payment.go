package loan

import (
	"time"

	"github.com/gheinze-sandbox/money"
)

// ScheduledPayment is one line item of an amortization schedule: a single
// periodic payment split into its interest and principal portions, together
// with the balance remaining after the payment is applied. Values are
// immutable once produced.
type ScheduledPayment struct {
	// PaymentNumber is the 1-based period index.
	PaymentNumber int

	// PaymentDate is the adjustment date advanced by PaymentNumber months.
	PaymentDate time.Time

	Interest  money.Money
	Principal money.Money
	Balance   money.Money
}

// Payment returns the total charged for the period, interest plus principal.
func (p ScheduledPayment) Payment() (money.Money, error) {
	return p.Interest.Add(p.Principal)
}

// Equal reports value equality over all fields.
func (p ScheduledPayment) Equal(other ScheduledPayment) bool {
	return p.PaymentNumber == other.PaymentNumber &&
		p.PaymentDate.Equal(other.PaymentDate) &&
		p.Interest.Equal(other.Interest) &&
		p.Principal.Equal(other.Principal) &&
		p.Balance.Equal(other.Balance)
}
