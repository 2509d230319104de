package order

import (
	"fmt"

	"inatpos/internal/pkg/errs"
)

// PaymentMethod is how a completed order was paid.
type PaymentMethod string

const (
	// PaymentMethodCash is payment in cash at the table or counter.
	PaymentMethodCash PaymentMethod = "cash"

	// PaymentMethodCard is payment by bank card.
	PaymentMethodCard PaymentMethod = "card"

	// PaymentMethodMobile is payment through a mobile money provider.
	PaymentMethodMobile PaymentMethod = "mobile"
)

// Validate checks that the method is one of the known payment methods.
func (m PaymentMethod) Validate() error {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodMobile:
		return nil
	}
	return errs.NewValueIsInvalidErrorWithCause(
		"payment method",
		fmt.Errorf("%q is not a valid payment method", string(m)),
	)
}

// String returns the method name used on the wire and in the database.
func (m PaymentMethod) String() string {
	return string(m)
}

// Payment records how an order was settled. It exists on an order only
// after payment processing and never changes afterwards.
type Payment struct {
	method         PaymentMethod
	amountReceived float64
	change         float64
	mobileProvider string
}

// NewPayment creates a payment record. The amount received must cover at
// least the change handed back, and a mobile payment must name its provider.
func NewPayment(method PaymentMethod, amountReceived, change float64, mobileProvider string) (Payment, error) {
	if err := method.Validate(); err != nil {
		return Payment{}, err
	}
	if amountReceived < 0 {
		return Payment{}, errs.NewValueIsInvalidErrorWithCause(
			"amount received",
			fmt.Errorf("%v is negative", amountReceived),
		)
	}
	if change < 0 {
		return Payment{}, errs.NewValueIsInvalidErrorWithCause(
			"change",
			fmt.Errorf("%v is negative", change),
		)
	}
	if method == PaymentMethodMobile && mobileProvider == "" {
		return Payment{}, errs.NewValueIsRequiredError("mobile provider")
	}

	return Payment{
		method:         method,
		amountReceived: amountReceived,
		change:         change,
		mobileProvider: mobileProvider,
	}, nil
}

// Method returns the payment method.
func (p Payment) Method() PaymentMethod { return p.method }

// AmountReceived returns the amount handed over by the customer.
func (p Payment) AmountReceived() float64 { return p.amountReceived }

// Change returns the amount handed back to the customer.
func (p Payment) Change() float64 { return p.change }

// MobileProvider returns the mobile money provider, empty unless the
// method is mobile.
func (p Payment) MobileProvider() string { return p.mobileProvider }
