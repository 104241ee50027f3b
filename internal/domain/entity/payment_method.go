package entity

// PaymentMethod enumerates how a customer chose to pay. The value is recorded
// on the order but no payment processing happens in this system.
type PaymentMethod string

const (
	// PaymentMethodUPI is a UPI transfer.
	PaymentMethodUPI PaymentMethod = "UPI"

	// PaymentMethodCard is a debit or credit card.
	PaymentMethodCard PaymentMethod = "Card"

	// PaymentMethodCOD is cash on delivery.
	PaymentMethodCOD PaymentMethod = "COD"
)

// Valid reports whether the value is one of the accepted payment methods.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodUPI, PaymentMethodCard, PaymentMethodCOD:
		return true
	default:
		return false
	}
}

// String returns the wire representation of the payment method.
func (m PaymentMethod) String() string {
	return string(m)
}
