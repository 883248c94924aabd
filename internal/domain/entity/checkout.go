// Package entity contains the core business objects of the project.
package entity

import (
	"strconv"
	"time"

	"github.com/google/uuid"
)

// CheckoutStep is the ordinal position in the linear checkout flow.
// There is no backward transition; abandoning simply discards the instance.
type CheckoutStep string

const (
	// StepDetails collects the shipping details form.
	StepDetails CheckoutStep = "details"
	// StepPayment collects the payment method and settles the charge.
	StepPayment CheckoutStep = "payment"
	// StepConfirmation is terminal; the receipt is available here.
	StepConfirmation CheckoutStep = "confirmation"
)

// PaymentMethod identifies how the shopper pays.
type PaymentMethod string

const (
	// PaymentMethodCard is a credit or debit card payment.
	PaymentMethodCard PaymentMethod = "card"
	// PaymentMethodUPI is a UPI intent payment (GPay, PhonePe, ...).
	PaymentMethodUPI PaymentMethod = "upi"
)

// IsValid checks if the payment method is a known value.
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCard, PaymentMethodUPI:
		return true
	default:
		return false
	}
}

// ShippingDetails is the address block collected at the details step.
// All fields are required; no format validation beyond presence is applied.
type ShippingDetails struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	City    string `json:"city"`
	Zip     string `json:"zip"`
}

// Receipt is the synthetic settlement record produced on confirmation.
// It lives only as long as the checkout instance; nothing persists it.
type Receipt struct {
	TransactionID string        `json:"transaction_id"`
	Total         float64       `json:"total"`
	Method        PaymentMethod `json:"method"`
	Email         string        `json:"email"`
	Phone         string        `json:"phone"`
	PlacedAt      time.Time     `json:"placed_at"`
}

// Checkout is one in-progress checkout flow for a session. A fresh instance
// is created every time checkout is entered; the InstanceID lets a settlement
// that finishes late detect that the shopper has since abandoned and restarted.
type Checkout struct {
	InstanceID     uuid.UUID       `json:"instance_id"`
	Step           CheckoutStep    `json:"step"`
	Shipping       ShippingDetails `json:"shipping"`
	Method         PaymentMethod   `json:"method,omitempty"`
	Total          float64         `json:"total"` // Cart total snapshot taken when checkout was entered.
	PaymentPending bool            `json:"payment_pending"`
	Receipt        *Receipt        `json:"receipt,omitempty"`
	StartedAt      time.Time       `json:"started_at"`
}

// NewCheckout starts a fresh checkout flow at the details step.
func NewCheckout(cartTotal float64, now time.Time) *Checkout {
	return &Checkout{
		InstanceID: uuid.New(),
		Step:       StepDetails,
		Total:      cartTotal,
		StartedAt:  now,
	}
}

// NewTransactionID derives a display transaction id from a timestamp,
// keeping the last eight digits of the millisecond clock behind a TRX prefix.
func NewTransactionID(now time.Time) string {
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	if len(millis) > 8 {
		millis = millis[len(millis)-8:]
	}

	return "TRX" + millis
}
