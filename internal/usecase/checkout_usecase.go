// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"boutique/internal/domain/entity"
)

// CheckoutUsecase drives the linear details → payment → confirmation flow
// for one shopping session. At most one checkout instance exists per session;
// beginning a new one discards any previous instance.
type CheckoutUsecase interface {
	// Begin starts a fresh checkout at the details step, snapshotting the
	// cart total. Fails when the cart is empty.
	Begin(ctx context.Context, sessionID string) (*CheckoutView, error)

	// Get returns the current checkout instance.
	Get(ctx context.Context, sessionID string) (*CheckoutView, error)

	// SubmitShipping validates the shipping form and advances to payment.
	SubmitShipping(ctx context.Context, sessionID string, input *ShippingInput) (*CheckoutView, error)

	// SubmitPayment settles the charge through the payment gateway. The call
	// blocks for the simulated settlement window; concurrent submissions for
	// the same checkout are rejected while one is pending. On approval the
	// cart is cleared and a receipt is issued.
	SubmitPayment(ctx context.Context, sessionID string, input *PaymentInput) (*CheckoutView, error)

	// UPIQRCode renders the payment QR for the current checkout. Only valid
	// at the payment step.
	UPIQRCode(ctx context.Context, sessionID string) ([]byte, error)

	// Abandon discards the in-progress checkout, if any.
	Abandon(ctx context.Context, sessionID string) error
}

// ShippingInput is the details-step form. Presence is the only validation,
// mirroring the storefront's behavior.
type ShippingInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Address string `json:"address" validate:"required"`
	City    string `json:"city" validate:"required"`
	Zip     string `json:"zip" validate:"required"`
}

// Details converts the input into the entity form.
func (s *ShippingInput) Details() entity.ShippingDetails {
	return entity.ShippingDetails{
		Name:    s.Name,
		Email:   s.Email,
		Phone:   s.Phone,
		Address: s.Address,
		City:    s.City,
		Zip:     s.Zip,
	}
}

// PaymentInput is the payment-step form. The method decides which fields are
// required; no validation beyond presence is performed on any of them.
type PaymentInput struct {
	Method     string `json:"method" validate:"required,oneof=card upi"`
	CardNumber string `json:"card_number" validate:"required_if=Method card"`
	CardExpiry string `json:"card_expiry" validate:"required_if=Method card"`
	CardCVV    string `json:"card_cvv" validate:"required_if=Method card"`
	UPIID      string `json:"upi_id" validate:"required_if=Method upi"`
}

// CheckoutView is the checkout instance as exposed to the delivery layer.
type CheckoutView struct {
	Step           entity.CheckoutStep    `json:"step"`
	Shipping       entity.ShippingDetails `json:"shipping"`
	Method         entity.PaymentMethod   `json:"method,omitempty"`
	Total          float64                `json:"total"`
	PaymentPending bool                   `json:"payment_pending"`
	Receipt        *entity.Receipt        `json:"receipt,omitempty"`
}

// NewCheckoutView maps a checkout entity into its delivery representation.
func NewCheckoutView(c *entity.Checkout) *CheckoutView {
	return &CheckoutView{
		Step:           c.Step,
		Shipping:       c.Shipping,
		Method:         c.Method,
		Total:          c.Total,
		PaymentPending: c.PaymentPending,
		Receipt:        c.Receipt,
	}
}
