package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"boutique/internal/domain/entity"
)

// ChargeRequest describes one payment authorization attempt.
type ChargeRequest struct {
	SessionID  string               // Shopping session placing the order.
	InstanceID uuid.UUID            // Checkout instance the charge belongs to.
	Method     entity.PaymentMethod // card or upi.
	Amount     float64              // Cart total snapshot taken when checkout was entered.
}

// Settlement is the gateway's answer to a charge request.
type Settlement struct {
	Approved  bool      // Whether the charge went through.
	Reason    string    // Decline reason, empty when approved.
	SettledAt time.Time // When the gateway settled the charge.
}

// PaymentGateway abstracts the external payment provider round trip.
// Implementations are expected to block until the charge settles, honoring
// ctx cancellation; the simulated gateway used by this demo sleeps a fixed
// delay and always approves, but the contract models declines so a real
// provider can be dropped in without touching the checkout flow.
type PaymentGateway interface {
	// Authorize submits a charge and blocks until it settles or ctx is done.
	Authorize(ctx context.Context, req *ChargeRequest) (*Settlement, error)
}
