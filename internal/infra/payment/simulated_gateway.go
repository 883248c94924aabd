// Package payment provides the payment gateway implementation used by the
// demo storefront: a simulated provider that sleeps through an artificial
// settlement window and then approves the charge.
package payment

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"

	"boutique/config"
	"boutique/internal/domain/service"
)

const defaultSettleDelay = 2 * time.Second

// simulatedGateway implements service.PaymentGateway without any external
// call. Every charge settles approved after the configured delay. The delay
// honors ctx so an abandoned checkout does not leave a goroutine sleeping.
type simulatedGateway struct {
	delay  time.Duration
	logger *slog.Logger
}

// NewSimulatedGateway builds the gateway from config.
func NewSimulatedGateway(cfg *config.Config, logger *slog.Logger) service.PaymentGateway {
	delay := defaultSettleDelay
	if cfg.Checkout != nil && cfg.Checkout.SettleDelay > 0 {
		delay = cfg.Checkout.SettleDelay
	}

	return &simulatedGateway{delay: delay, logger: logger}
}

// Authorize submits a charge and blocks for the settlement window.
func (g *simulatedGateway) Authorize(ctx context.Context, req *service.ChargeRequest) (*service.Settlement, error) {
	g.logger.Info("Authorizing simulated charge",
		slog.String("session_id", req.SessionID),
		slog.String("method", string(req.Method)),
		slog.Float64("amount", req.Amount),
	)

	select {
	case <-time.After(g.delay):
	case <-ctx.Done():
		return nil, errors.Wrap(ctx.Err(), "authorization cancelled")
	}

	return &service.Settlement{
		Approved:  true,
		SettledAt: time.Now(),
	}, nil
}
