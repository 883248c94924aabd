package impl

import (
	"context"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	deliverycontext "boutique/internal/delivery/context"
	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	"boutique/internal/domain/service"
	"boutique/internal/usecase"
)

// checkoutService implements the CheckoutUsecase interface. It owns the
// details → payment → confirmation progression and is the only caller of
// Cart.Clear outside an explicit cart request.
type checkoutService struct {
	sessions  repository.SessionRepository
	gateway   service.PaymentGateway
	publisher service.EventPublisher
	qrcode    service.QRCodeService
	validate  *validator.Validate
	logger    *slog.Logger
}

// NewCheckoutService is the constructor for checkoutService.
func NewCheckoutService(
	sessions repository.SessionRepository,
	gateway service.PaymentGateway,
	publisher service.EventPublisher,
	qrcode service.QRCodeService,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		sessions:  sessions,
		gateway:   gateway,
		publisher: publisher,
		qrcode:    qrcode,
		validate:  validator.New(),
		logger:    logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *checkoutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Begin starts a fresh checkout at the details step. Any previous instance
// for the session is discarded, which also invalidates its pending
// settlement if one is somehow still in flight.
func (srv *checkoutService) Begin(ctx context.Context, sessionID string) (*usecase.CheckoutView, error) {
	var view *usecase.CheckoutView
	err := srv.sessions.Execute(ctx, sessionID, func(state *entity.SessionState) error {
		if state.Cart.IsEmpty() {
			return errors.Wrap(domainerrors.ErrCartEmpty, "cannot start checkout")
		}
		state.Checkout = entity.NewCheckout(state.Cart.Total(), time.Now())
		view = usecase.NewCheckoutView(state.Checkout)

		return nil
	})
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Checkout started",
		slog.String("session_id", sessionID),
		slog.Float64("total", view.Total),
	)

	return view, nil
}

// Get returns the current checkout instance.
func (srv *checkoutService) Get(ctx context.Context, sessionID string) (*usecase.CheckoutView, error) {
	var view *usecase.CheckoutView
	err := srv.sessions.Execute(ctx, sessionID, func(state *entity.SessionState) error {
		if state.Checkout == nil {
			return domainerrors.ErrCheckoutNotStarted
		}
		view = usecase.NewCheckoutView(state.Checkout)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

// SubmitShipping validates the shipping form and advances to payment.
// If the cart has been emptied since checkout started, the instance is
// terminated and the shopper is sent back to browsing.
func (srv *checkoutService) SubmitShipping(ctx context.Context, sessionID string, input *usecase.ShippingInput) (*usecase.CheckoutView, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing shipping details")
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	var view *usecase.CheckoutView
	err := srv.sessions.Execute(ctx, sessionID, func(state *entity.SessionState) error {
		if state.Checkout == nil {
			return domainerrors.ErrCheckoutNotStarted
		}
		if state.Cart.IsEmpty() {
			state.Checkout = nil

			return errors.Wrap(domainerrors.ErrCartEmpty, "cart emptied during checkout")
		}
		if state.Checkout.Step != entity.StepDetails {
			return domainerrors.ErrCheckoutStep
		}

		state.Checkout.Shipping = input.Details()
		state.Checkout.Step = entity.StepPayment
		view = usecase.NewCheckoutView(state.Checkout)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return view, nil
}

// SubmitPayment settles the charge through the payment gateway. The guard
// against double submission and the stale-instance check around the
// settlement are what keep a slow gateway from clearing the wrong cart.
func (srv *checkoutService) SubmitPayment(ctx context.Context, sessionID string, input *usecase.PaymentInput) (*usecase.CheckoutView, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails("missing payment details")
	}
	if err := srv.validate.Struct(input); err != nil {
		return nil, domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}
	method := entity.PaymentMethod(input.Method)

	// Phase one: mark the checkout pending and snapshot what the charge needs.
	var req *service.ChargeRequest
	err := srv.sessions.Execute(ctx, sessionID, func(state *entity.SessionState) error {
		if state.Checkout == nil {
			return domainerrors.ErrCheckoutNotStarted
		}
		if state.Cart.IsEmpty() {
			state.Checkout = nil

			return errors.Wrap(domainerrors.ErrCartEmpty, "cart emptied during checkout")
		}
		if state.Checkout.Step != entity.StepPayment {
			return domainerrors.ErrCheckoutStep
		}
		if state.Checkout.PaymentPending {
			return domainerrors.ErrPaymentPending
		}

		state.Checkout.Method = method
		state.Checkout.PaymentPending = true
		req = &service.ChargeRequest{
			SessionID:  sessionID,
			InstanceID: state.Checkout.InstanceID,
			Method:     method,
			Amount:     state.Checkout.Total,
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// Phase two: the gateway round trip, outside the session lock so the
	// settlement window never blocks other requests for this session.
	settlement, gatewayErr := srv.gateway.Authorize(ctx, req)

	// Phase three: apply the outcome, but only if this checkout instance is
	// still the session's active one.
	var view *usecase.CheckoutView
	var event *service.OrderEvent
	err = srv.sessions.Execute(context.WithoutCancel(ctx), sessionID, func(state *entity.SessionState) error {
		if state.Checkout == nil || state.Checkout.InstanceID != req.InstanceID {
			srv.log(ctx).Warn("Discarding settlement for abandoned checkout",
				slog.String("session_id", sessionID),
			)

			return domainerrors.ErrCheckoutNotStarted
		}
		state.Checkout.PaymentPending = false

		if gatewayErr != nil {
			return errors.Wrap(gatewayErr, "payment authorization failed")
		}
		if !settlement.Approved {
			return domainerrors.ErrPaymentDeclined.WithDetails(settlement.Reason)
		}

		now := time.Now()
		state.Checkout.Receipt = &entity.Receipt{
			TransactionID: entity.NewTransactionID(now),
			Total:         state.Checkout.Total,
			Method:        method,
			Email:         state.Checkout.Shipping.Email,
			Phone:         state.Checkout.Shipping.Phone,
			PlacedAt:      now,
		}
		state.Checkout.Step = entity.StepConfirmation

		event = &service.OrderEvent{
			RequestID:     deliverycontext.GetRequestIDFromContext(ctx),
			TransactionID: state.Checkout.Receipt.TransactionID,
			SessionID:     sessionID,
			Total:         state.Checkout.Total,
			ItemCount:     state.Cart.ItemCount(),
			Method:        string(method),
			Email:         state.Checkout.Shipping.Email,
			Phone:         state.Checkout.Shipping.Phone,
			City:          state.Checkout.Shipping.City,
			PlacedAt:      now,
		}

		state.Cart.Clear()
		view = usecase.NewCheckoutView(state.Checkout)

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Checkout settled",
		slog.String("session_id", sessionID),
		slog.String("transaction_id", view.Receipt.TransactionID),
		slog.Float64("total", view.Total),
	)

	// Best effort: a failed publish must not fail the purchase.
	if err := srv.publisher.PublishOrderPlaced(context.WithoutCancel(ctx), event); err != nil {
		srv.log(ctx).Error("Failed to publish order event",
			slog.Any("error", err),
			slog.String("transaction_id", event.TransactionID),
		)
	}

	return view, nil
}

// UPIQRCode renders the payment QR for the current checkout.
func (srv *checkoutService) UPIQRCode(ctx context.Context, sessionID string) ([]byte, error) {
	var amount float64
	var reference uuid.UUID
	err := srv.sessions.Execute(ctx, sessionID, func(state *entity.SessionState) error {
		if state.Checkout == nil {
			return domainerrors.ErrCheckoutNotStarted
		}
		if state.Checkout.Step != entity.StepPayment {
			return domainerrors.ErrCheckoutStep
		}
		amount = state.Checkout.Total
		reference = state.Checkout.InstanceID

		return nil
	})
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateUPIQR(amount, reference.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate payment QR")
	}

	return png, nil
}

// Abandon discards the in-progress checkout, if any.
func (srv *checkoutService) Abandon(ctx context.Context, sessionID string) error {
	err := srv.sessions.Execute(ctx, sessionID, func(state *entity.SessionState) error {
		state.Checkout = nil

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to abandon checkout")
	}
	srv.log(ctx).Debug("Checkout abandoned", slog.String("session_id", sessionID))

	return nil
}
