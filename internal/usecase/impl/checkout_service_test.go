package impl

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	"boutique/internal/domain/service"
	"boutique/internal/infra/memory"
	"boutique/internal/usecase"
)

// checkoutFixture wires a checkout service with a shared session store so
// tests can manipulate the cart alongside the checkout flow.
type checkoutFixture struct {
	sessions  repository.SessionRepository
	cart      usecase.CartUsecase
	checkout  usecase.CheckoutUsecase
	gateway   *fakeGateway
	publisher *capturePublisher
}

func newCheckoutFixture(t *testing.T) *checkoutFixture {
	t.Helper()

	sessions := memory.NewSessionStore()
	catalog := testCatalog()
	gateway := &fakeGateway{}
	publisher := &capturePublisher{}

	return &checkoutFixture{
		sessions:  sessions,
		cart:      NewCartService(sessions, catalog, discardLogger()),
		checkout:  NewCheckoutService(sessions, gateway, publisher, fakeQRCode{}, discardLogger()),
		gateway:   gateway,
		publisher: publisher,
	}
}

func (f *checkoutFixture) fillCart(t *testing.T, sessionID string) {
	t.Helper()

	_, err := f.cart.AddItem(context.Background(), sessionID, 1)
	require.NoError(t, err)
	_, err = f.cart.AddItem(context.Background(), sessionID, 2)
	require.NoError(t, err)
}

func shipping() *usecase.ShippingInput {
	return &usecase.ShippingInput{
		Name:    "Jane Doe",
		Email:   "jane@example.com",
		Phone:   "5551234567",
		Address: "1 Jewel Street",
		City:    "Mumbai",
		Zip:     "400001",
	}
}

func cardPayment() *usecase.PaymentInput {
	return &usecase.PaymentInput{
		Method:     "card",
		CardNumber: "4111111111111111",
		CardExpiry: "12/28",
		CardCVV:    "123",
	}
}

func TestCheckoutService_Begin_RequiresNonEmptyCart(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.checkout.Begin(context.Background(), "s1")
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
}

func TestCheckoutService_Begin_SnapshotsCartTotal(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, "s1")

	view, err := f.checkout.Begin(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, entity.StepDetails, view.Step)
	assert.InDelta(t, 334.0, view.Total, 1e-9)
	assert.False(t, view.PaymentPending)
	assert.Nil(t, view.Receipt)
}

func TestCheckoutService_Get_WithoutBegin(t *testing.T) {
	f := newCheckoutFixture(t)

	_, err := f.checkout.Get(context.Background(), "s1")
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutNotStarted)
}

func TestCheckoutService_SubmitShipping_AdvancesToPayment(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, "s1")
	ctx := context.Background()

	_, err := f.checkout.Begin(ctx, "s1")
	require.NoError(t, err)

	view, err := f.checkout.SubmitShipping(ctx, "s1", shipping())
	require.NoError(t, err)
	assert.Equal(t, entity.StepPayment, view.Step)
	assert.Equal(t, "jane@example.com", view.Shipping.Email)
}

func TestCheckoutService_SubmitShipping_RejectsIncompleteForm(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, "s1")
	ctx := context.Background()

	_, err := f.checkout.Begin(ctx, "s1")
	require.NoError(t, err)

	input := shipping()
	input.Zip = ""
	_, err = f.checkout.SubmitShipping(ctx, "s1", input)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	// Still at the details step after the rejected submit.
	view, err := f.checkout.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, entity.StepDetails, view.Step)
}

func TestCheckoutService_SubmitShipping_WrongStep(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, "s1")
	ctx := context.Background()

	_, err := f.checkout.SubmitShipping(ctx, "s1", shipping())
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutNotStarted)

	_, err = f.checkout.Begin(ctx, "s1")
	require.NoError(t, err)
	_, err = f.checkout.SubmitShipping(ctx, "s1", shipping())
	require.NoError(t, err)

	_, err = f.checkout.SubmitShipping(ctx, "s1", shipping())
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutStep)
}

func TestCheckoutService_SubmitShipping_CartEmptiedMidCheckout(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, "s1")
	ctx := context.Background()

	_, err := f.checkout.Begin(ctx, "s1")
	require.NoError(t, err)

	require.NoError(t, f.cart.Clear(ctx, "s1"))

	_, err = f.checkout.SubmitShipping(ctx, "s1", shipping())
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)

	// The checkout instance is terminated, not left dangling.
	_, err = f.checkout.Get(ctx, "s1")
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutNotStarted)
}

func TestCheckoutService_SubmitPayment_HappyPath(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, "s1")
	ctx := context.Background()

	_, err := f.checkout.Begin(ctx, "s1")
	require.NoError(t, err)
	_, err = f.checkout.SubmitShipping(ctx, "s1", shipping())
	require.NoError(t, err)

	view, err := f.checkout.SubmitPayment(ctx, "s1", cardPayment())
	require.NoError(t, err)
	assert.Equal(t, entity.StepConfirmation, view.Step)
	assert.False(t, view.PaymentPending)
	require.NotNil(t, view.Receipt)
	assert.True(t, strings.HasPrefix(view.Receipt.TransactionID, "TRX"))
	assert.InDelta(t, 334.0, view.Receipt.Total, 1e-9)
	assert.Equal(t, entity.PaymentMethodCard, view.Receipt.Method)
	assert.Equal(t, "jane@example.com", view.Receipt.Email)

	// Settling the order clears the cart.
	cart, err := f.cart.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, cart.Lines)

	events := f.publisher.published()
	require.Len(t, events, 1)
	assert.Equal(t, view.Receipt.TransactionID, events[0].TransactionID)
	assert.Equal(t, 2, events[0].ItemCount)
	assert.Equal(t, "Mumbai", events[0].City)
}

func TestCheckoutService_SubmitPayment_RejectsBadInput(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, "s1")
	ctx := context.Background()

	_, err := f.checkout.Begin(ctx, "s1")
	require.NoError(t, err)
	_, err = f.checkout.SubmitShipping(ctx, "s1", shipping())
	require.NoError(t, err)

	_, err = f.checkout.SubmitPayment(ctx, "s1", &usecase.PaymentInput{Method: "cheque"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	// UPI requires the UPI id.
	_, err = f.checkout.SubmitPayment(ctx, "s1", &usecase.PaymentInput{Method: "upi"})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	assert.Zero(t, f.gateway.callCount())
}

func TestCheckoutService_SubmitPayment_WrongStep(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, "s1")
	ctx := context.Background()

	_, err := f.checkout.Begin(ctx, "s1")
	require.NoError(t, err)

	_, err = f.checkout.SubmitPayment(ctx, "s1", cardPayment())
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutStep)
}

func TestCheckoutService_SubmitPayment_Declined(t *testing.T) {
	f := newCheckoutFixture(t)
	f.gateway.settlement = &service.Settlement{Approved: false, Reason: "insufficient funds"}
	f.fillCart(t, "s1")
	ctx := context.Background()

	_, err := f.checkout.Begin(ctx, "s1")
	require.NoError(t, err)
	_, err = f.checkout.SubmitShipping(ctx, "s1", shipping())
	require.NoError(t, err)

	_, err = f.checkout.SubmitPayment(ctx, "s1", cardPayment())
	assert.ErrorIs(t, err, domainerrors.ErrPaymentDeclined)

	// The checkout stays at payment with the pending flag released, and the
	// cart is untouched.
	view, err := f.checkout.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, entity.StepPayment, view.Step)
	assert.False(t, view.PaymentPending)

	cart, err := f.cart.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 2)
	assert.Empty(t, f.publisher.published())

	// A corrected resubmission goes through.
	f.gateway.settlement = nil
	settled, err := f.checkout.SubmitPayment(ctx, "s1", cardPayment())
	require.NoError(t, err)
	assert.Equal(t, entity.StepConfirmation, settled.Step)
}

func TestCheckoutService_SubmitPayment_ConcurrentSubmitRejected(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, "s1")
	ctx := context.Background()

	_, err := f.checkout.Begin(ctx, "s1")
	require.NoError(t, err)
	_, err = f.checkout.SubmitShipping(ctx, "s1", shipping())
	require.NoError(t, err)

	// The second submission arrives while the first settlement is in flight.
	var second error
	f.gateway.hook = func() {
		f.gateway.hook = nil
		_, second = f.checkout.SubmitPayment(ctx, "s1", cardPayment())
	}

	view, err := f.checkout.SubmitPayment(ctx, "s1", cardPayment())
	require.NoError(t, err)
	assert.Equal(t, entity.StepConfirmation, view.Step)
	assert.ErrorIs(t, second, domainerrors.ErrPaymentPending)
}

func TestCheckoutService_SubmitPayment_StaleInstanceDiscarded(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, "s1")
	ctx := context.Background()

	_, err := f.checkout.Begin(ctx, "s1")
	require.NoError(t, err)
	_, err = f.checkout.SubmitShipping(ctx, "s1", shipping())
	require.NoError(t, err)

	// The shopper abandons and restarts checkout while the settlement is in
	// flight; the late settlement must not touch the new instance.
	f.gateway.hook = func() {
		f.gateway.hook = nil
		require.NoError(t, f.checkout.Abandon(ctx, "s1"))
		_, err := f.checkout.Begin(ctx, "s1")
		require.NoError(t, err)
	}

	_, err = f.checkout.SubmitPayment(ctx, "s1", cardPayment())
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutNotStarted)

	// The replacement instance is untouched and the cart survives.
	view, err := f.checkout.Get(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, entity.StepDetails, view.Step)
	assert.Nil(t, view.Receipt)

	cart, err := f.cart.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 2)
	assert.Empty(t, f.publisher.published())
}

func TestCheckoutService_UPIQRCode(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, "s1")
	ctx := context.Background()

	// Only valid at the payment step.
	_, err := f.checkout.UPIQRCode(ctx, "s1")
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutNotStarted)

	_, err = f.checkout.Begin(ctx, "s1")
	require.NoError(t, err)
	_, err = f.checkout.UPIQRCode(ctx, "s1")
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutStep)

	_, err = f.checkout.SubmitShipping(ctx, "s1", shipping())
	require.NoError(t, err)

	png, err := f.checkout.UPIQRCode(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(png), "qr:"))
}

func TestCheckoutService_Abandon(t *testing.T) {
	f := newCheckoutFixture(t)
	f.fillCart(t, "s1")
	ctx := context.Background()

	_, err := f.checkout.Begin(ctx, "s1")
	require.NoError(t, err)

	require.NoError(t, f.checkout.Abandon(ctx, "s1"))

	_, err = f.checkout.Get(ctx, "s1")
	assert.ErrorIs(t, err, domainerrors.ErrCheckoutNotStarted)

	// Abandoning with nothing in progress is a no-op.
	assert.NoError(t, f.checkout.Abandon(ctx, "s1"))

	// The cart survives an abandoned checkout.
	cart, err := f.cart.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Len(t, cart.Lines, 2)
}
