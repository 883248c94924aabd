package impl

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	deliverycontext "boutique/internal/delivery/context"
	"boutique/internal/domain/entity"
	domainerrors "boutique/internal/domain/errors"
	"boutique/internal/domain/repository"
	"boutique/internal/usecase"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	sessions repository.SessionRepository
	catalog  repository.CatalogRepository
	logger   *slog.Logger
}

// NewCartService is the constructor for cartService.
func NewCartService(
	sessions repository.SessionRepository,
	catalog repository.CatalogRepository,
	logger *slog.Logger,
) usecase.CartUsecase {
	return &cartService{
		sessions: sessions,
		catalog:  catalog,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddItem puts one unit of the product into the session's cart.
func (srv *cartService) AddItem(ctx context.Context, sessionID string, productID int64) (*usecase.CartView, error) {
	product, err := srv.catalog.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	var view *usecase.CartView
	err = srv.sessions.Execute(ctx, sessionID, func(state *entity.SessionState) error {
		state.Cart.AddItem(*product)
		view = cartView(&state.Cart)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add cart item")
	}
	srv.log(ctx).Debug("Cart item added",
		slog.String("session_id", sessionID),
		slog.Int64("product_id", productID),
		slog.Int("item_count", view.ItemCount),
	)

	return view, nil
}

// RemoveItem drops the whole line for the product.
func (srv *cartService) RemoveItem(ctx context.Context, sessionID string, productID int64) (*usecase.CartView, error) {
	var view *usecase.CartView
	err := srv.sessions.Execute(ctx, sessionID, func(state *entity.SessionState) error {
		state.Cart.RemoveItem(productID)
		view = cartView(&state.Cart)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to remove cart item")
	}

	return view, nil
}

// Clear empties the session's cart.
func (srv *cartService) Clear(ctx context.Context, sessionID string) error {
	err := srv.sessions.Execute(ctx, sessionID, func(state *entity.SessionState) error {
		state.Cart.Clear()

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	return nil
}

// GetCart returns the session's cart with derived totals.
func (srv *cartService) GetCart(ctx context.Context, sessionID string) (*usecase.CartView, error) {
	var view *usecase.CartView
	err := srv.sessions.Execute(ctx, sessionID, func(state *entity.SessionState) error {
		view = cartView(&state.Cart)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get cart")
	}

	return view, nil
}

// cartView snapshots a cart into its delivery representation.
func cartView(cart *entity.Cart) *usecase.CartView {
	lines := make([]entity.CartLine, len(cart.Lines))
	copy(lines, cart.Lines)

	return &usecase.CartView{
		Lines:     lines,
		Total:     cart.Total(),
		ItemCount: cart.ItemCount(),
	}
}
