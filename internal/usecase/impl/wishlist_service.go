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

// wishlistService implements the WishlistUsecase interface.
type wishlistService struct {
	sessions repository.SessionRepository
	catalog  repository.CatalogRepository
	logger   *slog.Logger
}

// NewWishlistService is the constructor for wishlistService.
func NewWishlistService(
	sessions repository.SessionRepository,
	catalog repository.CatalogRepository,
	logger *slog.Logger,
) usecase.WishlistUsecase {
	return &wishlistService{
		sessions: sessions,
		catalog:  catalog,
		logger:   logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *wishlistService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Toggle adds the product when absent and removes it when present.
func (srv *wishlistService) Toggle(ctx context.Context, sessionID string, productID int64) (*usecase.WishlistView, error) {
	product, err := srv.catalog.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	var view *usecase.WishlistView
	err = srv.sessions.Execute(ctx, sessionID, func(state *entity.SessionState) error {
		state.Wishlist.Toggle(*product)
		view = wishlistView(&state.Wishlist)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to toggle wishlist")
	}
	srv.log(ctx).Debug("Wishlist toggled",
		slog.String("session_id", sessionID),
		slog.Int64("product_id", productID),
		slog.Int("count", view.Count),
	)

	return view, nil
}

// GetWishlist returns the session's saved products.
func (srv *wishlistService) GetWishlist(ctx context.Context, sessionID string) (*usecase.WishlistView, error) {
	var view *usecase.WishlistView
	err := srv.sessions.Execute(ctx, sessionID, func(state *entity.SessionState) error {
		view = wishlistView(&state.Wishlist)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get wishlist")
	}

	return view, nil
}

// wishlistView snapshots a wishlist into its delivery representation.
func wishlistView(wishlist *entity.Wishlist) *usecase.WishlistView {
	products := make([]entity.Product, len(wishlist.Products))
	copy(products, wishlist.Products)

	return &usecase.WishlistView{
		Products: products,
		Count:    wishlist.Count(),
	}
}
