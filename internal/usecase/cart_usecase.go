// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"boutique/internal/domain/entity"
)

// CartUsecase defines the cart operations for one shopping session.
type CartUsecase interface {
	// AddItem puts one unit of the product into the session's cart,
	// merging with an existing line for the same product.
	AddItem(ctx context.Context, sessionID string, productID int64) (*CartView, error)

	// RemoveItem drops the whole line for the product, whatever its quantity.
	RemoveItem(ctx context.Context, sessionID string, productID int64) (*CartView, error)

	// Clear empties the session's cart.
	Clear(ctx context.Context, sessionID string) error

	// GetCart returns the session's cart with derived totals.
	GetCart(ctx context.Context, sessionID string) (*CartView, error)
}

// CartView is the cart plus its derived aggregates.
type CartView struct {
	Lines     []entity.CartLine `json:"lines"`
	Total     float64           `json:"total"`
	ItemCount int               `json:"item_count"`
}
