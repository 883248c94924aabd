// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"boutique/internal/domain/entity"
)

// WishlistUsecase defines the wishlist operations for one shopping session.
type WishlistUsecase interface {
	// Toggle adds the product when absent and removes it when present.
	Toggle(ctx context.Context, sessionID string, productID int64) (*WishlistView, error)

	// GetWishlist returns the session's saved products.
	GetWishlist(ctx context.Context, sessionID string) (*WishlistView, error)
}

// WishlistView is the wishlist plus its derived count.
type WishlistView struct {
	Products []entity.Product `json:"products"`
	Count    int              `json:"count"`
}
