// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"boutique/internal/domain/entity"
)

// CatalogUsecase defines the read-only browsing operations over the catalog.
type CatalogUsecase interface {
	// ListProducts returns products matching the filter, in catalog order.
	ListProducts(ctx context.Context, filter *ProductFilter) ([]entity.Product, error)

	// GetProduct returns a single product by id.
	GetProduct(ctx context.Context, id int64) (*entity.Product, error)

	// ListCategories returns the distinct categories in first-seen order.
	ListCategories(ctx context.Context) ([]string, error)
}

// ProductFilter narrows a product listing. Query is a case-insensitive
// substring match on name or category; Category is an exact match, with
// empty or "All" matching everything.
type ProductFilter struct {
	Query    string `query:"q"`
	Category string `query:"category"`
}
