// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"io"

	"boutique/internal/domain/entity"
)

// InventoryUsecase defines the manager-only mutating operations on the
// catalog. Every method takes the acting principal and rejects anyone who is
// not a manager; the delivery layer's role middleware is a convenience on
// top, not the enforcement point.
type InventoryUsecase interface {
	// AddProduct validates the draft and appends a new product.
	AddProduct(ctx context.Context, actor *entity.Principal, input *ProductInput) (*entity.Product, error)

	// UpdateProduct replaces a product's mutable fields by id.
	UpdateProduct(ctx context.Context, actor *entity.Principal, id int64, input *ProductInput) (*entity.Product, error)

	// DeleteProduct removes a product; deleting an unknown id succeeds.
	DeleteProduct(ctx context.Context, actor *entity.Principal, id int64) error

	// StageStock records a raw stock input (possibly empty) without committing.
	StageStock(ctx context.Context, actor *entity.Principal, id int64, raw string) error

	// CommitStock resolves the staged stock value per the configured policy
	// and returns the effective stock level.
	CommitStock(ctx context.Context, actor *entity.Principal, id int64) (int, error)

	// Stats computes the dashboard aggregates over the current catalog.
	Stats(ctx context.Context, actor *entity.Principal) (*entity.CatalogStats, error)

	// ExportCSV streams the catalog as CSV and returns the download filename.
	ExportCSV(ctx context.Context, actor *entity.Principal, w io.Writer) (string, error)
}

// ProductInput is the draft used for both create and update. Price and stock
// arrive as raw text, exactly as typed into the inventory form, and are
// coerced here so a bad value fails validation instead of producing NaN.
type ProductInput struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Price       string `json:"price" validate:"required"`
	Stock       string `json:"stock" validate:"required"`
	Image       string `json:"image"`
	Description string `json:"description"`
}
