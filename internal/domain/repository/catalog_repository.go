// Package repository defines the interfaces for the state-holding layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"boutique/internal/domain/entity"
)

// ErrProductNotFound is a domain-specific error returned when a product is not found.
var ErrProductNotFound = errors.New("product not found")

// ErrNoStagedStock is returned when a stock commit is requested for a product
// that has no staged value.
var ErrNoStagedStock = errors.New("no staged stock value")

// ErrInvalidStockInput is returned when a staged stock value is neither empty
// nor a non-negative integer.
var ErrInvalidStockInput = errors.New("invalid stock input")

// CatalogRepository defines the standard operations for the product catalog.
// The application layer depends on this interface, not the concrete store.
//
// List order is insertion order: seeded products first, then products in the
// order they were added. Updating a product never changes its position.
type CatalogRepository interface {
	// List returns a copy of all products in insertion order.
	List(ctx context.Context) ([]entity.Product, error)

	// FindByID retrieves a single product by its unique id.
	FindByID(ctx context.Context, id int64) (*entity.Product, error)

	// Create persists a new product, assigning it a fresh unique id.
	Create(ctx context.Context, product *entity.Product) error

	// Update replaces the mutable fields of an existing product by id.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product by id. Deleting an absent id is a no-op,
	// matching the tolerant behavior of the storefront this backs.
	Delete(ctx context.Context, id int64) error

	// StageStock records a raw stock input for a product without committing
	// it. The raw value may be empty while an operator is mid-edit; any other
	// value must parse as a non-negative integer or ErrInvalidStockInput is
	// returned. The product's effective stock is unchanged until commit.
	StageStock(ctx context.Context, id int64, raw string) error

	// StagedStock returns the currently staged raw value for a product,
	// reporting false when nothing is staged.
	StagedStock(ctx context.Context, id int64) (string, bool, error)

	// CommitStock resolves the staged value for a product into a definite
	// stock level. An empty staged value is resolved according to policy:
	// keep the previous stock, or fail with ErrInvalidStockInput.
	CommitStock(ctx context.Context, id int64, policy entity.StockEmptyPolicy) (int, error)
}
