// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "strings"

// LowStockThreshold is the stock level below which a product counts as low stock.
// Products at or above this level are considered healthy.
const LowStockThreshold = 10

// StockStatus classifies a product's availability based on its stock level.
type StockStatus string

const (
	// StockStatusOut indicates the product has no stock left.
	StockStatusOut StockStatus = "out_of_stock"
	// StockStatusLow indicates stock has fallen below LowStockThreshold.
	StockStatusLow StockStatus = "low_stock"
	// StockStatusIn indicates a healthy stock level.
	StockStatusIn StockStatus = "in_stock"
)

// Product is a sellable item in the catalog.
// Cart, wishlist and checkout only ever reference products by ID or hold copies;
// the catalog is the single writer of product state.
type Product struct {
	ID          int64   `json:"id"`          // Unique within the catalog. Seeded products use small ids, created ones derive from the creation timestamp.
	Name        string  `json:"name"`        // Display name.
	Category    string  `json:"category"`    // One of an open, enumerable set (e.g. "Earrings", "Lipstick").
	Price       float64 `json:"price"`       // Price in display currency, no minor units.
	Image       string  `json:"image"`       // Image URL or embedded data URI.
	Stock       int     `json:"stock"`       // Units on hand, never negative.
	Description string  `json:"description"` // Free-form description text.
}

// StockStatus returns the availability classification for the product.
func (p *Product) StockStatus() StockStatus {
	switch {
	case p.Stock == 0:
		return StockStatusOut
	case p.Stock < LowStockThreshold:
		return StockStatusLow
	default:
		return StockStatusIn
	}
}

// Matches reports whether the product matches a free-text search term.
// Matching is a case-insensitive substring match on the name or the category.
// An empty term matches everything.
func (p *Product) Matches(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)

	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Category), term)
}

// CatalogStats holds the derived inventory dashboard aggregates.
// They are always computed from the current catalog contents, never stored.
type CatalogStats struct {
	TotalProducts   int     `json:"total_products"`
	TotalStockValue float64 `json:"total_stock_value"` // Σ(price × stock) over all products.
	LowStockCount   int     `json:"low_stock_count"`   // Products with stock strictly below LowStockThreshold.
}

// StockEmptyPolicy decides what committing a staged empty stock value means.
// The storefront this service backs leaves the field blank while an operator
// is mid-edit, so the choice is configuration, not a hard-coded guess.
type StockEmptyPolicy string

const (
	// StockEmptyUnchanged keeps the previous stock value when the staged input is empty.
	StockEmptyUnchanged StockEmptyPolicy = "unchanged"
	// StockEmptyReject treats an empty staged input as a validation failure.
	StockEmptyReject StockEmptyPolicy = "reject"
)

// IsValid checks if the policy is a known value.
func (p StockEmptyPolicy) IsValid() bool {
	switch p {
	case StockEmptyUnchanged, StockEmptyReject:
		return true
	default:
		return false
	}
}
