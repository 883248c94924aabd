// Package entity contains the core business objects of the project.
package entity

// Wishlist holds the products a shopper has saved for later.
// A product appears at most once; there is no quantity concept.
type Wishlist struct {
	Products []Product `json:"products"`
}

// Toggle adds the product if absent and removes it if present, so applying
// it twice with the same product restores the wishlist to its prior state.
func (w *Wishlist) Toggle(product Product) {
	for i := range w.Products {
		if w.Products[i].ID == product.ID {
			w.Products = append(w.Products[:i], w.Products[i+1:]...)

			return
		}
	}
	w.Products = append(w.Products, product)
}

// Contains reports whether the product id is on the wishlist.
func (w *Wishlist) Contains(productID int64) bool {
	for i := range w.Products {
		if w.Products[i].ID == productID {
			return true
		}
	}

	return false
}

// Count returns the number of saved products.
func (w *Wishlist) Count() int {
	return len(w.Products)
}
