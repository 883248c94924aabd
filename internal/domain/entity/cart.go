// Package entity contains the core business objects of the project.
package entity

// CartLine is a product snapshot plus a quantity inside a cart.
// The snapshot is deliberate: a price change in the catalog does not
// retroactively change what is already in a shopper's cart.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"` // Always positive; a line is removed rather than decremented to zero.
}

// Cart holds the line items for one shopping session.
// Lines keep first-add order; adding a product already present increments
// its quantity in place instead of appending a duplicate line.
type Cart struct {
	Lines []CartLine `json:"lines"`
}

// AddItem adds one unit of the product to the cart, merging by product id.
func (c *Cart) AddItem(product Product) {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == product.ID {
			c.Lines[i].Quantity++

			return
		}
	}
	c.Lines = append(c.Lines, CartLine{Product: product, Quantity: 1})
}

// RemoveItem removes the whole line for the given product id, regardless of
// quantity. Removing an id that is not in the cart is a no-op.
func (c *Cart) RemoveItem(productID int64) {
	for i := range c.Lines {
		if c.Lines[i].Product.ID == productID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)

			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.Lines = nil
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// Total computes Σ(price × quantity) over all lines. It is recomputed on
// every call so it can never go stale.
func (c *Cart) Total() float64 {
	var total float64
	for _, line := range c.Lines {
		total += line.Product.Price * float64(line.Quantity)
	}

	return total
}

// ItemCount computes Σ(quantity) over all lines, used for badge counters.
func (c *Cart) ItemCount() int {
	var count int
	for _, line := range c.Lines {
		count += line.Quantity
	}

	return count
}
