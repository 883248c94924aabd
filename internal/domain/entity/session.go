// Package entity contains the core business objects of the project.
package entity

import "time"

// SessionState is everything the storefront keeps for one anonymous shopping
// session: the cart, the wishlist and the checkout flow in progress, if any.
// Access is serialized by the session repository; the entity itself carries
// no locking.
type SessionState struct {
	Cart      Cart
	Wishlist  Wishlist
	Checkout  *Checkout // nil when no checkout is in progress.
	CreatedAt time.Time
}
