// Package delivery defines the inbound adapters of the application.
package delivery

import "context"

// Delivery is a serving endpoint whose lifecycle is managed by the
// application container.
type Delivery interface {
	Serve(ctx context.Context) error
}
