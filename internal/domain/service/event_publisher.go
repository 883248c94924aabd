package service

import (
	"context"
	"time"
)

// OrderEvent is published once a checkout settles. Downstream consumers turn
// it into invoice mails, SMS confirmations and so on; the storefront core
// itself only guarantees the publish.
type OrderEvent struct {
	RequestID     string    `json:"request_id,omitempty"` // For distributed tracing
	TransactionID string    `json:"transaction_id"`
	SessionID     string    `json:"session_id"`
	Total         float64   `json:"total"`
	ItemCount     int       `json:"item_count"`
	Method        string    `json:"method"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	City          string    `json:"city"`
	PlacedAt      time.Time `json:"placed_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderPlaced publishes an order settlement event for async processing
	PublishOrderPlaced(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
