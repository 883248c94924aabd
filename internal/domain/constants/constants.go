// Package constants holds shared domain-level constant values.
package constants

const (
	// PubSubProviderLocal selects the local HTTP push publisher for development.
	PubSubProviderLocal = "local"
	// PubSubProviderGoogle selects the Google Cloud Pub/Sub publisher.
	PubSubProviderGoogle = "google"
)

// OrderPlacedTopic is the logical topic name for order settlement events.
const OrderPlacedTopic = "order.placed"
