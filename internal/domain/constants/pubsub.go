// Package constants holds values shared across layers.
package constants

// Pub/Sub provider names accepted in the pubsub.provider config key.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Calculation event actions.
const (
	CalculationEventCreated = "calculation.created"
	CalculationEventUpdated = "calculation.updated"
	CalculationEventDeleted = "calculation.deleted"
)
