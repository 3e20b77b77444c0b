// Package constants contains values shared by configuration and infrastructure.
package constants

// Environment names.
const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderNone   = "none"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Pub/Sub message attributes.
const (
	AttrEventType = "event_type"
	AttrRequestID = "request_id"
	AttrTaskID    = "task_id"
)

// Event types.
const (
	EventTaskAssigned = "task.assigned"
)
