package constants

// Pub/Sub provider names accepted in configuration
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// EnvProduction is the deployment environment that forces JSON logs
const EnvProduction = "production"

// Attribute keys set on published order events
const (
	EventAttrOrderID   = "order_id"
	EventAttrStatus    = "status"
	EventAttrRequestID = "request_id"
)
