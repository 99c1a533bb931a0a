// Package constants holds configuration values shared across layers.
package constants

const (
	EnvDevelop    = "develop"
	EnvProduction = "production"
)

// Pub/Sub providers.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Notifier providers.
const (
	NotifierProviderSMTP   = "smtp"
	NotifierProviderPubSub = "pubsub"
	NotifierProviderLog    = "log"
)
