// Package constants holds provider identifiers shared by configuration and infrastructure.
package constants

// Analytics transport providers.
const (
	PubSubProviderNoop   = "noop"
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Document storage providers.
const (
	StorageProviderFirestore = "firestore"
	StorageProviderPostgres  = "postgres"
)
