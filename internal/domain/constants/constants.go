// Package constants holds shared domain-level constants.
package constants

// Pub/Sub provider selectors accepted in configuration.
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Catalog page sizes, matching the storefront layout.
const (
	HomeFeaturedLimit   = 3
	HomeLatestLimit     = 8
	HomeEssentialsLimit = 4
	RelatedLimit        = 4
)

// EssentialsCategorySlug is the category pinned to the home page.
const EssentialsCategorySlug = "tech-essentials"
