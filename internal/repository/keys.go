package repository

// Fixed keys for the wholesale-serialized collections. All mutations re-read
// and rewrite the full collection under its key; there is no partial update
// and no schema versioning.
const (
	profilesKey   = "seniorconnect:profiles"
	favoritesKey  = "seniorconnect:favorites"
	onboardingKey = "seniorconnect:onboarding"
)
