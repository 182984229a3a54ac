package domain

import "time"

// User is an account profile. Entitlements are colocated with the profile
// document and maintained by the subscription platform; expiry comparison on
// them is the sole source of truth for membership, no boolean flag is kept.
type User struct {
	ID           string
	DisplayName  string
	Email        string
	PhotoURL     string
	Entitlements EntitlementSet
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
