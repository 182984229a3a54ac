package domain

import (
	"encoding/json"
	"time"
)

// Entitlement is one product-scoped membership grant. ExpiresAt is nil when
// the store never recorded an expiry or recorded one we could not parse;
// either way the entitlement counts as inactive.
type Entitlement struct {
	ExpiresAt *time.Time
	Source    string
}

// EntitlementSet maps product identifiers to their entitlement records for
// one user.
type EntitlementSet map[string]Entitlement

type entitlementJSON struct {
	ExpiresDate *string `json:"expires_date"`
	Source      string  `json:"source"`
}

// UnmarshalJSON decodes the stored representation. An unparsable expiry
// yields a nil ExpiresAt rather than an error so a single corrupt value
// fails closed instead of failing the whole document.
func (e *Entitlement) UnmarshalJSON(b []byte) error {
	var raw entitlementJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	e.Source = raw.Source
	e.ExpiresAt = nil
	if raw.ExpiresDate != nil {
		if ts, err := time.Parse(time.RFC3339, *raw.ExpiresDate); err == nil {
			e.ExpiresAt = &ts
		}
	}
	return nil
}

// MarshalJSON writes the stored representation back out.
func (e Entitlement) MarshalJSON() ([]byte, error) {
	raw := entitlementJSON{Source: e.Source}
	if e.ExpiresAt != nil {
		s := e.ExpiresAt.UTC().Format(time.RFC3339)
		raw.ExpiresDate = &s
	}
	return json.Marshal(raw)
}
