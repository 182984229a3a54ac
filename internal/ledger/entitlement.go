// Package ledger grants recurring gift credit to users holding an active
// paid entitlement.
package ledger

import (
	"time"

	"videoserver/internal/domain"
)

// HasActiveEntitlement reports whether any entitlement in the set grants
// benefits at the evaluation instant. Only an expiry strictly in the future
// counts; missing or unparsable expiries fail closed. No stored boolean flag
// is consulted, the expiry comparison is the sole source of truth.
func HasActiveEntitlement(set domain.EntitlementSet, now time.Time) bool {
	for _, ent := range set {
		if ent.ExpiresAt != nil && ent.ExpiresAt.After(now) {
			return true
		}
	}
	return false
}

// giftEligible reports whether enough whole days have elapsed since the last
// gift grant. A nil lastReset means the user was never granted and is
// immediately eligible. Elapsed days use floor division so the boundary is
// exact: eligibility begins the instant the seventh full day completes.
func giftEligible(lastReset *time.Time, now time.Time) bool {
	if lastReset == nil {
		return true
	}
	elapsed := now.Sub(*lastReset)
	if elapsed < 0 {
		return false
	}
	days := int(elapsed.Hours()) / 24
	return days >= domain.GiftRegrantDays
}
