package ledger

import (
	"context"
	"fmt"
	"time"

	"videoserver/internal/domain"
	"videoserver/internal/infra"
)

// Summary tallies one refresh run for observability; nothing downstream
// consumes it beyond logging.
type Summary struct {
	Granted int
	Skipped int
	Errors  int
}

// Refresher walks the full user population and grants the weekly gift
// credit to every user with an active entitlement whose last grant is at
// least the re-grant interval old. Lapsed subscribers simply stop matching
// the entitlement check; no explicit cancellation step exists.
type Refresher struct {
	users   domain.UserRepository
	credits domain.CreditRepository
	logger  infra.Logger
	now     domain.Clock
}

func NewRefresher(users domain.UserRepository, credits domain.CreditRepository, logger infra.Logger) *Refresher {
	return &Refresher{
		users:   users,
		credits: credits,
		logger:  logger,
		now:     time.Now,
	}
}

// WithClock substitutes the evaluation clock. Tests use it to pin "now".
func (r *Refresher) WithClock(clock domain.Clock) *Refresher {
	r.now = clock
	return r
}

// Run executes one refresh pass. Per-user failures are counted and logged
// but never abort the remaining users; only a failure to enumerate users is
// fatal. The pass is idempotent: eligibility re-derives from the stored
// last_gift_reset, so re-running within the same window grants nothing.
func (r *Refresher) Run(ctx context.Context) (Summary, error) {
	users, err := r.users.ListAll(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("list users: %w", err)
	}

	now := r.now().UTC()
	var summary Summary
	for _, user := range users {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		if !HasActiveEntitlement(user.Entitlements, now) {
			r.logger.Info().Str("user_id", user.ID).Msg("ledger: no active entitlement, skipping")
			summary.Skipped++
			continue
		}

		granted, err := r.refreshUser(ctx, user.ID, now)
		if err != nil {
			r.logger.Error().Err(err).Str("user_id", user.ID).Msg("ledger: refresh failed for user")
			summary.Errors++
			continue
		}
		if granted {
			summary.Granted++
		} else {
			summary.Skipped++
		}
	}

	r.logger.Info().
		Int("granted", summary.Granted).
		Int("skipped", summary.Skipped).
		Int("errors", summary.Errors).
		Msg("ledger: refresh run complete")
	return summary, nil
}

func (r *Refresher) refreshUser(ctx context.Context, userID string, now time.Time) (bool, error) {
	account, err := r.credits.Get(ctx, userID)
	if err != nil {
		return false, fmt.Errorf("load credit account: %w", err)
	}

	if !giftEligible(account.LastGiftReset, now) {
		r.logger.Info().
			Str("user_id", userID).
			Time("last_gift_reset", *account.LastGiftReset).
			Msg("ledger: last grant too recent, skipping")
		return false, nil
	}

	if err := r.credits.GrantGift(ctx, userID, domain.WeeklyGiftCredit, domain.GiftReasonWeeklyReset); err != nil {
		return false, fmt.Errorf("grant gift credit: %w", err)
	}
	r.logger.Info().
		Str("user_id", userID).
		Int("amount", domain.WeeklyGiftCredit).
		Msg("ledger: gift credit granted")
	return true, nil
}
