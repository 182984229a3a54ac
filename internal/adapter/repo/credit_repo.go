package repo

import (
	"context"
	"fmt"

	"videoserver/internal/domain"
	"videoserver/internal/infra"
	"videoserver/internal/sqlinline"
)

const (
	txKindGift = "gift"
	txKindPaid = "paid"
)

// CreditRepositoryPG implements domain.CreditRepository. Both grant paths
// are single upsert statements so the increment and any timestamp stamp
// apply atomically; racing writers cannot lose updates.
type CreditRepositoryPG struct {
	sql    infra.SQLExecutor
	logger infra.Logger
}

// NewCreditRepository creates a credit ledger repository backed by PostgreSQL.
func NewCreditRepository(sql infra.SQLExecutor, logger infra.Logger) *CreditRepositoryPG {
	return &CreditRepositoryPG{sql: sql, logger: logger}
}

// Get loads the account, creating a zero-balance row first when absent.
func (r *CreditRepositoryPG) Get(ctx context.Context, userID string) (*domain.CreditAccount, error) {
	if _, err := r.sql.Exec(ctx, sqlinline.QEnsureCreditAccount, userID); err != nil {
		return nil, fmt.Errorf("ensure credit account: %w", err)
	}
	row := r.sql.QueryRow(ctx, sqlinline.QSelectCreditAccount, userID)
	var account domain.CreditAccount
	if err := row.Scan(
		&account.UserID,
		&account.GiftCredit,
		&account.PaidCredit,
		&account.LastGiftReset,
		&account.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &account, nil
}

// GrantGift atomically adds gift credit and moves last_gift_reset to the
// server time. Paid credit is untouched.
func (r *CreditRepositoryPG) GrantGift(ctx context.Context, userID string, amount int, reason string) error {
	if amount <= 0 {
		return fmt.Errorf("gift amount must be positive: %w", domain.ErrInvalidArgument)
	}
	if _, err := r.sql.Exec(ctx, sqlinline.QGrantGiftCredit, userID, amount); err != nil {
		return err
	}
	r.recordTransaction(ctx, userID, txKindGift, amount, reason, nil, nil)
	return nil
}

// GrantPaid atomically adds paid credit. Gift credit and its reset
// timestamp are untouched.
func (r *CreditRepositoryPG) GrantPaid(ctx context.Context, userID string, amount int, productID, purchaseID string) error {
	if amount <= 0 {
		return fmt.Errorf("paid amount must be positive: %w", domain.ErrInvalidArgument)
	}
	if _, err := r.sql.Exec(ctx, sqlinline.QGrantPaidCredit, userID, amount); err != nil {
		return err
	}
	r.recordTransaction(ctx, userID, txKindPaid, amount, "purchase", nullable(productID), nullable(purchaseID))
	return nil
}

// recordTransaction is an audit write; the grant has already been applied,
// so a failure here must not undo or fail it.
func (r *CreditRepositoryPG) recordTransaction(ctx context.Context, userID, kind string, amount int, reason string, productID, purchaseID *string) {
	if _, err := r.sql.Exec(ctx, sqlinline.QInsertCreditTransaction, userID, kind, amount, reason, productID, purchaseID); err != nil {
		r.logger.Warn().Err(err).
			Str("user_id", userID).
			Str("kind", kind).
			Int("amount", amount).
			Msg("credit transaction audit write failed")
	}
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

var _ domain.CreditRepository = (*CreditRepositoryPG)(nil)
