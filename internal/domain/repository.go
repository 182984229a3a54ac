package domain

import (
	"context"
	"time"
)

// VideoRepository defines persistence for video tasks. Tasks are created by
// the generation pipeline; this service only lists them and writes refreshed
// status fields back.
type VideoRepository interface {
	// ListByOwner returns every task for the owner in unspecified order.
	// Ordering is done in memory by the caller to keep the query index-free.
	ListByOwner(ctx context.Context, ownerID string) ([]VideoTask, error)
	// ApplyRefresh overwrites the status fields of one task and stamps
	// updated_at with the server time.
	ApplyRefresh(ctx context.Context, videoID string, refresh VideoRefresh) error
}

// UserRepository defines access to account profiles and their colocated
// entitlement sets.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	// ListAll returns the full user population for the scheduled credit
	// refresh run.
	ListAll(ctx context.Context) ([]User, error)
}

// CreditRepository defines the credit ledger. Both grant methods are single
// atomic read-modify-writes against the account row so concurrent grants
// from the refresh run and activation logic cannot lose updates.
type CreditRepository interface {
	// Get loads the account, creating a zero-balance one if absent.
	Get(ctx context.Context, userID string) (*CreditAccount, error)
	// GrantGift atomically adds gift credit and sets last_gift_reset to the
	// server time. Paid credit is never touched.
	GrantGift(ctx context.Context, userID string, amount int, reason string) error
	// GrantPaid atomically adds paid credit. Gift credit and the gift reset
	// timestamp are never touched.
	GrantPaid(ctx context.Context, userID string, amount int, productID, purchaseID string) error
}

// FeedbackRepository stores submitted feedback.
type FeedbackRepository interface {
	Create(ctx context.Context, fb *Feedback) error
}

// ProductRepository lists a user's saved products.
type ProductRepository interface {
	// ListByOwner returns the owner's products newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]Product, error)
}

// Clock abstracts the evaluation instant so time-sensitive logic is
// testable. Production code passes time.Now.
type Clock func() time.Time
