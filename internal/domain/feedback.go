package domain

import "time"

// FeedbackStatus tracks triage of a submitted feedback entry.
type FeedbackStatus string

const (
	FeedbackStatusPending  FeedbackStatus = "pending"
	FeedbackStatusReviewed FeedbackStatus = "reviewed"
	FeedbackStatusResolved FeedbackStatus = "resolved"
)

// Feedback is a free-form message from a user, enriched with whatever
// profile data was available at submission time.
type Feedback struct {
	ID          string
	UserID      string
	Email       string
	DisplayName string
	Body        string
	Status      FeedbackStatus
	CreatedAt   time.Time
}
