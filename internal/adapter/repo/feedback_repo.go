package repo

import (
	"context"

	"videoserver/internal/domain"
	"videoserver/internal/infra"
	"videoserver/internal/sqlinline"
)

// FeedbackRepositoryPG implements domain.FeedbackRepository.
type FeedbackRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewFeedbackRepository creates a feedback repository backed by PostgreSQL.
func NewFeedbackRepository(sql infra.SQLExecutor) *FeedbackRepositoryPG {
	return &FeedbackRepositoryPG{sql: sql}
}

// Create inserts one feedback entry.
func (r *FeedbackRepositoryPG) Create(ctx context.Context, fb *domain.Feedback) error {
	_, err := r.sql.Exec(ctx, sqlinline.QInsertFeedback,
		fb.ID,
		fb.UserID,
		fb.Email,
		fb.DisplayName,
		fb.Body,
		string(fb.Status),
	)
	return err
}

var _ domain.FeedbackRepository = (*FeedbackRepositoryPG)(nil)
