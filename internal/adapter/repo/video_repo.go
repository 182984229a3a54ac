package repo

import (
	"context"

	"videoserver/internal/domain"
	"videoserver/internal/infra"
	"videoserver/internal/sqlinline"
)

// VideoRepositoryPG implements domain.VideoRepository.
type VideoRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewVideoRepository creates a video task repository backed by PostgreSQL.
func NewVideoRepository(sql infra.SQLExecutor) *VideoRepositoryPG {
	return &VideoRepositoryPG{sql: sql}
}

// ListByOwner returns every task owned by ownerID, in store order.
func (r *VideoRepositoryPG) ListByOwner(ctx context.Context, ownerID string) ([]domain.VideoTask, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QSelectVideosByOwner, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tasks []domain.VideoTask
	for rows.Next() {
		var task domain.VideoTask
		var status *string
		if err := rows.Scan(
			&task.ID,
			&task.OwnerID,
			&status,
			&task.VideoURL,
			&task.Progress,
			&task.ImageURL,
			&task.Script,
			&task.AvatarID,
			&task.VoiceID,
			&task.ErrorCode,
			&task.ErrorMessage,
			&task.ErrorDetail,
			&task.CreatedAt,
			&task.UpdatedAt,
		); err != nil {
			return nil, err
		}
		if status != nil {
			task.Status = domain.NormalizeVideoStatus(*status)
		} else {
			task.Status = domain.VideoStatusUnknown
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tasks, nil
}

// ApplyRefresh overwrites the mutable status fields of one task. The row's
// updated_at is stamped server-side.
func (r *VideoRepositoryPG) ApplyRefresh(ctx context.Context, videoID string, refresh domain.VideoRefresh) error {
	_, err := r.sql.Exec(ctx, sqlinline.QApplyVideoRefresh,
		videoID,
		string(refresh.Status),
		refresh.VideoURL,
		refresh.Progress,
		refresh.ErrorCode,
		refresh.ErrorMessage,
		refresh.ErrorDetail,
	)
	return err
}

var _ domain.VideoRepository = (*VideoRepositoryPG)(nil)
