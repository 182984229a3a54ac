package reconcile

import (
	"time"

	"videoserver/internal/domain"
)

// VideoView is the wire shape served to clients. Timestamps are ISO-8601
// strings, null when the record never carried one.
type VideoView struct {
	VideoID      string  `json:"video_id"`
	VideoURL     *string `json:"video_url"`
	Status       string  `json:"status"`
	Progress     *int    `json:"progress"`
	ImageURL     *string `json:"image_url"`
	Script       *string `json:"script"`
	AvatarID     *string `json:"avatar_id"`
	VoiceID      *string `json:"voice_id"`
	ErrorCode    *string `json:"error_code"`
	ErrorMessage *string `json:"error_message"`
	ErrorDetail  *string `json:"error_detail"`
	CreatedAt    *string `json:"created_at"`
	UpdatedAt    *string `json:"updated_at"`

	createdAt time.Time
}

// NewVideoView converts a task into its client representation.
func NewVideoView(task domain.VideoTask) VideoView {
	status := task.Status
	if status == "" {
		status = domain.VideoStatusUnknown
	}
	return VideoView{
		VideoID:      task.ID,
		VideoURL:     task.VideoURL,
		Status:       string(status),
		Progress:     task.Progress,
		ImageURL:     task.ImageURL,
		Script:       task.Script,
		AvatarID:     task.AvatarID,
		VoiceID:      task.VoiceID,
		ErrorCode:    task.ErrorCode,
		ErrorMessage: task.ErrorMessage,
		ErrorDetail:  task.ErrorDetail,
		CreatedAt:    isoTime(task.CreatedAt),
		UpdatedAt:    isoTime(task.UpdatedAt),
		createdAt:    task.CreatedAt,
	}
}

func isoTime(t time.Time) *string {
	if t.IsZero() {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
