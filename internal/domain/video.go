package domain

import "time"

// VideoStatus enumerates the lifecycle states reported for a generation task.
type VideoStatus string

const (
	VideoStatusPending    VideoStatus = "pending"
	VideoStatusProcessing VideoStatus = "processing"
	VideoStatusCompleted  VideoStatus = "completed"
	VideoStatusFailed     VideoStatus = "failed"
	// VideoStatusUnknown is the safe default for any missing or
	// unrecognized status value.
	VideoStatusUnknown VideoStatus = "unknown"
)

// NormalizeVideoStatus maps an empty stored value to unknown. Unrecognized
// non-empty values are carried verbatim so upstream vocabulary changes do not
// destroy information.
func NormalizeVideoStatus(s string) VideoStatus {
	if s == "" {
		return VideoStatusUnknown
	}
	return VideoStatus(s)
}

// VideoTask is a single generation job owned by a user. Generation
// parameters (image, script, avatar, voice) are immutable after creation;
// only the status fields change afterwards.
type VideoTask struct {
	ID           string
	OwnerID      string
	Status       VideoStatus
	VideoURL     *string
	Progress     *int
	ImageURL     *string
	Script       *string
	AvatarID     *string
	VoiceID      *string
	ErrorCode    *string
	ErrorMessage *string
	ErrorDetail  *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsProcessing reports whether the task is still eligible for an upstream
// status refresh. Tasks in any other state keep their stored fields.
func (t VideoTask) IsProcessing() bool {
	return t.Status == VideoStatusProcessing
}

// UpstreamStatus is the normalized answer from the generation provider's
// status API for one video. Nil fields mean the provider omitted the value.
type UpstreamStatus struct {
	Status       string
	VideoURL     *string
	Progress     *int
	ErrorCode    *string
	ErrorMessage *string
	ErrorDetail  *string
}

// VideoRefresh carries the merged status fields written back to storage
// after a successful upstream query.
type VideoRefresh struct {
	Status       VideoStatus
	VideoURL     *string
	Progress     *int
	ErrorCode    *string
	ErrorMessage *string
	ErrorDetail  *string
}
