// Package reconcile refreshes locally stored video status against the
// generation provider at read time, serving a merged view without requiring
// the refresh to succeed.
package reconcile

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"videoserver/internal/domain"
	"videoserver/internal/infra"
)

const (
	defaultPerItemTimeout   = 3 * time.Second
	defaultGlobalBudget     = 5 * time.Second
	defaultWriteBackTimeout = 10 * time.Second
	defaultMaxResults       = 100
)

// StatusFetcher is the slice of the upstream API the engine depends on.
type StatusFetcher interface {
	VideoStatus(ctx context.Context, videoID string) (*domain.UpstreamStatus, error)
}

// Config bounds the engine's concurrency. Zero values fall back to the
// production defaults.
type Config struct {
	// PerItemTimeout caps each individual upstream query.
	PerItemTimeout time.Duration
	// GlobalBudget caps the total time spent waiting for upstream queries;
	// queries still outstanding when it expires are abandoned for the
	// purpose of building the response.
	GlobalBudget time.Duration
	// WriteBackTimeout bounds the lifetime of detached write-back tasks.
	WriteBackTimeout time.Duration
	// MaxResults truncates the response list.
	MaxResults int
}

func (c Config) withDefaults() Config {
	if c.PerItemTimeout <= 0 {
		c.PerItemTimeout = defaultPerItemTimeout
	}
	if c.GlobalBudget <= 0 {
		c.GlobalBudget = defaultGlobalBudget
	}
	if c.WriteBackTimeout <= 0 {
		c.WriteBackTimeout = defaultWriteBackTimeout
	}
	if c.MaxResults <= 0 {
		c.MaxResults = defaultMaxResults
	}
	return c
}

// Engine assembles a user's video list, refreshing in-flight tasks from
// upstream with bounded, best-effort concurrency.
type Engine struct {
	videos   domain.VideoRepository
	upstream StatusFetcher
	logger   infra.Logger
	cfg      Config
}

// NewEngine wires the engine. upstream may be nil when the provider is not
// configured; every task is then treated as stable and served from storage.
func NewEngine(videos domain.VideoRepository, upstream StatusFetcher, logger infra.Logger, cfg Config) *Engine {
	return &Engine{
		videos:   videos,
		upstream: upstream,
		logger:   logger,
		cfg:      cfg.withDefaults(),
	}
}

// ListForOwner returns the owner's videos newest-first, truncated to the
// configured maximum. A listing failure is fatal to the call; any individual
// refresh failure degrades that entry to its stored data.
func (e *Engine) ListForOwner(ctx context.Context, ownerID string) ([]VideoView, error) {
	tasks, err := e.videos.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list video tasks: %w", err)
	}

	var processing, stable []domain.VideoTask
	for _, task := range tasks {
		if task.IsProcessing() && e.upstream != nil {
			processing = append(processing, task)
		} else {
			stable = append(stable, task)
		}
	}

	updates := e.fetchStatuses(ctx, processing)

	views := make([]VideoView, 0, len(tasks))
	for _, task := range processing {
		update, ok := updates[task.ID]
		if !ok {
			views = append(views, NewVideoView(task))
			continue
		}
		merged := mergeTask(task, update)
		e.dispatchWriteBack(task.ID, refreshFromTask(merged))
		views = append(views, NewVideoView(merged))
	}
	for _, task := range stable {
		views = append(views, NewVideoView(task))
	}

	// Newest first; tasks with no creation timestamp sort as oldest.
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].createdAt.After(views[j].createdAt)
	})
	if len(views) > e.cfg.MaxResults {
		views = views[:e.cfg.MaxResults]
	}
	return views, nil
}

// fetchStatuses fans out one query per processing task and collects whatever
// settles before the global budget expires. Individual failures are logged
// and dropped; they never fail the call.
func (e *Engine) fetchStatuses(ctx context.Context, processing []domain.VideoTask) map[string]*domain.UpstreamStatus {
	if len(processing) == 0 {
		return nil
	}

	var mu sync.Mutex
	settled := make(map[string]*domain.UpstreamStatus, len(processing))

	var g errgroup.Group
	for _, task := range processing {
		task := task
		g.Go(func() error {
			itemCtx, cancel := context.WithTimeout(ctx, e.cfg.PerItemTimeout)
			defer cancel()
			status, err := e.upstream.VideoStatus(itemCtx, task.ID)
			if err != nil {
				e.logger.Warn().Err(err).
					Str("video_id", task.ID).
					Msg("reconcile: upstream status query failed, serving stored data")
				return nil
			}
			mu.Lock()
			settled[task.ID] = status
			mu.Unlock()
			return nil
		})
	}

	done := make(chan struct{})
	go func() {
		_ = g.Wait()
		close(done)
	}()

	budget := time.NewTimer(e.cfg.GlobalBudget)
	defer budget.Stop()
	select {
	case <-done:
	case <-budget.C:
		mu.Lock()
		outstanding := len(processing) - len(settled)
		mu.Unlock()
		e.logger.Warn().
			Int("outstanding", outstanding).
			Msg("reconcile: global budget expired, abandoning outstanding queries")
	}

	// Late finishers may still write to the map; snapshot under the lock so
	// the response is built from a consistent view.
	mu.Lock()
	snapshot := make(map[string]*domain.UpstreamStatus, len(settled))
	for id, status := range settled {
		snapshot[id] = status
	}
	mu.Unlock()
	return snapshot
}

// dispatchWriteBack persists merged fields without blocking the response.
// Failures are logged only; the next read retries naturally.
func (e *Engine) dispatchWriteBack(videoID string, refresh domain.VideoRefresh) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), e.cfg.WriteBackTimeout)
		defer cancel()
		if err := e.videos.ApplyRefresh(ctx, videoID, refresh); err != nil {
			e.logger.Warn().Err(err).
				Str("video_id", videoID).
				Msg("reconcile: status write-back failed")
		}
	}()
}

// mergeTask overlays upstream fields on the stored task. Precedence is
// field-by-field: upstream value, else stored value, else null.
func mergeTask(task domain.VideoTask, update *domain.UpstreamStatus) domain.VideoTask {
	merged := task
	if update.Status != "" {
		merged.Status = domain.NormalizeVideoStatus(update.Status)
	}
	if update.VideoURL != nil {
		merged.VideoURL = update.VideoURL
	}
	if update.Progress != nil {
		merged.Progress = update.Progress
	}
	if update.ErrorCode != nil {
		merged.ErrorCode = update.ErrorCode
	}
	if update.ErrorMessage != nil {
		merged.ErrorMessage = update.ErrorMessage
	}
	if update.ErrorDetail != nil {
		merged.ErrorDetail = update.ErrorDetail
	}
	return merged
}

func refreshFromTask(task domain.VideoTask) domain.VideoRefresh {
	return domain.VideoRefresh{
		Status:       task.Status,
		VideoURL:     task.VideoURL,
		Progress:     task.Progress,
		ErrorCode:    task.ErrorCode,
		ErrorMessage: task.ErrorMessage,
		ErrorDetail:  task.ErrorDetail,
	}
}
