// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Atomwalk Technologies

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/atomwalk/hrm-client/internal/logger"
	"github.com/atomwalk/hrm-client/internal/service"
	"github.com/atomwalk/hrm-client/models"
)

type activityRefreshJob struct {
	activities service.ActivityService

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	latest  models.ActivitySummary
	fetched bool

	logger *logger.Logger
}

// NewActivityRefreshJob creates a refresh job driven by activities. The job
// is idle until Start is called.
func NewActivityRefreshJob(activities service.ActivityService, logger *logger.Logger) ActivityRefreshJob {
	return &activityRefreshJob{activities: activities, logger: logger}
}

// Start implements ActivityRefreshJob. It stops any previously running job,
// refreshes once immediately, then re-fetches every interval. If interval is
// zero or negative it defaults to 5 minutes. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *activityRefreshJob) Start(ctx context.Context, callMode string, interval time.Duration) {
	if interval <= 0 {
		interval = 5 * time.Minute
	}

	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		j.refresh(jobCtx, callMode)

		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.refresh(jobCtx, callMode)
			}
		}
	}()
}

// Stop implements ActivityRefreshJob. It cancels the background goroutine's
// context and blocks until the goroutine has fully exited. Safe to call when
// the job is not running (no-op in that case).
func (j *activityRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

func (j *activityRefreshJob) Latest() (models.ActivitySummary, bool) {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.latest, j.fetched
}

func (j *activityRefreshJob) refresh(ctx context.Context, callMode string) {
	summary, err := j.activities.GetSummary(ctx, callMode)
	if err != nil {
		// transient failures keep the previous summary
		j.logger.Warn().Err(err).Msg("activity summary refresh failed")
		return
	}

	j.mu.Lock()
	j.latest = summary
	j.fetched = true
	j.mu.Unlock()
}
