// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Atomwalk Technologies

package workers

import (
	"context"
	"errors"
	"reflect"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/atomwalk/hrm-client/internal/logger"
	"github.com/atomwalk/hrm-client/internal/mock"
	"github.com/atomwalk/hrm-client/models"
)

// mockWorker is a test implementation of the Worker interface
// that tracks how many times Run was called.
type mockWorker struct {
	runCount int
}

func (m *mockWorker) Run() {
	m.runCount++
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1 := &mockWorker{}
	w2 := &mockWorker{}
	w3 := &mockWorker{}

	ws := NewWorkers(w1, w2, w3)
	ws.Run()

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.Equalf(t, 1, w.runCount, "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	// should not panic on an empty workers list
	NewWorkers().Run()
}

func TestWorkerFunc(t *testing.T) {
	var called int32
	WorkerFunc(func() { atomic.AddInt32(&called, 1) }).Run()
	assert.EqualValues(t, 1, called)
}

// ── ActivityRefreshJob ───────────────────────────────────────────────────────

func TestActivityRefreshJob_ImmediateRefreshAndStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockActivities := mock.NewMockActivityService(ctrl)
	job := NewActivityRefreshJob(mockActivities, logger.Nop())

	want := models.ActivitySummary{PendingCount: 3}
	fetched := make(chan struct{})
	mockActivities.EXPECT().GetSummary(gomock.Any(), "USER_ACTIVITY").DoAndReturn(
		func(context.Context, string) (models.ActivitySummary, error) {
			close(fetched)
			return want, nil
		},
	)

	job.Start(context.Background(), "USER_ACTIVITY", time.Hour)
	defer job.Stop()

	select {
	case <-fetched:
	case <-time.After(2 * time.Second):
		t.Fatal("refresh was never called")
	}

	// the goroutine publishes after returning from GetSummary
	require.Eventually(t, func() bool {
		got, ok := job.Latest()
		return ok && reflect.DeepEqual(got, want)
	}, 2*time.Second, 10*time.Millisecond)

	job.Stop()
	_, ok := job.Latest()
	assert.True(t, ok, "latest summary survives Stop")
}

func TestActivityRefreshJob_FailureKeepsPreviousSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockActivities := mock.NewMockActivityService(ctrl)
	job := NewActivityRefreshJob(mockActivities, logger.Nop()).(*activityRefreshJob)

	job.latest = models.ActivitySummary{PendingCount: 3}
	job.fetched = true

	mockActivities.EXPECT().GetSummary(gomock.Any(), "USER_ACTIVITY").
		Return(models.ActivitySummary{}, errors.New("offline"))
	job.refresh(context.Background(), "USER_ACTIVITY")

	got, ok := job.Latest()
	assert.True(t, ok)
	assert.Equal(t, 3, got.PendingCount)
}

func TestActivityRefreshJob_StartStopsPreviousRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockActivities := mock.NewMockActivityService(ctrl)
	job := NewActivityRefreshJob(mockActivities, logger.Nop())

	mockActivities.EXPECT().GetSummary(gomock.Any(), gomock.Any()).
		Return(models.ActivitySummary{}, nil).MinTimes(2)

	job.Start(context.Background(), "USER_ACTIVITY", time.Hour)
	job.Start(context.Background(), "USER_ACTIVITY", time.Hour) // replaces the first run
	job.Stop()

	// Stop is safe to call twice
	job.Stop()
}
