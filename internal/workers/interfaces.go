// Package workers provides abstractions for managing and running
// background workers in the application.
// It defines the Worker interface and a Workers aggregate that allows
// running multiple workers in a unified way, plus the activity summary
// refresh job that keeps the home screen counters current after login.
package workers

import (
	"context"
	"time"

	"github.com/atomwalk/hrm-client/models"
)

// Worker is the interface that must be implemented by any background worker.
// It defines a single Run method that starts the worker's execution.
//
// Implementations are expected to block for the duration of their work
// or spawn goroutines internally.
type Worker interface {
	Run()
}

// ActivityRefreshJob periodically re-fetches the activity summary for the
// logged-in user and caches the latest result for the UI.
type ActivityRefreshJob interface {
	// Start launches the background refresh goroutine. It refreshes once
	// immediately and then every interval, defaulting to 5 minutes if
	// interval is zero or negative. Any previously running job is stopped
	// before the new one begins.
	Start(ctx context.Context, callMode string, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it
	// has fully terminated.
	Stop()

	// Latest returns the most recently fetched summary and whether a
	// fetch has succeeded since Start.
	Latest() (models.ActivitySummary, bool)
}
