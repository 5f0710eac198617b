package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/akulikov/scoresync/internal/logger"
)

type clientSyncJob struct {
	syncService ClientSyncService
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewClientSyncJob creates a clientSyncJob that calls syncService.FullSync on a
// ticker. The job is idle until Start is called.
func NewClientSyncJob(syncService ClientSyncService, logger *logger.Logger) ClientSyncJob {
	return &clientSyncJob{syncService: syncService, logger: logger}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that runs one sync immediately and again
// every interval. If interval is zero or negative it defaults to 5 minutes.
// The goroutine exits when ctx is cancelled or Stop is called.
func (j *clientSyncJob) Start(ctx context.Context, userID int64, interval time.Duration) {
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
		t := time.NewTicker(interval)
		defer t.Stop()

		j.runOnce(jobCtx, userID)
		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.runOnce(jobCtx, userID)
			}
		}
	}()
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// runOnce executes one sync cycle. Background failures are logged, never
// surfaced: the next tick simply tries again. Conflicts reach the caller
// through the conflict listeners, not through the job.
func (j *clientSyncJob) runOnce(ctx context.Context, userID int64) {
	summary, err := j.syncService.FullSync(ctx, userID)
	switch {
	case errors.Is(err, ErrSyncAlreadyRunning), errors.Is(err, context.Canceled):
		return
	case err != nil:
		j.logger.Warn().Err(err).Msg("background sync cycle failed")
	default:
		j.logger.Debug().
			Int("pushed", summary.Pushed).
			Int("pulled", summary.Pulled).
			Int("conflicts", summary.Conflicts).
			Msg("background sync cycle finished")
	}
}
