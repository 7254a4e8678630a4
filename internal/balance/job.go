package balance

import (
	"context"
	"sync"
	"time"
)

// Target resolves the wallet currently of interest to the auto-refresh
// job. ok is false when no wallet is loaded or the session is gone, in
// which case the tick is skipped.
type Target func() (address, endpoint string, ok bool)

// Job periodically issues refresh requests for the loaded wallet. It is
// idle until Start is called. Requests that land while a lookup is
// pending coalesce inside the Refresher, so a slow network never stacks
// up work.
type Job struct {
	refresher *Refresher
	target    Target

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewJob creates a Job that feeds refresher from target on a ticker.
func NewJob(refresher *Refresher, target Target) *Job {
	return &Job{refresher: refresher, target: target}
}

// Start stops any previously running job, then launches a background
// goroutine requesting a refresh every interval. An interval of zero or
// less defaults to one minute. The goroutine exits when ctx is
// cancelled or Stop is called.
func (j *Job) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
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

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if address, endpoint, ok := j.target(); ok {
					j.refresher.Request(jobCtx, address, endpoint)
				}
			}
		}
	}()
}

// Stop cancels the background goroutine's context and blocks until it
// has fully exited. Safe to call when the job is not running.
func (j *Job) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
