package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-fhevm/internal/logger"
)

// DefaultInterval applies when a job is given a non-positive interval.
const DefaultInterval = 5 * time.Minute

// Task is one run of a periodic job.
type Task func(ctx context.Context) error

type tickerWorker struct {
	name     string
	interval time.Duration
	task     Task
	log      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewTickerWorker returns a worker running task every interval. Task errors
// are logged and the schedule continues.
func NewTickerWorker(name string, interval time.Duration, task Task, log *logger.Logger) Worker {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &tickerWorker{name: name, interval: interval, task: task, log: log}
}

// Start stops any previous run, then launches the ticker goroutine. The
// goroutine exits when ctx is cancelled or Stop is called.
func (w *tickerWorker) Start(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	w.log.Debug().Str("worker", w.name).Dur("interval", w.interval).Msg("worker started")

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				if err := w.task(jobCtx); err != nil {
					w.log.Err(err).Str("worker", w.name).Msg("worker run failed")
				}
			}
		}
	}()
}

func (w *tickerWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
		w.log.Debug().Str("worker", w.name).Msg("worker stopped")
	}
	w.wg.Wait()
}
