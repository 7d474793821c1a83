// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-fhevm/internal/logger"
)

// recordingWorker tracks lifecycle calls into a shared log.
type recordingWorker struct {
	id  int
	mu  *sync.Mutex
	log *[]string
}

func (r *recordingWorker) Start(context.Context) { r.record("start") }
func (r *recordingWorker) Stop()                 { r.record("stop") }

func (r *recordingWorker) record(ev string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	*r.log = append(*r.log, ev+string(rune('0'+r.id)))
}

func TestWorkers_StartStopOrder(t *testing.T) {
	var mu sync.Mutex
	var events []string
	ws := NewWorkers(
		&recordingWorker{id: 1, mu: &mu, log: &events},
		&recordingWorker{id: 2, mu: &mu, log: &events},
	)
	ws.Add(&recordingWorker{id: 3, mu: &mu, log: &events})

	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, []string{"start1", "start2", "start3", "stop3", "stop2", "stop1"}, events)
}

func TestWorkers_Empty(t *testing.T) {
	ws := &Workers{}

	// Should not panic when workers field is nil
	ws.Start(context.Background())
	ws.Stop()
}

func TestTickerWorker_RunsUntilStopped(t *testing.T) {
	var runs atomic.Int32
	w := NewTickerWorker("test", 5*time.Millisecond, func(context.Context) error {
		runs.Add(1)
		return errors.New("logged, not fatal")
	}, logger.Nop())

	w.Start(context.Background())
	require.Eventually(t, func() bool { return runs.Load() >= 3 }, time.Second, time.Millisecond)
	w.Stop()

	after := runs.Load()
	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, after, runs.Load())

	// idempotent
	w.Stop()
}

func TestTickerWorker_StopsOnContextCancel(t *testing.T) {
	var runs atomic.Int32
	w := NewTickerWorker("test", time.Millisecond, func(ctx context.Context) error {
		runs.Add(1)
		return nil
	}, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	w.Start(ctx)
	require.Eventually(t, func() bool { return runs.Load() > 0 }, time.Second, time.Millisecond)
	cancel()

	done := make(chan struct{})
	go func() {
		w.Stop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Stop did not return after cancel")
	}
}

func TestTickerWorker_RestartReplacesRun(t *testing.T) {
	var runs atomic.Int32
	w := NewTickerWorker("test", time.Millisecond, func(context.Context) error {
		runs.Add(1)
		return nil
	}, logger.Nop())

	w.Start(context.Background())
	w.Start(context.Background())
	require.Eventually(t, func() bool { return runs.Load() > 0 }, time.Second, time.Millisecond)
	w.Stop()
}

func TestNewTickerWorker_DefaultInterval(t *testing.T) {
	w := NewTickerWorker("x", 0, func(context.Context) error { return nil }, logger.Nop())
	assert.Equal(t, DefaultInterval, w.(*tickerWorker).interval)
}

type recordingPruner struct {
	calls     atomic.Int32
	retention atomic.Int64
}

func (p *recordingPruner) Prune(_ context.Context, retention time.Duration) (int64, error) {
	p.calls.Add(1)
	p.retention.Store(int64(retention))
	return 1, nil
}

func TestJobs(t *testing.T) {
	pruner := &recordingPruner{}

	ws := NewWorkers(NewJournalPruneWorker(pruner, time.Hour, time.Millisecond, logger.Nop()))
	ws.Start(context.Background())
	require.Eventually(t, func() bool { return pruner.calls.Load() > 1 }, time.Second, time.Millisecond)
	ws.Stop()

	assert.Equal(t, int64(time.Hour), pruner.retention.Load())
}
