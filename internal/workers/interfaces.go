// Package workers runs the server's periodic background jobs, such as
// pruning the operation journal.
package workers

import (
	"context"
	"time"
)

// Worker is a background job with an explicit lifecycle.
//
// Start launches the job and returns immediately. Stop cancels it and blocks
// until it has exited; it is a no-op on a stopped worker.
type Worker interface {
	Start(ctx context.Context)
	Stop()
}

// Pruner deletes journal entries older than the retention period.
type Pruner interface {
	Prune(ctx context.Context, retention time.Duration) (int64, error)
}
