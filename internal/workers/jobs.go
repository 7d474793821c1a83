// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fhevm/internal/logger"
)

// NewJournalPruneWorker deletes journal entries older than retention every
// interval.
func NewJournalPruneWorker(p Pruner, retention, interval time.Duration, log *logger.Logger) Worker {
	return NewTickerWorker("journal-prune", interval, func(ctx context.Context) error {
		n, err := p.Prune(ctx, retention)
		if err != nil {
			return err
		}
		if n > 0 {
			log.Info().Int64("removed", n).Dur("retention", retention).Msg("operation journal pruned")
		}
		return nil
	}, log)
}
