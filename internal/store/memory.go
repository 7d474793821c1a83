package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-fhevm/models"
)

// DefaultMemoryCapacity bounds the in-memory journal.
const DefaultMemoryCapacity = 1000

// memoryOperationRepository keeps the newest entries in a fixed-size ring.
// Once full, each Save overwrites the oldest entry.
type memoryOperationRepository struct {
	mu   sync.RWMutex
	ring []models.Operation
	// next is the slot the next Save writes to.
	next int
	size int
}

// NewMemoryOperationRepository returns a ring-backed [OperationRepository]
// holding at most capacity entries.
func NewMemoryOperationRepository(capacity int) OperationRepository {
	if capacity <= 0 {
		capacity = DefaultMemoryCapacity
	}
	return &memoryOperationRepository{ring: make([]models.Operation, capacity)}
}

func (m *memoryOperationRepository) Save(ctx context.Context, op models.Operation) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.size {
		if m.at(i).ID == op.ID {
			return ErrOperationExists
		}
	}

	m.ring[m.next] = op
	m.next = (m.next + 1) % len(m.ring)
	if m.size < len(m.ring) {
		m.size++
	}
	return nil
}

func (m *memoryOperationRepository) List(ctx context.Context, filter models.OperationFilter) ([]models.Operation, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	limit := normalizeLimit(filter.Limit)
	out := make([]models.Operation, 0, min(limit, m.size))
	// walk newest to oldest
	for i := m.size - 1; i >= 0 && len(out) < limit; i-- {
		op := m.at(i)
		if filter.Kind != "" && op.Kind != filter.Kind {
			continue
		}
		if filter.Actor != "" && op.Actor != filter.Actor {
			continue
		}
		out = append(out, op)
	}
	return out, nil
}

func (m *memoryOperationRepository) DeleteOlderThan(ctx context.Context, t time.Time) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	kept := make([]models.Operation, 0, m.size)
	for i := range m.size {
		if op := m.at(i); !op.CreatedAt.Before(t) {
			kept = append(kept, op)
		}
	}
	removed := int64(m.size - len(kept))

	clear(m.ring)
	copy(m.ring, kept)
	m.size = len(kept)
	m.next = m.size % len(m.ring)
	return removed, nil
}

// at returns the i-th entry in insertion order, 0 being the oldest.
func (m *memoryOperationRepository) at(i int) models.Operation {
	start := (m.next - m.size + len(m.ring)) % len(m.ring)
	return m.ring[(start+i)%len(m.ring)]
}
