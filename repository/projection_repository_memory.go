package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"everest-finance/domain"
)

// DefaultHistorySize bounds the in-memory projection history.
const DefaultHistorySize = 500

// ProjectionRepositoryMemory keeps the most recent projections in memory,
// dropping the oldest once capacity is reached.
type ProjectionRepositoryMemory struct {
	mu       sync.Mutex
	capacity int
	data     []domain.ProjectionRecord
	now      func() time.Time
}

func NewProjectionRepositoryMemory(capacity int) *ProjectionRepositoryMemory {
	if capacity <= 0 {
		capacity = DefaultHistorySize
	}
	return &ProjectionRepositoryMemory{
		capacity: capacity,
		data:     []domain.ProjectionRecord{},
		now:      time.Now,
	}
}

// Save stores the projection and returns the stored record.
func (r *ProjectionRepositoryMemory) Save(
	_ context.Context,
	req domain.ProjectionRequest,
	result domain.ProjectionResult,
) (domain.ProjectionRecord, error) {
	rec := domain.ProjectionRecord{
		ID:        uuid.NewString(),
		Request:   req,
		Result:    result,
		CreatedAt: r.now().UTC(),
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.data) == r.capacity {
		r.data = append(r.data[:0], r.data[1:]...)
	}
	r.data = append(r.data, rec)
	return rec, nil
}

// Recent returns up to limit records, newest first. limit <= 0 returns all.
func (r *ProjectionRepositoryMemory) Recent(_ context.Context, limit int) ([]domain.ProjectionRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.data)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.ProjectionRecord, 0, n)
	for i := len(r.data) - 1; i >= 0 && len(out) < n; i-- {
		out = append(out, r.data[i])
	}
	return out, nil
}
