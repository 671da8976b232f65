package memory

import (
	"context"
	"sync"

	"github.com/pucktrack/pucktrack/internal/domain/fetchlog"
)

type FetchLogRepository struct {
	mu      sync.RWMutex
	nextID  int64
	entries []fetchlog.Entry
}

func NewFetchLogRepository() *FetchLogRepository {
	return &FetchLogRepository{nextID: 1}
}

func (r *FetchLogRepository) Append(_ context.Context, entry fetchlog.Entry) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry.ID = r.nextID
	r.nextID++
	r.entries = append(r.entries, entry)

	return entry.ID, nil
}

func (r *FetchLogRepository) ListRecent(_ context.Context, limit int) ([]fetchlog.Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fetchlog.Entry, 0, limit)
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}

	return out, nil
}

// All returns every appended entry in insertion order.
func (r *FetchLogRepository) All() []fetchlog.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fetchlog.Entry, len(r.entries))
	copy(out, r.entries)

	return out
}
