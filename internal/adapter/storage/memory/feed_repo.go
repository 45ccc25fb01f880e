package memory

import (
	"context"
	"sync"

	"bitbuddy/internal/core/domain"
)

// FeedRepo is an append-only feed log.
type FeedRepo struct {
	mu      sync.RWMutex
	entries []domain.FeedEntry
	seq     int64
}

func NewFeedRepo() *FeedRepo {
	return &FeedRepo{}
}

func (r *FeedRepo) Append(_ context.Context, entry *domain.FeedEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	entry.Seq = r.seq
	r.entries = append(r.entries, *entry)
	return nil
}

func (r *FeedRepo) Recent(_ context.Context, limit int) ([]domain.FeedEntry, error) {
	r.mu.RLock()
	out := make([]domain.FeedEntry, len(r.entries))
	copy(out, r.entries)
	r.mu.RUnlock()

	domain.SortFeedNewestFirst(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
