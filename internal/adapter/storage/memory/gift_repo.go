package memory

import (
	"context"
	"sort"
	"sync"

	"bitbuddy/internal/core/domain"
	"bitbuddy/internal/core/ports"
)

// GiftRepo stores gifts keyed by their deterministic ID.
type GiftRepo struct {
	mu    sync.RWMutex
	gifts map[string]domain.Gift
}

func NewGiftRepo() *GiftRepo {
	return &GiftRepo{gifts: make(map[string]domain.Gift)}
}

func (r *GiftRepo) Append(_ context.Context, gift *domain.Gift) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.gifts[gift.ID]; ok {
		return ports.ErrDuplicate
	}
	r.gifts[gift.ID] = *gift
	return nil
}

func (r *GiftRepo) SummarizeBySender(_ context.Context, sender string) (ports.GiftSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var s ports.GiftSummary
	for _, g := range r.gifts {
		if g.Sender != sender {
			continue
		}
		s.Count++
		s.TotalSats += g.AmountSats
		if s.LastAt == nil || g.CreatedAt.After(*s.LastAt) {
			at := g.CreatedAt
			s.LastAt = &at
		}
	}
	return s, nil
}

func (r *GiftRepo) ListBySender(_ context.Context, sender string) ([]domain.Gift, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Gift
	for _, g := range r.gifts {
		if g.Sender == sender {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}
