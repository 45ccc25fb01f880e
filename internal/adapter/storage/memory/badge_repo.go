package memory

import (
	"context"
	"sort"
	"sync"

	"bitbuddy/internal/core/domain"
	"bitbuddy/internal/core/ports"
)

// BadgeRepo stores badges keyed by owner|type.
type BadgeRepo struct {
	mu     sync.RWMutex
	badges map[string]domain.Badge
}

func NewBadgeRepo() *BadgeRepo {
	return &BadgeRepo{badges: make(map[string]domain.Badge)}
}

func (r *BadgeRepo) Insert(_ context.Context, badge *domain.Badge) error {
	key := domain.BuildBadgeKey(badge.Owner, badge.Type)
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.badges[key]; ok {
		return ports.ErrDuplicate
	}
	r.badges[key] = *badge
	return nil
}

func (r *BadgeRepo) Exists(_ context.Context, owner string, badgeType domain.BadgeType) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.badges[domain.BuildBadgeKey(owner, badgeType)]
	return ok, nil
}

func (r *BadgeRepo) ListByOwner(_ context.Context, owner string) ([]domain.Badge, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.Badge
	for _, b := range r.badges {
		if b.Owner == owner {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].UnlockedAt.Equal(out[j].UnlockedAt) {
			return out[i].UnlockedAt.After(out[j].UnlockedAt)
		}
		return out[i].Type < out[j].Type
	})
	return out, nil
}
