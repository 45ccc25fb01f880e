package memory

import (
	"context"
	"sort"
	"sync"

	"bitbuddy/internal/core/domain"
	"bitbuddy/internal/core/ports"

	"github.com/google/uuid"
)

// SavingsRepo stores savings goals with version-conditional writes.
type SavingsRepo struct {
	mu    sync.RWMutex
	goals map[uuid.UUID]domain.SavingsGoal
}

func NewSavingsRepo() *SavingsRepo {
	return &SavingsRepo{goals: make(map[uuid.UUID]domain.SavingsGoal)}
}

func (r *SavingsRepo) Create(_ context.Context, goal *domain.SavingsGoal) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.goals[goal.ID]; ok {
		return ports.ErrDuplicate
	}
	r.goals[goal.ID] = *goal
	return nil
}

func (r *SavingsRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.SavingsGoal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	g, ok := r.goals[id]
	if !ok {
		return nil, nil
	}
	return &g, nil
}

func (r *SavingsRepo) ListByOwner(_ context.Context, owner string) ([]domain.SavingsGoal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []domain.SavingsGoal
	for _, g := range r.goals {
		if g.Owner == owner {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *SavingsRepo) CompareAndSwap(_ context.Context, next *domain.SavingsGoal, expectedVersion int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.goals[next.ID]
	if !ok || cur.Version != expectedVersion {
		return ports.ErrConflict
	}
	r.goals[next.ID] = *next
	return nil
}

func (r *SavingsRepo) Delete(_ context.Context, id uuid.UUID, expectedVersion int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cur, ok := r.goals[id]
	if !ok || cur.Version != expectedVersion {
		return ports.ErrConflict
	}
	delete(r.goals, id)
	return nil
}
