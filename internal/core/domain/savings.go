package domain

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// MaxGoalNameLength bounds savings goal names.
const MaxGoalNameLength = 50

// MaxSats is the total bitcoin supply in satoshis. No single amount exceeds it.
const MaxSats int64 = 2_100_000_000_000_000

// SaturatingAddSats adds two non-negative amounts, capping at math.MaxInt64.
func SaturatingAddSats(a, b int64) int64 {
	if b > math.MaxInt64-a {
		return math.MaxInt64
	}
	return a + b
}

// GoalStatus represents the lifecycle state of a savings goal.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
)

// SavingsGoal is a target the owner funds through contributions.
// CurrentAmountSats never decreases and a completed goal never reverts.
type SavingsGoal struct {
	ID                uuid.UUID  `json:"id"`
	Owner             string     `json:"owner"`
	Name              string     `json:"name"`
	TargetAmountSats  int64      `json:"target_amount_sats"`
	CurrentAmountSats int64      `json:"current_amount_sats"`
	Deadline          *time.Time `json:"deadline,omitempty"`
	Status            GoalStatus `json:"status"`
	Version           int64      `json:"-"` // Optimistic concurrency token
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
}

// IsCompleted returns true once the goal has been fully funded.
func (g *SavingsGoal) IsCompleted() bool {
	return g.Status == GoalStatusCompleted
}

// ProgressPercent returns funding progress capped at 100.
func (g *SavingsGoal) ProgressPercent() float64 {
	if g.TargetAmountSats <= 0 {
		return 0
	}
	p := float64(g.CurrentAmountSats) / float64(g.TargetAmountSats) * 100
	if p > 100 {
		return 100
	}
	return p
}

// Accepts reports whether amount is a valid contribution that keeps
// CurrentAmountSats representable.
func (g *SavingsGoal) Accepts(amount int64) bool {
	return amount > 0 && amount <= MaxSats && g.CurrentAmountSats <= math.MaxInt64-amount
}

// WithContribution returns the goal as it looks after adding amount.
// completedNow is true only for the contribution that crosses the target
// while the goal is still active. The returned goal carries Version+1.
func (g SavingsGoal) WithContribution(amount int64, now time.Time) (next SavingsGoal, completedNow bool) {
	next = g
	next.CurrentAmountSats = g.CurrentAmountSats + amount
	next.UpdatedAt = now
	next.Version = g.Version + 1
	if g.Status == GoalStatusActive && next.CurrentAmountSats >= g.TargetAmountSats {
		next.Status = GoalStatusCompleted
		completedAt := now
		next.CompletedAt = &completedAt
		completedNow = true
	}
	return next, completedNow
}
