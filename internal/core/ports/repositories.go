package ports

//go:generate mockgen -source=repositories.go -destination=mocks/mock_repositories.go -package=mocks

import (
	"context"
	"errors"
	"time"

	"bitbuddy/internal/core/domain"

	"github.com/google/uuid"
)

// Store protocol sentinels. Services translate them; they never reach callers.
var (
	// ErrDuplicate is returned when a unique key (gift or badge) already exists.
	ErrDuplicate = errors.New("duplicate key")
	// ErrConflict is returned when a conditional write observed a stale version.
	ErrConflict = errors.New("version conflict")
)

// GiftSummary aggregates a sender's stored gifts.
type GiftSummary struct {
	Count     int64
	TotalSats int64
	LastAt    *time.Time
}

// GiftRepository defines persistence operations for gifts.
type GiftRepository interface {
	// Append stores a gift under its deterministic ID. Returns ErrDuplicate if it exists.
	Append(ctx context.Context, gift *domain.Gift) error
	SummarizeBySender(ctx context.Context, sender string) (GiftSummary, error)
	ListBySender(ctx context.Context, sender string) ([]domain.Gift, error)
}

// SavingsRepository defines persistence operations for savings goals.
// GetByID returns nil, nil when the goal does not exist.
type SavingsRepository interface {
	Create(ctx context.Context, goal *domain.SavingsGoal) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SavingsGoal, error)
	ListByOwner(ctx context.Context, owner string) ([]domain.SavingsGoal, error)
	// CompareAndSwap replaces the goal only if its stored version equals expectedVersion.
	// Returns ErrConflict otherwise.
	CompareAndSwap(ctx context.Context, next *domain.SavingsGoal, expectedVersion int64) error
	// Delete removes the goal only if its stored version equals expectedVersion.
	Delete(ctx context.Context, id uuid.UUID, expectedVersion int64) error
}

// BadgeRepository defines persistence operations for badges.
type BadgeRepository interface {
	// Insert stores a badge keyed by owner|type. Returns ErrDuplicate if it exists.
	Insert(ctx context.Context, badge *domain.Badge) error
	Exists(ctx context.Context, owner string, badgeType domain.BadgeType) (bool, error)
	ListByOwner(ctx context.Context, owner string) ([]domain.Badge, error)
}

// FeedRepository defines persistence for the social feed.
type FeedRepository interface {
	// Append stores the entry and assigns its Seq.
	Append(ctx context.Context, entry *domain.FeedEntry) error
	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]domain.FeedEntry, error)
}

// ActivityStore bundles the collections backing the rewards engine.
type ActivityStore struct {
	Gifts   GiftRepository
	Savings SavingsRepository
	Badges  BadgeRepository
	Feed    FeedRepository
}

// ProcessedEventCache is the fast-path check for redelivered events.
// The store key remains authoritative.
type ProcessedEventCache interface {
	Seen(ctx context.Context, key string) (bool, error)
	MarkProcessed(ctx context.Context, key string, ttl time.Duration) error
}

// RateLimitResult holds the outcome of a rate limit check.
type RateLimitResult struct {
	Allowed   bool
	Limit     int64
	Remaining int64
	ResetAt   int64 // Unix timestamp when the window resets
}

// RateLimiter checks fixed-window request budgets.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int64, window time.Duration) (*RateLimitResult, error)
}
