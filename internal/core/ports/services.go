package ports

//go:generate mockgen -source=services.go -destination=mocks/mock_services.go -package=mocks

import (
	"context"
	"time"

	"bitbuddy/internal/core/domain"

	"github.com/google/uuid"
)

// --- Service Ports (Business Logic) ---

// WalletSessionService owns the wallet connection for one process.
type WalletSessionService interface {
	Connect(ctx context.Context) (domain.Session, error)
	SwitchAccount(ctx context.Context, index int) (domain.Session, error)
	Disconnect() domain.Session
	RefreshAccounts(ctx context.Context) (domain.Session, error)
	Snapshot() domain.Session
	Subscribe(fn func(domain.Session)) (cancel func())
	GetBalance(ctx context.Context) (uint64, error)
	SendPayment(ctx context.Context, to string, amountSats int64, memo string) (PaymentReceipt, error)
	Bridge(ctx context.Context, targetNetwork, targetAddress string, amountSats int64) (BridgeReceipt, error)
}

// GiftInput is a GiftRecorded event.
type GiftInput struct {
	Sender     string
	Recipient  string
	AmountSats int64
	Message    string
	TxRef      string
	At         time.Time // zero means now
}

// GiftResult reports what RecordGift changed.
type GiftResult struct {
	Gift     domain.Gift
	Created  bool // false when the event was a redelivery
	Unlocked []domain.BadgeType
}

// CreateGoalInput holds validated input for a new savings goal.
type CreateGoalInput struct {
	Owner            string
	Name             string
	TargetAmountSats int64
	Deadline         *time.Time
}

// ContributionResult reports the goal after a contribution.
type ContributionResult struct {
	Goal         domain.SavingsGoal
	CompletedNow bool
	Attempts     int
	Unlocked     []domain.BadgeType
}

// RewardsService defines activity recording and achievement logic.
type RewardsService interface {
	RecordGift(ctx context.Context, in GiftInput) (*GiftResult, error)
	Contribute(ctx context.Context, goalID uuid.UUID, amountSats int64) (*ContributionResult, error)
	UnlockBadge(ctx context.Context, owner string, badgeType domain.BadgeType) (bool, error)
	ReconcileBadges(ctx context.Context, owner string) ([]domain.BadgeType, error)
	GetStats(ctx context.Context, owner string) (*domain.UserStats, error)

	CreateGoal(ctx context.Context, in CreateGoalInput) (*domain.SavingsGoal, error)
	ListGoals(ctx context.Context, owner string) ([]domain.SavingsGoal, error)
	DeleteGoal(ctx context.Context, id uuid.UUID, owner string) error
	ListGifts(ctx context.Context, owner string) ([]domain.Gift, error)
	ListBadges(ctx context.Context, owner string) ([]domain.Badge, error)
	GetFeed(ctx context.Context, limit int) ([]domain.FeedEntry, error)
}

// FeedPublisher appends feed entries without ever failing the caller.
type FeedPublisher interface {
	Publish(ctx context.Context, entry domain.FeedEntry)
}

// SendGiftInput holds input for the send-then-record flow.
type SendGiftInput struct {
	Recipient  string
	AmountSats int64
	Message    string
}

// SendGiftResult carries the receipt even when recording failed.
type SendGiftResult struct {
	Receipt PaymentReceipt
	Gift    *GiftResult
}

// GiftFlow sends a payment from the active account and records it as a gift.
type GiftFlow interface {
	SendGift(ctx context.Context, in SendGiftInput) (*SendGiftResult, error)
}

// BridgeInput holds input for the bridge-then-reward flow.
type BridgeInput struct {
	TargetNetwork string
	TargetAddress string
	AmountSats    int64
}

// BridgeResult reports a completed bridge.
type BridgeResult struct {
	Receipt  BridgeReceipt
	Unlocked bool
}

// BridgeFlow moves funds to another network and rewards the first bridge.
type BridgeFlow interface {
	Bridge(ctx context.Context, in BridgeInput) (*BridgeResult, error)
}
