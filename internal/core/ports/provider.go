package ports

//go:generate mockgen -source=provider.go -destination=mocks/mock_provider.go -package=mocks

import (
	"context"
	"errors"

	"bitbuddy/internal/core/domain"
)

// ErrSubscriptionUnsupported is returned by backends that cannot push account changes.
// Callers must re-poll with GetAccounts.
var ErrSubscriptionUnsupported = errors.New("account change subscription unsupported")

// ConnectConfig is the request shown to the user when a provider opens its approval popup.
type ConnectConfig struct {
	AppName string
	Message string
	Network domain.Network
}

// PaymentRequest holds validated input for a provider payment.
type PaymentRequest struct {
	From       domain.Account
	To         string
	AmountSats int64
	Memo       string
}

// PaymentReceipt is returned once the provider has broadcast a payment.
// From is filled in by the session with the account that paid.
type PaymentReceipt struct {
	TxRef string `json:"tx_ref"`
	From  string `json:"from,omitempty"`
}

// BridgeRequest holds input for a cross-network transfer.
type BridgeRequest struct {
	From          domain.Account
	TargetNetwork string
	TargetAddress string
	AmountSats    int64
}

// BridgeReceipt is returned once a cross-network transfer completes.
type BridgeReceipt struct {
	TxRef string `json:"tx_ref"`
	From  string `json:"from,omitempty"`
}

// ProviderAdapter wraps exactly one wallet backend.
// Every error it returns is an *apperror.AppError from the WAL/PAY taxonomy.
type ProviderAdapter interface {
	// Name returns the backend identifier (e.g., "xverse", "legacy").
	Name() string
	Connect(ctx context.Context, cfg ConnectConfig) ([]domain.Account, error)
	GetAccounts(ctx context.Context) ([]domain.Account, error)
	GetBalance(ctx context.Context, account domain.Account) (uint64, error)
	SendPayment(ctx context.Context, req PaymentRequest) (PaymentReceipt, error)
	// SubscribeAccountChange registers fn for account list changes.
	// Returns ErrSubscriptionUnsupported when the backend has no notification channel.
	SubscribeAccountChange(ctx context.Context, fn func([]domain.Account)) (unsubscribe func(), err error)
}

// AccountSwitchNotifier is implemented by backends that want to hear about account switches.
type AccountSwitchNotifier interface {
	NotifyAccountSwitch(ctx context.Context, account domain.Account) error
}

// NetworkBridge is implemented by backends able to move funds to another network.
type NetworkBridge interface {
	Bridge(ctx context.Context, req BridgeRequest) (BridgeReceipt, error)
}
