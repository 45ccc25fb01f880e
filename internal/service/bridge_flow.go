package service

import (
	"context"
	"fmt"
	"strings"

	"bitbuddy/internal/core/domain"
	"bitbuddy/internal/core/ports"
	"bitbuddy/pkg/apperror"

	"github.com/rs/zerolog"
)

// BridgeTargetStarknet is the only supported bridge destination.
const BridgeTargetStarknet = "starknet"

// BridgeFlowImpl implements ports.BridgeFlow.
type BridgeFlowImpl struct {
	session ports.WalletSessionService
	rewards ports.RewardsService
	pub     ports.FeedPublisher
	log     zerolog.Logger
}

var _ ports.BridgeFlow = (*BridgeFlowImpl)(nil)

// NewBridgeFlow creates a new BridgeFlowImpl.
func NewBridgeFlow(session ports.WalletSessionService, rewards ports.RewardsService, pub ports.FeedPublisher, log zerolog.Logger) *BridgeFlowImpl {
	return &BridgeFlowImpl{session: session, rewards: rewards, pub: pub, log: log}
}

// Bridge moves funds to Starknet and unlocks bridge_explorer on the first success.
func (f *BridgeFlowImpl) Bridge(ctx context.Context, in ports.BridgeInput) (*ports.BridgeResult, error) {
	network := strings.ToLower(strings.TrimSpace(in.TargetNetwork))
	if network != BridgeTargetStarknet {
		return nil, apperror.Validation(fmt.Sprintf("Unsupported bridge target %q", in.TargetNetwork))
	}
	if strings.TrimSpace(in.TargetAddress) == "" {
		return nil, apperror.Validation("Target address is required")
	}
	if in.AmountSats <= 0 {
		return nil, apperror.ErrInvalidAmount()
	}

	receipt, err := f.session.Bridge(ctx, network, in.TargetAddress, in.AmountSats)
	if err != nil {
		return nil, err
	}

	detached := context.WithoutCancel(ctx)
	f.pub.Publish(detached, domain.FeedEntry{
		User:    receipt.From,
		Action:  domain.FeedBridgeCompleted,
		Message: fmt.Sprintf("Bridged %d sats to Starknet", in.AmountSats),
		Emoji:   "🌉",
	})

	result := &ports.BridgeResult{Receipt: receipt}
	unlocked, err := f.rewards.UnlockBadge(detached, receipt.From, domain.BadgeBridgeExplorer)
	if err != nil {
		f.log.Error().Err(err).Str("owner", receipt.From).Msg("bridge_explorer unlock failed")
		return result, nil
	}
	result.Unlocked = unlocked
	return result, nil
}
