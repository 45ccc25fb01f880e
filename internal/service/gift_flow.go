package service

import (
	"context"
	"fmt"

	"bitbuddy/internal/core/ports"
	"bitbuddy/pkg/apperror"

	"github.com/rs/zerolog"
)

// GiftFlowImpl implements ports.GiftFlow.
type GiftFlowImpl struct {
	session ports.WalletSessionService
	rewards ports.RewardsService
	log     zerolog.Logger
}

var _ ports.GiftFlow = (*GiftFlowImpl)(nil)

// NewGiftFlow creates a new GiftFlowImpl.
func NewGiftFlow(session ports.WalletSessionService, rewards ports.RewardsService, log zerolog.Logger) *GiftFlowImpl {
	return &GiftFlowImpl{session: session, rewards: rewards, log: log}
}

// SendGift pays from the active account, then records the gift. When recording
// fails the receipt is still returned with a StoreUnavailable error; retrying
// RecordGift with the same tx reference is safe.
func (f *GiftFlowImpl) SendGift(ctx context.Context, in ports.SendGiftInput) (*ports.SendGiftResult, error) {
	receipt, err := f.session.SendPayment(ctx, in.Recipient, in.AmountSats, in.Message)
	if err != nil {
		return nil, err
	}

	// The payment is out; record it even if the caller has gone away.
	gift, err := f.rewards.RecordGift(context.WithoutCancel(ctx), ports.GiftInput{
		Sender:     receipt.From,
		Recipient:  in.Recipient,
		AmountSats: in.AmountSats,
		Message:    in.Message,
		TxRef:      receipt.TxRef,
	})
	if err != nil {
		f.log.Error().Err(err).
			Str("owner", receipt.From).
			Str("tx_ref", receipt.TxRef).
			Msg("payment sent but gift not recorded")
		if apperror.CodeOf(err) != apperror.CodeStoreUnavailable {
			err = apperror.ErrStoreUnavailable(fmt.Errorf("record gift: %w", err))
		}
		return &ports.SendGiftResult{Receipt: receipt}, err
	}

	return &ports.SendGiftResult{Receipt: receipt, Gift: gift}, nil
}
