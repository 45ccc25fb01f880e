package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"
	"unicode/utf8"

	"bitbuddy/internal/core/domain"
	"bitbuddy/internal/core/ports"
	"bitbuddy/internal/metrics"
	"bitbuddy/pkg/apperror"

	"github.com/rs/zerolog"
)

// WalletSessionConfig holds the connection request parameters.
type WalletSessionConfig struct {
	AppName              string
	ConnectMessage       string
	Network              domain.Network
	AdvisoryBalanceCheck bool
	// AttemptTimeout bounds a detached connect attempt. Zero means no bound.
	AttemptTimeout time.Duration
}

// WalletSession implements ports.WalletSessionService.
// The mutex guards state transitions only; provider calls run without it.
type WalletSession struct {
	adapters []ports.ProviderAdapter
	cfg      WalletSessionConfig
	log      zerolog.Logger

	mu          sync.Mutex
	sess        domain.Session
	adapter     ports.ProviderAdapter
	generation  uint64
	unsubscribe func()
	listeners   map[uint64]func(domain.Session)
	nextID      uint64
	pending     []domain.Session

	notifyMu sync.Mutex
}

var _ ports.WalletSessionService = (*WalletSession)(nil)

// NewWalletSession creates a disconnected session. adapters are tried in order.
func NewWalletSession(adapters []ports.ProviderAdapter, cfg WalletSessionConfig, log zerolog.Logger) *WalletSession {
	return &WalletSession{
		adapters:  adapters,
		cfg:       cfg,
		log:       log,
		sess:      domain.Session{State: domain.SessionDisconnected},
		listeners: make(map[uint64]func(domain.Session)),
	}
}

type connectOutcome struct {
	adapter     ports.ProviderAdapter
	accounts    []domain.Account
	unsubscribe func()
	watches     bool
	err         error
}

// Connect tries each adapter in priority order. The attempt is detached from
// ctx: a caller that gives up gets ctx.Err() while the attempt still resolves.
func (s *WalletSession) Connect(ctx context.Context) (domain.Session, error) {
	s.mu.Lock()
	switch s.sess.State {
	case domain.SessionConnecting:
		snap := s.sess.Clone()
		s.mu.Unlock()
		return snap, apperror.ErrAlreadyConnecting()
	case domain.SessionConnected, domain.SessionSwitching:
		snap := s.sess.Clone()
		s.mu.Unlock()
		return snap, apperror.ErrAlreadyConnected()
	}
	s.generation++
	gen := s.generation
	s.sess = domain.Session{State: domain.SessionConnecting, Connecting: true}
	s.publishLocked()
	s.mu.Unlock()
	s.flush()

	done := make(chan struct {
		snap domain.Session
		err  error
	}, 1)

	go func() {
		attemptCtx := context.WithoutCancel(ctx)
		var cancel context.CancelFunc = func() {}
		if s.cfg.AttemptTimeout > 0 {
			attemptCtx, cancel = context.WithTimeout(attemptCtx, s.cfg.AttemptTimeout)
		}
		defer cancel()

		out := s.attempt(attemptCtx, gen)
		snap, err := s.applyConnect(gen, out)
		done <- struct {
			snap domain.Session
			err  error
		}{snap, err}
	}()

	select {
	case r := <-done:
		return r.snap, r.err
	case <-ctx.Done():
		s.log.Info().Msg("connect caller gave up, attempt continues in background")
		return s.Snapshot(), ctx.Err()
	}
}

func (s *WalletSession) attempt(ctx context.Context, gen uint64) connectOutcome {
	req := ports.ConnectConfig{
		AppName: s.cfg.AppName,
		Message: s.cfg.ConnectMessage,
		Network: s.cfg.Network,
	}

	for _, a := range s.adapters {
		accounts, err := a.Connect(ctx, req)
		if err != nil {
			if apperror.CodeOf(err) == apperror.CodeProviderUnavailable {
				s.log.Debug().Str("provider", a.Name()).Msg("provider not installed, trying next")
				continue
			}
			return connectOutcome{adapter: a, err: err}
		}
		if len(accounts) == 0 {
			return connectOutcome{adapter: a, err: apperror.ErrProviderUnknown(errors.New("provider returned no accounts"))}
		}

		unsub, err := a.SubscribeAccountChange(ctx, s.accountsChanged(gen))
		watches := err == nil
		switch {
		case errors.Is(err, ports.ErrSubscriptionUnsupported):
			s.log.Info().Str("provider", a.Name()).Msg("provider cannot push account changes, callers must refresh")
		case err != nil:
			s.log.Warn().Err(err).Str("provider", a.Name()).Msg("account change subscription failed")
		}
		return connectOutcome{adapter: a, accounts: accounts, unsubscribe: unsub, watches: watches}
	}

	return connectOutcome{err: apperror.ErrProviderUnavailable()}
}

func (s *WalletSession) applyConnect(gen uint64, out connectOutcome) (domain.Session, error) {
	s.mu.Lock()
	if gen != s.generation {
		snap := s.sess.Clone()
		s.mu.Unlock()
		if out.unsubscribe != nil {
			out.unsubscribe()
		}
		s.log.Info().Err(out.err).Msg("discarding connect result after disconnect")
		return snap, apperror.ErrNotConnected()
	}

	if out.err != nil {
		s.sess = domain.Session{State: domain.SessionDisconnected, LastError: errorCode(out.err)}
		s.publishLocked()
		snap := s.sess.Clone()
		s.mu.Unlock()
		s.flush()

		ev := s.log.Warn().Err(out.err)
		if out.adapter != nil {
			ev = ev.Str("provider", out.adapter.Name())
		}
		ev.Msg("wallet connect failed")
		return snap, out.err
	}

	active := out.accounts[0]
	s.adapter = out.adapter
	s.unsubscribe = out.unsubscribe
	s.sess = domain.Session{
		State:           domain.SessionConnected,
		Connected:       true,
		ActiveAccount:   &active,
		Accounts:        out.accounts,
		Provider:        out.adapter.Name(),
		WatchesAccounts: out.watches,
	}
	s.publishLocked()
	snap := s.sess.Clone()
	s.mu.Unlock()
	s.flush()

	s.log.Info().
		Str("provider", snap.Provider).
		Str("address", active.Address).
		Int("accounts", len(snap.Accounts)).
		Msg("wallet connected")
	return snap, nil
}

// accountsChanged returns the subscription callback bound to one connect generation.
func (s *WalletSession) accountsChanged(gen uint64) func([]domain.Account) {
	return func(accounts []domain.Account) {
		if len(accounts) == 0 {
			return
		}
		s.mu.Lock()
		if gen != s.generation || !s.sess.Connected {
			s.mu.Unlock()
			return
		}
		s.setAccountsLocked(accounts)
		s.publishLocked()
		s.mu.Unlock()
		s.flush()
		s.log.Info().Int("accounts", len(accounts)).Msg("provider accounts changed")
	}
}

// SwitchAccount makes accounts[index] active and notifies the provider best-effort.
func (s *WalletSession) SwitchAccount(ctx context.Context, index int) (domain.Session, error) {
	s.mu.Lock()
	if s.sess.IsBusy() {
		snap := s.sess.Clone()
		s.mu.Unlock()
		return snap, apperror.ErrSessionBusy()
	}
	if !s.sess.Connected {
		snap := s.sess.Clone()
		s.mu.Unlock()
		return snap, apperror.ErrNotConnected()
	}
	if index < 0 || index >= len(s.sess.Accounts) {
		snap := s.sess.Clone()
		s.mu.Unlock()
		return snap, apperror.ErrIndexOutOfRange(index, len(snap.Accounts))
	}

	target := s.sess.Accounts[index]
	adapter := s.adapter
	gen := s.generation
	s.sess.ActiveAccount = &target
	s.sess.State = domain.SessionSwitching
	s.publishLocked()
	s.mu.Unlock()
	s.flush()

	if n, ok := adapter.(ports.AccountSwitchNotifier); ok {
		if err := n.NotifyAccountSwitch(ctx, target); err != nil {
			s.log.Warn().Err(err).Str("provider", adapter.Name()).Msg("account switch notification failed")
		}
	}

	s.mu.Lock()
	if gen != s.generation {
		snap := s.sess.Clone()
		s.mu.Unlock()
		return snap, apperror.ErrNotConnected()
	}
	s.sess.State = domain.SessionConnected
	s.publishLocked()
	snap := s.sess.Clone()
	s.mu.Unlock()
	s.flush()

	s.log.Info().Str("address", target.Address).Int("index", index).Msg("active account switched")
	return snap, nil
}

// Disconnect resets the session from any state without contacting the provider.
func (s *WalletSession) Disconnect() domain.Session {
	s.mu.Lock()
	s.generation++
	unsub := s.unsubscribe
	wasConnected := s.sess.State != domain.SessionDisconnected
	s.unsubscribe = nil
	s.adapter = nil
	s.sess = domain.Session{State: domain.SessionDisconnected}
	s.publishLocked()
	snap := s.sess.Clone()
	s.mu.Unlock()

	if unsub != nil {
		unsub()
	}
	s.flush()

	if wasConnected {
		s.log.Info().Msg("wallet disconnected")
	}
	return snap
}

// RefreshAccounts re-polls the active provider. The active account is kept when
// it is still listed, otherwise the first account becomes active.
func (s *WalletSession) RefreshAccounts(ctx context.Context) (domain.Session, error) {
	s.mu.Lock()
	if s.sess.IsBusy() {
		snap := s.sess.Clone()
		s.mu.Unlock()
		return snap, apperror.ErrSessionBusy()
	}
	if !s.sess.Connected {
		snap := s.sess.Clone()
		s.mu.Unlock()
		return snap, apperror.ErrNotConnected()
	}
	adapter := s.adapter
	gen := s.generation
	s.mu.Unlock()

	accounts, err := adapter.GetAccounts(ctx)
	if err == nil && len(accounts) == 0 {
		err = apperror.ErrProviderUnknown(errors.New("provider returned no accounts"))
	}
	if err != nil {
		return s.Snapshot(), err
	}

	s.mu.Lock()
	if gen != s.generation {
		snap := s.sess.Clone()
		s.mu.Unlock()
		return snap, apperror.ErrNotConnected()
	}
	s.setAccountsLocked(accounts)
	s.publishLocked()
	snap := s.sess.Clone()
	s.mu.Unlock()
	s.flush()
	return snap, nil
}

func (s *WalletSession) setAccountsLocked(accounts []domain.Account) {
	s.sess.Accounts = accounts
	idx := 0
	if s.sess.ActiveAccount != nil {
		if i := domain.IndexOfAccount(accounts, s.sess.ActiveAccount.Address); i >= 0 {
			idx = i
		}
	}
	active := accounts[idx]
	s.sess.ActiveAccount = &active
}

// Snapshot returns a copy of the current session.
func (s *WalletSession) Snapshot() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess.Clone()
}

// Subscribe registers fn for state-change notifications, delivered in transition order.
func (s *WalletSession) Subscribe(fn func(domain.Session)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// connected returns the adapter and active account, or NotConnected.
func (s *WalletSession) connected() (ports.ProviderAdapter, domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.sess.Connected || s.adapter == nil || s.sess.ActiveAccount == nil {
		return nil, domain.Account{}, apperror.ErrNotConnected()
	}
	return s.adapter, *s.sess.ActiveAccount, nil
}

// GetBalance returns the active account's balance in satoshis.
func (s *WalletSession) GetBalance(ctx context.Context) (uint64, error) {
	adapter, active, err := s.connected()
	if err != nil {
		return 0, err
	}
	return adapter.GetBalance(ctx, active)
}

// SendPayment sends amountSats from the active account. The balance check is
// advisory; when the balance cannot be read the provider decides.
func (s *WalletSession) SendPayment(ctx context.Context, to string, amountSats int64, memo string) (ports.PaymentReceipt, error) {
	adapter, active, err := s.connected()
	if err != nil {
		return ports.PaymentReceipt{}, err
	}
	if amountSats <= 0 {
		return ports.PaymentReceipt{}, apperror.ErrInvalidAmount()
	}
	if to == "" {
		return ports.PaymentReceipt{}, apperror.Validation("Recipient address is required")
	}
	if utf8.RuneCountInString(memo) > domain.MaxMessageLength {
		return ports.PaymentReceipt{}, apperror.Validation(fmt.Sprintf("Memo exceeds %d characters", domain.MaxMessageLength))
	}

	if s.cfg.AdvisoryBalanceCheck {
		balance, err := adapter.GetBalance(ctx, active)
		switch {
		case err != nil:
			s.log.Warn().Err(err).Str("provider", adapter.Name()).Msg("balance check failed, deferring to provider")
		case uint64(amountSats) > balance:
			return ports.PaymentReceipt{}, apperror.ErrInsufficientFunds()
		}
	}

	receipt, err := adapter.SendPayment(ctx, ports.PaymentRequest{
		From:       active,
		To:         to,
		AmountSats: amountSats,
		Memo:       memo,
	})
	if err != nil {
		return ports.PaymentReceipt{}, err
	}
	receipt.From = active.Address

	s.log.Info().
		Str("provider", adapter.Name()).
		Str("from", active.Address).
		Int64("amount_sats", amountSats).
		Str("tx_ref", receipt.TxRef).
		Msg("payment sent")
	return receipt, nil
}

// Bridge moves funds to another network when the provider supports it.
func (s *WalletSession) Bridge(ctx context.Context, targetNetwork, targetAddress string, amountSats int64) (ports.BridgeReceipt, error) {
	adapter, active, err := s.connected()
	if err != nil {
		return ports.BridgeReceipt{}, err
	}
	if amountSats <= 0 {
		return ports.BridgeReceipt{}, apperror.ErrInvalidAmount()
	}
	b, ok := adapter.(ports.NetworkBridge)
	if !ok {
		return ports.BridgeReceipt{}, apperror.ErrBridgeUnavailable()
	}
	receipt, err := b.Bridge(ctx, ports.BridgeRequest{
		From:          active,
		TargetNetwork: targetNetwork,
		TargetAddress: targetAddress,
		AmountSats:    amountSats,
	})
	if err != nil {
		return ports.BridgeReceipt{}, err
	}
	receipt.From = active.Address
	return receipt, nil
}

// publishLocked queues the current state for listeners. Caller holds s.mu.
func (s *WalletSession) publishLocked() {
	metrics.SessionTransitions.WithLabelValues(string(s.sess.State)).Inc()
	if len(s.listeners) == 0 {
		return
	}
	s.pending = append(s.pending, s.sess.Clone())
}

// flush delivers queued snapshots in order. A listener that triggers another
// transition leaves it queued for the active flusher.
func (s *WalletSession) flush() {
	for {
		if !s.notifyMu.TryLock() {
			return
		}
		for {
			s.mu.Lock()
			if len(s.pending) == 0 {
				s.mu.Unlock()
				break
			}
			snap := s.pending[0]
			s.pending = s.pending[1:]
			fns := make([]func(domain.Session), 0, len(s.listeners))
			for _, fn := range s.listeners {
				fns = append(fns, fn)
			}
			s.mu.Unlock()

			for _, fn := range fns {
				fn(snap.Clone())
			}
		}
		s.notifyMu.Unlock()

		s.mu.Lock()
		empty := len(s.pending) == 0
		s.mu.Unlock()
		if empty {
			return
		}
	}
}

func errorCode(err error) string {
	if code := apperror.CodeOf(err); code != "" {
		return code
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return apperror.CodeTimeout
	}
	return apperror.CodeInternal
}
