// Package legacy adapts the injected-provider wallet API (flat address list,
// post-connect network check) exposed by the wallet-extension bridge.
package legacy

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"bitbuddy/internal/adapter/provider/bridge"
	"bitbuddy/internal/core/domain"
	"bitbuddy/internal/core/ports"
	"bitbuddy/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

// Name is the backend identifier.
const Name = "legacy"

// codeUserRejected is the EIP-1193 style rejection code injected providers use.
const codeUserRejected = 4001

// DefaultPollInterval is used when the configured interval is not positive.
const DefaultPollInterval = 5 * time.Second

// Adapter is the fallback wallet backend.
type Adapter struct {
	rpc          bridge.Caller
	pollInterval time.Duration
	log          zerolog.Logger
}

var (
	_ ports.ProviderAdapter       = (*Adapter)(nil)
	_ ports.AccountSwitchNotifier = (*Adapter)(nil)
)

// New creates a legacy adapter. pollInterval drives account change detection.
func New(rpc bridge.Caller, pollInterval time.Duration, log zerolog.Logger) *Adapter {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &Adapter{
		rpc:          rpc,
		pollInterval: pollInterval,
		log:          log.With().Str("provider", Name).Logger(),
	}
}

func (a *Adapter) Name() string { return Name }

// Connect opens the approval popup, then verifies the network. The network can
// only be read once the site is authorized.
func (a *Adapter) Connect(ctx context.Context, cfg ports.ConnectConfig) ([]domain.Account, error) {
	res, err := a.rpc.Call(ctx, "requestAccounts", nil)
	if err != nil {
		return nil, normalize(err, apperror.ErrUserRejected)
	}
	accounts, err := parseAddresses(res)
	if err != nil {
		return nil, apperror.ErrProviderUnknown(err)
	}

	if cfg.Network != "" {
		netRes, err := a.rpc.Call(ctx, "getNetwork", nil)
		if err != nil {
			return nil, normalize(err, apperror.ErrUserRejected)
		}
		if got := parseNetwork(netRes.String()); got != cfg.Network {
			return nil, apperror.ErrNetworkMismatch(string(cfg.Network), string(got))
		}
	}

	// The public key belongs to the currently selected address only.
	pkRes, err := a.rpc.Call(ctx, "getPublicKey", nil)
	if err != nil {
		a.log.Debug().Err(err).Msg("public key unavailable")
	} else if pk, decErr := hex.DecodeString(pkRes.String()); decErr == nil && len(pk) > 0 {
		accounts[0].PublicKey = pk
	}

	return accounts, nil
}

func (a *Adapter) GetAccounts(ctx context.Context) ([]domain.Account, error) {
	res, err := a.rpc.Call(ctx, "getAccounts", nil)
	if err != nil {
		return nil, normalize(err, apperror.ErrUserRejected)
	}
	accounts, err := parseAddresses(res)
	if err != nil {
		return nil, apperror.ErrProviderUnknown(err)
	}
	return accounts, nil
}

// GetBalance reads the balance of account as a bare satoshi integer. An empty
// address asks for the provider's selected address.
func (a *Adapter) GetBalance(ctx context.Context, account domain.Account) (uint64, error) {
	var params any
	if account.Address != "" {
		params = []any{account.Address}
	}
	res, err := a.rpc.Call(ctx, "getBalance", params)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, ctxErr
		}
		return 0, apperror.ErrBalanceUnavailable(err)
	}
	if res.Type != gjson.Number || res.Num < 0 {
		return 0, apperror.ErrBalanceUnavailable(fmt.Errorf("unexpected balance payload: %s", res.Raw))
	}
	return res.Uint(), nil
}

func (a *Adapter) SendPayment(ctx context.Context, req ports.PaymentRequest) (ports.PaymentReceipt, error) {
	opts := map[string]any{}
	if req.From.Address != "" {
		opts["from"] = req.From.Address
	}
	if req.Memo != "" {
		opts["memo"] = req.Memo
	}
	res, err := a.rpc.Call(ctx, "sendBitcoin", []any{req.To, req.AmountSats, opts})
	if err != nil {
		return ports.PaymentReceipt{}, normalize(err, apperror.ErrPaymentRejected)
	}
	if res.Type != gjson.String || res.String() == "" {
		return ports.PaymentReceipt{}, apperror.ErrProviderUnknown(fmt.Errorf("sendBitcoin returned no txid: %s", res.Raw))
	}
	return ports.PaymentReceipt{TxRef: res.String()}, nil
}

// NotifyAccountSwitch selects account in the wallet so later popups default to it.
func (a *Adapter) NotifyAccountSwitch(ctx context.Context, account domain.Account) error {
	_, err := a.rpc.Call(ctx, "switchAccount", []any{account.Address})
	return err
}

// SubscribeAccountChange polls the provider and calls fn whenever the address list changes.
// The subscription outlives ctx cancellation and ends only when unsubscribe is called.
func (a *Adapter) SubscribeAccountChange(ctx context.Context, fn func([]domain.Account)) (func(), error) {
	initial, err := a.GetAccounts(ctx)
	if err != nil {
		return nil, err
	}

	pollCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		a.poll(pollCtx, addresses(initial), fn)
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			cancel()
			wg.Wait()
		})
	}, nil
}

func (a *Adapter) poll(ctx context.Context, last []string, fn func([]domain.Account)) {
	ticker := time.NewTicker(a.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			accounts, err := a.GetAccounts(ctx)
			if err != nil {
				if ctx.Err() == nil {
					a.log.Debug().Err(err).Msg("account poll failed")
				}
				continue
			}
			current := addresses(accounts)
			if slices.Equal(current, last) {
				continue
			}
			last = current
			fn(accounts)
		}
	}
}

func addresses(accounts []domain.Account) []string {
	out := make([]string, len(accounts))
	for i, acc := range accounts {
		out[i] = acc.Address
	}
	return out
}

func parseAddresses(res gjson.Result) ([]domain.Account, error) {
	if !res.IsArray() {
		return nil, fmt.Errorf("unexpected accounts payload: %s", res.Raw)
	}
	var accounts []domain.Account
	for _, item := range res.Array() {
		addr := item.String()
		if addr == "" {
			continue
		}
		accounts = append(accounts, domain.Account{
			Address:     addr,
			Label:       fmt.Sprintf("Account %d", len(accounts)+1),
			AddressType: domain.AddressTypePayment,
		})
	}
	if len(accounts) == 0 {
		return nil, errors.New("no addresses found in wallet response")
	}
	return accounts, nil
}

// parseNetwork maps injected-provider network names; "livenet" is mainnet.
func parseNetwork(name string) domain.Network {
	switch strings.ToLower(name) {
	case "livenet", "mainnet", "bitcoin":
		return domain.NetworkMainnet
	default:
		return domain.Network(strings.ToLower(name))
	}
}

func normalize(err error, rejected func() *apperror.AppError) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	if errors.Is(err, bridge.ErrUnreachable) {
		return apperror.ErrProviderUnavailable()
	}
	if rpcErr, ok := bridge.AsRPCError(err); ok {
		switch rpcErr.Code {
		case bridge.CodeProviderNotInstalled:
			return apperror.ErrProviderUnavailable()
		case codeUserRejected, bridge.CodeUserRejection:
			return rejected()
		}
		msg := strings.ToLower(rpcErr.Message)
		switch {
		case strings.Contains(msg, "rejected"), strings.Contains(msg, "denied"):
			return rejected()
		case strings.Contains(msg, "insufficient"):
			return apperror.ErrInsufficientFunds()
		}
	}
	return apperror.ErrProviderUnknown(err)
}
