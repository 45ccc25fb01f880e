// Package xverse adapts the Xverse request API (sats-connect) exposed by the
// wallet-extension bridge.
package xverse

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"bitbuddy/internal/adapter/provider/bridge"
	"bitbuddy/internal/core/domain"
	"bitbuddy/internal/core/ports"
	"bitbuddy/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/tidwall/gjson"
)

// Name is the backend identifier.
const Name = "xverse"

var purposes = []string{"payment", "ordinals"}

// Adapter is the primary wallet backend.
type Adapter struct {
	rpc bridge.Caller
	log zerolog.Logger
}

var (
	_ ports.ProviderAdapter       = (*Adapter)(nil)
	_ ports.AccountSwitchNotifier = (*Adapter)(nil)
)

// New creates an Xverse adapter on top of a bridge caller.
func New(rpc bridge.Caller, log zerolog.Logger) *Adapter {
	return &Adapter{rpc: rpc, log: log.With().Str("provider", Name).Logger()}
}

func (a *Adapter) Name() string { return Name }

// Connect checks the wallet network first, so a mismatch never opens the approval popup.
func (a *Adapter) Connect(ctx context.Context, cfg ports.ConnectConfig) ([]domain.Account, error) {
	info, err := a.rpc.Call(ctx, "getInfo", nil)
	if err != nil {
		return nil, normalize(err, apperror.ErrUserRejected)
	}

	if cfg.Network != "" {
		got := parseNetwork(info)
		if got != "" && got != cfg.Network {
			return nil, apperror.ErrNetworkMismatch(string(cfg.Network), string(got))
		}
	}

	res, err := a.rpc.Call(ctx, "getAccounts", map[string]any{
		"purposes": purposes,
		"message":  cfg.Message,
	})
	if err != nil {
		return nil, normalize(err, apperror.ErrUserRejected)
	}

	accounts, err := parseAccounts(res)
	if err != nil {
		return nil, apperror.ErrProviderUnknown(err)
	}
	a.log.Debug().Int("accounts", len(accounts)).Msg("connected")
	return accounts, nil
}

func (a *Adapter) GetAccounts(ctx context.Context) ([]domain.Account, error) {
	res, err := a.rpc.Call(ctx, "getAddresses", map[string]any{"purposes": purposes})
	if err != nil {
		return nil, normalize(err, apperror.ErrUserRejected)
	}
	accounts, err := parseAccounts(res)
	if err != nil {
		return nil, apperror.ErrProviderUnknown(err)
	}
	return accounts, nil
}

// GetBalance returns the confirmed balance. Amounts arrive as decimal strings.
func (a *Adapter) GetBalance(ctx context.Context, account domain.Account) (uint64, error) {
	res, err := a.rpc.Call(ctx, "getBalance", map[string]any{"address": account.Address})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, ctxErr
		}
		return 0, apperror.ErrBalanceUnavailable(err)
	}

	raw := res.Get("confirmed")
	if !raw.Exists() {
		raw = res.Get("total")
	}
	if !raw.Exists() {
		return 0, apperror.ErrBalanceUnavailable(fmt.Errorf("balance missing from response: %s", res.Raw))
	}
	sats, err := strconv.ParseUint(raw.String(), 10, 64)
	if err != nil {
		return 0, apperror.ErrBalanceUnavailable(fmt.Errorf("parse balance %q: %w", raw.String(), err))
	}
	return sats, nil
}

func (a *Adapter) SendPayment(ctx context.Context, req ports.PaymentRequest) (ports.PaymentReceipt, error) {
	res, err := a.rpc.Call(ctx, "sendTransfer", map[string]any{
		"recipients": []map[string]any{
			{"address": req.To, "amount": req.AmountSats},
		},
		"senderAddress": req.From.Address,
		"message":       req.Memo,
	})
	if err != nil {
		return ports.PaymentReceipt{}, normalize(err, apperror.ErrPaymentRejected)
	}

	txid := res.Get("txid").String()
	if txid == "" {
		return ports.PaymentReceipt{}, apperror.ErrProviderUnknown(fmt.Errorf("sendTransfer returned no txid: %s", res.Raw))
	}
	return ports.PaymentReceipt{TxRef: txid}, nil
}

// SubscribeAccountChange is not available over the request API.
func (a *Adapter) SubscribeAccountChange(context.Context, func([]domain.Account)) (func(), error) {
	return nil, ports.ErrSubscriptionUnsupported
}

// NotifyAccountSwitch tells the wallet which address the app now uses.
func (a *Adapter) NotifyAccountSwitch(ctx context.Context, account domain.Account) error {
	_, err := a.rpc.Call(ctx, "setActiveAccount", map[string]any{"address": account.Address})
	return err
}

// parseNetwork accepts both {"network":{"bitcoin":{"name":"Mainnet"}}} and {"network":"mainnet"}.
func parseNetwork(info gjson.Result) domain.Network {
	name := info.Get("network.bitcoin.name")
	if !name.Exists() {
		name = info.Get("network")
	}
	if name.Type != gjson.String {
		return ""
	}
	return domain.Network(strings.ToLower(name.String()))
}

// parseAccounts maps the purpose-segmented address list, payment addresses first.
func parseAccounts(res gjson.Result) ([]domain.Account, error) {
	list := res
	if res.Get("addresses").IsArray() {
		list = res.Get("addresses")
	}
	if !list.IsArray() {
		return nil, fmt.Errorf("unexpected accounts payload: %s", res.Raw)
	}

	var payment, ordinals []domain.Account
	for _, item := range list.Array() {
		addr := item.Get("address").String()
		if addr == "" {
			continue
		}
		acc := domain.Account{Address: addr}
		if pk := item.Get("publicKey").String(); pk != "" {
			if b, err := hex.DecodeString(pk); err == nil {
				acc.PublicKey = b
			}
		}
		switch item.Get("purpose").String() {
		case "ordinals":
			acc.AddressType = domain.AddressTypeOrdinal
			acc.Label = fmt.Sprintf("Xverse Ordinals %d", len(ordinals)+1)
			ordinals = append(ordinals, acc)
		default:
			acc.AddressType = domain.AddressTypePayment
			acc.Label = fmt.Sprintf("Xverse Payment %d", len(payment)+1)
			payment = append(payment, acc)
		}
	}

	accounts := append(payment, ordinals...)
	if len(accounts) == 0 {
		return nil, errors.New("no addresses found in wallet response")
	}
	return accounts, nil
}

// normalize maps bridge failures onto the wallet error taxonomy.
// rejected builds the error used for a user rejection in the calling operation.
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
		case bridge.CodeUserRejection, bridge.CodeAccessDenied:
			return rejected()
		}
		msg := strings.ToLower(rpcErr.Message)
		switch {
		case strings.Contains(msg, "user rejected"), strings.Contains(msg, "cancel"):
			return rejected()
		case strings.Contains(msg, "insufficient"):
			return apperror.ErrInsufficientFunds()
		}
	}
	return apperror.ErrProviderUnknown(err)
}
