package xverse

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"bitbuddy/internal/adapter/provider/bridge"
	"bitbuddy/internal/core/domain"
	"bitbuddy/internal/core/ports"
	"bitbuddy/pkg/apperror"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeBridge answers JSON-RPC calls from a method -> raw response body table.
type fakeBridge struct {
	mu      sync.Mutex
	replies map[string]string
	calls   []string
	params  map[string]json.RawMessage
}

func newFakeBridge(t *testing.T, replies map[string]string) (*fakeBridge, *Adapter) {
	t.Helper()
	fb := &fakeBridge{replies: replies, params: map[string]json.RawMessage{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Method string          `json:"method"`
			Params json.RawMessage `json:"params"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)

		fb.mu.Lock()
		fb.calls = append(fb.calls, req.Method)
		fb.params[req.Method] = req.Params
		reply, ok := fb.replies[req.Method]
		fb.mu.Unlock()

		if !ok {
			reply = `{"jsonrpc":"2.0","id":1,"error":{"code":-32601,"message":"method not found"}}`
		}
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)

	return fb, New(bridge.NewClient(Name, srv.URL, time.Second), zerolog.Nop())
}

func (fb *fakeBridge) called() []string {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return append([]string(nil), fb.calls...)
}

func result(v string) string {
	return `{"jsonrpc":"2.0","id":1,"result":` + v + `}`
}

func rpcError(code int, msg string) string {
	b, _ := json.Marshal(map[string]any{"jsonrpc": "2.0", "id": 1, "error": map[string]any{"code": code, "message": msg}})
	return string(b)
}

func assertCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	assert.Equal(t, code, apperror.CodeOf(err), "error: %v", err)
}

const accountsReply = `[
	{"address":"bc1pordinals","publicKey":"02ab","purpose":"ordinals","addressType":"p2tr"},
	{"address":"bc1qpayment","publicKey":"03cd","purpose":"payment","addressType":"p2wpkh"}
]`

func TestConnect_Success_PaymentFirst(t *testing.T) {
	fb, a := newFakeBridge(t, map[string]string{
		"getInfo":     result(`{"version":"1.0","network":{"bitcoin":{"name":"Mainnet"}}}`),
		"getAccounts": result(accountsReply),
	})

	accounts, err := a.Connect(context.Background(), ports.ConnectConfig{Message: "hi", Network: domain.NetworkMainnet})

	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "bc1qpayment", accounts[0].Address)
	assert.Equal(t, domain.AddressTypePayment, accounts[0].AddressType)
	assert.Equal(t, []byte{0x03, 0xcd}, accounts[0].PublicKey)
	assert.Equal(t, "Xverse Payment 1", accounts[0].Label)
	assert.Equal(t, domain.AddressTypeOrdinal, accounts[1].AddressType)
	assert.Equal(t, []string{"getInfo", "getAccounts"}, fb.called())
	assert.JSONEq(t, `{"purposes":["payment","ordinals"],"message":"hi"}`, string(fb.params["getAccounts"]))
}

func TestConnect_NetworkMismatch_NoPopup(t *testing.T) {
	fb, a := newFakeBridge(t, map[string]string{
		"getInfo":     result(`{"network":"Testnet"}`),
		"getAccounts": result(accountsReply),
	})

	_, err := a.Connect(context.Background(), ports.ConnectConfig{Network: domain.NetworkMainnet})

	assertCode(t, err, apperror.CodeNetworkMismatch)
	assert.Equal(t, []string{"getInfo"}, fb.called())
}

func TestConnect_ErrorMapping(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		code  string
	}{
		{"user rejection code", rpcError(bridge.CodeUserRejection, "denied"), apperror.CodeUserRejected},
		{"user rejected message", rpcError(-1, "User rejected the request"), apperror.CodeUserRejected},
		{"not installed", rpcError(bridge.CodeProviderNotInstalled, "Xverse Wallet not detected"), apperror.CodeProviderUnavailable},
		{"other", rpcError(-32603, "internal"), apperror.CodeProviderUnknown},
		{"empty address list", result(`[]`), apperror.CodeProviderUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, a := newFakeBridge(t, map[string]string{
				"getInfo":     result(`{}`),
				"getAccounts": tt.reply,
			})
			_, err := a.Connect(context.Background(), ports.ConnectConfig{Network: domain.NetworkMainnet})
			assertCode(t, err, tt.code)
		})
	}
}

func TestConnect_BridgeDown(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	a := New(bridge.NewClient(Name, url, time.Second), zerolog.Nop())

	_, err := a.Connect(context.Background(), ports.ConnectConfig{})

	assertCode(t, err, apperror.CodeProviderUnavailable)
}

func TestGetAccounts_Repoll(t *testing.T) {
	fb, a := newFakeBridge(t, map[string]string{
		"getAddresses": result(`{"addresses":[{"address":"bc1qnew","purpose":"payment"}]}`),
	})

	accounts, err := a.GetAccounts(context.Background())

	require.NoError(t, err)
	require.Len(t, accounts, 1)
	assert.Equal(t, "bc1qnew", accounts[0].Address)
	assert.Equal(t, []string{"getAddresses"}, fb.called())
}

func TestGetBalance(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		want  uint64
		code  string
	}{
		{"confirmed string", result(`{"confirmed":"150000","unconfirmed":"0","total":"150000"}`), 150000, ""},
		{"total fallback", result(`{"total":"42"}`), 42, ""},
		{"garbage", result(`{"confirmed":"abc"}`), 0, apperror.CodeBalanceUnavailable},
		{"missing", result(`{}`), 0, apperror.CodeBalanceUnavailable},
		{"rpc error", rpcError(-32603, "boom"), 0, apperror.CodeBalanceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, a := newFakeBridge(t, map[string]string{"getBalance": tt.reply})
			got, err := a.GetBalance(context.Background(), domain.Account{Address: "bc1q"})
			if tt.code != "" {
				assertCode(t, err, tt.code)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSendPayment(t *testing.T) {
	fb, a := newFakeBridge(t, map[string]string{"sendTransfer": result(`{"txid":"abc123"}`)})

	receipt, err := a.SendPayment(context.Background(), ports.PaymentRequest{
		From:       domain.Account{Address: "bc1qfrom"},
		To:         "bc1qto",
		AmountSats: 500000,
		Memo:       "gift",
	})

	require.NoError(t, err)
	assert.Equal(t, "abc123", receipt.TxRef)
	assert.JSONEq(t, `{"recipients":[{"address":"bc1qto","amount":500000}],"senderAddress":"bc1qfrom","message":"gift"}`,
		string(fb.params["sendTransfer"]))
}

func TestSendPayment_ErrorMapping(t *testing.T) {
	tests := []struct {
		name  string
		reply string
		code  string
	}{
		{"rejected", rpcError(bridge.CodeUserRejection, "User rejected"), apperror.CodePaymentRejected},
		{"insufficient", rpcError(-32603, "Insufficient balance"), apperror.CodeInsufficientFunds},
		{"no txid", result(`{}`), apperror.CodeProviderUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, a := newFakeBridge(t, map[string]string{"sendTransfer": tt.reply})
			_, err := a.SendPayment(context.Background(), ports.PaymentRequest{To: "x", AmountSats: 1})
			assertCode(t, err, tt.code)
		})
	}
}

func TestSubscribeAccountChange_Unsupported(t *testing.T) {
	_, a := newFakeBridge(t, nil)

	unsub, err := a.SubscribeAccountChange(context.Background(), func([]domain.Account) {})

	assert.Nil(t, unsub)
	assert.True(t, errors.Is(err, ports.ErrSubscriptionUnsupported))
}

func TestNotifyAccountSwitch(t *testing.T) {
	fb, a := newFakeBridge(t, map[string]string{"setActiveAccount": result(`true`)})

	require.NoError(t, a.NotifyAccountSwitch(context.Background(), domain.Account{Address: "bc1q2"}))
	assert.JSONEq(t, `{"address":"bc1q2"}`, string(fb.params["setActiveAccount"]))
}
