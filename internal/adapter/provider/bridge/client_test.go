package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, handler func(method string, params json.RawMessage) (int, string)) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			JSONRPC string          `json:"jsonrpc"`
			Method  string          `json:"method"`
			Params  json.RawMessage `json:"params"`
			ID      int64           `json:"id"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "2.0", req.JSONRPC)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		status, body := handler(req.Method, req.Params)
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_Call_Result(t *testing.T) {
	srv := newTestServer(t, func(method string, params json.RawMessage) (int, string) {
		assert.Equal(t, "getBalance", method)
		assert.JSONEq(t, `{"address":"bc1q"}`, string(params))
		return 200, `{"jsonrpc":"2.0","id":1,"result":{"confirmed":"1500","total":"1500"}}`
	})

	c := NewClient("xverse", srv.URL, time.Second)
	res, err := c.Call(context.Background(), "getBalance", map[string]string{"address": "bc1q"})

	require.NoError(t, err)
	assert.Equal(t, "1500", res.Get("confirmed").String())
}

func TestClient_Call_RPCError(t *testing.T) {
	srv := newTestServer(t, func(string, json.RawMessage) (int, string) {
		return 200, `{"jsonrpc":"2.0","id":1,"error":{"code":-32000,"message":"User rejected the request"}}`
	})

	c := NewClient("xverse", srv.URL, time.Second)
	_, err := c.Call(context.Background(), "getAccounts", nil)

	rpcErr, ok := AsRPCError(err)
	require.True(t, ok)
	assert.Equal(t, int64(CodeUserRejection), rpcErr.Code)
	assert.Equal(t, "getAccounts", rpcErr.Method)
	assert.Contains(t, err.Error(), "User rejected")
}

func TestClient_Call_NullErrorIsSuccess(t *testing.T) {
	srv := newTestServer(t, func(string, json.RawMessage) (int, string) {
		return 200, `{"jsonrpc":"2.0","id":1,"error":null,"result":"txid-1"}`
	})

	c := NewClient("legacy", srv.URL, time.Second)
	res, err := c.Call(context.Background(), "sendBitcoin", []any{"bc1q", 10})

	require.NoError(t, err)
	assert.Equal(t, "txid-1", res.String())
}

func TestClient_Call_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient("xverse", url, time.Second)
	_, err := c.Call(context.Background(), "getInfo", nil)

	assert.True(t, errors.Is(err, ErrUnreachable))
}

func TestClient_Call_ServiceUnavailableIsUnreachable(t *testing.T) {
	srv := newTestServer(t, func(string, json.RawMessage) (int, string) {
		return http.StatusServiceUnavailable, `extension not attached`
	})

	c := NewClient("xverse", srv.URL, time.Second)
	_, err := c.Call(context.Background(), "getInfo", nil)

	assert.True(t, errors.Is(err, ErrUnreachable))
}

func TestClient_Call_HTTPError(t *testing.T) {
	srv := newTestServer(t, func(string, json.RawMessage) (int, string) {
		return http.StatusBadRequest, `bad request`
	})

	c := NewClient("xverse", srv.URL, time.Second)
	_, err := c.Call(context.Background(), "getInfo", nil)

	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrUnreachable))
	assert.Contains(t, err.Error(), "http 400")
}

func TestClient_Call_InvalidJSON(t *testing.T) {
	srv := newTestServer(t, func(string, json.RawMessage) (int, string) {
		return 200, `{not json`
	})

	c := NewClient("xverse", srv.URL, time.Second)
	_, err := c.Call(context.Background(), "getInfo", nil)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid json")
}

func TestClient_Call_ContextCanceled(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	c := NewClient("xverse", srv.URL, 5*time.Second)
	_, err := c.Call(ctx, "getAccounts", nil)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestClient_Ping(t *testing.T) {
	srv := newTestServer(t, func(method string, _ json.RawMessage) (int, string) {
		assert.Equal(t, "ping", method)
		return 200, `{"jsonrpc":"2.0","id":1,"error":{"code":-32601,"message":"method not found"}}`
	})

	c := NewClient("legacy", srv.URL, time.Second)
	assert.NoError(t, c.Ping(context.Background()))
	assert.Equal(t, "wallet-bridge:legacy", c.Name())
}
