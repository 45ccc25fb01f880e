package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"bitbuddy/internal/metrics"

	"github.com/tidwall/gjson"
)

// JSON-RPC error codes reported by the wallet-extension bridge.
// The -3200x range follows the sats-connect request API.
const (
	CodeUserRejection        = -32000
	CodeMethodNotSupported   = -32001
	CodeAccessDenied         = -32002
	CodeProviderNotInstalled = -32010
	CodeInvalidParams        = -32602
)

// ErrUnreachable means the bridge process could not be contacted.
var ErrUnreachable = errors.New("wallet bridge unreachable")

// RPCError is an error object returned by the bridge.
type RPCError struct {
	Method  string
	Code    int64
	Message string
}

func (e *RPCError) Error() string {
	return fmt.Sprintf("rpc %s: code %d: %s", e.Method, e.Code, e.Message)
}

// AsRPCError extracts the RPCError from err's chain.
func AsRPCError(err error) (*RPCError, bool) {
	var rpcErr *RPCError
	if errors.As(err, &rpcErr) {
		return rpcErr, true
	}
	return nil, false
}

// Caller issues a single JSON-RPC call and returns the raw result.
type Caller interface {
	Call(ctx context.Context, method string, params any) (gjson.Result, error)
}

// Client is a JSON-RPC 2.0 over HTTP client for one wallet backend.
type Client struct {
	provider   string
	endpoint   string
	httpClient *http.Client
	nextID     atomic.Int64
}

// NewClient creates a bridge client. timeout bounds each HTTP round trip,
// including the time the user spends in the wallet popup.
func NewClient(provider, endpoint string, timeout time.Duration) *Client {
	return &Client{
		provider: provider,
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        10,
				MaxIdleConnsPerHost: 4,
				IdleConnTimeout:     90 * time.Second,
			},
		},
	}
}

// Call makes a single JSON-RPC call.
func (c *Client) Call(ctx context.Context, method string, params any) (gjson.Result, error) {
	start := time.Now()
	defer func() {
		metrics.ProviderLatency.WithLabelValues(c.provider, method).Observe(time.Since(start).Seconds())
	}()

	result, err := c.call(ctx, method, params)
	metrics.ProviderCallsTotal.WithLabelValues(c.provider, method, outcome(err)).Inc()
	return result, err
}

func (c *Client) call(ctx context.Context, method string, params any) (gjson.Result, error) {
	reqBody := map[string]any{
		"jsonrpc": "2.0",
		"method":  method,
		"id":      c.nextID.Add(1),
	}
	if params != nil {
		reqBody["params"] = params
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return gjson.Result{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return gjson.Result{}, ctxErr
		}
		return gjson.Result{}, fmt.Errorf("%w: %v", ErrUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("read response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusBadGateway || resp.StatusCode == http.StatusServiceUnavailable:
		return gjson.Result{}, fmt.Errorf("%w: http %d", ErrUnreachable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return gjson.Result{}, fmt.Errorf("http %d: %s", resp.StatusCode, string(body))
	}

	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("parse response: invalid json")
	}

	if rpcErr := gjson.GetBytes(body, "error"); rpcErr.Exists() && rpcErr.Type != gjson.Null {
		msg := rpcErr.Get("message").String()
		if msg == "" {
			msg = "unknown error"
		}
		return gjson.Result{}, &RPCError{Method: method, Code: rpcErr.Get("code").Int(), Message: msg}
	}

	return gjson.GetBytes(body, "result"), nil
}

// Name identifies the bridge as a health dependency.
func (c *Client) Name() string {
	return "wallet-bridge:" + c.provider
}

// Ping checks that the bridge process answers. An RPC error still proves it is up.
func (c *Client) Ping(ctx context.Context) error {
	_, err := c.call(ctx, "ping", nil)
	if _, ok := AsRPCError(err); ok {
		return nil
	}
	return err
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

func outcome(err error) string {
	if err == nil {
		return "ok"
	}
	if _, ok := AsRPCError(err); ok {
		return "rpc_error"
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "canceled"
	}
	return "transport_error"
}
