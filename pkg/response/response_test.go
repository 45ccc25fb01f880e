package response

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"bitbuddy/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestOK(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(CtxRequestID, "req-123")

	OK(c, map[string]string{"state": "connected"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "req-123", resp.RequestID)
	assert.NotEmpty(t, resp.Timestamp)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "connected", data["state"])
}

func TestCreatedAndAccepted(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	Created(c, map[string]string{"id": "abc"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)
	Accepted(c, map[string]string{"tx_ref": "abc"})
	assert.Equal(t, http.StatusAccepted, w.Code)
}

func TestError_AppError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Set(CtxRequestID, "req-789")

	Error(c, apperror.ErrInsufficientFunds())

	assert.Equal(t, http.StatusPaymentRequired, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apperror.CodeInsufficientFunds, resp.ErrorCode)
	assert.Equal(t, "Insufficient balance in wallet", resp.Message)
	assert.Equal(t, "req-789", resp.RequestID)
}

func TestError_WrappedAppError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, fmt.Errorf("connect: %w", apperror.ErrUserRejected()))

	assert.Equal(t, http.StatusForbidden, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apperror.CodeUserRejected, resp.ErrorCode)
}

func TestError_DeadlineExceeded(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, fmt.Errorf("waiting for wallet: %w", context.DeadlineExceeded))

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
}

func TestError_UnknownError(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	Error(c, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, apperror.CodeInternal, resp.ErrorCode)
	assert.NotEmpty(t, resp.RequestID, "a request id is generated when absent")
}
