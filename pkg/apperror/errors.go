package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is reports whether target is an AppError with the same code, so callers can
// write errors.Is(err, apperror.ErrNotConnected()).
func (e *AppError) Is(target error) bool {
	var t *AppError
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// CodeOf returns the code of the first AppError in err's chain, or "".
func CodeOf(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// Wallet session & provider (WAL) codes.
const (
	CodeProviderUnavailable = "WAL_001"
	CodeUserRejected        = "WAL_002"
	CodeNetworkMismatch     = "WAL_003"
	CodeIndexOutOfRange     = "WAL_004"
	CodeAlreadyConnecting   = "WAL_005"
	CodeNotConnected        = "WAL_006"
	CodeSessionBusy         = "WAL_007"
	CodeAlreadyConnected    = "WAL_008"
	CodeBalanceUnavailable  = "WAL_009"
	CodePaymentRejected     = "WAL_010"
	CodeBridgeUnavailable   = "WAL_011"
	CodeProviderUnknown     = "WAL_012"
)

// Payment validation (PAY) codes.
const (
	CodeInvalidAmount     = "PAY_001"
	CodeInsufficientFunds = "PAY_002"
	CodeValidation        = "PAY_003"
)

// Rewards (RWD), system (SYS) and rate limiting (RATE) codes.
const (
	CodeContentionExceeded = "RWD_001"
	CodeNotFound           = "RWD_002"
	CodeGoalNotDeletable   = "RWD_003"
	CodeInternal           = "SYS_000"
	CodeStoreUnavailable   = "SYS_001"
	CodeTimeout            = "SYS_002"
	CodeRateLimitExceeded  = "RATE_001"
)

// ---- Wallet Session & Provider (WAL) ----

func ErrProviderUnavailable() *AppError {
	return New(CodeProviderUnavailable, "Wallet extension not installed", http.StatusServiceUnavailable)
}

func ErrUserRejected() *AppError {
	return New(CodeUserRejected, "Request rejected in wallet", http.StatusForbidden)
}

func ErrNetworkMismatch(want, got string) *AppError {
	return New(CodeNetworkMismatch, fmt.Sprintf("Wallet is on %s, expected %s", got, want), http.StatusConflict)
}

func ErrIndexOutOfRange(index, size int) *AppError {
	return New(CodeIndexOutOfRange, fmt.Sprintf("Account index %d out of range [0,%d)", index, size), http.StatusBadRequest)
}

func ErrAlreadyConnecting() *AppError {
	return New(CodeAlreadyConnecting, "A connection attempt is already in progress", http.StatusConflict)
}

func ErrNotConnected() *AppError {
	return New(CodeNotConnected, "Wallet not connected", http.StatusPreconditionFailed)
}

func ErrSessionBusy() *AppError {
	return New(CodeSessionBusy, "Session is changing state, try again", http.StatusConflict)
}

func ErrAlreadyConnected() *AppError {
	return New(CodeAlreadyConnected, "Wallet already connected", http.StatusConflict)
}

func ErrBalanceUnavailable(err error) *AppError {
	return Wrap(CodeBalanceUnavailable, "Balance unavailable", http.StatusBadGateway, err)
}

func ErrPaymentRejected() *AppError {
	return New(CodePaymentRejected, "Payment rejected by wallet", http.StatusForbidden)
}

func ErrBridgeUnavailable() *AppError {
	return New(CodeBridgeUnavailable, "Bridging is not supported by the connected wallet", http.StatusNotImplemented)
}

func ErrProviderUnknown(err error) *AppError {
	return Wrap(CodeProviderUnknown, "Wallet provider error", http.StatusBadGateway, err)
}

// ---- Payment Validation (PAY) ----

func ErrInvalidAmount() *AppError {
	return New(CodeInvalidAmount, "Invalid amount", http.StatusBadRequest)
}

func ErrInsufficientFunds() *AppError {
	return New(CodeInsufficientFunds, "Insufficient balance in wallet", http.StatusPaymentRequired)
}

// Validation returns a PAY_003 validation error.
func Validation(message string) *AppError {
	return New(CodeValidation, message, http.StatusBadRequest)
}

// ---- Rewards (RWD) ----

func ErrContentionExceeded(attempts int) *AppError {
	return New(CodeContentionExceeded, fmt.Sprintf("Goal update contended %d times, retry the contribution", attempts), http.StatusConflict)
}

func ErrNotFound(entity string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrGoalNotDeletable() *AppError {
	return New(CodeGoalNotDeletable, "Completed goals cannot be deleted", http.StatusConflict)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New(CodeRateLimitExceeded, "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & Infrastructure (SYS) ----

func ErrStoreUnavailable(err error) *AppError {
	return Wrap(CodeStoreUnavailable, "Activity store unavailable", http.StatusServiceUnavailable, err)
}

// InternalError wraps an internal error as a SYS_000 error.
func InternalError(err error) *AppError {
	return Wrap(CodeInternal, "Internal server error", http.StatusInternalServerError, err)
}
