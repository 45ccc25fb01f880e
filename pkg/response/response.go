package response

import (
	"context"
	"errors"
	"net/http"
	"time"

	"bitbuddy/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CtxRequestID is the gin context key holding the request correlation id.
const CtxRequestID = "request_id"

// SuccessResponse is the standard success envelope.
type SuccessResponse struct {
	Data      interface{} `json:"data"`
	RequestID string      `json:"request_id"`
	Timestamp string      `json:"timestamp"`
}

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	ErrorCode string `json:"error_code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp string `json:"timestamp"`
}

// OK sends a 200 response with data.
func OK(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, success(c, data))
}

// Created sends a 201 response with data.
func Created(c *gin.Context, data interface{}) {
	c.JSON(http.StatusCreated, success(c, data))
}

// Accepted sends a 202 response. Used when the wallet accepted an operation
// but a follow-up step (e.g. recording the gift) failed and can be retried.
func Accepted(c *gin.Context, data interface{}) {
	c.JSON(http.StatusAccepted, success(c, data))
}

// Error sends an error response. *apperror.AppError values keep their code and
// status, a caller-side deadline becomes 504, anything else is 500.
func Error(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, failure(c, appErr.Code, appErr.Message))
		return
	}

	if errors.Is(err, context.DeadlineExceeded) {
		c.JSON(http.StatusGatewayTimeout, failure(c, apperror.CodeTimeout, "Operation still pending in wallet"))
		return
	}

	c.JSON(http.StatusInternalServerError, failure(c, apperror.CodeInternal, "Internal server error"))
}

func success(c *gin.Context, data interface{}) SuccessResponse {
	return SuccessResponse{
		Data:      data,
		RequestID: getRequestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

func failure(c *gin.Context, code, message string) ErrorResponse {
	return ErrorResponse{
		ErrorCode: code,
		Message:   message,
		RequestID: getRequestID(c),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}

// getRequestID retrieves request ID from context, or generates one.
func getRequestID(c *gin.Context) string {
	if id, exists := c.Get(CtxRequestID); exists {
		if s, ok := id.(string); ok {
			return s
		}
	}
	return uuid.New().String()
}
