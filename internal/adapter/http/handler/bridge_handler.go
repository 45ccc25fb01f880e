package handler

import (
	"bitbuddy/internal/adapter/http/dto"
	"bitbuddy/internal/core/ports"
	"bitbuddy/pkg/apperror"
	"bitbuddy/pkg/response"

	"github.com/gin-gonic/gin"
)

// BridgeHandler handles cross-network transfers.
type BridgeHandler struct {
	flow ports.BridgeFlow
}

// NewBridgeHandler creates a new BridgeHandler.
func NewBridgeHandler(flow ports.BridgeFlow) *BridgeHandler {
	return &BridgeHandler{flow: flow}
}

// Bridge handles POST /api/v1/bridge.
func (h *BridgeHandler) Bridge(c *gin.Context) {
	var req dto.BridgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.flow.Bridge(c.Request.Context(), ports.BridgeInput{
		TargetNetwork: req.TargetNetwork,
		TargetAddress: req.TargetAddress,
		AmountSats:    req.AmountSats,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.BridgeResponse{
		TxRef:    result.Receipt.TxRef,
		From:     result.Receipt.From,
		Unlocked: result.Unlocked,
	})
}
