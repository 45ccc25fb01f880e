package handler

import (
	"bitbuddy/internal/adapter/http/dto"
	"bitbuddy/internal/core/domain"
	"bitbuddy/internal/core/ports"
	"bitbuddy/pkg/apperror"
	"bitbuddy/pkg/response"

	"github.com/gin-gonic/gin"
)

// GiftHandler handles gift sending and history.
type GiftHandler struct {
	flow    ports.GiftFlow
	rewards ports.RewardsService
}

// NewGiftHandler creates a new GiftHandler.
func NewGiftHandler(flow ports.GiftFlow, rewards ports.RewardsService) *GiftHandler {
	return &GiftHandler{flow: flow, rewards: rewards}
}

// Send handles POST /api/v1/gifts.
// A payment that went out but could not be recorded answers 202 with the
// receipt so the client never retries the payment itself.
func (h *GiftHandler) Send(c *gin.Context) {
	var req dto.SendGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.flow.SendGift(c.Request.Context(), ports.SendGiftInput{
		Recipient:  req.Recipient,
		AmountSats: req.AmountSats,
		Message:    req.Message,
	})
	if err != nil {
		if result == nil {
			response.Error(c, err)
			return
		}
		response.Accepted(c, dto.SendGiftResponse{
			TxRef:     result.Receipt.TxRef,
			From:      result.Receipt.From,
			Recorded:  false,
			ErrorCode: apperror.CodeOf(err),
		})
		return
	}

	resp := dto.SendGiftResponse{
		TxRef:    result.Receipt.TxRef,
		From:     result.Receipt.From,
		Recorded: true,
	}
	if result.Gift != nil {
		resp.Gift = &result.Gift.Gift
		resp.Unlocked = result.Gift.Unlocked
	}
	response.Created(c, resp)
}

// List handles GET /api/v1/gifts?owner=.
func (h *GiftHandler) List(c *gin.Context) {
	var q dto.OwnerQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	gifts, err := h.rewards.ListGifts(c.Request.Context(), q.Owner)
	if err != nil {
		response.Error(c, err)
		return
	}
	if gifts == nil {
		gifts = []domain.Gift{}
	}
	response.OK(c, gifts)
}
