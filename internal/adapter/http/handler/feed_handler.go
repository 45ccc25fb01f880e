package handler

import (
	"strconv"

	"bitbuddy/internal/core/domain"
	"bitbuddy/internal/core/ports"
	"bitbuddy/pkg/response"

	"github.com/gin-gonic/gin"
)

// FeedHandler serves the social feed.
type FeedHandler struct {
	rewards      ports.RewardsService
	defaultLimit int
}

// NewFeedHandler creates a new FeedHandler. defaultLimit applies when ?limit is absent.
func NewFeedHandler(rewards ports.RewardsService, defaultLimit int) *FeedHandler {
	return &FeedHandler{rewards: rewards, defaultLimit: defaultLimit}
}

// Recent handles GET /api/v1/feed?limit=. Bad or out-of-range limits are clamped.
func (h *FeedHandler) Recent(c *gin.Context) {
	limit := h.defaultLimit
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}

	entries, err := h.rewards.GetFeed(c.Request.Context(), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	if entries == nil {
		entries = []domain.FeedEntry{}
	}
	response.OK(c, entries)
}
