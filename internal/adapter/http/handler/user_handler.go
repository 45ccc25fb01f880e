package handler

import (
	"slices"

	"bitbuddy/internal/adapter/http/dto"
	"bitbuddy/internal/core/domain"
	"bitbuddy/internal/core/ports"
	"bitbuddy/pkg/apperror"
	"bitbuddy/pkg/response"

	"github.com/gin-gonic/gin"
)

// UserHandler serves per-address stats and badges.
type UserHandler struct {
	rewards ports.RewardsService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(rewards ports.RewardsService) *UserHandler {
	return &UserHandler{rewards: rewards}
}

// Stats handles GET /api/v1/users/:address/stats.
func (h *UserHandler) Stats(c *gin.Context) {
	var uri dto.AddressURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	stats, err := h.rewards.GetStats(c.Request.Context(), uri.Address)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, stats)
}

// Badges handles GET /api/v1/users/:address/badges.
func (h *UserHandler) Badges(c *gin.Context) {
	var uri dto.AddressURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	badges, err := h.rewards.ListBadges(c.Request.Context(), uri.Address)
	if err != nil {
		response.Error(c, err)
		return
	}
	if badges == nil {
		badges = []domain.Badge{}
	}
	response.OK(c, badges)
}

// Reconcile handles POST /api/v1/users/:address/badges/reconcile.
func (h *UserHandler) Reconcile(c *gin.Context) {
	var uri dto.AddressURI
	if err := c.ShouldBindUri(&uri); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	unlocked, err := h.rewards.ReconcileBadges(c.Request.Context(), uri.Address)
	if err != nil {
		response.Error(c, err)
		return
	}
	if unlocked == nil {
		unlocked = []domain.BadgeType{}
	}
	response.OK(c, dto.ReconcileResponse{Owner: uri.Address, Unlocked: unlocked})
}

// Catalogue handles GET /api/v1/badges. With ?owner= each entry reports
// whether that address has unlocked it.
func (h *UserHandler) Catalogue(c *gin.Context) {
	var q dto.BadgeCatalogueQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	unlocked := map[domain.BadgeType]domain.Badge{}
	if q.Owner != "" {
		badges, err := h.rewards.ListBadges(c.Request.Context(), q.Owner)
		if err != nil {
			response.Error(c, err)
			return
		}
		for _, b := range badges {
			unlocked[b.Type] = b
		}
	}

	catalogue := domain.BadgeCatalogue()
	out := make([]dto.BadgeStatus, 0, len(catalogue)+len(unlocked))
	for _, info := range catalogue {
		out = append(out, badgeStatus(info, unlocked))
	}
	// Rows for retired badge types still show, with the fallback medal.
	var retired []domain.BadgeType
	for t := range unlocked {
		if !domain.IsKnownBadge(t) {
			retired = append(retired, t)
		}
	}
	slices.Sort(retired)
	for _, t := range retired {
		out = append(out, badgeStatus(domain.LookupBadge(t), unlocked))
	}
	response.OK(c, out)
}

func badgeStatus(info domain.BadgeInfo, unlocked map[domain.BadgeType]domain.Badge) dto.BadgeStatus {
	st := dto.BadgeStatus{BadgeInfo: info}
	if b, ok := unlocked[info.Type]; ok {
		at := b.UnlockedAt
		st.Unlocked = true
		st.UnlockedAt = &at
	}
	return st
}
