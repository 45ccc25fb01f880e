package handler

import (
	"bitbuddy/internal/adapter/http/dto"
	"bitbuddy/internal/core/ports"
	"bitbuddy/pkg/apperror"
	"bitbuddy/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GoalHandler handles savings goals and contributions.
type GoalHandler struct {
	rewards ports.RewardsService
}

// NewGoalHandler creates a new GoalHandler.
func NewGoalHandler(rewards ports.RewardsService) *GoalHandler {
	return &GoalHandler{rewards: rewards}
}

// Create handles POST /api/v1/goals.
func (h *GoalHandler) Create(c *gin.Context) {
	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	goal, err := h.rewards.CreateGoal(c.Request.Context(), ports.CreateGoalInput{
		Owner:            req.Owner,
		Name:             req.Name,
		TargetAmountSats: req.TargetAmountSats,
		Deadline:         req.Deadline,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, dto.NewGoalResponse(*goal))
}

// List handles GET /api/v1/goals?owner=.
func (h *GoalHandler) List(c *gin.Context) {
	var q dto.OwnerQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	goals, err := h.rewards.ListGoals(c.Request.Context(), q.Owner)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NewGoalListResponse(goals))
}

// Contribute handles POST /api/v1/goals/:id/contributions.
func (h *GoalHandler) Contribute(c *gin.Context) {
	id, ok := parseGoalID(c)
	if !ok {
		return
	}

	var req dto.ContributeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	result, err := h.rewards.Contribute(c.Request.Context(), id, req.AmountSats)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.ContributionResponse{
		Goal:         dto.NewGoalResponse(result.Goal),
		CompletedNow: result.CompletedNow,
		Unlocked:     result.Unlocked,
	})
}

// Delete handles DELETE /api/v1/goals/:id?owner=.
func (h *GoalHandler) Delete(c *gin.Context) {
	id, ok := parseGoalID(c)
	if !ok {
		return
	}

	var q dto.OwnerQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	if err := h.rewards.DeleteGoal(c.Request.Context(), id, q.Owner); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.DeleteGoalResponse{ID: id, Deleted: true})
}

func parseGoalID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid goal id"))
		return uuid.Nil, false
	}
	return id, true
}
