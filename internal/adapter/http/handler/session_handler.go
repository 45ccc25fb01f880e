package handler

import (
	"bitbuddy/internal/adapter/http/dto"
	"bitbuddy/internal/core/ports"
	"bitbuddy/pkg/apperror"
	"bitbuddy/pkg/response"

	"github.com/gin-gonic/gin"
)

// SessionHandler exposes the wallet session lifecycle.
type SessionHandler struct {
	session ports.WalletSessionService
}

// NewSessionHandler creates a new SessionHandler.
func NewSessionHandler(session ports.WalletSessionService) *SessionHandler {
	return &SessionHandler{session: session}
}

// Connect handles POST /api/v1/session/connect.
func (h *SessionHandler) Connect(c *gin.Context) {
	snap, err := h.session.Connect(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, snap)
}

// Switch handles POST /api/v1/session/switch.
func (h *SessionHandler) Switch(c *gin.Context) {
	var req dto.SwitchAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	snap, err := h.session.SwitchAccount(c.Request.Context(), *req.Index)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, snap)
}

// Disconnect handles POST /api/v1/session/disconnect. It always succeeds.
func (h *SessionHandler) Disconnect(c *gin.Context) {
	response.OK(c, h.session.Disconnect())
}

// Refresh handles POST /api/v1/session/refresh.
func (h *SessionHandler) Refresh(c *gin.Context) {
	snap, err := h.session.RefreshAccounts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, snap)
}

// Get handles GET /api/v1/session.
func (h *SessionHandler) Get(c *gin.Context) {
	response.OK(c, h.session.Snapshot())
}

// Balance handles GET /api/v1/session/balance.
func (h *SessionHandler) Balance(c *gin.Context) {
	sats, err := h.session.GetBalance(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.BalanceResponse{BalanceSats: sats}
	if active := h.session.Snapshot().ActiveAccount; active != nil {
		resp.Address = active.Address
	}
	response.OK(c, resp)
}
