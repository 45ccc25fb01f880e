package dto

import (
	"time"

	"bitbuddy/internal/core/domain"

	"github.com/google/uuid"
)

// --- Session DTOs ---

// SwitchAccountRequest is the body for POST /api/v1/session/switch.
type SwitchAccountRequest struct {
	Index *int `json:"index" binding:"required"`
}

// BalanceResponse is returned by GET /api/v1/session/balance.
type BalanceResponse struct {
	Address     string `json:"address"`
	BalanceSats uint64 `json:"balance_sats"`
}

// --- Gift DTOs ---

// SendGiftRequest is the body for POST /api/v1/gifts.
type SendGiftRequest struct {
	Recipient  string `json:"recipient" binding:"required,btc_address"`
	AmountSats int64  `json:"amount_sats" binding:"required,gt=0,lte=2100000000000000"`
	Message    string `json:"message" binding:"max=200"`
}

// SendGiftResponse reports a sent gift. Recorded is false when the payment
// went out but the gift could not be stored yet.
type SendGiftResponse struct {
	TxRef     string             `json:"tx_ref"`
	From      string             `json:"from"`
	Recorded  bool               `json:"recorded"`
	ErrorCode string             `json:"error_code,omitempty"`
	Gift      *domain.Gift       `json:"gift,omitempty"`
	Unlocked  []domain.BadgeType `json:"unlocked_badges,omitempty"`
}

// OwnerQuery binds the ?owner= filter used by list endpoints.
type OwnerQuery struct {
	Owner string `form:"owner" binding:"required,btc_address"`
}

// AddressURI binds the :address path segment.
type AddressURI struct {
	Address string `uri:"address" binding:"required,btc_address"`
}

// --- Bridge DTOs ---

// BridgeRequest is the body for POST /api/v1/bridge.
type BridgeRequest struct {
	TargetNetwork string `json:"target_network" binding:"required,safe_id"`
	TargetAddress string `json:"target_address" binding:"required,safe_id"`
	AmountSats    int64  `json:"amount_sats" binding:"required,gt=0,lte=2100000000000000"`
}

// BridgeResponse reports a completed bridge.
type BridgeResponse struct {
	TxRef    string `json:"tx_ref"`
	From     string `json:"from"`
	Unlocked bool   `json:"bridge_explorer_unlocked"`
}

// --- Savings goal DTOs ---

// CreateGoalRequest is the body for POST /api/v1/goals.
type CreateGoalRequest struct {
	Owner            string     `json:"owner" binding:"required,btc_address"`
	Name             string     `json:"name" binding:"required,max=50"`
	TargetAmountSats int64      `json:"target_amount_sats" binding:"required,gt=0,lte=2100000000000000"`
	Deadline         *time.Time `json:"deadline"`
}

// ContributeRequest is the body for POST /api/v1/goals/:id/contributions.
type ContributeRequest struct {
	AmountSats int64 `json:"amount_sats" binding:"required,gt=0,lte=2100000000000000"`
}

// GoalResponse is a savings goal with its funding progress.
type GoalResponse struct {
	domain.SavingsGoal
	ProgressPercent float64 `json:"progress_percent"`
}

// NewGoalResponse wraps g for output.
func NewGoalResponse(g domain.SavingsGoal) GoalResponse {
	return GoalResponse{SavingsGoal: g, ProgressPercent: g.ProgressPercent()}
}

// NewGoalListResponse wraps goals for output, never returning nil.
func NewGoalListResponse(goals []domain.SavingsGoal) []GoalResponse {
	out := make([]GoalResponse, 0, len(goals))
	for _, g := range goals {
		out = append(out, NewGoalResponse(g))
	}
	return out
}

// ContributionResponse reports the goal after a contribution.
type ContributionResponse struct {
	Goal         GoalResponse       `json:"goal"`
	CompletedNow bool               `json:"completed_now"`
	Unlocked     []domain.BadgeType `json:"unlocked_badges,omitempty"`
}

// DeleteGoalResponse confirms a removed goal.
type DeleteGoalResponse struct {
	ID      uuid.UUID `json:"id"`
	Deleted bool      `json:"deleted"`
}

// --- User DTOs ---

// BadgeCatalogueQuery is the query for GET /api/v1/badges.
type BadgeCatalogueQuery struct {
	Owner string `form:"owner" binding:"omitempty,btc_address"`
}

// BadgeStatus is one catalogue entry and whether the owner has it.
type BadgeStatus struct {
	domain.BadgeInfo
	Unlocked   bool       `json:"unlocked"`
	UnlockedAt *time.Time `json:"unlocked_at,omitempty"`
}

// ReconcileResponse lists badges granted by a reconcile run.
type ReconcileResponse struct {
	Owner    string             `json:"owner"`
	Unlocked []domain.BadgeType `json:"unlocked_badges"`
}
