package domain

import "time"

// UserStats aggregates a user's activity across the store.
type UserStats struct {
	TotalGiftsSent        int64      `json:"total_gifts_sent"`
	TotalSatsGifted       int64      `json:"total_sats_gifted"`
	ActiveSavingsGoals    int64      `json:"active_savings_goals"`
	CompletedSavingsGoals int64      `json:"completed_savings_goals"`
	TotalSavedSats        int64      `json:"total_saved_sats"`
	TotalBadges           int64      `json:"total_badges"`
	LastActivity          *time.Time `json:"last_activity,omitempty"`
}

// Touch advances LastActivity to t when t is later.
func (s *UserStats) Touch(t time.Time) {
	if t.IsZero() {
		return
	}
	if s.LastActivity == nil || t.After(*s.LastActivity) {
		at := t
		s.LastActivity = &at
	}
}
