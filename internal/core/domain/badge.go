package domain

import "time"

// BadgeType identifies a one-time achievement.
type BadgeType string

const (
	BadgeFirstGift      BadgeType = "first_gift"
	BadgeGenerousGiver  BadgeType = "generous_giver"
	BadgeSavingsMaster  BadgeType = "savings_master"
	BadgeBridgeExplorer BadgeType = "bridge_explorer"
	BadgeEarlyAdopter   BadgeType = "early_adopter"
	BadgeSavingsStreak  BadgeType = "savings_streak"
)

// Gift count thresholds.
const (
	FirstGiftThreshold     = 1
	GenerousGiverThreshold = 5
)

// BadgeInfo is the display metadata for a badge type.
type BadgeInfo struct {
	Type        BadgeType `json:"type"`
	Name        string    `json:"name"`
	Emoji       string    `json:"emoji"`
	Description string    `json:"description"`
}

var badgeCatalogue = []BadgeInfo{
	{BadgeFirstGift, "First Gift", "🎁", "Sent your first BTC gift!"},
	{BadgeGenerousGiver, "Generous Giver", "💝", "Sent 5+ BTC gifts!"},
	{BadgeSavingsMaster, "Savings Master", "💰", "Completed your first savings goal!"},
	{BadgeEarlyAdopter, "Early Adopter", "🚀", "One of the first users of BitBuddy!"},
	{BadgeBridgeExplorer, "Bridge Explorer", "🌉", "Bridged BTC to another network!"},
	{BadgeSavingsStreak, "Savings Streak", "🔥", "Saved BTC for 7 consecutive days!"},
}

// BadgeCatalogue returns every known badge in display order.
func BadgeCatalogue() []BadgeInfo {
	out := make([]BadgeInfo, len(badgeCatalogue))
	copy(out, badgeCatalogue)
	return out
}

// LookupBadge returns the metadata for t. Unknown types get a generic medal.
func LookupBadge(t BadgeType) BadgeInfo {
	for _, b := range badgeCatalogue {
		if b.Type == t {
			return b
		}
	}
	return BadgeInfo{Type: t, Name: string(t), Emoji: "🏅"}
}

// IsKnownBadge reports whether t is part of the catalogue.
func IsKnownBadge(t BadgeType) bool {
	for _, b := range badgeCatalogue {
		if b.Type == t {
			return true
		}
	}
	return false
}

// Badge is an unlocked achievement. At most one exists per (Owner, Type).
type Badge struct {
	Owner       string    `json:"owner"`
	Type        BadgeType `json:"type"`
	Name        string    `json:"name"`
	Emoji       string    `json:"emoji"`
	Description string    `json:"description"`
	UnlockedAt  time.Time `json:"unlocked_at"`
}

// NewBadge builds a badge for owner from the catalogue entry for t.
func NewBadge(owner string, t BadgeType, unlockedAt time.Time) Badge {
	info := LookupBadge(t)
	return Badge{
		Owner:       owner,
		Type:        t,
		Name:        info.Name,
		Emoji:       info.Emoji,
		Description: info.Description,
		UnlockedAt:  unlockedAt,
	}
}

// BuildBadgeKey creates the uniqueness key for a badge.
// Format: "owner|type"
func BuildBadgeKey(owner string, t BadgeType) string {
	return owner + "|" + string(t)
}
