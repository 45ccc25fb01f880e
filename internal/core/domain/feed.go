package domain

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// FeedAction is the kind of event shown in the social feed.
type FeedAction string

const (
	FeedGiftSent         FeedAction = "gift_sent"
	FeedGoalCompleted    FeedAction = "goal_completed"
	FeedBadgeUnlocked    FeedAction = "badge_unlocked"
	FeedBridgeCompleted  FeedAction = "bridge_completed"
	FeedGoalCreated      FeedAction = "goal_created"
	FeedContributionMade FeedAction = "contribution_made"
)

// Feed listing limits.
const (
	DefaultFeedLimit = 20
	MaxFeedLimit     = 100
)

// FeedEntry is an append-only social feed item.
// Seq is assigned by the store and breaks timestamp ties.
type FeedEntry struct {
	ID        uuid.UUID  `json:"id"`
	Seq       int64      `json:"seq"`
	User      string     `json:"user"`
	Action    FeedAction `json:"action"`
	Message   string     `json:"message"`
	Emoji     string     `json:"emoji,omitempty"`
	Timestamp time.Time  `json:"timestamp"`
}

// ClampFeedLimit maps non-positive limits to the default and caps the maximum.
func ClampFeedLimit(limit int) int {
	if limit <= 0 {
		return DefaultFeedLimit
	}
	if limit > MaxFeedLimit {
		return MaxFeedLimit
	}
	return limit
}

// SortFeedNewestFirst orders entries by timestamp then sequence, both descending.
func SortFeedNewestFirst(entries []FeedEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Timestamp.Equal(entries[j].Timestamp) {
			return entries[i].Timestamp.After(entries[j].Timestamp)
		}
		return entries[i].Seq > entries[j].Seq
	})
}
