// Package memory implements the activity store protocol in process memory.
// It backs the default "memory" store driver and the concurrency tests.
package memory

import (
	"bitbuddy/internal/core/ports"
)

// NewActivityStore returns empty in-memory collections.
func NewActivityStore() ports.ActivityStore {
	return ports.ActivityStore{
		Gifts:   NewGiftRepo(),
		Savings: NewSavingsRepo(),
		Badges:  NewBadgeRepo(),
		Feed:    NewFeedRepo(),
	}
}
