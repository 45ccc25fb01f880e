package domain

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGiftKey(t *testing.T) {
	assert.Equal(t, "bc1qsender|tx-001", BuildGiftKey("bc1qsender", "tx-001"))
}

func TestBuildBadgeKey(t *testing.T) {
	assert.Equal(t, "bc1qowner|first_gift", BuildBadgeKey("bc1qowner", BadgeFirstGift))
}

func TestShortAddress(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"bc1qxy2kgdygjrsqtzq2n0yrf2493p83kkfjhx0wlh", "bc1qxy2k..."},
		{"bc1q", "bc1q"},
		{"12345678", "12345678"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ShortAddress(tt.in))
	}
}

func TestIndexOfAccount(t *testing.T) {
	accounts := []Account{{Address: "a"}, {Address: "b"}}
	assert.Equal(t, 1, IndexOfAccount(accounts, "b"))
	assert.Equal(t, -1, IndexOfAccount(accounts, "c"))
	assert.Equal(t, -1, IndexOfAccount(nil, "a"))
}

func TestSession_CloneIsDeep(t *testing.T) {
	active := Account{Address: "a", PublicKey: []byte{1, 2}}
	s := Session{
		State:         SessionConnected,
		Connected:     true,
		ActiveAccount: &active,
		Accounts:      []Account{active, {Address: "b"}},
	}

	c := s.Clone()
	c.Accounts[0].Address = "mutated"
	c.ActiveAccount.PublicKey[0] = 9

	assert.Equal(t, "a", s.Accounts[0].Address)
	assert.Equal(t, byte(1), s.ActiveAccount.PublicKey[0])
}

func TestSession_IsBusy(t *testing.T) {
	tests := []struct {
		state SessionState
		want  bool
	}{
		{SessionDisconnected, false},
		{SessionConnecting, true},
		{SessionConnected, false},
		{SessionSwitching, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.state), func(t *testing.T) {
			assert.Equal(t, tt.want, Session{State: tt.state}.IsBusy())
		})
	}
}

func TestSavingsGoal_WithContribution(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("below target stays active", func(t *testing.T) {
		g := SavingsGoal{TargetAmountSats: 1000000, Status: GoalStatusActive, Version: 3}
		next, completed := g.WithContribution(300000, now)

		assert.False(t, completed)
		assert.Equal(t, int64(300000), next.CurrentAmountSats)
		assert.Equal(t, GoalStatusActive, next.Status)
		assert.Equal(t, int64(4), next.Version)
		assert.Nil(t, next.CompletedAt)
		assert.Equal(t, int64(0), g.CurrentAmountSats)
	})

	t.Run("reaching target completes", func(t *testing.T) {
		g := SavingsGoal{TargetAmountSats: 1000000, CurrentAmountSats: 300000, Status: GoalStatusActive}
		next, completed := g.WithContribution(700000, now)

		assert.True(t, completed)
		assert.Equal(t, GoalStatusCompleted, next.Status)
		require.NotNil(t, next.CompletedAt)
		assert.Equal(t, now, *next.CompletedAt)
	})

	t.Run("already completed never completes again", func(t *testing.T) {
		done := now.Add(-time.Hour)
		g := SavingsGoal{TargetAmountSats: 100, CurrentAmountSats: 100, Status: GoalStatusCompleted, CompletedAt: &done}
		next, completed := g.WithContribution(50, now)

		assert.False(t, completed)
		assert.Equal(t, int64(150), next.CurrentAmountSats)
		assert.Equal(t, done, *next.CompletedAt)
	})
}

func TestSavingsGoal_Accepts(t *testing.T) {
	g := SavingsGoal{CurrentAmountSats: math.MaxInt64 - 10}

	assert.True(t, g.Accepts(10))
	assert.False(t, g.Accepts(11))
	assert.False(t, g.Accepts(0))
	assert.False(t, g.Accepts(-1))
	assert.False(t, (&SavingsGoal{}).Accepts(MaxSats+1))
	assert.True(t, (&SavingsGoal{}).Accepts(MaxSats))
}

func TestSaturatingAddSats(t *testing.T) {
	assert.Equal(t, int64(30), SaturatingAddSats(10, 20))
	assert.Equal(t, int64(math.MaxInt64), SaturatingAddSats(math.MaxInt64-1, 2))
	assert.Equal(t, int64(math.MaxInt64), SaturatingAddSats(math.MaxInt64, math.MaxInt64))
}

func TestSavingsGoal_ProgressPercent(t *testing.T) {
	assert.InDelta(t, 30.0, (&SavingsGoal{TargetAmountSats: 1000, CurrentAmountSats: 300}).ProgressPercent(), 0.001)
	assert.InDelta(t, 100.0, (&SavingsGoal{TargetAmountSats: 1000, CurrentAmountSats: 3000}).ProgressPercent(), 0.001)
	assert.Zero(t, (&SavingsGoal{}).ProgressPercent())
}

func TestLookupBadge(t *testing.T) {
	info := LookupBadge(BadgeSavingsMaster)
	assert.Equal(t, "Savings Master", info.Name)
	assert.Equal(t, "💰", info.Emoji)

	unknown := LookupBadge(BadgeType("night_owl"))
	assert.Equal(t, "night_owl", unknown.Name)
	assert.Equal(t, "🏅", unknown.Emoji)
	assert.False(t, IsKnownBadge("night_owl"))
	assert.True(t, IsKnownBadge(BadgeBridgeExplorer))
}

func TestBadgeCatalogue_ReturnsCopy(t *testing.T) {
	c := BadgeCatalogue()
	require.Len(t, c, 6)
	c[0].Name = "changed"
	assert.Equal(t, "First Gift", BadgeCatalogue()[0].Name)
}

func TestNewBadge(t *testing.T) {
	at := time.Now()
	b := NewBadge("owner", BadgeFirstGift, at)
	assert.Equal(t, "owner", b.Owner)
	assert.Equal(t, "🎁", b.Emoji)
	assert.Equal(t, "Sent your first BTC gift!", b.Description)
	assert.Equal(t, at, b.UnlockedAt)
}

func TestClampFeedLimit(t *testing.T) {
	assert.Equal(t, DefaultFeedLimit, ClampFeedLimit(0))
	assert.Equal(t, DefaultFeedLimit, ClampFeedLimit(-3))
	assert.Equal(t, 7, ClampFeedLimit(7))
	assert.Equal(t, MaxFeedLimit, ClampFeedLimit(1000))
}

func TestSortFeedNewestFirst_BreaksTiesBySeq(t *testing.T) {
	t0 := time.Unix(1000, 0)
	entries := []FeedEntry{
		{Seq: 1, Timestamp: t0},
		{Seq: 3, Timestamp: t0.Add(-time.Second)},
		{Seq: 2, Timestamp: t0},
	}

	SortFeedNewestFirst(entries)

	assert.Equal(t, []int64{2, 1, 3}, []int64{entries[0].Seq, entries[1].Seq, entries[2].Seq})
}

func TestUserStats_Touch(t *testing.T) {
	var s UserStats
	t1 := time.Unix(100, 0)
	t2 := time.Unix(200, 0)

	s.Touch(time.Time{})
	assert.Nil(t, s.LastActivity)

	s.Touch(t2)
	s.Touch(t1)
	require.NotNil(t, s.LastActivity)
	assert.Equal(t, t2, *s.LastActivity)
}

func TestStatusConstants(t *testing.T) {
	assert.Equal(t, GoalStatus("active"), GoalStatusActive)
	assert.Equal(t, GoalStatus("completed"), GoalStatusCompleted)
	assert.Equal(t, FeedAction("gift_sent"), FeedGiftSent)
	assert.Equal(t, SessionState("switching"), SessionSwitching)
}
