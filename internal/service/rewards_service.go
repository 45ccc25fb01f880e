package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"bitbuddy/internal/core/domain"
	"bitbuddy/internal/core/ports"
	"bitbuddy/internal/metrics"
	"bitbuddy/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultContributionRetries is the conditional write budget for one contribution.
const DefaultContributionRetries = 5

const defaultProcessedEventTTL = 24 * time.Hour

// RewardsConfig tunes the rewards engine.
type RewardsConfig struct {
	ContributionRetries int
	ProcessedEventTTL   time.Duration
}

// RewardsServiceImpl implements ports.RewardsService.
type RewardsServiceImpl struct {
	gifts   ports.GiftRepository
	savings ports.SavingsRepository
	badges  ports.BadgeRepository
	feed    ports.FeedRepository
	pub     ports.FeedPublisher
	events  ports.ProcessedEventCache // optional
	cfg     RewardsConfig
	now     func() time.Time
	log     zerolog.Logger
}

var _ ports.RewardsService = (*RewardsServiceImpl)(nil)

// NewRewardsService creates a new RewardsServiceImpl. events may be nil.
func NewRewardsService(
	store ports.ActivityStore,
	pub ports.FeedPublisher,
	events ports.ProcessedEventCache,
	cfg RewardsConfig,
	log zerolog.Logger,
) *RewardsServiceImpl {
	if cfg.ContributionRetries < 1 {
		cfg.ContributionRetries = DefaultContributionRetries
	}
	if cfg.ProcessedEventTTL <= 0 {
		cfg.ProcessedEventTTL = defaultProcessedEventTTL
	}
	return &RewardsServiceImpl{
		gifts:   store.Gifts,
		savings: store.Savings,
		badges:  store.Badges,
		feed:    store.Feed,
		pub:     pub,
		events:  events,
		cfg:     cfg,
		now:     func() time.Time { return time.Now().UTC() },
		log:     log,
	}
}

// RecordGift stores a GiftRecorded event and evaluates gift-count badges.
// Redelivery of the same (sender, tx_ref) is absorbed by the gift key.
func (s *RewardsServiceImpl) RecordGift(ctx context.Context, in ports.GiftInput) (*ports.GiftResult, error) {
	if err := validateGift(in); err != nil {
		return nil, err
	}

	at := in.At
	if at.IsZero() {
		at = s.now()
	}
	gift := domain.Gift{
		ID:         domain.BuildGiftKey(in.Sender, in.TxRef),
		Sender:     in.Sender,
		Recipient:  in.Recipient,
		AmountSats: in.AmountSats,
		Message:    in.Message,
		TxRef:      in.TxRef,
		CreatedAt:  at,
	}
	eventKey := "gift:" + gift.ID

	// Layer 1: processed-event cache
	if s.events != nil {
		seen, err := s.events.Seen(ctx, eventKey)
		if err != nil {
			s.log.Warn().Err(err).Str("key", eventKey).Msg("processed-event check failed, falling through to store")
		}
		if seen {
			metrics.GiftsRecorded.WithLabelValues("cached").Inc()
			return &ports.GiftResult{Gift: gift, Created: false}, nil
		}
	}

	// Layer 2: store key
	created := true
	if err := s.gifts.Append(ctx, &gift); err != nil {
		if !errors.Is(err, ports.ErrDuplicate) {
			s.log.Error().Err(err).Str("owner", in.Sender).Msg("append gift failed")
			return nil, apperror.ErrStoreUnavailable(fmt.Errorf("append gift: %w", err))
		}
		created = false
	}

	if created {
		metrics.GiftsRecorded.WithLabelValues("created").Inc()
		s.pub.Publish(ctx, domain.FeedEntry{
			User:      gift.Sender,
			Action:    domain.FeedGiftSent,
			Message:   fmt.Sprintf("Sent %d sats to %s", gift.AmountSats, domain.ShortAddress(gift.Recipient)),
			Emoji:     "🎁",
			Timestamp: at,
		})
	} else {
		metrics.GiftsRecorded.WithLabelValues("duplicate").Inc()
	}

	// Badges are evaluated for duplicates too, so a crash between append and unlock heals on redelivery.
	unlocked, err := s.evaluateGiftBadges(ctx, gift.Sender)
	if err != nil {
		return nil, err
	}

	if s.events != nil {
		if err := s.events.MarkProcessed(ctx, eventKey, s.cfg.ProcessedEventTTL); err != nil {
			s.log.Warn().Err(err).Str("key", eventKey).Msg("failed to mark event processed")
		}
	}

	if created {
		s.log.Info().Str("owner", gift.Sender).Str("gift_id", gift.ID).Int64("amount_sats", gift.AmountSats).Msg("gift recorded")
	}
	return &ports.GiftResult{Gift: gift, Created: created, Unlocked: unlocked}, nil
}

func validateGift(in ports.GiftInput) error {
	switch {
	case strings.TrimSpace(in.Sender) == "":
		return apperror.Validation("Sender address is required")
	case strings.TrimSpace(in.Recipient) == "":
		return apperror.Validation("Recipient address is required")
	case in.AmountSats <= 0 || in.AmountSats > domain.MaxSats:
		return apperror.ErrInvalidAmount()
	case utf8.RuneCountInString(in.Message) > domain.MaxMessageLength:
		return apperror.Validation(fmt.Sprintf("Message exceeds %d characters", domain.MaxMessageLength))
	case strings.TrimSpace(in.TxRef) == "":
		return apperror.Validation("Transaction reference is required")
	}
	return nil
}

// giftBadgesFor returns the badges a sender with count gifts qualifies for.
func giftBadgesFor(count int64) []domain.BadgeType {
	var out []domain.BadgeType
	if count >= domain.FirstGiftThreshold {
		out = append(out, domain.BadgeFirstGift)
	}
	if count >= domain.GenerousGiverThreshold {
		out = append(out, domain.BadgeGenerousGiver)
	}
	return out
}

func (s *RewardsServiceImpl) evaluateGiftBadges(ctx context.Context, sender string) ([]domain.BadgeType, error) {
	summary, err := s.gifts.SummarizeBySender(ctx, sender)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("count gifts: %w", err))
	}

	var unlocked []domain.BadgeType
	for _, t := range giftBadgesFor(summary.Count) {
		ok, err := s.UnlockBadge(ctx, sender, t)
		if err != nil {
			return unlocked, err
		}
		if ok {
			unlocked = append(unlocked, t)
		}
	}
	return unlocked, nil
}

// UnlockBadge grants badgeType to owner once. It reports whether this call unlocked it.
func (s *RewardsServiceImpl) UnlockBadge(ctx context.Context, owner string, badgeType domain.BadgeType) (bool, error) {
	if strings.TrimSpace(owner) == "" {
		return false, apperror.Validation("Owner address is required")
	}
	if badgeType == "" {
		return false, apperror.Validation("Badge type is required")
	}

	// The existence check is a hint; the unique key decides.
	exists, err := s.badges.Exists(ctx, owner, badgeType)
	if err != nil {
		return false, apperror.ErrStoreUnavailable(fmt.Errorf("check badge: %w", err))
	}
	if exists {
		return false, nil
	}

	badge := domain.NewBadge(owner, badgeType, s.now())
	if err := s.badges.Insert(ctx, &badge); err != nil {
		if errors.Is(err, ports.ErrDuplicate) {
			return false, nil
		}
		s.log.Error().Err(err).Str("owner", owner).Str("badge", string(badgeType)).Msg("insert badge failed")
		return false, apperror.ErrStoreUnavailable(fmt.Errorf("insert badge: %w", err))
	}

	metrics.BadgesUnlocked.WithLabelValues(string(badgeType)).Inc()
	s.pub.Publish(ctx, domain.FeedEntry{
		User:      owner,
		Action:    domain.FeedBadgeUnlocked,
		Message:   fmt.Sprintf("Unlocked the %s badge!", badge.Name),
		Emoji:     badge.Emoji,
		Timestamp: badge.UnlockedAt,
	})
	s.log.Info().Str("owner", owner).Str("badge", string(badgeType)).Msg("badge unlocked")
	return true, nil
}

// Contribute adds amountSats to a goal with version-conditional writes.
// The write that crosses the target also completes the goal, so exactly one
// contribution observes CompletedNow.
func (s *RewardsServiceImpl) Contribute(ctx context.Context, goalID uuid.UUID, amountSats int64) (*ports.ContributionResult, error) {
	if amountSats <= 0 || amountSats > domain.MaxSats {
		return nil, apperror.ErrInvalidAmount()
	}

	var (
		next         domain.SavingsGoal
		completedNow bool
		attempt      int
		applied      bool
	)
	for attempt = 1; attempt <= s.cfg.ContributionRetries; attempt++ {
		goal, err := s.savings.GetByID(ctx, goalID)
		if err != nil {
			return nil, apperror.ErrStoreUnavailable(fmt.Errorf("get goal: %w", err))
		}
		if goal == nil {
			return nil, apperror.ErrNotFound("Savings goal")
		}
		if !goal.Accepts(amountSats) {
			return nil, apperror.ErrInvalidAmount()
		}

		next, completedNow = goal.WithContribution(amountSats, s.now())
		err = s.savings.CompareAndSwap(ctx, &next, goal.Version)
		if errors.Is(err, ports.ErrConflict) {
			metrics.ContributionConflicts.Inc()
			s.log.Debug().Str("goal_id", goalID.String()).Int("attempt", attempt).Msg("goal version conflict, retrying")
			continue
		}
		if err != nil {
			s.log.Error().Err(err).Str("goal_id", goalID.String()).Msg("update goal failed")
			return nil, apperror.ErrStoreUnavailable(fmt.Errorf("update goal: %w", err))
		}
		applied = true
		break
	}
	if !applied {
		s.log.Warn().Str("goal_id", goalID.String()).Int("attempt", s.cfg.ContributionRetries).Msg("contribution retry budget exhausted")
		return nil, apperror.ErrContentionExceeded(s.cfg.ContributionRetries)
	}

	result := &ports.ContributionResult{Goal: next, CompletedNow: completedNow, Attempts: attempt}

	s.pub.Publish(ctx, domain.FeedEntry{
		User:      next.Owner,
		Action:    domain.FeedContributionMade,
		Message:   fmt.Sprintf("Saved %d sats toward %s", amountSats, next.Name),
		Emoji:     "🐷",
		Timestamp: next.UpdatedAt,
	})
	if completedNow {
		metrics.GoalsCompleted.Inc()
		s.pub.Publish(ctx, domain.FeedEntry{
			User:      next.Owner,
			Action:    domain.FeedGoalCompleted,
			Message:   fmt.Sprintf("Completed savings goal %s!", next.Name),
			Emoji:     "🎯",
			Timestamp: next.UpdatedAt,
		})
		s.log.Info().Str("owner", next.Owner).Str("goal_id", goalID.String()).Msg("savings goal completed")
	}

	// Re-checked on every contribution to a completed goal so a missed unlock heals.
	if next.IsCompleted() {
		ok, err := s.UnlockBadge(ctx, next.Owner, domain.BadgeSavingsMaster)
		if err != nil {
			s.log.Error().Err(err).Str("owner", next.Owner).Str("goal_id", goalID.String()).
				Msg("savings_master unlock failed, reconcile will retry")
		} else if ok {
			result.Unlocked = append(result.Unlocked, domain.BadgeSavingsMaster)
		}
	}

	return result, nil
}

// ReconcileBadges re-runs the threshold rules from store facts and unlocks anything missing.
func (s *RewardsServiceImpl) ReconcileBadges(ctx context.Context, owner string) ([]domain.BadgeType, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, apperror.Validation("Owner address is required")
	}

	unlocked, err := s.evaluateGiftBadges(ctx, owner)
	if err != nil {
		return unlocked, err
	}

	goals, err := s.savings.ListByOwner(ctx, owner)
	if err != nil {
		return unlocked, apperror.ErrStoreUnavailable(fmt.Errorf("list goals: %w", err))
	}
	for i := range goals {
		if !goals[i].IsCompleted() {
			continue
		}
		ok, err := s.UnlockBadge(ctx, owner, domain.BadgeSavingsMaster)
		if err != nil {
			return unlocked, err
		}
		if ok {
			unlocked = append(unlocked, domain.BadgeSavingsMaster)
		}
		break
	}

	if len(unlocked) > 0 {
		s.log.Info().Str("owner", owner).Int("unlocked", len(unlocked)).Msg("badges reconciled")
	}
	return unlocked, nil
}

// GetStats aggregates the owner's gifts, goals and badges.
func (s *RewardsServiceImpl) GetStats(ctx context.Context, owner string) (*domain.UserStats, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, apperror.Validation("Owner address is required")
	}

	summary, err := s.gifts.SummarizeBySender(ctx, owner)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("summarize gifts: %w", err))
	}
	goals, err := s.savings.ListByOwner(ctx, owner)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("list goals: %w", err))
	}
	badges, err := s.badges.ListByOwner(ctx, owner)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("list badges: %w", err))
	}

	stats := &domain.UserStats{
		TotalGiftsSent:  summary.Count,
		TotalSatsGifted: summary.TotalSats,
		TotalBadges:     int64(len(badges)),
	}
	if summary.LastAt != nil {
		stats.Touch(*summary.LastAt)
	}
	for i := range goals {
		g := &goals[i]
		if g.IsCompleted() {
			stats.CompletedSavingsGoals++
		} else {
			stats.ActiveSavingsGoals++
		}
		stats.TotalSavedSats = domain.SaturatingAddSats(stats.TotalSavedSats, g.CurrentAmountSats)
		stats.Touch(g.CreatedAt)
		stats.Touch(g.UpdatedAt)
	}
	for i := range badges {
		stats.Touch(badges[i].UnlockedAt)
	}
	return stats, nil
}

// CreateGoal starts a new active savings goal.
func (s *RewardsServiceImpl) CreateGoal(ctx context.Context, in ports.CreateGoalInput) (*domain.SavingsGoal, error) {
	name := strings.TrimSpace(in.Name)
	switch {
	case strings.TrimSpace(in.Owner) == "":
		return nil, apperror.Validation("Owner address is required")
	case name == "":
		return nil, apperror.Validation("Goal name is required")
	case utf8.RuneCountInString(name) > domain.MaxGoalNameLength:
		return nil, apperror.Validation(fmt.Sprintf("Goal name exceeds %d characters", domain.MaxGoalNameLength))
	case in.TargetAmountSats <= 0 || in.TargetAmountSats > domain.MaxSats:
		return nil, apperror.ErrInvalidAmount()
	}

	now := s.now()
	goal := &domain.SavingsGoal{
		ID:               uuid.New(),
		Owner:            in.Owner,
		Name:             name,
		TargetAmountSats: in.TargetAmountSats,
		Deadline:         in.Deadline,
		Status:           domain.GoalStatusActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.savings.Create(ctx, goal); err != nil {
		s.log.Error().Err(err).Str("owner", in.Owner).Msg("create goal failed")
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("create goal: %w", err))
	}

	s.pub.Publish(ctx, domain.FeedEntry{
		User:      goal.Owner,
		Action:    domain.FeedGoalCreated,
		Message:   fmt.Sprintf("Started saving for %s", goal.Name),
		Emoji:     "💰",
		Timestamp: now,
	})
	s.log.Info().Str("owner", goal.Owner).Str("goal_id", goal.ID.String()).Msg("savings goal created")
	return goal, nil
}

// ListGoals returns the owner's goals, newest first.
func (s *RewardsServiceImpl) ListGoals(ctx context.Context, owner string) ([]domain.SavingsGoal, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, apperror.Validation("Owner address is required")
	}
	goals, err := s.savings.ListByOwner(ctx, owner)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("list goals: %w", err))
	}
	return goals, nil
}

// DeleteGoal removes an active goal. Completed goals are kept as history.
func (s *RewardsServiceImpl) DeleteGoal(ctx context.Context, id uuid.UUID, owner string) error {
	for attempt := 1; attempt <= s.cfg.ContributionRetries; attempt++ {
		goal, err := s.savings.GetByID(ctx, id)
		if err != nil {
			return apperror.ErrStoreUnavailable(fmt.Errorf("get goal: %w", err))
		}
		if goal == nil || goal.Owner != owner {
			return apperror.ErrNotFound("Savings goal")
		}
		if goal.IsCompleted() {
			return apperror.ErrGoalNotDeletable()
		}

		err = s.savings.Delete(ctx, id, goal.Version)
		if errors.Is(err, ports.ErrConflict) {
			continue
		}
		if err != nil {
			return apperror.ErrStoreUnavailable(fmt.Errorf("delete goal: %w", err))
		}
		s.log.Info().Str("owner", owner).Str("goal_id", id.String()).Msg("savings goal deleted")
		return nil
	}
	return apperror.ErrContentionExceeded(s.cfg.ContributionRetries)
}

// ListGifts returns gifts sent by owner, newest first.
func (s *RewardsServiceImpl) ListGifts(ctx context.Context, owner string) ([]domain.Gift, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, apperror.Validation("Owner address is required")
	}
	gifts, err := s.gifts.ListBySender(ctx, owner)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("list gifts: %w", err))
	}
	return gifts, nil
}

// ListBadges returns the owner's badges, newest first.
func (s *RewardsServiceImpl) ListBadges(ctx context.Context, owner string) ([]domain.Badge, error) {
	if strings.TrimSpace(owner) == "" {
		return nil, apperror.Validation("Owner address is required")
	}
	badges, err := s.badges.ListByOwner(ctx, owner)
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("list badges: %w", err))
	}
	return badges, nil
}

// GetFeed returns the most recent feed entries. limit is clamped to [1, 100], default 20.
func (s *RewardsServiceImpl) GetFeed(ctx context.Context, limit int) ([]domain.FeedEntry, error) {
	entries, err := s.feed.Recent(ctx, domain.ClampFeedLimit(limit))
	if err != nil {
		return nil, apperror.ErrStoreUnavailable(fmt.Errorf("read feed: %w", err))
	}
	return entries, nil
}
