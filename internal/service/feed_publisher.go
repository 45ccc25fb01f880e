package service

import (
	"context"
	"time"

	"bitbuddy/internal/core/domain"
	"bitbuddy/internal/core/ports"
	"bitbuddy/internal/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// FeedPublisherImpl implements ports.FeedPublisher.
type FeedPublisherImpl struct {
	repo ports.FeedRepository
	now  func() time.Time
	log  zerolog.Logger
}

var _ ports.FeedPublisher = (*FeedPublisherImpl)(nil)

// NewFeedPublisher creates a new FeedPublisherImpl.
func NewFeedPublisher(repo ports.FeedRepository, log zerolog.Logger) *FeedPublisherImpl {
	return &FeedPublisherImpl{
		repo: repo,
		now:  func() time.Time { return time.Now().UTC() },
		log:  log,
	}
}

// Publish appends entry to the feed. Failures are logged and dropped.
func (p *FeedPublisherImpl) Publish(ctx context.Context, entry domain.FeedEntry) {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = p.now()
	}

	if err := p.repo.Append(ctx, &entry); err != nil {
		metrics.FeedPublishFailures.Inc()
		p.log.Warn().Err(err).
			Str("user", entry.User).
			Str("action", string(entry.Action)).
			Msg("feed publish failed")
	}
}
