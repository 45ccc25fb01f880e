package redis

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"bitbuddy/internal/core/domain"
	"bitbuddy/internal/core/ports"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// DefaultFeedMaxLen caps the feed stream length.
const DefaultFeedMaxLen = 10000

const (
	feedStreamKey = "feed:social"
	feedSeqKey    = "feed:social:seq"
)

// FeedStream implements ports.FeedRepository on a Redis stream.
// Entries are ordered by stream ID and their Timestamp is the time Redis
// accepted them, so newest-first by time and by insertion agree. A companion
// counter assigns Seq.
type FeedStream struct {
	client *goredis.Client
	stream string
	seqKey string
	maxLen int64
}

var _ ports.FeedRepository = (*FeedStream)(nil)

// NewFeedStream creates a feed stream keeping at most maxLen entries.
func NewFeedStream(client *goredis.Client, maxLen int64) *FeedStream {
	if maxLen <= 0 {
		maxLen = DefaultFeedMaxLen
	}
	return &FeedStream{
		client: client,
		stream: feedStreamKey,
		seqKey: feedSeqKey,
		maxLen: maxLen,
	}
}

// Append adds the entry to the stream and sets its Seq and Timestamp.
func (f *FeedStream) Append(ctx context.Context, e *domain.FeedEntry) error {
	seq, err := f.client.Incr(ctx, f.seqKey).Result()
	if err != nil {
		return fmt.Errorf("redis feed seq: %w", err)
	}

	id, err := f.client.XAdd(ctx, &goredis.XAddArgs{
		Stream: f.stream,
		MaxLen: f.maxLen,
		Values: map[string]any{
			"id":      e.ID.String(),
			"seq":     seq,
			"user":    e.User,
			"action":  string(e.Action),
			"message": e.Message,
			"emoji":   e.Emoji,
		},
	}).Result()
	if err != nil {
		return fmt.Errorf("redis feed xadd: %w", err)
	}
	at, err := streamIDTime(id)
	if err != nil {
		return fmt.Errorf("redis feed xadd: %w", err)
	}
	e.Seq = seq
	e.Timestamp = at
	return nil
}

// Recent returns up to limit of the latest entries, newest first.
func (f *FeedStream) Recent(ctx context.Context, limit int) ([]domain.FeedEntry, error) {
	msgs, err := f.client.XRevRangeN(ctx, f.stream, "+", "-", int64(limit)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis feed xrevrange: %w", err)
	}

	entries := make([]domain.FeedEntry, 0, len(msgs))
	for _, m := range msgs {
		e, err := decodeFeedEntry(m.ID, m.Values)
		if err != nil {
			return nil, fmt.Errorf("decode feed entry %s: %w", m.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// streamIDTime returns the millisecond time part of a stream ID like "1714557600000-0".
func streamIDTime(id string) (time.Time, error) {
	ms, _, _ := strings.Cut(id, "-")
	n, err := strconv.ParseInt(ms, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("stream id %q: %w", id, err)
	}
	return time.UnixMilli(n).UTC(), nil
}

func decodeFeedEntry(streamID string, v map[string]any) (domain.FeedEntry, error) {
	str := func(k string) string {
		s, _ := v[k].(string)
		return s
	}

	id, err := uuid.Parse(str("id"))
	if err != nil {
		return domain.FeedEntry{}, fmt.Errorf("id: %w", err)
	}
	seq, err := strconv.ParseInt(str("seq"), 10, 64)
	if err != nil {
		return domain.FeedEntry{}, fmt.Errorf("seq: %w", err)
	}
	ts, err := streamIDTime(streamID)
	if err != nil {
		return domain.FeedEntry{}, err
	}

	return domain.FeedEntry{
		ID:        id,
		Seq:       seq,
		User:      str("user"),
		Action:    domain.FeedAction(str("action")),
		Message:   str("message"),
		Emoji:     str("emoji"),
		Timestamp: ts,
	}, nil
}
