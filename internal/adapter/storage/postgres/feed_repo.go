package postgres

import (
	"context"
	"fmt"

	"bitbuddy/internal/core/domain"
)

// FeedRepo implements ports.FeedRepository on an append-only table.
type FeedRepo struct {
	pool Pool
}

// NewFeedRepo creates a new FeedRepo.
func NewFeedRepo(pool Pool) *FeedRepo {
	return &FeedRepo{pool: pool}
}

// Append inserts an entry and sets its store-assigned sequence.
func (r *FeedRepo) Append(ctx context.Context, e *domain.FeedEntry) error {
	query := `INSERT INTO social_feed (id, user_addr, action, message, emoji, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING seq`

	if err := r.pool.QueryRow(ctx, query,
		e.ID, e.User, e.Action, e.Message, e.Emoji, e.Timestamp,
	).Scan(&e.Seq); err != nil {
		return fmt.Errorf("insert feed entry: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first.
func (r *FeedRepo) Recent(ctx context.Context, limit int) ([]domain.FeedEntry, error) {
	query := `SELECT seq, id, user_addr, action, message, emoji, created_at
		FROM social_feed
		ORDER BY created_at DESC, seq DESC
		LIMIT $1`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("read feed: %w", err)
	}
	defer rows.Close()

	var entries []domain.FeedEntry
	for rows.Next() {
		var e domain.FeedEntry
		if err := rows.Scan(&e.Seq, &e.ID, &e.User, &e.Action, &e.Message, &e.Emoji, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan feed entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feed: %w", err)
	}
	return entries, nil
}
