package postgres

import (
	"context"
	"fmt"
	"time"

	"bitbuddy/internal/core/domain"
	"bitbuddy/internal/core/ports"
)

// GiftRepo implements ports.GiftRepository.
type GiftRepo struct {
	pool Pool
}

// NewGiftRepo creates a new GiftRepo.
func NewGiftRepo(pool Pool) *GiftRepo {
	return &GiftRepo{pool: pool}
}

// Append inserts a gift. An existing gift key yields ports.ErrDuplicate.
func (r *GiftRepo) Append(ctx context.Context, g *domain.Gift) error {
	query := `INSERT INTO gifts (id, sender, recipient, amount_sats, message, tx_ref, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query,
		g.ID, g.Sender, g.Recipient, g.AmountSats, g.Message, g.TxRef, g.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ports.ErrDuplicate
		}
		return fmt.Errorf("insert gift: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrDuplicate
	}
	return nil
}

// SummarizeBySender counts and totals the sender's gifts.
func (r *GiftRepo) SummarizeBySender(ctx context.Context, sender string) (ports.GiftSummary, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(amount_sats), 0), MAX(created_at)
		FROM gifts WHERE sender = $1`

	var (
		s      ports.GiftSummary
		lastAt *time.Time
	)
	if err := r.pool.QueryRow(ctx, query, sender).Scan(&s.Count, &s.TotalSats, &lastAt); err != nil {
		return ports.GiftSummary{}, fmt.Errorf("summarize gifts: %w", err)
	}
	s.LastAt = lastAt
	return s, nil
}

// ListBySender returns the sender's gifts, newest first.
func (r *GiftRepo) ListBySender(ctx context.Context, sender string) ([]domain.Gift, error) {
	query := `SELECT id, sender, recipient, amount_sats, message, tx_ref, created_at
		FROM gifts WHERE sender = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, sender)
	if err != nil {
		return nil, fmt.Errorf("list gifts: %w", err)
	}
	defer rows.Close()

	var gifts []domain.Gift
	for rows.Next() {
		var g domain.Gift
		if err := rows.Scan(&g.ID, &g.Sender, &g.Recipient, &g.AmountSats, &g.Message, &g.TxRef, &g.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan gift: %w", err)
		}
		gifts = append(gifts, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate gifts: %w", err)
	}
	return gifts, nil
}
