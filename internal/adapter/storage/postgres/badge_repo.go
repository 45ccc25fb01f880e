package postgres

import (
	"context"
	"fmt"
	"time"

	"bitbuddy/internal/core/domain"
	"bitbuddy/internal/core/ports"
)

// BadgeRepo implements ports.BadgeRepository. The primary key (owner, badge_type)
// enforces one badge per type per owner; display fields come from the catalogue.
type BadgeRepo struct {
	pool Pool
}

// NewBadgeRepo creates a new BadgeRepo.
func NewBadgeRepo(pool Pool) *BadgeRepo {
	return &BadgeRepo{pool: pool}
}

// Insert stores a badge. An existing (owner, type) yields ports.ErrDuplicate.
func (r *BadgeRepo) Insert(ctx context.Context, b *domain.Badge) error {
	query := `INSERT INTO badges (owner, badge_type, unlocked_at) VALUES ($1, $2, $3)
		ON CONFLICT (owner, badge_type) DO NOTHING`

	tag, err := r.pool.Exec(ctx, query, b.Owner, b.Type, b.UnlockedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return ports.ErrDuplicate
		}
		return fmt.Errorf("insert badge: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrDuplicate
	}
	return nil
}

// Exists reports whether owner already holds badgeType.
func (r *BadgeRepo) Exists(ctx context.Context, owner string, badgeType domain.BadgeType) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM badges WHERE owner = $1 AND badge_type = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, owner, badgeType).Scan(&exists); err != nil {
		return false, fmt.Errorf("check badge: %w", err)
	}
	return exists, nil
}

// ListByOwner returns the owner's badges, newest first.
func (r *BadgeRepo) ListByOwner(ctx context.Context, owner string) ([]domain.Badge, error) {
	query := `SELECT badge_type, unlocked_at FROM badges WHERE owner = $1
		ORDER BY unlocked_at DESC`

	rows, err := r.pool.Query(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("list badges: %w", err)
	}
	defer rows.Close()

	var badges []domain.Badge
	for rows.Next() {
		var (
			t  string
			at time.Time
		)
		if err := rows.Scan(&t, &at); err != nil {
			return nil, fmt.Errorf("scan badge: %w", err)
		}
		badges = append(badges, domain.NewBadge(owner, domain.BadgeType(t), at))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate badges: %w", err)
	}
	return badges, nil
}
