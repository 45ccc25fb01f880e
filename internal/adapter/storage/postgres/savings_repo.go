package postgres

import (
	"context"
	"errors"
	"fmt"

	"bitbuddy/internal/core/domain"
	"bitbuddy/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const goalColumns = `id, owner, name, target_amount_sats, current_amount_sats, deadline,
	status, version, created_at, updated_at, completed_at`

// SavingsRepo implements ports.SavingsRepository with version-conditional writes.
type SavingsRepo struct {
	pool Pool
}

// NewSavingsRepo creates a new SavingsRepo.
func NewSavingsRepo(pool Pool) *SavingsRepo {
	return &SavingsRepo{pool: pool}
}

// Create inserts a new goal.
func (r *SavingsRepo) Create(ctx context.Context, g *domain.SavingsGoal) error {
	query := `INSERT INTO savings_goals (` + goalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := r.pool.Exec(ctx, query,
		g.ID, g.Owner, g.Name, g.TargetAmountSats, g.CurrentAmountSats, g.Deadline,
		g.Status, g.Version, g.CreatedAt, g.UpdatedAt, g.CompletedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ports.ErrDuplicate
		}
		return fmt.Errorf("insert savings goal: %w", err)
	}
	return nil
}

// GetByID fetches a goal. A missing goal returns (nil, nil).
func (r *SavingsRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SavingsGoal, error) {
	query := `SELECT ` + goalColumns + ` FROM savings_goals WHERE id = $1`

	g, err := scanGoal(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get savings goal: %w", err)
	}
	return g, nil
}

// ListByOwner returns the owner's goals, newest first.
func (r *SavingsRepo) ListByOwner(ctx context.Context, owner string) ([]domain.SavingsGoal, error) {
	query := `SELECT ` + goalColumns + ` FROM savings_goals WHERE owner = $1
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, owner)
	if err != nil {
		return nil, fmt.Errorf("list savings goals: %w", err)
	}
	defer rows.Close()

	var goals []domain.SavingsGoal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, fmt.Errorf("scan savings goal: %w", err)
		}
		goals = append(goals, *g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate savings goals: %w", err)
	}
	return goals, nil
}

// CompareAndSwap writes next only when the stored version equals expectedVersion.
func (r *SavingsRepo) CompareAndSwap(ctx context.Context, next *domain.SavingsGoal, expectedVersion int64) error {
	query := `UPDATE savings_goals
		SET current_amount_sats = $1, status = $2, version = $3, updated_at = $4, completed_at = $5
		WHERE id = $6 AND version = $7`

	tag, err := r.pool.Exec(ctx, query,
		next.CurrentAmountSats, next.Status, next.Version, next.UpdatedAt, next.CompletedAt,
		next.ID, expectedVersion,
	)
	if err != nil {
		return fmt.Errorf("update savings goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrConflict
	}
	return nil
}

// Delete removes a goal when the stored version equals expectedVersion.
func (r *SavingsRepo) Delete(ctx context.Context, id uuid.UUID, expectedVersion int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM savings_goals WHERE id = $1 AND version = $2`, id, expectedVersion)
	if err != nil {
		return fmt.Errorf("delete savings goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrConflict
	}
	return nil
}

func scanGoal(row pgx.Row) (*domain.SavingsGoal, error) {
	g := &domain.SavingsGoal{}
	err := row.Scan(
		&g.ID, &g.Owner, &g.Name, &g.TargetAmountSats, &g.CurrentAmountSats, &g.Deadline,
		&g.Status, &g.Version, &g.CreatedAt, &g.UpdatedAt, &g.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return g, nil
}
