package postgres

import (
	"context"
	"testing"
	"time"

	"bitbuddy/internal/core/domain"
	"bitbuddy/internal/core/ports"

	"github.com/google/uuid"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGoal() *domain.SavingsGoal {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &domain.SavingsGoal{
		ID:               uuid.New(),
		Owner:            "bc1qalice",
		Name:             "New bike",
		TargetAmountSats: 1000000,
		Status:           domain.GoalStatusActive,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func goalColumnNames() []string {
	return []string{"id", "owner", "name", "target_amount_sats", "current_amount_sats", "deadline",
		"status", "version", "created_at", "updated_at", "completed_at"}
}

func goalRow(g *domain.SavingsGoal) *pgxmock.Rows {
	return pgxmock.NewRows(goalColumnNames()).AddRow(
		g.ID, g.Owner, g.Name, g.TargetAmountSats, g.CurrentAmountSats, g.Deadline,
		g.Status, g.Version, g.CreatedAt, g.UpdatedAt, g.CompletedAt,
	)
}

func TestSavingsRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSavingsRepo(mock)
	g := newTestGoal()

	mock.ExpectExec("INSERT INTO savings_goals").
		WithArgs(g.ID, g.Owner, g.Name, g.TargetAmountSats, g.CurrentAmountSats, g.Deadline,
			g.Status, g.Version, g.CreatedAt, g.UpdatedAt, g.CompletedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Create(context.Background(), g))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavingsRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSavingsRepo(mock)
	g := newTestGoal()
	g.Version = 4
	g.CurrentAmountSats = 300000

	mock.ExpectQuery("SELECT .+ FROM savings_goals WHERE id").
		WithArgs(g.ID).
		WillReturnRows(goalRow(g))

	got, err := repo.GetByID(context.Background(), g.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(4), got.Version)
	assert.Equal(t, int64(300000), got.CurrentAmountSats)
	assert.Equal(t, domain.GoalStatusActive, got.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavingsRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSavingsRepo(mock)
	mock.ExpectQuery("SELECT .+ FROM savings_goals WHERE id").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(goalColumnNames()))

	got, err := repo.GetByID(context.Background(), uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, got)
}

func TestSavingsRepo_ListByOwner(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSavingsRepo(mock)
	a, b := newTestGoal(), newTestGoal()

	rows := pgxmock.NewRows(goalColumnNames()).
		AddRow(a.ID, a.Owner, a.Name, a.TargetAmountSats, a.CurrentAmountSats, a.Deadline,
			a.Status, a.Version, a.CreatedAt, a.UpdatedAt, a.CompletedAt).
		AddRow(b.ID, b.Owner, b.Name, b.TargetAmountSats, b.CurrentAmountSats, b.Deadline,
			b.Status, b.Version, b.CreatedAt, b.UpdatedAt, b.CompletedAt)
	mock.ExpectQuery("SELECT .+ FROM savings_goals WHERE owner .+ ORDER BY created_at DESC").
		WithArgs("bc1qalice").
		WillReturnRows(rows)

	goals, err := repo.ListByOwner(context.Background(), "bc1qalice")
	require.NoError(t, err)
	assert.Len(t, goals, 2)
	assert.Equal(t, a.ID, goals[0].ID)
}

func TestSavingsRepo_CompareAndSwap(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSavingsRepo(mock)
	g := newTestGoal()
	g.Version = 2
	next, completed := g.WithContribution(1000000, time.Now().UTC().Truncate(time.Microsecond))
	require.True(t, completed)

	mock.ExpectExec("UPDATE savings_goals .+ WHERE id = .+ AND version = ").
		WithArgs(next.CurrentAmountSats, next.Status, int64(3), next.UpdatedAt, next.CompletedAt, g.ID, int64(2)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.CompareAndSwap(context.Background(), &next, g.Version))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSavingsRepo_CompareAndSwap_Conflict(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSavingsRepo(mock)
	g := newTestGoal()
	next, _ := g.WithContribution(10, time.Now())

	mock.ExpectExec("UPDATE savings_goals").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), g.ID, int64(0)).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.CompareAndSwap(context.Background(), &next, 0)
	assert.ErrorIs(t, err, ports.ErrConflict)
}

func TestSavingsRepo_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSavingsRepo(mock)
	id := uuid.New()

	mock.ExpectExec("DELETE FROM savings_goals WHERE id").
		WithArgs(id, int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM savings_goals WHERE id").
		WithArgs(id, int64(1)).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.NoError(t, repo.Delete(context.Background(), id, 1))
	assert.ErrorIs(t, repo.Delete(context.Background(), id, 1), ports.ErrConflict)
	assert.NoError(t, mock.ExpectationsWereMet())
}
