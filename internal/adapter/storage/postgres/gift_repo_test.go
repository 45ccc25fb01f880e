package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"bitbuddy/internal/core/domain"
	"bitbuddy/internal/core/ports"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGift() *domain.Gift {
	return &domain.Gift{
		ID:         domain.BuildGiftKey("bc1qalice", "tx-1"),
		Sender:     "bc1qalice",
		Recipient:  "bc1qbob",
		AmountSats: 500000,
		Message:    "gm",
		TxRef:      "tx-1",
		CreatedAt:  time.Now().UTC().Truncate(time.Microsecond),
	}
}

func giftArgs(g *domain.Gift) []any {
	return []any{g.ID, g.Sender, g.Recipient, g.AmountSats, g.Message, g.TxRef, g.CreatedAt}
}

func TestGiftRepo_Append(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGiftRepo(mock)
	g := newTestGift()

	mock.ExpectExec("INSERT INTO gifts").
		WithArgs(giftArgs(g)...).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	assert.NoError(t, repo.Append(context.Background(), g))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGiftRepo_Append_Duplicate(t *testing.T) {
	tests := []struct {
		name   string
		expect func(*pgxmock.ExpectedExec)
	}{
		{"on conflict no rows", func(e *pgxmock.ExpectedExec) {
			e.WillReturnResult(pgxmock.NewResult("INSERT", 0))
		}},
		{"unique violation", func(e *pgxmock.ExpectedExec) {
			e.WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock, err := pgxmock.NewPool()
			require.NoError(t, err)
			defer mock.Close()

			repo := NewGiftRepo(mock)
			g := newTestGift()
			tt.expect(mock.ExpectExec("INSERT INTO gifts").WithArgs(giftArgs(g)...))

			err = repo.Append(context.Background(), g)
			assert.ErrorIs(t, err, ports.ErrDuplicate)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGiftRepo_Append_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGiftRepo(mock)
	g := newTestGift()
	mock.ExpectExec("INSERT INTO gifts").WithArgs(giftArgs(g)...).WillReturnError(errors.New("conn reset"))

	err = repo.Append(context.Background(), g)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ports.ErrDuplicate)
}

func TestGiftRepo_SummarizeBySender(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGiftRepo(mock)
	last := time.Now().UTC().Truncate(time.Microsecond)

	mock.ExpectQuery("SELECT COUNT.+ FROM gifts WHERE sender").
		WithArgs("bc1qalice").
		WillReturnRows(pgxmock.NewRows([]string{"count", "sum", "max"}).AddRow(int64(3), int64(1500), &last))

	s, err := repo.SummarizeBySender(context.Background(), "bc1qalice")
	require.NoError(t, err)
	assert.Equal(t, int64(3), s.Count)
	assert.Equal(t, int64(1500), s.TotalSats)
	require.NotNil(t, s.LastAt)
	assert.Equal(t, last, *s.LastAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGiftRepo_SummarizeBySender_NoGifts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGiftRepo(mock)
	mock.ExpectQuery("SELECT COUNT.+ FROM gifts WHERE sender").
		WithArgs("bc1qnobody").
		WillReturnRows(pgxmock.NewRows([]string{"count", "sum", "max"}).AddRow(int64(0), int64(0), (*time.Time)(nil)))

	s, err := repo.SummarizeBySender(context.Background(), "bc1qnobody")
	require.NoError(t, err)
	assert.Zero(t, s.Count)
	assert.Nil(t, s.LastAt)
}

func TestGiftRepo_ListBySender(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewGiftRepo(mock)
	g := newTestGift()

	mock.ExpectQuery("SELECT .+ FROM gifts WHERE sender .+ ORDER BY created_at DESC").
		WithArgs(g.Sender).
		WillReturnRows(pgxmock.NewRows([]string{"id", "sender", "recipient", "amount_sats", "message", "tx_ref", "created_at"}).
			AddRow(giftArgs(g)...))

	gifts, err := repo.ListBySender(context.Background(), g.Sender)
	require.NoError(t, err)
	require.Len(t, gifts, 1)
	assert.Equal(t, *g, gifts[0])
	assert.NoError(t, mock.ExpectationsWereMet())
}
