package postgres

import (
	"errors"

	"bitbuddy/internal/core/ports"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// NewActivityStore wires the four collections onto one pool.
func NewActivityStore(pool Pool) ports.ActivityStore {
	return ports.ActivityStore{
		Gifts:   NewGiftRepo(pool),
		Savings: NewSavingsRepo(pool),
		Badges:  NewBadgeRepo(pool),
		Feed:    NewFeedRepo(pool),
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
