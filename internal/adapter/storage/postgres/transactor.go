package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
)

// Transactor hands out database transactions for multi-statement ledger
// writes. Implements ports.DBTransactor.
type Transactor struct {
	pool Pool
}

// NewTransactor creates a Transactor backed by the connection pool.
func NewTransactor(pool Pool) *Transactor {
	return &Transactor{pool: pool}
}

func (t *Transactor) Begin(ctx context.Context) (pgx.Tx, error) {
	return t.pool.Begin(ctx)
}
