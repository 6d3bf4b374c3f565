package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"timed-trading-platform/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LimitOrderRepo implements ports.LimitOrderRepository.
type LimitOrderRepo struct {
	pool Pool
}

// NewLimitOrderRepo creates a new LimitOrderRepo.
func NewLimitOrderRepo(pool Pool) *LimitOrderRepo {
	return &LimitOrderRepo{pool: pool}
}

const limitOrderColumns = `id, user_id, pair, asset, side, limit_price, quantity, quote_total,
	state, fill_price, created_at, filled_at`

// Create inserts a new order within a transaction.
func (r *LimitOrderRepo) Create(ctx context.Context, tx pgx.Tx, o *domain.LimitOrder) error {
	query := `INSERT INTO limit_orders (id, user_id, pair, asset, side, limit_price, quantity, quote_total, state, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := tx.Exec(ctx, query,
		o.ID, o.UserID, o.Pair, o.Asset, string(o.Side), o.LimitPrice,
		o.Quantity, o.QuoteTotal, string(o.State), o.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert limit order: %w", err)
	}
	return nil
}

// GetByID fetches an order without locking.
func (r *LimitOrderRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.LimitOrder, error) {
	query := `SELECT ` + limitOrderColumns + ` FROM limit_orders WHERE id = $1`
	return scanLimitOrder(r.pool.QueryRow(ctx, query, id), "get limit order")
}

// GetByIDForUpdate fetches an order with pessimistic locking.
// This MUST be called within a transaction.
func (r *LimitOrderRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.LimitOrder, error) {
	query := `SELECT ` + limitOrderColumns + ` FROM limit_orders WHERE id = $1 FOR UPDATE`
	return scanLimitOrder(tx.QueryRow(ctx, query, id), "get limit order for update")
}

// ListOpenByPair returns resting orders for a pair, oldest first.
func (r *LimitOrderRepo) ListOpenByPair(ctx context.Context, pair string) ([]domain.LimitOrder, error) {
	query := `SELECT ` + limitOrderColumns + ` FROM limit_orders WHERE pair = $1 AND state = 'OPEN' ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, pair)
	if err != nil {
		return nil, fmt.Errorf("list open limit orders: %w", err)
	}
	defer rows.Close()

	return collectLimitOrders(rows)
}

// ListByUser returns a user's orders, most recent first.
func (r *LimitOrderRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LimitOrder, error) {
	query := `SELECT ` + limitOrderColumns + ` FROM limit_orders WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list limit orders by user: %w", err)
	}
	defer rows.Close()

	return collectLimitOrders(rows)
}

// MarkFilled records the fill within a transaction. The row must be locked by
// the caller; filling twice is prevented by the state check.
func (r *LimitOrderRepo) MarkFilled(ctx context.Context, tx pgx.Tx, id uuid.UUID, fillPrice decimal.Decimal, filledAt time.Time) error {
	query := `UPDATE limit_orders SET state = 'FILLED', fill_price = $1, filled_at = $2
		WHERE id = $3 AND state = 'OPEN'`

	tag, err := tx.Exec(ctx, query, fillPrice, filledAt, id)
	if err != nil {
		return fmt.Errorf("mark limit order filled: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("limit order not open: %s", id)
	}
	return nil
}

// MarkCanceled cancels a resting order within a transaction.
func (r *LimitOrderRepo) MarkCanceled(ctx context.Context, tx pgx.Tx, id uuid.UUID) error {
	query := `UPDATE limit_orders SET state = 'CANCELED' WHERE id = $1 AND state = 'OPEN'`

	tag, err := tx.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("mark limit order canceled: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("limit order not open: %s", id)
	}
	return nil
}

func scanLimitOrder(row pgx.Row, op string) (*domain.LimitOrder, error) {
	o := &domain.LimitOrder{}
	var side, state string
	err := row.Scan(
		&o.ID, &o.UserID, &o.Pair, &o.Asset, &side, &o.LimitPrice,
		&o.Quantity, &o.QuoteTotal, &state, &o.FillPrice, &o.CreatedAt, &o.FilledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	o.Side = domain.OrderSide(side)
	o.State = domain.LimitOrderState(state)
	return o, nil
}

func collectLimitOrders(rows pgx.Rows) ([]domain.LimitOrder, error) {
	var orders []domain.LimitOrder
	for rows.Next() {
		o := domain.LimitOrder{}
		var side, state string
		err := rows.Scan(
			&o.ID, &o.UserID, &o.Pair, &o.Asset, &side, &o.LimitPrice,
			&o.Quantity, &o.QuoteTotal, &state, &o.FillPrice, &o.CreatedAt, &o.FilledAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan limit order: %w", err)
		}
		o.Side = domain.OrderSide(side)
		o.State = domain.LimitOrderState(state)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate limit orders: %w", err)
	}
	return orders, nil
}
