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

// PositionRepo implements ports.PositionRepository.
type PositionRepo struct {
	pool Pool
}

// NewPositionRepo creates a new PositionRepo.
func NewPositionRepo(pool Pool) *PositionRepo {
	return &PositionRepo{pool: pool}
}

const positionColumns = `id, user_id, pair, entry_price, stake, direction, duration_secs,
	payout_percent, state, outcome, close_price, price_stale, opened_at, deadline, settled_at`

// Create inserts a new position within a transaction.
func (r *PositionRepo) Create(ctx context.Context, tx pgx.Tx, p *domain.Position) error {
	query := `INSERT INTO positions (id, user_id, pair, entry_price, stake, direction, duration_secs,
		payout_percent, state, price_stale, opened_at, deadline)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := tx.Exec(ctx, query,
		p.ID, p.UserID, p.Pair, p.EntryPrice, p.Stake, string(p.Direction), p.DurationSecs,
		p.PayoutPercent, string(p.State), p.PriceStale, p.OpenedAt, p.Deadline,
	)
	if err != nil {
		return fmt.Errorf("insert position: %w", err)
	}
	return nil
}

// GetByID fetches a position without locking.
func (r *PositionRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Position, error) {
	query := `SELECT ` + positionColumns + ` FROM positions WHERE id = $1`
	return scanPosition(r.pool.QueryRow(ctx, query, id), "get position")
}

// GetByIDForUpdate fetches a position with pessimistic locking.
// This MUST be called within a transaction.
func (r *PositionRepo) GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Position, error) {
	query := `SELECT ` + positionColumns + ` FROM positions WHERE id = $1 FOR UPDATE`
	return scanPosition(tx.QueryRow(ctx, query, id), "get position for update")
}

// MarkSettled records the terminal state within a transaction. The row must
// be locked by the caller; settling twice is prevented by the state check.
func (r *PositionRepo) MarkSettled(ctx context.Context, tx pgx.Tx, id uuid.UUID, outcome domain.Outcome, closePrice decimal.Decimal, priceStale bool, settledAt time.Time) error {
	query := `UPDATE positions
		SET state = 'SETTLED', outcome = $1, close_price = $2, price_stale = $3, settled_at = $4
		WHERE id = $5 AND state = 'OPEN'`

	tag, err := tx.Exec(ctx, query, string(outcome), closePrice, priceStale, settledAt, id)
	if err != nil {
		return fmt.Errorf("mark position settled: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("position not open: %s", id)
	}
	return nil
}

// ListOpen returns every OPEN position, oldest deadline first. Used for
// restart recovery.
func (r *PositionRepo) ListOpen(ctx context.Context) ([]domain.Position, error) {
	query := `SELECT ` + positionColumns + ` FROM positions WHERE state = 'OPEN' ORDER BY deadline ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list open positions: %w", err)
	}
	defer rows.Close()

	return collectPositions(rows)
}

// ListByUser returns a user's positions, most recent first.
func (r *PositionRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Position, error) {
	query := `SELECT ` + positionColumns + ` FROM positions WHERE user_id = $1 ORDER BY opened_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list positions by user: %w", err)
	}
	defer rows.Close()

	return collectPositions(rows)
}

func scanPosition(row pgx.Row, op string) (*domain.Position, error) {
	p := &domain.Position{}
	var direction, state string
	var outcome *string
	err := row.Scan(
		&p.ID, &p.UserID, &p.Pair, &p.EntryPrice, &p.Stake, &direction, &p.DurationSecs,
		&p.PayoutPercent, &state, &outcome, &p.ClosePrice, &p.PriceStale,
		&p.OpenedAt, &p.Deadline, &p.SettledAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p.Direction = domain.Direction(direction)
	p.State = domain.PositionState(state)
	if outcome != nil {
		o := domain.Outcome(*outcome)
		p.Outcome = &o
	}
	return p, nil
}

func collectPositions(rows pgx.Rows) ([]domain.Position, error) {
	var positions []domain.Position
	for rows.Next() {
		p := domain.Position{}
		var direction, state string
		var outcome *string
		err := rows.Scan(
			&p.ID, &p.UserID, &p.Pair, &p.EntryPrice, &p.Stake, &direction, &p.DurationSecs,
			&p.PayoutPercent, &state, &outcome, &p.ClosePrice, &p.PriceStale,
			&p.OpenedAt, &p.Deadline, &p.SettledAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan position: %w", err)
		}
		p.Direction = domain.Direction(direction)
		p.State = domain.PositionState(state)
		if outcome != nil {
			o := domain.Outcome(*outcome)
			p.Outcome = &o
		}
		positions = append(positions, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate positions: %w", err)
	}
	return positions, nil
}
