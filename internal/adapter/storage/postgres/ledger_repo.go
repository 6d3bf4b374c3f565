package postgres

import (
	"context"
	"fmt"

	"timed-trading-platform/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LedgerEntryRepo implements ports.LedgerEntryRepository. Entries are
// append-only: the table has no update or delete path.
type LedgerEntryRepo struct {
	pool Pool
}

// NewLedgerEntryRepo creates a new LedgerEntryRepo.
func NewLedgerEntryRepo(pool Pool) *LedgerEntryRepo {
	return &LedgerEntryRepo{pool: pool}
}

// Create appends an entry within a transaction.
func (r *LedgerEntryRepo) Create(ctx context.Context, tx pgx.Tx, e *domain.LedgerEntry) error {
	query := `INSERT INTO ledger_entries (id, user_id, kind, amount, quote_delta, asset, asset_delta, pair, status, price_stale, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	_, err := tx.Exec(ctx, query,
		e.ID, e.UserID, string(e.Kind), e.Amount, e.QuoteDelta,
		e.Asset, e.AssetDelta, e.Pair, string(e.Status), e.PriceStale, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert ledger entry: %w", err)
	}
	return nil
}

// ListByUser returns a user's entries, most recent first.
func (r *LedgerEntryRepo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LedgerEntry, error) {
	query := `SELECT id, user_id, kind, amount, quote_delta, asset, asset_delta, pair, status, price_stale, created_at
		FROM ledger_entries WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list ledger entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.LedgerEntry
	for rows.Next() {
		e := domain.LedgerEntry{}
		var kind, status string
		err := rows.Scan(
			&e.ID, &e.UserID, &kind, &e.Amount, &e.QuoteDelta,
			&e.Asset, &e.AssetDelta, &e.Pair, &status, &e.PriceStale, &e.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan ledger entry: %w", err)
		}
		e.Kind = domain.EntryKind(kind)
		e.Status = domain.EntryStatus(status)
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate ledger entries: %w", err)
	}
	return entries, nil
}

// SumQuoteDeltas folds all quote deltas for a user. The result must equal
// the wallet's quote balance; reconciliation checks this.
func (r *LedgerEntryRepo) SumQuoteDeltas(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(quote_delta), 0) FROM ledger_entries WHERE user_id = $1`

	var sum decimal.Decimal
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum quote deltas: %w", err)
	}
	return sum, nil
}

// TradeStats folds win/loss counts and net profit from settlement entries.
// Net profit is total payouts credited minus total stakes lost.
func (r *LedgerEntryRepo) TradeStats(ctx context.Context, userID uuid.UUID) (*domain.TradeStats, error) {
	query := `SELECT
		COUNT(*) FILTER (WHERE kind = 'TRADE_WIN'),
		COUNT(*) FILTER (WHERE kind = 'TRADE_LOSS'),
		COALESCE(SUM(CASE
			WHEN kind = 'TRADE_WIN' THEN quote_delta
			WHEN kind = 'TRADE_LOSS' THEN -amount
			ELSE 0
		END), 0)
		FROM ledger_entries WHERE user_id = $1`

	stats := &domain.TradeStats{}
	err := r.pool.QueryRow(ctx, query, userID).Scan(&stats.Wins, &stats.Losses, &stats.NetProfit)
	if err != nil {
		return nil, fmt.Errorf("trade stats: %w", err)
	}
	stats.TotalTrades = stats.Wins + stats.Losses
	return stats, nil
}
