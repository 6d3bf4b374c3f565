package ports

import (
	"context"
	"time"

	"timed-trading-platform/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// WalletRepository defines persistence operations for wallets.
// Methods accepting pgx.Tx are used inside transaction blocks for pessimistic
// locking: the wallet row lock is the per-user serialization point for all
// balance mutation.
type WalletRepository interface {
	Create(ctx context.Context, wallet *domain.Wallet) error
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	GetByUserIDForUpdate(ctx context.Context, tx pgx.Tx, userID uuid.UUID) (*domain.Wallet, error)
	UpdateBalances(ctx context.Context, tx pgx.Tx, userID uuid.UUID, quote decimal.Decimal, assets map[string]decimal.Decimal) error
}

// PositionRepository defines persistence operations for timed positions.
type PositionRepository interface {
	Create(ctx context.Context, tx pgx.Tx, position *domain.Position) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Position, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.Position, error)
	// MarkSettled records the terminal state. The same transaction must carry
	// the settlement's ledger delta so neither is observable without the other.
	MarkSettled(ctx context.Context, tx pgx.Tx, id uuid.UUID, outcome domain.Outcome, closePrice decimal.Decimal, priceStale bool, settledAt time.Time) error
	ListOpen(ctx context.Context) ([]domain.Position, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Position, error)
}

// LedgerEntryRepository defines persistence for the append-only transaction log.
// Entries are insert-only; there is deliberately no update or delete.
type LedgerEntryRepository interface {
	Create(ctx context.Context, tx pgx.Tx, entry *domain.LedgerEntry) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LedgerEntry, error)
	// SumQuoteDeltas folds all quote-affecting amounts for a user; used by
	// reconciliation to check the ledger/log consistency invariant.
	SumQuoteDeltas(ctx context.Context, userID uuid.UUID) (decimal.Decimal, error)
	TradeStats(ctx context.Context, userID uuid.UUID) (*domain.TradeStats, error)
}

// PayoutScheduleRepository reads the duration -> payout percentage table.
// Reference data, managed outside the core.
type PayoutScheduleRepository interface {
	// GetBySeconds returns nil when the duration is not offered.
	GetBySeconds(ctx context.Context, seconds int) (*domain.PayoutTier, error)
	List(ctx context.Context) ([]domain.PayoutTier, error)
}

// ProfitModeRepository reads and writes the per-user settlement override.
// Set is for the administrative collaborator; the core only reads.
type ProfitModeRepository interface {
	// Get returns ProfitModeRandom when no override is stored for the user.
	Get(ctx context.Context, userID uuid.UUID) (domain.ProfitMode, error)
	Set(ctx context.Context, userID uuid.UUID, mode domain.ProfitMode) error
}

// LimitOrderRepository defines persistence operations for resting limit orders.
type LimitOrderRepository interface {
	Create(ctx context.Context, tx pgx.Tx, order *domain.LimitOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.LimitOrder, error)
	GetByIDForUpdate(ctx context.Context, tx pgx.Tx, id uuid.UUID) (*domain.LimitOrder, error)
	ListOpenByPair(ctx context.Context, pair string) ([]domain.LimitOrder, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LimitOrder, error)
	MarkFilled(ctx context.Context, tx pgx.Tx, id uuid.UUID, fillPrice decimal.Decimal, filledAt time.Time) error
	MarkCanceled(ctx context.Context, tx pgx.Tx, id uuid.UUID) error
}

// DBTransactor provides database transaction management.
type DBTransactor interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}
