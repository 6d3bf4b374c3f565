package ports

import (
	"context"
	"time"

	"timed-trading-platform/internal/core/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// PriceOracle supplies the most recent known trade price for a pair.
// The quote carries its feed timestamp so callers can detect staleness.
type PriceOracle interface {
	Price(ctx context.Context, pair string) (domain.Quote, error)
	// Subscribe returns a stream of live quotes. The channel is closed when
	// the oracle shuts down.
	Subscribe() <-chan domain.Quote
}

// PriceCache persists last-known quotes across restarts (Redis-backed).
type PriceCache interface {
	Put(ctx context.Context, quote domain.Quote) error
	// Get returns nil when no quote has been cached for the pair.
	Get(ctx context.Context, pair string) (*domain.Quote, error)
}

// LedgerOp describes one atomic wallet mutation paired with its immutable
// audit entry. The delta and the entry apply together or not at all.
type LedgerOp struct {
	UserID     uuid.UUID
	Delta      domain.LedgerDelta
	Kind       domain.EntryKind
	Amount     decimal.Decimal
	Pair       string
	Status     domain.EntryStatus
	PriceStale bool
}

// LedgerStore is the only mutation path for wallet balances. Apply runs in
// its own transaction; ApplyTx joins a caller-owned transaction so a caller
// can commit the delta atomically with its own state transition (settlement).
// Both fail with InsufficientFunds, applying nothing, when any resulting
// quantity would go negative.
type LedgerStore interface {
	Apply(ctx context.Context, op LedgerOp) (*domain.Wallet, *domain.LedgerEntry, error)
	ApplyTx(ctx context.Context, tx pgx.Tx, op LedgerOp) (*domain.Wallet, *domain.LedgerEntry, error)
}

// SettlementScheduler registers a one-shot settlement check for a position
// at its deadline.
type SettlementScheduler interface {
	Schedule(positionID uuid.UUID, at time.Time)
}

// OpenPositionRequest holds validated input for opening a timed position.
type OpenPositionRequest struct {
	UserID       uuid.UUID
	Pair         string
	Stake        decimal.Decimal
	Direction    domain.Direction
	DurationSecs int
}

// PositionService owns the position state machine: open, scheduled
// settlement, and restart recovery.
type PositionService interface {
	Open(ctx context.Context, req OpenPositionRequest) (*domain.Position, error)
	// Settle is idempotent: settling an already-settled position returns the
	// existing terminal record with no further ledger effect.
	Settle(ctx context.Context, positionID uuid.UUID) (*domain.Position, error)
	// RecoverOpen settles past-deadline OPEN positions and re-schedules the
	// rest; called once at startup.
	RecoverOpen(ctx context.Context) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Position, error)
}

// SpotTradeRequest holds validated input for an immediate spot trade.
type SpotTradeRequest struct {
	UserID     uuid.UUID
	Side       domain.OrderSide
	Pair       string
	Quantity   decimal.Decimal
	Price      decimal.Decimal
	QuoteTotal decimal.Decimal
}

// SpotTradeService executes immediate buys and sells against the wallet.
type SpotTradeService interface {
	Execute(ctx context.Context, req SpotTradeRequest) (*domain.Wallet, *domain.LedgerEntry, error)
}

// WalletService exposes balance reads, funding operations and reporting.
type WalletService interface {
	Balance(ctx context.Context, userID uuid.UUID) (*domain.Wallet, error)
	Deposit(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*domain.Wallet, *domain.LedgerEntry, error)
	Withdraw(ctx context.Context, userID uuid.UUID, amount decimal.Decimal) (*domain.Wallet, *domain.LedgerEntry, error)
	History(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LedgerEntry, error)
	Stats(ctx context.Context, userID uuid.UUID) (*domain.TradeStats, error)
}

// PlaceLimitOrderRequest holds validated input for a resting limit order.
type PlaceLimitOrderRequest struct {
	UserID     uuid.UUID
	Pair       string
	Side       domain.OrderSide
	LimitPrice decimal.Decimal
	Quantity   decimal.Decimal
	QuoteTotal decimal.Decimal
}

// LimitOrderService places, cancels and fills resting limit orders. Funds for
// the debited side are held at placement and released on cancel.
type LimitOrderService interface {
	Place(ctx context.Context, req PlaceLimitOrderRequest) (*domain.LimitOrder, error)
	Cancel(ctx context.Context, userID, orderID uuid.UUID) (*domain.LimitOrder, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LimitOrder, error)
}

// TokenService validates bearer tokens from the identity collaborator.
// Generate exists for operational tooling and tests; the platform itself
// never issues sessions.
type TokenService interface {
	Generate(userID uuid.UUID) (string, time.Time, error)
	Validate(tokenString string) (uuid.UUID, error)
}
