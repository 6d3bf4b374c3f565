package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EntryKind represents the kind of balance-affecting event.
type EntryKind string

const (
	EntryKindDeposit      EntryKind = "DEPOSIT"
	EntryKindWithdrawal   EntryKind = "WITHDRAWAL"
	EntryKindTradeBuy     EntryKind = "TRADE_BUY"
	EntryKindTradeSell    EntryKind = "TRADE_SELL"
	EntryKindPositionOpen EntryKind = "POSITION_OPEN"
	EntryKindTradeWin     EntryKind = "TRADE_WIN"
	EntryKindTradeLoss    EntryKind = "TRADE_LOSS"
	EntryKindLimitHold    EntryKind = "LIMIT_HOLD"
	EntryKindLimitRelease EntryKind = "LIMIT_RELEASE"
)

// EntryStatus represents the resulting status recorded on an entry.
type EntryStatus string

const (
	EntryStatusCompleted EntryStatus = "COMPLETED"
	EntryStatusPending   EntryStatus = "PENDING"
)

// LedgerEntry is an immutable audit record of a single wallet mutation.
// QuoteDelta and AssetDelta are the signed balance effects; Amount is the
// user-facing magnitude of the event (stake, payout, trade total).
// Entries are created once and never updated or deleted: the wallet's quote
// balance must equal the sum of QuoteDelta over all entries for that user.
type LedgerEntry struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"user_id"`
	Kind       EntryKind       `json:"kind"`
	Amount     decimal.Decimal `json:"amount"`
	QuoteDelta decimal.Decimal `json:"quote_delta"`
	Asset      string          `json:"asset,omitempty"`
	AssetDelta decimal.Decimal `json:"asset_delta"`
	Pair       string          `json:"pair,omitempty"`
	Status     EntryStatus     `json:"status"`
	PriceStale bool            `json:"price_stale,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
}

// TradeStats summarises a user's settled timed positions, folded from
// TRADE_WIN / TRADE_LOSS ledger entries.
type TradeStats struct {
	Wins        int64           `json:"wins"`
	Losses      int64           `json:"losses"`
	NetProfit   decimal.Decimal `json:"net_profit"`
	TotalTrades int64           `json:"total_trades"`
}
