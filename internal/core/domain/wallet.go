package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Wallet is a user's custodial balance: one quote-currency balance plus
// per-asset quantities. Both are non-negative at all times; mutation happens
// only through the ledger store's atomic delta operation.
type Wallet struct {
	UserID       uuid.UUID                  `json:"user_id"`
	QuoteBalance decimal.Decimal            `json:"quote_balance"`
	Assets       map[string]decimal.Decimal `json:"assets"`
	CreatedAt    time.Time                  `json:"created_at"`
	UpdatedAt    time.Time                  `json:"updated_at"`
}

// AssetQty returns the held quantity for a symbol, zero when untracked.
func (w *Wallet) AssetQty(symbol string) decimal.Decimal {
	if w.Assets == nil {
		return decimal.Zero
	}
	qty, ok := w.Assets[symbol]
	if !ok {
		return decimal.Zero
	}
	return qty
}

// LedgerDelta is a signed, atomic change to a wallet: a quote-balance
// adjustment and/or an adjustment to exactly one asset quantity.
type LedgerDelta struct {
	Quote    decimal.Decimal
	Asset    string
	AssetQty decimal.Decimal
}
