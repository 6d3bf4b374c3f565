package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderSide is the side of a spot or limit order.
type OrderSide string

const (
	OrderSideBuy  OrderSide = "BUY"
	OrderSideSell OrderSide = "SELL"
)

// Valid reports whether s is a known order side.
func (s OrderSide) Valid() bool {
	return s == OrderSideBuy || s == OrderSideSell
}

// LimitOrderState is the lifecycle state of a resting limit order.
type LimitOrderState string

const (
	LimitOrderStateOpen     LimitOrderState = "OPEN"
	LimitOrderStateFilled   LimitOrderState = "FILLED"
	LimitOrderStateCanceled LimitOrderState = "CANCELED"
)

// LimitOrder is a resting order that executes when the market price crosses
// its limit. Funds for the debited side are held in the wallet at placement
// and released on cancel, so a fill only credits the opposite side.
type LimitOrder struct {
	ID         uuid.UUID        `json:"id"`
	UserID     uuid.UUID        `json:"user_id"`
	Pair       string           `json:"pair"`
	Asset      string           `json:"asset"`
	Side       OrderSide        `json:"side"`
	LimitPrice decimal.Decimal  `json:"limit_price"`
	Quantity   decimal.Decimal  `json:"quantity"`
	QuoteTotal decimal.Decimal  `json:"quote_total"`
	State      LimitOrderState  `json:"state"`
	FillPrice  *decimal.Decimal `json:"fill_price,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	FilledAt   *time.Time       `json:"filled_at,omitempty"`
}

// Triggered reports whether a market price crosses the order's limit:
// buys fill at or below the limit, sells at or above.
func (o *LimitOrder) Triggered(price decimal.Decimal) bool {
	if o.Side == OrderSideBuy {
		return price.LessThanOrEqual(o.LimitPrice)
	}
	return price.GreaterThanOrEqual(o.LimitPrice)
}
