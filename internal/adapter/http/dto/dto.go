package dto

import "github.com/shopspring/decimal"

// DepositRequest is the request body for a wallet deposit.
type DepositRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// WithdrawRequest is the request body for a wallet withdrawal.
type WithdrawRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// OpenPositionRequest is the request body for opening a timed position.
type OpenPositionRequest struct {
	Pair         string          `json:"pair" binding:"required,pair"`
	Stake        decimal.Decimal `json:"stake" binding:"required"`
	Direction    string          `json:"direction" binding:"required,oneof=UP DOWN"`
	DurationSecs int             `json:"duration_secs" binding:"required,gt=0"`
}

// SpotTradeRequest is the request body for an immediate spot trade.
type SpotTradeRequest struct {
	Pair     string          `json:"pair" binding:"required,pair"`
	Side     string          `json:"side" binding:"required,oneof=BUY SELL"`
	Quantity decimal.Decimal `json:"quantity" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
}

// PlaceLimitOrderRequest is the request body for a resting limit order.
type PlaceLimitOrderRequest struct {
	Pair       string          `json:"pair" binding:"required,pair"`
	Side       string          `json:"side" binding:"required,oneof=BUY SELL"`
	LimitPrice decimal.Decimal `json:"limit_price" binding:"required"`
	Quantity   decimal.Decimal `json:"quantity" binding:"required"`
}

// WalletResponse is the response body for wallet state.
type WalletResponse struct {
	UserID       string            `json:"user_id"`
	QuoteBalance string            `json:"quote_balance"`
	Assets       map[string]string `json:"assets"`
	UpdatedAt    string            `json:"updated_at"`
}

// LedgerEntryResponse is the response body for one transaction log entry.
type LedgerEntryResponse struct {
	ID         string `json:"id"`
	Kind       string `json:"kind"`
	Amount     string `json:"amount"`
	QuoteDelta string `json:"quote_delta"`
	Asset      string `json:"asset,omitempty"`
	AssetDelta string `json:"asset_delta,omitempty"`
	Pair       string `json:"pair,omitempty"`
	Status     string `json:"status"`
	PriceStale bool   `json:"price_stale,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// PositionResponse is the response body for a timed position.
type PositionResponse struct {
	ID            string  `json:"id"`
	Pair          string  `json:"pair"`
	EntryPrice    string  `json:"entry_price"`
	Stake         string  `json:"stake"`
	Direction     string  `json:"direction"`
	DurationSecs  int     `json:"duration_secs"`
	PayoutPercent string  `json:"payout_percent"`
	State         string  `json:"state"`
	Outcome       *string `json:"outcome,omitempty"`
	ClosePrice    *string `json:"close_price,omitempty"`
	PriceStale    bool    `json:"price_stale,omitempty"`
	OpenedAt      string  `json:"opened_at"`
	Deadline      string  `json:"deadline"`
	SettledAt     *string `json:"settled_at,omitempty"`
}

// LimitOrderResponse is the response body for a resting limit order.
type LimitOrderResponse struct {
	ID         string  `json:"id"`
	Pair       string  `json:"pair"`
	Asset      string  `json:"asset"`
	Side       string  `json:"side"`
	LimitPrice string  `json:"limit_price"`
	Quantity   string  `json:"quantity"`
	QuoteTotal string  `json:"quote_total"`
	State      string  `json:"state"`
	FillPrice  *string `json:"fill_price,omitempty"`
	CreatedAt  string  `json:"created_at"`
	FilledAt   *string `json:"filled_at,omitempty"`
}

// TradeStatsResponse is the response body for settlement statistics.
type TradeStatsResponse struct {
	Wins        int64  `json:"wins"`
	Losses      int64  `json:"losses"`
	NetProfit   string `json:"net_profit"`
	TotalTrades int64  `json:"total_trades"`
}

// PayoutTierResponse is one row of the duration/payout table.
type PayoutTierResponse struct {
	DurationSecs  int    `json:"duration_secs"`
	PayoutPercent string `json:"payout_percent"`
}

// QuoteResponse is the response body for a market price.
type QuoteResponse struct {
	Pair  string `json:"pair"`
	Price string `json:"price"`
	At    string `json:"at"`
}
