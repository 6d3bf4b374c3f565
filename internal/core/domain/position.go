package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Direction is the side of a timed position: the price will be above (UP)
// or below (DOWN) the entry price at the deadline.
type Direction string

const (
	DirectionUp   Direction = "UP"
	DirectionDown Direction = "DOWN"
)

// Valid reports whether d is a known direction.
func (d Direction) Valid() bool {
	return d == DirectionUp || d == DirectionDown
}

// PositionState is the lifecycle state of a position. OPEN transitions to
// SETTLED exactly once; SETTLED is terminal.
type PositionState string

const (
	PositionStateOpen    PositionState = "OPEN"
	PositionStateSettled PositionState = "SETTLED"
)

// Outcome tags a settled position for reporting.
type Outcome string

const (
	OutcomeWin  Outcome = "WIN"
	OutcomeLoss Outcome = "LOSS"
)

// Position is a single timed directional trade. The stake is debited from the
// wallet when the position is opened; PayoutPercent is captured from the
// payout schedule at open time and never changes afterwards.
type Position struct {
	ID            uuid.UUID       `json:"id"`
	UserID        uuid.UUID       `json:"user_id"`
	Pair          string          `json:"pair"`
	EntryPrice    decimal.Decimal `json:"entry_price"`
	Stake         decimal.Decimal `json:"stake"`
	Direction     Direction       `json:"direction"`
	DurationSecs  int             `json:"duration_seconds"`
	PayoutPercent decimal.Decimal `json:"payout_percent"`
	State         PositionState   `json:"state"`
	Outcome       *Outcome        `json:"outcome,omitempty"`
	ClosePrice    *decimal.Decimal `json:"close_price,omitempty"`
	PriceStale    bool            `json:"price_stale,omitempty"`
	OpenedAt      time.Time       `json:"opened_at"`
	Deadline      time.Time       `json:"deadline"`
	SettledAt     *time.Time      `json:"settled_at,omitempty"`
}

// IsSettled reports whether the position has reached its terminal state.
func (p *Position) IsSettled() bool {
	return p.State == PositionStateSettled
}

// Expired reports whether the deadline has passed at the given instant.
func (p *Position) Expired(now time.Time) bool {
	return !now.Before(p.Deadline)
}

// PayoutAmount is the profit credited if the position settles as a WIN:
// stake * percent / 100. The stake itself stays at risk and is not returned.
func (p *Position) PayoutAmount() decimal.Decimal {
	return p.Stake.Mul(p.PayoutPercent).Div(decimal.NewFromInt(100))
}
