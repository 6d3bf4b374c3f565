package service

import (
	"github.com/shopspring/decimal"

	"timed-trading-platform/internal/core/domain"
)

// Decision is the computed result of settling a position: the outcome tag and
// the amount credited back to the wallet. The stake was debited at open time
// and stays at risk, so a WIN credits the payout only and a LOSS credits
// nothing.
type Decision struct {
	Outcome domain.Outcome
	Payout  decimal.Decimal
}

// Decide computes the settlement decision for a position given the current
// price and the user's profit mode. Pure function, no side effects.
//
// FORCED_WIN and FORCED_LOSS fix the outcome regardless of price. In fair
// mode an UP position wins iff the price rose above entry and a DOWN position
// wins iff it fell below; a price exactly equal to entry is always a LOSS.
func Decide(p *domain.Position, currentPrice decimal.Decimal, mode domain.ProfitMode) Decision {
	win := false

	switch mode {
	case domain.ProfitModeForcedWin:
		win = true
	case domain.ProfitModeForcedLoss:
		win = false
	default:
		switch p.Direction {
		case domain.DirectionUp:
			win = currentPrice.GreaterThan(p.EntryPrice)
		case domain.DirectionDown:
			win = currentPrice.LessThan(p.EntryPrice)
		}
	}

	if !win {
		return Decision{Outcome: domain.OutcomeLoss, Payout: decimal.Zero}
	}
	return Decision{Outcome: domain.OutcomeWin, Payout: p.PayoutAmount()}
}
