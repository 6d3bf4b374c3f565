package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is the most recent known trade price for a pair. At carries the
// feed timestamp so staleness is always detectable by the consumer.
type Quote struct {
	Pair  string          `json:"pair"`
	Price decimal.Decimal `json:"price"`
	At    time.Time       `json:"at"`
}

// StaleAt reports whether the quote is older than maxAge at the given instant.
func (q Quote) StaleAt(now time.Time, maxAge time.Duration) bool {
	return now.Sub(q.At) > maxAge
}

// PayoutTier maps an allowed position duration to its payout percentage.
// Reference data: read-only to the core, managed by an administrative
// collaborator.
type PayoutTier struct {
	Seconds int             `json:"seconds"`
	Percent decimal.Decimal `json:"percent"`
}
