package domain

// ProfitMode is the per-user settlement override. RANDOM settles fairly on
// price; FORCED_WIN and FORCED_LOSS fix the outcome regardless of price.
// The mode is read at settlement time, never cached on the position.
type ProfitMode string

const (
	ProfitModeRandom     ProfitMode = "RANDOM"
	ProfitModeForcedWin  ProfitMode = "FORCED_WIN"
	ProfitModeForcedLoss ProfitMode = "FORCED_LOSS"
)

// Valid reports whether m is a known profit mode.
func (m ProfitMode) Valid() bool {
	return m == ProfitModeRandom || m == ProfitModeForcedWin || m == ProfitModeForcedLoss
}
