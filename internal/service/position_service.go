package service

import (
	"context"
	"fmt"
	"time"

	"timed-trading-platform/config"
	"timed-trading-platform/internal/core/domain"
	"timed-trading-platform/internal/core/ports"
	"timed-trading-platform/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// PositionServiceImpl implements ports.PositionService. A position is opened
// against a live oracle price, its stake is debited immediately, and a
// settlement check is registered for the deadline. Settlement re-reads the
// position under a row lock so concurrent settle attempts collapse to one
// ledger effect.
type PositionServiceImpl struct {
	positionRepo ports.PositionRepository
	payoutRepo   ports.PayoutScheduleRepository
	modeRepo     ports.ProfitModeRepository
	ledger       ports.LedgerStore
	oracle       ports.PriceOracle
	priceCache   ports.PriceCache
	transactor   ports.DBTransactor
	scheduler    ports.SettlementScheduler
	cfg          config.SettlementConfig
	staleAfter   time.Duration
	pollEvery    time.Duration
	log          zerolog.Logger
}

// NewPositionService creates a new PositionServiceImpl.
func NewPositionService(
	positionRepo ports.PositionRepository,
	payoutRepo ports.PayoutScheduleRepository,
	modeRepo ports.ProfitModeRepository,
	ledger ports.LedgerStore,
	oracle ports.PriceOracle,
	priceCache ports.PriceCache,
	transactor ports.DBTransactor,
	scheduler ports.SettlementScheduler,
	cfg config.SettlementConfig,
	staleAfter time.Duration,
	log zerolog.Logger,
) *PositionServiceImpl {
	return &PositionServiceImpl{
		positionRepo: positionRepo,
		payoutRepo:   payoutRepo,
		modeRepo:     modeRepo,
		ledger:       ledger,
		oracle:       oracle,
		priceCache:   priceCache,
		transactor:   transactor,
		scheduler:    scheduler,
		cfg:          cfg,
		staleAfter:   staleAfter,
		pollEvery:    200 * time.Millisecond,
		log:          log,
	}
}

// Open validates the request, debits the stake, persists the position and
// registers its settlement deadline. The payout percentage is pinned from the
// duration table at open time; later table changes do not affect it.
func (s *PositionServiceImpl) Open(ctx context.Context, req ports.OpenPositionRequest) (*domain.Position, error) {
	if !req.Direction.Valid() {
		return nil, apperror.ErrInvalidDirection()
	}
	if !req.Stake.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.Pair == "" {
		return nil, apperror.Validation("pair is required")
	}

	tier, err := s.payoutRepo.GetBySeconds(ctx, req.DurationSecs)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("payout lookup: %w", err))
	}
	if tier == nil {
		return nil, apperror.ErrInvalidDuration(req.DurationSecs)
	}

	quote, err := s.oracle.Price(ctx, req.Pair)
	if err != nil {
		return nil, apperror.ErrOracleUnavailable(req.Pair, err)
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, _, err := s.ledger.ApplyTx(ctx, tx, ports.LedgerOp{
		UserID: req.UserID,
		Delta:  domain.LedgerDelta{Quote: req.Stake.Neg()},
		Kind:   domain.EntryKindPositionOpen,
		Amount: req.Stake,
		Pair:   req.Pair,
	}); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	position := &domain.Position{
		ID:            uuid.New(),
		UserID:        req.UserID,
		Pair:          req.Pair,
		EntryPrice:    quote.Price,
		Stake:         req.Stake,
		Direction:     req.Direction,
		DurationSecs:  req.DurationSecs,
		PayoutPercent: tier.Percent,
		State:         domain.PositionStateOpen,
		OpenedAt:      now,
		Deadline:      now.Add(time.Duration(req.DurationSecs) * time.Second),
	}
	if err := s.positionRepo.Create(ctx, tx, position); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create position: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.scheduler.Schedule(position.ID, position.Deadline)

	s.log.Info().
		Str("position_id", position.ID.String()).
		Str("user_id", req.UserID.String()).
		Str("pair", req.Pair).
		Str("stake", req.Stake.String()).
		Str("direction", string(req.Direction)).
		Int("duration_secs", req.DurationSecs).
		Time("deadline", position.Deadline).
		Msg("position opened")

	return position, nil
}

// Settle resolves a position at (or after) its deadline. It is safe to call
// more than once: the first caller to take the row lock settles, later
// callers see the terminal state and return it unchanged.
func (s *PositionServiceImpl) Settle(ctx context.Context, positionID uuid.UUID) (*domain.Position, error) {
	position, err := s.positionRepo.GetByID(ctx, positionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("load position: %w", err))
	}
	if position == nil {
		return nil, apperror.ErrPositionNotFound()
	}
	if position.IsSettled() {
		return position, nil
	}

	closePrice, stale, err := s.settlementPrice(ctx, position.Pair)
	if err != nil {
		return nil, err
	}

	mode, err := s.modeRepo.Get(ctx, position.UserID)
	if err != nil {
		s.log.Warn().Err(err).Str("user_id", position.UserID.String()).Msg("profit mode lookup failed, using fair settlement")
		mode = domain.ProfitModeRandom
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	locked, err := s.positionRepo.GetByIDForUpdate(ctx, tx, positionID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock position: %w", err))
	}
	if locked == nil {
		return nil, apperror.ErrPositionNotFound()
	}
	if locked.IsSettled() {
		return locked, nil
	}

	decision := Decide(locked, closePrice, mode)

	op := ports.LedgerOp{
		UserID:     locked.UserID,
		Pair:       locked.Pair,
		PriceStale: stale,
	}
	if decision.Outcome == domain.OutcomeWin {
		op.Delta = domain.LedgerDelta{Quote: decision.Payout}
		op.Kind = domain.EntryKindTradeWin
		op.Amount = decision.Payout
	} else {
		op.Kind = domain.EntryKindTradeLoss
		op.Amount = locked.Stake
	}
	if _, _, err := s.ledger.ApplyTx(ctx, tx, op); err != nil {
		return nil, err
	}

	settledAt := time.Now().UTC()
	if err := s.positionRepo.MarkSettled(ctx, tx, positionID, decision.Outcome, closePrice, stale, settledAt); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mark settled: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	outcome := decision.Outcome
	locked.State = domain.PositionStateSettled
	locked.Outcome = &outcome
	locked.ClosePrice = &closePrice
	locked.PriceStale = stale
	locked.SettledAt = &settledAt

	s.log.Info().
		Str("position_id", positionID.String()).
		Str("user_id", locked.UserID.String()).
		Str("outcome", string(outcome)).
		Str("close_price", closePrice.String()).
		Bool("price_stale", stale).
		Msg("position settled")

	return locked, nil
}

// settlementPrice returns the price to settle against. It waits up to the
// configured window for a fresh oracle quote, then falls back to the
// last-known cached price flagged as stale. Only a total absence of any price
// is an error; the caller retries in that case.
func (s *PositionServiceImpl) settlementPrice(ctx context.Context, pair string) (decimal.Decimal, bool, error) {
	deadline := time.Now().Add(s.cfg.OracleWait)
	var lastErr error
	for {
		quote, err := s.oracle.Price(ctx, pair)
		if err == nil {
			if !quote.StaleAt(time.Now(), s.staleAfter) {
				return quote.Price, false, nil
			}
			lastErr = nil
		} else {
			lastErr = err
		}
		if time.Now().After(deadline) {
			break
		}
		select {
		case <-ctx.Done():
			return decimal.Zero, false, ctx.Err()
		case <-time.After(s.pollEvery):
		}
	}

	cached, err := s.priceCache.Get(ctx, pair)
	if err == nil && cached != nil {
		s.log.Warn().Str("pair", pair).Time("quoted_at", cached.At).Msg("settling on stale cached price")
		return cached.Price, true, nil
	}

	// The oracle answered at some point with a stale in-memory quote.
	if lastErr == nil {
		quote, qerr := s.oracle.Price(ctx, pair)
		if qerr == nil {
			s.log.Warn().Str("pair", pair).Time("quoted_at", quote.At).Msg("settling on stale oracle price")
			return quote.Price, true, nil
		}
		lastErr = qerr
	}

	return decimal.Zero, false, apperror.ErrOracleUnavailable(pair, lastErr)
}

// RecoverOpen re-arms settlement for every OPEN position after a restart.
// Past-deadline positions are scheduled immediately.
func (s *PositionServiceImpl) RecoverOpen(ctx context.Context) error {
	open, err := s.positionRepo.ListOpen(ctx)
	if err != nil {
		return fmt.Errorf("list open positions: %w", err)
	}

	now := time.Now().UTC()
	overdue := 0
	for i := range open {
		p := &open[i]
		at := p.Deadline
		if p.Expired(now) {
			at = now
			overdue++
		}
		s.scheduler.Schedule(p.ID, at)
	}

	s.log.Info().Int("open", len(open)).Int("overdue", overdue).Msg("open positions recovered")
	return nil
}

func (s *PositionServiceImpl) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Position, error) {
	positions, err := s.positionRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list positions: %w", err))
	}
	return positions, nil
}
