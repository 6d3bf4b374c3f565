package service

import (
	"context"
	"fmt"
	"time"

	"timed-trading-platform/internal/core/domain"
	"timed-trading-platform/internal/core/ports"
	"timed-trading-platform/pkg/apperror"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// LimitOrderServiceImpl implements ports.LimitOrderService. Placement holds
// the debited side in the wallet (quote for buys, asset for sells) so a later
// fill only credits the opposite side and can never fail on funds. Run
// watches the live quote stream and fills resting orders whose limit the
// market crosses.
type LimitOrderServiceImpl struct {
	orderRepo  ports.LimitOrderRepository
	ledger     ports.LedgerStore
	transactor ports.DBTransactor
	oracle     ports.PriceOracle
	log        zerolog.Logger
}

// NewLimitOrderService creates a new LimitOrderServiceImpl.
func NewLimitOrderService(
	orderRepo ports.LimitOrderRepository,
	ledger ports.LedgerStore,
	transactor ports.DBTransactor,
	oracle ports.PriceOracle,
	log zerolog.Logger,
) *LimitOrderServiceImpl {
	return &LimitOrderServiceImpl{
		orderRepo:  orderRepo,
		ledger:     ledger,
		transactor: transactor,
		oracle:     oracle,
		log:        log,
	}
}

// Place validates the order, holds the debited side, and persists the order
// atomically with the hold.
func (s *LimitOrderServiceImpl) Place(ctx context.Context, req ports.PlaceLimitOrderRequest) (*domain.LimitOrder, error) {
	if !req.Side.Valid() {
		return nil, apperror.ErrInvalidSide()
	}
	if !req.Quantity.IsPositive() || !req.LimitPrice.IsPositive() || !req.QuoteTotal.IsPositive() {
		return nil, apperror.ErrInvalidAmount()
	}
	if req.Pair == "" {
		return nil, apperror.Validation("pair is required")
	}

	asset := baseAsset(req.Pair)

	hold := ports.LedgerOp{
		UserID: req.UserID,
		Kind:   domain.EntryKindLimitHold,
		Amount: req.QuoteTotal,
		Pair:   req.Pair,
		Status: domain.EntryStatusPending,
	}
	if req.Side == domain.OrderSideBuy {
		hold.Delta = domain.LedgerDelta{Quote: req.QuoteTotal.Neg()}
	} else {
		hold.Delta = domain.LedgerDelta{Asset: asset, AssetQty: req.Quantity.Neg()}
	}

	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, _, err := s.ledger.ApplyTx(ctx, tx, hold); err != nil {
		return nil, err
	}

	order := &domain.LimitOrder{
		ID:         uuid.New(),
		UserID:     req.UserID,
		Pair:       req.Pair,
		Asset:      asset,
		Side:       req.Side,
		LimitPrice: req.LimitPrice,
		Quantity:   req.Quantity,
		QuoteTotal: req.QuoteTotal,
		State:      domain.LimitOrderStateOpen,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.orderRepo.Create(ctx, tx, order); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("create order: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	s.log.Info().
		Str("order_id", order.ID.String()).
		Str("user_id", req.UserID.String()).
		Str("pair", req.Pair).
		Str("side", string(req.Side)).
		Str("limit_price", req.LimitPrice.String()).
		Msg("limit order placed")

	return order, nil
}

// Cancel releases the held funds and marks the order CANCELED. Only the
// order's owner may cancel it.
func (s *LimitOrderServiceImpl) Cancel(ctx context.Context, userID, orderID uuid.UUID) (*domain.LimitOrder, error) {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("begin tx: %w", err))
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	order, err := s.orderRepo.GetByIDForUpdate(ctx, tx, orderID)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("lock order: %w", err))
	}
	if order == nil || order.UserID != userID {
		return nil, apperror.ErrOrderNotFound()
	}
	if order.State != domain.LimitOrderStateOpen {
		return nil, apperror.ErrOrderNotOpen()
	}

	release := ports.LedgerOp{
		UserID: userID,
		Kind:   domain.EntryKindLimitRelease,
		Amount: order.QuoteTotal,
		Pair:   order.Pair,
	}
	if order.Side == domain.OrderSideBuy {
		release.Delta = domain.LedgerDelta{Quote: order.QuoteTotal}
	} else {
		release.Delta = domain.LedgerDelta{Asset: order.Asset, AssetQty: order.Quantity}
	}
	if _, _, err := s.ledger.ApplyTx(ctx, tx, release); err != nil {
		return nil, err
	}

	if err := s.orderRepo.MarkCanceled(ctx, tx, orderID); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("mark canceled: %w", err))
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, apperror.InternalError(fmt.Errorf("commit tx: %w", err))
	}

	order.State = domain.LimitOrderStateCanceled

	s.log.Info().
		Str("order_id", orderID.String()).
		Str("user_id", userID.String()).
		Msg("limit order canceled")

	return order, nil
}

func (s *LimitOrderServiceImpl) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.LimitOrder, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("list orders: %w", err))
	}
	return orders, nil
}

// Run consumes the live quote stream and fills triggered orders until the
// context is canceled or the stream closes. Intended to run as a single
// background goroutine.
func (s *LimitOrderServiceImpl) Run(ctx context.Context) {
	quotes := s.oracle.Subscribe()
	for {
		select {
		case <-ctx.Done():
			return
		case quote, ok := <-quotes:
			if !ok {
				return
			}
			s.fillTriggered(ctx, quote)
		}
	}
}

func (s *LimitOrderServiceImpl) fillTriggered(ctx context.Context, quote domain.Quote) {
	open, err := s.orderRepo.ListOpenByPair(ctx, quote.Pair)
	if err != nil {
		s.log.Error().Err(err).Str("pair", quote.Pair).Msg("list open orders failed")
		return
	}

	for i := range open {
		order := &open[i]
		if !order.Triggered(quote.Price) {
			continue
		}
		if err := s.fill(ctx, order.ID, quote.Price); err != nil {
			s.log.Error().Err(err).
				Str("order_id", order.ID.String()).
				Str("pair", quote.Pair).
				Msg("limit order fill failed")
		}
	}
}

// fill credits the held-for side of one order. The order row lock makes the
// fill race-safe against a concurrent cancel.
func (s *LimitOrderServiceImpl) fill(ctx context.Context, orderID uuid.UUID, price decimal.Decimal) error {
	tx, err := s.transactor.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	order, err := s.orderRepo.GetByIDForUpdate(ctx, tx, orderID)
	if err != nil {
		return fmt.Errorf("lock order: %w", err)
	}
	if order == nil || order.State != domain.LimitOrderStateOpen || !order.Triggered(price) {
		return nil
	}

	credit := ports.LedgerOp{
		UserID: order.UserID,
		Amount: order.QuoteTotal,
		Pair:   order.Pair,
	}
	if order.Side == domain.OrderSideBuy {
		credit.Kind = domain.EntryKindTradeBuy
		credit.Delta = domain.LedgerDelta{Asset: order.Asset, AssetQty: order.Quantity}
	} else {
		credit.Kind = domain.EntryKindTradeSell
		credit.Delta = domain.LedgerDelta{Quote: order.QuoteTotal}
	}
	if _, _, err := s.ledger.ApplyTx(ctx, tx, credit); err != nil {
		return err
	}

	filledAt := time.Now().UTC()
	if err := s.orderRepo.MarkFilled(ctx, tx, orderID, price, filledAt); err != nil {
		return fmt.Errorf("mark filled: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}

	s.log.Info().
		Str("order_id", orderID.String()).
		Str("user_id", order.UserID.String()).
		Str("fill_price", price.String()).
		Msg("limit order filled")

	return nil
}
