package service

import (
	"context"

	"timed-trading-platform/internal/core/domain"
	"timed-trading-platform/internal/core/ports"
	"timed-trading-platform/pkg/apperror"

	"github.com/rs/zerolog"
)

// SpotTradeServiceImpl implements ports.SpotTradeService. A spot trade is a
// single atomic two-sided wallet mutation: quote and asset legs move together
// or not at all.
type SpotTradeServiceImpl struct {
	ledger ports.LedgerStore
	log    zerolog.Logger
}

// NewSpotTradeService creates a new SpotTradeServiceImpl.
func NewSpotTradeService(ledger ports.LedgerStore, log zerolog.Logger) *SpotTradeServiceImpl {
	return &SpotTradeServiceImpl{ledger: ledger, log: log}
}

// Execute applies a buy or sell at the caller-supplied execution price.
// BUY debits quote and credits the asset; SELL the reverse. Either failing
// leg (not enough quote, not enough asset) rejects the whole trade.
func (s *SpotTradeServiceImpl) Execute(ctx context.Context, req ports.SpotTradeRequest) (*domain.Wallet, *domain.LedgerEntry, error) {
	if !req.Side.Valid() {
		return nil, nil, apperror.ErrInvalidSide()
	}
	if !req.Quantity.IsPositive() || !req.QuoteTotal.IsPositive() {
		return nil, nil, apperror.ErrInvalidAmount()
	}
	if req.Pair == "" {
		return nil, nil, apperror.Validation("pair is required")
	}

	asset := baseAsset(req.Pair)

	op := ports.LedgerOp{
		UserID: req.UserID,
		Amount: req.QuoteTotal,
		Pair:   req.Pair,
	}
	switch req.Side {
	case domain.OrderSideBuy:
		op.Kind = domain.EntryKindTradeBuy
		op.Delta = domain.LedgerDelta{
			Quote:    req.QuoteTotal.Neg(),
			Asset:    asset,
			AssetQty: req.Quantity,
		}
	case domain.OrderSideSell:
		op.Kind = domain.EntryKindTradeSell
		op.Delta = domain.LedgerDelta{
			Quote:    req.QuoteTotal,
			Asset:    asset,
			AssetQty: req.Quantity.Neg(),
		}
	}

	wallet, entry, err := s.ledger.Apply(ctx, op)
	if err != nil {
		return nil, nil, err
	}

	s.log.Info().
		Str("user_id", req.UserID.String()).
		Str("side", string(req.Side)).
		Str("pair", req.Pair).
		Str("quantity", req.Quantity.String()).
		Str("quote_total", req.QuoteTotal.String()).
		Msg("spot trade executed")

	return wallet, entry, nil
}

// baseAsset derives the held asset symbol from a pair like BTCUSDT.
func baseAsset(pair string) string {
	for _, quote := range []string{"USDT", "USDC", "BUSD"} {
		if len(pair) > len(quote) && pair[len(pair)-len(quote):] == quote {
			return pair[:len(pair)-len(quote)]
		}
	}
	return pair
}
