package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"timed-trading-platform/internal/core/domain"
	"timed-trading-platform/internal/core/ports"
	"timed-trading-platform/internal/core/ports/mocks"
	"timed-trading-platform/pkg/apperror"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type limitFixture struct {
	orders     *mocks.MockLimitOrderRepository
	ledger     *mocks.MockLedgerStore
	transactor *mocks.MockDBTransactor
	oracle     *mocks.MockPriceOracle
	svc        *LimitOrderServiceImpl
}

func newLimitFixture(ctrl *gomock.Controller) *limitFixture {
	f := &limitFixture{
		orders:     mocks.NewMockLimitOrderRepository(ctrl),
		ledger:     mocks.NewMockLedgerStore(ctrl),
		transactor: mocks.NewMockDBTransactor(ctrl),
		oracle:     mocks.NewMockPriceOracle(ctrl),
	}
	f.svc = NewLimitOrderService(f.orders, f.ledger, f.transactor, f.oracle, zerolog.Nop())
	return f
}

func restingBuy(userID uuid.UUID) *domain.LimitOrder {
	return &domain.LimitOrder{
		ID:         uuid.New(),
		UserID:     userID,
		Pair:       "BTCUSDT",
		Asset:      "BTC",
		Side:       domain.OrderSideBuy,
		LimitPrice: decimal.RequireFromString("60000"),
		Quantity:   decimal.RequireFromString("0.1"),
		QuoteTotal: decimal.RequireFromString("6000"),
		State:      domain.LimitOrderStateOpen,
		CreatedAt:  time.Now().UTC(),
	}
}

func TestLimitOrderService_Place_BuyHoldsQuote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newLimitFixture(ctrl)

	userID := uuid.New()
	tx := &mockTx{}

	f.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	f.ledger.EXPECT().
		ApplyTx(gomock.Any(), tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, op ports.LedgerOp) (*domain.Wallet, *domain.LedgerEntry, error) {
			assert.Equal(t, domain.EntryKindLimitHold, op.Kind)
			assert.Equal(t, domain.EntryStatusPending, op.Status)
			assert.True(t, op.Delta.Quote.Equal(decimal.RequireFromString("-6000")))
			assert.Empty(t, op.Delta.Asset)
			return &domain.Wallet{}, &domain.LedgerEntry{}, nil
		})
	f.orders.EXPECT().
		Create(gomock.Any(), tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, o *domain.LimitOrder) error {
			assert.Equal(t, domain.LimitOrderStateOpen, o.State)
			assert.Equal(t, "BTC", o.Asset)
			return nil
		})

	order, err := f.svc.Place(context.Background(), ports.PlaceLimitOrderRequest{
		UserID:     userID,
		Pair:       "BTCUSDT",
		Side:       domain.OrderSideBuy,
		LimitPrice: decimal.RequireFromString("60000"),
		Quantity:   decimal.RequireFromString("0.1"),
		QuoteTotal: decimal.RequireFromString("6000"),
	})
	require.NoError(t, err)
	assert.Equal(t, userID, order.UserID)
}

func TestLimitOrderService_Place_SellHoldsAsset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newLimitFixture(ctrl)

	tx := &mockTx{}

	f.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	f.ledger.EXPECT().
		ApplyTx(gomock.Any(), tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, op ports.LedgerOp) (*domain.Wallet, *domain.LedgerEntry, error) {
			assert.True(t, op.Delta.Quote.IsZero())
			assert.Equal(t, "ETH", op.Delta.Asset)
			assert.True(t, op.Delta.AssetQty.Equal(decimal.RequireFromString("-2")))
			return &domain.Wallet{}, &domain.LedgerEntry{}, nil
		})
	f.orders.EXPECT().Create(gomock.Any(), tx, gomock.Any()).Return(nil)

	_, err := f.svc.Place(context.Background(), ports.PlaceLimitOrderRequest{
		UserID:     uuid.New(),
		Pair:       "ETHUSDT",
		Side:       domain.OrderSideSell,
		LimitPrice: decimal.RequireFromString("4000"),
		Quantity:   decimal.RequireFromString("2"),
		QuoteTotal: decimal.RequireFromString("8000"),
	})
	require.NoError(t, err)
}

func TestLimitOrderService_Place_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newLimitFixture(ctrl)

	tx := &mockTx{}
	f.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	f.ledger.EXPECT().
		ApplyTx(gomock.Any(), tx, gomock.Any()).
		Return(nil, nil, apperror.ErrInsufficientFunds("quote"))

	_, err := f.svc.Place(context.Background(), ports.PlaceLimitOrderRequest{
		UserID:     uuid.New(),
		Pair:       "BTCUSDT",
		Side:       domain.OrderSideBuy,
		LimitPrice: decimal.RequireFromString("60000"),
		Quantity:   decimal.RequireFromString("10"),
		QuoteTotal: decimal.RequireFromString("600000"),
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "LED_001", appErr.Code)
}

func TestLimitOrderService_Cancel_ReleasesHold(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newLimitFixture(ctrl)

	userID := uuid.New()
	order := restingBuy(userID)
	tx := &mockTx{}

	f.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	f.orders.EXPECT().GetByIDForUpdate(gomock.Any(), tx, order.ID).Return(order, nil)
	f.ledger.EXPECT().
		ApplyTx(gomock.Any(), tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, op ports.LedgerOp) (*domain.Wallet, *domain.LedgerEntry, error) {
			assert.Equal(t, domain.EntryKindLimitRelease, op.Kind)
			assert.True(t, op.Delta.Quote.Equal(decimal.RequireFromString("6000")))
			return &domain.Wallet{}, &domain.LedgerEntry{}, nil
		})
	f.orders.EXPECT().MarkCanceled(gomock.Any(), tx, order.ID).Return(nil)

	canceled, err := f.svc.Cancel(context.Background(), userID, order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.LimitOrderStateCanceled, canceled.State)
}

func TestLimitOrderService_Cancel_WrongOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newLimitFixture(ctrl)

	order := restingBuy(uuid.New())
	tx := &mockTx{}

	f.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	f.orders.EXPECT().GetByIDForUpdate(gomock.Any(), tx, order.ID).Return(order, nil)

	_, err := f.svc.Cancel(context.Background(), uuid.New(), order.ID)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "ORD_002", appErr.Code)
}

func TestLimitOrderService_Cancel_NotOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newLimitFixture(ctrl)

	userID := uuid.New()
	order := restingBuy(userID)
	order.State = domain.LimitOrderStateFilled
	tx := &mockTx{}

	f.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	f.orders.EXPECT().GetByIDForUpdate(gomock.Any(), tx, order.ID).Return(order, nil)

	_, err := f.svc.Cancel(context.Background(), userID, order.ID)
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "ORD_003", appErr.Code)
}

func TestLimitOrderService_FillTriggered_BuyCreditsAsset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newLimitFixture(ctrl)

	userID := uuid.New()
	order := restingBuy(userID)
	tx := &mockTx{}

	// Price dropped through the buy limit.
	quote := domain.Quote{Pair: "BTCUSDT", Price: decimal.RequireFromString("59500"), At: time.Now()}

	f.orders.EXPECT().ListOpenByPair(gomock.Any(), "BTCUSDT").Return([]domain.LimitOrder{*order}, nil)
	f.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	f.orders.EXPECT().GetByIDForUpdate(gomock.Any(), tx, order.ID).Return(order, nil)
	f.ledger.EXPECT().
		ApplyTx(gomock.Any(), tx, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ pgx.Tx, op ports.LedgerOp) (*domain.Wallet, *domain.LedgerEntry, error) {
			assert.Equal(t, domain.EntryKindTradeBuy, op.Kind)
			assert.True(t, op.Delta.Quote.IsZero())
			assert.Equal(t, "BTC", op.Delta.Asset)
			assert.True(t, op.Delta.AssetQty.Equal(decimal.RequireFromString("0.1")))
			return &domain.Wallet{}, &domain.LedgerEntry{}, nil
		})
	f.orders.EXPECT().
		MarkFilled(gomock.Any(), tx, order.ID, decimal.RequireFromString("59500"), gomock.Any()).
		Return(nil)

	f.svc.fillTriggered(context.Background(), quote)
}

func TestLimitOrderService_FillTriggered_SkipsUntriggered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newLimitFixture(ctrl)

	order := restingBuy(uuid.New())

	// Price still above the buy limit; nothing fills.
	quote := domain.Quote{Pair: "BTCUSDT", Price: decimal.RequireFromString("61000"), At: time.Now()}

	f.orders.EXPECT().ListOpenByPair(gomock.Any(), "BTCUSDT").Return([]domain.LimitOrder{*order}, nil)

	f.svc.fillTriggered(context.Background(), quote)
}

func TestLimitOrderService_Fill_LostRaceToCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newLimitFixture(ctrl)

	order := restingBuy(uuid.New())
	canceled := *order
	canceled.State = domain.LimitOrderStateCanceled
	tx := &mockTx{}

	f.transactor.EXPECT().Begin(gomock.Any()).Return(tx, nil)
	f.orders.EXPECT().GetByIDForUpdate(gomock.Any(), tx, order.ID).Return(&canceled, nil)

	require.NoError(t, f.svc.fill(context.Background(), order.ID, decimal.RequireFromString("59500")))
}
