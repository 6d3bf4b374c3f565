package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"timed-trading-platform/internal/adapter/http/dto"
	"timed-trading-platform/internal/adapter/http/middleware"
	"timed-trading-platform/internal/core/domain"
	"timed-trading-platform/internal/core/ports"
	"timed-trading-platform/internal/core/ports/mocks"
	"timed-trading-platform/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func authedContext(w *httptest.ResponseRecorder, userID uuid.UUID) *gin.Context {
	c, _ := gin.CreateTestContext(w)
	c.Set(middleware.CtxUserID, userID)
	return c
}

func jsonRequest(method, path string, payload any) *http.Request {
	body, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// --- Wallet Handler Tests ---

func TestGetBalance_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	userID := uuid.New()
	mockWallet.EXPECT().Balance(gomock.Any(), userID).Return(&domain.Wallet{
		UserID:       userID,
		QuoteBalance: decimal.NewFromInt(980),
		Assets:       map[string]decimal.Decimal{"BTC": decimal.NewFromFloat(0.5)},
		UpdatedAt:    time.Now(),
	}, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, userID)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.GetBalance(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "980", data["quote_balance"])
	assets := data["assets"].(map[string]interface{})
	assert.Equal(t, "0.5", assets["BTC"])
}

func TestGetBalance_MissingUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.GetBalance(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestDeposit_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	userID := uuid.New()
	amount := decimal.NewFromInt(1000)
	mockWallet.EXPECT().Deposit(gomock.Any(), userID, amount).Return(
		&domain.Wallet{UserID: userID, QuoteBalance: amount},
		&domain.LedgerEntry{
			ID:         uuid.New(),
			UserID:     userID,
			Kind:       domain.EntryKindDeposit,
			Amount:     amount,
			QuoteDelta: amount,
			Status:     domain.EntryStatusCompleted,
			CreatedAt:  time.Now(),
		}, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, userID)
	c.Request = jsonRequest(http.MethodPost, "/", dto.DepositRequest{Amount: amount})

	h.Deposit(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	wallet := data["wallet"].(map[string]interface{})
	entry := data["entry"].(map[string]interface{})
	assert.Equal(t, "1000", wallet["quote_balance"])
	assert.Equal(t, "DEPOSIT", entry["kind"])
}

func TestDeposit_ValidationError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	w := httptest.NewRecorder()
	c := authedContext(w, uuid.New())
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{}")))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Deposit(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWithdraw_InsufficientFunds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	userID := uuid.New()
	mockWallet.EXPECT().Withdraw(gomock.Any(), userID, gomock.Any()).
		Return(nil, nil, apperror.ErrInsufficientFunds("quote"))

	w := httptest.NewRecorder()
	c := authedContext(w, userID)
	c.Request = jsonRequest(http.MethodPost, "/", dto.WithdrawRequest{Amount: decimal.NewFromInt(9999)})

	h.Withdraw(c)

	assert.Equal(t, http.StatusPaymentRequired, w.Code)
}

func TestWithdraw_PendingEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	userID := uuid.New()
	amount := decimal.NewFromInt(200)
	mockWallet.EXPECT().Withdraw(gomock.Any(), userID, amount).Return(
		&domain.Wallet{UserID: userID, QuoteBalance: decimal.NewFromInt(800)},
		&domain.LedgerEntry{
			ID:         uuid.New(),
			Kind:       domain.EntryKindWithdrawal,
			Amount:     amount,
			QuoteDelta: amount.Neg(),
			Status:     domain.EntryStatusPending,
			CreatedAt:  time.Now(),
		}, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, userID)
	c.Request = jsonRequest(http.MethodPost, "/", dto.WithdrawRequest{Amount: amount})

	h.Withdraw(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	entry := resp["data"].(map[string]interface{})["entry"].(map[string]interface{})
	assert.Equal(t, "PENDING", entry["status"])
	assert.Equal(t, "-200", entry["quote_delta"])
}

func TestGetHistory_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	userID := uuid.New()
	mockWallet.EXPECT().History(gomock.Any(), userID, 50).Return([]domain.LedgerEntry{
		{ID: uuid.New(), Kind: domain.EntryKindTradeWin, Amount: decimal.NewFromInt(80), QuoteDelta: decimal.NewFromInt(80), Status: domain.EntryStatusCompleted},
		{ID: uuid.New(), Kind: domain.EntryKindPositionOpen, Amount: decimal.NewFromInt(100), QuoteDelta: decimal.NewFromInt(-100), Status: domain.EntryStatusCompleted},
	}, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, userID)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.GetHistory(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	items := resp["data"].([]interface{})
	assert.Len(t, items, 2)
}

func TestGetHistory_LimitCapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	userID := uuid.New()
	mockWallet.EXPECT().History(gomock.Any(), userID, 200).Return(nil, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, userID)
	c.Request = httptest.NewRequest(http.MethodGet, "/?limit=5000", nil)

	h.GetHistory(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetStats_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockWallet := mocks.NewMockWalletService(ctrl)
	h := NewWalletHandler(mockWallet)

	userID := uuid.New()
	mockWallet.EXPECT().Stats(gomock.Any(), userID).Return(&domain.TradeStats{
		Wins:        3,
		Losses:      2,
		NetProfit:   decimal.NewFromInt(40),
		TotalTrades: 5,
	}, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, userID)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.GetStats(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(3), data["wins"])
	assert.Equal(t, "40", data["net_profit"])
	assert.Equal(t, float64(5), data["total_trades"])
}

// --- Position Handler Tests ---

func TestOpenPosition_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPosition := mocks.NewMockPositionService(ctrl)
	h := NewPositionHandler(mockPosition)

	userID := uuid.New()
	positionID := uuid.New()
	now := time.Now()

	mockPosition.EXPECT().Open(gomock.Any(), ports.OpenPositionRequest{
		UserID:       userID,
		Pair:         "BTCUSDT",
		Stake:        decimal.NewFromInt(100),
		Direction:    domain.DirectionUp,
		DurationSecs: 60,
	}).Return(&domain.Position{
		ID:            positionID,
		UserID:        userID,
		Pair:          "BTCUSDT",
		EntryPrice:    decimal.NewFromInt(64000),
		Stake:         decimal.NewFromInt(100),
		Direction:     domain.DirectionUp,
		DurationSecs:  60,
		PayoutPercent: decimal.NewFromInt(80),
		State:         domain.PositionStateOpen,
		OpenedAt:      now,
		Deadline:      now.Add(time.Minute),
	}, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, userID)
	c.Request = jsonRequest(http.MethodPost, "/", dto.OpenPositionRequest{
		Pair:         "btc-usdt",
		Stake:        decimal.NewFromInt(100),
		Direction:    "UP",
		DurationSecs: 60,
	})

	h.Open(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, positionID.String(), data["id"])
	assert.Equal(t, "OPEN", data["state"])
	assert.Equal(t, "80", data["payout_percent"])
	assert.Nil(t, data["outcome"])
}

func TestOpenPosition_BadDirection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPosition := mocks.NewMockPositionService(ctrl)
	h := NewPositionHandler(mockPosition)

	w := httptest.NewRecorder()
	c := authedContext(w, uuid.New())
	c.Request = jsonRequest(http.MethodPost, "/", dto.OpenPositionRequest{
		Pair:         "BTCUSDT",
		Stake:        decimal.NewFromInt(100),
		Direction:    "SIDEWAYS",
		DurationSecs: 60,
	})

	h.Open(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestOpenPosition_UnknownDuration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPosition := mocks.NewMockPositionService(ctrl)
	h := NewPositionHandler(mockPosition)

	mockPosition.EXPECT().Open(gomock.Any(), gomock.Any()).Return(nil, apperror.ErrInvalidDuration(17))

	w := httptest.NewRecorder()
	c := authedContext(w, uuid.New())
	c.Request = jsonRequest(http.MethodPost, "/", dto.OpenPositionRequest{
		Pair:         "BTCUSDT",
		Stake:        decimal.NewFromInt(100),
		Direction:    "DOWN",
		DurationSecs: 17,
	})

	h.Open(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListPositions_Settled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPosition := mocks.NewMockPositionService(ctrl)
	h := NewPositionHandler(mockPosition)

	userID := uuid.New()
	now := time.Now()
	outcome := domain.OutcomeWin
	closePrice := decimal.NewFromInt(64100)

	mockPosition.EXPECT().ListByUser(gomock.Any(), userID, 50).Return([]domain.Position{
		{
			ID:            uuid.New(),
			UserID:        userID,
			Pair:          "BTCUSDT",
			EntryPrice:    decimal.NewFromInt(64000),
			Stake:         decimal.NewFromInt(100),
			Direction:     domain.DirectionUp,
			DurationSecs:  60,
			PayoutPercent: decimal.NewFromInt(80),
			State:         domain.PositionStateSettled,
			Outcome:       &outcome,
			ClosePrice:    &closePrice,
			OpenedAt:      now.Add(-2 * time.Minute),
			Deadline:      now.Add(-time.Minute),
			SettledAt:     &now,
		},
	}, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, userID)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	items := resp["data"].([]interface{})
	require.Len(t, items, 1)
	item := items[0].(map[string]interface{})
	assert.Equal(t, "SETTLED", item["state"])
	assert.Equal(t, "WIN", item["outcome"])
	assert.Equal(t, "64100", item["close_price"])
	assert.NotEmpty(t, item["settled_at"])
}

// --- Trade Handler Tests ---

func TestExecuteSpot_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSpot := mocks.NewMockSpotTradeService(ctrl)
	mockLimit := mocks.NewMockLimitOrderService(ctrl)
	h := NewTradeHandler(mockSpot, mockLimit)

	userID := uuid.New()
	qty := decimal.NewFromFloat(0.1)
	price := decimal.NewFromInt(64000)

	mockSpot.EXPECT().Execute(gomock.Any(), ports.SpotTradeRequest{
		UserID:     userID,
		Side:       domain.OrderSideBuy,
		Pair:       "BTCUSDT",
		Quantity:   qty,
		Price:      price,
		QuoteTotal: qty.Mul(price),
	}).Return(
		&domain.Wallet{UserID: userID, QuoteBalance: decimal.NewFromInt(3600), Assets: map[string]decimal.Decimal{"BTC": qty}},
		&domain.LedgerEntry{
			ID:         uuid.New(),
			Kind:       domain.EntryKindTradeBuy,
			Amount:     qty.Mul(price),
			QuoteDelta: qty.Mul(price).Neg(),
			Asset:      "BTC",
			AssetDelta: qty,
			Pair:       "BTCUSDT",
			Status:     domain.EntryStatusCompleted,
		}, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, userID)
	c.Request = jsonRequest(http.MethodPost, "/", dto.SpotTradeRequest{
		Pair:     "BTCUSDT",
		Side:     "BUY",
		Quantity: qty,
		Price:    price,
	})

	h.ExecuteSpot(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	entry := resp["data"].(map[string]interface{})["entry"].(map[string]interface{})
	assert.Equal(t, "TRADE_BUY", entry["kind"])
	assert.Equal(t, "-6400", entry["quote_delta"])
}

func TestExecuteSpot_BadSide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewTradeHandler(mocks.NewMockSpotTradeService(ctrl), mocks.NewMockLimitOrderService(ctrl))

	w := httptest.NewRecorder()
	c := authedContext(w, uuid.New())
	c.Request = jsonRequest(http.MethodPost, "/", dto.SpotTradeRequest{
		Pair:     "BTCUSDT",
		Side:     "HOLD",
		Quantity: decimal.NewFromInt(1),
		Price:    decimal.NewFromInt(100),
	})

	h.ExecuteSpot(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPlaceLimitOrder_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLimit := mocks.NewMockLimitOrderService(ctrl)
	h := NewTradeHandler(mocks.NewMockSpotTradeService(ctrl), mockLimit)

	userID := uuid.New()
	orderID := uuid.New()
	qty := decimal.NewFromFloat(0.1)
	limitPrice := decimal.NewFromInt(60000)

	mockLimit.EXPECT().Place(gomock.Any(), ports.PlaceLimitOrderRequest{
		UserID:     userID,
		Pair:       "BTCUSDT",
		Side:       domain.OrderSideBuy,
		LimitPrice: limitPrice,
		Quantity:   qty,
		QuoteTotal: qty.Mul(limitPrice),
	}).Return(&domain.LimitOrder{
		ID:         orderID,
		UserID:     userID,
		Pair:       "BTCUSDT",
		Asset:      "BTC",
		Side:       domain.OrderSideBuy,
		LimitPrice: limitPrice,
		Quantity:   qty,
		QuoteTotal: qty.Mul(limitPrice),
		State:      domain.LimitOrderStateOpen,
		CreatedAt:  time.Now(),
	}, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, userID)
	c.Request = jsonRequest(http.MethodPost, "/", dto.PlaceLimitOrderRequest{
		Pair:       "BTCUSDT",
		Side:       "BUY",
		LimitPrice: limitPrice,
		Quantity:   qty,
	})

	h.PlaceLimitOrder(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, orderID.String(), data["id"])
	assert.Equal(t, "OPEN", data["state"])
	assert.Equal(t, "6000", data["quote_total"])
}

func TestCancelLimitOrder_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLimit := mocks.NewMockLimitOrderService(ctrl)
	h := NewTradeHandler(mocks.NewMockSpotTradeService(ctrl), mockLimit)

	userID := uuid.New()
	orderID := uuid.New()

	mockLimit.EXPECT().Cancel(gomock.Any(), userID, orderID).Return(&domain.LimitOrder{
		ID:    orderID,
		State: domain.LimitOrderStateCanceled,
	}, nil)

	w := httptest.NewRecorder()
	c := authedContext(w, userID)
	c.Request = httptest.NewRequest(http.MethodDelete, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: orderID.String()}}

	h.CancelLimitOrder(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "CANCELED", data["state"])
}

func TestCancelLimitOrder_BadID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewTradeHandler(mocks.NewMockSpotTradeService(ctrl), mocks.NewMockLimitOrderService(ctrl))

	w := httptest.NewRecorder()
	c := authedContext(w, uuid.New())
	c.Request = httptest.NewRequest(http.MethodDelete, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: "not-a-uuid"}}

	h.CancelLimitOrder(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCancelLimitOrder_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockLimit := mocks.NewMockLimitOrderService(ctrl)
	h := NewTradeHandler(mocks.NewMockSpotTradeService(ctrl), mockLimit)

	userID := uuid.New()
	orderID := uuid.New()
	mockLimit.EXPECT().Cancel(gomock.Any(), userID, orderID).Return(nil, apperror.ErrOrderNotFound())

	w := httptest.NewRecorder()
	c := authedContext(w, userID)
	c.Request = httptest.NewRequest(http.MethodDelete, "/", nil)
	c.Params = gin.Params{{Key: "id", Value: orderID.String()}}

	h.CancelLimitOrder(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Market Handler Tests ---

func TestListPayouts_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockPayouts := mocks.NewMockPayoutScheduleRepository(ctrl)
	h := NewMarketHandler(mockPayouts, mocks.NewMockPriceOracle(ctrl))

	mockPayouts.EXPECT().List(gomock.Any()).Return([]domain.PayoutTier{
		{Seconds: 60, Percent: decimal.NewFromInt(80)},
		{Seconds: 300, Percent: decimal.NewFromInt(85)},
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	h.ListPayouts(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	items := resp["data"].([]interface{})
	require.Len(t, items, 2)
	first := items[0].(map[string]interface{})
	assert.Equal(t, float64(60), first["duration_secs"])
	assert.Equal(t, "80", first["payout_percent"])
}

func TestGetPrice_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOracle := mocks.NewMockPriceOracle(ctrl)
	h := NewMarketHandler(mocks.NewMockPayoutScheduleRepository(ctrl), mockOracle)

	mockOracle.EXPECT().Price(gomock.Any(), "BTCUSDT").Return(domain.Quote{
		Pair:  "BTCUSDT",
		Price: decimal.NewFromInt(64250),
		At:    time.Now(),
	}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "pair", Value: "btc-usdt"}}

	h.GetPrice(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "BTCUSDT", data["pair"])
	assert.Equal(t, "64250", data["price"])
}

func TestGetPrice_Unavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOracle := mocks.NewMockPriceOracle(ctrl)
	h := NewMarketHandler(mocks.NewMockPayoutScheduleRepository(ctrl), mockOracle)

	mockOracle.EXPECT().Price(gomock.Any(), "DOGEUSDT").Return(domain.Quote{}, errors.New("no price for DOGEUSDT"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Params = gin.Params{{Key: "pair", Value: "DOGEUSDT"}}

	h.GetPrice(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

// --- Health Check Tests ---

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(ctx context.Context) error { return s.err }
func (s stubChecker) Name() string                   { return s.name }

func TestHealthCheck_AllHealthy(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(stubChecker{name: "postgresql"}, stubChecker{name: "redis"})(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestHealthCheck_Degraded(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(
		stubChecker{name: "postgresql"},
		stubChecker{name: "redis", err: errors.New("connection refused")},
	)(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp["status"])
	deps := resp["dependencies"].(map[string]interface{})
	redis := deps["redis"].(map[string]interface{})
	assert.Equal(t, "unhealthy", redis["status"])
}
