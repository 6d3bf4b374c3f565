package handler

import (
	"strconv"
	"time"

	"timed-trading-platform/internal/adapter/http/dto"
	"timed-trading-platform/internal/adapter/http/middleware"
	"timed-trading-platform/internal/core/domain"
	"timed-trading-platform/internal/core/ports"
	"timed-trading-platform/pkg/apperror"
	"timed-trading-platform/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// WalletHandler handles wallet and reporting endpoints.
type WalletHandler struct {
	walletSvc ports.WalletService
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(walletSvc ports.WalletService) *WalletHandler {
	return &WalletHandler{walletSvc: walletSvc}
}

// GetBalance handles GET /api/v1/wallet/balance.
func (h *WalletHandler) GetBalance(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	wallet, err := h.walletSvc.Balance(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toWalletResponse(wallet))
}

// Deposit handles POST /api/v1/wallet/deposit.
func (h *WalletHandler) Deposit(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	wallet, entry, err := h.walletSvc.Deposit(c.Request.Context(), userID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{
		"wallet": toWalletResponse(wallet),
		"entry":  toLedgerEntryResponse(entry),
	})
}

// Withdraw handles POST /api/v1/wallet/withdraw.
func (h *WalletHandler) Withdraw(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	wallet, entry, err := h.walletSvc.Withdraw(c.Request.Context(), userID, req.Amount)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{
		"wallet": toWalletResponse(wallet),
		"entry":  toLedgerEntryResponse(entry),
	})
}

// GetHistory handles GET /api/v1/wallet/history.
func (h *WalletHandler) GetHistory(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	entries, err := h.walletSvc.History(c.Request.Context(), userID, listLimit(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.LedgerEntryResponse, 0, len(entries))
	for i := range entries {
		out = append(out, toLedgerEntryResponse(&entries[i]))
	}
	response.OK(c, out)
}

// GetStats handles GET /api/v1/wallet/stats.
func (h *WalletHandler) GetStats(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	stats, err := h.walletSvc.Stats(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.TradeStatsResponse{
		Wins:        stats.Wins,
		Losses:      stats.Losses,
		NetProfit:   stats.NetProfit.String(),
		TotalTrades: stats.TotalTrades,
	})
}

// authedUserID extracts the authenticated user ID set by JWTAuth. Writes the
// error response itself when the context has no user.
func authedUserID(c *gin.Context) (uuid.UUID, bool) {
	v, ok := c.Get(middleware.CtxUserID)
	if !ok {
		response.Error(c, apperror.ErrInvalidToken())
		return uuid.Nil, false
	}
	return v.(uuid.UUID), true
}

// listLimit parses the optional ?limit query parameter.
func listLimit(c *gin.Context) int {
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return limit
}

func toWalletResponse(w *domain.Wallet) dto.WalletResponse {
	assets := make(map[string]string, len(w.Assets))
	for symbol, qty := range w.Assets {
		assets[symbol] = qty.String()
	}
	return dto.WalletResponse{
		UserID:       w.UserID.String(),
		QuoteBalance: w.QuoteBalance.String(),
		Assets:       assets,
		UpdatedAt:    w.UpdatedAt.Format(time.RFC3339),
	}
}

func toLedgerEntryResponse(e *domain.LedgerEntry) dto.LedgerEntryResponse {
	return dto.LedgerEntryResponse{
		ID:         e.ID.String(),
		Kind:       string(e.Kind),
		Amount:     e.Amount.String(),
		QuoteDelta: e.QuoteDelta.String(),
		Asset:      e.Asset,
		AssetDelta: e.AssetDelta.String(),
		Pair:       e.Pair,
		Status:     string(e.Status),
		PriceStale: e.PriceStale,
		CreatedAt:  e.CreatedAt.Format(time.RFC3339),
	}
}
