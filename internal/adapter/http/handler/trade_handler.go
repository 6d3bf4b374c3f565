package handler

import (
	"time"

	"timed-trading-platform/internal/adapter/http/dto"
	"timed-trading-platform/internal/core/domain"
	"timed-trading-platform/internal/core/ports"
	"timed-trading-platform/pkg/apperror"
	"timed-trading-platform/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TradeHandler handles spot trade and limit order endpoints.
type TradeHandler struct {
	spotSvc  ports.SpotTradeService
	limitSvc ports.LimitOrderService
}

// NewTradeHandler creates a new TradeHandler.
func NewTradeHandler(spotSvc ports.SpotTradeService, limitSvc ports.LimitOrderService) *TradeHandler {
	return &TradeHandler{spotSvc: spotSvc, limitSvc: limitSvc}
}

// ExecuteSpot handles POST /api/v1/trades.
func (h *TradeHandler) ExecuteSpot(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req dto.SpotTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	wallet, entry, err := h.spotSvc.Execute(c.Request.Context(), ports.SpotTradeRequest{
		UserID:     userID,
		Side:       domain.OrderSide(req.Side),
		Pair:       dto.NormalizePair(req.Pair),
		Quantity:   req.Quantity,
		Price:      req.Price,
		QuoteTotal: req.Quantity.Mul(req.Price),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{
		"wallet": toWalletResponse(wallet),
		"entry":  toLedgerEntryResponse(entry),
	})
}

// PlaceLimitOrder handles POST /api/v1/orders.
func (h *TradeHandler) PlaceLimitOrder(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req dto.PlaceLimitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	order, err := h.limitSvc.Place(c.Request.Context(), ports.PlaceLimitOrderRequest{
		UserID:     userID,
		Pair:       dto.NormalizePair(req.Pair),
		Side:       domain.OrderSide(req.Side),
		LimitPrice: req.LimitPrice,
		Quantity:   req.Quantity,
		QuoteTotal: req.Quantity.Mul(req.LimitPrice),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toLimitOrderResponse(order))
}

// ListLimitOrders handles GET /api/v1/orders.
func (h *TradeHandler) ListLimitOrders(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	orders, err := h.limitSvc.ListByUser(c.Request.Context(), userID, listLimit(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.LimitOrderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toLimitOrderResponse(&orders[i]))
	}
	response.OK(c, out)
}

// CancelLimitOrder handles DELETE /api/v1/orders/:id.
func (h *TradeHandler) CancelLimitOrder(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.Validation("invalid order id"))
		return
	}

	order, err := h.limitSvc.Cancel(c.Request.Context(), userID, orderID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, toLimitOrderResponse(order))
}

func toLimitOrderResponse(o *domain.LimitOrder) dto.LimitOrderResponse {
	resp := dto.LimitOrderResponse{
		ID:         o.ID.String(),
		Pair:       o.Pair,
		Asset:      o.Asset,
		Side:       string(o.Side),
		LimitPrice: o.LimitPrice.String(),
		Quantity:   o.Quantity.String(),
		QuoteTotal: o.QuoteTotal.String(),
		State:      string(o.State),
		CreatedAt:  o.CreatedAt.Format(time.RFC3339),
	}
	if o.FillPrice != nil {
		price := o.FillPrice.String()
		resp.FillPrice = &price
	}
	if o.FilledAt != nil {
		filled := o.FilledAt.Format(time.RFC3339)
		resp.FilledAt = &filled
	}
	return resp
}
