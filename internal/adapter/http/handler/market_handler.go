package handler

import (
	"time"

	"timed-trading-platform/internal/adapter/http/dto"
	"timed-trading-platform/internal/core/ports"
	"timed-trading-platform/pkg/apperror"
	"timed-trading-platform/pkg/response"

	"github.com/gin-gonic/gin"
)

// MarketHandler handles public market data endpoints.
type MarketHandler struct {
	payoutRepo ports.PayoutScheduleRepository
	oracle     ports.PriceOracle
}

// NewMarketHandler creates a new MarketHandler.
func NewMarketHandler(payoutRepo ports.PayoutScheduleRepository, oracle ports.PriceOracle) *MarketHandler {
	return &MarketHandler{payoutRepo: payoutRepo, oracle: oracle}
}

// ListPayouts handles GET /api/v1/payouts.
func (h *MarketHandler) ListPayouts(c *gin.Context) {
	tiers, err := h.payoutRepo.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.PayoutTierResponse, 0, len(tiers))
	for _, tier := range tiers {
		out = append(out, dto.PayoutTierResponse{
			DurationSecs:  tier.Seconds,
			PayoutPercent: tier.Percent.String(),
		})
	}
	response.OK(c, out)
}

// GetPrice handles GET /api/v1/prices/:pair.
func (h *MarketHandler) GetPrice(c *gin.Context) {
	pair := dto.NormalizePair(c.Param("pair"))

	quote, err := h.oracle.Price(c.Request.Context(), pair)
	if err != nil {
		response.Error(c, apperror.ErrOracleUnavailable(pair, err))
		return
	}

	response.OK(c, dto.QuoteResponse{
		Pair:  quote.Pair,
		Price: quote.Price.String(),
		At:    quote.At.Format(time.RFC3339),
	})
}
