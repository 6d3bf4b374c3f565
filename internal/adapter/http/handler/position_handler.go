package handler

import (
	"time"

	"timed-trading-platform/internal/adapter/http/dto"
	"timed-trading-platform/internal/core/domain"
	"timed-trading-platform/internal/core/ports"
	"timed-trading-platform/pkg/apperror"
	"timed-trading-platform/pkg/response"

	"github.com/gin-gonic/gin"
)

// PositionHandler handles timed position endpoints.
type PositionHandler struct {
	positionSvc ports.PositionService
}

// NewPositionHandler creates a new PositionHandler.
func NewPositionHandler(positionSvc ports.PositionService) *PositionHandler {
	return &PositionHandler{positionSvc: positionSvc}
}

// Open handles POST /api/v1/positions.
func (h *PositionHandler) Open(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	var req dto.OpenPositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	position, err := h.positionSvc.Open(c.Request.Context(), ports.OpenPositionRequest{
		UserID:       userID,
		Pair:         dto.NormalizePair(req.Pair),
		Stake:        req.Stake,
		Direction:    domain.Direction(req.Direction),
		DurationSecs: req.DurationSecs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toPositionResponse(position))
}

// List handles GET /api/v1/positions.
func (h *PositionHandler) List(c *gin.Context) {
	userID, ok := authedUserID(c)
	if !ok {
		return
	}

	positions, err := h.positionSvc.ListByUser(c.Request.Context(), userID, listLimit(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	out := make([]dto.PositionResponse, 0, len(positions))
	for i := range positions {
		out = append(out, toPositionResponse(&positions[i]))
	}
	response.OK(c, out)
}

func toPositionResponse(p *domain.Position) dto.PositionResponse {
	resp := dto.PositionResponse{
		ID:            p.ID.String(),
		Pair:          p.Pair,
		EntryPrice:    p.EntryPrice.String(),
		Stake:         p.Stake.String(),
		Direction:     string(p.Direction),
		DurationSecs:  p.DurationSecs,
		PayoutPercent: p.PayoutPercent.String(),
		State:         string(p.State),
		PriceStale:    p.PriceStale,
		OpenedAt:      p.OpenedAt.Format(time.RFC3339),
		Deadline:      p.Deadline.Format(time.RFC3339),
	}
	if p.Outcome != nil {
		outcome := string(*p.Outcome)
		resp.Outcome = &outcome
	}
	if p.ClosePrice != nil {
		price := p.ClosePrice.String()
		resp.ClosePrice = &price
	}
	if p.SettledAt != nil {
		settled := p.SettledAt.Format(time.RFC3339)
		resp.SettledAt = &settled
	}
	return resp
}
