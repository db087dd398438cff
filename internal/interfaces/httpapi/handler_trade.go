package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/trade"
	"github.com/squaredcircle/fantasy-wrestling/internal/usecase"
)

type tradeLegRequest struct {
	FromOwnerID string `json:"from_owner_id" validate:"required"`
	ToOwnerID   string `json:"to_owner_id" validate:"required"`
	WrestlerID  string `json:"wrestler_id" validate:"omitempty"`
	DraftPickID string `json:"draft_pick_id" validate:"omitempty"`
}

type executeTradeRequest struct {
	Notes string            `json:"notes" validate:"omitempty,max=500"`
	Legs  []tradeLegRequest `json:"legs" validate:"required,min=1,max=10,dive"`
}

func (h *Handler) ExecuteTrade(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ExecuteTrade")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req executeTradeRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	legs := make([]trade.Leg, 0, len(req.Legs))
	for _, leg := range req.Legs {
		legs = append(legs, trade.Leg{
			FromOwnerID: leg.FromOwnerID,
			ToOwnerID:   leg.ToOwnerID,
			WrestlerID:  leg.WrestlerID,
			DraftPickID: leg.DraftPickID,
		})
	}

	leagueID := r.PathValue("leagueID")
	result, err := h.tradeService.ExecuteTrade(ctx, leagueID, principal.UserID, usecase.TradeInput{
		Notes: req.Notes,
		Legs:  legs,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "trade execution failed", "league_id", leagueID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, tradeResultToDTO(result))
}

func (h *Handler) ListTrades(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTrades")
	defer span.End()

	trades, err := h.tradeService.ListTrades(ctx, r.PathValue("leagueID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	dtos := make([]tradeDTO, 0, len(trades))
	for _, item := range trades {
		dtos = append(dtos, tradeToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, dtos)
}
