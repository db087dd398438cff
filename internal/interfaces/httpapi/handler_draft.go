package httpapi

import (
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/squaredcircle/fantasy-wrestling/internal/usecase"
)

type makeDraftPickRequest struct {
	WrestlerID string `json:"wrestler_id" validate:"required"`
}

func (h *Handler) GenerateDraftOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GenerateDraftOrder")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	leagueID := r.PathValue("leagueID")
	entries, err := h.draftService.GenerateDraftOrder(ctx, leagueID, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "generate draft order failed", "league_id", leagueID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, draftOrderToDTO(entries))
}

func (h *Handler) GetDraftTurn(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDraftTurn")
	defer span.End()

	turn, active, err := h.draftService.GetCurrentTurn(ctx, r.PathValue("leagueID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}
	if !active {
		writeSuccess(ctx, w, http.StatusOK, currentTurnDTO{Active: false})
		return
	}

	writeSuccess(ctx, w, http.StatusOK, currentTurnDTO{
		Active:      true,
		OverallPick: turn.OverallPick,
		Round:       turn.Round,
		PickInRound: turn.PickInRound,
		UserID:      turn.UserID,
	})
}

func (h *Handler) MakeDraftPick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.MakeDraftPick")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req makeDraftPickRequest
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

	leagueID := r.PathValue("leagueID")
	result, err := h.draftService.MakePick(ctx, leagueID, principal.UserID, req.WrestlerID)
	if err != nil {
		h.logger.WarnContext(ctx, "draft pick failed", "league_id", leagueID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, makePickResultDTO{
		OverallPick: result.OverallPick,
		PickerID:    result.PickerID,
		WrestlerID:  result.WrestlerID,
		DraftStatus: string(result.DraftStatus),
		NextPick:    result.NextPick,
	})
}
