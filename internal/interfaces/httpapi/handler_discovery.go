package httpapi

import (
	"fmt"
	"net/http"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/squaredcircle/fantasy-wrestling/internal/usecase"
)

type redeemDiscoveryPickRequest struct {
	DraftPickID  string `json:"draft_pick_id" validate:"required"`
	WrestlerName string `json:"wrestler_name" validate:"required,max=120"`
	Company      string `json:"company" validate:"omitempty,max=120"`
}

type setDebutDateRequest struct {
	DebutDate string `json:"debut_date" validate:"required,datetime=2006-01-02"`
}

func (h *Handler) RedeemDiscoveryPick(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RedeemDiscoveryPick")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req redeemDiscoveryPickRequest
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
	holding, err := h.discoveryService.RedeemPick(ctx, leagueID, principal.UserID, req.DraftPickID, req.WrestlerName, req.Company)
	if err != nil {
		h.logger.WarnContext(ctx, "discovery redemption failed", "league_id", leagueID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, holdingToDTO(holding, time.Now().UTC()))
}

func (h *Handler) ListDiscoveryHoldings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDiscoveryHoldings")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	views, err := h.discoveryService.ListHoldings(ctx, r.PathValue("leagueID"), principal.UserID)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	dtos := make([]holdingDTO, 0, len(views))
	for _, view := range views {
		dtos = append(dtos, holdingViewToDTO(view))
	}
	writeSuccess(ctx, w, http.StatusOK, dtos)
}

func (h *Handler) SetDiscoveryDebutDate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetDiscoveryDebutDate")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	var req setDebutDateRequest
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

	debut, err := time.Parse("2006-01-02", req.DebutDate)
	if err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid debut date: %v", usecase.ErrInvalidInput, err))
		return
	}

	holdingID := r.PathValue("holdingID")
	holding, err := h.discoveryService.SetDebutDate(ctx, holdingID, principal.UserID, debut)
	if err != nil {
		h.logger.WarnContext(ctx, "set debut date failed", "holding_id", holdingID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, holdingToDTO(holding, time.Now().UTC()))
}

func (h *Handler) ActivateDiscoveryHolding(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ActivateDiscoveryHolding")
	defer span.End()

	principal, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: principal is missing from request context", usecase.ErrUnauthorized))
		return
	}

	holdingID := r.PathValue("holdingID")
	assignment, err := h.discoveryService.Activate(ctx, holdingID, principal.UserID)
	if err != nil {
		h.logger.WarnContext(ctx, "holding activation failed", "holding_id", holdingID, "user_id", principal.UserID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, rosterAssignmentToDTO(assignment))
}
