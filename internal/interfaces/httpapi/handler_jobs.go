package httpapi

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/squaredcircle/fantasy-wrestling/internal/usecase"
)

type refreshStandingsRequest struct {
	LeagueID   string `json:"league_id" validate:"omitempty"`
	MaxWorkers int    `json:"max_workers" validate:"omitempty,min=0,max=64"`
}

// RunRefreshStandingsJob recomputes standings across leagues. The body
// is optional; an empty body refreshes every league with the default
// worker count.
func (h *Handler) RunRefreshStandingsJob(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunRefreshStandingsJob")
	defer span.End()

	var req refreshStandingsRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.refreshService.Refresh(ctx, usecase.RefreshInput{
		LeagueID:   req.LeagueID,
		MaxWorkers: req.MaxWorkers,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "standings refresh job failed", "league_id", req.LeagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	status := http.StatusOK
	if result.FailedCount > 0 {
		status = http.StatusMultiStatus
	}
	writeSuccess(ctx, w, status, refreshResultToDTO(result))
}
