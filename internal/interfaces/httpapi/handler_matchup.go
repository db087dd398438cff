package httpapi

import (
	"net/http"
)

func (h *Handler) ListWeeklyMatchups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListWeeklyMatchups")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	results, err := h.matchupService.ComputeWeeklyResults(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "weekly matchup computation failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, weeklyResultsToDTO(results))
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	leagueID := r.PathValue("leagueID")
	standings, err := h.matchupService.GetStandings(ctx, leagueID)
	if err != nil {
		h.logger.WarnContext(ctx, "standings computation failed", "league_id", leagueID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(standings))
}
