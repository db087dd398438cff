package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/squaredcircle/fantasy-wrestling/internal/platform/logging"
	"github.com/squaredcircle/fantasy-wrestling/internal/usecase"
)

type Handler struct {
	leagueService    *usecase.LeagueService
	draftService     *usecase.DraftService
	discoveryService *usecase.DiscoveryService
	tradeService     *usecase.TradeService
	matchupService   *usecase.MatchupService
	refreshService   *usecase.StandingsRefreshService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	leagueService *usecase.LeagueService,
	draftService *usecase.DraftService,
	discoveryService *usecase.DiscoveryService,
	tradeService *usecase.TradeService,
	matchupService *usecase.MatchupService,
	refreshService *usecase.StandingsRefreshService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:    leagueService,
		draftService:     draftService,
		discoveryService: discoveryService,
		tradeService:     tradeService,
		matchupService:   matchupService,
		refreshService:   refreshService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeSuccess(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) ListLeagues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagues")
	defer span.End()

	leagues, err := h.leagueService.ListLeagues(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list leagues failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leaguesToDTO(leagues))
}

func (h *Handler) GetLeague(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeague")
	defer span.End()

	lg, err := h.leagueService.GetLeague(ctx, r.PathValue("leagueID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, leagueToDTO(lg))
}

func (h *Handler) ListLeagueRoster(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListLeagueRoster")
	defer span.End()

	assignments, err := h.leagueService.ListRoster(ctx, r.PathValue("leagueID"))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	dtos := make([]rosterAssignmentDTO, 0, len(assignments))
	for _, assignment := range assignments {
		dtos = append(dtos, rosterAssignmentToDTO(assignment))
	}
	writeSuccess(ctx, w, http.StatusOK, dtos)
}

func (h *Handler) ListWrestlers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListWrestlers")
	defer span.End()

	wrestlers, err := h.leagueService.ListWrestlers(ctx)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	dtos := make([]wrestlerDTO, 0, len(wrestlers))
	for _, item := range wrestlers {
		dtos = append(dtos, wrestlerToDTO(item))
	}
	writeSuccess(ctx, w, http.StatusOK, dtos)
}
