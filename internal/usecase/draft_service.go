package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/draft"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/league"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/roster"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/wrestler"
	"github.com/squaredcircle/fantasy-wrestling/internal/platform/logging"
)

// CurrentTurn is the on-the-clock slot of an in-progress draft.
type CurrentTurn struct {
	OverallPick int
	Round       int
	PickInRound int
	UserID      string
}

// MakePickResult reports the roster write and cursor movement of one
// accepted pick.
type MakePickResult struct {
	OverallPick int
	PickerID    string
	WrestlerID  string
	DraftStatus league.DraftStatus
	NextPick    *int
}

type DraftService struct {
	leagueRepo   league.Repository
	orderRepo    draft.OrderRepository
	rosterRepo   roster.Repository
	wrestlerRepo wrestler.Repository
	logger       *logging.Logger
	shuffle      func(n int, swap func(i, j int))
}

func NewDraftService(
	leagueRepo league.Repository,
	orderRepo draft.OrderRepository,
	rosterRepo roster.Repository,
	wrestlerRepo wrestler.Repository,
	logger *logging.Logger,
) *DraftService {
	if logger == nil {
		logger = logging.Default()
	}

	return &DraftService{
		leagueRepo:   leagueRepo,
		orderRepo:    orderRepo,
		rosterRepo:   rosterRepo,
		wrestlerRepo: wrestlerRepo,
		logger:       logger,
		shuffle:      rand.New(rand.NewSource(time.Now().UnixNano())).Shuffle,
	}
}

// GenerateDraftOrder shuffles round one, sequences the full order for
// the league's roster size and draft style, and opens the draft at
// pick 1. The draft-state update is skipped entirely when the entry
// insert fails, so a league never ends up started without an order.
func (s *DraftService) GenerateDraftOrder(ctx context.Context, leagueID, actorID string) ([]draft.OrderEntry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.GenerateDraftOrder")
	defer span.End()

	lg, err := s.requireLeague(ctx, leagueID)
	if err != nil {
		return nil, err
	}
	if lg.CommissionerID != actorID {
		return nil, fmt.Errorf("%w: only the commissioner can generate the draft order", ErrUnauthorized)
	}

	members, err := s.leagueRepo.ListMembers(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list league members: %w", err)
	}

	rules, ok := roster.RulesForTeamCount(len(members))
	if !ok {
		return nil, fmt.Errorf("%w: league has %d members", draft.ErrInvalidLeagueSize, len(members))
	}

	roundOne := make([]string, 0, len(members))
	for _, member := range members {
		roundOne = append(roundOne, member.UserID)
	}
	s.shuffle(len(roundOne), func(i, j int) {
		roundOne[i], roundOne[j] = roundOne[j], roundOne[i]
	})

	entries := draft.BuildOrder(leagueID, roundOne, rules.RosterSize, lg.DraftStyle)

	if err := s.orderRepo.DeleteByLeague(ctx, leagueID); err != nil {
		return nil, fmt.Errorf("delete prior draft order: %w", err)
	}
	if err := s.orderRepo.InsertEntries(ctx, entries); err != nil {
		return nil, fmt.Errorf("insert draft order entries: %w", err)
	}

	firstPick := 1
	if err := s.leagueRepo.UpdateDraftState(ctx, leagueID, league.DraftStatusInProgress, &firstPick); err != nil {
		return nil, fmt.Errorf("open draft: %w", err)
	}

	s.logger.InfoContext(ctx, "draft order generated",
		"league_id", leagueID,
		"teams", len(members),
		"rounds", rules.RosterSize,
		"style", string(lg.DraftStyle),
	)

	return entries, nil
}

// GetCurrentTurn resolves the cursor of an in-progress draft into the
// slot whose owner is on the clock.
func (s *DraftService) GetCurrentTurn(ctx context.Context, leagueID string) (CurrentTurn, bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.GetCurrentTurn")
	defer span.End()

	lg, err := s.requireLeague(ctx, leagueID)
	if err != nil {
		return CurrentTurn{}, false, err
	}
	if lg.DraftStatus != league.DraftStatusInProgress || lg.CurrentPick == nil {
		return CurrentTurn{}, false, nil
	}

	entry, found, err := s.orderRepo.GetByOverallPick(ctx, leagueID, *lg.CurrentPick)
	if err != nil {
		return CurrentTurn{}, false, fmt.Errorf("get order entry for pick %d: %w", *lg.CurrentPick, err)
	}
	if !found {
		return CurrentTurn{}, false, fmt.Errorf("draft cursor %d has no order entry in league=%s", *lg.CurrentPick, leagueID)
	}

	return CurrentTurn{
		OverallPick: entry.OverallPick,
		Round:       entry.Round,
		PickInRound: entry.PickInRound,
		UserID:      entry.UserID,
	}, true, nil
}

// MakePick rosters a wrestler for the on-the-clock owner and advances
// the cursor. The roster write goes first and the cursor never moves
// when it fails, so an errored pick is not skipped. Concurrent picks of
// the same wrestler fail closed on the roster uniqueness guard; callers
// serialize pick submission per league, with the commissioner path
// reserved for recovery.
func (s *DraftService) MakePick(ctx context.Context, leagueID, actorID, wrestlerID string) (MakePickResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DraftService.MakePick")
	defer span.End()

	wrestlerID = strings.TrimSpace(wrestlerID)
	if wrestlerID == "" {
		return MakePickResult{}, fmt.Errorf("%w: wrestler id is required", ErrInvalidInput)
	}

	if _, found, err := s.wrestlerRepo.GetByID(ctx, wrestlerID); err != nil {
		return MakePickResult{}, fmt.Errorf("get wrestler: %w", err)
	} else if !found {
		return MakePickResult{}, fmt.Errorf("%w: wrestler=%s", ErrNotFound, wrestlerID)
	}

	lg, err := s.requireLeague(ctx, leagueID)
	if err != nil {
		return MakePickResult{}, err
	}
	if lg.DraftStatus != league.DraftStatusInProgress || lg.CurrentPick == nil {
		return MakePickResult{}, fmt.Errorf("%w: league=%s status=%s", draft.ErrNoActiveDraft, leagueID, lg.DraftStatus)
	}

	entry, found, err := s.orderRepo.GetByOverallPick(ctx, leagueID, *lg.CurrentPick)
	if err != nil {
		return MakePickResult{}, fmt.Errorf("get order entry for pick %d: %w", *lg.CurrentPick, err)
	}
	if !found {
		return MakePickResult{}, fmt.Errorf("draft cursor %d has no order entry in league=%s", *lg.CurrentPick, leagueID)
	}

	if actorID != entry.UserID && actorID != lg.CommissionerID {
		return MakePickResult{}, fmt.Errorf("%w: pick %d belongs to %s", draft.ErrNotYourTurn, entry.OverallPick, entry.UserID)
	}

	assignment := roster.Assignment{
		LeagueID:   leagueID,
		OwnerID:    entry.UserID,
		WrestlerID: wrestlerID,
	}
	if err := s.rosterRepo.Create(ctx, assignment); err != nil {
		return MakePickResult{}, fmt.Errorf("roster drafted wrestler: %w", err)
	}

	total, err := s.orderRepo.CountByLeague(ctx, leagueID)
	if err != nil {
		return MakePickResult{}, fmt.Errorf("count draft order entries: %w", err)
	}

	result := MakePickResult{
		OverallPick: entry.OverallPick,
		PickerID:    entry.UserID,
		WrestlerID:  wrestlerID,
	}

	next := *lg.CurrentPick + 1
	if next > total {
		if err := s.leagueRepo.UpdateDraftState(ctx, leagueID, league.DraftStatusCompleted, nil); err != nil {
			return MakePickResult{}, fmt.Errorf("complete draft: %w", err)
		}
		result.DraftStatus = league.DraftStatusCompleted
		s.logger.InfoContext(ctx, "draft completed", "league_id", leagueID, "total_picks", total)
		return result, nil
	}

	if err := s.leagueRepo.UpdateDraftState(ctx, leagueID, league.DraftStatusInProgress, &next); err != nil {
		return MakePickResult{}, fmt.Errorf("advance draft cursor: %w", err)
	}
	result.DraftStatus = league.DraftStatusInProgress
	result.NextPick = &next

	return result, nil
}

func (s *DraftService) requireLeague(ctx context.Context, leagueID string) (league.League, error) {
	leagueID = strings.TrimSpace(leagueID)
	if leagueID == "" {
		return league.League{}, fmt.Errorf("%w: league id is required", ErrInvalidInput)
	}

	lg, found, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league by id: %w", err)
	}
	if !found {
		return league.League{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	return lg, nil
}
