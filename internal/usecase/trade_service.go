package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/draft"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/league"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/roster"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/trade"
	"github.com/squaredcircle/fantasy-wrestling/internal/platform/id"
	"github.com/squaredcircle/fantasy-wrestling/internal/platform/logging"
)

// TradeInput is a proposed trade before it gets an ID or a date.
type TradeInput struct {
	Notes string
	Legs  []trade.Leg
}

// TradeResult pairs the recorded trade with the per-leg application
// outcomes. AllApplied is false when any leg failed after the record
// was committed.
type TradeResult struct {
	Trade      trade.Trade
	Reports    []trade.LegReport
	AllApplied bool
}

type TradeService struct {
	tradeRepo  trade.Repository
	pickRepo   draft.PickAssetRepository
	rosterRepo roster.Repository
	leagueRepo league.Repository
	tradeIDs   id.Generator
	logger     *logging.Logger
	now        func() time.Time
}

func NewTradeService(
	tradeRepo trade.Repository,
	pickRepo draft.PickAssetRepository,
	rosterRepo roster.Repository,
	leagueRepo league.Repository,
	logger *logging.Logger,
) *TradeService {
	if logger == nil {
		logger = logging.Default()
	}

	return &TradeService{
		tradeRepo:  tradeRepo,
		pickRepo:   pickRepo,
		rosterRepo: rosterRepo,
		leagueRepo: leagueRepo,
		tradeIDs:   id.NewPrefixedGenerator("trd_"),
		logger:     logger,
		now:        time.Now,
	}
}

// ExecuteTrade validates the legs, commits the trade record through a
// two-step saga (header then legs, header deleted when the legs fail),
// and then applies asset movement leg by leg. Leg application is best
// effort: a failed leg is reported, not rolled back, and the trade
// record stands either way so commissioners can repair manually.
func (s *TradeService) ExecuteTrade(ctx context.Context, leagueID, actorID string, input TradeInput) (TradeResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TradeService.ExecuteTrade")
	defer span.End()

	if len(input.Legs) == 0 {
		return TradeResult{}, fmt.Errorf("%w: a trade needs at least one leg", ErrInvalidInput)
	}

	if _, found, err := s.leagueRepo.GetByID(ctx, leagueID); err != nil {
		return TradeResult{}, fmt.Errorf("get league: %w", err)
	} else if !found {
		return TradeResult{}, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	if _, found, err := s.leagueRepo.GetMember(ctx, leagueID, actorID); err != nil {
		return TradeResult{}, fmt.Errorf("get trade submitter: %w", err)
	} else if !found {
		return TradeResult{}, fmt.Errorf("%w: user=%s is not in league=%s", ErrUnauthorized, actorID, leagueID)
	}

	if err := s.validateLegs(ctx, leagueID, input.Legs); err != nil {
		return TradeResult{}, err
	}

	tradeID, err := s.tradeIDs.NewID()
	if err != nil {
		return TradeResult{}, fmt.Errorf("generate trade id: %w", err)
	}

	legs := make([]trade.Leg, len(input.Legs))
	copy(legs, input.Legs)
	for i := range legs {
		legs[i].TradeID = tradeID
	}

	record := trade.Trade{
		ID:        tradeID,
		LeagueID:  leagueID,
		TradeDate: s.now().UTC(),
		Notes:     strings.TrimSpace(input.Notes),
		Legs:      legs,
	}

	err = runSaga(ctx, []sagaStep{
		{
			name:       "insert trade header",
			apply:      func(ctx context.Context) error { return s.tradeRepo.CreateTrade(ctx, record) },
			compensate: func(ctx context.Context) error { return s.tradeRepo.DeleteTrade(ctx, tradeID) },
		},
		{
			name:  "insert trade legs",
			apply: func(ctx context.Context) error { return s.tradeRepo.CreateLegs(ctx, tradeID, legs) },
		},
	})
	if err != nil {
		return TradeResult{}, fmt.Errorf("commit trade record: %w", err)
	}

	reports := make([]trade.LegReport, 0, len(legs))
	allApplied := true
	for i, leg := range legs {
		report := trade.LegReport{Index: i, Applied: true}
		if err := s.applyLeg(ctx, leagueID, leg); err != nil {
			report.Applied = false
			report.Message = err.Error()
			allApplied = false
			s.logger.WarnContext(ctx, "trade leg failed to apply",
				"trade_id", tradeID, "leg_index", i, "error", err)
		}
		reports = append(reports, report)
	}

	s.logger.InfoContext(ctx, "trade executed",
		"trade_id", tradeID, "league_id", leagueID, "legs", len(legs), "all_applied", allApplied)

	return TradeResult{Trade: record, Reports: reports, AllApplied: allApplied}, nil
}

// ListTrades returns the league's trade history.
func (s *TradeService) ListTrades(ctx context.Context, leagueID string) ([]trade.Trade, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TradeService.ListTrades")
	defer span.End()

	trades, err := s.tradeRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list trades: %w", err)
	}
	return trades, nil
}

// validateLegs rejects the whole trade before anything is written: bad
// shape, foreign owners, assets the sender does not hold.
func (s *TradeService) validateLegs(ctx context.Context, leagueID string, legs []trade.Leg) error {
	for i, leg := range legs {
		if err := leg.Validate(); err != nil {
			return fmt.Errorf("%w: leg %d: %v", ErrInvalidInput, i, err)
		}

		for _, ownerID := range []string{leg.FromOwnerID, leg.ToOwnerID} {
			if _, found, err := s.leagueRepo.GetMember(ctx, leagueID, ownerID); err != nil {
				return fmt.Errorf("get leg owner: %w", err)
			} else if !found {
				return fmt.Errorf("%w: leg %d: user=%s is not in league=%s", ErrInvalidInput, i, ownerID, leagueID)
			}
		}

		if leg.WrestlerID != "" {
			assignment, found, err := s.rosterRepo.Get(ctx, leagueID, leg.WrestlerID)
			if err != nil {
				return fmt.Errorf("get rostered wrestler: %w", err)
			}
			if !found || assignment.OwnerID != leg.FromOwnerID {
				return fmt.Errorf("%w: leg %d: wrestler=%s is not on %s's roster", ErrInvalidInput, i, leg.WrestlerID, leg.FromOwnerID)
			}
		}

		if leg.DraftPickID != "" {
			pick, found, err := s.pickRepo.GetByID(ctx, leg.DraftPickID)
			if err != nil {
				return fmt.Errorf("get traded pick: %w", err)
			}
			if !found || pick.LeagueID != leagueID {
				return fmt.Errorf("%w: leg %d: pick=%s not found in league=%s", ErrInvalidInput, i, leg.DraftPickID, leagueID)
			}
			if pick.CurrentOwnerID != leg.FromOwnerID {
				return fmt.Errorf("%w: leg %d: pick=%s is not owned by %s", ErrInvalidInput, i, leg.DraftPickID, leg.FromOwnerID)
			}
			if pick.UsedAt != nil {
				return fmt.Errorf("%w: leg %d: pick=%s has already been used", ErrInvalidInput, i, leg.DraftPickID)
			}
		}
	}

	return nil
}

// applyLeg moves one leg's assets. A traded wrestler keeps the contract
// length they carried under the previous owner.
func (s *TradeService) applyLeg(ctx context.Context, leagueID string, leg trade.Leg) error {
	if leg.WrestlerID != "" {
		assignment, found, err := s.rosterRepo.Get(ctx, leagueID, leg.WrestlerID)
		if err != nil {
			return fmt.Errorf("get rostered wrestler: %w", err)
		}
		if !found || assignment.OwnerID != leg.FromOwnerID {
			return fmt.Errorf("wrestler=%s no longer on %s's roster", leg.WrestlerID, leg.FromOwnerID)
		}

		removed, err := s.rosterRepo.Delete(ctx, leagueID, leg.FromOwnerID, leg.WrestlerID)
		if err != nil {
			return fmt.Errorf("remove wrestler from sender: %w", err)
		}
		if !removed {
			return fmt.Errorf("wrestler=%s no longer on %s's roster", leg.WrestlerID, leg.FromOwnerID)
		}

		assignment.OwnerID = leg.ToOwnerID
		if err := s.rosterRepo.Upsert(ctx, assignment); err != nil {
			return fmt.Errorf("assign wrestler to receiver: %w", err)
		}
	}

	if leg.DraftPickID != "" {
		if err := s.pickRepo.UpdateOwner(ctx, leg.DraftPickID, leg.ToOwnerID); err != nil {
			return fmt.Errorf("reassign pick owner: %w", err)
		}
	}

	return nil
}
