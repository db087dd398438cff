package usecase

import (
	"context"
	"fmt"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/league"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/roster"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/wrestler"
	"github.com/squaredcircle/fantasy-wrestling/internal/platform/logging"
)

// LeagueService serves the read-only league and wrestler catalogs.
type LeagueService struct {
	leagueRepo   league.Repository
	rosterRepo   roster.Repository
	wrestlerRepo wrestler.Repository
	logger       *logging.Logger
}

func NewLeagueService(
	leagueRepo league.Repository,
	rosterRepo roster.Repository,
	wrestlerRepo wrestler.Repository,
	logger *logging.Logger,
) *LeagueService {
	if logger == nil {
		logger = logging.Default()
	}

	return &LeagueService{
		leagueRepo:   leagueRepo,
		rosterRepo:   rosterRepo,
		wrestlerRepo: wrestlerRepo,
		logger:       logger,
	}
}

func (s *LeagueService) ListLeagues(ctx context.Context) ([]league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListLeagues")
	defer span.End()

	leagues, err := s.leagueRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leagues: %w", err)
	}

	return leagues, nil
}

func (s *LeagueService) GetLeague(ctx context.Context, leagueID string) (league.League, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.GetLeague")
	defer span.End()

	lg, found, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return league.League{}, fmt.Errorf("get league: %w", err)
	}
	if !found {
		return league.League{}, fmt.Errorf("%w: league %s", ErrNotFound, leagueID)
	}

	return lg, nil
}

func (s *LeagueService) ListRoster(ctx context.Context, leagueID string) ([]roster.Assignment, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListRoster")
	defer span.End()

	if _, err := s.GetLeague(ctx, leagueID); err != nil {
		return nil, err
	}

	assignments, err := s.rosterRepo.ListByLeague(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}

	return assignments, nil
}

func (s *LeagueService) ListWrestlers(ctx context.Context) ([]wrestler.Wrestler, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeagueService.ListWrestlers")
	defer span.End()

	wrestlers, err := s.wrestlerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list wrestlers: %w", err)
	}

	return wrestlers, nil
}
