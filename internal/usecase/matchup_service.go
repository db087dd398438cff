package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/league"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/matchup"
	"github.com/squaredcircle/fantasy-wrestling/internal/platform/logging"
	"github.com/squaredcircle/fantasy-wrestling/internal/platform/resilience"
)

// prefetchConcurrency caps the number of scorer windows fetched at
// once while computing a season.
const prefetchConcurrency = 4

type MatchupService struct {
	leagueRepo league.Repository
	points     matchup.PointsSource
	logger     *logging.Logger
	now        func() time.Time
	standings  resilience.SingleFlight
}

func NewMatchupService(leagueRepo league.Repository, points matchup.PointsSource, logger *logging.Logger) *MatchupService {
	if logger == nil {
		logger = logging.Default()
	}

	return &MatchupService{
		leagueRepo: leagueRepo,
		points:     points,
		logger:     logger,
		now:        time.Now,
	}
}

// ComputeWeeklyResults derives the league's weekly outcomes from the
// draft date (or start date) through the earlier of the league end and
// today. Week point totals are fetched concurrently, then folded in
// week order because the belt state of one week feeds the next.
func (s *MatchupService) ComputeWeeklyResults(ctx context.Context, leagueID string) ([]matchup.WeeklyResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchupService.ComputeWeeklyResults")
	defer span.End()

	lg, found, err := s.leagueRepo.GetByID(ctx, leagueID)
	if err != nil {
		return nil, fmt.Errorf("get league: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("%w: league=%s", ErrNotFound, leagueID)
	}

	end := lg.EndDate
	if now := s.now(); now.Before(end) {
		end = now
	}

	windows := matchup.Weeks(lg.EffectiveStartDate(), end)
	if len(windows) == 0 {
		return nil, nil
	}

	weekPoints, err := s.fetchWeekPoints(ctx, leagueID, windows)
	if err != nil {
		return nil, err
	}

	results := make([]matchup.WeeklyResult, 0, len(windows))
	beltHolder := ""
	for i, window := range windows {
		points := weekPoints[i]
		result := matchup.WeeklyResult{
			Week:          window,
			PointsByOwner: points,
			BeltHolderID:  beltHolder,
		}

		winner, ok := weeklyWinner(points)
		if ok {
			result.WinnerID = winner
			result.WeeklyWinBonus = matchup.WeeklyWinBonus
			switch beltHolder {
			case winner:
				result.BeltRetained = true
				result.BeltBonus = matchup.BeltRetainBonus
			default:
				result.BeltBonus = matchup.BeltInitialBonus
			}
			beltHolder = winner
			result.BeltHolderID = beltHolder
		}

		results = append(results, result)
	}

	return results, nil
}

// GetStandings folds the weekly results into per-owner totals, sorted
// by total points descending. Concurrent callers for the same league
// share a single computation.
func (s *MatchupService) GetStandings(ctx context.Context, leagueID string) ([]matchup.OwnerStanding, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchupService.GetStandings")
	defer span.End()

	val, err, shared := s.standings.Do("standings:"+leagueID, func() (any, error) {
		return s.computeStandings(ctx, leagueID)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.DebugContext(ctx, "standings shared from in-flight computation", "league_id", leagueID)
	}

	return val.([]matchup.OwnerStanding), nil
}

func (s *MatchupService) computeStandings(ctx context.Context, leagueID string) ([]matchup.OwnerStanding, error) {
	results, err := s.ComputeWeeklyResults(ctx, leagueID)
	if err != nil {
		return nil, err
	}

	totals := map[string]*matchup.OwnerStanding{}
	ensure := func(ownerID string) *matchup.OwnerStanding {
		st, ok := totals[ownerID]
		if !ok {
			st = &matchup.OwnerStanding{OwnerID: ownerID}
			totals[ownerID] = st
		}
		return st
	}

	for _, week := range results {
		for ownerID, pts := range week.PointsByOwner {
			ensure(ownerID).BasePoints += pts
		}
		if week.WinnerID != "" {
			ensure(week.WinnerID).BonusPoints += week.WeeklyWinBonus + week.BeltBonus
		}
	}

	standings := make([]matchup.OwnerStanding, 0, len(totals))
	for _, st := range totals {
		st.TotalPoints = st.BasePoints + st.BonusPoints
		standings = append(standings, *st)
	}
	sort.Slice(standings, func(i, j int) bool {
		if standings[i].TotalPoints != standings[j].TotalPoints {
			return standings[i].TotalPoints > standings[j].TotalPoints
		}
		return standings[i].OwnerID < standings[j].OwnerID
	})

	return standings, nil
}

// fetchWeekPoints pulls every window's totals from the scorer with
// bounded concurrency, keyed back to window order.
func (s *MatchupService) fetchWeekPoints(ctx context.Context, leagueID string, windows []matchup.WeekWindow) ([]map[string]int, error) {
	type indexedPoints struct {
		index  int
		points map[string]int
	}

	p := pool.NewWithResults[indexedPoints]().
		WithContext(ctx).
		WithMaxGoroutines(prefetchConcurrency).
		WithCancelOnError()

	for i, window := range windows {
		i, window := i, window
		p.Go(func(ctx context.Context) (indexedPoints, error) {
			points, err := s.points.PointsForOwners(ctx, leagueID, window)
			if err != nil {
				return indexedPoints{}, fmt.Errorf("points for week of %s: %w",
					window.Start.Format("2006-01-02"), err)
			}
			return indexedPoints{index: i, points: points}, nil
		})
	}

	fetched, err := p.Wait()
	if err != nil {
		return nil, err
	}

	out := make([]map[string]int, len(windows))
	for _, f := range fetched {
		out[f.index] = f.points
	}

	return out, nil
}

// weeklyWinner is the unique strict-max owner with positive points. A
// tie at the top, or an all-zero week, produces no winner.
func weeklyWinner(points map[string]int) (string, bool) {
	best := ""
	bestPoints := 0
	tied := false
	for ownerID, pts := range points {
		switch {
		case pts > bestPoints:
			best, bestPoints, tied = ownerID, pts, false
		case pts == bestPoints && pts > 0:
			tied = true
		}
	}
	if best == "" || tied {
		return "", false
	}
	return best, true
}
