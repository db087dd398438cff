package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/league"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/matchup"
	"github.com/squaredcircle/fantasy-wrestling/internal/platform/logging"
)

type stubPointsSource struct {
	mu      sync.Mutex
	byWeek  map[string]map[string]int
	err     error
	fetches int
}

var _ matchup.PointsSource = (*stubPointsSource)(nil)

func (s *stubPointsSource) PointsForOwners(ctx context.Context, leagueID string, window matchup.WeekWindow) (map[string]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetches++
	if s.err != nil {
		return nil, s.err
	}
	return s.byWeek[window.Start.Format("2006-01-02")], nil
}

func newMatchupFixture(byWeek map[string]map[string]int) (*MatchupService, *stubPointsSource) {
	leagueRepo := &stubLeagueRepo{
		leagues: map[string]league.League{
			"lg-1": {
				ID:             "lg-1",
				Name:           "Hardcore Invitational",
				CommissionerID: "owner-a",
				// A Wednesday; weeks anchor to Monday 2025-01-06.
				StartDate: time.Date(2025, time.January, 8, 0, 0, 0, 0, time.UTC),
				EndDate:   time.Date(2025, time.January, 26, 0, 0, 0, 0, time.UTC),
			},
		},
	}

	points := &stubPointsSource{byWeek: byWeek}
	svc := NewMatchupService(leagueRepo, points, logging.NewNop())
	svc.now = func() time.Time {
		return time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC)
	}

	return svc, points
}

func TestComputeWeeklyResultsBeltFold(t *testing.T) {
	t.Parallel()

	svc, points := newMatchupFixture(map[string]map[string]int{
		"2025-01-06": {"owner-a": 20, "owner-b": 15},
		"2025-01-13": {"owner-a": 10, "owner-b": 10},
		"2025-01-20": {"owner-a": 5, "owner-b": 30},
	})

	results, err := svc.ComputeWeeklyResults(context.Background(), "lg-1")
	if err != nil {
		t.Fatalf("ComputeWeeklyResults() error = %v", err)
	}
	if len(results) != 3 {
		t.Fatalf("len(results) = %d, want 3", len(results))
	}
	if points.fetches != 3 {
		t.Fatalf("scorer fetches = %d, want 3", points.fetches)
	}

	// Week 1: owner-a wins and takes the vacant belt.
	w1 := results[0]
	if w1.WinnerID != "owner-a" || w1.BeltHolderID != "owner-a" {
		t.Fatalf("week 1 winner=%s holder=%s, want owner-a/owner-a", w1.WinnerID, w1.BeltHolderID)
	}
	if w1.WeeklyWinBonus != 15 || w1.BeltBonus != 5 || w1.BeltRetained {
		t.Fatalf("week 1 bonuses = %+v, want win 15 belt 5 not retained", w1)
	}

	// Week 2: tie, no winner, the belt stays put with no bonus.
	w2 := results[1]
	if w2.WinnerID != "" {
		t.Fatalf("week 2 winner = %s, want none on a tie", w2.WinnerID)
	}
	if w2.BeltHolderID != "owner-a" {
		t.Fatalf("week 2 belt holder = %s, want owner-a carried over", w2.BeltHolderID)
	}
	if w2.WeeklyWinBonus != 0 || w2.BeltBonus != 0 {
		t.Fatalf("week 2 bonuses = %+v, want none", w2)
	}

	// Week 3: owner-b wins and takes the belt from owner-a.
	w3 := results[2]
	if w3.WinnerID != "owner-b" || w3.BeltHolderID != "owner-b" {
		t.Fatalf("week 3 winner=%s holder=%s, want owner-b/owner-b", w3.WinnerID, w3.BeltHolderID)
	}
	if w3.BeltBonus != 5 || w3.BeltRetained {
		t.Fatalf("week 3 belt bonus = %d retained = %v, want transfer bonus 5", w3.BeltBonus, w3.BeltRetained)
	}
}

func TestComputeWeeklyResultsBeltRetain(t *testing.T) {
	t.Parallel()

	svc, _ := newMatchupFixture(map[string]map[string]int{
		"2025-01-06": {"owner-a": 20, "owner-b": 15},
		"2025-01-13": {"owner-a": 25, "owner-b": 10},
		"2025-01-20": {"owner-a": 5, "owner-b": 30},
	})

	results, err := svc.ComputeWeeklyResults(context.Background(), "lg-1")
	if err != nil {
		t.Fatalf("ComputeWeeklyResults() error = %v", err)
	}

	w2 := results[1]
	if !w2.BeltRetained || w2.BeltBonus != 3 {
		t.Fatalf("week 2 retained=%v bonus=%d, want retained with bonus 3", w2.BeltRetained, w2.BeltBonus)
	}
}

func TestComputeWeeklyResultsAllZeroWeekHasNoWinner(t *testing.T) {
	t.Parallel()

	svc, _ := newMatchupFixture(map[string]map[string]int{
		"2025-01-06": {"owner-a": 0, "owner-b": 0},
	})
	svc.now = func() time.Time {
		return time.Date(2025, time.January, 12, 0, 0, 0, 0, time.UTC)
	}

	results, err := svc.ComputeWeeklyResults(context.Background(), "lg-1")
	if err != nil {
		t.Fatalf("ComputeWeeklyResults() error = %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("len(results) = %d, want 1", len(results))
	}
	if results[0].WinnerID != "" || results[0].BeltHolderID != "" {
		t.Fatalf("zero week produced a winner: %+v", results[0])
	}
}

func TestComputeWeeklyResultsScorerFailure(t *testing.T) {
	t.Parallel()

	svc, points := newMatchupFixture(nil)
	points.err = errors.New("scorer down")

	_, err := svc.ComputeWeeklyResults(context.Background(), "lg-1")
	if err == nil {
		t.Fatal("ComputeWeeklyResults() error = nil, want scorer failure")
	}
}

func TestGetStandingsFoldsBonuses(t *testing.T) {
	t.Parallel()

	svc, _ := newMatchupFixture(map[string]map[string]int{
		"2025-01-06": {"owner-a": 20, "owner-b": 15},
		"2025-01-13": {"owner-a": 10, "owner-b": 10},
		"2025-01-20": {"owner-a": 5, "owner-b": 30},
	})

	standings, err := svc.GetStandings(context.Background(), "lg-1")
	if err != nil {
		t.Fatalf("GetStandings() error = %v", err)
	}
	if len(standings) != 2 {
		t.Fatalf("len(standings) = %d, want 2", len(standings))
	}

	// owner-b: 55 base + 15 win + 5 belt = 75 leads owner-a's
	// 35 base + 15 win + 5 belt = 55.
	first, second := standings[0], standings[1]
	if first.OwnerID != "owner-b" || first.TotalPoints != 75 {
		t.Fatalf("leader = %+v, want owner-b on 75", first)
	}
	if first.BasePoints != 55 || first.BonusPoints != 20 {
		t.Fatalf("leader split = %+v, want base 55 bonus 20", first)
	}
	if second.OwnerID != "owner-a" || second.TotalPoints != 55 {
		t.Fatalf("runner-up = %+v, want owner-a on 55", second)
	}
}

func TestComputeWeeklyResultsClampsToToday(t *testing.T) {
	t.Parallel()

	svc, _ := newMatchupFixture(map[string]map[string]int{
		"2025-01-06": {"owner-a": 20},
		"2025-01-13": {"owner-a": 10},
	})
	// Mid second week: the third league week has not started.
	svc.now = func() time.Time {
		return time.Date(2025, time.January, 16, 0, 0, 0, 0, time.UTC)
	}

	results, err := svc.ComputeWeeklyResults(context.Background(), "lg-1")
	if err != nil {
		t.Fatalf("ComputeWeeklyResults() error = %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("len(results) = %d, want 2", len(results))
	}
}
