package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/league"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/roster"
	"github.com/squaredcircle/fantasy-wrestling/internal/domain/wrestler"
	"github.com/squaredcircle/fantasy-wrestling/internal/platform/logging"
)

func newLeagueServiceFixture() (*LeagueService, *stubRosterRepo) {
	leagueRepo := &stubLeagueRepo{
		leagues: map[string]league.League{
			"lg-1": {ID: "lg-1", Name: "Monday Warfare", CommissionerID: "usr-comm"},
		},
	}
	rosterRepo := &stubRosterRepo{
		assignments: map[string]roster.Assignment{
			rosterKey("lg-1", "w-1"): {LeagueID: "lg-1", OwnerID: "owner-1", WrestlerID: "w-1"},
		},
	}
	wrestlerRepo := &stubWrestlerRepo{
		wrestlers: map[string]wrestler.Wrestler{
			"w-1": {ID: "w-1", Name: "Atlas Kane", Slug: "atlas-kane"},
		},
	}

	return NewLeagueService(leagueRepo, rosterRepo, wrestlerRepo, logging.NewNop()), rosterRepo
}

func TestLeagueService_GetLeague(t *testing.T) {
	t.Parallel()

	svc, _ := newLeagueServiceFixture()

	lg, err := svc.GetLeague(context.Background(), "lg-1")
	if err != nil {
		t.Fatalf("GetLeague: %v", err)
	}
	if lg.Name != "Monday Warfare" {
		t.Fatalf("league name got=%q want=%q", lg.Name, "Monday Warfare")
	}
}

func TestLeagueService_GetLeague_NotFound(t *testing.T) {
	t.Parallel()

	svc, _ := newLeagueServiceFixture()

	_, err := svc.GetLeague(context.Background(), "lg-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLeagueService_ListRoster(t *testing.T) {
	t.Parallel()

	svc, _ := newLeagueServiceFixture()

	assignments, err := svc.ListRoster(context.Background(), "lg-1")
	if err != nil {
		t.Fatalf("ListRoster: %v", err)
	}
	if len(assignments) != 1 {
		t.Fatalf("assignment count got=%d want=1", len(assignments))
	}
	if assignments[0].WrestlerID != "w-1" {
		t.Fatalf("wrestler got=%q want=%q", assignments[0].WrestlerID, "w-1")
	}
}

func TestLeagueService_ListRoster_UnknownLeague(t *testing.T) {
	t.Parallel()

	svc, _ := newLeagueServiceFixture()

	_, err := svc.ListRoster(context.Background(), "lg-missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
