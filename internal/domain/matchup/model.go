package matchup

import (
	"context"
	"time"
)

// Bonus points layered on top of base event scoring by the weekly fold.
const (
	WeeklyWinBonus   = 15
	BeltInitialBonus = 5
	BeltRetainBonus  = 3
)

// WeekWindow is one Monday-aligned scoring week, [Start, End] inclusive.
type WeekWindow struct {
	Start time.Time
	End   time.Time
}

// MondayOf rounds a date down to the Monday of its week.
func MondayOf(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7
	return day.AddDate(0, 0, -offset)
}

// Weeks splits [start, end] into Monday-aligned windows, stepping seven
// days until the window start passes end.
func Weeks(start, end time.Time) []WeekWindow {
	if end.Before(start) {
		return nil
	}

	var out []WeekWindow
	for monday := MondayOf(start); !monday.After(end); monday = monday.AddDate(0, 0, 7) {
		out = append(out, WeekWindow{
			Start: monday,
			End:   monday.AddDate(0, 0, 6),
		})
	}

	return out
}

// WeeklyResult is the derived outcome of one scoring week. It is
// recomputed on demand and never persisted.
type WeeklyResult struct {
	Week           WeekWindow
	PointsByOwner  map[string]int
	WinnerID       string
	BeltHolderID   string
	BeltRetained   bool
	WeeklyWinBonus int
	BeltBonus      int
}

// OwnerStanding aggregates an owner's base event points and fold
// bonuses across all weeks.
type OwnerStanding struct {
	OwnerID     string
	BasePoints  int
	BonusPoints int
	TotalPoints int
}

// PointsSource supplies per-owner point totals for a date window. It is
// an external collaborator: the event scorer computes the per-wrestler
// totals and rolls them up per owner.
type PointsSource interface {
	PointsForOwners(ctx context.Context, leagueID string, window WeekWindow) (map[string]int, error)
}
