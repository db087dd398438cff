package memory

import (
	"context"
	"sync"
	"time"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/matchup"
)

// ScoreEvent is one owner's points earned on one show date. The memory
// points source plays the role of the external event scorer for local
// runs and seeds.
type ScoreEvent struct {
	LeagueID string
	OwnerID  string
	Date     time.Time
	Points   int
}

type PointsSource struct {
	mu     sync.RWMutex
	events []ScoreEvent
}

func NewPointsSource(events []ScoreEvent) *PointsSource {
	return &PointsSource{events: events}
}

func (s *PointsSource) Record(event ScoreEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append(s.events, event)
}

func (s *PointsSource) PointsForOwners(_ context.Context, leagueID string, window matchup.WeekWindow) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]int)
	for _, e := range s.events {
		if e.LeagueID != leagueID {
			continue
		}
		// End is an inclusive calendar day.
		if e.Date.Before(window.Start) || !e.Date.Before(window.End.AddDate(0, 0, 1)) {
			continue
		}
		out[e.OwnerID] += e.Points
	}

	return out, nil
}
