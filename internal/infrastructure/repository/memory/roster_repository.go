package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/roster"
)

type RosterRepository struct {
	mu    sync.RWMutex
	items map[string]roster.Assignment
}

func rosterKey(leagueID, wrestlerID string) string {
	return leagueID + "|" + wrestlerID
}

func NewRosterRepository(assignments []roster.Assignment) *RosterRepository {
	items := make(map[string]roster.Assignment, len(assignments))
	for _, a := range assignments {
		items[rosterKey(a.LeagueID, a.WrestlerID)] = a
	}

	return &RosterRepository{items: items}
}

// Create fails when the wrestler is already rostered by anyone in the
// league, which is the write-time guard concurrent draft picks race on.
func (r *RosterRepository) Create(_ context.Context, a roster.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := rosterKey(a.LeagueID, a.WrestlerID)
	if _, exists := r.items[key]; exists {
		return fmt.Errorf("%w: wrestler=%s league=%s", roster.ErrAlreadyRostered, a.WrestlerID, a.LeagueID)
	}
	r.items[key] = a

	return nil
}

func (r *RosterRepository) Upsert(_ context.Context, a roster.Assignment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[rosterKey(a.LeagueID, a.WrestlerID)] = a

	return nil
}

func (r *RosterRepository) Delete(_ context.Context, leagueID, ownerID, wrestlerID string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := rosterKey(leagueID, wrestlerID)
	a, ok := r.items[key]
	if !ok || a.OwnerID != ownerID {
		return false, nil
	}
	delete(r.items, key)

	return true, nil
}

func (r *RosterRepository) Get(_ context.Context, leagueID, wrestlerID string) (roster.Assignment, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.items[rosterKey(leagueID, wrestlerID)]
	if !ok {
		return roster.Assignment{}, false, nil
	}

	return a, true, nil
}

func (r *RosterRepository) ListByLeague(_ context.Context, leagueID string) ([]roster.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []roster.Assignment
	for _, a := range r.items {
		if a.LeagueID == leagueID {
			out = append(out, a)
		}
	}

	return out, nil
}

func (r *RosterRepository) ListByOwner(_ context.Context, leagueID, ownerID string) ([]roster.Assignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []roster.Assignment
	for _, a := range r.items {
		if a.LeagueID == leagueID && a.OwnerID == ownerID {
			out = append(out, a)
		}
	}

	return out, nil
}
