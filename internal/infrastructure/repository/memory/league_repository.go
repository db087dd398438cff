package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/league"
)

type LeagueRepository struct {
	mu      sync.RWMutex
	items   map[string]league.League
	orders  []string
	members map[string][]league.Member
}

func NewLeagueRepository(leagues []league.League, members []league.Member) *LeagueRepository {
	items := make(map[string]league.League, len(leagues))
	orders := make([]string, 0, len(leagues))
	byLeague := make(map[string][]league.Member)

	for _, l := range leagues {
		items[l.ID] = l
		orders = append(orders, l.ID)
	}
	for _, m := range members {
		byLeague[m.LeagueID] = append(byLeague[m.LeagueID], m)
	}

	return &LeagueRepository{
		items:   items,
		orders:  orders,
		members: byLeague,
	}
}

func (r *LeagueRepository) List(_ context.Context) ([]league.League, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]league.League, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *LeagueRepository) GetByID(_ context.Context, leagueID string) (league.League, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	l, ok := r.items[leagueID]
	if !ok {
		return league.League{}, false, nil
	}

	return l, true, nil
}

func (r *LeagueRepository) ListMembers(_ context.Context, leagueID string) ([]league.Member, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members := r.members[leagueID]
	out := make([]league.Member, len(members))
	copy(out, members)

	return out, nil
}

func (r *LeagueRepository) GetMember(_ context.Context, leagueID, userID string) (league.Member, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.members[leagueID] {
		if m.UserID == userID {
			return m, true, nil
		}
	}

	return league.Member{}, false, nil
}

func (r *LeagueRepository) UpdateDraftState(_ context.Context, leagueID string, status league.DraftStatus, currentPick *int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.items[leagueID]
	if !ok {
		return fmt.Errorf("league %s not found", leagueID)
	}

	l.DraftStatus = status
	if currentPick == nil {
		l.CurrentPick = nil
	} else {
		pick := *currentPick
		l.CurrentPick = &pick
	}
	r.items[leagueID] = l

	return nil
}
