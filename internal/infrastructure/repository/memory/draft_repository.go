package memory

import (
	"context"
	"sync"
	"time"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/draft"
)

type DraftOrderRepository struct {
	mu    sync.RWMutex
	items map[string][]draft.OrderEntry
}

func NewDraftOrderRepository() *DraftOrderRepository {
	return &DraftOrderRepository{items: make(map[string][]draft.OrderEntry)}
}

func (r *DraftOrderRepository) DeleteByLeague(_ context.Context, leagueID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, leagueID)

	return nil
}

func (r *DraftOrderRepository) InsertEntries(_ context.Context, entries []draft.OrderEntry) error {
	if len(entries) == 0 {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	leagueID := entries[0].LeagueID
	r.items[leagueID] = append(r.items[leagueID], entries...)

	return nil
}

func (r *DraftOrderRepository) GetByOverallPick(_ context.Context, leagueID string, overallPick int) (draft.OrderEntry, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, e := range r.items[leagueID] {
		if e.OverallPick == overallPick {
			return e, true, nil
		}
	}

	return draft.OrderEntry{}, false, nil
}

func (r *DraftOrderRepository) CountByLeague(_ context.Context, leagueID string) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items[leagueID]), nil
}

func (r *DraftOrderRepository) ListByLeague(_ context.Context, leagueID string) ([]draft.OrderEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.items[leagueID]
	out := make([]draft.OrderEntry, len(entries))
	copy(out, entries)

	return out, nil
}

type PickAssetRepository struct {
	mu    sync.RWMutex
	items map[string]draft.PickAsset
}

func NewPickAssetRepository(picks []draft.PickAsset) *PickAssetRepository {
	items := make(map[string]draft.PickAsset, len(picks))
	for _, p := range picks {
		items[p.ID] = p
	}

	return &PickAssetRepository{items: items}
}

func (r *PickAssetRepository) GetByID(_ context.Context, pickID string) (draft.PickAsset, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.items[pickID]
	if !ok {
		return draft.PickAsset{}, false, nil
	}

	return p, true, nil
}

// MarkUsed re-checks the unused guard under the write lock so exactly
// one of two racing redemptions wins.
func (r *PickAssetRepository) MarkUsed(_ context.Context, pickID string, usedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[pickID]
	if !ok || p.UsedAt != nil {
		return false, nil
	}
	p.UsedAt = &usedAt
	r.items[pickID] = p

	return true, nil
}

func (r *PickAssetRepository) UpdateOwner(_ context.Context, pickID, ownerID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.items[pickID]
	if !ok {
		return nil
	}
	p.CurrentOwnerID = ownerID
	r.items[pickID] = p

	return nil
}

func (r *PickAssetRepository) ListByLeague(_ context.Context, leagueID string) ([]draft.PickAsset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []draft.PickAsset
	for _, p := range r.items {
		if p.LeagueID == leagueID {
			out = append(out, p)
		}
	}

	return out, nil
}
