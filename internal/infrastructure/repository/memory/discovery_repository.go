package memory

import (
	"context"
	"sync"
	"time"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/discovery"
)

type DiscoveryRepository struct {
	mu    sync.RWMutex
	items map[string]discovery.Holding
}

func NewDiscoveryRepository(holdings []discovery.Holding) *DiscoveryRepository {
	items := make(map[string]discovery.Holding, len(holdings))
	for _, h := range holdings {
		items[h.ID] = h
	}

	return &DiscoveryRepository{items: items}
}

func (r *DiscoveryRepository) Create(_ context.Context, holding discovery.Holding) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[holding.ID] = holding

	return nil
}

func (r *DiscoveryRepository) Delete(_ context.Context, holdingID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, holdingID)

	return nil
}

func (r *DiscoveryRepository) GetByID(_ context.Context, holdingID string) (discovery.Holding, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.items[holdingID]
	if !ok {
		return discovery.Holding{}, false, nil
	}

	return h, true, nil
}

func (r *DiscoveryRepository) SetDebutDate(_ context.Context, holdingID string, debut time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.items[holdingID]
	if !ok || h.ActivatedAt != nil {
		return false, nil
	}
	h.DebutDate = &debut
	r.items[holdingID] = h

	return true, nil
}

// MarkActivated re-checks the not-yet-activated guard under the write
// lock so exactly one of two racing activations wins.
func (r *DiscoveryRepository) MarkActivated(_ context.Context, holdingID string, activatedAt time.Time) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	h, ok := r.items[holdingID]
	if !ok || h.ActivatedAt != nil {
		return false, nil
	}
	h.ActivatedAt = &activatedAt
	r.items[holdingID] = h

	return true, nil
}

func (r *DiscoveryRepository) ListByOwner(_ context.Context, leagueID, ownerID string) ([]discovery.Holding, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []discovery.Holding
	for _, h := range r.items {
		if h.LeagueID == leagueID && h.OwnerID == ownerID {
			out = append(out, h)
		}
	}

	return out, nil
}
