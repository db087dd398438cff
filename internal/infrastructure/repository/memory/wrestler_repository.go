package memory

import (
	"context"
	"sync"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/wrestler"
)

type WrestlerRepository struct {
	mu     sync.RWMutex
	items  map[string]wrestler.Wrestler
	bySlug map[string]string
	orders []string
}

func NewWrestlerRepository(wrestlers []wrestler.Wrestler) *WrestlerRepository {
	r := &WrestlerRepository{
		items:  make(map[string]wrestler.Wrestler, len(wrestlers)),
		bySlug: make(map[string]string, len(wrestlers)),
	}
	for _, w := range wrestlers {
		r.items[w.ID] = w
		r.bySlug[w.Slug] = w.ID
		r.orders = append(r.orders, w.ID)
	}

	return r
}

func (r *WrestlerRepository) List(_ context.Context) ([]wrestler.Wrestler, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]wrestler.Wrestler, 0, len(r.orders))
	for _, id := range r.orders {
		out = append(out, r.items[id])
	}

	return out, nil
}

func (r *WrestlerRepository) GetByID(_ context.Context, wrestlerID string) (wrestler.Wrestler, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	w, ok := r.items[wrestlerID]
	if !ok {
		return wrestler.Wrestler{}, false, nil
	}

	return w, true, nil
}

func (r *WrestlerRepository) GetBySlug(_ context.Context, slug string) (wrestler.Wrestler, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.bySlug[slug]
	if !ok {
		return wrestler.Wrestler{}, false, nil
	}

	return r.items[id], true, nil
}

func (r *WrestlerRepository) Create(_ context.Context, w wrestler.Wrestler) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[w.ID] = w
	r.bySlug[w.Slug] = w.ID
	r.orders = append(r.orders, w.ID)

	return nil
}
