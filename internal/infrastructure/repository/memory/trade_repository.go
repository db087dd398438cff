package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/trade"
)

type TradeRepository struct {
	mu     sync.RWMutex
	items  map[string]trade.Trade
	orders []string
}

func NewTradeRepository() *TradeRepository {
	return &TradeRepository{items: make(map[string]trade.Trade)}
}

func (r *TradeRepository) CreateTrade(_ context.Context, t trade.Trade) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t.Legs = nil
	r.items[t.ID] = t
	r.orders = append(r.orders, t.ID)

	return nil
}

func (r *TradeRepository) CreateLegs(_ context.Context, tradeID string, legs []trade.Leg) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.items[tradeID]
	if !ok {
		return fmt.Errorf("trade %s not found", tradeID)
	}
	t.Legs = append(t.Legs, legs...)
	r.items[tradeID] = t

	return nil
}

func (r *TradeRepository) DeleteTrade(_ context.Context, tradeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.items, tradeID)
	for i, id := range r.orders {
		if id == tradeID {
			r.orders = append(r.orders[:i], r.orders[i+1:]...)
			break
		}
	}

	return nil
}

func (r *TradeRepository) ListByLeague(_ context.Context, leagueID string) ([]trade.Trade, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []trade.Trade
	for _, id := range r.orders {
		t := r.items[id]
		if t.LeagueID == leagueID {
			out = append(out, t)
		}
	}

	return out, nil
}
