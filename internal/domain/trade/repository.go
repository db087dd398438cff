package trade

import "context"

// Repository persists trades. The store offers no multi-statement
// transactions, so header and leg writes are separate calls and
// DeleteTrade exists as the compensating action for a failed leg
// insert.
type Repository interface {
	CreateTrade(ctx context.Context, t Trade) error
	CreateLegs(ctx context.Context, tradeID string, legs []Leg) error
	DeleteTrade(ctx context.Context, tradeID string) error
	ListByLeague(ctx context.Context, leagueID string) ([]Trade, error)
}
