package draft

import (
	"context"
	"time"
)

// OrderRepository persists generated draft orders. Regeneration deletes
// and replaces the whole entry set; entries are immutable afterwards.
type OrderRepository interface {
	DeleteByLeague(ctx context.Context, leagueID string) error
	InsertEntries(ctx context.Context, entries []OrderEntry) error
	GetByOverallPick(ctx context.Context, leagueID string, overallPick int) (OrderEntry, bool, error)
	CountByLeague(ctx context.Context, leagueID string) (int, error)
	ListByLeague(ctx context.Context, leagueID string) ([]OrderEntry, error)
}

// PickAssetRepository persists tradable draft picks. MarkUsed is
// guarded at write time (used_at still unset) and reports whether the
// guard held, so a used pick can never be redeemed twice.
type PickAssetRepository interface {
	GetByID(ctx context.Context, pickID string) (PickAsset, bool, error)
	MarkUsed(ctx context.Context, pickID string, usedAt time.Time) (bool, error)
	UpdateOwner(ctx context.Context, pickID, ownerID string) error
	ListByLeague(ctx context.Context, leagueID string) ([]PickAsset, error)
}
