package roster

import "context"

// Repository persists roster assignments. Create fails closed with
// ErrAlreadyRostered when the wrestler is held by any owner in the
// league, so concurrent writers race safely. Delete matches the exact
// (league, owner, wrestler) triple and reports whether a row existed,
// which keeps trade-leg application retry-safe.
type Repository interface {
	Create(ctx context.Context, assignment Assignment) error
	Upsert(ctx context.Context, assignment Assignment) error
	Delete(ctx context.Context, leagueID, ownerID, wrestlerID string) (bool, error)
	Get(ctx context.Context, leagueID, wrestlerID string) (Assignment, bool, error)
	ListByLeague(ctx context.Context, leagueID string) ([]Assignment, error)
	ListByOwner(ctx context.Context, leagueID, ownerID string) ([]Assignment, error)
}
