package league

import "context"

// Repository describes league persistence needs from use cases. Draft
// state (status + current pick cursor) is the only mutable part the
// competition engine touches.
type Repository interface {
	List(ctx context.Context) ([]League, error)
	GetByID(ctx context.Context, leagueID string) (League, bool, error)
	ListMembers(ctx context.Context, leagueID string) ([]Member, error)
	GetMember(ctx context.Context, leagueID, userID string) (Member, bool, error)
	UpdateDraftState(ctx context.Context, leagueID string, status DraftStatus, currentPick *int) error
}
