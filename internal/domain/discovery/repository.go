package discovery

import (
	"context"
	"time"
)

// Repository persists discovery holdings. SetDebutDate and
// MarkActivated re-check the not-yet-activated guard at write time and
// report whether the guard held, closing the read-then-write race on
// concurrent activation.
type Repository interface {
	Create(ctx context.Context, holding Holding) error
	Delete(ctx context.Context, holdingID string) error
	GetByID(ctx context.Context, holdingID string) (Holding, bool, error)
	SetDebutDate(ctx context.Context, holdingID string, debut time.Time) (bool, error)
	MarkActivated(ctx context.Context, holdingID string, activatedAt time.Time) (bool, error)
	ListByOwner(ctx context.Context, leagueID, ownerID string) ([]Holding, error)
}
