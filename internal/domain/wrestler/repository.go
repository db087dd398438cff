package wrestler

import "context"

// Repository describes wrestler persistence needs from use cases.
type Repository interface {
	List(ctx context.Context) ([]Wrestler, error)
	GetByID(ctx context.Context, wrestlerID string) (Wrestler, bool, error)
	GetBySlug(ctx context.Context, slug string) (Wrestler, bool, error)
	Create(ctx context.Context, w Wrestler) error
}
