package httpapi

import (
	"context"

	"github.com/squaredcircle/fantasy-wrestling/internal/domain/user"
)

// principalKey is unexported so only this package can stash or read the
// authenticated principal on a request context.
type principalKey struct{}

func withPrincipal(ctx context.Context, p user.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

func principalFromContext(ctx context.Context) (user.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(user.Principal)
	return p, ok
}
