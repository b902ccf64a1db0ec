package graph

import (
	"context"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
)

type principalKey struct{}

// WithPrincipal attaches the caller that passed the auth gate.
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the gated caller. It is only present inside
// resolvers wrapped by Gate.
func PrincipalFromContext(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(domain.Principal)
	return p, ok
}
