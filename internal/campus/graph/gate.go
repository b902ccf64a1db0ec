package graph

import (
	"github.com/graphql-go/graphql"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/pkg/httpx"
	"github.com/aussiebroadwan/campus/pkg/slogx"
)

var staff = []domain.Role{domain.RoleAdmin, domain.RoleFaculty}

// Gate wraps resolve so it only runs for a caller holding one of allowed. An
// empty allowed list admits any authenticated caller. The principal is put
// into the resolver context before resolve is called.
func (r *Resolver) Gate(resolve graphql.FieldResolveFn, allowed ...domain.Role) graphql.FieldResolveFn {
	return func(p graphql.ResolveParams) (any, error) {
		token := httpx.TokenFromContext(p.Context)

		principal, err := r.Auth.Authenticate(p.Context, token, allowed...)
		if err != nil {
			return nil, err
		}

		ctx := WithPrincipal(p.Context, principal)
		p.Context = slogx.WithPrincipal(ctx, principal.User.ID, principal.SessionID)
		return resolve(p)
	}
}
