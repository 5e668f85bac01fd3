// Package authctx carries the authenticated principal of a request through
// context.Context. The HTTP adapter resolves the session cookie into a
// Principal once, and every workflow call downstream receives it explicitly
// instead of reading ambient session state.
package authctx

import (
	"context"

	"waterflow/internal/core/domain/model/account"
	"waterflow/internal/core/domain/model/kernel"
	"waterflow/internal/pkg/errs"
)

// Principal identifies the authenticated caller and the entity records
// attached to it. CustomerID and AgentID are nil unless the account is
// linked to a customer or delivery agent record.
type Principal struct {
	UserID     kernel.UUID
	Role       account.Role
	CustomerID *kernel.UUID
	AgentID    *kernel.UUID
}

// IsAdmin reports whether the principal holds the admin role.
func (p Principal) IsAdmin() bool {
	return p.Role == account.RoleAdmin
}

type principalKey struct{}

// WithPrincipal stores the principal in the context.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// FromContext retrieves the principal from the context, if any.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}

// RequireSession returns the principal attached to the context or an
// UnauthorizedError when no session was resolved for the request.
func RequireSession(ctx context.Context) (Principal, error) {
	p, ok := FromContext(ctx)
	if !ok {
		return Principal{}, errs.NewUnauthorizedError("no session")
	}
	return p, nil
}
