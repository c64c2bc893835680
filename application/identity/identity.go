// Package identity resolves bearer credentials and contact addresses through
// whichever auth boundary the deployment uses.
package identity

import (
	"context"

	userapp "github.com/muhammadheryan/marketplace/application/user"
)

// Resolver is the single entry point for identity lookups. Errors are CustomError values:
// ErrUnauthorize for a bad credential, ErrNotFound for an unknown user, ErrUnavailable
// when the boundary cannot be reached.
type Resolver interface {
	ResolveUserID(ctx context.Context, token string) (uint64, error)
	LookupEmail(ctx context.Context, userID uint64) (string, error)
}

type localResolver struct {
	userApp userapp.UserApp
}

// NewLocalResolver resolves identities against the in-process user store.
func NewLocalResolver(userApp userapp.UserApp) Resolver {
	return &localResolver{userApp: userApp}
}

func (r *localResolver) ResolveUserID(ctx context.Context, token string) (uint64, error) {
	return r.userApp.ValidateToken(ctx, token)
}

func (r *localResolver) LookupEmail(ctx context.Context, userID uint64) (string, error) {
	return r.userApp.GetEmail(ctx, userID)
}
