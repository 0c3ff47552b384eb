package handlers

import (
	"context"

	"blogapp/internal/models"
)

type contextKey string

const principalKey contextKey = "principal"

func WithPrincipal(ctx context.Context, principal *models.Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// PrincipalFromContext returns the session user attached by the auth
// middleware, if any.
func PrincipalFromContext(ctx context.Context) (*models.Principal, bool) {
	principal, ok := ctx.Value(principalKey).(*models.Principal)
	if !ok || principal == nil || principal.ID == "" {
		return nil, false
	}
	return principal, true
}
