package utils

import (
	"context"
	"errors"
)

type ContextKey string

const (
	TenantIDKey ContextKey = "tenant_id"
	ClaimsKey   ContextKey = "claims"
)

var ErrNoTenantIDInContext = errors.New("no tenant id found in context")

// WithTenantID returns a context carrying the resolved tenant id. The tenant
// middleware sets this once per request; query paths never read it from the
// process environment.
func WithTenantID(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, TenantIDKey, tenantID)
}

func GetTenantIDFromContext(ctx context.Context) (string, error) {
	tenantID, ok := ctx.Value(TenantIDKey).(string)
	if !ok || tenantID == "" {
		return "", ErrNoTenantIDInContext
	}
	return tenantID, nil
}
