package handlers

import (
	"context"
	"net/http"
)

type contextKey string

const tenantIDKey = contextKey("tenant_id")

// WithTenantID stores the resolved tenant id on the context. Called by
// the auth middleware after token verification.
func WithTenantID(ctx context.Context, tenantID string) context.Context {
	return context.WithValue(ctx, tenantIDKey, tenantID)
}

// TenantID returns the tenant id for an authenticated request, or ""
// when authentication did not run.
func TenantID(r *http.Request) string {
	if val, ok := r.Context().Value(tenantIDKey).(string); ok {
		return val
	}
	return ""
}
