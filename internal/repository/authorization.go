package repository

import "context"

type authorizationKey struct{}

// WithAuthorization attaches the caller's Authorization header so upstream reads made
// on its behalf carry the same credentials. The value is forwarded, never inspected.
func WithAuthorization(ctx context.Context, value string) context.Context {
	if value == "" {
		return ctx
	}
	return context.WithValue(ctx, authorizationKey{}, value)
}

func AuthorizationFrom(ctx context.Context) (string, bool) {
	value, ok := ctx.Value(authorizationKey{}).(string)
	return value, ok
}

func headersFrom(ctx context.Context) map[string]string {
	headers := map[string]string{"Accept": "application/json"}
	if value, ok := AuthorizationFrom(ctx); ok {
		headers["Authorization"] = value
	}
	return headers
}
