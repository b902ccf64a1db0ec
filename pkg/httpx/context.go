package httpx

import "context"

type ctxKey string

const CtxKeyToken ctxKey = "token"

// ContextWithToken stores the raw session token of the request.
func ContextWithToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, CtxKeyToken, token)
}

// TokenFromContext returns the raw session token, or "" when the request
// carried none.
func TokenFromContext(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyToken).(string); ok {
		return v
	}
	return ""
}
