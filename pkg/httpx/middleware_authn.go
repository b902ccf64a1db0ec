package httpx

import (
	"net/http"
	"strings"
)

const bearerPrefix = "Bearer "

// BearerToken copies the Authorization header into the request context. The
// header value is used as is; a "Bearer " prefix is stripped when present.
// Requests without a token pass through untouched, rejecting them is up to
// whatever needs the token.
func BearerToken() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := r.Header.Get("Authorization")
			if raw == "" {
				next.ServeHTTP(w, r)
				return
			}

			token := raw
			if len(raw) >= len(bearerPrefix) && strings.EqualFold(raw[:len(bearerPrefix)], bearerPrefix) {
				token = strings.TrimSpace(raw[len(bearerPrefix):])
			}

			next.ServeHTTP(w, r.WithContext(ContextWithToken(r.Context(), token)))
		})
	}
}
