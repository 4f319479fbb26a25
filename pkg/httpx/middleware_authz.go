package httpx

import (
	"net/http"
	"strings"
)

// RequireAnyScope admits callers whose token carries at least one of required.
// With nothing required it is a pass-through.
func RequireAnyScope(required ...string) Middleware {
	return func(next http.Handler) http.Handler {
		if len(required) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, _ := ClaimsFromContext(r.Context())
			for _, s := range required {
				if claims.HasScope(s) {
					next.ServeHTTP(w, r)
					return
				}
			}

			w.Header().Set("WWW-Authenticate", `Bearer error="insufficient_scope", scope="`+strings.Join(required, " ")+`"`)
			WriteError(w, http.StatusForbidden, "insufficient_scope", "token lacks a required scope")
		})
	}
}
