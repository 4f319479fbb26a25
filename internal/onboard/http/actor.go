package http

import (
	"context"
	"net/http"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/service"
	"github.com/aussiebroadwan/onboard/pkg/httpx"
	"github.com/aussiebroadwan/onboard/pkg/slogx"
)

type actorKey struct{}

func actorFromContext(ctx context.Context) (domain.Actor, bool) {
	a, ok := ctx.Value(actorKey{}).(domain.Actor)
	return a, ok
}

// ActorMiddleware resolves the verified token subject to an onboarding actor
// with its active grants. It must run after httpx.AuthnMiddleware.
func ActorMiddleware(identity *service.IdentityService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, err := identity.ResolveActor(r.Context(), httpx.SubjectFromContext(r.Context()))
			if err != nil {
				writeError(w, r, err)
				return
			}
			ctx := context.WithValue(r.Context(), actorKey{}, actor)
			ctx = slogx.WithActor(ctx, actor.ID, actor.CompanyID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
