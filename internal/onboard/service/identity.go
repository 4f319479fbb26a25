package service

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/store"
)

type IdentityService struct {
	Base
}

// ResolveActor loads the actor behind a token subject together with its
// active grants. Unknown subjects are forbidden rather than not found, since
// the caller did authenticate.
func (s *IdentityService) ResolveActor(ctx context.Context, subject string) (domain.Actor, error) {
	if subject == "" {
		return domain.Actor{}, domain.Forbidden("token has no subject")
	}
	a, err := s.Store.Actors().GetActorByID(ctx, subject)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Actor{}, domain.Forbidden("no onboarding profile for this account")
	}
	if err != nil {
		return domain.Actor{}, translate(err, "actor")
	}
	if !a.IsActive {
		return domain.Actor{}, domain.Forbidden("account is inactive")
	}

	grants, err := s.Store.RoleAssignments().ListActiveRoleAssignments(ctx, a.ID, s.now())
	if err != nil {
		return domain.Actor{}, translate(err, "role grants")
	}
	a.Grants = grants
	return a, nil
}
