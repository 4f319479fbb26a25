package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/policy"
	"github.com/aussiebroadwan/onboard/pkg/slogx"
)

type RoleService struct {
	Base
}

type GrantRoleInput struct {
	ActorID    string
	Role       string
	ScopeType  domain.ScopeType
	ScopeValue string
	ExpiresAt  *time.Time
}

// Grant adds a scoped role to an actor in the admin's company.
func (s *RoleService) Grant(ctx context.Context, admin domain.Actor, in GrantRoleInput) (domain.RoleAssignment, error) {
	if _, err := s.authorize(ctx, admin, policy.OpGrantRole, companyTarget(admin.CompanyID)); err != nil {
		return domain.RoleAssignment{}, err
	}

	role, err := domain.ParseRole(in.Role)
	if err != nil {
		return domain.RoleAssignment{}, err
	}
	scope := in.ScopeType
	if scope == "" {
		scope = domain.ScopeCompany
	}
	if !scope.Valid() {
		return domain.RoleAssignment{}, domain.Validation("unknown scope type %q", in.ScopeType)
	}
	value := strings.TrimSpace(in.ScopeValue)
	switch {
	case scope == domain.ScopeCompany && value != "":
		return domain.RoleAssignment{}, domain.Validation("company scope takes no value")
	case scope != domain.ScopeCompany && value == "":
		return domain.RoleAssignment{}, domain.Validation("%s scope requires a value", scope)
	}

	now := s.now()
	if in.ExpiresAt != nil && !in.ExpiresAt.After(now) {
		return domain.RoleAssignment{}, domain.Validation("expiry must be in the future")
	}

	target, err := s.Store.Actors().GetActorByID(ctx, in.ActorID)
	if err != nil {
		return domain.RoleAssignment{}, translate(err, "actor")
	}
	if target.CompanyID != admin.CompanyID {
		return domain.RoleAssignment{}, domain.NotFound("actor not found")
	}

	g := domain.RoleAssignment{
		ID:         s.id(),
		CompanyID:  admin.CompanyID,
		ActorID:    target.ID,
		Role:       role,
		ScopeType:  scope,
		ScopeValue: value,
		ExpiresAt:  in.ExpiresAt,
		GrantedBy:  admin.ID,
		CreatedAt:  now,
	}
	if err := s.Store.RoleAssignments().CreateRoleAssignment(ctx, g); err != nil {
		return domain.RoleAssignment{}, translate(err, "role grant")
	}

	slogx.FromContext(ctx).Info("role granted",
		slog.String("grant_id", g.ID),
		slog.String("actor_id", g.ActorID),
		slog.String("role", string(g.Role)),
		slog.String("scope", string(g.ScopeType)),
	)
	return g, nil
}

// Revoke stamps revoked_at. Revoking twice returns the original revocation.
func (s *RoleService) Revoke(ctx context.Context, admin domain.Actor, grantID string) (domain.RoleAssignment, error) {
	if grantID == "" {
		return domain.RoleAssignment{}, domain.Validation("grantId is required")
	}
	g, err := s.Store.RoleAssignments().GetRoleAssignmentByID(ctx, grantID)
	if err != nil {
		return domain.RoleAssignment{}, translate(err, "role grant")
	}
	if _, err := s.authorize(ctx, admin, policy.OpRevokeRole, companyTarget(g.CompanyID)); err != nil {
		return domain.RoleAssignment{}, err
	}
	if g.RevokedAt != nil {
		return g, nil
	}

	now := s.now()
	if err := s.Store.RoleAssignments().RevokeRoleAssignment(ctx, g.ID, now); err != nil {
		return domain.RoleAssignment{}, translate(err, "role grant")
	}
	g.RevokedAt = &now

	slogx.FromContext(ctx).Info("role revoked",
		slog.String("grant_id", g.ID),
		slog.String("revoked_by", admin.ID),
	)
	return g, nil
}

// List returns the company's grants, optionally for one actor.
func (s *RoleService) List(ctx context.Context, admin domain.Actor, actorID string) ([]domain.RoleAssignment, error) {
	if _, err := s.authorize(ctx, admin, policy.OpListRoleGrants, companyTarget(admin.CompanyID)); err != nil {
		return nil, err
	}
	out, err := s.Store.RoleAssignments().ListRoleAssignments(ctx, admin.CompanyID, actorID)
	return out, translate(err, "role grants")
}
