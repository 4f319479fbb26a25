package http

import (
	"net/http"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/service"
	"github.com/aussiebroadwan/onboard/pkg/onboardsdk"
)

// GrantRole godoc
//
//	@Summary		Grant a scoped role
//	@Description	scopeType is company, department, team or direct_reports. Only company scope takes no scopeValue.
//	@Tags			Roles
//	@Accept			json
//	@Produce		json
//	@Param			request	body		onboardsdk.GrantRoleRequest	true	"Grant"
//	@Success		200		{object}	onboardsdk.RoleGrant
//	@Failure		400		{object}	onboardsdk.ErrorResponse	"validation_error"
//	@Failure		403		{object}	onboardsdk.ErrorResponse	"forbidden"
//	@Security		BearerAuth
//	@Router			/v1/onboarding/grantRole [post].
func (h *Handlers) GrantRole(w http.ResponseWriter, r *http.Request) {
	actor, req, ok := begin[onboardsdk.GrantRoleRequest](w, r)
	if !ok {
		return
	}
	g, err := h.Roles.Grant(r.Context(), actor, service.GrantRoleInput{
		ActorID:    req.ActorID,
		Role:       req.Role,
		ScopeType:  domain.ScopeType(req.ScopeType),
		ScopeValue: req.ScopeValue,
		ExpiresAt:  req.ExpiresAt,
	})
	respond(w, r, toGrant(g), err)
}

// RevokeRole godoc
//
//	@Summary	Revoke a role grant
//	@Tags		Roles
//	@Accept		json
//	@Produce	json
//	@Param		request	body		onboardsdk.RevokeRoleRequest	true	"Grant"
//	@Success	200		{object}	onboardsdk.RoleGrant
//	@Failure	404		{object}	onboardsdk.ErrorResponse	"not_found"
//	@Security	BearerAuth
//	@Router		/v1/onboarding/revokeRole [post].
func (h *Handlers) RevokeRole(w http.ResponseWriter, r *http.Request) {
	actor, req, ok := begin[onboardsdk.RevokeRoleRequest](w, r)
	if !ok {
		return
	}
	g, err := h.Roles.Revoke(r.Context(), actor, req.GrantID)
	respond(w, r, toGrant(g), err)
}

// ListRoleGrants godoc
//
//	@Summary	List role grants
//	@Tags		Roles
//	@Accept		json
//	@Produce	json
//	@Param		request	body	onboardsdk.ListRoleGrantsRequest	false	"Filter"
//	@Success	200		{array}	onboardsdk.RoleGrant
//	@Security	BearerAuth
//	@Router		/v1/onboarding/listRoleGrants [post].
func (h *Handlers) ListRoleGrants(w http.ResponseWriter, r *http.Request) {
	actor, req, ok := begin[onboardsdk.ListRoleGrantsRequest](w, r)
	if !ok {
		return
	}
	list, err := h.Roles.List(r.Context(), actor, req.ActorID)
	respond(w, r, toGrants(list), err)
}
