package http

import (
	"net/http"

	"github.com/aussiebroadwan/onboard/internal/onboard/service"
	"github.com/aussiebroadwan/onboard/pkg/cryptox"
	"github.com/aussiebroadwan/onboard/pkg/httpx"
	"github.com/aussiebroadwan/onboard/pkg/onboardsdk"
)

// ValidateInvitation godoc
//
//	@Summary		Check an invitation token
//	@Description	Reports whether the token can still be accepted. Used tokens fail with already_used, lapsed ones with expired.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		onboardsdk.TokenRequest	true	"Token"
//	@Success		200		{object}	onboardsdk.Invitation
//	@Failure		404		{object}	onboardsdk.ErrorResponse	"not_found"
//	@Failure		409		{object}	onboardsdk.ErrorResponse	"already_used"
//	@Failure		410		{object}	onboardsdk.ErrorResponse	"expired"
//	@Router			/v1/onboarding/validateInvitation [post].
func (h *Handlers) ValidateInvitation(w http.ResponseWriter, r *http.Request) {
	req, ok := decodePublic[onboardsdk.TokenRequest](w, r)
	if !ok {
		return
	}
	inv, err := h.Invitations.Validate(r.Context(), req.Token)
	respond(w, r, toInvitation(inv, h.now()), err)
}

// AcceptInvitation godoc
//
//	@Summary		Accept an invitation
//	@Description	Consumes the token, links or creates the employee's user account and records the first login.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		onboardsdk.AcceptInvitationRequest	true	"Acceptance"
//	@Success		200		{object}	onboardsdk.AcceptInvitationResponse
//	@Failure		403		{object}	onboardsdk.ErrorResponse	"forbidden"
//	@Failure		404		{object}	onboardsdk.ErrorResponse	"not_found"
//	@Failure		409		{object}	onboardsdk.ErrorResponse	"already_used"
//	@Failure		410		{object}	onboardsdk.ErrorResponse	"expired"
//	@Router			/v1/onboarding/acceptInvitation [post].
func (h *Handlers) AcceptInvitation(w http.ResponseWriter, r *http.Request) {
	req, ok := decodePublic[onboardsdk.AcceptInvitationRequest](w, r)
	if !ok {
		return
	}
	acc, err := h.Invitations.Accept(r.Context(), service.AcceptInvitationInput{
		Token:     req.Token,
		FirstName: req.FirstName,
		LastName:  req.LastName,
	})
	respond(w, r, onboardsdk.AcceptInvitationResponse{
		Actor:    toActor(acc.Actor),
		Employee: toEmployee(acc.Employee),
	}, err)
}

// Provision godoc
//
//	@Summary		Provision a tenant
//	@Description	Creates a company and its first admin. Requires the operator token in X-Provision-Token.
//	@Tags			Operator
//	@Accept			json
//	@Produce		json
//	@Param			X-Provision-Token	header		string						true	"Operator token"
//	@Param			request				body		onboardsdk.ProvisionRequest	true	"Tenant"
//	@Success		200					{object}	onboardsdk.ProvisionResponse
//	@Failure		401					{object}	onboardsdk.ErrorResponse	"unauthorized"
//	@Failure		409					{object}	onboardsdk.ErrorResponse	"conflict"
//	@Router			/v1/onboarding/provision [post].
func (h *Handlers) Provision(w http.ResponseWriter, r *http.Request) {
	if !cryptox.EqualSecret(h.ProvisionToken, r.Header.Get(onboardsdk.ProvisionTokenHeader)) {
		httpx.WriteError(w, http.StatusUnauthorized, onboardsdk.CodeUnauthorized, "invalid provision token")
		return
	}
	req, ok := decodePublic[onboardsdk.ProvisionRequest](w, r)
	if !ok {
		return
	}
	p, err := h.Provisioner.Provision(r.Context(), service.ProvisionInput{
		Company: service.ProvisionCompanyInput{
			Name:             req.Company.Name,
			Domain:           req.Company.Domain,
			SubscriptionPlan: req.Company.SubscriptionPlan,
			EmployeeLimit:    req.Company.EmployeeLimit,
		},
		Admin: service.ProvisionAdminInput{
			Email:     req.Admin.Email,
			FirstName: req.Admin.FirstName,
			LastName:  req.Admin.LastName,
		},
	})
	respond(w, r, onboardsdk.ProvisionResponse{
		Company: toCompany(p.Company),
		Admin:   toActor(p.Admin),
	}, err)
}
