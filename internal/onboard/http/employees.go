package http

import (
	"net/http"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/service"
	"github.com/aussiebroadwan/onboard/pkg/onboardsdk"
)

// GetEmployees godoc
//
//	@Summary		List employees
//	@Description	Lists the caller's company newest first, each employee with its assignments and progress. Managers without a wider grant only see their direct reports.
//	@Tags			Employees
//	@Accept			json
//	@Produce		json
//	@Param			request	body		onboardsdk.GetEmployeesRequest	false	"Filters"
//	@Success		200		{array}		onboardsdk.EmployeeOverview
//	@Failure		400		{object}	onboardsdk.ErrorResponse	"validation_error"
//	@Failure		403		{object}	onboardsdk.ErrorResponse	"forbidden"
//	@Security		BearerAuth
//	@Router			/v1/onboarding/getEmployees [post].
func (h *Handlers) GetEmployees(w http.ResponseWriter, r *http.Request) {
	actor, req, ok := begin[onboardsdk.GetEmployeesRequest](w, r)
	if !ok {
		return
	}
	list, err := h.Employees.List(r.Context(), actor, service.ListEmployeesInput{
		Status:          domain.OnboardingStatus(req.Status),
		IncludeInactive: req.IncludeInactive,
	})
	respond(w, r, toEmployeeOverviews(list, h.now()), err)
}

// CreateEmployee godoc
//
//	@Summary		Create an employee
//	@Description	Creates the record in not_started and assigns every active task unless assignDefaultTasks is false.
//	@Tags			Employees
//	@Accept			json
//	@Produce		json
//	@Param			request	body		onboardsdk.CreateEmployeeRequest	true	"Employee"
//	@Success		200		{object}	onboardsdk.CreateEmployeeResponse
//	@Failure		400		{object}	onboardsdk.ErrorResponse	"validation_error"
//	@Failure		403		{object}	onboardsdk.ErrorResponse	"forbidden"
//	@Failure		409		{object}	onboardsdk.ErrorResponse	"conflict"
//	@Security		BearerAuth
//	@Router			/v1/onboarding/createEmployee [post].
func (h *Handlers) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	actor, req, ok := begin[onboardsdk.CreateEmployeeRequest](w, r)
	if !ok {
		return
	}
	emp, list, err := h.Employees.Create(r.Context(), actor, service.CreateEmployeeInput{
		EmployeeNumber:     req.EmployeeNumber,
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		PersonalEmail:      req.PersonalEmail,
		WorkEmail:          req.WorkEmail,
		Department:         req.Department,
		Team:               req.Team,
		Position:           req.Position,
		EmploymentType:     domain.EmploymentType(req.EmploymentType),
		StartDate:          req.StartDate,
		ManagerID:          req.ManagerID,
		AssignDefaultTasks: req.AssignDefaultTasks,
	})
	respond(w, r, onboardsdk.CreateEmployeeResponse{
		Employee:    toEmployee(emp),
		Assignments: toAssignments(list, h.now()),
	}, err)
}

// DeactivateEmployee godoc
//
//	@Summary	Deactivate an employee
//	@Tags		Employees
//	@Accept		json
//	@Produce	json
//	@Param		request	body		onboardsdk.EmployeeRequest	true	"Employee"
//	@Success	200		{object}	onboardsdk.Employee
//	@Failure	403		{object}	onboardsdk.ErrorResponse	"forbidden"
//	@Failure	404		{object}	onboardsdk.ErrorResponse	"not_found"
//	@Security	BearerAuth
//	@Router		/v1/onboarding/deactivateEmployee [post].
func (h *Handlers) DeactivateEmployee(w http.ResponseWriter, r *http.Request) {
	actor, req, ok := begin[onboardsdk.EmployeeRequest](w, r)
	if !ok {
		return
	}
	emp, err := h.Employees.Deactivate(r.Context(), actor, req.EmployeeID)
	respond(w, r, toEmployee(emp), err)
}

// SendInvitation godoc
//
//	@Summary		Invite an employee
//	@Description	Issues a 7-day single-use invitation, expires any earlier ones and moves the employee to invited.
//	@Tags			Invitations
//	@Accept			json
//	@Produce		json
//	@Param			request	body		onboardsdk.SendInvitationRequest	true	"Invitation"
//	@Success		200		{object}	onboardsdk.Invitation
//	@Failure		403		{object}	onboardsdk.ErrorResponse	"forbidden"
//	@Failure		404		{object}	onboardsdk.ErrorResponse	"not_found"
//	@Failure		409		{object}	onboardsdk.ErrorResponse	"invalid_transition"
//	@Security		BearerAuth
//	@Router			/v1/onboarding/sendInvitation [post].
func (h *Handlers) SendInvitation(w http.ResponseWriter, r *http.Request) {
	actor, req, ok := begin[onboardsdk.SendInvitationRequest](w, r)
	if !ok {
		return
	}
	issued, err := h.Invitations.Send(r.Context(), actor, service.SendInvitationInput{
		EmployeeID: req.EmployeeID,
		Email:      req.Email,
	})
	out := toInvitation(issued.Invitation, h.now())
	out.Token = issued.Token
	respond(w, r, out, err)
}
