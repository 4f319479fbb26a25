package http

import (
	"net/http"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/service"
	"github.com/aussiebroadwan/onboard/pkg/onboardsdk"
)

// StartTask godoc
//
//	@Summary	Start an assigned task
//	@Tags		Assignments
//	@Accept		json
//	@Produce	json
//	@Param		request	body		onboardsdk.AssignmentRequest	true	"Assignment"
//	@Success	200		{object}	onboardsdk.Assignment
//	@Failure	403		{object}	onboardsdk.ErrorResponse	"forbidden"
//	@Failure	409		{object}	onboardsdk.ErrorResponse	"invalid_transition"
//	@Security	BearerAuth
//	@Router		/v1/onboarding/startTask [post].
func (h *Handlers) StartTask(w http.ResponseWriter, r *http.Request) {
	actor, req, ok := begin[onboardsdk.AssignmentRequest](w, r)
	if !ok {
		return
	}
	a, err := h.Assignments.Start(r.Context(), actor, req.AssignmentID)
	respond(w, r, toAssignment(a, h.now()), err)
}

// CompleteTask godoc
//
//	@Summary		Complete an assigned task
//	@Description	Completing an already completed task returns it unchanged. Completing the last required task completes the employee's onboarding.
//	@Tags			Assignments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		onboardsdk.CompleteTaskRequest	true	"Completion"
//	@Success		200		{object}	onboardsdk.Assignment
//	@Failure		400		{object}	onboardsdk.ErrorResponse	"validation_error"
//	@Failure		403		{object}	onboardsdk.ErrorResponse	"forbidden"
//	@Failure		409		{object}	onboardsdk.ErrorResponse	"invalid_transition"
//	@Security		BearerAuth
//	@Router			/v1/onboarding/completeTask [post].
func (h *Handlers) CompleteTask(w http.ResponseWriter, r *http.Request) {
	actor, req, ok := begin[onboardsdk.CompleteTaskRequest](w, r)
	if !ok {
		return
	}
	a, err := h.Assignments.Complete(r.Context(), actor, service.CompleteTaskInput{
		AssignmentID:   req.AssignmentID,
		Notes:          req.Notes,
		CompletionData: req.CompletionData,
	})
	respond(w, r, toAssignment(a, h.now()), err)
}

// SkipTask godoc
//
//	@Summary	Skip an optional task
//	@Tags		Assignments
//	@Accept		json
//	@Produce	json
//	@Param		request	body		onboardsdk.SkipTaskRequest	true	"Assignment"
//	@Success	200		{object}	onboardsdk.Assignment
//	@Failure	409		{object}	onboardsdk.ErrorResponse	"invalid_transition"
//	@Security	BearerAuth
//	@Router		/v1/onboarding/skipTask [post].
func (h *Handlers) SkipTask(w http.ResponseWriter, r *http.Request) {
	actor, req, ok := begin[onboardsdk.SkipTaskRequest](w, r)
	if !ok {
		return
	}
	a, err := h.Assignments.Skip(r.Context(), actor, service.SkipTaskInput{
		AssignmentID: req.AssignmentID,
		Notes:        req.Notes,
	})
	respond(w, r, toAssignment(a, h.now()), err)
}

// AssignTasksToEmployee godoc
//
//	@Summary		Assign tasks to an employee
//	@Description	Assigns the listed tasks, or every active task when taskIds is empty. Any task already assigned fails the whole call.
//	@Tags			Assignments
//	@Accept			json
//	@Produce		json
//	@Param			request	body		onboardsdk.AssignTasksRequest	true	"Assignment"
//	@Success		200		{array}		onboardsdk.Assignment
//	@Failure		404		{object}	onboardsdk.ErrorResponse	"not_found"
//	@Failure		409		{object}	onboardsdk.ErrorResponse	"duplicate_assignment"
//	@Security		BearerAuth
//	@Router			/v1/onboarding/assignTasksToEmployee [post].
func (h *Handlers) AssignTasksToEmployee(w http.ResponseWriter, r *http.Request) {
	actor, req, ok := begin[onboardsdk.AssignTasksRequest](w, r)
	if !ok {
		return
	}
	list, err := h.Assignments.AssignTasks(r.Context(), actor, service.AssignTasksInput{
		EmployeeID: req.EmployeeID,
		TaskIDs:    req.TaskIDs,
		DueDate:    req.DueDate,
		Priority:   domain.Priority(req.Priority),
	})
	respond(w, r, toAssignments(list, h.now()), err)
}

// GetMyProgress godoc
//
//	@Summary	Caller's own onboarding progress
//	@Tags		Progress
//	@Produce	json
//	@Success	200	{object}	onboardsdk.ProgressReport
//	@Failure	404	{object}	onboardsdk.ErrorResponse	"no linked employee record"
//	@Security	BearerAuth
//	@Router		/v1/onboarding/getMyProgress [post].
func (h *Handlers) GetMyProgress(w http.ResponseWriter, r *http.Request) {
	actor, _, ok := begin[struct{}](w, r)
	if !ok {
		return
	}
	report, err := h.Progress.Mine(r.Context(), actor)
	respond(w, r, toReport(report), err)
}

// GetEmployeeProgress godoc
//
//	@Summary	An employee's onboarding progress
//	@Tags		Progress
//	@Accept		json
//	@Produce	json
//	@Param		request	body		onboardsdk.EmployeeRequest	true	"Employee"
//	@Success	200		{object}	onboardsdk.ProgressReport
//	@Failure	403		{object}	onboardsdk.ErrorResponse	"forbidden"
//	@Failure	404		{object}	onboardsdk.ErrorResponse	"not_found"
//	@Security	BearerAuth
//	@Router		/v1/onboarding/getEmployeeProgress [post].
func (h *Handlers) GetEmployeeProgress(w http.ResponseWriter, r *http.Request) {
	actor, req, ok := begin[onboardsdk.EmployeeRequest](w, r)
	if !ok {
		return
	}
	report, err := h.Progress.ForEmployee(r.Context(), actor, req.EmployeeID)
	respond(w, r, toReport(report), err)
}
