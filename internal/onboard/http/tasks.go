package http

import (
	"net/http"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/service"
	"github.com/aussiebroadwan/onboard/pkg/onboardsdk"
)

// GetAllTasks godoc
//
//	@Summary	List task templates
//	@Tags		Tasks
//	@Produce	json
//	@Success	200	{array}		onboardsdk.Task
//	@Failure	403	{object}	onboardsdk.ErrorResponse	"forbidden"
//	@Security	BearerAuth
//	@Router		/v1/onboarding/getAllTasks [post].
func (h *Handlers) GetAllTasks(w http.ResponseWriter, r *http.Request) {
	actor, _, ok := begin[struct{}](w, r)
	if !ok {
		return
	}
	list, err := h.Tasks.List(r.Context(), actor)
	respond(w, r, toTasks(list), err)
}

// CreateTask godoc
//
//	@Summary	Create a task template
//	@Tags		Tasks
//	@Accept		json
//	@Produce	json
//	@Param		request	body		onboardsdk.CreateTaskRequest	true	"Task"
//	@Success	200		{object}	onboardsdk.Task
//	@Failure	400		{object}	onboardsdk.ErrorResponse	"validation_error"
//	@Failure	403		{object}	onboardsdk.ErrorResponse	"forbidden"
//	@Security	BearerAuth
//	@Router		/v1/onboarding/createTask [post].
func (h *Handlers) CreateTask(w http.ResponseWriter, r *http.Request) {
	actor, req, ok := begin[onboardsdk.CreateTaskRequest](w, r)
	if !ok {
		return
	}
	t, err := h.Tasks.Create(r.Context(), actor, service.CreateTaskInput{
		Title:         req.Title,
		Description:   req.Description,
		Type:          domain.TaskType(req.TaskType),
		Required:      req.Required,
		OrderSequence: req.OrderSequence,
	})
	respond(w, r, toTask(t), err)
}

// UpdateTask godoc
//
//	@Summary		Update a task template
//	@Description	Existing assignments keep the title, type and required flag they were created with.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Param			request	body		onboardsdk.UpdateTaskRequest	true	"Task"
//	@Success		200		{object}	onboardsdk.Task
//	@Failure		400		{object}	onboardsdk.ErrorResponse	"validation_error"
//	@Failure		404		{object}	onboardsdk.ErrorResponse	"not_found"
//	@Security		BearerAuth
//	@Router			/v1/onboarding/updateTask [post].
func (h *Handlers) UpdateTask(w http.ResponseWriter, r *http.Request) {
	actor, req, ok := begin[onboardsdk.UpdateTaskRequest](w, r)
	if !ok {
		return
	}
	t, err := h.Tasks.Update(r.Context(), actor, service.UpdateTaskInput{
		TaskID:        req.TaskID,
		Title:         req.Title,
		Description:   req.Description,
		Type:          domain.TaskType(req.TaskType),
		Required:      req.Required,
		OrderSequence: req.OrderSequence,
		IsActive:      req.IsActive,
	})
	respond(w, r, toTask(t), err)
}

// DeleteTask godoc
//
//	@Summary		Deactivate a task template
//	@Description	Soft delete. Existing assignments are untouched.
//	@Tags			Tasks
//	@Accept			json
//	@Produce		json
//	@Param			request	body		onboardsdk.TaskRequest	true	"Task"
//	@Success		200		{object}	onboardsdk.Task
//	@Failure		404		{object}	onboardsdk.ErrorResponse	"not_found"
//	@Security		BearerAuth
//	@Router			/v1/onboarding/deleteTask [post].
func (h *Handlers) DeleteTask(w http.ResponseWriter, r *http.Request) {
	actor, req, ok := begin[onboardsdk.TaskRequest](w, r)
	if !ok {
		return
	}
	t, err := h.Tasks.Delete(r.Context(), actor, req.TaskID)
	respond(w, r, toTask(t), err)
}
