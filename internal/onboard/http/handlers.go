package http

import (
	"net/http"
	"time"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/internal/onboard/service"
	"github.com/aussiebroadwan/onboard/pkg/httpx"
)

// Handlers serves the onboarding RPCs. Each method decodes its request,
// calls one service operation and encodes the result.
type Handlers struct {
	Employees   *service.EmployeeService
	Assignments *service.AssignmentService
	Invitations *service.InvitationService
	Tasks       *service.TaskService
	Progress    *service.ProgressService
	Roles       *service.RoleService
	Provisioner *service.ProvisionService

	// ProvisionToken gates the provision RPC. Empty disables it.
	ProvisionToken string

	Clock service.Clock
}

func (h *Handlers) now() time.Time {
	if h.Clock == nil {
		return time.Now().UTC()
	}
	return h.Clock.Now().UTC()
}

// begin decodes the body into T and fetches the caller placed in the context
// by ActorMiddleware.
func begin[T any](w http.ResponseWriter, r *http.Request) (domain.Actor, T, bool) {
	var req T
	actor, ok := actorFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "unauthorized", "authentication required")
		return actor, req, false
	}
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err)
		return actor, req, false
	}
	return actor, req, true
}

// decodePublic is begin for routes without a caller.
func decodePublic[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var req T
	if err := httpx.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, err)
		return req, false
	}
	return req, true
}

func respond(w http.ResponseWriter, r *http.Request, v any, err error) {
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, v)
}
