package http

import (
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/onboard/internal/onboard/domain"
	"github.com/aussiebroadwan/onboard/pkg/httpx"
	"github.com/aussiebroadwan/onboard/pkg/slogx"
)

// statusFor maps a domain error kind to its HTTP status.
func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindValidation:
		return http.StatusBadRequest
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict, domain.KindDuplicateAssignment, domain.KindInvalidTransition, domain.KindAlreadyUsed:
		return http.StatusConflict
	case domain.KindExpired:
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}

// writeError renders err as an ErrorResponse. Errors outside the domain are
// logged and reported without detail.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	kind := domain.KindOf(err)
	status := statusFor(kind)
	if status == http.StatusInternalServerError {
		slogx.FromContext(r.Context()).Error("request failed", slog.Any("error", err))
		httpx.WriteError(w, status, string(domain.KindUnknown), "internal error")
		return
	}
	httpx.WriteError(w, status, string(kind), err.Error())
}

func writeBadRequest(w http.ResponseWriter, err error) {
	httpx.WriteError(w, http.StatusBadRequest, string(domain.KindValidation), err.Error())
}
