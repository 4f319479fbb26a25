package onboardsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Error codes returned in ErrorResponse.Error.
const (
	CodeValidation          = "validation_error"
	CodeUnauthorized        = "unauthorized"
	CodeInsufficientScope   = "insufficient_scope"
	CodeForbidden           = "forbidden"
	CodeNotFound            = "not_found"
	CodeConflict            = "conflict"
	CodeDuplicateAssignment = "duplicate_assignment"
	CodeInvalidTransition   = "invalid_transition"
	CodeExpired             = "expired"
	CodeAlreadyUsed         = "already_used"
	CodeRateLimited         = "rate_limit_exceeded"
	CodeServerError         = "server_error"
)

// APIError is a non-2xx reply.
type APIError struct {
	StatusCode  int
	Code        string
	Description string
}

func (e *APIError) Error() string {
	if e.Description == "" {
		return fmt.Sprintf("%s (HTTP %d)", e.Code, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// IsCode reports whether err is an APIError with the given code.
func IsCode(err error, code string) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == code
}

func parseErrorResponse(resp *http.Response, body []byte) error {
	var er ErrorResponse
	if err := json.Unmarshal(body, &er); err != nil || er.Error == "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        CodeServerError,
			Description: http.StatusText(resp.StatusCode),
		}
	}
	return &APIError{StatusCode: resp.StatusCode, Code: er.Error, Description: er.ErrorDescription}
}
