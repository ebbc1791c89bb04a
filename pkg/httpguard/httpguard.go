package httpguard

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrymomot/guardkit"
)

// ErrorResponse is the JSON body written for a failed check.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail describes a single failed check.
type ErrorDetail struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Parameter string `json:"parameter,omitempty"`
}

// genericMessage is returned for server errors instead of the underlying
// error text, which may carry internal detail.
const genericMessage = "An error occurred processing your request"

// StatusCode maps a guard error to an HTTP status code. A nil error maps to
// 200 OK. Argument failures map to 400 Bad Request, check misuse and
// unrecognized errors map to 500 Internal Server Error.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, guardkit.ErrInvalidCheck):
		return http.StatusInternalServerError
	case errors.Is(err, guardkit.ErrNilArgument),
		errors.Is(err, guardkit.ErrInvalidArgument),
		errors.Is(err, guardkit.ErrOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorCode maps a guard error to a stable machine-readable slug.
func errorCode(err error) string {
	switch {
	case errors.Is(err, guardkit.ErrInvalidCheck):
		return "invalid_check"
	case errors.Is(err, guardkit.ErrNilArgument):
		return "nil_argument"
	case errors.Is(err, guardkit.ErrOutOfRange):
		return "out_of_range"
	case errors.Is(err, guardkit.ErrInvalidArgument):
		return "invalid_argument"
	default:
		return "internal_error"
	}
}

// Respond writes err as a JSON error response. Client errors expose the
// check's message; server errors get a generic message so internal detail
// stays out of the response body. The offending parameter name is included
// whenever the error chain carries a guardkit.ArgumentError.
//
// Respond does nothing when err is nil.
func Respond(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	status := StatusCode(err)
	detail := ErrorDetail{
		Code:    errorCode(err),
		Message: genericMessage,
	}
	if status < http.StatusInternalServerError {
		detail.Message = err.Error()
	}

	var argErr guardkit.ArgumentError
	if errors.As(err, &argErr) {
		detail.Parameter = argErr.Name
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: detail})
}
