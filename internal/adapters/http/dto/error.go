package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/tasks-service/internal/domain"
	"github.com/jsamuelsen11/tasks-service/internal/platform/logging"
)

// ErrRateLimited is written by the rate limiting middleware when a client
// exceeds its request budget.
var ErrRateLimited = errors.New("rate limit exceeded")

// ErrRequestTimeout is written by the timeout middleware when a handler does
// not finish within the configured request timeout.
var ErrRequestTimeout = errors.New("request did not complete in time")

// ErrRouteNotFound and ErrMethodNotAllowed are written by the router for
// requests that match no route.
var (
	ErrRouteNotFound    = errors.New("no route matches the request path")
	ErrMethodNotAllowed = errors.New("method not allowed on this resource")
)

// internalDetail replaces the detail of every 500 response so that storage
// errors and panics never reach clients.
const internalDetail = "an internal error occurred"

// ErrorResponse represents an RFC 9457 Problem Details response.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail names one rejected input. Location is the JSON field or the
// literal "body" for problems with the document itself.
type ErrorDetail struct {
	Location string `json:"location"`
	Kind     string `json:"kind"`
	Message  string `json:"message"`
}

// statusFor is consulted in order and the first match wins. Repository
// failures come first because a RepositoryError also matches its cause,
// which may be a domain error raised while decoding a stored row.
var statusFor = []struct {
	target error
	status int
}{
	{domain.ErrRepository, http.StatusInternalServerError},
	{ErrRateLimited, http.StatusTooManyRequests},
	{ErrRequestTimeout, http.StatusGatewayTimeout},
	{ErrRouteNotFound, http.StatusNotFound},
	{ErrMethodNotAllowed, http.StatusMethodNotAllowed},
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrConflict, http.StatusConflict},
	{domain.ErrUnavailable, http.StatusBadGateway},
}

// StatusOf returns the HTTP status err is reported with. Unrecognised
// errors are internal failures.
func StatusOf(err error) int {
	for _, m := range statusFor {
		if errors.Is(err, m.target) {
			return m.status
		}
	}
	return http.StatusInternalServerError
}

// NewErrorResponse builds the problem detail for err. Internal failures get a
// fixed detail; validation failures list every rejected field.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := StatusOf(err)
	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Instance: r.RequestURI,
	}

	switch verrs := domain.ValidationErrors(err); {
	case status == http.StatusInternalServerError:
		resp.Detail = internalDetail
	case len(verrs) > 0:
		resp.Detail = err.Error()
		resp.Errors = make([]ErrorDetail, len(verrs))
		for i, v := range verrs {
			resp.Errors[i] = ErrorDetail{Location: v.Field, Kind: string(v.Kind), Message: v.Reason}
		}
	default:
		resp.Detail = err.Error()
	}
	return resp
}

// WriteErrorResponse sends err as an application/problem+json response.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)
	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "encode problem detail failed",
			slog.Any("error", encErr),
		)
	}
}
