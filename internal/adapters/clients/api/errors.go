package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/jsamuelsen11/tasks-service/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// target names the entity a request is about so that status codes can be
// turned back into the typed domain errors the server started from.
type target struct {
	resource domain.Resource
	id       string
	userID   string
	email    string
}

type problemDetail struct {
	Detail string        `json:"detail"`
	Errors []errorDetail `json:"errors"`
}

type errorDetail struct {
	Location string `json:"location"`
	Kind     string `json:"kind"`
	Message  string `json:"message"`
}

// translateHTTPError maps an RFC 9457 error response to a domain error.
func translateHTTPError(resp *http.Response, tgt target) error {
	pd := parseProblemDetail(resp)

	detail := pd.Detail
	if detail == "" {
		detail = http.StatusText(resp.StatusCode)
	}

	switch {
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		if len(pd.Errors) > 0 {
			return toValidationErrors(pd.Errors)
		}
		return fmt.Errorf("%s: %w", detail, domain.ErrValidation)

	case resp.StatusCode == http.StatusNotFound:
		if tgt.resource == "" {
			return fmt.Errorf("%s: %w", detail, domain.ErrNotFound)
		}
		return &domain.NotFoundError{Resource: tgt.resource, Identifier: tgt.id}

	case resp.StatusCode == http.StatusForbidden:
		return &domain.AccessDeniedError{TaskID: tgt.id, UserID: tgt.userID}

	case resp.StatusCode == http.StatusConflict:
		return &domain.AlreadyExistsError{Email: tgt.email}

	case resp.StatusCode == http.StatusTooManyRequests:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	case resp.StatusCode >= http.StatusInternalServerError:
		return fmt.Errorf("%s: %w", detail, domain.ErrUnavailable)

	default:
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, detail)
	}
}

func parseProblemDetail(resp *http.Response) problemDetail {
	if resp.Body == nil {
		return problemDetail{}
	}
	if !strings.HasPrefix(resp.Header.Get("Content-Type"), "application/problem+json") {
		return problemDetail{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return problemDetail{}
	}

	var pd problemDetail
	if err := json.Unmarshal(body, &pd); err != nil {
		return problemDetail{}
	}
	return pd
}

// toValidationErrors rebuilds the joined *domain.ValidationError values the
// server reported.
func toValidationErrors(details []errorDetail) error {
	errs := make([]error, 0, len(details))
	for _, d := range details {
		kind := domain.ValidationKind(d.Kind)
		if kind == "" {
			kind = domain.KindInvalidFormat
		}
		errs = append(errs, domain.NewValidationError(d.Location, kind, d.Message))
	}
	return errors.Join(errs...)
}
