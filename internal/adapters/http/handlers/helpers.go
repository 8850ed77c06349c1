package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/jsamuelsen11/tasks-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tasks-service/internal/domain"
	"github.com/jsamuelsen11/tasks-service/internal/platform/logging"
)

// maxBodyBytes caps request bodies. Task descriptions are the largest field
// and stay far below it.
const maxBodyBytes = 1 << 20

// writeJSON encodes v as the response body. Encoding failures happen after
// the status line is sent, so they are only logged.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).WarnContext(r.Context(), "encode response failed", slog.Any("error", err))
	}
}

// validatable is implemented by the request DTOs.
type validatable interface {
	Validate() error
}

// decodeAndValidate reads one JSON document from the body into dst and runs
// its validation. Any failure has already been written as a problem detail
// when it returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	if err := decodeBody(w, r, dst); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	err := dec.Decode(dst)
	if err == nil {
		if dec.More() {
			return bodyError(domain.KindInvalidFormat, "body must hold a single JSON object")
		}
		return nil
	}

	var (
		tooLarge  *http.MaxBytesError
		syntax    *json.SyntaxError
		wrongType *json.UnmarshalTypeError
	)
	switch {
	case errors.Is(err, io.EOF):
		return bodyError(domain.KindEmptyValue, "request body is required")
	case errors.As(err, &tooLarge):
		return bodyError(domain.KindTooLong, fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
	case errors.As(err, &syntax):
		return bodyError(domain.KindInvalidFormat, fmt.Sprintf("malformed JSON at offset %d", syntax.Offset))
	case errors.As(err, &wrongType) && wrongType.Field != "":
		return domain.NewValidationError(wrongType.Field, domain.KindInvalidFormat, "must be a "+wrongType.Type.String())
	default:
		return bodyError(domain.KindInvalidFormat, "invalid JSON: "+err.Error())
	}
}

func bodyError(kind domain.ValidationKind, reason string) error {
	return domain.NewValidationError("body", kind, reason)
}

// Sanitizer strips markup from free text before it reaches the services.
type Sanitizer interface {
	Clean(s string) string
	CleanPtr(s *string) *string
}

// actingUser returns the user_id query parameter naming who performs a
// mutation. The services reject an empty value.
func actingUser(r *http.Request) string {
	return r.URL.Query().Get("user_id")
}
