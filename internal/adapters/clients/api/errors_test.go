package api

import (
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/jsamuelsen11/tasks-service/internal/domain"
)

func problemResponse(status int, body string) *http.Response {
	h := http.Header{}
	h.Set("Content-Type", "application/problem+json")
	return &http.Response{StatusCode: status, Header: h, Body: io.NopCloser(strings.NewReader(body))}
}

func TestTranslateHTTPError(t *testing.T) {
	t.Parallel()

	taskTarget := target{resource: domain.ResourceTask, id: "t1", userID: "u2"}

	tests := []struct {
		name    string
		status  int
		body    string
		tgt     target
		wantErr error
	}{
		{"404 task", http.StatusNotFound, `{}`, taskTarget, domain.ErrTaskNotFound},
		{"404 user", http.StatusNotFound, `{}`, target{resource: domain.ResourceUser, id: "u1"}, domain.ErrUserNotFound},
		{"404 untargeted", http.StatusNotFound, `{}`, target{}, domain.ErrNotFound},
		{"403", http.StatusForbidden, `{}`, taskTarget, domain.ErrAccessDenied},
		{"409", http.StatusConflict, `{}`, target{email: "a@b.co"}, domain.ErrUserAlreadyExists},
		{"400 bare", http.StatusBadRequest, `{"detail":"bad"}`, target{}, domain.ErrValidation},
		{"429", http.StatusTooManyRequests, `{}`, target{}, domain.ErrUnavailable},
		{"502", http.StatusBadGateway, `{}`, target{}, domain.ErrUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := translateHTTPError(problemResponse(tt.status, tt.body), tt.tgt)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("translateHTTPError() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTranslateHTTPError_ValidationDetails(t *testing.T) {
	t.Parallel()

	body := `{"detail":"validation error","errors":[
		{"location":"title","kind":"too_short","message":"task title must have at least 3 characters"},
		{"location":"description","kind":"empty_value","message":"task description cannot be empty"}]}`
	err := translateHTTPError(problemResponse(http.StatusBadRequest, body), target{})

	verrs := domain.ValidationErrors(err)
	if len(verrs) != 2 {
		t.Fatalf("ValidationErrors() = %v, want 2", verrs)
	}
	if verrs[0].Field != "title" || verrs[0].Kind != domain.KindTooShort {
		t.Errorf("verrs[0] = %+v", verrs[0])
	}
	if verrs[1].Field != "description" || verrs[1].Kind != domain.KindEmptyValue {
		t.Errorf("verrs[1] = %+v", verrs[1])
	}
}

func TestTranslateHTTPError_IgnoresNonProblemBody(t *testing.T) {
	t.Parallel()

	resp := &http.Response{
		StatusCode: http.StatusBadRequest,
		Header:     http.Header{"Content-Type": {"text/plain"}},
		Body:       io.NopCloser(strings.NewReader("nope")),
	}
	err := translateHTTPError(resp, target{})
	if !errors.Is(err, domain.ErrValidation) || len(domain.ValidationErrors(err)) != 0 {
		t.Errorf("translateHTTPError() = %v", err)
	}
}
