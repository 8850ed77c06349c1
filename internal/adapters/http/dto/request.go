package dto

import (
	"errors"
	"strings"

	"github.com/jsamuelsen11/tasks-service/internal/domain"
)

const msgRequired = "is required"

// CreateUserRequest is the JSON body for POST /api/v1/users.
type CreateUserRequest struct {
	Email string `json:"email"`
}

// Validate checks that the email is present. Format checks belong to the
// domain.
func (r *CreateUserRequest) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return domain.NewValidationError("email", domain.KindEmptyValue, msgRequired)
	}
	return nil
}

// CreateTaskRequest is the JSON body for POST /api/v1/tasks.
type CreateTaskRequest struct {
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Validate checks that required fields are present.
func (r *CreateTaskRequest) Validate() error {
	var errs []error
	if strings.TrimSpace(r.UserID) == "" {
		errs = append(errs, domain.NewValidationError("user_id", domain.KindEmptyValue, msgRequired))
	}
	if strings.TrimSpace(r.Title) == "" {
		errs = append(errs, domain.NewValidationError("title", domain.KindEmptyValue, msgRequired))
	}
	if strings.TrimSpace(r.Description) == "" {
		errs = append(errs, domain.NewValidationError("description", domain.KindEmptyValue, msgRequired))
	}
	return errors.Join(errs...)
}

// UpdateTaskRequest is the JSON body for PATCH /api/v1/tasks/{taskId}.
// Nil means "do not change this field". A non-boolean completed value is
// rejected while decoding.
type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

// Validate checks that at least one field is set.
func (r *UpdateTaskRequest) Validate() error {
	if r.Title == nil && r.Description == nil && r.Completed == nil {
		return domain.NewValidationError("body", domain.KindEmptyValue,
			"at least one of title, description or completed is required")
	}
	return nil
}
