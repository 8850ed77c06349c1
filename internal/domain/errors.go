package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
	ErrRepository  = errors.New("repository error")
)

// Entity-specific sentinels. Each wraps one of the generic sentinels above,
// so errors.Is(err, ErrNotFound) holds for ErrUserNotFound as well.
var (
	ErrUserNotFound      = fmt.Errorf("user %w", ErrNotFound)
	ErrTaskNotFound      = fmt.Errorf("task %w", ErrNotFound)
	ErrUserAlreadyExists = fmt.Errorf("user already exists: %w", ErrConflict)
	ErrAccessDenied      = fmt.Errorf("access denied: %w", ErrForbidden)
)

// ValidationKind classifies why a value was rejected.
type ValidationKind string

const (
	KindEmptyValue    ValidationKind = "empty_value"
	KindInvalidFormat ValidationKind = "invalid_format"
	KindTooShort      ValidationKind = "too_short"
	KindTooLong       ValidationKind = "too_long"
)

// ValidationError describes a single rejected field. Use
// errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr)
// to access the field, kind, and reason. Several violations are reported
// together with errors.Join; see ValidationErrors.
type ValidationError struct {
	Field  string
	Kind   ValidationKind
	Reason string
}

// NewValidationError creates a *ValidationError for the given field.
func NewValidationError(field string, kind ValidationKind, reason string) *ValidationError {
	return &ValidationError{Field: field, Kind: kind, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrValidation.Error(), e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// ValidationErrors flattens err into every *ValidationError it contains,
// following both single and multi-error (errors.Join) wrapping. Returns nil
// if err carries no validation failures.
func ValidationErrors(err error) []*ValidationError {
	if err == nil {
		return nil
	}

	switch e := err.(type) {
	case *ValidationError:
		return []*ValidationError{e}
	case interface{ Unwrap() []error }:
		var out []*ValidationError
		for _, inner := range e.Unwrap() {
			out = append(out, ValidationErrors(inner)...)
		}
		return out
	case interface{ Unwrap() error }:
		return ValidationErrors(e.Unwrap())
	default:
		return nil
	}
}

// Resource names the aggregate a lookup miss refers to.
type Resource string

const (
	ResourceUser Resource = "user"
	ResourceTask Resource = "task"
)

// NotFoundError reports a lookup miss for a user or task.
// It unwraps to ErrUserNotFound or ErrTaskNotFound (and so to ErrNotFound).
type NotFoundError struct {
	Resource   Resource
	Identifier string
}

// NewUserNotFoundError creates a NotFoundError for a user identifier
// (an id or an email address).
func NewUserNotFoundError(identifier string) *NotFoundError {
	return &NotFoundError{Resource: ResourceUser, Identifier: identifier}
}

// NewTaskNotFoundError creates a NotFoundError for a task id.
func NewTaskNotFoundError(identifier string) *NotFoundError {
	return &NotFoundError{Resource: ResourceTask, Identifier: identifier}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Resource, e.Identifier)
}

func (e *NotFoundError) Unwrap() error {
	switch e.Resource {
	case ResourceUser:
		return ErrUserNotFound
	case ResourceTask:
		return ErrTaskNotFound
	default:
		return ErrNotFound
	}
}

// AlreadyExistsError reports an attempt to register an email twice.
type AlreadyExistsError struct {
	Email string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("user with email '%s' already exists", e.Email)
}

func (e *AlreadyExistsError) Unwrap() error {
	return ErrUserAlreadyExists
}

// AccessDeniedError reports an ownership mismatch on a task.
type AccessDeniedError struct {
	TaskID string
	UserID string
}

func (e *AccessDeniedError) Error() string {
	return fmt.Sprintf("access denied: task '%s' does not belong to user '%s'", e.TaskID, e.UserID)
}

func (e *AccessDeniedError) Unwrap() error {
	return ErrAccessDenied
}

// RepositoryError wraps any failure coming from a storage adapter. The core
// never interprets Err; it only propagates it.
type RepositoryError struct {
	Op  string
	Err error
}

// NewRepositoryError wraps err as a *RepositoryError for the named operation.
func NewRepositoryError(op string, err error) *RepositoryError {
	return &RepositoryError{Op: op, Err: err}
}

func (e *RepositoryError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrRepository.Error(), e.Op, e.Err)
}

func (e *RepositoryError) Unwrap() []error {
	return []error{ErrRepository, e.Err}
}
