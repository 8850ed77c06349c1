package task

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/tasks-service/internal/domain"
)

// ID identifies a Task.
type ID string

// NewID generates a fresh random identifier.
func NewID() ID {
	return ID(uuid.NewString())
}

// ParseID trims s and rejects blank input.
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", domain.NewValidationError("task_id", domain.KindEmptyValue, "task id cannot be empty")
	}
	return ID(s), nil
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return string(id)
}
