package user

import (
	"strings"

	"github.com/google/uuid"

	"github.com/jsamuelsen11/tasks-service/internal/domain"
)

// ID identifies a User. The zero value is not a valid identifier.
type ID string

// NewID generates a fresh random identifier.
func NewID() ID {
	return ID(uuid.NewString())
}

// ParseID trims s and rejects blank input. Any other string is accepted so
// that identifiers produced by other stores remain usable.
func ParseID(s string) (ID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", domain.NewValidationError("user_id", domain.KindEmptyValue, "user id cannot be empty")
	}
	return ID(s), nil
}

// String implements fmt.Stringer.
func (id ID) String() string {
	return string(id)
}

// IsZero reports whether id is the empty identifier.
func (id ID) IsZero() bool {
	return id == ""
}
