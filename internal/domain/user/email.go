package user

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/tasks-service/internal/domain"
)

// MaxEmailLength is the longest address accepted, in characters.
const MaxEmailLength = 254

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Email is a normalized (trimmed, lower-cased) email address.
type Email string

// NewEmail normalizes s and validates it. Checks run in a fixed order:
// empty, format, then length.
func NewEmail(s string) (Email, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))

	if normalized == "" {
		return "", domain.NewValidationError("email", domain.KindEmptyValue, "email cannot be empty")
	}
	if !emailPattern.MatchString(normalized) {
		return "", domain.NewValidationError("email", domain.KindInvalidFormat, "email format is invalid")
	}
	if utf8.RuneCountInString(normalized) > MaxEmailLength {
		return "", domain.NewValidationError("email", domain.KindTooLong, "email is too long")
	}

	return Email(normalized), nil
}

// String implements fmt.Stringer.
func (e Email) String() string {
	return string(e)
}

// Equal reports whether both addresses are the same after normalization.
func (e Email) Equal(other Email) bool {
	return e == other
}
