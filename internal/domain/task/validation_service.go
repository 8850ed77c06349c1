package task

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen11/tasks-service/internal/domain"
	"github.com/jsamuelsen11/tasks-service/internal/domain/user"
)

// Length limits, counted in characters after trimming.
const (
	MinTitleLength       = 3
	MaxTitleLength       = 100
	MaxDescriptionLength = 500
)

// ValidateData checks a title and description together and reports every
// violation joined with errors.Join. The entity constructor and mutators use
// the same per-field checks, so callers may pre-validate with this function
// without risk of drift.
func ValidateData(title, description string) error {
	return errors.Join(validateTitle(title), validateDescription(description))
}

// CanUserAccess reports whether userID owns t.
func CanUserAccess(t *Task, userID user.ID) bool {
	return t != nil && t.userID == userID
}

func validateTitle(title string) error {
	n := utf8.RuneCountInString(strings.TrimSpace(title))
	switch {
	case n < MinTitleLength:
		return domain.NewValidationError("title", domain.KindTooShort, "task title must have at least 3 characters")
	case n > MaxTitleLength:
		return domain.NewValidationError("title", domain.KindTooLong, "task title must have at most 100 characters")
	}
	return nil
}

func validateDescription(description string) error {
	trimmed := strings.TrimSpace(description)
	if trimmed == "" {
		return domain.NewValidationError("description", domain.KindEmptyValue, "task description cannot be empty")
	}
	if utf8.RuneCountInString(trimmed) > MaxDescriptionLength {
		return domain.NewValidationError("description", domain.KindTooLong, "task description must have at most 500 characters")
	}
	return nil
}
