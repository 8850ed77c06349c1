// Package task holds the Task entity, its status value object and the
// validation rules shared by every layer that accepts task input.
package task

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/tasks-service/internal/domain/user"
)

// now is swapped in tests.
var now = func() time.Time { return time.Now().UTC() }

// Task is a to-do item owned by a single user. Its fields change only
// through methods that keep the title and description valid.
type Task struct {
	id          ID
	userID      user.ID
	title       string
	description string
	status      Status
	createdAt   time.Time
	updatedAt   time.Time
}

// New creates a pending task for userID. Title and description are trimmed
// before validation and stored trimmed.
func New(userID user.ID, title, description string) (*Task, error) {
	if err := ValidateData(title, description); err != nil {
		return nil, err
	}
	return &Task{
		id:          NewID(),
		userID:      userID,
		title:       strings.TrimSpace(title),
		description: strings.TrimSpace(description),
		status:      StatusPending,
		createdAt:   now(),
	}, nil
}

// ID returns the task identifier.
func (t *Task) ID() ID { return t.id }

// UserID returns the owner.
func (t *Task) UserID() user.ID { return t.userID }

// Title returns the trimmed title.
func (t *Task) Title() string { return t.title }

// Description returns the trimmed description.
func (t *Task) Description() string { return t.description }

// Status returns the completion state.
func (t *Task) Status() Status { return t.status }

// IsCompleted reports whether the task is done.
func (t *Task) IsCompleted() bool { return t.status.IsCompleted() }

// CreatedAt returns the creation time.
func (t *Task) CreatedAt() time.Time { return t.createdAt }

// UpdatedAt returns the last modification time, or nil if the task has not
// been modified since creation.
func (t *Task) UpdatedAt() *time.Time {
	if t.updatedAt.IsZero() {
		return nil
	}
	ts := t.updatedAt
	return &ts
}

// UpdateTitle replaces the title. On failure the task is left unchanged.
func (t *Task) UpdateTitle(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	t.title = strings.TrimSpace(title)
	t.touch()
	return nil
}

// UpdateDescription replaces the description. On failure the task is left
// unchanged.
func (t *Task) UpdateDescription(description string) error {
	if err := validateDescription(description); err != nil {
		return err
	}
	t.description = strings.TrimSpace(description)
	t.touch()
	return nil
}

// MarkAsCompleted sets the task done and stamps the update time.
func (t *Task) MarkAsCompleted() {
	t.status = StatusCompleted
	t.touch()
}

// MarkAsPending reopens the task and stamps the update time.
func (t *Task) MarkAsPending() {
	t.status = StatusPending
	t.touch()
}

// ToggleStatus flips between pending and completed.
func (t *Task) ToggleStatus() {
	t.status = t.status.Toggle()
	t.touch()
}

// touch stamps updatedAt, keeping stamps strictly increasing even when the
// clock has not advanced since the previous one.
func (t *Task) touch() {
	prev := t.createdAt
	if t.updatedAt.After(prev) {
		prev = t.updatedAt
	}
	ts := now()
	if !ts.After(prev) {
		ts = prev.Add(time.Nanosecond)
	}
	t.updatedAt = ts
}

// Snapshot is the persisted form of a Task.
type Snapshot struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// Snapshot exports the task's state for storage.
func (t *Task) Snapshot() Snapshot {
	return Snapshot{
		ID:          t.id.String(),
		UserID:      t.userID.String(),
		Title:       t.title,
		Description: t.description,
		Completed:   t.status.IsCompleted(),
		CreatedAt:   t.createdAt,
		UpdatedAt:   t.UpdatedAt(),
	}
}

// Rehydrate rebuilds a Task from stored state, re-checking its invariants.
func Rehydrate(s Snapshot) (*Task, error) {
	id, err := ParseID(s.ID)
	if err != nil {
		return nil, err
	}
	uid, err := user.ParseID(s.UserID)
	if err != nil {
		return nil, err
	}
	if err := ValidateData(s.Title, s.Description); err != nil {
		return nil, err
	}

	t := &Task{
		id:          id,
		userID:      uid,
		title:       strings.TrimSpace(s.Title),
		description: strings.TrimSpace(s.Description),
		status:      StatusFromCompleted(s.Completed),
		createdAt:   s.CreatedAt.UTC(),
	}
	if s.UpdatedAt != nil {
		t.updatedAt = s.UpdatedAt.UTC()
	}
	return t, nil
}
