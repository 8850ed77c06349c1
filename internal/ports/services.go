package ports

import (
	"context"

	"github.com/jsamuelsen11/tasks-service/internal/domain/task"
	"github.com/jsamuelsen11/tasks-service/internal/domain/user"
)

// AuthService defines the service port for user account operations.
// Implemented by the application layer; called by inbound adapters.
type AuthService interface {
	// CreateUser registers a new user.
	// Returns domain.ErrUserAlreadyExists if the email is taken and
	// domain.ErrValidation if the email is malformed.
	CreateUser(ctx context.Context, cmd CreateUserCommand) (*user.User, error)

	// FindUserByEmail returns the user registered with the email, or
	// (nil, nil) when nobody is. Other failures are returned unchanged.
	FindUserByEmail(ctx context.Context, query FindUserQuery) (*user.User, error)
}

// TaskService defines the service port for task operations.
// Every mutating call carries the acting user's id; ownership is enforced
// before anything is persisted.
type TaskService interface {
	// CreateTask creates a pending task for an existing user.
	// Returns domain.ErrUserNotFound if the owner does not exist.
	CreateTask(ctx context.Context, cmd CreateTaskCommand) (*task.Task, error)

	// GetTasks lists a user's tasks, newest first.
	GetTasks(ctx context.Context, query GetTasksQuery) ([]*task.Task, error)

	// GetTask returns one task. Returns domain.ErrTaskNotFound if absent.
	GetTask(ctx context.Context, query GetTaskQuery) (*task.Task, error)

	// UpdateTask applies the fields set on cmd.
	// Returns domain.ErrTaskNotFound, domain.ErrAccessDenied or
	// domain.ErrValidation.
	UpdateTask(ctx context.Context, cmd UpdateTaskCommand) (*task.Task, error)

	// DeleteTask removes a task owned by the caller.
	DeleteTask(ctx context.Context, cmd DeleteTaskCommand) error

	// ToggleTask flips a task between pending and completed.
	ToggleTask(ctx context.Context, cmd ToggleTaskCommand) (*task.Task, error)
}

// CreateUserCommand carries the raw email for registration.
type CreateUserCommand struct {
	Email string
}

// FindUserQuery looks a user up by raw email.
type FindUserQuery struct {
	Email string
}

// CreateTaskCommand carries the raw fields of a new task.
type CreateTaskCommand struct {
	UserID      string
	Title       string
	Description string
}

// GetTasksQuery names the user whose tasks are listed.
type GetTasksQuery struct {
	UserID string
}

// GetTaskQuery names one task.
type GetTaskQuery struct {
	TaskID string
}

// UpdateTaskCommand is a partial update. Nil fields are left untouched;
// at least one must be set.
type UpdateTaskCommand struct {
	TaskID      string
	UserID      string
	Title       *string
	Description *string
	Completed   *bool
}

// IsEmpty reports whether the command changes nothing.
func (c UpdateTaskCommand) IsEmpty() bool {
	return c.Title == nil && c.Description == nil && c.Completed == nil
}

// DeleteTaskCommand names a task and the user asking to delete it.
type DeleteTaskCommand struct {
	TaskID string
	UserID string
}

// ToggleTaskCommand names a task and the user asking to toggle it.
type ToggleTaskCommand struct {
	TaskID string
	UserID string
}
