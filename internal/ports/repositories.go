package ports

import (
	"context"

	"github.com/jsamuelsen11/tasks-service/internal/domain/task"
	"github.com/jsamuelsen11/tasks-service/internal/domain/user"
)

// UserRepository persists users. Lookups that find nothing return (nil, nil);
// absence is never an error at this boundary. Storage failures are returned
// as *domain.RepositoryError.
type UserRepository interface {
	// FindByEmail returns the user registered with email, or nil.
	FindByEmail(ctx context.Context, email user.Email) (*user.User, error)

	// FindByID returns the user with id, or nil.
	FindByID(ctx context.Context, id user.ID) (*user.User, error)

	// Save stores a new user and returns the stored entity.
	Save(ctx context.Context, u *user.User) (*user.User, error)

	// Exists reports whether a user with email is registered.
	Exists(ctx context.Context, email user.Email) (bool, error)
}

// TaskRepository persists tasks. Same absence and failure conventions as
// UserRepository.
type TaskRepository interface {
	// FindByID returns the task with id, or nil.
	FindByID(ctx context.Context, id task.ID) (*task.Task, error)

	// FindByUserID returns every task owned by userID, newest first.
	// An owner with no tasks yields an empty slice.
	FindByUserID(ctx context.Context, userID user.ID) ([]*task.Task, error)

	// Save stores a new task and returns the stored entity.
	Save(ctx context.Context, t *task.Task) (*task.Task, error)

	// Update replaces the stored state of an existing task.
	Update(ctx context.Context, t *task.Task) (*task.Task, error)

	// Delete removes the task with id. Deleting a missing task is not an error.
	Delete(ctx context.Context, id task.ID) error
}
