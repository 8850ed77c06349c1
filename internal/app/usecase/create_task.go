package usecase

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/tasks-service/internal/domain"
	"github.com/jsamuelsen11/tasks-service/internal/domain/task"
	"github.com/jsamuelsen11/tasks-service/internal/domain/user"
	"github.com/jsamuelsen11/tasks-service/internal/ports"
)

// CreateTask creates a pending task for an existing user.
type CreateTask struct {
	users  ports.UserRepository
	tasks  ports.TaskRepository
	logger *slog.Logger
}

// NewCreateTask builds the use-case. A nil logger discards.
func NewCreateTask(users ports.UserRepository, tasks ports.TaskRepository, logger *slog.Logger) *CreateTask {
	return &CreateTask{users: users, tasks: tasks, logger: orDiscard(logger)}
}

// Execute checks that the owner exists, validates the fields and saves the task.
func (uc *CreateTask) Execute(ctx context.Context, cmd ports.CreateTaskCommand) (*task.Task, error) {
	uc.logger.InfoContext(ctx, "creating task",
		slog.String("user_id", cmd.UserID),
		slog.String("title", cmd.Title),
	)

	t, err := uc.run(ctx, cmd)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to create task",
			slog.String("operation", "CreateTask"),
			slog.String("user_id", cmd.UserID),
			slog.Any("error", err),
		)
		return nil, err
	}

	uc.logger.InfoContext(ctx, "task created",
		slog.String("task_id", t.ID().String()),
		slog.String("user_id", t.UserID().String()),
	)
	return t, nil
}

func (uc *CreateTask) run(ctx context.Context, cmd ports.CreateTaskCommand) (*task.Task, error) {
	if err := task.ValidateData(cmd.Title, cmd.Description); err != nil {
		return nil, err
	}

	userID, err := user.ParseID(cmd.UserID)
	if err != nil {
		return nil, err
	}

	owner, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, domain.NewUserNotFoundError(userID.String())
	}

	t, err := task.New(owner.ID(), cmd.Title, cmd.Description)
	if err != nil {
		return nil, err
	}
	return uc.tasks.Save(ctx, t)
}
