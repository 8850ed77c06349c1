package usecase

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/tasks-service/internal/domain/task"
	"github.com/jsamuelsen11/tasks-service/internal/domain/user"
	"github.com/jsamuelsen11/tasks-service/internal/ports"
)

// GetTasks lists a user's tasks, newest first. An unknown user simply has
// no tasks.
type GetTasks struct {
	tasks  ports.TaskRepository
	logger *slog.Logger
}

// NewGetTasks builds the use-case. A nil logger discards.
func NewGetTasks(tasks ports.TaskRepository, logger *slog.Logger) *GetTasks {
	return &GetTasks{tasks: tasks, logger: orDiscard(logger)}
}

// Execute parses the user id and lists that user's tasks.
func (uc *GetTasks) Execute(ctx context.Context, query ports.GetTasksQuery) ([]*task.Task, error) {
	uc.logger.InfoContext(ctx, "listing tasks", slog.String("user_id", query.UserID))

	tasks, err := uc.run(ctx, query)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to list tasks",
			slog.String("operation", "GetTasks"),
			slog.String("user_id", query.UserID),
			slog.Any("error", err),
		)
		return nil, err
	}

	uc.logger.InfoContext(ctx, "tasks listed",
		slog.String("user_id", query.UserID),
		slog.Int("count", len(tasks)),
	)
	return tasks, nil
}

func (uc *GetTasks) run(ctx context.Context, query ports.GetTasksQuery) ([]*task.Task, error) {
	userID, err := user.ParseID(query.UserID)
	if err != nil {
		return nil, err
	}

	tasks, err := uc.tasks.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []*task.Task{}
	}
	return tasks, nil
}
