package usecase

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/tasks-service/internal/ports"
)

// DeleteTask removes a task owned by the caller.
type DeleteTask struct {
	tasks  ports.TaskRepository
	logger *slog.Logger
}

// NewDeleteTask builds the use-case. A nil logger discards.
func NewDeleteTask(tasks ports.TaskRepository, logger *slog.Logger) *DeleteTask {
	return &DeleteTask{tasks: tasks, logger: orDiscard(logger)}
}

// Execute loads the task, checks ownership and deletes it.
func (uc *DeleteTask) Execute(ctx context.Context, cmd ports.DeleteTaskCommand) error {
	uc.logger.InfoContext(ctx, "deleting task",
		slog.String("task_id", cmd.TaskID),
		slog.String("user_id", cmd.UserID),
	)

	if err := uc.run(ctx, cmd); err != nil {
		uc.logger.ErrorContext(ctx, "failed to delete task",
			slog.String("operation", "DeleteTask"),
			slog.String("task_id", cmd.TaskID),
			slog.String("user_id", cmd.UserID),
			slog.Any("error", err),
		)
		return err
	}

	uc.logger.InfoContext(ctx, "task deleted", slog.String("task_id", cmd.TaskID))
	return nil
}

func (uc *DeleteTask) run(ctx context.Context, cmd ports.DeleteTaskCommand) error {
	t, err := loadOwned(ctx, uc.tasks, cmd.TaskID, cmd.UserID)
	if err != nil {
		return err
	}
	return uc.tasks.Delete(ctx, t.ID())
}
