package usecase

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/tasks-service/internal/domain/task"
	"github.com/jsamuelsen11/tasks-service/internal/ports"
)

// ToggleTask flips a task owned by the caller between pending and completed.
type ToggleTask struct {
	tasks  ports.TaskRepository
	logger *slog.Logger
}

// NewToggleTask builds the use-case. A nil logger discards.
func NewToggleTask(tasks ports.TaskRepository, logger *slog.Logger) *ToggleTask {
	return &ToggleTask{tasks: tasks, logger: orDiscard(logger)}
}

// Execute loads the task, checks ownership, flips its status and persists it.
func (uc *ToggleTask) Execute(ctx context.Context, cmd ports.ToggleTaskCommand) (*task.Task, error) {
	uc.logger.InfoContext(ctx, "toggling task",
		slog.String("task_id", cmd.TaskID),
		slog.String("user_id", cmd.UserID),
	)

	t, err := loadOwned(ctx, uc.tasks, cmd.TaskID, cmd.UserID)
	if err == nil {
		t.ToggleStatus()
		t, err = uc.tasks.Update(ctx, t)
	}
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to toggle task",
			slog.String("operation", "ToggleTask"),
			slog.String("task_id", cmd.TaskID),
			slog.String("user_id", cmd.UserID),
			slog.Any("error", err),
		)
		return nil, err
	}

	uc.logger.InfoContext(ctx, "task toggled",
		slog.String("task_id", t.ID().String()),
		slog.String("status", t.Status().String()),
	)
	return t, nil
}
