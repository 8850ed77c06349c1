package usecase

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/tasks-service/internal/domain"
	"github.com/jsamuelsen11/tasks-service/internal/domain/task"
	"github.com/jsamuelsen11/tasks-service/internal/ports"
)

// UpdateTask applies a partial update to a task owned by the caller.
type UpdateTask struct {
	tasks  ports.TaskRepository
	logger *slog.Logger
}

// NewUpdateTask builds the use-case. A nil logger discards.
func NewUpdateTask(tasks ports.TaskRepository, logger *slog.Logger) *UpdateTask {
	return &UpdateTask{tasks: tasks, logger: orDiscard(logger)}
}

// Execute loads the task, checks ownership, applies every set field and
// persists the result. Nothing is saved when any field is rejected.
func (uc *UpdateTask) Execute(ctx context.Context, cmd ports.UpdateTaskCommand) (*task.Task, error) {
	uc.logger.InfoContext(ctx, "updating task",
		slog.String("task_id", cmd.TaskID),
		slog.String("user_id", cmd.UserID),
	)

	t, err := uc.run(ctx, cmd)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to update task",
			slog.String("operation", "UpdateTask"),
			slog.String("task_id", cmd.TaskID),
			slog.String("user_id", cmd.UserID),
			slog.Any("error", err),
		)
		return nil, err
	}

	uc.logger.InfoContext(ctx, "task updated", slog.String("task_id", t.ID().String()))
	return t, nil
}

func (uc *UpdateTask) run(ctx context.Context, cmd ports.UpdateTaskCommand) (*task.Task, error) {
	if cmd.IsEmpty() {
		return nil, domain.NewValidationError("update", domain.KindEmptyValue,
			"at least one of title, description or completed must be provided")
	}

	t, err := loadOwned(ctx, uc.tasks, cmd.TaskID, cmd.UserID)
	if err != nil {
		return nil, err
	}

	// Fields are applied in a fixed order. Every violation is collected and
	// nothing is persisted if any field was rejected.
	var errs []error
	if cmd.Title != nil {
		errs = append(errs, t.UpdateTitle(*cmd.Title))
	}
	if cmd.Description != nil {
		errs = append(errs, t.UpdateDescription(*cmd.Description))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	if cmd.Completed != nil {
		if *cmd.Completed {
			t.MarkAsCompleted()
		} else {
			t.MarkAsPending()
		}
	}

	return uc.tasks.Update(ctx, t)
}
