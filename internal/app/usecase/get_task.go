package usecase

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/tasks-service/internal/domain"
	"github.com/jsamuelsen11/tasks-service/internal/domain/task"
	"github.com/jsamuelsen11/tasks-service/internal/ports"
)

// GetTask fetches one task by id. No ownership check is applied.
type GetTask struct {
	tasks  ports.TaskRepository
	logger *slog.Logger
}

// NewGetTask builds the use-case. A nil logger discards.
func NewGetTask(tasks ports.TaskRepository, logger *slog.Logger) *GetTask {
	return &GetTask{tasks: tasks, logger: orDiscard(logger)}
}

// Execute parses the id and returns the task or domain.ErrTaskNotFound.
func (uc *GetTask) Execute(ctx context.Context, query ports.GetTaskQuery) (*task.Task, error) {
	uc.logger.InfoContext(ctx, "fetching task", slog.String("task_id", query.TaskID))

	t, err := uc.run(ctx, query)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to fetch task",
			slog.String("operation", "GetTask"),
			slog.String("task_id", query.TaskID),
			slog.Any("error", err),
		)
		return nil, err
	}

	uc.logger.InfoContext(ctx, "task fetched", slog.String("task_id", t.ID().String()))
	return t, nil
}

func (uc *GetTask) run(ctx context.Context, query ports.GetTaskQuery) (*task.Task, error) {
	id, err := task.ParseID(query.TaskID)
	if err != nil {
		return nil, err
	}

	t, err := uc.tasks.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NewTaskNotFoundError(id.String())
	}
	return t, nil
}
