package app

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/tasks-service/internal/app/usecase"
	"github.com/jsamuelsen11/tasks-service/internal/domain/task"
	"github.com/jsamuelsen11/tasks-service/internal/ports"
)

// Compile-time check that TaskService implements ports.TaskService.
var _ ports.TaskService = (*TaskService)(nil)

// TaskService implements ports.TaskService by delegating each call to its
// use-case. It holds no state of its own beyond the wiring.
type TaskService struct {
	createTask *usecase.CreateTask
	getTasks   *usecase.GetTasks
	getTask    *usecase.GetTask
	updateTask *usecase.UpdateTask
	deleteTask *usecase.DeleteTask
	toggleTask *usecase.ToggleTask
	ops        *operationRecorder
}

// NewTaskService wires the task use-cases. counter may be nil.
func NewTaskService(users ports.UserRepository, tasks ports.TaskRepository, counter metric.Int64Counter, logger *slog.Logger) *TaskService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskService{
		createTask: usecase.NewCreateTask(users, tasks, logger),
		getTasks:   usecase.NewGetTasks(tasks, logger),
		getTask:    usecase.NewGetTask(tasks, logger),
		updateTask: usecase.NewUpdateTask(tasks, logger),
		deleteTask: usecase.NewDeleteTask(tasks, logger),
		toggleTask: usecase.NewToggleTask(tasks, logger),
		ops:        newOperationRecorder(counter),
	}
}

// CreateTask creates a pending task for cmd.UserID.
func (s *TaskService) CreateTask(ctx context.Context, cmd ports.CreateTaskCommand) (*task.Task, error) {
	t, err := s.createTask.Execute(ctx, cmd)
	s.ops.record(ctx, "create_task", err)
	return t, err
}

// GetTasks lists the tasks owned by query.UserID, newest first.
func (s *TaskService) GetTasks(ctx context.Context, query ports.GetTasksQuery) ([]*task.Task, error) {
	tasks, err := s.getTasks.Execute(ctx, query)
	s.ops.record(ctx, "get_tasks", err)
	return tasks, err
}

// GetTask fetches one task by id.
func (s *TaskService) GetTask(ctx context.Context, query ports.GetTaskQuery) (*task.Task, error) {
	t, err := s.getTask.Execute(ctx, query)
	s.ops.record(ctx, "get_task", err)
	return t, err
}

// UpdateTask applies a partial update after checking ownership.
func (s *TaskService) UpdateTask(ctx context.Context, cmd ports.UpdateTaskCommand) (*task.Task, error) {
	t, err := s.updateTask.Execute(ctx, cmd)
	s.ops.record(ctx, "update_task", err)
	return t, err
}

// DeleteTask removes a task after checking ownership.
func (s *TaskService) DeleteTask(ctx context.Context, cmd ports.DeleteTaskCommand) error {
	err := s.deleteTask.Execute(ctx, cmd)
	s.ops.record(ctx, "delete_task", err)
	return err
}

// ToggleTask flips a task between pending and completed after checking ownership.
func (s *TaskService) ToggleTask(ctx context.Context, cmd ports.ToggleTaskCommand) (*task.Task, error) {
	t, err := s.toggleTask.Execute(ctx, cmd)
	s.ops.record(ctx, "toggle_task", err)
	return t, err
}
