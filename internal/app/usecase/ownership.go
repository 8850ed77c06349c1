package usecase

import (
	"context"

	"github.com/jsamuelsen11/tasks-service/internal/domain"
	"github.com/jsamuelsen11/tasks-service/internal/domain/task"
	"github.com/jsamuelsen11/tasks-service/internal/domain/user"
	"github.com/jsamuelsen11/tasks-service/internal/ports"
)

// loadOwned parses both ids, fetches the task and checks that userID owns it.
// Shared by every mutating task use-case.
func loadOwned(ctx context.Context, tasks ports.TaskRepository, rawTaskID, rawUserID string) (*task.Task, error) {
	taskID, err := task.ParseID(rawTaskID)
	if err != nil {
		return nil, err
	}
	userID, err := user.ParseID(rawUserID)
	if err != nil {
		return nil, err
	}

	t, err := tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, domain.NewTaskNotFoundError(taskID.String())
	}
	if !task.CanUserAccess(t, userID) {
		return nil, &domain.AccessDeniedError{TaskID: taskID.String(), UserID: userID.String()}
	}
	return t, nil
}
