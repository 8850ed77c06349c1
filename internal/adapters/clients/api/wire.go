package api

import (
	"fmt"
	"time"

	"github.com/jsamuelsen11/tasks-service/internal/domain/task"
	"github.com/jsamuelsen11/tasks-service/internal/domain/user"
)

// Wire representations of the tasks server's JSON API. They are kept apart
// from the server's own DTOs so that either side can evolve.

type userDTO struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

type findUserDTO struct {
	Found bool     `json:"found"`
	User  *userDTO `json:"user"`
}

type taskDTO struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Completed   bool    `json:"completed"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   *string `json:"updated_at"`
}

type taskListDTO struct {
	Tasks []taskDTO `json:"tasks"`
	Count int       `json:"count"`
}

type createUserRequest struct {
	Email string `json:"email"`
}

type createTaskRequest struct {
	UserID      string `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

type updateTaskRequest struct {
	Title       *string `json:"title,omitempty"`
	Description *string `json:"description,omitempty"`
	Completed   *bool   `json:"completed,omitempty"`
}

func toDomainUser(d *userDTO) (*user.User, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, d.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing user created_at: %w", err)
	}
	return user.Rehydrate(user.Snapshot{ID: d.ID, Email: d.Email, CreatedAt: createdAt})
}

func toDomainTask(d *taskDTO) (*task.Task, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, d.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("parsing task created_at: %w", err)
	}
	snap := task.Snapshot{
		ID:          d.ID,
		UserID:      d.UserID,
		Title:       d.Title,
		Description: d.Description,
		Completed:   d.Completed,
		CreatedAt:   createdAt,
	}
	if d.UpdatedAt != nil {
		updatedAt, err := time.Parse(time.RFC3339Nano, *d.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing task updated_at: %w", err)
		}
		snap.UpdatedAt = &updatedAt
	}
	return task.Rehydrate(snap)
}

func toDomainTaskList(d *taskListDTO) ([]*task.Task, error) {
	out := make([]*task.Task, 0, len(d.Tasks))
	for i := range d.Tasks {
		t, err := toDomainTask(&d.Tasks[i])
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
