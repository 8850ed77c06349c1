// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/tasks-service/internal/domain/task"
	"github.com/jsamuelsen11/tasks-service/internal/domain/user"
)

// UserResponse represents a user in HTTP responses.
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

// ToUserResponse converts a domain User to an HTTP response DTO.
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID().String(),
		Email:     u.Email().String(),
		CreatedAt: u.CreatedAt().Format(time.RFC3339Nano),
	}
}

// FindUserResponse answers a lookup by email. User is nil when Found is
// false.
type FindUserResponse struct {
	Found bool          `json:"found"`
	User  *UserResponse `json:"user,omitempty"`
}

// ToFindUserResponse wraps a possibly nil user.
func ToFindUserResponse(u *user.User) FindUserResponse {
	if u == nil {
		return FindUserResponse{}
	}
	resp := ToUserResponse(u)
	return FindUserResponse{Found: true, User: &resp}
}

// TaskResponse represents a task in HTTP responses. UpdatedAt is omitted
// until the task is first modified.
type TaskResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Completed   bool    `json:"completed"`
	Status      string  `json:"status"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   *string `json:"updated_at,omitempty"`
}

// ToTaskResponse converts a domain Task to an HTTP response DTO.
func ToTaskResponse(t *task.Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID().String(),
		UserID:      t.UserID().String(),
		Title:       t.Title(),
		Description: t.Description(),
		Completed:   t.IsCompleted(),
		Status:      t.Status().String(),
		CreatedAt:   t.CreatedAt().Format(time.RFC3339Nano),
	}
	if ts := t.UpdatedAt(); ts != nil {
		formatted := ts.Format(time.RFC3339Nano)
		resp.UpdatedAt = &formatted
	}
	return resp
}

// TaskListResponse represents a list of tasks in HTTP responses.
type TaskListResponse struct {
	Tasks []TaskResponse `json:"tasks"`
	Count int            `json:"count"`
}

// ToTaskListResponse converts tasks to a list response. The list is never
// null in JSON.
func ToTaskListResponse(tasks []*task.Task) TaskListResponse {
	items := make([]TaskResponse, len(tasks))
	for i, t := range tasks {
		items[i] = ToTaskResponse(t)
	}
	return TaskListResponse{Tasks: items, Count: len(items)}
}
