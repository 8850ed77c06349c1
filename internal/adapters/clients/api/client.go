// Package api is the outbound adapter for a remote tasks server. Client
// implements ports.AuthService and ports.TaskService over the server's JSON
// API, so presentation code works the same against a local or a remote
// backend. Problem responses are translated back into the typed domain
// errors the server raised.
package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/jsamuelsen11/tasks-service/internal/domain"
	"github.com/jsamuelsen11/tasks-service/internal/domain/task"
	"github.com/jsamuelsen11/tasks-service/internal/domain/user"
	"github.com/jsamuelsen11/tasks-service/internal/platform/httpclient"
	"github.com/jsamuelsen11/tasks-service/internal/ports"
)

var (
	_ ports.AuthService   = (*Client)(nil)
	_ ports.TaskService   = (*Client)(nil)
	_ ports.HealthChecker = (*Client)(nil)
)

// Client talks to a tasks server through an instrumented httpclient.Client
// (circuit breaker, retry, rate limit, tracing).
type Client struct {
	req  *requester
	http *httpclient.Client
}

// NewClient creates a Client. The httpclient's base URL must point at the
// server root, e.g. "http://localhost:8080".
func NewClient(client *httpclient.Client, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Client{
		req:  &requester{client: client, logger: logger},
		http: client,
	}
}

// CreateUser registers a user with POST /users.
func (c *Client) CreateUser(ctx context.Context, cmd ports.CreateUserCommand) (*user.User, error) {
	var out userDTO
	err := c.req.do(ctx, call{
		method:     http.MethodPost,
		path:       "/api/v1/users",
		wantStatus: http.StatusCreated,
		body:       createUserRequest{Email: cmd.Email},
		out:        &out,
		target:     target{resource: domain.ResourceUser, email: cmd.Email},
	})
	if err != nil {
		return nil, err
	}
	return toDomainUser(&out)
}

// FindUserByEmail returns (nil, nil) when the server reports found=false.
func (c *Client) FindUserByEmail(ctx context.Context, query ports.FindUserQuery) (*user.User, error) {
	var out findUserDTO
	err := c.req.do(ctx, call{
		method:     http.MethodGet,
		path:       "/api/v1/users/" + url.PathEscape(query.Email),
		wantStatus: http.StatusOK,
		out:        &out,
		target:     target{resource: domain.ResourceUser, id: query.Email},
	})
	if err != nil {
		return nil, err
	}
	if !out.Found || out.User == nil {
		return nil, nil
	}
	return toDomainUser(out.User)
}

// CreateTask posts a new task for cmd.UserID.
func (c *Client) CreateTask(ctx context.Context, cmd ports.CreateTaskCommand) (*task.Task, error) {
	var out taskDTO
	err := c.req.do(ctx, call{
		method:     http.MethodPost,
		path:       "/api/v1/tasks",
		wantStatus: http.StatusCreated,
		body: createTaskRequest{
			UserID:      cmd.UserID,
			Title:       cmd.Title,
			Description: cmd.Description,
		},
		out:    &out,
		target: target{resource: domain.ResourceUser, id: cmd.UserID},
	})
	if err != nil {
		return nil, err
	}
	return toDomainTask(&out)
}

// GetTasks lists the tasks owned by query.UserID.
func (c *Client) GetTasks(ctx context.Context, query ports.GetTasksQuery) ([]*task.Task, error) {
	var out taskListDTO
	err := c.req.do(ctx, call{
		method:     http.MethodGet,
		path:       "/api/v1/users/" + url.PathEscape(query.UserID) + "/tasks",
		wantStatus: http.StatusOK,
		out:        &out,
		target:     target{resource: domain.ResourceUser, id: query.UserID},
	})
	if err != nil {
		return nil, err
	}
	return toDomainTaskList(&out)
}

// GetTask fetches one task.
func (c *Client) GetTask(ctx context.Context, query ports.GetTaskQuery) (*task.Task, error) {
	var out taskDTO
	err := c.req.do(ctx, call{
		method:     http.MethodGet,
		path:       taskPath(query.TaskID, ""),
		wantStatus: http.StatusOK,
		out:        &out,
		target:     target{resource: domain.ResourceTask, id: query.TaskID},
	})
	if err != nil {
		return nil, err
	}
	return toDomainTask(&out)
}

// UpdateTask sends only the fields set on cmd.
func (c *Client) UpdateTask(ctx context.Context, cmd ports.UpdateTaskCommand) (*task.Task, error) {
	var out taskDTO
	err := c.req.do(ctx, call{
		method:     http.MethodPatch,
		path:       taskPath(cmd.TaskID, cmd.UserID),
		wantStatus: http.StatusOK,
		body: updateTaskRequest{
			Title:       cmd.Title,
			Description: cmd.Description,
			Completed:   cmd.Completed,
		},
		out:    &out,
		target: target{resource: domain.ResourceTask, id: cmd.TaskID, userID: cmd.UserID},
	})
	if err != nil {
		return nil, err
	}
	return toDomainTask(&out)
}

// DeleteTask deletes a task.
func (c *Client) DeleteTask(ctx context.Context, cmd ports.DeleteTaskCommand) error {
	return c.req.do(ctx, call{
		method:     http.MethodDelete,
		path:       taskPath(cmd.TaskID, cmd.UserID),
		wantStatus: http.StatusNoContent,
		target:     target{resource: domain.ResourceTask, id: cmd.TaskID, userID: cmd.UserID},
	})
}

// ToggleTask flips a task's status.
func (c *Client) ToggleTask(ctx context.Context, cmd ports.ToggleTaskCommand) (*task.Task, error) {
	var out taskDTO
	err := c.req.do(ctx, call{
		method:     http.MethodPost,
		path:       "/api/v1/tasks/" + url.PathEscape(cmd.TaskID) + "/toggle?" + actingUserQuery(cmd.UserID),
		wantStatus: http.StatusOK,
		out:        &out,
		target:     target{resource: domain.ResourceTask, id: cmd.TaskID, userID: cmd.UserID},
	})
	if err != nil {
		return nil, err
	}
	return toDomainTask(&out)
}

// Name identifies the remote server in health reports.
func (c *Client) Name() string {
	return c.http.Name()
}

// HealthCheck reports the circuit breaker state; no request is made.
func (c *Client) HealthCheck(ctx context.Context) error {
	if err := c.http.HealthCheck(ctx); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUnavailable, err)
	}
	return nil
}

func taskPath(taskID, userID string) string {
	p := "/api/v1/tasks/" + url.PathEscape(taskID)
	if userID != "" {
		p += "?" + actingUserQuery(userID)
	}
	return p
}

func actingUserQuery(userID string) string {
	return url.Values{"user_id": {userID}}.Encode()
}
