package app

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/tasks-service/internal/domain"
	"github.com/jsamuelsen11/tasks-service/internal/domain/task"
	"github.com/jsamuelsen11/tasks-service/internal/domain/user"
	"github.com/jsamuelsen11/tasks-service/internal/ports"
	"github.com/jsamuelsen11/tasks-service/mocks"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func sampleUser(t *testing.T) *user.User {
	t.Helper()
	u, err := user.Rehydrate(user.Snapshot{ID: "u1", Email: "kim@example.com", CreatedAt: time.Now()})
	if err != nil {
		t.Fatalf("Rehydrate() error = %v", err)
	}
	return u
}

func sampleTask(t *testing.T) *task.Task {
	t.Helper()
	tk, err := task.Rehydrate(task.Snapshot{ID: "t1", UserID: "u1", Title: "Pay rent", Description: "Before the 5th", CreatedAt: time.Now()})
	if err != nil {
		t.Fatalf("Rehydrate() error = %v", err)
	}
	return tk
}

// countOps collects the task.operations sum from reader.
func countOps(t *testing.T, reader *sdkmetric.ManualReader) int64 {
	t.Helper()

	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("Collect() error = %v", err)
	}
	var total int64
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if m.Name != "task.operations" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			if !ok {
				t.Fatalf("task.operations data = %T", m.Data)
			}
			for _, dp := range sum.DataPoints {
				total += dp.Value
			}
		}
	}
	return total
}

// --- AuthService ---

func TestAuthService_FindUserByEmail(t *testing.T) {
	t.Parallel()

	t.Run("found", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockUserRepository(t)
		repo.EXPECT().FindByEmail(mock.Anything, user.Email("kim@example.com")).Return(sampleUser(t), nil)

		got, err := NewAuthService(repo, nil, discardLogger()).
			FindUserByEmail(context.Background(), ports.FindUserQuery{Email: "kim@example.com"})
		if err != nil {
			t.Fatalf("FindUserByEmail() error = %v", err)
		}
		if got == nil || got.ID() != "u1" {
			t.Errorf("FindUserByEmail() = %v", got)
		}
	})

	t.Run("not found becomes nil without error", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockUserRepository(t)
		repo.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(nil, nil)

		got, err := NewAuthService(repo, nil, discardLogger()).
			FindUserByEmail(context.Background(), ports.FindUserQuery{Email: "nobody@example.com"})
		if err != nil || got != nil {
			t.Fatalf("FindUserByEmail() = (%v, %v), want (nil, nil)", got, err)
		}
	})

	t.Run("validation error is not swallowed", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockUserRepository(t)

		_, err := NewAuthService(repo, nil, nil).
			FindUserByEmail(context.Background(), ports.FindUserQuery{Email: "bad"})
		if !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("error = %v, want ErrValidation", err)
		}
	})

	t.Run("repository error is not swallowed", func(t *testing.T) {
		t.Parallel()
		repo := mocks.NewMockUserRepository(t)
		repo.EXPECT().FindByEmail(mock.Anything, mock.Anything).
			Return(nil, domain.NewRepositoryError("find user", errors.New("boom")))

		_, err := NewAuthService(repo, nil, discardLogger()).
			FindUserByEmail(context.Background(), ports.FindUserQuery{Email: "kim@example.com"})
		if !errors.Is(err, domain.ErrRepository) {
			t.Fatalf("error = %v, want ErrRepository", err)
		}
	})
}

func TestAuthService_CreateUser(t *testing.T) {
	t.Parallel()
	repo := mocks.NewMockUserRepository(t)
	repo.EXPECT().FindByEmail(mock.Anything, mock.Anything).Return(nil, nil)
	repo.EXPECT().Save(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, u *user.User) (*user.User, error) { return u, nil })

	got, err := NewAuthService(repo, nil, discardLogger()).
		CreateUser(context.Background(), ports.CreateUserCommand{Email: "lee@example.com"})
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if got.Email() != "lee@example.com" {
		t.Errorf("Email() = %q", got.Email())
	}
}

// --- TaskService ---

func TestTaskService_DelegatesAndCounts(t *testing.T) {
	t.Parallel()

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	counter, err := mp.Meter("test").Int64Counter("task.operations")
	if err != nil {
		t.Fatalf("Int64Counter() error = %v", err)
	}

	users := mocks.NewMockUserRepository(t)
	tasks := mocks.NewMockTaskRepository(t)
	svc := NewTaskService(users, tasks, counter, discardLogger())
	ctx := context.Background()

	tasks.EXPECT().FindByID(mock.Anything, task.ID("t1")).Return(sampleTask(t), nil)
	tasks.EXPECT().FindByUserID(mock.Anything, user.ID("u1")).Return([]*task.Task{sampleTask(t)}, nil)

	if _, err := svc.GetTask(ctx, ports.GetTaskQuery{TaskID: "t1"}); err != nil {
		t.Fatalf("GetTask() error = %v", err)
	}
	list, err := svc.GetTasks(ctx, ports.GetTasksQuery{UserID: "u1"})
	if err != nil || len(list) != 1 {
		t.Fatalf("GetTasks() = (%v, %v)", list, err)
	}
	if _, err := svc.UpdateTask(ctx, ports.UpdateTaskCommand{TaskID: "t1", UserID: "u1"}); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("UpdateTask(empty) error = %v, want ErrValidation", err)
	}

	if got := countOps(t, reader); got != 3 {
		t.Errorf("task.operations = %d, want 3", got)
	}
}

func TestTaskService_ToggleAndDelete(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserRepository(t)
	tasks := mocks.NewMockTaskRepository(t)
	svc := NewTaskService(users, tasks, nil, nil)
	ctx := context.Background()

	tasks.EXPECT().FindByID(mock.Anything, task.ID("t1")).Return(sampleTask(t), nil).Twice()
	tasks.EXPECT().Update(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, tk *task.Task) (*task.Task, error) { return tk, nil })
	tasks.EXPECT().Delete(mock.Anything, task.ID("t1")).Return(nil)

	toggled, err := svc.ToggleTask(ctx, ports.ToggleTaskCommand{TaskID: "t1", UserID: "u1"})
	if err != nil {
		t.Fatalf("ToggleTask() error = %v", err)
	}
	if !toggled.IsCompleted() {
		t.Error("ToggleTask() left task pending")
	}
	if err := svc.DeleteTask(ctx, ports.DeleteTaskCommand{TaskID: "t1", UserID: "u1"}); err != nil {
		t.Fatalf("DeleteTask() error = %v", err)
	}
}

func TestTaskService_CreateTask(t *testing.T) {
	t.Parallel()

	users := mocks.NewMockUserRepository(t)
	tasks := mocks.NewMockTaskRepository(t)
	users.EXPECT().FindByID(mock.Anything, user.ID("u1")).Return(sampleUser(t), nil)
	tasks.EXPECT().Save(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, tk *task.Task) (*task.Task, error) { return tk, nil })

	got, err := NewTaskService(users, tasks, nil, discardLogger()).CreateTask(context.Background(),
		ports.CreateTaskCommand{UserID: "u1", Title: "Book dentist", Description: "Before June"})
	if err != nil {
		t.Fatalf("CreateTask() error = %v", err)
	}
	if got.UserID() != "u1" {
		t.Errorf("UserID() = %q", got.UserID())
	}
}
