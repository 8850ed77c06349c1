package cache

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/tasks-service/internal/domain"
	"github.com/jsamuelsen11/tasks-service/internal/domain/task"
	"github.com/jsamuelsen11/tasks-service/internal/domain/user"
	"github.com/jsamuelsen11/tasks-service/mocks"
)

func sampleTask(t *testing.T) *task.Task {
	t.Helper()
	tk, err := task.Rehydrate(task.Snapshot{
		ID:          "task-1",
		UserID:      "user-1",
		Title:       "Renew passport",
		Description: "Before the summer trip",
		CreatedAt:   time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("Rehydrate() error = %v", err)
	}
	return tk
}

// unreachableClient points at a closed port so every command fails fast.
func unreachableClient(t *testing.T) *redis.Client {
	t.Helper()
	c := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = c.Close() })
	return c
}

// liveClient connects to REDIS_ADDR (default localhost:6379) or skips.
func liveClient(t *testing.T) *redis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}
	c := redis.NewClient(&redis.Options{Addr: addr, DialTimeout: 200 * time.Millisecond})
	if err := c.Ping(context.Background()).Err(); err != nil {
		_ = c.Close()
		t.Skipf("Redis not available at %s: %v", addr, err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestNewTaskRepository_DefaultTTL(t *testing.T) {
	t.Parallel()

	r := NewTaskRepository(mocks.NewMockTaskRepository(t), unreachableClient(t), Config{Prefix: "p:"}, nil)
	if r.ttl != DefaultTTL {
		t.Errorf("ttl = %v, want %v", r.ttl, DefaultTTL)
	}
	if got := r.taskKey("abc"); got != "p:task:abc" {
		t.Errorf("taskKey = %q", got)
	}
	if got := r.listKey("u1"); got != "p:user:u1:tasks" {
		t.Errorf("listKey = %q", got)
	}
}

func TestTaskRepository_FallsThroughWhenRedisDown(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	tk := sampleTask(t)

	inner := mocks.NewMockTaskRepository(t)
	inner.EXPECT().FindByID(mock.Anything, tk.ID()).Return(tk, nil).Once()
	inner.EXPECT().FindByUserID(mock.Anything, tk.UserID()).Return([]*task.Task{tk}, nil).Once()
	inner.EXPECT().Update(mock.Anything, tk).Return(tk, nil).Once()

	r := NewTaskRepository(inner, unreachableClient(t), Config{}, nil)

	got, err := r.FindByID(ctx, tk.ID())
	if err != nil || got == nil || got.Title() != tk.Title() {
		t.Fatalf("FindByID() = %v, %v", got, err)
	}
	list, err := r.FindByUserID(ctx, tk.UserID())
	if err != nil || len(list) != 1 {
		t.Fatalf("FindByUserID() = %v, %v", list, err)
	}
	if _, err := r.Update(ctx, tk); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if err := r.HealthCheck(ctx); err == nil {
		t.Error("HealthCheck() error = nil, want error for unreachable redis")
	}
}

func TestTaskRepository_PropagatesInnerErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	storeErr := domain.NewRepositoryError("query", errors.New("boom"))

	inner := mocks.NewMockTaskRepository(t)
	inner.EXPECT().FindByID(mock.Anything, task.ID("missing")).Return(nil, nil).Once()
	inner.EXPECT().FindByUserID(mock.Anything, user.ID("u1")).Return(nil, storeErr).Once()

	r := NewTaskRepository(inner, unreachableClient(t), Config{}, nil)

	got, err := r.FindByID(ctx, "missing")
	if err != nil || got != nil {
		t.Errorf("FindByID(missing) = %v, %v; want nil, nil", got, err)
	}
	if _, err := r.FindByUserID(ctx, "u1"); !errors.Is(err, domain.ErrRepository) {
		t.Errorf("FindByUserID() error = %v, want ErrRepository", err)
	}
}

func TestTaskRepository_CachesReadsAndInvalidatesOnWrite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client := liveClient(t)
	prefix := "test:" + t.Name() + ":"
	tk := sampleTask(t)

	inner := mocks.NewMockTaskRepository(t)
	r := NewTaskRepository(inner, client, Config{Prefix: prefix, TTL: time.Minute}, nil)
	t.Cleanup(func() {
		_ = client.Del(context.Background(), r.taskKey(tk.ID().String()), r.listKey(tk.UserID().String())).Err()
	})

	// Second read is served by Redis: the inner repository is hit once.
	inner.EXPECT().FindByID(mock.Anything, tk.ID()).Return(tk, nil).Once()
	for range 2 {
		got, err := r.FindByID(ctx, tk.ID())
		if err != nil || got == nil || got.Title() != "Renew passport" {
			t.Fatalf("FindByID() = %v, %v", got, err)
		}
	}

	inner.EXPECT().FindByUserID(mock.Anything, tk.UserID()).Return([]*task.Task{tk}, nil).Once()
	for range 2 {
		list, err := r.FindByUserID(ctx, tk.UserID())
		if err != nil || len(list) != 1 {
			t.Fatalf("FindByUserID() = %v, %v", list, err)
		}
	}

	// An update drops both keys, so the next reads go back to the store.
	changed := sampleTask(t)
	_ = changed.UpdateTitle("Renew passport today")
	inner.EXPECT().Update(mock.Anything, changed).Return(changed, nil).Once()
	if _, err := r.Update(ctx, changed); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	inner.EXPECT().FindByID(mock.Anything, tk.ID()).Return(changed, nil).Once()
	got, err := r.FindByID(ctx, tk.ID())
	if err != nil || got.Title() != "Renew passport today" {
		t.Fatalf("FindByID() after Update = %v, %v", got, err)
	}
	if got.UpdatedAt() == nil || !got.UpdatedAt().Equal(*changed.UpdatedAt()) {
		t.Errorf("UpdatedAt = %v, want %v", got.UpdatedAt(), changed.UpdatedAt())
	}
}

func TestTaskRepository_DeleteInvalidatesOwnerList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	client := liveClient(t)
	prefix := "test:" + t.Name() + ":"
	tk := sampleTask(t)

	inner := mocks.NewMockTaskRepository(t)
	r := NewTaskRepository(inner, client, Config{Prefix: prefix}, nil)

	inner.EXPECT().FindByUserID(mock.Anything, tk.UserID()).Return([]*task.Task{tk}, nil).Once()
	if _, err := r.FindByUserID(ctx, tk.UserID()); err != nil {
		t.Fatalf("FindByUserID() error = %v", err)
	}

	inner.EXPECT().FindByID(mock.Anything, tk.ID()).Return(tk, nil).Once()
	inner.EXPECT().Delete(mock.Anything, tk.ID()).Return(nil).Once()
	if err := r.Delete(ctx, tk.ID()); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	n, err := client.Exists(ctx, r.listKey(tk.UserID().String())).Result()
	if err != nil || n != 0 {
		t.Errorf("list key exists = %d, %v; want 0", n, err)
	}
}
