package usecase

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/jsamuelsen11/tasks-service/internal/domain"
	"github.com/jsamuelsen11/tasks-service/internal/domain/task"
	"github.com/jsamuelsen11/tasks-service/internal/domain/user"
)

const (
	ownerID = "user-1"
	otherID = "user-2"
	taskID  = "task-1"
)

var errStore = domain.NewRepositoryError("query", errors.New("connection refused"))

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func existingUser(t *testing.T, email string) *user.User {
	t.Helper()
	u, err := user.Rehydrate(user.Snapshot{ID: ownerID, Email: email, CreatedAt: time.Now().UTC()})
	if err != nil {
		t.Fatalf("user.Rehydrate() error = %v", err)
	}
	return u
}

func existingTask(t *testing.T, completed bool) *task.Task {
	t.Helper()
	tk, err := task.Rehydrate(task.Snapshot{
		ID:          taskID,
		UserID:      ownerID,
		Title:       "Water plants",
		Description: "Balcony and kitchen",
		Completed:   completed,
		CreatedAt:   time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("task.Rehydrate() error = %v", err)
	}
	return tk
}

// requireErrorIs fails unless errors.Is(err, want).
func requireErrorIs(t *testing.T, err, want error) {
	t.Helper()
	if err == nil {
		t.Fatalf("error = nil, want %v", want)
	}
	if !errors.Is(err, want) {
		t.Fatalf("errors.Is(%v, %v) = false", err, want)
	}
}

func TestOrDiscard(t *testing.T) {
	t.Parallel()

	if orDiscard(nil) == nil {
		t.Fatal("orDiscard(nil) = nil, want no-op logger")
	}
	l := discardLogger()
	if orDiscard(l) != l {
		t.Error("orDiscard(l) did not return l")
	}
}
