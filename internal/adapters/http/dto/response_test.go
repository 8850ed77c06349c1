package dto_test

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/jsamuelsen11/tasks-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/tasks-service/internal/domain/task"
	"github.com/jsamuelsen11/tasks-service/internal/domain/user"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func rehydrateTask(t *testing.T, updated *time.Time) *task.Task {
	t.Helper()
	tk, err := task.Rehydrate(task.Snapshot{
		ID:          "t1",
		UserID:      "u1",
		Title:       "Buy groceries",
		Description: "Milk, eggs, bread",
		Completed:   updated != nil,
		CreatedAt:   testTime,
		UpdatedAt:   updated,
	})
	if err != nil {
		t.Fatalf("Rehydrate() error = %v", err)
	}
	return tk
}

func TestToTaskResponse(t *testing.T) {
	t.Parallel()

	got := dto.ToTaskResponse(rehydrateTask(t, nil))
	if got.ID != "t1" || got.UserID != "u1" || got.Title != "Buy groceries" {
		t.Errorf("ToTaskResponse() = %+v", got)
	}
	if got.Completed || got.Status != "pending" {
		t.Errorf("Completed = %v, Status = %q; want false, pending", got.Completed, got.Status)
	}
	if got.CreatedAt != "2026-02-12T15:04:05Z" {
		t.Errorf("CreatedAt = %q", got.CreatedAt)
	}
	if got.UpdatedAt != nil {
		t.Errorf("UpdatedAt = %v, want nil", *got.UpdatedAt)
	}

	raw, _ := json.Marshal(got)
	if strings.Contains(string(raw), "updated_at") {
		t.Errorf("JSON %s should omit updated_at", raw)
	}
}

func TestToTaskResponse_Modified(t *testing.T) {
	t.Parallel()

	updated := testTime.Add(90 * time.Second)
	got := dto.ToTaskResponse(rehydrateTask(t, &updated))
	if !got.Completed || got.Status != "completed" {
		t.Errorf("Completed = %v, Status = %q", got.Completed, got.Status)
	}
	if got.UpdatedAt == nil || *got.UpdatedAt != "2026-02-12T15:05:35Z" {
		t.Errorf("UpdatedAt = %v", got.UpdatedAt)
	}
}

func TestToTaskListResponse_EmptyIsArray(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(dto.ToTaskListResponse(nil))
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(raw) != `{"tasks":[],"count":0}` {
		t.Errorf("JSON = %s", raw)
	}
}

func TestToFindUserResponse(t *testing.T) {
	t.Parallel()

	if got := dto.ToFindUserResponse(nil); got.Found || got.User != nil {
		t.Errorf("ToFindUserResponse(nil) = %+v", got)
	}

	u, err := user.Rehydrate(user.Snapshot{ID: "u1", Email: "kim@example.com", CreatedAt: testTime})
	if err != nil {
		t.Fatalf("Rehydrate() error = %v", err)
	}
	got := dto.ToFindUserResponse(u)
	if !got.Found || got.User == nil || got.User.Email != "kim@example.com" || got.User.ID != "u1" {
		t.Errorf("ToFindUserResponse(u) = %+v", got)
	}
}
