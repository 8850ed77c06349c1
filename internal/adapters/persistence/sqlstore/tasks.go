package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jsamuelsen11/tasks-service/internal/domain"
	"github.com/jsamuelsen11/tasks-service/internal/domain/task"
	"github.com/jsamuelsen11/tasks-service/internal/domain/user"
	"github.com/jsamuelsen11/tasks-service/internal/ports"
)

var _ ports.TaskRepository = (*TaskRepository)(nil)

// TaskRepository implements ports.TaskRepository over the tasks table.
// Timestamps are stored as Unix nanoseconds so that the strictly increasing
// update stamps survive a round trip.
type TaskRepository struct {
	store *Store
}

const selectTask = `SELECT id, user_id, title, description, completed, created_at, updated_at FROM tasks`

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// FindByID returns the task with id, or nil.
func (r *TaskRepository) FindByID(ctx context.Context, id task.ID) (*task.Task, error) {
	row := r.store.db.QueryRowContext(ctx, r.store.rebind(selectTask+` WHERE id = ?`), id.String())
	t, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewRepositoryError("find task by id", err)
	}
	return t, nil
}

// FindByUserID lists the user's tasks, newest first.
func (r *TaskRepository) FindByUserID(ctx context.Context, userID user.ID) ([]*task.Task, error) {
	rows, err := r.store.db.QueryContext(ctx,
		r.store.rebind(selectTask+` WHERE user_id = ? ORDER BY created_at DESC, id DESC`), userID.String())
	if err != nil {
		return nil, domain.NewRepositoryError("find tasks by user", err)
	}
	defer rows.Close()

	tasks := []*task.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, domain.NewRepositoryError("find tasks by user", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, domain.NewRepositoryError("find tasks by user", err)
	}
	return tasks, nil
}

// Save inserts a new task row.
func (r *TaskRepository) Save(ctx context.Context, t *task.Task) (*task.Task, error) {
	snap := t.Snapshot()
	_, err := r.store.db.ExecContext(ctx, r.store.rebind(
		`INSERT INTO tasks (id, user_id, title, description, completed, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`),
		snap.ID, snap.UserID, snap.Title, snap.Description, snap.Completed,
		snap.CreatedAt.UnixNano(), nullableNanos(snap.UpdatedAt),
	)
	if err != nil {
		return nil, domain.NewRepositoryError("save task", err)
	}
	return t, nil
}

// Update overwrites the mutable columns. Last write wins.
func (r *TaskRepository) Update(ctx context.Context, t *task.Task) (*task.Task, error) {
	snap := t.Snapshot()
	res, err := r.store.db.ExecContext(ctx, r.store.rebind(
		`UPDATE tasks SET title = ?, description = ?, completed = ?, updated_at = ? WHERE id = ?`),
		snap.Title, snap.Description, snap.Completed, nullableNanos(snap.UpdatedAt), snap.ID,
	)
	if err != nil {
		return nil, domain.NewRepositoryError("update task", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return nil, domain.NewTaskNotFoundError(snap.ID)
	}
	return t, nil
}

// Delete removes the task row. A missing row is not an error.
func (r *TaskRepository) Delete(ctx context.Context, id task.ID) error {
	if _, err := r.store.db.ExecContext(ctx, r.store.rebind(`DELETE FROM tasks WHERE id = ?`), id.String()); err != nil {
		return domain.NewRepositoryError("delete task", err)
	}
	return nil
}

func scanTask(row rowScanner) (*task.Task, error) {
	var (
		snap      task.Snapshot
		createdNS int64
		updatedNS sql.NullInt64
	)
	if err := row.Scan(&snap.ID, &snap.UserID, &snap.Title, &snap.Description,
		&snap.Completed, &createdNS, &updatedNS); err != nil {
		return nil, err
	}
	snap.CreatedAt = time.Unix(0, createdNS).UTC()
	if updatedNS.Valid {
		ts := time.Unix(0, updatedNS.Int64).UTC()
		snap.UpdatedAt = &ts
	}
	return task.Rehydrate(snap)
}

func nullableNanos(ts *time.Time) sql.NullInt64 {
	if ts == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: ts.UnixNano(), Valid: true}
}
