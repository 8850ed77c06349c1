// Package memory provides in-process user and task repositories. State is
// lost on restart; it backs local runs and tests.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/jsamuelsen11/tasks-service/internal/domain"
	"github.com/jsamuelsen11/tasks-service/internal/domain/task"
	"github.com/jsamuelsen11/tasks-service/internal/domain/user"
	"github.com/jsamuelsen11/tasks-service/internal/ports"
)

var (
	_ ports.UserRepository = (*UserRepository)(nil)
	_ ports.TaskRepository = (*TaskRepository)(nil)
)

// Store holds users and tasks behind a single lock. Entities are stored as
// snapshots so callers never share mutable state with the store.
type Store struct {
	mu      sync.RWMutex
	users   map[string]user.Snapshot
	byEmail map[string]string
	tasks   map[string]task.Snapshot
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{
		users:   make(map[string]user.Snapshot),
		byEmail: make(map[string]string),
		tasks:   make(map[string]task.Snapshot),
	}
}

// Users returns the user repository over this store.
func (s *Store) Users() *UserRepository { return &UserRepository{store: s} }

// Tasks returns the task repository over this store.
func (s *Store) Tasks() *TaskRepository { return &TaskRepository{store: s} }

// Name identifies the store in readiness reports.
func (s *Store) Name() string { return "memory" }

// HealthCheck always succeeds.
func (s *Store) HealthCheck(context.Context) error { return nil }

// UserRepository implements ports.UserRepository over the store's maps.
type UserRepository struct {
	store *Store
}

// FindByEmail returns the user registered with email, or nil.
func (r *UserRepository) FindByEmail(_ context.Context, email user.Email) (*user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.byEmail[email.String()]
	if !ok {
		return nil, nil
	}
	return rehydrateUser(r.store.users[id])
}

// FindByID returns the user with id, or nil.
func (r *UserRepository) FindByID(_ context.Context, id user.ID) (*user.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	snap, ok := r.store.users[id.String()]
	if !ok {
		return nil, nil
	}
	return rehydrateUser(snap)
}

// Save stores u. The email index is checked under the write lock, so two
// concurrent registrations of one address cannot both succeed.
func (r *UserRepository) Save(_ context.Context, u *user.User) (*user.User, error) {
	snap := u.Snapshot()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, taken := r.store.byEmail[snap.Email]; taken {
		return nil, &domain.AlreadyExistsError{Email: snap.Email}
	}
	r.store.users[snap.ID] = snap
	r.store.byEmail[snap.Email] = snap.ID
	return rehydrateUser(snap)
}

// Exists reports whether email is taken.
func (r *UserRepository) Exists(_ context.Context, email user.Email) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, ok := r.store.byEmail[email.String()]
	return ok, nil
}

// TaskRepository implements ports.TaskRepository over the store's maps.
type TaskRepository struct {
	store *Store
}

// FindByID returns the task with id, or nil.
func (r *TaskRepository) FindByID(_ context.Context, id task.ID) (*task.Task, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	snap, ok := r.store.tasks[id.String()]
	if !ok {
		return nil, nil
	}
	return rehydrateTask(snap)
}

// FindByUserID returns the owner's tasks ordered by creation time, newest
// first, with the id as tie breaker.
func (r *TaskRepository) FindByUserID(_ context.Context, userID user.ID) ([]*task.Task, error) {
	r.store.mu.RLock()
	snaps := make([]task.Snapshot, 0)
	for _, snap := range r.store.tasks {
		if snap.UserID == userID.String() {
			snaps = append(snaps, snap)
		}
	}
	r.store.mu.RUnlock()

	slices.SortFunc(snaps, func(a, b task.Snapshot) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})

	out := make([]*task.Task, 0, len(snaps))
	for _, snap := range snaps {
		t, err := rehydrateTask(snap)
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// Save stores a new task.
func (r *TaskRepository) Save(_ context.Context, t *task.Task) (*task.Task, error) {
	snap := t.Snapshot()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.users[snap.UserID]; !ok {
		return nil, domain.NewUserNotFoundError(snap.UserID)
	}
	r.store.tasks[snap.ID] = snap
	return rehydrateTask(snap)
}

// Update replaces a stored task.
func (r *TaskRepository) Update(_ context.Context, t *task.Task) (*task.Task, error) {
	snap := t.Snapshot()

	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.tasks[snap.ID]; !ok {
		return nil, domain.NewTaskNotFoundError(snap.ID)
	}
	r.store.tasks[snap.ID] = snap
	return rehydrateTask(snap)
}

// Delete removes the task with id.
func (r *TaskRepository) Delete(_ context.Context, id task.ID) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	delete(r.store.tasks, id.String())
	return nil
}

func rehydrateUser(s user.Snapshot) (*user.User, error) {
	u, err := user.Rehydrate(s)
	if err != nil {
		return nil, domain.NewRepositoryError("decode user", err)
	}
	return u, nil
}

func rehydrateTask(s task.Snapshot) (*task.Task, error) {
	t, err := task.Rehydrate(s)
	if err != nil {
		return nil, domain.NewRepositoryError("decode task", err)
	}
	return t, nil
}
