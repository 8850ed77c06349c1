// Package cache decorates the task repository with a Redis cache-aside
// layer. Redis is an optimisation only: any cache failure is logged and the
// call falls through to the wrapped repository.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/singleflight"

	"github.com/jsamuelsen11/tasks-service/internal/domain"
	"github.com/jsamuelsen11/tasks-service/internal/domain/task"
	"github.com/jsamuelsen11/tasks-service/internal/domain/user"
	"github.com/jsamuelsen11/tasks-service/internal/ports"
)

var _ ports.TaskRepository = (*TaskRepository)(nil)

// DefaultTTL applies when Config.TTL is not positive.
const DefaultTTL = 5 * time.Minute

// Config tunes the cache.
type Config struct {
	Prefix string
	TTL    time.Duration
}

// TaskRepository caches single tasks and per-owner task lists. Writes go to
// the wrapped repository first, then invalidate the affected keys.
type TaskRepository struct {
	next   ports.TaskRepository
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
	group  singleflight.Group
	logger *slog.Logger
}

// NewTaskRepository wraps next with a Redis cache.
func NewTaskRepository(next ports.TaskRepository, client redis.UniversalClient, cfg Config, logger *slog.Logger) *TaskRepository {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &TaskRepository{
		next:   next,
		client: client,
		prefix: cfg.Prefix,
		ttl:    cfg.TTL,
		logger: logger,
	}
}

// cachedTask is the JSON form of task.Snapshot stored in Redis.
type cachedTask struct {
	ID          string     `json:"id"`
	UserID      string     `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

func toCached(t *task.Task) cachedTask {
	s := t.Snapshot()
	return cachedTask(s)
}

func (c cachedTask) toTask() (*task.Task, error) {
	return task.Rehydrate(task.Snapshot(c))
}

func (r *TaskRepository) taskKey(id string) string {
	return r.prefix + "task:" + id
}

func (r *TaskRepository) listKey(userID string) string {
	return r.prefix + "user:" + userID + ":tasks"
}

// FindByID serves from the cache and fills it from the underlying repository on a miss.
func (r *TaskRepository) FindByID(ctx context.Context, id task.ID) (*task.Task, error) {
	key := r.taskKey(id.String())

	var hit cachedTask
	if r.get(ctx, key, &hit) {
		if t, err := hit.toTask(); err == nil {
			return t, nil
		}
	}

	v, err, _ := r.group.Do(key, func() (any, error) {
		t, err := r.next.FindByID(ctx, id)
		if err != nil || t == nil {
			return t, err
		}
		r.set(ctx, key, toCached(t))
		return t, nil
	})
	if err != nil {
		return nil, err
	}
	t, _ := v.(*task.Task)
	if t == nil {
		return nil, nil
	}
	// singleflight shares one result between callers; hand each its own copy.
	own, err := task.Rehydrate(t.Snapshot())
	if err != nil {
		return nil, domain.NewRepositoryError("decode cached task", err)
	}
	return own, nil
}

// FindByUserID serves the cached listing for userID or loads and caches it.
func (r *TaskRepository) FindByUserID(ctx context.Context, userID user.ID) ([]*task.Task, error) {
	key := r.listKey(userID.String())

	var hit []cachedTask
	if r.get(ctx, key, &hit) {
		if tasks, err := fromCachedList(hit); err == nil {
			return tasks, nil
		}
	}

	v, err, _ := r.group.Do(key, func() (any, error) {
		tasks, err := r.next.FindByUserID(ctx, userID)
		if err != nil {
			return nil, err
		}
		list := make([]cachedTask, 0, len(tasks))
		for _, t := range tasks {
			list = append(list, toCached(t))
		}
		r.set(ctx, key, list)
		return list, nil
	})
	if err != nil {
		return nil, err
	}
	list, _ := v.([]cachedTask)
	tasks, err := fromCachedList(list)
	if err != nil {
		return nil, domain.NewRepositoryError("decode cached tasks", err)
	}
	return tasks, nil
}

// Save writes through and drops the owner's cached listing.
func (r *TaskRepository) Save(ctx context.Context, t *task.Task) (*task.Task, error) {
	saved, err := r.next.Save(ctx, t)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, r.listKey(t.UserID().String()))
	return saved, nil
}

// Update writes through and invalidates the task and its owner's listing.
func (r *TaskRepository) Update(ctx context.Context, t *task.Task) (*task.Task, error) {
	updated, err := r.next.Update(ctx, t)
	if err != nil {
		return nil, err
	}
	r.invalidate(ctx, r.taskKey(t.ID().String()), r.listKey(t.UserID().String()))
	return updated, nil
}

// Delete removes the task and drops its cached entries. The owner is looked
// up first so the owner's list can be invalidated too.
func (r *TaskRepository) Delete(ctx context.Context, id task.ID) error {
	keys := []string{r.taskKey(id.String())}
	if existing, err := r.next.FindByID(ctx, id); err == nil && existing != nil {
		keys = append(keys, r.listKey(existing.UserID().String()))
	}

	if err := r.next.Delete(ctx, id); err != nil {
		return err
	}
	r.invalidate(ctx, keys...)
	return nil
}

// Name identifies the cache in readiness reports.
func (r *TaskRepository) Name() string {
	return "redis"
}

// HealthCheck pings Redis.
func (r *TaskRepository) HealthCheck(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *TaskRepository) get(ctx context.Context, key string, dest any) bool {
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			r.logger.WarnContext(ctx, "cache get failed", slog.String("key", key), slog.Any("error", err))
		}
		return false
	}
	if err := json.Unmarshal(data, dest); err != nil {
		r.logger.WarnContext(ctx, "cache entry undecodable", slog.String("key", key), slog.Any("error", err))
		return false
	}
	return true
}

func (r *TaskRepository) set(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := r.client.Set(ctx, key, data, r.ttl).Err(); err != nil {
		r.logger.WarnContext(ctx, "cache set failed", slog.String("key", key), slog.Any("error", err))
	}
}

func (r *TaskRepository) invalidate(ctx context.Context, keys ...string) {
	if err := r.client.Del(ctx, keys...).Err(); err != nil {
		r.logger.WarnContext(ctx, "cache invalidation failed", slog.Any("keys", keys), slog.Any("error", err))
	}
}

func fromCachedList(list []cachedTask) ([]*task.Task, error) {
	out := make([]*task.Task, 0, len(list))
	for _, c := range list {
		t, err := c.toTask()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}
