package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jsamuelsen11/tasks-service/internal/domain"
	"github.com/jsamuelsen11/tasks-service/internal/domain/user"
	"github.com/jsamuelsen11/tasks-service/internal/ports"
)

var _ ports.UserRepository = (*UserRepository)(nil)

// UserRepository implements ports.UserRepository over the users table.
type UserRepository struct {
	store *Store
}

const selectUser = `SELECT id, email, created_at FROM users`

// FindByEmail returns the user registered with email, or nil.
func (r *UserRepository) FindByEmail(ctx context.Context, email user.Email) (*user.User, error) {
	row := r.store.db.QueryRowContext(ctx, r.store.rebind(selectUser+` WHERE email = ?`), email.String())
	return r.scan(row, "find user by email")
}

// FindByID returns the user with id, or nil.
func (r *UserRepository) FindByID(ctx context.Context, id user.ID) (*user.User, error) {
	row := r.store.db.QueryRowContext(ctx, r.store.rebind(selectUser+` WHERE id = ?`), id.String())
	return r.scan(row, "find user by id")
}

// Save inserts u. A concurrent registration of the same email surfaces as
// *domain.AlreadyExistsError through the unique index.
func (r *UserRepository) Save(ctx context.Context, u *user.User) (*user.User, error) {
	snap := u.Snapshot()
	_, err := r.store.db.ExecContext(ctx,
		r.store.rebind(`INSERT INTO users (id, email, created_at) VALUES (?, ?, ?)`),
		snap.ID, snap.Email, snap.CreatedAt.UnixNano(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, &domain.AlreadyExistsError{Email: snap.Email}
		}
		return nil, domain.NewRepositoryError("save user", err)
	}
	return u, nil
}

// Exists reports whether a row with email exists.
func (r *UserRepository) Exists(ctx context.Context, email user.Email) (bool, error) {
	var exists bool
	err := r.store.db.QueryRowContext(ctx,
		r.store.rebind(`SELECT EXISTS (SELECT 1 FROM users WHERE email = ?)`), email.String(),
	).Scan(&exists)
	if err != nil {
		return false, domain.NewRepositoryError("user exists", err)
	}
	return exists, nil
}

func (r *UserRepository) scan(row *sql.Row, op string) (*user.User, error) {
	var (
		snap      user.Snapshot
		createdNS int64
	)
	if err := row.Scan(&snap.ID, &snap.Email, &createdNS); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, domain.NewRepositoryError(op, err)
	}
	snap.CreatedAt = time.Unix(0, createdNS).UTC()

	u, err := user.Rehydrate(snap)
	if err != nil {
		return nil, domain.NewRepositoryError(op, err)
	}
	return u, nil
}
