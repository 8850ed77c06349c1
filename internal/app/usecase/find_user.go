package usecase

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/tasks-service/internal/domain"
	"github.com/jsamuelsen11/tasks-service/internal/domain/user"
	"github.com/jsamuelsen11/tasks-service/internal/ports"
)

// FindUser looks a user up by email and fails with domain.ErrUserNotFound
// when nobody is registered with it.
type FindUser struct {
	users  ports.UserRepository
	logger *slog.Logger
}

// NewFindUser builds the use-case. A nil logger discards.
func NewFindUser(users ports.UserRepository, logger *slog.Logger) *FindUser {
	return &FindUser{users: users, logger: orDiscard(logger)}
}

// Execute normalizes the email and looks the user up.
func (uc *FindUser) Execute(ctx context.Context, query ports.FindUserQuery) (*user.User, error) {
	uc.logger.InfoContext(ctx, "finding user", slog.String("email", query.Email))

	u, err := uc.run(ctx, query)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to find user",
			slog.String("operation", "FindUser"),
			slog.String("email", query.Email),
			slog.Any("error", err),
		)
		return nil, err
	}

	uc.logger.InfoContext(ctx, "user found", slog.String("user_id", u.ID().String()))
	return u, nil
}

func (uc *FindUser) run(ctx context.Context, query ports.FindUserQuery) (*user.User, error) {
	email, err := user.NewEmail(query.Email)
	if err != nil {
		return nil, err
	}

	u, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.NewUserNotFoundError(email.String())
	}
	return u, nil
}
