package usecase

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/tasks-service/internal/domain"
	"github.com/jsamuelsen11/tasks-service/internal/domain/user"
	"github.com/jsamuelsen11/tasks-service/internal/ports"
)

// CreateUser registers a new user with a unique email.
type CreateUser struct {
	users  ports.UserRepository
	logger *slog.Logger
}

// NewCreateUser builds the use-case. A nil logger discards.
func NewCreateUser(users ports.UserRepository, logger *slog.Logger) *CreateUser {
	return &CreateUser{users: users, logger: orDiscard(logger)}
}

// Execute validates the email, rejects duplicates, and saves the new user.
func (uc *CreateUser) Execute(ctx context.Context, cmd ports.CreateUserCommand) (*user.User, error) {
	uc.logger.InfoContext(ctx, "creating user", slog.String("email", cmd.Email))

	u, err := uc.run(ctx, cmd)
	if err != nil {
		uc.logger.ErrorContext(ctx, "failed to create user",
			slog.String("operation", "CreateUser"),
			slog.String("email", cmd.Email),
			slog.Any("error", err),
		)
		return nil, err
	}

	uc.logger.InfoContext(ctx, "user created",
		slog.String("user_id", u.ID().String()),
		slog.String("email", u.Email().String()),
	)
	return u, nil
}

func (uc *CreateUser) run(ctx context.Context, cmd ports.CreateUserCommand) (*user.User, error) {
	email, err := user.NewEmail(cmd.Email)
	if err != nil {
		return nil, err
	}

	existing, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, &domain.AlreadyExistsError{Email: email.String()}
	}

	u, err := user.New(email.String())
	if err != nil {
		return nil, err
	}
	return uc.users.Save(ctx, u)
}
