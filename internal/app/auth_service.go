// Package app provides application services that expose the use-cases through
// the inbound service ports. Services add operation metrics and the small
// amount of result shaping the ports promise; all orchestration lives in
// package usecase.
package app

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/tasks-service/internal/app/usecase"
	"github.com/jsamuelsen11/tasks-service/internal/domain"
	"github.com/jsamuelsen11/tasks-service/internal/domain/user"
	"github.com/jsamuelsen11/tasks-service/internal/ports"
)

// Compile-time check that AuthService implements ports.AuthService.
var _ ports.AuthService = (*AuthService)(nil)

// AuthService implements ports.AuthService on top of the user use-cases.
type AuthService struct {
	createUser *usecase.CreateUser
	findUser   *usecase.FindUser
	ops        *operationRecorder
}

// NewAuthService wires the user use-cases over users. counter may be nil.
func NewAuthService(users ports.UserRepository, counter metric.Int64Counter, logger *slog.Logger) *AuthService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &AuthService{
		createUser: usecase.NewCreateUser(users, logger),
		findUser:   usecase.NewFindUser(users, logger),
		ops:        newOperationRecorder(counter),
	}
}

// CreateUser registers a new user.
func (s *AuthService) CreateUser(ctx context.Context, cmd ports.CreateUserCommand) (*user.User, error) {
	u, err := s.createUser.Execute(ctx, cmd)
	s.ops.record(ctx, "create_user", err)
	return u, err
}

// FindUserByEmail returns (nil, nil) when no user has the email. Every other
// failure, validation included, is returned unchanged.
func (s *AuthService) FindUserByEmail(ctx context.Context, query ports.FindUserQuery) (*user.User, error) {
	u, err := s.findUser.Execute(ctx, query)
	if errors.Is(err, domain.ErrUserNotFound) {
		s.ops.record(ctx, "find_user", nil)
		return nil, nil
	}
	s.ops.record(ctx, "find_user", err)
	return u, err
}
