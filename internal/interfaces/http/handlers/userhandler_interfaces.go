package handlers

import (
	"context"

	"adminkit/internal/application/user/usecases"
	"adminkit/internal/domain/user"
)

// Use case interfaces for UserHandler, so unit tests can substitute mocks.

type listUsersUseCase interface {
	Execute(ctx context.Context, query usecases.ListUsersQuery) (*usecases.ListUsersResult, error)
}

type getUserUseCase interface {
	Execute(ctx context.Context, userID uint) (*user.User, error)
}

type createUserUseCase interface {
	Execute(ctx context.Context, cmd usecases.CreateUserCommand) (*user.User, error)
}

type updateUserUseCase interface {
	Execute(ctx context.Context, cmd usecases.UpdateUserCommand) (*user.User, error)
}

type deleteUserUseCase interface {
	Execute(ctx context.Context, userID uint) error
}

type changePasswordUseCase interface {
	Execute(ctx context.Context, cmd usecases.ChangePasswordCommand) error
}

type getUserProfileUseCase interface {
	Execute(ctx context.Context, userID uint) (*usecases.UserProfileResult, error)
}
