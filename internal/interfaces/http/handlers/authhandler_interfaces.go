package handlers

import (
	"context"

	"adminkit/internal/application/auth/usecases"
)

// Use case interfaces for AuthHandler, so unit tests can substitute mocks.

type registerUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterCommand) (*usecases.RegisterResult, error)
}

type loginUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginCommand) (*usecases.LoginResult, error)
}

type logoutUseCase interface {
	Execute(ctx context.Context, cmd usecases.LogoutCommand) (*usecases.LogoutResult, error)
}

type refreshTokenUseCase interface {
	Execute(ctx context.Context, cmd usecases.RefreshTokenCommand) (*usecases.RefreshTokenResult, error)
}

type requestPasswordResetUseCase interface {
	Execute(ctx context.Context, cmd usecases.RequestPasswordResetCommand) error
}

type resetPasswordUseCase interface {
	Execute(ctx context.Context, cmd usecases.ResetPasswordCommand) error
}
