package usecases

import (
	"context"

	"adminkit/internal/shared/errors"
	"adminkit/internal/shared/logger"
)

type ResetPasswordCommand struct {
	Token       string
	NewPassword string
}

type ResetPasswordUseCase struct {
	logger logger.Interface
}

func NewResetPasswordUseCase(logger logger.Interface) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{logger: logger}
}

// Execute validates the request shape and acknowledges it. Reset tokens are
// never issued, so there is nothing to redeem yet.
func (uc *ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) error {
	if cmd.Token == "" || cmd.NewPassword == "" {
		return errors.NewValidationError("token and new password are required")
	}

	uc.logger.Infow("password reset acknowledged")
	return nil
}
