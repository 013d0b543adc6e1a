package usecases

import (
	"context"
	"fmt"

	"adminkit/internal/domain/user"
	"adminkit/internal/shared/logger"
)

type RequestPasswordResetCommand struct {
	Email string
}

type RequestPasswordResetUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewRequestPasswordResetUseCase(userRepo user.Repository, logger logger.Interface) *RequestPasswordResetUseCase {
	return &RequestPasswordResetUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

// Execute acknowledges the request without revealing whether the email is
// registered. No reset email is delivered; delivery is not wired up yet.
func (uc *RequestPasswordResetUseCase) Execute(ctx context.Context, cmd RequestPasswordResetCommand) error {
	email := user.NormalizeEmail(cmd.Email)

	existingUser, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to look up user for password reset", "error", err)
		return fmt.Errorf("failed to look up user: %w", err)
	}

	if existingUser != nil {
		uc.logger.Infow("password reset requested", "user_id", existingUser.ID)
	}

	return nil
}
