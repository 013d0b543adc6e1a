package usecases

import (
	"context"
	"fmt"

	"adminkit/internal/domain/user"
	"adminkit/internal/shared/errors"
	"adminkit/internal/shared/logger"
)

type DeleteUserUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewDeleteUserUseCase(userRepo user.Repository, sessionRepo user.SessionRepository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Execute removes the user and closes any live sessions so deleted accounts
// drop off the active-session views immediately.
func (uc *DeleteUserUseCase) Execute(ctx context.Context, userID uint) error {
	if err := uc.userRepo.Delete(ctx, userID); err != nil {
		if errors.IsNotFoundError(err) {
			return err
		}
		uc.logger.Errorw("failed to delete user", "user_id", userID, "error", err)
		return fmt.Errorf("failed to delete user: %w", err)
	}

	if _, err := uc.sessionRepo.CloseAllForUser(ctx, userID); err != nil {
		uc.logger.Warnw("failed to close sessions for deleted user", "user_id", userID, "error", err)
	}

	uc.logger.Infow("user deleted", "user_id", userID)
	return nil
}
