package usecases

import (
	"context"
	"fmt"

	"adminkit/internal/domain/user"
	"adminkit/internal/shared/logger"
)

type TerminateAllSessionsUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewTerminateAllSessionsUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *TerminateAllSessionsUseCase {
	return &TerminateAllSessionsUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *TerminateAllSessionsUseCase) Execute(ctx context.Context, userID uint) (int64, error) {
	count, err := uc.sessionRepo.CloseAllForUser(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to terminate sessions", "user_id", userID, "error", err)
		return 0, fmt.Errorf("failed to terminate sessions: %w", err)
	}

	uc.logger.Infow("sessions terminated", "user_id", userID, "count", count)
	return count, nil
}
