package usecases

import (
	"context"
	"fmt"

	"adminkit/internal/domain/user"
	"adminkit/internal/shared/logger"
)

type ActiveSessionsUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewActiveSessionsUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *ActiveSessionsUseCase {
	return &ActiveSessionsUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *ActiveSessionsUseCase) Execute(ctx context.Context, userID uint) ([]*user.Session, error) {
	sessions, err := uc.sessionRepo.ListActive(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to list active sessions", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to list active sessions: %w", err)
	}
	return sessions, nil
}
