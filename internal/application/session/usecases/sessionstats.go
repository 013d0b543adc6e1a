package usecases

import (
	"context"
	"fmt"

	"adminkit/internal/domain/user"
	"adminkit/internal/shared/logger"
)

type SessionStatsUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewSessionStatsUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *SessionStatsUseCase {
	return &SessionStatsUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *SessionStatsUseCase) Execute(ctx context.Context, userID uint) (*user.SessionStats, error) {
	stats, err := uc.sessionRepo.Stats(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load session stats", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to load session stats: %w", err)
	}
	return stats, nil
}
