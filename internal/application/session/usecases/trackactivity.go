package usecases

import (
	"context"
	"fmt"

	"adminkit/internal/domain/user"
	"adminkit/internal/shared/logger"
)

type TrackActivityUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewTrackActivityUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *TrackActivityUseCase {
	return &TrackActivityUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Execute refreshes last activity on a live session. A session that is
// missing or already closed is not an error; the touch simply has no effect.
func (uc *TrackActivityUseCase) Execute(ctx context.Context, sessionID string) error {
	if err := uc.sessionRepo.Touch(ctx, sessionID); err != nil {
		uc.logger.Errorw("failed to track activity", "session_id", sessionID, "error", err)
		return fmt.Errorf("failed to track activity: %w", err)
	}
	return nil
}
