package usecases

import (
	"context"
	"fmt"

	"adminkit/internal/domain/user"
	"adminkit/internal/shared/logger"
)

type LogoutCommand struct {
	// SessionID closes one specific ledger entry when set.
	SessionID string
	// UserID closes every live entry for the user when SessionID is empty.
	UserID uint
}

type LogoutResult struct {
	ClosedSessions int64
}

type LogoutUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewLogoutUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

// Execute closes sessions and never treats an already-closed or missing
// session as a failure; logout is idempotent by contract.
func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) (*LogoutResult, error) {
	if cmd.SessionID != "" {
		if err := uc.sessionRepo.Close(ctx, cmd.SessionID); err != nil {
			uc.logger.Errorw("failed to close session", "session_id", cmd.SessionID, "error", err)
			return nil, fmt.Errorf("failed to close session: %w", err)
		}
		uc.logger.Infow("session closed", "session_id", cmd.SessionID)
		return &LogoutResult{ClosedSessions: 1}, nil
	}

	if cmd.UserID != 0 {
		count, err := uc.sessionRepo.CloseAllForUser(ctx, cmd.UserID)
		if err != nil {
			uc.logger.Errorw("failed to close user sessions", "user_id", cmd.UserID, "error", err)
			return nil, fmt.Errorf("failed to close sessions: %w", err)
		}
		uc.logger.Infow("all sessions closed", "user_id", cmd.UserID, "count", count)
		return &LogoutResult{ClosedSessions: count}, nil
	}

	return &LogoutResult{}, nil
}
