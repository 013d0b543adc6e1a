package usecases

import (
	"context"
	"fmt"

	"adminkit/internal/domain/user"
	"adminkit/internal/shared/errors"
	"adminkit/internal/shared/logger"
)

type TerminateSessionCommand struct {
	SessionID string
	// RequesterID is the authenticated caller; only the owner may terminate.
	RequesterID uint
}

type TerminateSessionUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewTerminateSessionUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *TerminateSessionUseCase {
	return &TerminateSessionUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *TerminateSessionUseCase) Execute(ctx context.Context, cmd TerminateSessionCommand) error {
	session, err := uc.sessionRepo.GetByID(ctx, cmd.SessionID)
	if err != nil {
		return err
	}

	if session.UserID != cmd.RequesterID {
		return errors.NewForbiddenError("You can only terminate your own sessions")
	}

	if err := uc.sessionRepo.Close(ctx, cmd.SessionID); err != nil {
		uc.logger.Errorw("failed to terminate session", "session_id", cmd.SessionID, "error", err)
		return fmt.Errorf("failed to terminate session: %w", err)
	}

	uc.logger.Infow("session terminated", "session_id", cmd.SessionID, "user_id", cmd.RequesterID)
	return nil
}
