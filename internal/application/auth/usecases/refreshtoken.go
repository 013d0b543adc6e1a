package usecases

import (
	"context"
	"fmt"

	"adminkit/internal/domain/user"
	"adminkit/internal/shared/errors"
	"adminkit/internal/shared/logger"
)

type RefreshTokenCommand struct {
	RefreshToken string
}

type RefreshTokenResult struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type RefreshTokenUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	jwtService  JWTService
	logger      logger.Interface
}

func NewRefreshTokenUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	jwtService JWTService,
	logger logger.Interface,
) *RefreshTokenUseCase {
	return &RefreshTokenUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		jwtService:  jwtService,
		logger:      logger,
	}
}

func (uc *RefreshTokenUseCase) Execute(ctx context.Context, cmd RefreshTokenCommand) (*RefreshTokenResult, error) {
	claims, err := uc.jwtService.VerifyRefresh(cmd.RefreshToken)
	if err != nil {
		return nil, errors.NewUnauthorizedError("Invalid refresh token")
	}

	existingUser, err := uc.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("Invalid refresh token")
		}
		uc.logger.Errorw("failed to get user for refresh", "user_id", claims.UserID, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// New pair stays bound to the same session so the audit trail keeps a
	// single entry per login.
	tokens, err := uc.jwtService.Generate(existingUser.ID, claims.SessionID)
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err)
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	// Best effort: token validity never depends on the ledger, so a failed
	// touch is logged and swallowed.
	if claims.SessionID != "" {
		if err := uc.sessionRepo.Touch(ctx, claims.SessionID); err != nil {
			uc.logger.Warnw("failed to touch session on refresh", "session_id", claims.SessionID, "error", err)
		}
	}

	uc.logger.Debugw("token pair refreshed", "user_id", existingUser.ID, "session_id", claims.SessionID)

	return &RefreshTokenResult{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
