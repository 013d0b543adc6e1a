package usecases

import (
	"context"
	"fmt"

	"adminkit/internal/domain/user"
	"adminkit/internal/shared/logger"
)

type UserProfileResult struct {
	User  *user.User
	Stats *user.SessionStats
}

// GetUserProfileUseCase joins the profile with the user's session stats.
type GetUserProfileUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewGetUserProfileUseCase(userRepo user.Repository, sessionRepo user.SessionRepository, logger logger.Interface) *GetUserProfileUseCase {
	return &GetUserProfileUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *GetUserProfileUseCase) Execute(ctx context.Context, userID uint) (*UserProfileResult, error) {
	existing, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	stats, err := uc.sessionRepo.Stats(ctx, userID)
	if err != nil {
		uc.logger.Errorw("failed to load session stats", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to load session stats: %w", err)
	}

	return &UserProfileResult{User: existing, Stats: stats}, nil
}
