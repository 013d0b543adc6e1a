package usecases

import (
	"context"
	"fmt"

	"adminkit/internal/domain/user"
	"adminkit/internal/shared/logger"
)

type ListSessionsQuery struct {
	UserID     uint
	ActiveOnly bool
	Page       int
	Limit      int
}

type ListSessionsResult struct {
	Sessions []*user.Session
	Total    int64
}

type ListSessionsUseCase struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewListSessionsUseCase(sessionRepo user.SessionRepository, logger logger.Interface) *ListSessionsUseCase {
	return &ListSessionsUseCase{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *ListSessionsUseCase) Execute(ctx context.Context, query ListSessionsQuery) (*ListSessionsResult, error) {
	sessions, total, err := uc.sessionRepo.ListByUser(ctx, query.UserID, user.SessionFilter{
		ActiveOnly: query.ActiveOnly,
		Page:       query.Page,
		Limit:      query.Limit,
	})
	if err != nil {
		uc.logger.Errorw("failed to list sessions", "user_id", query.UserID, "error", err)
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	return &ListSessionsResult{Sessions: sessions, Total: total}, nil
}
