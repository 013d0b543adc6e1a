package handlers

import (
	"context"

	"adminkit/internal/application/session/usecases"
	"adminkit/internal/domain/user"
)

// Use case interfaces for SessionHandler, so unit tests can substitute mocks.

type listSessionsUseCase interface {
	Execute(ctx context.Context, query usecases.ListSessionsQuery) (*usecases.ListSessionsResult, error)
}

type activeSessionsUseCase interface {
	Execute(ctx context.Context, userID uint) ([]*user.Session, error)
}

type sessionStatsUseCase interface {
	Execute(ctx context.Context, userID uint) (*user.SessionStats, error)
}

type terminateSessionUseCase interface {
	Execute(ctx context.Context, cmd usecases.TerminateSessionCommand) error
}

type terminateAllSessionsUseCase interface {
	Execute(ctx context.Context, userID uint) (int64, error)
}

type trackActivityUseCase interface {
	Execute(ctx context.Context, sessionID string) error
}
