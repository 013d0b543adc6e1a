package usecases

import (
	"context"
	"fmt"
	"time"

	"adminkit/internal/domain/user"
	"adminkit/internal/shared/logger"
)

// SweepExpiredSessionsJob deactivates session records whose expiry has
// elapsed. It satisfies the scheduler's BatchJob contract and is safe to run
// concurrently with request traffic: the sweep is a single predicate UPDATE.
type SweepExpiredSessionsJob struct {
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewSweepExpiredSessionsJob(sessionRepo user.SessionRepository, logger logger.Interface) *SweepExpiredSessionsJob {
	return &SweepExpiredSessionsJob{
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (j *SweepExpiredSessionsJob) Execute(ctx context.Context) (int64, error) {
	count, err := j.sessionRepo.SweepExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sweep expired sessions: %w", err)
	}
	if count > 0 {
		j.logger.Infow("expired sessions deactivated", "count", count)
	}
	return count, nil
}

// PurgeInactiveSessionsJob hard-deletes inactive records older than the
// retention window, bounding the audit trail's size.
type PurgeInactiveSessionsJob struct {
	sessionRepo   user.SessionRepository
	retentionDays int
	logger        logger.Interface
}

func NewPurgeInactiveSessionsJob(sessionRepo user.SessionRepository, retentionDays int, logger logger.Interface) *PurgeInactiveSessionsJob {
	return &PurgeInactiveSessionsJob{
		sessionRepo:   sessionRepo,
		retentionDays: retentionDays,
		logger:        logger,
	}
}

func (j *PurgeInactiveSessionsJob) Execute(ctx context.Context) (int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -j.retentionDays)
	count, err := j.sessionRepo.PurgeInactiveBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to purge inactive sessions: %w", err)
	}
	if count > 0 {
		j.logger.Infow("inactive sessions purged", "count", count, "cutoff", cutoff)
	}
	return count, nil
}
