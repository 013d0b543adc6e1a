package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"adminkit/internal/domain/user"
	"adminkit/internal/infrastructure/persistence/mappers"
	"adminkit/internal/infrastructure/persistence/models"
	"adminkit/internal/shared/errors"
)

// SessionRepository persists session records through GORM. The state
// transitions (Touch, Close, CloseAllForUser, SweepExpired) each run as one
// predicate-filtered UPDATE so concurrent writers cannot interleave a
// read-modify-write.
type SessionRepository struct {
	db     *gorm.DB
	mapper mappers.SessionMapper
}

func NewSessionRepository(db *gorm.DB) user.SessionRepository {
	return &SessionRepository{
		db:     db,
		mapper: mappers.NewSessionMapper(),
	}
}

func (r *SessionRepository) Create(ctx context.Context, session *user.Session) error {
	model := r.mapper.ToModel(session)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create session: %w", err)
	}
	return nil
}

func (r *SessionRepository) GetByID(ctx context.Context, sessionID string) (*user.Session, error) {
	var model models.SessionModel
	err := r.db.WithContext(ctx).Where("id = ?", sessionID).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Session not found")
		}
		return nil, fmt.Errorf("failed to get session by ID: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *SessionRepository) GetLive(ctx context.Context, sessionID string) (*user.Session, error) {
	var model models.SessionModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND is_active = ? AND expires_at > ?", sessionID, true, time.Now().UTC()).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("Session not found")
		}
		return nil, fmt.Errorf("failed to get live session: %w", err)
	}
	return r.mapper.ToDomain(&model), nil
}

func (r *SessionRepository) ListByUser(ctx context.Context, userID uint, filter user.SessionFilter) ([]*user.Session, int64, error) {
	var sessionModels []models.SessionModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.SessionModel{}).Where("user_id = ?", userID)
	if filter.ActiveOnly {
		query = query.Where("is_active = ? AND expires_at > ?", true, time.Now().UTC())
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count sessions: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	err := query.Order("login_time DESC").
		Offset(offset).Limit(filter.Limit).
		Find(&sessionModels).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sessions: %w", err)
	}

	sessions := make([]*user.Session, len(sessionModels))
	for i := range sessionModels {
		sessions[i] = r.mapper.ToDomain(&sessionModels[i])
	}
	return sessions, total, nil
}

func (r *SessionRepository) ListActive(ctx context.Context, userID uint) ([]*user.Session, error) {
	var sessionModels []models.SessionModel
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ? AND expires_at > ?", userID, true, time.Now().UTC()).
		Order("last_activity DESC").
		Find(&sessionModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list active sessions: %w", err)
	}

	sessions := make([]*user.Session, len(sessionModels))
	for i := range sessionModels {
		sessions[i] = r.mapper.ToDomain(&sessionModels[i])
	}
	return sessions, nil
}

// Touch refreshes last_activity only while the record is still live.
// Zero rows affected means the session is gone or closed; not an error.
func (r *SessionRepository) Touch(ctx context.Context, sessionID string) error {
	now := time.Now().UTC()
	err := r.db.WithContext(ctx).Model(&models.SessionModel{}).
		Where("id = ? AND is_active = ? AND expires_at > ?", sessionID, true, now).
		Updates(map[string]interface{}{
			"last_activity": now,
			"updated_at":    now,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to touch session: %w", err)
	}
	return nil
}

// Close deactivates the session and stamps logout_time. The is_active
// predicate makes repeated calls no-ops, preserving the first logout time.
func (r *SessionRepository) Close(ctx context.Context, sessionID string) error {
	now := time.Now().UTC()
	err := r.db.WithContext(ctx).Model(&models.SessionModel{}).
		Where("id = ? AND is_active = ?", sessionID, true).
		Updates(map[string]interface{}{
			"is_active":   false,
			"logout_time": now,
			"updated_at":  now,
		}).Error
	if err != nil {
		return fmt.Errorf("failed to close session: %w", err)
	}
	return nil
}

func (r *SessionRepository) CloseAllForUser(ctx context.Context, userID uint) (int64, error) {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).Model(&models.SessionModel{}).
		Where("user_id = ? AND is_active = ?", userID, true).
		Updates(map[string]interface{}{
			"is_active":   false,
			"logout_time": now,
			"updated_at":  now,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to close sessions for user: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *SessionRepository) SweepExpired(ctx context.Context) (int64, error) {
	now := time.Now().UTC()
	result := r.db.WithContext(ctx).Model(&models.SessionModel{}).
		Where("is_active = ? AND expires_at <= ?", true, now).
		Updates(map[string]interface{}{
			"is_active":   false,
			"logout_time": now,
			"updated_at":  now,
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to sweep expired sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *SessionRepository) PurgeInactiveBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Where("is_active = ? AND logout_time IS NOT NULL AND logout_time < ?", false, cutoff).
		Delete(&models.SessionModel{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to purge inactive sessions: %w", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *SessionRepository) Stats(ctx context.Context, userID uint) (*user.SessionStats, error) {
	now := time.Now().UTC()
	stats := &user.SessionStats{}

	err := r.db.WithContext(ctx).Model(&models.SessionModel{}).
		Where("user_id = ?", userID).
		Count(&stats.TotalSessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count sessions: %w", err)
	}

	err = r.db.WithContext(ctx).Model(&models.SessionModel{}).
		Where("user_id = ? AND is_active = ? AND expires_at > ?", userID, true, now).
		Count(&stats.ActiveSessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count active sessions: %w", err)
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	err = r.db.WithContext(ctx).Model(&models.SessionModel{}).
		Where("user_id = ? AND login_time >= ?", userID, startOfDay).
		Count(&stats.TodaySessions).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count today sessions: %w", err)
	}

	var breakdown []user.DeviceCount
	err = r.db.WithContext(ctx).Model(&models.SessionModel{}).
		Select("device_type, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("device_type").
		Scan(&breakdown).Error
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate device breakdown: %w", err)
	}
	stats.DeviceBreakdown = breakdown

	return stats, nil
}
