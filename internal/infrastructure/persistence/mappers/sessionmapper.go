package mappers

import (
	"adminkit/internal/domain/user"
	"adminkit/internal/infrastructure/persistence/models"
)

// SessionMapper handles the conversion between Session domain entities and persistence models.
type SessionMapper interface {
	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *user.Session) *models.SessionModel

	// ToDomain converts a persistence model to a domain entity.
	ToDomain(model *models.SessionModel) *user.Session
}

// SessionMapperImpl is the concrete implementation of SessionMapper.
type SessionMapperImpl struct{}

// NewSessionMapper creates a new SessionMapper.
func NewSessionMapper() SessionMapper {
	return &SessionMapperImpl{}
}

// ToModel converts a domain entity to a persistence model.
func (m *SessionMapperImpl) ToModel(entity *user.Session) *models.SessionModel {
	if entity == nil {
		return nil
	}
	return &models.SessionModel{
		ID:           entity.ID,
		UserID:       entity.UserID,
		LoginTime:    entity.LoginTime,
		LogoutTime:   entity.LogoutTime,
		IPAddress:    entity.IPAddress,
		UserAgent:    entity.UserAgent,
		DeviceType:   entity.DeviceType,
		Browser:      entity.Browser,
		OS:           entity.OS,
		IsActive:     entity.IsActive,
		LastActivity: entity.LastActivity,
		ExpiresAt:    entity.ExpiresAt,
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
}

// ToDomain converts a persistence model to a domain entity.
func (m *SessionMapperImpl) ToDomain(model *models.SessionModel) *user.Session {
	if model == nil {
		return nil
	}
	return &user.Session{
		ID:           model.ID,
		UserID:       model.UserID,
		LoginTime:    model.LoginTime,
		LogoutTime:   model.LogoutTime,
		IPAddress:    model.IPAddress,
		UserAgent:    model.UserAgent,
		DeviceType:   model.DeviceType,
		Browser:      model.Browser,
		OS:           model.OS,
		IsActive:     model.IsActive,
		LastActivity: model.LastActivity,
		ExpiresAt:    model.ExpiresAt,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}
