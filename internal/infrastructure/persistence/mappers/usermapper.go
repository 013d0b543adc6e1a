package mappers

import (
	"time"

	"gorm.io/datatypes"

	"adminkit/internal/domain/user"
	"adminkit/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between User domain entities and persistence models.
type UserMapper interface {
	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *user.User) *models.UserModel

	// ToDomain converts a persistence model to a domain entity.
	ToDomain(model *models.UserModel) *user.User
}

// UserMapperImpl is the concrete implementation of UserMapper.
type UserMapperImpl struct{}

// NewUserMapper creates a new UserMapper.
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

// ToModel converts a domain entity to a persistence model.
func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}

	var dob *datatypes.Date
	if !entity.DateOfBirth.IsZero() {
		d := datatypes.Date(entity.DateOfBirth)
		dob = &d
	}

	return &models.UserModel{
		ID:           entity.ID,
		FirstName:    entity.FirstName,
		LastName:     entity.LastName,
		Username:     entity.Username,
		Email:        entity.Email,
		PasswordHash: entity.PasswordHash,
		Gender:       string(entity.Gender),
		DateOfBirth:  dob,
		CreatedAt:    entity.CreatedAt,
		UpdatedAt:    entity.UpdatedAt,
	}
}

// ToDomain converts a persistence model to a domain entity.
func (m *UserMapperImpl) ToDomain(model *models.UserModel) *user.User {
	if model == nil {
		return nil
	}

	var dob time.Time
	if model.DateOfBirth != nil {
		dob = time.Time(*model.DateOfBirth)
	}

	return &user.User{
		ID:           model.ID,
		FirstName:    model.FirstName,
		LastName:     model.LastName,
		Username:     model.Username,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Gender:       user.Gender(model.Gender),
		DateOfBirth:  dob,
		CreatedAt:    model.CreatedAt,
		UpdatedAt:    model.UpdatedAt,
	}
}
