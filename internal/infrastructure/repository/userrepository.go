package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"adminkit/internal/domain/user"
	"adminkit/internal/infrastructure/persistence/mappers"
	"adminkit/internal/infrastructure/persistence/models"
	"adminkit/internal/shared/errors"
	"adminkit/internal/shared/logger"
)

// allowedUserOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedUserOrderByFields = map[string]bool{
	"id":         true,
	"first_name": true,
	"last_name":  true,
	"username":   true,
	"email":      true,
	"created_at": true,
	"updated_at": true,
}

// UserRepository implements the user repository interface backed by GORM.
type UserRepository struct {
	db     *gorm.DB
	mapper mappers.UserMapper
	logger logger.Interface
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB, logger logger.Interface) user.Repository {
	return &UserRepository{
		db:     db,
		mapper: mappers.NewUserMapper(),
		logger: logger,
	}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, userEntity *user.User) error {
	model := r.mapper.ToModel(userEntity)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("email or username already in use")
		}
		r.logger.Errorw("failed to create user in database", "error", err)
		return fmt.Errorf("failed to create user: %w", err)
	}

	userEntity.ID = model.ID

	r.logger.Infow("user created successfully", "id", model.ID, "email", model.Email)
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	var model models.UserModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("User not found")
		}
		r.logger.Errorw("failed to get user by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// GetByIdentifier retrieves a user by email or username. Emails are stored
// lower-cased so the email comparison folds the identifier; usernames are
// stored verbatim and matched as given. Returns (nil, nil) when no user
// matches so callers can keep credential errors generic.
func (r *UserRepository) GetByIdentifier(ctx context.Context, identifier string) (*user.User, error) {
	var model models.UserModel

	err := r.db.WithContext(ctx).
		Where("email = ? OR username = ?", user.NormalizeEmail(identifier), identifier).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by identifier", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var model models.UserModel

	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get user by email", "email", email, "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// ExistsByEmailOrUsername checks if any user already holds the email or username.
func (r *UserRepository) ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("email = ? OR username = ?", email, username).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to check user existence", "error", err)
		return false, fmt.Errorf("failed to check existence: %w", err)
	}
	return count > 0, nil
}

// List retrieves a paginated list of users
func (r *UserRepository) List(ctx context.Context, filter user.ListFilter) ([]*user.User, int64, error) {
	var userModels []*models.UserModel
	var total int64

	query := r.db.WithContext(ctx).Model(&models.UserModel{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where(
			"first_name LIKE ? OR last_name LIKE ? OR username LIKE ? OR email LIKE ?",
			pattern, pattern, pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count users", "error", err)
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	// Apply sorting with whitelist validation to prevent SQL injection
	sortBy := filter.SortBy
	if sortBy == "" || !allowedUserOrderByFields[sortBy] {
		query = query.Order("created_at DESC")
	} else {
		order := strings.ToUpper(filter.SortOrder)
		if order != "ASC" && order != "DESC" {
			order = "DESC"
		}
		query = query.Order(fmt.Sprintf("%s %s", sortBy, order))
	}

	offset := (filter.Page - 1) * filter.Limit
	query = query.Offset(offset).Limit(filter.Limit)

	if err := query.Find(&userModels).Error; err != nil {
		r.logger.Errorw("failed to list users", "error", err)
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	entities := make([]*user.User, len(userModels))
	for i, model := range userModels {
		entities[i] = r.mapper.ToDomain(model)
	}

	return entities, total, nil
}

// Update updates an existing user
func (r *UserRepository) Update(ctx context.Context, userEntity *user.User) error {
	model := r.mapper.ToModel(userEntity)

	result := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Where("id = ?", model.ID).
		Updates(map[string]interface{}{
			"first_name":    model.FirstName,
			"last_name":     model.LastName,
			"username":      model.Username,
			"email":         model.Email,
			"password_hash": model.PasswordHash,
			"gender":        model.Gender,
			"date_of_birth": model.DateOfBirth,
			"updated_at":    model.UpdatedAt,
		})

	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return errors.NewConflictError("email or username already in use")
		}
		r.logger.Errorw("failed to update user", "id", model.ID, "error", result.Error)
		return fmt.Errorf("failed to update user: %w", result.Error)
	}

	// Note: RowsAffected may be 0 when updated values are identical to existing
	// values. This is expected MySQL behavior and should not be treated as
	// "user not found".

	r.logger.Infow("user updated successfully", "id", model.ID)
	return nil
}

// Delete removes a user by ID
func (r *UserRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.UserModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete user", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("User not found")
	}

	r.logger.Infow("user deleted successfully", "id", id)
	return nil
}
