package usecases

import (
	"context"
	"fmt"
	"time"

	"adminkit/internal/domain/user"
	"adminkit/internal/shared/errors"
	"adminkit/internal/shared/logger"
)

// UpdateUserCommand carries profile updates. Nil pointers leave the field
// untouched. Email and username changes are checked for uniqueness.
type UpdateUserCommand struct {
	UserID      uint
	FirstName   *string
	LastName    *string
	Username    *string
	Email       *string
	Gender      *string
	DateOfBirth *time.Time
}

type UpdateUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewUpdateUserUseCase(userRepo user.Repository, logger logger.Interface) *UpdateUserUseCase {
	return &UpdateUserUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (*user.User, error) {
	existing, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, err
	}

	if cmd.FirstName != nil {
		if *cmd.FirstName == "" {
			return nil, errors.NewValidationError("first name cannot be empty")
		}
		existing.FirstName = *cmd.FirstName
	}
	if cmd.LastName != nil {
		existing.LastName = *cmd.LastName
	}
	if cmd.Username != nil && *cmd.Username != existing.Username {
		if *cmd.Username == "" {
			return nil, errors.NewValidationError("username cannot be empty")
		}
		existing.Username = *cmd.Username
	}
	if cmd.Email != nil {
		email := user.NormalizeEmail(*cmd.Email)
		if email == "" {
			return nil, errors.NewValidationError("email cannot be empty")
		}
		existing.Email = email
	}
	if cmd.Gender != nil {
		existing.Gender = user.Gender(*cmd.Gender)
	}
	if cmd.DateOfBirth != nil {
		existing.DateOfBirth = *cmd.DateOfBirth
	}

	existing.UpdatedAt = time.Now().UTC()

	if err := uc.userRepo.Update(ctx, existing); err != nil {
		if errors.IsConflictError(err) {
			return nil, errors.NewConflictError("User with this email or username already exists")
		}
		uc.logger.Errorw("failed to update user", "user_id", cmd.UserID, "error", err)
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	uc.logger.Infow("user updated", "user_id", cmd.UserID)
	return existing, nil
}
