package usecases

import (
	"context"
	"fmt"
	"time"

	"adminkit/internal/domain/user"
	"adminkit/internal/shared/errors"
	"adminkit/internal/shared/logger"
)

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type CreateUserCommand struct {
	FirstName   string
	LastName    string
	Username    string
	Email       string
	Password    string
	Gender      string
	DateOfBirth time.Time
}

type CreateUserUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewCreateUserUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*user.User, error) {
	email := user.NormalizeEmail(cmd.Email)

	exists, err := uc.userRepo.ExistsByEmailOrUsername(ctx, email, cmd.Username)
	if err != nil {
		uc.logger.Errorw("failed to check user existence", "error", err)
		return nil, fmt.Errorf("failed to check existence: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("User with this email or username already exists")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := user.NewUser(cmd.FirstName, cmd.LastName, cmd.Username, email, hash, user.Gender(cmd.Gender), cmd.DateOfBirth)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsConflictError(err) {
			return nil, errors.NewConflictError("User with this email or username already exists")
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	uc.logger.Infow("user created", "user_id", newUser.ID)
	return newUser, nil
}
