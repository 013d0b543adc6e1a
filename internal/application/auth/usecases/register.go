package usecases

import (
	"context"
	"fmt"
	"time"

	"adminkit/internal/domain/user"
	"adminkit/internal/shared/errors"
	"adminkit/internal/shared/logger"
)

type RegisterCommand struct {
	FirstName   string
	LastName    string
	Username    string
	Email       string
	Password    string
	Gender      string
	DateOfBirth time.Time
}

type RegisterResult struct {
	User         *user.User
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type RegisterUseCase struct {
	userRepo   user.Repository
	hasher     PasswordHasher
	jwtService JWTService
	logger     logger.Interface
}

func NewRegisterUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *RegisterUseCase {
	return &RegisterUseCase{
		userRepo:   userRepo,
		hasher:     hasher,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (uc *RegisterUseCase) Execute(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
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
		// The unique indexes back up the existence check under concurrency.
		if errors.IsConflictError(err) {
			return nil, errors.NewConflictError("User with this email or username already exists")
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	// Registration issues a token pair without opening a ledger entry; the
	// first login creates the session record.
	tokens, err := uc.jwtService.Generate(newUser.ID, "")
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err)
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	uc.logger.Infow("user registered successfully", "user_id", newUser.ID, "email", newUser.Email)

	return &RegisterResult{
		User:         newUser,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
