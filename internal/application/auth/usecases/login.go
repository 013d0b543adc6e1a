package usecases

import (
	"context"
	"fmt"
	"time"

	"adminkit/internal/domain/user"
	"adminkit/internal/shared/errors"
	"adminkit/internal/shared/logger"
	"adminkit/internal/shared/utils"
)

// TokenPair carries a freshly issued access/refresh pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenClaims is the subset of verified token claims the use cases need.
type TokenClaims struct {
	UserID    uint
	SessionID string
}

// JWTService issues and verifies token pairs.
type JWTService interface {
	Generate(userID uint, sessionID string) (*TokenPair, error)
	VerifyRefresh(token string) (*TokenClaims, error)
	RefreshExpiry(issuedAt time.Time) time.Time
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type LoginCommand struct {
	Identifier string
	Password   string
	IPAddress  string
	UserAgent  string
}

type LoginResult struct {
	User         *user.User
	SessionID    string
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type LoginUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	hasher      PasswordHasher
	jwtService  JWTService
	logger      logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher PasswordHasher,
	jwtService JWTService,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		jwtService:  jwtService,
		logger:      logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	existingUser, err := uc.userRepo.GetByIdentifier(ctx, cmd.Identifier)
	if err != nil {
		uc.logger.Errorw("failed to get user by identifier", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	// Unknown identifier and wrong password produce the same message so the
	// response never reveals which accounts exist.
	if existingUser == nil {
		return nil, errors.NewUnauthorizedError("Invalid email/username or password")
	}

	if err := uc.hasher.Verify(cmd.Password, existingUser.PasswordHash); err != nil {
		return nil, errors.NewUnauthorizedError("Invalid email/username or password")
	}

	device := utils.ParseUserAgent(cmd.UserAgent)
	now := time.Now().UTC()

	// The ledger entry expires with the refresh token it was issued alongside.
	session, err := user.NewSession(existingUser.ID, user.DeviceInfo{
		IPAddress:  cmd.IPAddress,
		UserAgent:  cmd.UserAgent,
		DeviceType: device.DeviceType,
		Browser:    device.Browser,
		OS:         device.OS,
	}, uc.jwtService.RefreshExpiry(now))
	if err != nil {
		uc.logger.Errorw("failed to build session", "error", err)
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		uc.logger.Errorw("failed to persist session", "error", err)
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	tokens, err := uc.jwtService.Generate(existingUser.ID, session.ID)
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "error", err)
		return nil, fmt.Errorf("failed to generate tokens: %w", err)
	}

	uc.logger.Infow("user logged in successfully",
		"user_id", existingUser.ID,
		"session_id", session.ID,
		"device_type", device.DeviceType,
	)

	return &LoginResult{
		User:         existingUser,
		SessionID:    session.ID,
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		ExpiresIn:    tokens.ExpiresIn,
	}, nil
}
