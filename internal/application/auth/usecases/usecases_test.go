package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"adminkit/internal/domain/user"
	"adminkit/internal/shared/errors"
	"adminkit/internal/shared/logger"
)

type fakeUserRepo struct {
	users  map[uint]*user.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[uint]*user.User{}, nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email || existing.Username == u.Username {
			return errors.NewConflictError("duplicate")
		}
	}
	u.ID = r.nextID
	r.nextID++
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, errors.NewNotFoundError("User not found")
	}
	return u, nil
}

func (r *fakeUserRepo) GetByIdentifier(_ context.Context, identifier string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == user.NormalizeEmail(identifier) || u.Username == identifier {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) ExistsByEmailOrUsername(_ context.Context, email, username string) (bool, error) {
	for _, u := range r.users {
		if u.Email == email || u.Username == username {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeUserRepo) List(_ context.Context, _ user.ListFilter) ([]*user.User, int64, error) {
	out := make([]*user.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, int64(len(out)), nil
}

func (r *fakeUserRepo) Update(_ context.Context, u *user.User) error {
	if _, ok := r.users[u.ID]; !ok {
		return errors.NewNotFoundError("User not found")
	}
	r.users[u.ID] = u
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id uint) error {
	if _, ok := r.users[id]; !ok {
		return errors.NewNotFoundError("User not found")
	}
	delete(r.users, id)
	return nil
}

type fakeSessionRepo struct {
	sessions map[string]*user.Session
	touched  []string
	touchErr error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: map[string]*user.Session{}}
}

func (r *fakeSessionRepo) Create(_ context.Context, s *user.Session) error {
	r.sessions[s.ID] = s
	return nil
}

func (r *fakeSessionRepo) GetByID(_ context.Context, id string) (*user.Session, error) {
	s, ok := r.sessions[id]
	if !ok {
		return nil, errors.NewNotFoundError("Session not found")
	}
	return s, nil
}

func (r *fakeSessionRepo) GetLive(_ context.Context, id string) (*user.Session, error) {
	s, ok := r.sessions[id]
	if !ok || !s.IsLive() {
		return nil, errors.NewNotFoundError("Session not found")
	}
	return s, nil
}

func (r *fakeSessionRepo) ListByUser(_ context.Context, userID uint, _ user.SessionFilter) ([]*user.Session, int64, error) {
	var out []*user.Session
	for _, s := range r.sessions {
		if s.UserID == userID {
			out = append(out, s)
		}
	}
	return out, int64(len(out)), nil
}

func (r *fakeSessionRepo) ListActive(_ context.Context, userID uint) ([]*user.Session, error) {
	var out []*user.Session
	for _, s := range r.sessions {
		if s.UserID == userID && s.IsLive() {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *fakeSessionRepo) Touch(_ context.Context, id string) error {
	if r.touchErr != nil {
		return r.touchErr
	}
	r.touched = append(r.touched, id)
	if s, ok := r.sessions[id]; ok && s.IsLive() {
		s.LastActivity = time.Now().UTC()
	}
	return nil
}

func (r *fakeSessionRepo) Close(_ context.Context, id string) error {
	if s, ok := r.sessions[id]; ok && s.IsActive {
		now := time.Now().UTC()
		s.IsActive = false
		s.LogoutTime = &now
	}
	return nil
}

func (r *fakeSessionRepo) CloseAllForUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	for _, s := range r.sessions {
		if s.UserID == userID && s.IsActive {
			_ = r.Close(ctx, s.ID)
			count++
		}
	}
	return count, nil
}

func (r *fakeSessionRepo) SweepExpired(ctx context.Context) (int64, error) {
	var count int64
	for _, s := range r.sessions {
		if s.IsActive && s.IsExpired() {
			_ = r.Close(ctx, s.ID)
			count++
		}
	}
	return count, nil
}

func (r *fakeSessionRepo) PurgeInactiveBefore(_ context.Context, cutoff time.Time) (int64, error) {
	var count int64
	for id, s := range r.sessions {
		if !s.IsActive && s.LogoutTime != nil && s.LogoutTime.Before(cutoff) {
			delete(r.sessions, id)
			count++
		}
	}
	return count, nil
}

func (r *fakeSessionRepo) Stats(_ context.Context, userID uint) (*user.SessionStats, error) {
	stats := &user.SessionStats{}
	for _, s := range r.sessions {
		if s.UserID != userID {
			continue
		}
		stats.TotalSessions++
		if s.IsLive() {
			stats.ActiveSessions++
		}
	}
	return stats, nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

func (fakeHasher) Verify(password, hash string) error {
	if hash != "hashed:"+password {
		return fmt.Errorf("password verification failed")
	}
	return nil
}

type fakeJWTService struct {
	refreshClaims *TokenClaims
	refreshErr    error
}

func (f *fakeJWTService) Generate(userID uint, sessionID string) (*TokenPair, error) {
	return &TokenPair{
		AccessToken:  fmt.Sprintf("access-%d-%s", userID, sessionID),
		RefreshToken: fmt.Sprintf("refresh-%d-%s", userID, sessionID),
		ExpiresIn:    3600,
	}, nil
}

func (f *fakeJWTService) VerifyRefresh(string) (*TokenClaims, error) {
	if f.refreshErr != nil {
		return nil, f.refreshErr
	}
	return f.refreshClaims, nil
}

func (f *fakeJWTService) RefreshExpiry(issuedAt time.Time) time.Time {
	return issuedAt.Add(30 * 24 * time.Hour)
}

func seedUser(t *testing.T, repo *fakeUserRepo) *user.User {
	t.Helper()
	hash, _ := fakeHasher{}.Hash("correct-horse")
	u, err := user.NewUser("Jane", "Doe", "janedoe", "jane@example.com", hash, user.GenderFemale, time.Time{})
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestLoginUseCase_Success(t *testing.T) {
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()
	seeded := seedUser(t, userRepo)

	uc := NewLoginUseCase(userRepo, sessionRepo, fakeHasher{}, &fakeJWTService{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), LoginCommand{
		Identifier: "jane@example.com",
		Password:   "correct-horse",
		IPAddress:  "203.0.113.1",
		UserAgent:  "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0",
	})
	require.NoError(t, err)

	assert.Equal(t, seeded.ID, result.User.ID)
	assert.NotEmpty(t, result.SessionID)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)

	session, err := sessionRepo.GetByID(context.Background(), result.SessionID)
	require.NoError(t, err)
	assert.True(t, session.IsLive())
	assert.Equal(t, "desktop", session.DeviceType)
	assert.Equal(t, "Chrome", session.Browser)
}

func TestLoginUseCase_ByUsername(t *testing.T) {
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()
	seedUser(t, userRepo)

	uc := NewLoginUseCase(userRepo, sessionRepo, fakeHasher{}, &fakeJWTService{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), LoginCommand{
		Identifier: "janedoe",
		Password:   "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, result.SessionID)
}

func TestLoginUseCase_MixedCaseIdentifiers(t *testing.T) {
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()

	hash, _ := fakeHasher{}.Hash("correct-horse")
	u, err := user.NewUser("Jane", "Doe", "JaneDoe", "jane@example.com", hash, user.GenderFemale, time.Time{})
	require.NoError(t, err)
	require.NoError(t, userRepo.Create(context.Background(), u))

	uc := NewLoginUseCase(userRepo, sessionRepo, fakeHasher{}, &fakeJWTService{}, logger.NewLogger())

	// The username passes through exactly as registered.
	result, err := uc.Execute(context.Background(), LoginCommand{
		Identifier: "JaneDoe",
		Password:   "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, u.ID, result.User.ID)

	// Emails are folded, so any casing of the address resolves.
	result, err = uc.Execute(context.Background(), LoginCommand{
		Identifier: "Jane@Example.com",
		Password:   "correct-horse",
	})
	require.NoError(t, err)
	assert.Equal(t, u.ID, result.User.ID)
}

func TestLoginUseCase_GenericFailureMessage(t *testing.T) {
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()
	seedUser(t, userRepo)

	uc := NewLoginUseCase(userRepo, sessionRepo, fakeHasher{}, &fakeJWTService{}, logger.NewLogger())

	for _, cmd := range []LoginCommand{
		{Identifier: "nobody@example.com", Password: "correct-horse"},
		{Identifier: "jane@example.com", Password: "wrong"},
	} {
		_, err := uc.Execute(context.Background(), cmd)
		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, "Invalid email/username or password", appErr.Message)
		assert.True(t, errors.IsUnauthorizedError(err))
	}

	// No session record leaks from failed attempts.
	assert.Empty(t, sessionRepo.sessions)
}

func TestRegisterUseCase_Success(t *testing.T) {
	userRepo := newFakeUserRepo()

	uc := NewRegisterUseCase(userRepo, fakeHasher{}, &fakeJWTService{}, logger.NewLogger())

	result, err := uc.Execute(context.Background(), RegisterCommand{
		FirstName: "Sam",
		LastName:  "Lee",
		Username:  "samlee",
		Email:     "Sam@Example.com",
		Password:  "secret-password",
		Gender:    "other",
	})
	require.NoError(t, err)

	assert.Equal(t, "sam@example.com", result.User.Email)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotZero(t, result.User.ID)
}

func TestRegisterUseCase_Duplicate(t *testing.T) {
	userRepo := newFakeUserRepo()
	seedUser(t, userRepo)

	uc := NewRegisterUseCase(userRepo, fakeHasher{}, &fakeJWTService{}, logger.NewLogger())

	_, err := uc.Execute(context.Background(), RegisterCommand{
		FirstName: "Jane",
		LastName:  "Doe",
		Username:  "janedoe",
		Email:     "jane@example.com",
		Password:  "whatever",
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "User with this email or username already exists", appErr.Message)
}

func TestLogoutUseCase_SingleSession(t *testing.T) {
	sessionRepo := newFakeSessionRepo()
	s, err := user.NewSession(1, user.DeviceInfo{}, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, sessionRepo.Create(context.Background(), s))

	uc := NewLogoutUseCase(sessionRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), LogoutCommand{SessionID: s.ID})
	require.NoError(t, err)
	assert.Equal(t, int64(1), result.ClosedSessions)
	assert.False(t, sessionRepo.sessions[s.ID].IsActive)

	// Unknown session is still a successful logout.
	_, err = uc.Execute(context.Background(), LogoutCommand{SessionID: "missing"})
	assert.NoError(t, err)
}

func TestLogoutUseCase_AllFor_User(t *testing.T) {
	sessionRepo := newFakeSessionRepo()
	for i := 0; i < 3; i++ {
		s, err := user.NewSession(5, user.DeviceInfo{}, time.Now().UTC().Add(time.Hour))
		require.NoError(t, err)
		require.NoError(t, sessionRepo.Create(context.Background(), s))
	}

	uc := NewLogoutUseCase(sessionRepo, logger.NewLogger())

	result, err := uc.Execute(context.Background(), LogoutCommand{UserID: 5})
	require.NoError(t, err)
	assert.Equal(t, int64(3), result.ClosedSessions)
}

func TestRefreshTokenUseCase_Success(t *testing.T) {
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()
	seeded := seedUser(t, userRepo)

	s, err := user.NewSession(seeded.ID, user.DeviceInfo{}, time.Now().UTC().Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, sessionRepo.Create(context.Background(), s))

	jwtSvc := &fakeJWTService{refreshClaims: &TokenClaims{UserID: seeded.ID, SessionID: s.ID}}
	uc := NewRefreshTokenUseCase(userRepo, sessionRepo, jwtSvc, logger.NewLogger())

	result, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "refresh-token"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.NotEmpty(t, result.RefreshToken)
	assert.Equal(t, []string{s.ID}, sessionRepo.touched)
}

func TestRefreshTokenUseCase_InvalidToken(t *testing.T) {
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()

	jwtSvc := &fakeJWTService{refreshErr: fmt.Errorf("bad signature")}
	uc := NewRefreshTokenUseCase(userRepo, sessionRepo, jwtSvc, logger.NewLogger())

	_, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "garbage"})
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, "Invalid refresh token", appErr.Message)
}

func TestRefreshTokenUseCase_VanishedUser(t *testing.T) {
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()

	jwtSvc := &fakeJWTService{refreshClaims: &TokenClaims{UserID: 42, SessionID: "s"}}
	uc := NewRefreshTokenUseCase(userRepo, sessionRepo, jwtSvc, logger.NewLogger())

	_, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "refresh-token"})
	require.Error(t, err)
	assert.True(t, errors.IsUnauthorizedError(err))
}

func TestRefreshTokenUseCase_TouchFailureDoesNotFailRefresh(t *testing.T) {
	userRepo := newFakeUserRepo()
	sessionRepo := newFakeSessionRepo()
	sessionRepo.touchErr = fmt.Errorf("ledger unavailable")
	seeded := seedUser(t, userRepo)

	jwtSvc := &fakeJWTService{refreshClaims: &TokenClaims{UserID: seeded.ID, SessionID: "gone"}}
	uc := NewRefreshTokenUseCase(userRepo, sessionRepo, jwtSvc, logger.NewLogger())

	result, err := uc.Execute(context.Background(), RefreshTokenCommand{RefreshToken: "refresh-token"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
}
