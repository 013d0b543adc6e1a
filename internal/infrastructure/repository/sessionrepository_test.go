package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"adminkit/internal/domain/user"
	"adminkit/internal/infrastructure/persistence/models"
	"adminkit/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.UserModel{}, &models.SessionModel{}, &models.ProductModel{})
	require.NoError(t, err)

	return db
}

func createTestSession(t *testing.T, userID uint, expiresAt time.Time) *user.Session {
	s, err := user.NewSession(userID, user.DeviceInfo{
		IPAddress:  "203.0.113.7",
		UserAgent:  "test-agent",
		DeviceType: "desktop",
		Browser:    "Chrome",
		OS:         "Windows 10",
	}, expiresAt)
	require.NoError(t, err)
	return s
}

func TestSessionRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	s := createTestSession(t, 1, time.Now().UTC().Add(time.Hour))
	require.NoError(t, repo.Create(ctx, s))

	found, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, s.UserID, found.UserID)
	assert.Equal(t, "desktop", found.DeviceType)
	assert.True(t, found.IsActive)

	_, err = repo.GetByID(ctx, "missing")
	assert.True(t, errors.IsNotFoundError(err))
}

func TestSessionRepository_GetLive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	live := createTestSession(t, 1, time.Now().UTC().Add(time.Hour))
	require.NoError(t, repo.Create(ctx, live))

	// Still flagged active in storage but past its expiry.
	expired := createTestSession(t, 1, time.Now().UTC().Add(-time.Minute))
	require.NoError(t, repo.Create(ctx, expired))

	found, err := repo.GetLive(ctx, live.ID)
	require.NoError(t, err)
	assert.Equal(t, live.ID, found.ID)

	_, err = repo.GetLive(ctx, expired.ID)
	assert.True(t, errors.IsNotFoundError(err))

	raw, err := repo.GetByID(ctx, expired.ID)
	require.NoError(t, err)
	assert.True(t, raw.IsActive)
}

func TestSessionRepository_CloseIsIdempotent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	s := createTestSession(t, 1, time.Now().UTC().Add(time.Hour))
	require.NoError(t, repo.Create(ctx, s))

	require.NoError(t, repo.Close(ctx, s.ID))

	first, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, first.LogoutTime)
	assert.False(t, first.IsActive)

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.Close(ctx, s.ID))

	second, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	require.NotNil(t, second.LogoutTime)
	assert.Equal(t, first.LogoutTime.Unix(), second.LogoutTime.Unix())

	// Closing an unknown session is a no-op.
	assert.NoError(t, repo.Close(ctx, "missing"))
}

func TestSessionRepository_TouchOnlyLive(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	s := createTestSession(t, 1, time.Now().UTC().Add(time.Hour))
	require.NoError(t, repo.Create(ctx, s))

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, repo.Touch(ctx, s.ID))

	touched, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.True(t, touched.LastActivity.After(s.LastActivity))

	require.NoError(t, repo.Close(ctx, s.ID))
	closed, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)

	// Touch after close must not revive activity.
	require.NoError(t, repo.Touch(ctx, s.ID))
	after, err := repo.GetByID(ctx, s.ID)
	require.NoError(t, err)
	assert.Equal(t, closed.LastActivity.UnixMilli(), after.LastActivity.UnixMilli())
}

func TestSessionRepository_CloseAllForUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Create(ctx, createTestSession(t, 7, time.Now().UTC().Add(time.Hour))))
	}
	require.NoError(t, repo.Create(ctx, createTestSession(t, 8, time.Now().UTC().Add(time.Hour))))

	count, err := repo.CloseAllForUser(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	remaining, err := repo.ListActive(ctx, 8)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)

	count, err = repo.CloseAllForUser(ctx, 7)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSessionRepository_SweepExpired(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	expired1 := createTestSession(t, 1, time.Now().UTC().Add(-time.Hour))
	expired2 := createTestSession(t, 2, time.Now().UTC().Add(-time.Minute))
	live := createTestSession(t, 1, time.Now().UTC().Add(time.Hour))
	require.NoError(t, repo.Create(ctx, expired1))
	require.NoError(t, repo.Create(ctx, expired2))
	require.NoError(t, repo.Create(ctx, live))

	count, err := repo.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	swept, err := repo.GetByID(ctx, expired1.ID)
	require.NoError(t, err)
	assert.False(t, swept.IsActive)
	assert.NotNil(t, swept.LogoutTime)

	untouched, err := repo.GetByID(ctx, live.ID)
	require.NoError(t, err)
	assert.True(t, untouched.IsActive)

	// Sweeping again finds nothing.
	count, err = repo.SweepExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestSessionRepository_PurgeInactiveBefore(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	old := createTestSession(t, 1, time.Now().UTC().Add(-time.Hour))
	require.NoError(t, repo.Create(ctx, old))
	require.NoError(t, repo.Close(ctx, old.ID))

	recent := createTestSession(t, 1, time.Now().UTC().Add(time.Hour))
	require.NoError(t, repo.Create(ctx, recent))

	// Cutoff in the future captures the closed record, never the active one.
	count, err := repo.PurgeInactiveBefore(ctx, time.Now().UTC().Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	_, err = repo.GetByID(ctx, old.ID)
	assert.True(t, errors.IsNotFoundError(err))

	_, err = repo.GetByID(ctx, recent.ID)
	assert.NoError(t, err)
}

func TestSessionRepository_ListByUserAndStats(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSessionRepository(db)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, repo.Create(ctx, createTestSession(t, 9, time.Now().UTC().Add(time.Hour))))
	}
	closedSession := createTestSession(t, 9, time.Now().UTC().Add(time.Hour))
	require.NoError(t, repo.Create(ctx, closedSession))
	require.NoError(t, repo.Close(ctx, closedSession.ID))

	all, total, err := repo.ListByUser(ctx, 9, user.SessionFilter{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(6), total)
	assert.Len(t, all, 6)

	active, total, err := repo.ListByUser(ctx, 9, user.SessionFilter{ActiveOnly: true, Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, active, 5)

	page, _, err := repo.ListByUser(ctx, 9, user.SessionFilter{Page: 2, Limit: 4})
	require.NoError(t, err)
	assert.Len(t, page, 2)

	stats, err := repo.Stats(ctx, 9)
	require.NoError(t, err)
	assert.Equal(t, int64(6), stats.TotalSessions)
	assert.Equal(t, int64(5), stats.ActiveSessions)
	assert.Equal(t, int64(6), stats.TodaySessions)
	require.Len(t, stats.DeviceBreakdown, 1)
	assert.Equal(t, "desktop", stats.DeviceBreakdown[0].DeviceType)
	assert.Equal(t, int64(6), stats.DeviceBreakdown[0].Count)
}
