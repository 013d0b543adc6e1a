package user

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"
)

// Session is one entry in the session ledger: an audit record of a single
// authenticated login. It is correlated to a user and, loosely, to the
// refresh token issued alongside it; token validity never depends on it.
//
// A session is live iff IsActive && ExpiresAt > now. Deactivation (explicit
// logout or expiry sweep) is terminal: a closed session is never reopened.
type Session struct {
	ID           string
	UserID       uint
	LoginTime    time.Time
	LogoutTime   *time.Time
	IPAddress    string
	UserAgent    string
	DeviceType   string
	Browser      string
	OS           string
	IsActive     bool
	LastActivity time.Time
	ExpiresAt    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DeviceInfo carries the request metadata captured at login.
type DeviceInfo struct {
	IPAddress  string
	UserAgent  string
	DeviceType string
	Browser    string
	OS         string
}

// NewSession opens a ledger entry for a fresh login. The ledger expiry is
// handed in by the caller so it stays in lockstep with the refresh token
// lifetime.
func NewSession(userID uint, device DeviceInfo, expiresAt time.Time) (*Session, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	id, err := generateSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session ID: %w", err)
	}

	now := time.Now().UTC()
	return &Session{
		ID:           id,
		UserID:       userID,
		LoginTime:    now,
		IPAddress:    device.IPAddress,
		UserAgent:    device.UserAgent,
		DeviceType:   device.DeviceType,
		Browser:      device.Browser,
		OS:           device.OS,
		IsActive:     true,
		LastActivity: now,
		ExpiresAt:    expiresAt,
		CreatedAt:    now,
	}, nil
}

// IsLive reports whether the session counts as live right now. Expiry is
// enforced at read time; the stored IsActive flag alone is not sufficient.
func (s *Session) IsLive() bool {
	return s.IsActive && s.ExpiresAt.After(time.Now().UTC())
}

// IsExpired reports whether the expiry timestamp has elapsed.
func (s *Session) IsExpired() bool {
	return !s.ExpiresAt.After(time.Now().UTC())
}

func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// SessionFilter narrows session history listings.
type SessionFilter struct {
	ActiveOnly bool
	Page       int
	Limit      int
}

// DeviceCount is one bucket of the per-device-type breakdown.
type DeviceCount struct {
	DeviceType string
	Count      int64
}

// SessionStats summarizes a user's ledger.
type SessionStats struct {
	TotalSessions   int64
	ActiveSessions  int64
	TodaySessions   int64
	DeviceBreakdown []DeviceCount
}

// SessionRepository is the session ledger persistence contract. Touch,
// Close, CloseAllForUser and SweepExpired must each execute as a single
// predicate-filtered statement so concurrent calls cannot produce lost
// updates; affecting zero rows is success, not an error.
type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	// GetByID returns the record in any state.
	GetByID(ctx context.Context, sessionID string) (*Session, error)
	// GetLive returns the record only when IsActive && ExpiresAt > now.
	GetLive(ctx context.Context, sessionID string) (*Session, error)
	ListByUser(ctx context.Context, userID uint, filter SessionFilter) ([]*Session, int64, error)
	ListActive(ctx context.Context, userID uint) ([]*Session, error)
	// Touch refreshes LastActivity on a live record; silently does nothing
	// when the record is missing or no longer live.
	Touch(ctx context.Context, sessionID string) error
	// Close deactivates a session, stamping LogoutTime. Idempotent.
	Close(ctx context.Context, sessionID string) error
	CloseAllForUser(ctx context.Context, userID uint) (int64, error)
	// SweepExpired deactivates every record whose expiry has elapsed while
	// still flagged active, returning the number of records transitioned.
	SweepExpired(ctx context.Context) (int64, error)
	// PurgeInactiveBefore hard-deletes inactive records whose logout time
	// is older than cutoff. This is deliberate, bounded audit retention.
	PurgeInactiveBefore(ctx context.Context, cutoff time.Time) (int64, error)
	Stats(ctx context.Context, userID uint) (*SessionStats, error)
}
