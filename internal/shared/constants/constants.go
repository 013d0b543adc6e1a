// Package constants holds application-wide constants.
package constants

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Context keys set by the auth middleware.
const (
	ContextKeyUserID      = "user_id"
	ContextKeySessionID   = "session_id"
	ContextKeyCurrentUser = "current_user"
)
