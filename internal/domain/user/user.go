// Package user defines the user identity aggregate and the session ledger
// entity, together with their repository contracts.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Gender is a declared profile attribute, not validated beyond the enum.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// User is the identity record owned by the credential store. The ID is
// immutable once created; profile fields are mutable; the password hash is
// only ever replaced, never exposed.
type User struct {
	ID           uint
	FirstName    string
	LastName     string
	Username     string
	Email        string
	PasswordHash string
	Gender       Gender
	DateOfBirth  time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser validates and assembles a user pending persistence. Email is
// case-folded so uniqueness checks are case-insensitive.
func NewUser(firstName, lastName, username, email, passwordHash string, gender Gender, dateOfBirth time.Time) (*User, error) {
	if firstName == "" {
		return nil, fmt.Errorf("first name is required")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if email == "" {
		return nil, fmt.Errorf("email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}

	now := time.Now().UTC()
	return &User{
		FirstName:    firstName,
		LastName:     lastName,
		Username:     username,
		Email:        NormalizeEmail(email),
		PasswordHash: passwordHash,
		Gender:       gender,
		DateOfBirth:  dateOfBirth,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// FullName joins the profile name fields.
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// NormalizeEmail lower-cases an email address for storage and lookups.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ListFilter narrows and orders user listings.
type ListFilter struct {
	// Search matches case-insensitively against first name, last name,
	// username and email.
	Search    string
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

// Repository is the credential store persistence contract.
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	// GetByIdentifier resolves a user by email or username. The email
	// comparison is case-insensitive; the username comparison preserves the
	// case the user registered with. Returns (nil, nil) when absent so
	// callers can produce a deliberately generic credential error.
	GetByIdentifier(ctx context.Context, identifier string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)
	List(ctx context.Context, filter ListFilter) ([]*User, int64, error)
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id uint) error
}
