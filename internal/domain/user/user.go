package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/authorization"
)

// User is a staff account. Customers never log in; they only appear as
// ticket customer_email addresses.
type User struct {
	id           uint
	username     string
	passwordHash string
	role         authorization.UserRole
	createdAt    time.Time
}

func NewUser(username, passwordHash string, role authorization.UserRole) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	return &User{
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    time.Now(),
	}, nil
}

func ReconstructUser(id uint, username, passwordHash string, role authorization.UserRole, createdAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    createdAt,
	}, nil
}

func (u *User) ID() uint                     { return u.id }
func (u *User) Username() string             { return u.username }
func (u *User) PasswordHash() string         { return u.passwordHash }
func (u *User) Role() authorization.UserRole { return u.role }
func (u *User) CreatedAt() time.Time         { return u.createdAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}
