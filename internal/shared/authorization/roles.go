package authorization

import (
	"strings"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
)

type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleUser
}

// ParseUserRole accepts only the known roles. Unknown values are rejected
// rather than silently downgraded.
func ParseUserRole(s string) (UserRole, error) {
	role := UserRole(strings.ToLower(strings.TrimSpace(s)))
	if !role.IsValid() {
		return "", errors.NewValidationError("Invalid role. Must be 'admin' or 'user'.")
	}
	return role, nil
}
