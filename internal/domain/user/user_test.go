package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/authorization"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("  alice ", "$2a$10$hash", authorization.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, "alice", u.Username())
	assert.True(t, u.Role().IsAdmin())

	_, err = NewUser("", "hash", authorization.RoleUser)
	assert.EqualError(t, err, "username is required")

	_, err = NewUser("bob", "", authorization.RoleUser)
	assert.Error(t, err)

	_, err = NewUser("bob", "hash", authorization.UserRole("owner"))
	assert.Error(t, err)
}

func TestSetID(t *testing.T) {
	u, err := NewUser("alice", "hash", authorization.RoleUser)
	require.NoError(t, err)

	require.NoError(t, u.SetID(3))
	assert.Equal(t, uint(3), u.ID())
	assert.Error(t, u.SetID(4))

	_, err = ReconstructUser(0, "alice", "hash", authorization.RoleUser, time.Now())
	assert.Error(t, err)
}
