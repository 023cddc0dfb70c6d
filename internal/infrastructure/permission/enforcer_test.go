package permission

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/authorization"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
)

func TestEnforcer(t *testing.T) {
	e, err := NewEnforcer(logger.NewNop())
	require.NoError(t, err)

	tests := []struct {
		role     authorization.UserRole
		resource string
		action   string
		want     bool
	}{
		{authorization.RoleAdmin, ResourceUser, ActionCreate, true},
		{authorization.RoleAdmin, ResourceTicket, ActionDelete, true},
		{authorization.RoleAdmin, ResourceAsset, ActionUpdate, true},

		{authorization.RoleUser, ResourceCompany, ActionRead, true},
		{authorization.RoleUser, ResourceCompany, ActionCreate, true},
		{authorization.RoleUser, ResourceAsset, ActionCreate, true},
		{authorization.RoleUser, ResourceTicket, ActionCreate, true},
		{authorization.RoleUser, ResourceTicketUpdate, ActionCreate, true},

		{authorization.RoleUser, ResourceUser, ActionRead, false},
		{authorization.RoleUser, ResourceUser, ActionCreate, false},
		{authorization.RoleUser, ResourceCompany, ActionUpdate, false},
		{authorization.RoleUser, ResourceCompany, ActionDelete, false},
		{authorization.RoleUser, ResourceAsset, ActionUpdate, false},
		{authorization.RoleUser, ResourceTicket, ActionUpdate, false},
		{authorization.RoleUser, ResourceTicket, ActionDelete, false},

		{authorization.UserRole("guest"), ResourceTicket, ActionRead, false},
	}

	for _, tt := range tests {
		t.Run(tt.role.String()+"/"+tt.resource+"/"+tt.action, func(t *testing.T) {
			allowed, err := e.Enforce(tt.role, tt.resource, tt.action)
			require.NoError(t, err)
			assert.Equal(t, tt.want, allowed)
		})
	}
}

func TestEnforcer_PermissionsForRole(t *testing.T) {
	e, err := NewEnforcer(logger.NewNop())
	require.NoError(t, err)

	rows, err := e.PermissionsForRole(authorization.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"admin", "*", "*"}}, rows)

	rows, err = e.PermissionsForRole(authorization.RoleUser)
	require.NoError(t, err)
	assert.Len(t, rows, 7)
}
