package permission

import (
	"fmt"
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/authorization"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
)

// Resources and actions named in the policy.
const (
	ResourceUser         = "user"
	ResourceCompany      = "company"
	ResourceAsset        = "asset"
	ResourceTicket       = "ticket"
	ResourceTicketUpdate = "ticket_update"

	ActionRead   = "read"
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = r.sub == p.sub && (p.obj == "*" || r.obj == p.obj) && (p.act == "*" || r.act == p.act)
`

// defaultPolicies grants admins everything. Regular users may read and
// create the shared records and reply to tickets; every update or delete
// of a record is admin-only.
var defaultPolicies = [][]string{
	{authorization.RoleAdmin.String(), "*", "*"},

	{authorization.RoleUser.String(), ResourceCompany, ActionRead},
	{authorization.RoleUser.String(), ResourceCompany, ActionCreate},
	{authorization.RoleUser.String(), ResourceAsset, ActionRead},
	{authorization.RoleUser.String(), ResourceAsset, ActionCreate},
	{authorization.RoleUser.String(), ResourceTicket, ActionRead},
	{authorization.RoleUser.String(), ResourceTicket, ActionCreate},
	{authorization.RoleUser.String(), ResourceTicketUpdate, ActionCreate},
}

// Enforcer answers role/resource/action questions from an in-memory casbin
// policy.
type Enforcer struct {
	enforcer *casbin.Enforcer
	mu       sync.RWMutex
	logger   logger.Interface
}

func NewEnforcer(log logger.Interface) (*Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse casbin model: %w", err)
	}

	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("failed to create casbin enforcer: %w", err)
	}

	if _, err := enforcer.AddPolicies(defaultPolicies); err != nil {
		return nil, fmt.Errorf("failed to load default policies: %w", err)
	}

	return &Enforcer{
		enforcer: enforcer,
		logger:   log.Named("permission"),
	}, nil
}

func (e *Enforcer) Enforce(role authorization.UserRole, resource, action string) (bool, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	allowed, err := e.enforcer.Enforce(role.String(), resource, action)
	if err != nil {
		e.logger.Errorw("permission check failed", "error", err, "role", role, "resource", resource, "action", action)
		return false, fmt.Errorf("permission check failed: %w", err)
	}

	return allowed, nil
}

// PermissionsForRole lists the policy rows granted to role.
func (e *Enforcer) PermissionsForRole(role authorization.UserRole) ([][]string, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	rows, err := e.enforcer.GetFilteredPolicy(0, role.String())
	if err != nil {
		return nil, fmt.Errorf("failed to get permissions for role: %w", err)
	}
	return rows, nil
}
