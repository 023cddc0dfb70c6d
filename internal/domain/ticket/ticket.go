package ticket

import (
	"fmt"
	"strings"
	"time"

	vo "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/ticket/valueobjects"
)

type Ticket struct {
	id             uint
	companyID      uint
	userID         uint
	assignedUserID *uint
	title          string
	description    string
	customerEmail  string
	priority       vo.Priority
	status         vo.TicketStatus
	assetIDs       []uint
	createdAt      time.Time
	updatedAt      time.Time
}

// NewTicket opens a ticket on behalf of userID. New tickets always start Open
// and unassigned.
func NewTicket(
	companyID uint,
	userID uint,
	title string,
	description string,
	customerEmail string,
	priority vo.Priority,
	assetIDs []uint,
) (*Ticket, error) {
	if companyID == 0 {
		return nil, fmt.Errorf("company_id is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("creator is required")
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("description is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}

	now := time.Now()
	return &Ticket{
		companyID:     companyID,
		userID:        userID,
		title:         title,
		description:   description,
		customerEmail: strings.TrimSpace(customerEmail),
		priority:      priority,
		status:        vo.StatusOpen,
		assetIDs:      dedupe(assetIDs),
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructTicket(
	id uint,
	companyID uint,
	userID uint,
	assignedUserID *uint,
	title string,
	description string,
	customerEmail string,
	priority vo.Priority,
	status vo.TicketStatus,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority: %s", priority)
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status: %s", status)
	}

	return &Ticket{
		id:             id,
		companyID:      companyID,
		userID:         userID,
		assignedUserID: assignedUserID,
		title:          title,
		description:    description,
		customerEmail:  customerEmail,
		priority:       priority,
		status:         status,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (t *Ticket) ID() uint                { return t.id }
func (t *Ticket) CompanyID() uint         { return t.companyID }
func (t *Ticket) UserID() uint            { return t.userID }
func (t *Ticket) AssignedUserID() *uint   { return t.assignedUserID }
func (t *Ticket) Title() string           { return t.title }
func (t *Ticket) Description() string     { return t.description }
func (t *Ticket) CustomerEmail() string   { return t.customerEmail }
func (t *Ticket) Priority() vo.Priority   { return t.priority }
func (t *Ticket) Status() vo.TicketStatus { return t.status }
func (t *Ticket) CreatedAt() time.Time    { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time    { return t.updatedAt }

func (t *Ticket) AssetIDs() []uint {
	ids := make([]uint, len(t.assetIDs))
	copy(ids, t.assetIDs)
	return ids
}

func (t *Ticket) HasCustomerEmail() bool {
	return t.customerEmail != ""
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// Changes records which of the staff-editable fields moved in an update.
type Changes struct {
	OldStatus   vo.TicketStatus
	NewStatus   vo.TicketStatus
	OldPriority vo.Priority
	NewPriority vo.Priority
	OldAssignee *uint
	NewAssignee *uint
}

func (c Changes) StatusChanged() bool   { return c.OldStatus != c.NewStatus }
func (c Changes) PriorityChanged() bool { return c.OldPriority != c.NewPriority }

func (c Changes) AssigneeChanged() bool {
	switch {
	case c.OldAssignee == nil && c.NewAssignee == nil:
		return false
	case c.OldAssignee == nil || c.NewAssignee == nil:
		return true
	default:
		return *c.OldAssignee != *c.NewAssignee
	}
}

func (c Changes) Any() bool {
	return c.StatusChanged() || c.PriorityChanged() || c.AssigneeChanged()
}

// Revise replaces status, priority and assignee and reports what changed.
// A nil assignee unassigns the ticket.
func (t *Ticket) Revise(status vo.TicketStatus, priority vo.Priority, assignee *uint) (Changes, error) {
	if !status.IsValid() {
		return Changes{}, fmt.Errorf("invalid status: %s", status)
	}
	if !priority.IsValid() {
		return Changes{}, fmt.Errorf("invalid priority: %s", priority)
	}
	if assignee != nil && *assignee == 0 {
		assignee = nil
	}

	changes := Changes{
		OldStatus:   t.status,
		NewStatus:   status,
		OldPriority: t.priority,
		NewPriority: priority,
		OldAssignee: t.assignedUserID,
		NewAssignee: assignee,
	}

	t.status = status
	t.priority = priority
	t.assignedUserID = assignee
	t.updatedAt = time.Now()

	return changes, nil
}

// MarkInProgress is applied whenever a reply is added to the ticket.
func (t *Ticket) MarkInProgress() {
	t.status = vo.StatusInProgress
	t.updatedAt = time.Now()
}

// Touch bumps updated_at without changing the workflow fields. Ingested
// customer replies use it.
func (t *Ticket) Touch() {
	t.updatedAt = time.Now()
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]bool, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if id == 0 || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}
