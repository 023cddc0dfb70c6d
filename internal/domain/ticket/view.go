package ticket

import (
	"time"

	vo "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/ticket/valueobjects"
)

// View is the read model returned to clients: a ticket joined with the
// names of its company, creator and assignee.
type View struct {
	ID               uint
	CompanyID        uint
	CompanyName      string
	UserID           uint
	UserName         string
	AssignedUserID   *uint
	AssignedUserName *string
	Title            string
	Description      string
	CustomerEmail    *string
	Priority         vo.Priority
	Status           vo.TicketStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// AssigneeLabel is the name used in customer-facing mail.
func (v *View) AssigneeLabel() string {
	if v.AssignedUserName == nil || *v.AssignedUserName == "" {
		return "our team"
	}
	return *v.AssignedUserName
}

// UpdateView is an update joined with its author's username.
type UpdateView struct {
	ID         uint
	TicketID   uint
	UserID     uint
	UserName   string
	UpdateText string
	CreatedAt  time.Time
}

// LinkedAsset is the summary of an asset attached to a ticket.
type LinkedAsset struct {
	ID           uint
	AssetName    string
	SerialNumber *string
	Status       string
}
