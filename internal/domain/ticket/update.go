package ticket

import (
	"fmt"
	"strings"
	"time"
)

// Update is one entry in a ticket's conversation: a staff reply or an
// ingested customer email.
type Update struct {
	id         uint
	ticketID   uint
	userID     uint
	updateText string
	createdAt  time.Time
}

func NewUpdate(ticketID, userID uint, updateText string) (*Update, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if strings.TrimSpace(updateText) == "" {
		return nil, fmt.Errorf("update_text is required")
	}

	return &Update{
		ticketID:   ticketID,
		userID:     userID,
		updateText: updateText,
		createdAt:  time.Now(),
	}, nil
}

func (u *Update) ID() uint             { return u.id }
func (u *Update) TicketID() uint       { return u.ticketID }
func (u *Update) UserID() uint         { return u.userID }
func (u *Update) UpdateText() string   { return u.updateText }
func (u *Update) CreatedAt() time.Time { return u.createdAt }

func (u *Update) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("update ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("update ID cannot be zero")
	}
	u.id = id
	return nil
}
