package ticket

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/ticket/usecases"
)

// OptionalID accepts a number, a numeric string, an empty string or null.
// Form-backed clients send "" for "no selection".
type OptionalID struct {
	Value *uint
}

func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Value = nil
	raw := bytes.TrimSpace(data)
	if bytes.Equal(raw, []byte("null")) {
		return nil
	}
	if len(raw) > 0 && raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return err
		}
		raw = []byte(strings.TrimSpace(s))
		if len(raw) == 0 {
			return nil
		}
	}
	id, err := strconv.ParseUint(string(raw), 10, 64)
	if err != nil {
		return fmt.Errorf("invalid id %s", data)
	}
	if id == 0 {
		return nil
	}
	v := uint(id)
	o.Value = &v
	return nil
}

type CreateTicketRequest struct {
	CompanyID     uint   `json:"company_id"`
	Title         string `json:"title" binding:"max=255"`
	Description   string `json:"description"`
	Priority      string `json:"priority"`
	CustomerEmail string `json:"customer_email" binding:"omitempty,email"`
	AssetIDs      []uint `json:"asset_ids"`
}

func (r *CreateTicketRequest) ToCommand(userID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		CompanyID:     r.CompanyID,
		UserID:        userID,
		Title:         r.Title,
		Description:   r.Description,
		Priority:      r.Priority,
		CustomerEmail: r.CustomerEmail,
		AssetIDs:      r.AssetIDs,
	}
}

type UpdateTicketRequest struct {
	Status         string     `json:"status"`
	Priority       string     `json:"priority"`
	AssignedUserID OptionalID `json:"assigned_user_id"`
}

func (r *UpdateTicketRequest) ToCommand(ticketID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:       ticketID,
		Status:         r.Status,
		Priority:       r.Priority,
		AssignedUserID: r.AssignedUserID.Value,
	}
}

type AddUpdateRequest struct {
	UpdateText string `json:"update_text"`
}

// EmailWebhookRequest is the inbound-parse payload. Text falls back to
// Plain for providers that only send the plain part under that name.
type EmailWebhookRequest struct {
	From    string `form:"from" json:"from"`
	Subject string `form:"subject" json:"subject"`
	Text    string `form:"text" json:"text"`
	Plain   string `form:"plain" json:"plain"`
}

func (r *EmailWebhookRequest) ToCommand() usecases.IngestEmailCommand {
	text := r.Text
	if strings.TrimSpace(text) == "" {
		text = r.Plain
	}
	return usecases.IngestEmailCommand{
		From:    r.From,
		Subject: r.Subject,
		Text:    text,
	}
}
