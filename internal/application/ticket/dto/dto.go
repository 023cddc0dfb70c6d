package dto

import (
	"time"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/ticket"
)

// TicketDTO is the joined ticket row returned by every ticket endpoint.
type TicketDTO struct {
	ID               uint      `json:"id"`
	CompanyID        uint      `json:"company_id"`
	CompanyName      string    `json:"company_name"`
	UserID           uint      `json:"user_id"`
	UserName         string    `json:"user_name"`
	AssignedUserID   *uint     `json:"assigned_user_id"`
	AssignedUserName *string   `json:"assigned_user_name"`
	Title            string    `json:"title"`
	Description      string    `json:"description"`
	CustomerEmail    *string   `json:"customer_email"`
	Priority         string    `json:"priority"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func ToTicketDTO(v *ticket.View) *TicketDTO {
	if v == nil {
		return nil
	}
	return &TicketDTO{
		ID:               v.ID,
		CompanyID:        v.CompanyID,
		CompanyName:      v.CompanyName,
		UserID:           v.UserID,
		UserName:         v.UserName,
		AssignedUserID:   v.AssignedUserID,
		AssignedUserName: v.AssignedUserName,
		Title:            v.Title,
		Description:      v.Description,
		CustomerEmail:    v.CustomerEmail,
		Priority:         v.Priority.String(),
		Status:           v.Status.String(),
		CreatedAt:        v.CreatedAt,
		UpdatedAt:        v.UpdatedAt,
	}
}

func ToTicketDTOList(views []*ticket.View) []*TicketDTO {
	out := make([]*TicketDTO, 0, len(views))
	for _, v := range views {
		out = append(out, ToTicketDTO(v))
	}
	return out
}

type UpdateDTO struct {
	ID         uint      `json:"id"`
	TicketID   uint      `json:"ticket_id"`
	UserID     uint      `json:"user_id"`
	UserName   string    `json:"user_name"`
	UpdateText string    `json:"update_text"`
	CreatedAt  time.Time `json:"created_at"`
	// TicketStatus is set on reply responses only: a reply moves the ticket
	// to In Progress.
	TicketStatus string `json:"ticket_status,omitempty"`
}

func ToUpdateDTO(u *ticket.UpdateView) *UpdateDTO {
	if u == nil {
		return nil
	}
	return &UpdateDTO{
		ID:         u.ID,
		TicketID:   u.TicketID,
		UserID:     u.UserID,
		UserName:   u.UserName,
		UpdateText: u.UpdateText,
		CreatedAt:  u.CreatedAt,
	}
}

func ToUpdateDTOList(updates []*ticket.UpdateView) []*UpdateDTO {
	out := make([]*UpdateDTO, 0, len(updates))
	for _, u := range updates {
		out = append(out, ToUpdateDTO(u))
	}
	return out
}

type LinkedAssetDTO struct {
	ID           uint    `json:"id"`
	AssetName    string  `json:"asset_name"`
	SerialNumber *string `json:"serial_number"`
	Status       string  `json:"status"`
}

func ToLinkedAssetDTOList(assets []*ticket.LinkedAsset) []*LinkedAssetDTO {
	out := make([]*LinkedAssetDTO, 0, len(assets))
	for _, a := range assets {
		out = append(out, &LinkedAssetDTO{
			ID:           a.ID,
			AssetName:    a.AssetName,
			SerialNumber: a.SerialNumber,
			Status:       a.Status,
		})
	}
	return out
}

// TicketDetailDTO is the single-ticket view with its conversation and
// linked assets.
type TicketDetailDTO struct {
	*TicketDTO
	Updates []*UpdateDTO      `json:"updates"`
	Assets  []*LinkedAssetDTO `json:"assets"`
}

// IngestResult answers the email webhook.
type IngestResult struct {
	Message  string `json:"message"`
	TicketID uint   `json:"ticket_id"`
	Created  bool   `json:"created"`
}
