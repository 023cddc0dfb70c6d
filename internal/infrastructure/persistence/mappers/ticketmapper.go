package mappers

import (
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/ticket"
	vo "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/ticket/valueobjects"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	UpdateToModel(u *ticket.Update) *models.TicketUpdateModel
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:             t.ID(),
		CompanyID:      t.CompanyID(),
		UserID:         t.UserID(),
		AssignedUserID: t.AssignedUserID(),
		Title:          t.Title(),
		Description:    t.Description(),
		Priority:       t.Priority().String(),
		Status:         t.Status().String(),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
	if t.HasCustomerEmail() {
		email := t.CustomerEmail()
		model.CustomerEmail = &email
	}
	return model
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	customerEmail := ""
	if model.CustomerEmail != nil {
		customerEmail = *model.CustomerEmail
	}
	return ticket.ReconstructTicket(
		model.ID,
		model.CompanyID,
		model.UserID,
		model.AssignedUserID,
		model.Title,
		model.Description,
		customerEmail,
		vo.Priority(model.Priority),
		vo.TicketStatus(model.Status),
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (m *TicketMapperImpl) UpdateToModel(u *ticket.Update) *models.TicketUpdateModel {
	return &models.TicketUpdateModel{
		ID:         u.ID(),
		TicketID:   u.TicketID(),
		UserID:     u.UserID(),
		UpdateText: u.UpdateText(),
		CreatedAt:  u.CreatedAt(),
	}
}
