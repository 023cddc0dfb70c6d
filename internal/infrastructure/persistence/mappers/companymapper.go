package mappers

import (
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/company"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/persistence/models"
)

type CompanyMapper interface {
	ToModel(c *company.Company) *models.CompanyModel
	ToDomain(model *models.CompanyModel) (*company.Company, error)
}

type CompanyMapperImpl struct{}

func NewCompanyMapper() CompanyMapper {
	return &CompanyMapperImpl{}
}

func (m *CompanyMapperImpl) ToModel(c *company.Company) *models.CompanyModel {
	contact := c.Contact()
	return &models.CompanyModel{
		ID:            c.ID(),
		Name:          c.Name(),
		ContactPerson: contact.Person,
		ContactEmail:  contact.Email,
		ContactPhone:  contact.Phone,
		Address:       contact.Address,
		CreatedAt:     c.CreatedAt(),
	}
}

func (m *CompanyMapperImpl) ToDomain(model *models.CompanyModel) (*company.Company, error) {
	return company.ReconstructCompany(
		model.ID,
		model.Name,
		company.Contact{
			Person:  model.ContactPerson,
			Email:   model.ContactEmail,
			Phone:   model.ContactPhone,
			Address: model.Address,
		},
		model.CreatedAt,
	)
}
