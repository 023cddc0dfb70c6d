package dto

import "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/company"

type CompanyDTO struct {
	ID            uint   `json:"id"`
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	ContactEmail  string `json:"contact_email"`
	ContactPhone  string `json:"contact_phone"`
	Address       string `json:"address"`
}

func ToCompanyDTO(c *company.Company) *CompanyDTO {
	if c == nil {
		return nil
	}
	contact := c.Contact()
	return &CompanyDTO{
		ID:            c.ID(),
		Name:          c.Name(),
		ContactPerson: contact.Person,
		ContactEmail:  contact.Email,
		ContactPhone:  contact.Phone,
		Address:       contact.Address,
	}
}

func ToCompanyDTOList(companies []*company.Company) []*CompanyDTO {
	out := make([]*CompanyDTO, 0, len(companies))
	for _, c := range companies {
		out = append(out, ToCompanyDTO(c))
	}
	return out
}
