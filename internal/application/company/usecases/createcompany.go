package usecases

import (
	"context"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/company/dto"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/company"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
)

type CompanyCommand struct {
	Name          string
	ContactPerson string
	ContactEmail  string
	ContactPhone  string
	Address       string
}

func (c CompanyCommand) contact() company.Contact {
	return company.Contact{
		Person:  c.ContactPerson,
		Email:   c.ContactEmail,
		Phone:   c.ContactPhone,
		Address: c.Address,
	}
}

type CreateCompanyUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewCreateCompanyUseCase(companyRepo company.Repository, logger logger.Interface) *CreateCompanyUseCase {
	return &CreateCompanyUseCase{companyRepo: companyRepo, logger: logger}
}

func (uc *CreateCompanyUseCase) Execute(ctx context.Context, cmd CompanyCommand) (*dto.CompanyDTO, error) {
	newCompany, err := company.NewCompany(cmd.Name, cmd.contact())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.companyRepo.Create(ctx, newCompany); err != nil {
		if !errors.IsConflictError(err) {
			uc.logger.Errorw("failed to create company", "name", newCompany.Name(), "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("company created", "company_id", newCompany.ID(), "name", newCompany.Name())
	return dto.ToCompanyDTO(newCompany), nil
}
