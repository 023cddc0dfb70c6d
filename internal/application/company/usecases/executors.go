package usecases

import (
	"context"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/company/dto"
)

type CreateCompanyExecutor interface {
	Execute(ctx context.Context, cmd CompanyCommand) (*dto.CompanyDTO, error)
}

type UpdateCompanyExecutor interface {
	Execute(ctx context.Context, cmd UpdateCompanyCommand) (*dto.CompanyDTO, error)
}

type ListCompaniesExecutor interface {
	Execute(ctx context.Context) ([]*dto.CompanyDTO, error)
}

type DeleteCompanyExecutor interface {
	Execute(ctx context.Context, companyID uint) error
}
