package usecases

import (
	"context"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/company/dto"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/company"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
)

type ListCompaniesUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewListCompaniesUseCase(companyRepo company.Repository, logger logger.Interface) *ListCompaniesUseCase {
	return &ListCompaniesUseCase{companyRepo: companyRepo, logger: logger}
}

func (uc *ListCompaniesUseCase) Execute(ctx context.Context) ([]*dto.CompanyDTO, error) {
	companies, err := uc.companyRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list companies", "error", err)
		return nil, err
	}
	return dto.ToCompanyDTOList(companies), nil
}
