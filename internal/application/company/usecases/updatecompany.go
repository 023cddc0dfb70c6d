package usecases

import (
	"context"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/company/dto"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/company"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
)

type UpdateCompanyCommand struct {
	CompanyID uint
	CompanyCommand
}

// UpdateCompanyUseCase replaces the name and every contact field; omitted
// contact fields are cleared.
type UpdateCompanyUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewUpdateCompanyUseCase(companyRepo company.Repository, logger logger.Interface) *UpdateCompanyUseCase {
	return &UpdateCompanyUseCase{companyRepo: companyRepo, logger: logger}
}

func (uc *UpdateCompanyUseCase) Execute(ctx context.Context, cmd UpdateCompanyCommand) (*dto.CompanyDTO, error) {
	existing, err := uc.companyRepo.GetByID(ctx, cmd.CompanyID)
	if err != nil {
		return nil, err
	}

	if err := existing.Replace(cmd.Name, cmd.contact()); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.companyRepo.Update(ctx, existing); err != nil {
		if !errors.IsConflictError(err) && !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to update company", "company_id", cmd.CompanyID, "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("company updated", "company_id", existing.ID())
	return dto.ToCompanyDTO(existing), nil
}
