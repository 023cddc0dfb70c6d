package usecases

import (
	"context"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/company"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
)

// DeleteCompanyUseCase removes a company; its assets and tickets go with it
// through the schema's cascades.
type DeleteCompanyUseCase struct {
	companyRepo company.Repository
	logger      logger.Interface
}

func NewDeleteCompanyUseCase(companyRepo company.Repository, logger logger.Interface) *DeleteCompanyUseCase {
	return &DeleteCompanyUseCase{companyRepo: companyRepo, logger: logger}
}

func (uc *DeleteCompanyUseCase) Execute(ctx context.Context, companyID uint) error {
	if err := uc.companyRepo.Delete(ctx, companyID); err != nil {
		if !errors.IsNotFoundError(err) {
			uc.logger.Errorw("failed to delete company", "company_id", companyID, "error", err)
		}
		return err
	}

	uc.logger.Infow("company deleted", "company_id", companyID)
	return nil
}
