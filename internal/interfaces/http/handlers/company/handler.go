// Package company serves the company endpoints.
package company

import (
	"github.com/gin-gonic/gin"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/company/usecases"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/utils"
)

type Handler struct {
	createUC usecases.CreateCompanyExecutor
	updateUC usecases.UpdateCompanyExecutor
	listUC   usecases.ListCompaniesExecutor
	deleteUC usecases.DeleteCompanyExecutor
	logger   logger.Interface
}

func NewHandler(
	createUC usecases.CreateCompanyExecutor,
	updateUC usecases.UpdateCompanyExecutor,
	listUC usecases.ListCompaniesExecutor,
	deleteUC usecases.DeleteCompanyExecutor,
	log logger.Interface,
) *Handler {
	return &Handler{
		createUC: createUC,
		updateUC: updateUC,
		listUC:   listUC,
		deleteUC: deleteUC,
		logger:   log,
	}
}

// CompanyRequest is used by both create and update. Contact fields are optional.
type CompanyRequest struct {
	Name          string `json:"name"`
	ContactPerson string `json:"contact_person"`
	ContactEmail  string `json:"contact_email" binding:"omitempty,email"`
	ContactPhone  string `json:"contact_phone"`
	Address       string `json:"address"`
}

func (r *CompanyRequest) ToCommand() usecases.CompanyCommand {
	return usecases.CompanyCommand{
		Name:          r.Name,
		ContactPerson: r.ContactPerson,
		ContactEmail:  r.ContactEmail,
		ContactPhone:  r.ContactPhone,
		Address:       r.Address,
	}
}

// ListCompanies handles GET /companies
//
//	@Summary		List companies
//	@Tags			companies
//	@Produce		json
//	@Security		Bearer
//	@Success		200	{array}	internal_application_company_dto.CompanyDTO
//	@Failure		401	{object}	utils.ErrorBody	"Missing bearer token"
//	@Failure		403	{object}	utils.ErrorBody	"Invalid token or insufficient role"
//	@Router			/companies [get]
func (h *Handler) ListCompanies(c *gin.Context) {
	result, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// CreateCompany handles POST /companies
//
//	@Summary		Create company
//	@Tags			companies
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			body	body	CompanyRequest	true	"Company"
//	@Success		201	{object}	internal_application_company_dto.CompanyDTO
//	@Failure		400	{object}	utils.ErrorBody	"Missing name"
//	@Failure		401	{object}	utils.ErrorBody	"Missing bearer token"
//	@Failure		403	{object}	utils.ErrorBody	"Invalid token or insufficient role"
//	@Failure		409	{object}	utils.ErrorBody	"Duplicate name"
//	@Router			/companies [post]
func (h *Handler) CreateCompany(c *gin.Context) {
	var req CompanyRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// UpdateCompany handles PUT /companies/:id
//
//	@Summary		Update company
//	@Tags			companies
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			id	path	int	true	"Company ID"
//	@Param			body	body	CompanyRequest	true	"Company"
//	@Success		200	{object}	internal_application_company_dto.CompanyDTO
//	@Failure		400	{object}	utils.ErrorBody	"Missing name"
//	@Failure		401	{object}	utils.ErrorBody	"Missing bearer token"
//	@Failure		403	{object}	utils.ErrorBody	"Invalid token or insufficient role"
//	@Failure		404	{object}	utils.ErrorBody	"Company not found"
//	@Failure		409	{object}	utils.ErrorBody	"Duplicate name"
//	@Router			/companies/{id} [put]
func (h *Handler) UpdateCompany(c *gin.Context) {
	companyID, err := utils.ParseIDParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CompanyRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), usecases.UpdateCompanyCommand{
		CompanyID:      companyID,
		CompanyCommand: req.ToCommand(),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// DeleteCompany handles DELETE /companies/:id
//
//	@Summary		Delete company
//	@Tags			companies
//	@Produce		json
//	@Security		Bearer
//	@Param			id	path	int	true	"Company ID"
//	@Success		204
//	@Failure		401	{object}	utils.ErrorBody	"Missing bearer token"
//	@Failure		403	{object}	utils.ErrorBody	"Invalid token or insufficient role"
//	@Failure		404	{object}	utils.ErrorBody	"Company not found"
//	@Router			/companies/{id} [delete]
func (h *Handler) DeleteCompany(c *gin.Context) {
	companyID, err := utils.ParseIDParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), companyID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
