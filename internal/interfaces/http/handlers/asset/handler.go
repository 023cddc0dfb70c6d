// Package asset serves the asset endpoints, including bulk import and export.
package asset

import (
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	assetdto "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/asset/dto"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/asset/usecases"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/constants"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/utils"
)

const (
	formatJSON = "json"
	formatCSV  = "csv"
)

type Handler struct {
	createUC     usecases.CreateAssetExecutor
	getUC        usecases.GetAssetExecutor
	listUC       usecases.ListCompanyAssetsExecutor
	updateUC     usecases.UpdateAssetExecutor
	deleteUC     usecases.DeleteAssetExecutor
	bulkImportUC usecases.BulkImportExecutor
	exportUC     usecases.ExportAssetsExecutor
	logger       logger.Interface
}

func NewHandler(
	createUC usecases.CreateAssetExecutor,
	getUC usecases.GetAssetExecutor,
	listUC usecases.ListCompanyAssetsExecutor,
	updateUC usecases.UpdateAssetExecutor,
	deleteUC usecases.DeleteAssetExecutor,
	bulkImportUC usecases.BulkImportExecutor,
	exportUC usecases.ExportAssetsExecutor,
	log logger.Interface,
) *Handler {
	return &Handler{
		createUC:     createUC,
		getUC:        getUC,
		listUC:       listUC,
		updateUC:     updateUC,
		deleteUC:     deleteUC,
		bulkImportUC: bulkImportUC,
		exportUC:     exportUC,
		logger:       log,
	}
}

// GetAsset handles GET /assets/:id
//
//	@Summary		Get asset
//	@Tags			assets
//	@Produce		json
//	@Security		Bearer
//	@Param			id	path	int	true	"Asset ID"
//	@Success		200	{object}	assetdto.AssetDTO
//	@Failure		401	{object}	utils.ErrorBody	"Missing bearer token"
//	@Failure		403	{object}	utils.ErrorBody	"Invalid token or insufficient role"
//	@Failure		404	{object}	utils.ErrorBody	"Asset not found"
//	@Router			/assets/{id} [get]
func (h *Handler) GetAsset(c *gin.Context) {
	assetID, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), assetID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// ListCompanyAssets handles GET /companies/:id/assets
//
//	@Summary		List company assets
//	@Tags			assets
//	@Produce		json
//	@Security		Bearer
//	@Param			id	path	int	true	"Company ID"
//	@Success		200	{array}	assetdto.AssetDTO
//	@Failure		401	{object}	utils.ErrorBody	"Missing bearer token"
//	@Failure		403	{object}	utils.ErrorBody	"Invalid token or insufficient role"
//	@Failure		404	{object}	utils.ErrorBody	"Company not found"
//	@Router			/companies/{id}/assets [get]
func (h *Handler) ListCompanyAssets(c *gin.Context) {
	companyID, err := utils.ParseIDParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), companyID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// CreateAsset handles POST /assets
//
//	@Summary		Create asset
//	@Tags			assets
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			body	body	CreateAssetRequest	true	"Asset"
//	@Success		201	{object}	assetdto.AssetDTO
//	@Failure		400	{object}	utils.ErrorBody	"Missing field or invalid status"
//	@Failure		401	{object}	utils.ErrorBody	"Missing bearer token"
//	@Failure		403	{object}	utils.ErrorBody	"Invalid token or insufficient role"
//	@Failure		404	{object}	utils.ErrorBody	"Company not found"
//	@Failure		409	{object}	utils.ErrorBody	"Duplicate serial number"
//	@Router			/assets [post]
func (h *Handler) CreateAsset(c *gin.Context) {
	var req CreateAssetRequest
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

// UpdateAsset handles PUT /assets/:id
//
//	@Summary		Update asset
//	@Tags			assets
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			id	path	int	true	"Asset ID"
//	@Param			body	body	UpdateAssetRequest	true	"Asset"
//	@Success		200	{object}	assetdto.AssetDTO
//	@Failure		400	{object}	utils.ErrorBody	"Missing field or invalid status"
//	@Failure		401	{object}	utils.ErrorBody	"Missing bearer token"
//	@Failure		403	{object}	utils.ErrorBody	"Invalid token or insufficient role"
//	@Failure		404	{object}	utils.ErrorBody	"Asset not found"
//	@Failure		409	{object}	utils.ErrorBody	"Duplicate serial number"
//	@Router			/assets/{id} [put]
func (h *Handler) UpdateAsset(c *gin.Context) {
	assetID, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateAssetRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(assetID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// DeleteAsset handles DELETE /assets/:id
//
//	@Summary		Delete asset
//	@Tags			assets
//	@Produce		json
//	@Security		Bearer
//	@Param			id	path	int	true	"Asset ID"
//	@Success		204
//	@Failure		401	{object}	utils.ErrorBody	"Missing bearer token"
//	@Failure		403	{object}	utils.ErrorBody	"Invalid token or insufficient role"
//	@Failure		404	{object}	utils.ErrorBody	"Asset not found"
//	@Router			/assets/{id} [delete]
func (h *Handler) DeleteAsset(c *gin.Context) {
	assetID, err := utils.ParseIDParam(c, "id", "asset")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), assetID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// BulkImport handles POST /assets/bulk. A text/csv body takes the company
// from the company_id query parameter.
//
//	@Summary		Bulk import assets
//	@Tags			assets
//	@Accept			json,text/csv
//	@Produce		json
//	@Security		Bearer
//	@Param			body	body	BulkImportRequest	true	"Rows"
//	@Param			company_id	query	int	false	"Company for text/csv bodies"
//	@Success		201	{object}	usecases.BulkImportResult
//	@Failure		400	{object}	utils.ErrorBody	"Invalid row"
//	@Failure		401	{object}	utils.ErrorBody	"Missing bearer token"
//	@Failure		403	{object}	utils.ErrorBody	"Invalid token or insufficient role"
//	@Failure		404	{object}	utils.ErrorBody	"Company not found"
//	@Failure		409	{object}	utils.ErrorBody	"Duplicate serial number"
//	@Router			/assets/bulk [post]
func (h *Handler) BulkImport(c *gin.Context) {
	cmd, err := h.bulkCommand(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.bulkImportUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

func (h *Handler) bulkCommand(c *gin.Context) (usecases.BulkImportCommand, error) {
	mediaType, _, _ := mime.ParseMediaType(c.ContentType())
	if mediaType != constants.ContentTypeCSV {
		var req BulkImportRequest
		if err := utils.BindJSON(c, &req); err != nil {
			return usecases.BulkImportCommand{}, err
		}
		return req.ToCommand(), nil
	}

	companyID, err := utils.ParseOptionalIDQuery(c, "company_id")
	if err != nil {
		return usecases.BulkImportCommand{}, err
	}
	if companyID == nil {
		return usecases.BulkImportCommand{}, errors.NewValidationError("company_id is required")
	}

	rows, err := assetdto.ReadCSV(c.Request.Body)
	if err != nil {
		return usecases.BulkImportCommand{}, errors.NewValidationError(err.Error())
	}
	return usecases.BulkImportCommand{CompanyID: *companyID, Rows: rows}, nil
}

// ExportAssets handles GET /companies/:id/assets/export?format=json|csv
//
//	@Summary		Export company assets
//	@Tags			assets
//	@Produce		json,text/csv
//	@Security		Bearer
//	@Param			id	path	int	true	"Company ID"
//	@Param			format	query	string	false	"Output format"	Enums(json, csv)
//	@Success		200	{array}	assetdto.AssetFields
//	@Failure		400	{object}	utils.ErrorBody	"Unknown format"
//	@Failure		401	{object}	utils.ErrorBody	"Missing bearer token"
//	@Failure		403	{object}	utils.ErrorBody	"Invalid token or insufficient role"
//	@Failure		404	{object}	utils.ErrorBody	"Company not found"
//	@Router			/companies/{id}/assets/export [get]
func (h *Handler) ExportAssets(c *gin.Context) {
	companyID, err := utils.ParseIDParam(c, "id", "company")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	format := c.DefaultQuery("format", formatJSON)
	if format != formatJSON && format != formatCSV {
		utils.ErrorResponse(c, http.StatusBadRequest, "format must be json or csv")
		return
	}

	rows, err := h.exportUC.Execute(c.Request.Context(), companyID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if format == formatJSON {
		utils.OKResponse(c, rows)
		return
	}

	filename := "company-" + strconv.FormatUint(uint64(companyID), 10) + "-assets.csv"
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Header("Content-Type", constants.ContentTypeCSV+"; charset=utf-8")
	c.Status(http.StatusOK)
	if err := assetdto.WriteCSV(c.Writer, rows); err != nil {
		h.logger.Errorw("failed to write asset export", "company_id", companyID, "error", err)
	}
}
