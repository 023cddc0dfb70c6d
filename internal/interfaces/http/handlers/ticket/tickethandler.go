// Package ticket serves the ticket workflow endpoints and the inbound email webhook.
package ticket

import (
	"mime"

	"github.com/gin-gonic/gin"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/ticket/usecases"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/constants"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/utils"
)

type TicketHandler struct {
	createUC    usecases.CreateTicketExecutor
	updateUC    usecases.UpdateTicketExecutor
	addUpdateUC usecases.AddUpdateExecutor
	getUC       usecases.GetTicketExecutor
	listUC      usecases.ListTicketsExecutor
	deleteUC    usecases.DeleteTicketExecutor
	ingestUC    usecases.IngestEmailExecutor
	logger      logger.Interface
}

func NewTicketHandler(
	createUC usecases.CreateTicketExecutor,
	updateUC usecases.UpdateTicketExecutor,
	addUpdateUC usecases.AddUpdateExecutor,
	getUC usecases.GetTicketExecutor,
	listUC usecases.ListTicketsExecutor,
	deleteUC usecases.DeleteTicketExecutor,
	ingestUC usecases.IngestEmailExecutor,
	log logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createUC:    createUC,
		updateUC:    updateUC,
		addUpdateUC: addUpdateUC,
		getUC:       getUC,
		listUC:      listUC,
		deleteUC:    deleteUC,
		ingestUC:    ingestUC,
		logger:      log,
	}
}

// CreateTicket handles POST /tickets
//
//	@Summary		Create ticket
//	@Tags			tickets
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			body	body	CreateTicketRequest	true	"Ticket"
//	@Success		201	{object}	internal_application_ticket_dto.TicketDTO
//	@Failure		400	{object}	utils.ErrorBody	"Missing field, invalid priority or unknown asset"
//	@Failure		401	{object}	utils.ErrorBody	"Missing bearer token"
//	@Failure		403	{object}	utils.ErrorBody	"Invalid token or insufficient role"
//	@Failure		404	{object}	utils.ErrorBody	"Company not found"
//	@Router			/tickets [post]
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CreateTicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.ToCommand(userID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// ListTickets handles GET /tickets
//
//	@Summary		List tickets
//	@Tags			tickets
//	@Produce		json
//	@Security		Bearer
//	@Param			status	query	string	false	"Filter by status"
//	@Param			priority	query	string	false	"Filter by priority"
//	@Param			company_id	query	int	false	"Filter by company"
//	@Param			assigned_user_id	query	int	false	"Filter by assignee"
//	@Success		200	{array}	internal_application_ticket_dto.TicketDTO
//	@Failure		400	{object}	utils.ErrorBody	"Invalid filter"
//	@Failure		401	{object}	utils.ErrorBody	"Missing bearer token"
//	@Failure		403	{object}	utils.ErrorBody	"Invalid token or insufficient role"
//	@Router			/tickets [get]
func (h *TicketHandler) ListTickets(c *gin.Context) {
	companyID, err := utils.ParseOptionalIDQuery(c, "company_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	assigneeID, err := utils.ParseOptionalIDQuery(c, "assigned_user_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.listUC.Execute(c.Request.Context(), usecases.ListTicketsQuery{
		Status:         c.Query("status"),
		Priority:       c.Query("priority"),
		CompanyID:      companyID,
		AssignedUserID: assigneeID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// GetTicket handles GET /tickets/:id
//
//	@Summary		Get ticket
//	@Tags			tickets
//	@Produce		json
//	@Security		Bearer
//	@Param			id	path	int	true	"Ticket ID"
//	@Success		200	{object}	internal_application_ticket_dto.TicketDetailDTO
//	@Failure		401	{object}	utils.ErrorBody	"Missing bearer token"
//	@Failure		403	{object}	utils.ErrorBody	"Invalid token or insufficient role"
//	@Failure		404	{object}	utils.ErrorBody	"Ticket not found"
//	@Router			/tickets/{id} [get]
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUC.Execute(c.Request.Context(), ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// UpdateTicket handles PUT /tickets/:id
//
//	@Summary		Update ticket
//	@Description	Emails the customer once per changed field.
//	@Tags			tickets
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			id	path	int	true	"Ticket ID"
//	@Param			body	body	UpdateTicketRequest	true	"Changes"
//	@Success		200	{object}	internal_application_ticket_dto.TicketDTO
//	@Failure		400	{object}	utils.ErrorBody	"Invalid status, priority or assignee"
//	@Failure		401	{object}	utils.ErrorBody	"Missing bearer token"
//	@Failure		403	{object}	utils.ErrorBody	"Invalid token or insufficient role"
//	@Failure		404	{object}	utils.ErrorBody	"Ticket not found"
//	@Router			/tickets/{id} [put]
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), req.ToCommand(ticketID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}

// AddUpdate handles POST /tickets/:id/updates
//
//	@Summary		Reply to ticket
//	@Description	Moves the ticket to In Progress and emails the customer.
//	@Tags			tickets
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			id	path	int	true	"Ticket ID"
//	@Param			body	body	AddUpdateRequest	true	"Reply"
//	@Success		201	{object}	internal_application_ticket_dto.UpdateDTO
//	@Failure		400	{object}	utils.ErrorBody	"Missing update_text"
//	@Failure		401	{object}	utils.ErrorBody	"Missing bearer token"
//	@Failure		403	{object}	utils.ErrorBody	"Invalid token or insufficient role"
//	@Failure		404	{object}	utils.ErrorBody	"Ticket not found"
//	@Router			/tickets/{id}/updates [post]
func (h *TicketHandler) AddUpdate(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddUpdateRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.addUpdateUC.Execute(c.Request.Context(), usecases.AddUpdateCommand{
		TicketID:   ticketID,
		UserID:     userID,
		UpdateText: req.UpdateText,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// DeleteTicket handles DELETE /tickets/:id
//
//	@Summary		Delete ticket
//	@Tags			tickets
//	@Produce		json
//	@Security		Bearer
//	@Param			id	path	int	true	"Ticket ID"
//	@Success		204
//	@Failure		401	{object}	utils.ErrorBody	"Missing bearer token"
//	@Failure		403	{object}	utils.ErrorBody	"Invalid token or insufficient role"
//	@Failure		404	{object}	utils.ErrorBody	"Ticket not found"
//	@Router			/tickets/{id} [delete]
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), ticketID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// EmailWebhook handles POST /tickets/email-webhook. It accepts the
// inbound-parse form post as well as a JSON body with the same keys.
//
//	@Summary		Ingest inbound email
//	@Tags			tickets
//	@Accept			mpfd,x-www-form-urlencoded,json
//	@Produce		json
//	@Param			body	body	EmailWebhookRequest	true	"Inbound email"
//	@Success		200	{object}	internal_application_ticket_dto.IngestResult
//	@Failure		400	{object}	utils.ErrorBody	"Missing field"
//	@Failure		404	{object}	utils.ErrorBody	"Tagged ticket not found"
//	@Failure		429	{object}	utils.ErrorBody	"Too many requests"
//	@Router			/tickets/email-webhook [post]
func (h *TicketHandler) EmailWebhook(c *gin.Context) {
	var req EmailWebhookRequest
	mediaType, _, _ := mime.ParseMediaType(c.ContentType())

	var bindErr error
	if mediaType == constants.ContentTypeJSON {
		bindErr = c.ShouldBindJSON(&req)
	} else {
		bindErr = c.ShouldBind(&req)
	}
	if bindErr != nil {
		h.logger.Warnw("unreadable email webhook payload", "content_type", mediaType, "error", bindErr)
		utils.ErrorResponseWithError(c, errors.NewValidationError("Webhook requires from, subject, and text fields."))
		return
	}

	result, err := h.ingestUC.Execute(c.Request.Context(), req.ToCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, result)
}
