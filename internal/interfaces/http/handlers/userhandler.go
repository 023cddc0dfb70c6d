package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/user/usecases"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/utils"
)

// UserHandler serves the admin user management endpoints.
type UserHandler struct {
	createUserUC usecases.CreateUserExecutor
	listUsersUC  usecases.ListUsersExecutor
	deleteUserUC usecases.DeleteUserExecutor
	logger       logger.Interface
}

func NewUserHandler(
	createUserUC usecases.CreateUserExecutor,
	listUsersUC usecases.ListUsersExecutor,
	deleteUserUC usecases.DeleteUserExecutor,
	log logger.Interface,
) *UserHandler {
	return &UserHandler{
		createUserUC: createUserUC,
		listUsersUC:  listUsersUC,
		deleteUserUC: deleteUserUC,
		logger:       log,
	}
}

type CreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateUser handles POST /users
//
//	@Summary		Create user
//	@Tags			users
//	@Accept			json
//	@Produce		json
//	@Security		Bearer
//	@Param			body	body	CreateUserRequest	true	"User"
//	@Success		201	{object}	internal_application_user_dto.UserDTO
//	@Failure		400	{object}	utils.ErrorBody	"Missing field or invalid role"
//	@Failure		401	{object}	utils.ErrorBody	"Missing bearer token"
//	@Failure		403	{object}	utils.ErrorBody	"Invalid token or insufficient role"
//	@Failure		409	{object}	utils.ErrorBody	"Duplicate username"
//	@Router			/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.createUserUC.Execute(c.Request.Context(), usecases.CreateUserCommand{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// ListUsers handles GET /users
//
//	@Summary		List users
//	@Tags			users
//	@Produce		json
//	@Security		Bearer
//	@Success		200	{array}	internal_application_user_dto.UserDTO
//	@Failure		401	{object}	utils.ErrorBody	"Missing bearer token"
//	@Failure		403	{object}	utils.ErrorBody	"Invalid token or insufficient role"
//	@Router			/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	result, err := h.listUsersUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, result)
}

// DeleteUser handles DELETE /users/:id
//
//	@Summary		Delete user
//	@Tags			users
//	@Produce		json
//	@Security		Bearer
//	@Param			id	path	int	true	"User ID"
//	@Success		204
//	@Failure		400	{object}	utils.ErrorBody	"Cannot delete the current user"
//	@Failure		401	{object}	utils.ErrorBody	"Missing bearer token"
//	@Failure		403	{object}	utils.ErrorBody	"Invalid token or insufficient role"
//	@Failure		404	{object}	utils.ErrorBody	"User not found"
//	@Failure		409	{object}	utils.ErrorBody	"User still authors tickets"
//	@Router			/users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := utils.ParseIDParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actorID, err := utils.GetUserIDFromContext(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUserUC.Execute(c.Request.Context(), usecases.DeleteUserCommand{
		UserID:  userID,
		ActorID: actorID,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
