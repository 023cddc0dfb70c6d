package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/user/dto"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/user/usecases"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/utils"
)

type AuthHandler struct {
	loginUC usecases.LoginExecutor
	logger  logger.Interface
}

func NewAuthHandler(loginUC usecases.LoginExecutor, logger logger.Interface) *AuthHandler {
	return &AuthHandler{
		loginUC: loginUC,
		logger:  logger,
	}
}

// LoginRequest leaves presence checks to the use case so a missing field
// gets the same message as an empty one.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	AccessToken string       `json:"accessToken"`
	User        *dto.UserDTO `json:"user"`
}

// Login handles POST /login
//
//	@Summary		Log in
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body	LoginRequest	true	"Credentials"
//	@Success		200	{object}	LoginResponse
//	@Failure		400	{object}	utils.ErrorBody	"Missing field"
//	@Failure		401	{object}	utils.ErrorBody	"Invalid credentials"
//	@Failure		429	{object}	utils.ErrorBody	"Too many attempts"
//	@Router			/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), usecases.LoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.OKResponse(c, LoginResponse{AccessToken: result.AccessToken, User: result.User})
}
