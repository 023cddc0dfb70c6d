package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
)

// ErrorBody is the JSON shape of every failed request. Clients only rely
// on message; type and details are diagnostic.
type ErrorBody struct {
	Message string `json:"message"`
	Type    string `json:"type,omitempty"`
	Details string `json:"details,omitempty"`
}

// OKResponse writes data as the bare JSON body.
func OKResponse(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// CreatedResponse writes data as the bare JSON body with 201.
func CreatedResponse(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// NoContentResponse sends a no content response
func NoContentResponse(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// ErrorResponse sends an error response with custom status code and message
func ErrorResponse(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, ErrorBody{Message: message})
}

// ErrorResponseWithError maps err onto its HTTP status. Errors that are not
// AppErrors become a generic 500 so driver text never leaks to clients.
func ErrorResponseWithError(c *gin.Context, err error) {
	appErr := errors.GetAppError(err)
	if appErr == nil {
		c.JSON(http.StatusInternalServerError, ErrorBody{
			Message: "Internal server error occurred",
			Type:    string(errors.ErrorTypeInternal),
		})
		return
	}

	c.JSON(appErr.Code, ErrorBody{
		Message: appErr.Message,
		Type:    string(appErr.Type),
		Details: appErr.Details,
	})
}
