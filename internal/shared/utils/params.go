package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/constants"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
)

// ParseIDParam parses a positive numeric ID from a URL path parameter.
// entityName is used in error messages (e.g. "ticket", "asset").
func ParseIDParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError(fmt.Sprintf("invalid %s ID", entityName))
	}
	return uint(id), nil
}

// ParseOptionalIDQuery parses an optional numeric query parameter. A missing
// or empty value yields nil.
func ParseOptionalIDQuery(c *gin.Context, name string) (*uint, error) {
	raw := c.Query(name)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return nil, errors.NewValidationError(fmt.Sprintf("%s must be a positive integer", name))
	}
	v := uint(id)
	return &v, nil
}

// GetUserIDFromContext returns the authenticated user's id set by the auth middleware.
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	v, ok := c.Get(constants.ContextKeyUserID)
	if !ok {
		return 0, errors.NewUnauthorizedError("Authentication required.")
	}
	id, ok := v.(uint)
	if !ok {
		return 0, errors.NewUnauthorizedError("Authentication required.")
	}
	return id, nil
}
