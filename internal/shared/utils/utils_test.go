package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@example.com", MaskEmail("jane@example.com"))
	assert.Equal(t, "j***@example.com", MaskEmail("j@example.com"))
	assert.Equal(t, "***", MaskEmail("not-an-address"))
}

func TestErrorResponseWithError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"validation", errors.NewValidationError("title is required"), http.StatusBadRequest, "title is required"},
		{"not found", errors.NewNotFoundError("Ticket not found."), http.StatusNotFound, "Ticket not found."},
		{"conflict", errors.NewConflictError("Username already exists."), http.StatusConflict, "Username already exists."},
		{"plain error hides details", assert.AnError, http.StatusInternalServerError, "Internal server error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			ErrorResponseWithError(c, tt.err)

			assert.Equal(t, tt.wantStatus, w.Code)
			var body ErrorBody
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestBindJSON_ReportsJSONFieldNames(t *testing.T) {
	type request struct {
		AssetName string `json:"asset_name" binding:"required"`
	}

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{}`))
	c.Request.Header.Set("Content-Type", "application/json")

	var req request
	err := BindJSON(c, &req)

	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Equal(t, "asset_name is required", errors.GetAppError(err).Message)
}

func TestBindJSON_MalformedBody(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{`))

	var req struct{}
	err := BindJSON(c, &req)

	require.Error(t, err)
	assert.Equal(t, "Invalid request body.", errors.GetAppError(err).Message)
}

func TestParseIDParam(t *testing.T) {
	tests := []struct {
		raw     string
		want    uint
		wantErr bool
	}{
		{"42", 42, false},
		{"0", 0, true},
		{"abc", 0, true},
		{"-1", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Params = gin.Params{{Key: "id", Value: tt.raw}}

			got, err := ParseIDParam(c, "id", "ticket")
			if tt.wantErr {
				assert.True(t, errors.IsValidationError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
