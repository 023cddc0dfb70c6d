// Package testutil holds helpers for handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/authorization"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/constants"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// NewTestContext creates a test gin.Context with the given method, path, and optional JSON body.
func NewTestContext(method, path string, body any) (*gin.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reader = bytes.NewReader(jsonBytes)
	}
	c, w := NewRawTestContext(method, path, reader, "")
	if body != nil {
		c.Request.Header.Set("Content-Type", constants.ContentTypeJSON)
	}
	return c, w
}

// NewRawTestContext creates a test gin.Context whose body is sent as is.
func NewRawTestContext(method, path string, body io.Reader, contentType string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	return c, w
}

// SetAuthContext sets the identity the auth middleware would set.
func SetAuthContext(c *gin.Context, userID uint, role authorization.UserRole) {
	c.Set(constants.ContextKeyUserID, userID)
	c.Set(constants.ContextKeyUsername, "tester")
	c.Set(constants.ContextKeyUserRole, string(role))
}

// SetURLParam sets a URL parameter on the gin context.
func SetURLParam(c *gin.Context, key, value string) {
	c.Params = append(c.Params, gin.Param{Key: key, Value: value})
}

// SetQueryParams sets query parameters on the gin context.
func SetQueryParams(c *gin.Context, params map[string]string) {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	c.Request.URL.RawQuery = q.Encode()
}

// ParseResponse parses the JSON response body into the target struct.
func ParseResponse(w *httptest.ResponseRecorder, target any) error {
	return json.Unmarshal(w.Body.Bytes(), target)
}

// ErrorBody mirrors utils.ErrorBody for test assertions.
type ErrorBody struct {
	Message string `json:"message"`
	Type    string `json:"type"`
	Details string `json:"details,omitempty"`
}

// ErrorMessage returns the message of an error response, or "" when the
// body is not one.
func ErrorMessage(w *httptest.ResponseRecorder) string {
	var body ErrorBody
	if err := ParseResponse(w, &body); err != nil {
		return ""
	}
	return body.Message
}

// Status reports the status written to w. Handlers that only call
// c.Status leave the recorder at 200 until the header is flushed.
func Status(c *gin.Context, w *httptest.ResponseRecorder) int {
	if c.Writer.Written() {
		return w.Code
	}
	if s := c.Writer.Status(); s != 0 {
		return s
	}
	return http.StatusOK
}
