package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/auth"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/config"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/database/dbtest"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/authorization"
	sharedConfig "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/config"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
)

const testSecret = "router-test-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

type apiFixture struct {
	t       *testing.T
	db      *gorm.DB
	engine  *gin.Engine
	jwt     *auth.JWTService
	adminID uint
	userID  uint
	acmeID  uint
}

func newAPIFixture(t *testing.T) *apiFixture {
	t.Helper()
	db := dbtest.New(t)

	f := &apiFixture{t: t, db: db, jwt: auth.NewJWTService(testSecret, time.Hour)}
	fallbackID := dbtest.SeedCompany(t, db, "Unassigned", "")
	f.adminID = dbtest.SeedUser(t, db, "alice", "admin")
	systemID := dbtest.SeedUser(t, db, "system", "admin")
	f.userID = dbtest.SeedUser(t, db, "bob", "user")
	f.acmeID = dbtest.SeedCompany(t, db, "Acme", "it@acme.test")

	cfg := &config.Config{
		Auth: sharedConfig.AuthConfig{
			Password: sharedConfig.PasswordConfig{BcryptCost: 4},
			JWT:      sharedConfig.JWTConfig{Secret: testSecret, AccessExpMinutes: 60},
		},
		Tickets: sharedConfig.TicketsConfig{FallbackCompanyID: fallbackID, SystemUserID: systemID},
		Metrics: sharedConfig.MetricsConfig{Enabled: true, Path: "/metrics"},
		Server:  sharedConfig.ServerConfig{AllowedOrigins: []string{"*"}},
	}

	c, err := NewContainer(db, cfg, logger.NewNop())
	require.NoError(t, err)
	c.SetupRoutes()
	f.engine = c.Engine()
	return f
}

func (f *apiFixture) token(id uint, name string, role authorization.UserRole) string {
	f.t.Helper()
	tok, err := f.jwt.Generate(id, name, role)
	require.NoError(f.t, err)
	return tok
}

func (f *apiFixture) adminToken() string { return f.token(f.adminID, "alice", authorization.RoleAdmin) }
func (f *apiFixture) userToken() string  { return f.token(f.userID, "bob", authorization.RoleUser) }

func (f *apiFixture) do(method, path, token string, body any) *httptest.ResponseRecorder {
	f.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(f.t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func TestHealthAndMetrics(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = f.do(http.MethodGet, "/metrics", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_requests_total")
}

func TestSwaggerDocCoversAPIRoutes(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(http.MethodGet, "/swagger/doc.json", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		BasePath string                               `json:"basePath"`
		Paths    map[string]map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, APIPrefix, doc.BasePath)

	for _, route := range f.engine.Routes() {
		if !strings.HasPrefix(route.Path, APIPrefix+"/") {
			continue
		}
		path := strings.TrimPrefix(route.Path, APIPrefix)
		path = strings.ReplaceAll(path, ":id", "{id}")
		ops, ok := doc.Paths[path]
		if assert.True(t, ok, "undocumented path %s", path) {
			assert.Contains(t, ops, strings.ToLower(route.Method), "undocumented %s %s", route.Method, path)
		}
	}
}

func TestAuthGates(t *testing.T) {
	f := newAPIFixture(t)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		want   int
	}{
		{"no token", http.MethodGet, "/api/tickets", "", http.StatusUnauthorized},
		{"garbage token", http.MethodGet, "/api/tickets", "nope", http.StatusForbidden},
		{"user reads tickets", http.MethodGet, "/api/tickets", f.userToken(), http.StatusOK},
		{"user lists users", http.MethodGet, "/api/users", f.userToken(), http.StatusForbidden},
		{"admin lists users", http.MethodGet, "/api/users", f.adminToken(), http.StatusOK},
		{"user deletes company", http.MethodDelete, "/api/companies/1", f.userToken(), http.StatusForbidden},
		{"unknown route", http.MethodGet, "/api/nope", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := f.do(tt.method, tt.path, tt.token, nil)
			assert.Equal(t, tt.want, w.Code, w.Body.String())
		})
	}
}

func TestCreateUserThenLogin(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(http.MethodPost, "/api/users", f.adminToken(),
		map[string]string{"username": "carol", "password": "s3cret", "role": "user"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = f.do(http.MethodPost, "/api/login", "", map[string]string{"username": "carol", "password": "s3cret"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	login := decode[map[string]any](t, w)
	token, _ := login["accessToken"].(string)
	require.NotEmpty(t, token)

	w = f.do(http.MethodGet, "/api/companies", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = f.do(http.MethodPost, "/api/login", "", map[string]string{"username": "carol", "password": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestTicketLifecycleOverHTTP(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(http.MethodPost, "/api/assets", f.userToken(),
		map[string]any{"company_id": f.acmeID, "asset_name": "Laptop", "serial_number": "SN-1"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	asset := decode[map[string]any](t, w)

	w = f.do(http.MethodPost, "/api/tickets", f.userToken(), map[string]any{
		"company_id":     f.acmeID,
		"title":          "Screen flickers",
		"description":    "Since **Monday**",
		"customer_email": "jane@acme.test",
		"asset_ids":      []any{asset["id"]},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode[map[string]any](t, w)
	assert.Equal(t, "Open", created["status"])
	assert.Equal(t, "Normal", created["priority"])
	assert.Equal(t, "Acme", created["company_name"])
	assert.Nil(t, created["assigned_user_name"])
	ticketPath := "/api/tickets/" + jsonID(created["id"])

	w = f.do(http.MethodPut, ticketPath, f.userToken(), map[string]any{"status": "Closed", "priority": "High"})
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = f.do(http.MethodPut, ticketPath, f.adminToken(),
		map[string]any{"status": "Open", "priority": "High", "assigned_user_id": jsonID(f.userID)})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, "bob", decode[map[string]any](t, w)["assigned_user_name"])

	w = f.do(http.MethodPost, ticketPath+"/updates", f.userToken(), map[string]any{"update_text": "Replaced cable"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.Equal(t, "In Progress", decode[map[string]any](t, w)["ticket_status"])

	w = f.do(http.MethodGet, ticketPath, f.userToken(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode[map[string]any](t, w)
	assert.Equal(t, "In Progress", detail["status"])
	assert.Len(t, detail["updates"], 1)
	assert.Len(t, detail["assets"], 1)

	w = f.do(http.MethodGet, "/api/tickets?status=In+Progress", f.userToken(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]any](t, w), 1)

	w = f.do(http.MethodDelete, ticketPath, f.adminToken(), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	w = f.do(http.MethodGet, ticketPath, f.userToken(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestEmailWebhookOverHTTP(t *testing.T) {
	f := newAPIFixture(t)

	post := func(from, subject, text string) *httptest.ResponseRecorder {
		form := url.Values{"from": {from}, "subject": {subject}, "text": {text}}
		req := httptest.NewRequest(http.MethodPost, "/api/tickets/email-webhook", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		f.engine.ServeHTTP(w, req)
		return w
	}

	w := post("IT Desk <it@acme.test>", "Printer offline", "Floor 3")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	result := decode[map[string]any](t, w)
	assert.Equal(t, true, result["created"])
	id := jsonID(result["ticket_id"])

	w = f.do(http.MethodGet, "/api/tickets/"+id, f.adminToken(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	ticket := decode[map[string]any](t, w)
	assert.Equal(t, "Acme", ticket["company_name"])
	assert.Equal(t, "it@acme.test", ticket["customer_email"])

	w = post("it@acme.test", "Re: [Ticket #"+id+"] Printer offline", "Back online")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Equal(t, false, decode[map[string]any](t, w)["created"])

	var before int64
	require.NoError(t, f.db.Table("tickets").Count(&before).Error)
	for _, subject := range []string{
		"Re: [Ticket #999999] Ghost",
		"Re: [Ticket #0] Ghost",
		"Re: [Ticket #99999999999999999999999] Ghost",
	} {
		w = post("it@acme.test", subject, "hello")
		assert.Equal(t, http.StatusNotFound, w.Code, subject)
	}
	var after int64
	require.NoError(t, f.db.Table("tickets").Count(&after).Error)
	assert.Equal(t, before, after)

	w = post("", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBulkImportAndExportRoundTrip(t *testing.T) {
	f := newAPIFixture(t)

	w := f.do(http.MethodPost, "/api/assets/bulk", f.userToken(), map[string]any{
		"company_id": f.acmeID,
		"assets": []map[string]string{
			{"asset_name": "Desk PC", "serial_number": "A1", "brand": "Dell"},
			{"asset_name": "Router", "status": "In Repair"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.EqualValues(t, 2, decode[map[string]any](t, w)["imported"])

	w = f.do(http.MethodGet, "/api/companies/"+jsonID(f.acmeID)+"/assets/export?format=csv", f.userToken(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	exported := w.Body.String()

	otherID := dbtest.SeedCompany(t, f.db, "Globex", "")
	req := httptest.NewRequest(http.MethodPost, "/api/assets/bulk?company_id="+jsonID(otherID), strings.NewReader(
		strings.ReplaceAll(exported, "A1", "B1")))
	req.Header.Set("Content-Type", "text/csv")
	req.Header.Set("Authorization", "Bearer "+f.userToken())
	w = httptest.NewRecorder()
	f.engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = f.do(http.MethodGet, "/api/companies/"+jsonID(otherID)+"/assets", f.userToken(), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assets := decode[[]map[string]any](t, w)
	require.Len(t, assets, 2)
	assert.Equal(t, "Desk PC", assets[0]["asset_name"])
	assert.Equal(t, "In Repair", assets[1]["status"])
}

func jsonID(v any) string {
	switch n := v.(type) {
	case float64:
		return strconv.FormatFloat(n, 'f', 0, 64)
	case uint:
		return strconv.FormatUint(uint64(n), 10)
	default:
		return ""
	}
}
