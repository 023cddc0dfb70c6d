package ticket

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ticketdto "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/ticket/dto"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/ticket/usecases"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/http/handlers/testutil"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/authorization"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/constants"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockCreateTicketUC struct {
	got    usecases.CreateTicketCommand
	result *ticketdto.TicketDTO
	err    error
}

func (m *mockCreateTicketUC) Execute(_ context.Context, cmd usecases.CreateTicketCommand) (*ticketdto.TicketDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockUpdateTicketUC struct {
	got    usecases.UpdateTicketCommand
	result *ticketdto.TicketDTO
	err    error
}

func (m *mockUpdateTicketUC) Execute(_ context.Context, cmd usecases.UpdateTicketCommand) (*ticketdto.TicketDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockAddUpdateUC struct {
	got    usecases.AddUpdateCommand
	result *ticketdto.UpdateDTO
	err    error
}

func (m *mockAddUpdateUC) Execute(_ context.Context, cmd usecases.AddUpdateCommand) (*ticketdto.UpdateDTO, error) {
	m.got = cmd
	return m.result, m.err
}

type mockGetTicketUC struct {
	result *ticketdto.TicketDetailDTO
	err    error
}

func (m *mockGetTicketUC) Execute(_ context.Context, _ uint) (*ticketdto.TicketDetailDTO, error) {
	return m.result, m.err
}

type mockListTicketsUC struct {
	got    usecases.ListTicketsQuery
	called bool
	result []*ticketdto.TicketDTO
	err    error
}

func (m *mockListTicketsUC) Execute(_ context.Context, q usecases.ListTicketsQuery) ([]*ticketdto.TicketDTO, error) {
	m.got = q
	m.called = true
	return m.result, m.err
}

type mockDeleteTicketUC struct {
	got uint
	err error
}

func (m *mockDeleteTicketUC) Execute(_ context.Context, ticketID uint) error {
	m.got = ticketID
	return m.err
}

type mockIngestEmailUC struct {
	got    usecases.IngestEmailCommand
	called bool
	result *ticketdto.IngestResult
	err    error
}

func (m *mockIngestEmailUC) Execute(_ context.Context, cmd usecases.IngestEmailCommand) (*ticketdto.IngestResult, error) {
	m.got = cmd
	m.called = true
	return m.result, m.err
}

type mocks struct {
	create    *mockCreateTicketUC
	update    *mockUpdateTicketUC
	addUpdate *mockAddUpdateUC
	get       *mockGetTicketUC
	list      *mockListTicketsUC
	delete    *mockDeleteTicketUC
	ingest    *mockIngestEmailUC
}

func newHandler() (*TicketHandler, *mocks) {
	m := &mocks{
		create:    &mockCreateTicketUC{result: &ticketdto.TicketDTO{ID: 1}},
		update:    &mockUpdateTicketUC{result: &ticketdto.TicketDTO{ID: 1}},
		addUpdate: &mockAddUpdateUC{result: &ticketdto.UpdateDTO{ID: 1}},
		get:       &mockGetTicketUC{},
		list:      &mockListTicketsUC{},
		delete:    &mockDeleteTicketUC{},
		ingest:    &mockIngestEmailUC{result: &ticketdto.IngestResult{Message: "Email processed successfully."}},
	}
	h := NewTicketHandler(m.create, m.update, m.addUpdate, m.get, m.list, m.delete, m.ingest, logger.NewNop())
	return h, m
}

// =====================================================================
// Tests
// =====================================================================

func TestCreateTicket(t *testing.T) {
	t.Run("creator comes from the token", func(t *testing.T) {
		h, m := newHandler()
		body := map[string]any{
			"company_id":     2,
			"title":          "Printer jam",
			"description":    "Tray 2",
			"customer_email": "jane@acme.test",
			"asset_ids":      []uint{4, 5},
		}
		c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", body)
		testutil.SetAuthContext(c, 7, authorization.RoleUser)

		h.CreateTicket(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, uint(7), m.create.got.UserID)
		assert.Equal(t, uint(2), m.create.got.CompanyID)
		assert.Equal(t, []uint{4, 5}, m.create.got.AssetIDs)
		assert.Empty(t, m.create.got.Priority)
	})

	t.Run("invalid customer email", func(t *testing.T) {
		h, _ := newHandler()
		c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets",
			map[string]any{"company_id": 2, "title": "T", "description": "D", "customer_email": "nope"})
		testutil.SetAuthContext(c, 7, authorization.RoleUser)

		h.CreateTicket(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("use case validation", func(t *testing.T) {
		h, m := newHandler()
		m.create.err = errors.NewValidationError("Company, title, and description are required.")
		c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets", map[string]any{"title": "T"})
		testutil.SetAuthContext(c, 7, authorization.RoleUser)

		h.CreateTicket(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Company, title, and description are required.", testutil.ErrorMessage(w))
	})
}

func TestUpdateTicket_AssigneeForms(t *testing.T) {
	seven := uint(7)
	tests := []struct {
		name     string
		assignee any
		want     *uint
	}{
		{"number", 7, &seven},
		{"numeric string", "7", &seven},
		{"empty string", "", nil},
		{"zero", 0, nil},
		{"null", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newHandler()
			body := map[string]any{"status": "Closed", "priority": "High", "assigned_user_id": tt.assignee}
			c, w := testutil.NewTestContext(http.MethodPut, "/api/tickets/3", body)
			testutil.SetURLParam(c, "id", "3")

			h.UpdateTicket(c)

			require.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, uint(3), m.update.got.TicketID)
			assert.Equal(t, "Closed", m.update.got.Status)
			assert.Equal(t, tt.want, m.update.got.AssignedUserID)
		})
	}
}

func TestUpdateTicket_AbsentAssignee(t *testing.T) {
	h, m := newHandler()
	c, w := testutil.NewTestContext(http.MethodPut, "/api/tickets/3", map[string]any{"status": "Open", "priority": "Low"})
	testutil.SetURLParam(c, "id", "3")

	h.UpdateTicket(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, m.update.got.AssignedUserID)
}

func TestUpdateTicket_GarbageAssignee(t *testing.T) {
	h, _ := newHandler()
	c, w := testutil.NewTestContext(http.MethodPut, "/api/tickets/3",
		map[string]any{"status": "Open", "priority": "Low", "assigned_user_id": "bob"})
	testutil.SetURLParam(c, "id", "3")

	h.UpdateTicket(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddUpdate(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, m := newHandler()
		m.addUpdate.result = &ticketdto.UpdateDTO{ID: 9, UpdateText: "On it", TicketStatus: "In Progress"}
		c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets/3/updates", map[string]string{"update_text": "On it"})
		testutil.SetURLParam(c, "id", "3")
		testutil.SetAuthContext(c, 2, authorization.RoleUser)

		h.AddUpdate(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, usecases.AddUpdateCommand{TicketID: 3, UserID: 2, UpdateText: "On it"}, m.addUpdate.got)
		var raw map[string]any
		require.NoError(t, testutil.ParseResponse(w, &raw))
		assert.Equal(t, "In Progress", raw["ticket_status"])
	})

	t.Run("ticket missing", func(t *testing.T) {
		h, m := newHandler()
		m.addUpdate.err = errors.NewNotFoundError("Ticket not found.")
		c, w := testutil.NewTestContext(http.MethodPost, "/api/tickets/99/updates", map[string]string{"update_text": "hi"})
		testutil.SetURLParam(c, "id", "99")
		testutil.SetAuthContext(c, 2, authorization.RoleUser)

		h.AddUpdate(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestListTickets_Filters(t *testing.T) {
	h, m := newHandler()
	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets", nil)
	testutil.SetQueryParams(c, map[string]string{"status": "Open", "company_id": "4"})

	h.ListTickets(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Open", m.list.got.Status)
	require.NotNil(t, m.list.got.CompanyID)
	assert.Equal(t, uint(4), *m.list.got.CompanyID)
	assert.Nil(t, m.list.got.AssignedUserID)
}

func TestListTickets_BadFilter(t *testing.T) {
	h, m := newHandler()
	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets", nil)
	testutil.SetQueryParams(c, map[string]string{"assigned_user_id": "x"})

	h.ListTickets(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, m.list.called)
}

func TestGetTicket(t *testing.T) {
	h, m := newHandler()
	m.get.result = &ticketdto.TicketDetailDTO{
		TicketDTO: &ticketdto.TicketDTO{ID: 3, Title: "Printer jam"},
		Updates:   []*ticketdto.UpdateDTO{},
		Assets:    []*ticketdto.LinkedAssetDTO{},
	}
	c, w := testutil.NewTestContext(http.MethodGet, "/api/tickets/3", nil)
	testutil.SetURLParam(c, "id", "3")

	h.GetTicket(c)

	require.Equal(t, http.StatusOK, w.Code)
	var raw map[string]any
	require.NoError(t, testutil.ParseResponse(w, &raw))
	assert.Equal(t, "Printer jam", raw["title"])
	assert.Contains(t, raw, "updates")
	assert.Contains(t, raw, "assets")
}

func TestDeleteTicket(t *testing.T) {
	h, m := newHandler()
	c, w := testutil.NewTestContext(http.MethodDelete, "/api/tickets/3", nil)
	testutil.SetURLParam(c, "id", "3")

	h.DeleteTicket(c)

	assert.Equal(t, http.StatusNoContent, testutil.Status(c, w))
	assert.Equal(t, uint(3), m.delete.got)
}

func TestEmailWebhook_Encodings(t *testing.T) {
	want := usecases.IngestEmailCommand{
		From:    "Jane <jane@acme.test>",
		Subject: "Re: [Ticket #3] Printer jam",
		Text:    "Still broken",
	}

	form := url.Values{}
	form.Set("from", want.From)
	form.Set("subject", want.Subject)
	form.Set("text", want.Text)

	var multi bytes.Buffer
	mw := multipart.NewWriter(&multi)
	require.NoError(t, mw.WriteField("from", want.From))
	require.NoError(t, mw.WriteField("subject", want.Subject))
	require.NoError(t, mw.WriteField("plain", want.Text))
	require.NoError(t, mw.Close())

	jsonBody, err := json.Marshal(map[string]string{"from": want.From, "subject": want.Subject, "text": want.Text})
	require.NoError(t, err)

	tests := []struct {
		name        string
		body        string
		contentType string
	}{
		{"urlencoded", form.Encode(), "application/x-www-form-urlencoded"},
		{"multipart with plain fallback", multi.String(), mw.FormDataContentType()},
		{"json", string(jsonBody), constants.ContentTypeJSON},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newHandler()
			c, w := testutil.NewRawTestContext(http.MethodPost, "/api/tickets/email-webhook",
				strings.NewReader(tt.body), tt.contentType)

			h.EmailWebhook(c)

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, want, m.ingest.got)
		})
	}
}

func TestEmailWebhook_Errors(t *testing.T) {
	t.Run("use case rejects", func(t *testing.T) {
		h, m := newHandler()
		m.ingest.err = errors.NewValidationError("Webhook requires from, subject, and text fields.")
		c, w := testutil.NewRawTestContext(http.MethodPost, "/api/tickets/email-webhook",
			strings.NewReader("from=a%40b.test"), "application/x-www-form-urlencoded")

		h.EmailWebhook(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Webhook requires from, subject, and text fields.", testutil.ErrorMessage(w))
	})

	t.Run("malformed json", func(t *testing.T) {
		h, m := newHandler()
		c, w := testutil.NewRawTestContext(http.MethodPost, "/api/tickets/email-webhook",
			strings.NewReader("{"), constants.ContentTypeJSON)

		h.EmailWebhook(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.False(t, m.ingest.called)
	})

	t.Run("unknown ticket", func(t *testing.T) {
		h, m := newHandler()
		m.ingest.err = errors.NewNotFoundError("Ticket not found.")
		c, w := testutil.NewRawTestContext(http.MethodPost, "/api/tickets/email-webhook",
			strings.NewReader("from=a%40b.test&subject=%5BTicket+%2399%5D&text=hi"), "application/x-www-form-urlencoded")

		h.EmailWebhook(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
