package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/ticket/notification"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/ticket"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/database/dbtest"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/repository"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/config"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/db"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/services/markdown"
)

type ticketFixture struct {
	db       *gorm.DB
	notifier *recordingNotifier

	create *CreateTicketUseCase
	update *UpdateTicketUseCase
	reply  *AddUpdateUseCase
	get    *GetTicketUseCase
	list   *ListTicketsUseCase
	delete *DeleteTicketUseCase
	ingest *IngestEmailUseCase

	adminID    uint
	staffID    uint
	systemID   uint
	acmeID     uint
	fallbackID uint
}

func newTicketFixture(t *testing.T) *ticketFixture {
	t.Helper()
	gdb := dbtest.New(t)

	f := &ticketFixture{db: gdb, notifier: &recordingNotifier{}}
	f.adminID = dbtest.SeedUser(t, gdb, "alice", "admin")
	f.systemID = dbtest.SeedUser(t, gdb, "system", "user")
	f.staffID = dbtest.SeedUser(t, gdb, "bob", "user")
	f.fallbackID = dbtest.SeedCompany(t, gdb, "Unassigned", "")
	f.acmeID = dbtest.SeedCompany(t, gdb, "Acme", "IT@acme.test")

	tickets := repository.NewTicketRepository(gdb)
	updates := repository.NewTicketUpdateRepository(gdb)
	companies := repository.NewCompanyRepository(gdb)
	users := repository.NewUserRepository(gdb)
	txMgr := db.NewTransactionManager(gdb)
	log := logger.NewNop()

	f.create = NewCreateTicketUseCase(tickets, companies, txMgr, f.notifier, log)
	f.update = NewUpdateTicketUseCase(tickets, users, f.notifier, log)
	f.reply = NewAddUpdateUseCase(tickets, updates, txMgr, f.notifier, log)
	f.get = NewGetTicketUseCase(tickets, updates, log)
	f.list = NewListTicketsUseCase(tickets, log)
	f.delete = NewDeleteTicketUseCase(tickets, log)
	f.ingest = NewIngestEmailUseCase(tickets, updates, companies, users, txMgr, f.notifier,
		config.TicketsConfig{FallbackCompanyID: f.fallbackID, SystemUserID: f.systemID}, log)
	return f
}

func (f *ticketFixture) seedAsset(t *testing.T, name string) uint {
	t.Helper()
	row := map[string]any{"company_id": f.acmeID, "asset_name": name, "status": "In Use"}
	require.NoError(t, f.db.Table("assets").Create(row).Error)
	var id uint
	require.NoError(t, f.db.Table("assets").Select("id").Where("asset_name = ?", name).Scan(&id).Error)
	return id
}

func (f *ticketFixture) count(t *testing.T, table string) int64 {
	t.Helper()
	var n int64
	require.NoError(t, f.db.Table(table).Count(&n).Error)
	return n
}

func (f *ticketFixture) newTicket(t *testing.T, email string) uint {
	t.Helper()
	created, err := f.create.Execute(context.Background(), CreateTicketCommand{
		CompanyID:     f.acmeID,
		UserID:        f.adminID,
		Title:         "Printer jammed",
		Description:   "Second floor",
		CustomerEmail: email,
	})
	require.NoError(t, err)
	return created.ID
}

func uintPtr(v uint) *uint { return &v }

func appCode(t *testing.T, err error) int {
	t.Helper()
	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr, "expected AppError, got %v", err)
	return appErr.Code
}

func TestCreateTicket(t *testing.T) {
	f := newTicketFixture(t)
	laptop := f.seedAsset(t, "Laptop")
	phone := f.seedAsset(t, "Phone")

	created, err := f.create.Execute(context.Background(), CreateTicketCommand{
		CompanyID:     f.acmeID,
		UserID:        f.adminID,
		Title:         "Laptop won't boot",
		Description:   "Black screen",
		CustomerEmail: "jane@acme.test",
		AssetIDs:      []uint{laptop, phone, laptop},
	})
	require.NoError(t, err)

	assert.Equal(t, "Acme", created.CompanyName)
	assert.Equal(t, "alice", created.UserName)
	assert.Nil(t, created.AssignedUserName)
	assert.Equal(t, "Normal", created.Priority)
	assert.Equal(t, "Open", created.Status)
	assert.Equal(t, int64(2), f.count(t, "ticket_assets"))
	assert.Equal(t, []string{"received"}, f.notifier.kinds())
}

func TestCreateTicket_Errors(t *testing.T) {
	f := newTicketFixture(t)

	tests := []struct {
		name     string
		cmd      CreateTicketCommand
		wantCode int
	}{
		{"missing title", CreateTicketCommand{CompanyID: f.acmeID, UserID: f.adminID, Description: "x"}, 400},
		{"missing company", CreateTicketCommand{UserID: f.adminID, Title: "x", Description: "x"}, 400},
		{"invalid priority", CreateTicketCommand{CompanyID: f.acmeID, UserID: f.adminID, Title: "x", Description: "x", Priority: "Meh"}, 400},
		{"unknown company", CreateTicketCommand{CompanyID: 999, UserID: f.adminID, Title: "x", Description: "x"}, 404},
		{"unknown asset rolls back", CreateTicketCommand{CompanyID: f.acmeID, UserID: f.adminID, Title: "x", Description: "x", AssetIDs: []uint{999}}, 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.create.Execute(context.Background(), tt.cmd)
			assert.Equal(t, tt.wantCode, appCode(t, err))
		})
	}

	assert.Zero(t, f.count(t, "tickets"))
	assert.Empty(t, f.notifier.kinds())
}

func TestUpdateTicket(t *testing.T) {
	f := newTicketFixture(t)
	id := f.newTicket(t, "jane@acme.test")
	f.notifier.calls = nil

	updated, err := f.update.Execute(context.Background(), UpdateTicketCommand{
		TicketID:       id,
		Status:         "resolved",
		Priority:       "Urgent",
		AssignedUserID: uintPtr(f.staffID),
	})
	require.NoError(t, err)
	assert.Equal(t, "Resolved", updated.Status)
	assert.Equal(t, "Urgent", updated.Priority)
	require.NotNil(t, updated.AssignedUserName)
	assert.Equal(t, "bob", *updated.AssignedUserName)

	require.Len(t, f.notifier.calls, 1)
	changes := f.notifier.calls[0].changes
	assert.True(t, changes.StatusChanged())
	assert.True(t, changes.PriorityChanged())
	assert.True(t, changes.AssigneeChanged())

	// Zero unassigns.
	updated, err = f.update.Execute(context.Background(), UpdateTicketCommand{
		TicketID:       id,
		Status:         "Resolved",
		Priority:       "Urgent",
		AssignedUserID: uintPtr(0),
	})
	require.NoError(t, err)
	assert.Nil(t, updated.AssignedUserID)
	changes = f.notifier.calls[1].changes
	assert.False(t, changes.StatusChanged())
	assert.True(t, changes.AssigneeChanged())
	assert.Equal(t, "our team", f.notifier.calls[1].view.AssigneeLabel())
}

type stalledMailer struct{}

func (stalledMailer) Send(ctx context.Context, _ ticket.Message) error {
	<-ctx.Done()
	return ctx.Err()
}

func TestUpdateTicket_StalledMailerStaysWithinTimeout(t *testing.T) {
	f := newTicketFixture(t)
	id := f.newTicket(t, "jane@acme.test")

	timeout := 150 * time.Millisecond
	n, err := notification.NewNotifier(stalledMailer{}, markdown.NewMarkdownService(), nil, timeout, logger.NewNop())
	require.NoError(t, err)
	uc := NewUpdateTicketUseCase(repository.NewTicketRepository(f.db), repository.NewUserRepository(f.db), n, logger.NewNop())

	start := time.Now()
	updated, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:       id,
		Status:         "Closed",
		Priority:       "High",
		AssignedUserID: uintPtr(f.staffID),
	})
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, "Closed", updated.Status)
	assert.Less(t, elapsed, 2*timeout)
}

func TestUpdateTicket_Errors(t *testing.T) {
	f := newTicketFixture(t)
	id := f.newTicket(t, "")

	tests := []struct {
		name     string
		cmd      UpdateTicketCommand
		wantCode int
	}{
		{"missing status", UpdateTicketCommand{TicketID: id, Priority: "Low"}, 400},
		{"invalid status", UpdateTicketCommand{TicketID: id, Status: "Done", Priority: "Low"}, 400},
		{"invalid priority", UpdateTicketCommand{TicketID: id, Status: "Open", Priority: "Whenever"}, 400},
		{"unknown assignee", UpdateTicketCommand{TicketID: id, Status: "Open", Priority: "Low", AssignedUserID: uintPtr(999)}, 400},
		{"unknown ticket", UpdateTicketCommand{TicketID: 999, Status: "Open", Priority: "Low"}, 404},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.update.Execute(context.Background(), tt.cmd)
			assert.Equal(t, tt.wantCode, appCode(t, err))
		})
	}
}

func TestAddUpdate(t *testing.T) {
	f := newTicketFixture(t)
	id := f.newTicket(t, "jane@acme.test")

	reply, err := f.reply.Execute(context.Background(), AddUpdateCommand{
		TicketID:   id,
		UserID:     f.staffID,
		UpdateText: "On my way.",
	})
	require.NoError(t, err)
	assert.Equal(t, "bob", reply.UserName)
	assert.Equal(t, "In Progress", reply.TicketStatus)

	detail, err := f.get.Execute(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, "In Progress", detail.Status)
	require.Len(t, detail.Updates, 1)
	assert.Equal(t, "On my way.", detail.Updates[0].UpdateText)

	assert.Equal(t, []string{"received", "reply"}, f.notifier.kinds())
	assert.Equal(t, "bob", f.notifier.calls[1].update.UserName)
}

func TestAddUpdate_Errors(t *testing.T) {
	f := newTicketFixture(t)

	_, err := f.reply.Execute(context.Background(), AddUpdateCommand{TicketID: 1, UserID: f.staffID})
	assert.Equal(t, 400, appCode(t, err))

	_, err = f.reply.Execute(context.Background(), AddUpdateCommand{TicketID: 999, UserID: f.staffID, UpdateText: "hi"})
	assert.Equal(t, 404, appCode(t, err))
	assert.Zero(t, f.count(t, "ticket_updates"))
}

func TestGetTicket(t *testing.T) {
	f := newTicketFixture(t)
	asset := f.seedAsset(t, "Router")
	created, err := f.create.Execute(context.Background(), CreateTicketCommand{
		CompanyID:   f.acmeID,
		UserID:      f.adminID,
		Title:       "VPN down",
		Description: "Cannot connect",
		AssetIDs:    []uint{asset},
	})
	require.NoError(t, err)

	detail, err := f.get.Execute(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "VPN down", detail.Title)
	assert.Empty(t, detail.Updates)
	require.Len(t, detail.Assets, 1)
	assert.Equal(t, "Router", detail.Assets[0].AssetName)

	_, err = f.get.Execute(context.Background(), 999)
	assert.Equal(t, 404, appCode(t, err))
}

func TestListTickets(t *testing.T) {
	f := newTicketFixture(t)
	first := f.newTicket(t, "")
	second := f.newTicket(t, "")

	_, err := f.update.Execute(context.Background(), UpdateTicketCommand{TicketID: first, Status: "Closed", Priority: "High"})
	require.NoError(t, err)

	all, err := f.list.Execute(context.Background(), ListTicketsQuery{})
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, first, all[0].ID, "most recently updated first")
	assert.Equal(t, second, all[1].ID)

	closed, err := f.list.Execute(context.Background(), ListTicketsQuery{Status: "closed"})
	require.NoError(t, err)
	require.Len(t, closed, 1)
	assert.Equal(t, first, closed[0].ID)

	normal, err := f.list.Execute(context.Background(), ListTicketsQuery{Priority: "Normal", CompanyID: uintPtr(f.acmeID)})
	require.NoError(t, err)
	require.Len(t, normal, 1)
	assert.Equal(t, second, normal[0].ID)

	_, err = f.list.Execute(context.Background(), ListTicketsQuery{Status: "Lost"})
	assert.Equal(t, 400, appCode(t, err))
}

func TestDeleteTicket(t *testing.T) {
	f := newTicketFixture(t)
	id := f.newTicket(t, "")
	_, err := f.reply.Execute(context.Background(), AddUpdateCommand{TicketID: id, UserID: f.staffID, UpdateText: "x"})
	require.NoError(t, err)

	require.NoError(t, f.delete.Execute(context.Background(), id))
	assert.Zero(t, f.count(t, "tickets"))
	assert.Zero(t, f.count(t, "ticket_updates"))

	assert.Equal(t, 404, appCode(t, f.delete.Execute(context.Background(), id)))
}
