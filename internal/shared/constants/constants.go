package constants

const (
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	ContentTypeJSON = "application/json"
	ContentTypeCSV  = "text/csv"

	// Context keys set by the auth middleware.
	ContextKeyUserID    = "user_id"
	ContextKeyUsername  = "username"
	ContextKeyUserRole  = "user_role"
	ContextKeyRequestID = "request_id"

	TableUsers         = "users"
	TableCompanies     = "companies"
	TableAssets        = "assets"
	TableTickets       = "tickets"
	TableTicketAssets  = "ticket_assets"
	TableTicketUpdates = "ticket_updates"

	ErrMsgInternalServerError = "Internal server error occurred"
)
