package http

import (
	"gorm.io/gorm"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/repository"
)

// repositories holds every repository instance used by the application.
type repositories struct {
	user         *repository.UserRepository
	company      *repository.CompanyRepository
	asset        *repository.AssetRepository
	ticket       *repository.TicketRepository
	ticketUpdate *repository.TicketUpdateRepository
}

func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db),
		company:      repository.NewCompanyRepository(db),
		asset:        repository.NewAssetRepository(db),
		ticket:       repository.NewTicketRepository(db),
		ticketUpdate: repository.NewTicketUpdateRepository(db),
	}
}
