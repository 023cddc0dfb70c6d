package usecases

import "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/authorization"

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type TokenGenerator interface {
	Generate(userID uint, username string, role authorization.UserRole) (string, error)
}
