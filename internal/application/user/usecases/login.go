package usecases

import (
	"context"
	"strings"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/user/dto"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/user"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
)

type LoginCommand struct {
	Username string
	Password string
}

type LoginResult struct {
	AccessToken string
	User        *dto.UserDTO
}

type LoginUseCase struct {
	userRepo       user.Repository
	passwordHasher PasswordHasher
	tokens         TokenGenerator
	logger         logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenGenerator,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		tokens:         tokens,
		logger:         logger,
	}
}

// Execute checks the credentials and issues an access token. Unknown users
// and wrong passwords produce the same error.
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	username := strings.TrimSpace(cmd.Username)
	if username == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("Username and password are required.")
	}

	existing, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.IsNotFoundError(err) {
			uc.logger.Warnw("login attempt for unknown user", "username", username)
			return nil, errors.NewInvalidCredentialsError()
		}
		uc.logger.Errorw("failed to load user for login", "username", username, "error", err)
		return nil, err
	}

	if err := uc.passwordHasher.Verify(cmd.Password, existing.PasswordHash()); err != nil {
		uc.logger.Warnw("login attempt with wrong password", "user_id", existing.ID())
		return nil, errors.NewInvalidCredentialsError()
	}

	token, err := uc.tokens.Generate(existing.ID(), existing.Username(), existing.Role())
	if err != nil {
		uc.logger.Errorw("failed to issue access token", "user_id", existing.ID(), "error", err)
		return nil, errors.NewInternalError("Failed to issue access token.")
	}

	uc.logger.Infow("user logged in", "user_id", existing.ID(), "role", existing.Role())

	return &LoginResult{
		AccessToken: token,
		User:        dto.ToUserDTO(existing),
	}, nil
}
