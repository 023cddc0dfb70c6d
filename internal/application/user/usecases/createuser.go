package usecases

import (
	"context"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/user/dto"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/user"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/authorization"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
)

type CreateUserCommand struct {
	Username string
	Password string
	Role     string
}

// CreateUserUseCase is shared by the admin API and the `user create` CLI.
type CreateUserUseCase struct {
	userRepo       user.Repository
	passwordHasher PasswordHasher
	logger         logger.Interface
}

func NewCreateUserUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *CreateUserUseCase {
	return &CreateUserUseCase{
		userRepo:       userRepo,
		passwordHasher: hasher,
		logger:         logger,
	}
}

func (uc *CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (*dto.UserDTO, error) {
	if cmd.Username == "" || cmd.Password == "" || cmd.Role == "" {
		return nil, errors.NewValidationError("Username, password, and role are required.")
	}

	role, err := authorization.ParseUserRole(cmd.Role)
	if err != nil {
		return nil, err
	}

	hash, err := uc.passwordHasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("Failed to hash password.")
	}

	newUser, err := user.NewUser(cmd.Username, hash, role)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		if errors.IsConflictError(err) {
			uc.logger.Warnw("username already taken", "username", newUser.Username())
		} else {
			uc.logger.Errorw("failed to create user", "username", newUser.Username(), "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("user created", "user_id", newUser.ID(), "role", role)
	return dto.ToUserDTO(newUser), nil
}
