package usecases

import (
	"context"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/domain/user"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/errors"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
)

type DeleteUserCommand struct {
	UserID  uint
	ActorID uint
}

type DeleteUserUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewDeleteUserUseCase(userRepo user.Repository, logger logger.Interface) *DeleteUserUseCase {
	return &DeleteUserUseCase{userRepo: userRepo, logger: logger}
}

func (uc *DeleteUserUseCase) Execute(ctx context.Context, cmd DeleteUserCommand) error {
	if cmd.UserID == cmd.ActorID {
		return errors.NewValidationError("Cannot delete the currently logged-in user.")
	}

	if err := uc.userRepo.Delete(ctx, cmd.UserID); err != nil {
		if !errors.IsNotFoundError(err) && !errors.IsConflictError(err) {
			uc.logger.Errorw("failed to delete user", "user_id", cmd.UserID, "error", err)
		}
		return err
	}

	uc.logger.Infow("user deleted", "user_id", cmd.UserID, "actor_id", cmd.ActorID)
	return nil
}
