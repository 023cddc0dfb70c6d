// Package user holds the user administration commands. They exist to seed
// the first admin, which the API cannot do without one.
package user

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/application/user/usecases"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/auth"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/database"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/repository"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/cli/bootstrap"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/authorization"
)

var (
	opts     bootstrap.Options
	username string
	password string
	role     string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "User administration",
	}

	cmd.PersistentFlags().StringVarP(&opts.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&opts.ConfigDir, "config", "c", "", "Directory holding config.yaml (default: ./configs)")

	cmd.AddCommand(newCreateCommand())
	return cmd
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user",
		Long:  `Create a user directly in the database, e.g. the first admin.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username (required)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password (required)")
	cmd.Flags().StringVarP(&role, "role", "r", authorization.RoleAdmin.String(), "Role: admin or user")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	cfg, db, log, err := bootstrap.OpenDatabase(opts)
	if err != nil {
		return err
	}
	defer database.Close()

	uc := usecases.NewCreateUserUseCase(
		repository.NewUserRepository(db),
		auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost),
		log,
	)

	ctx, cancel := context.WithTimeout(cmd.Context(), 10*time.Second)
	defer cancel()

	created, err := uc.Execute(ctx, usecases.CreateUserCommand{
		Username: username,
		Password: password,
		Role:     role,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "created user %q (id %d, role %s)\n", created.Username, created.ID, created.Role)
	return nil
}
