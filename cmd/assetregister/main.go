package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/cli/migrate"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/cli/server"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/cli/user"
)

//	@title						Ticket & Asset Register API
//	@version					1.0
//	@description				IT support tickets, customer companies and their assets.
//	@BasePath					/api
//	@securityDefinitions.apikey	Bearer
//	@in							header
//	@name						Authorization
func main() {
	rootCmd := &cobra.Command{
		Use:          "assetregister",
		Short:        "Asset register - IT asset and ticketing API",
		Long:         `Asset register serves the company, asset and ticket API and ships the migration and user seeding tools.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
		user.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
