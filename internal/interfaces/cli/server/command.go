package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/database"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/migration"
	httpRouter "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/http"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/interfaces/cli/bootstrap"
)

var (
	opts        bootstrap.Options
	autoMigrate bool
	migrateUp   bool
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "server",
		Short: "Start the HTTP server",
		Long:  `Start the asset register HTTP API with the given environment and configuration.`,
		RunE:  run,
	}

	cmd.Flags().StringVarP(&opts.Env, "env", "e", "development", "Environment (development, test, production)")
	cmd.Flags().StringVarP(&opts.ConfigDir, "config", "c", "", "Directory holding config.yaml (default: ./configs)")
	cmd.Flags().BoolVar(&migrateUp, "migrate", false, "Apply pending SQL migrations before serving")
	cmd.Flags().BoolVar(&autoMigrate, "auto-migrate", false, "Derive the schema from the models on startup (development only)")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	if envVar := os.Getenv("ENV"); envVar != "" {
		opts.Env = envVar
	}

	cfg, log, err := bootstrap.LoadConfig(opts)
	if err != nil {
		return err
	}
	cfg.Server.Mode = bootstrap.GinMode(opts.Env)

	if err := cfg.Validate(); err != nil {
		log.Errorw("refusing to start", "error", err)
		return err
	}

	log.Infow("starting server",
		"environment", opts.Env,
		"auto_migrate", autoMigrate,
		"tls", cfg.Server.TLSEnabled())

	gin.SetMode(cfg.Server.Mode)
	gin.DefaultWriter = io.Discard

	db, err := database.Init(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		if err := database.Close(); err != nil {
			log.Errorw("failed to close database", "error", err)
		}
	}()

	if autoMigrate || migrateUp {
		if autoMigrate && cfg.Server.Mode == gin.ReleaseMode {
			log.Warnw("auto-migration is enabled in production, this is not recommended")
		}
		if err := migration.NewManager(cfg.Database.Driver, autoMigrate, log).Migrate(db); err != nil {
			return err
		}
	}

	container, err := httpRouter.NewContainer(db, cfg, log)
	if err != nil {
		return err
	}
	container.SetupRoutes()

	srv := &http.Server{
		Addr:         cfg.Server.GetAddr(),
		Handler:      container.Engine(),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infow("server listening", "address", srv.Addr, "mode", cfg.Server.Mode)
		var err error
		if cfg.Server.TLSEnabled() {
			err = srv.ListenAndServeTLS(cfg.Server.TLSCertFile, cfg.Server.TLSKeyFile)
		} else {
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err, ok := <-serveErr:
		if ok {
			log.Errorw("server failed", "error", err)
			return err
		}
		return nil
	case sig := <-quit:
		log.Infow("shutting down server", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "error", err)
		return err
	}
	container.Shutdown(ctx)

	log.Infow("server exited gracefully")
	return nil
}
