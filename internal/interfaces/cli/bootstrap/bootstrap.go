// Package bootstrap loads configuration, the logger and the database for
// CLI commands.
package bootstrap

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/config"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/infrastructure/database"
	"github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/logger"
)

// Options are the persistent flags shared by every command.
type Options struct {
	Env       string
	ConfigDir string
}

// LoadConfig reads configuration and initialises the process logger.
func LoadConfig(opts Options) (*config.Config, logger.Interface, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.ConfigDir != "" {
		cfg, err = config.LoadWithPaths(opts.Env, opts.ConfigDir)
	} else {
		cfg, err = config.Load(opts.Env)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger, cfg.Server.Mode); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, logger.NewLogger(), nil
}

// OpenDatabase loads configuration and connects to the database. The caller
// closes it with database.Close.
func OpenDatabase(opts Options) (*config.Config, *gorm.DB, logger.Interface, error) {
	cfg, log, err := LoadConfig(opts)
	if err != nil {
		return nil, nil, nil, err
	}

	db, err := database.Init(&cfg.Database)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return cfg, db, log, nil
}

// GinMode maps an environment name onto a gin mode.
func GinMode(env string) string {
	switch env {
	case "production", "prod", "release":
		return "release"
	case "test", "testing":
		return "test"
	default:
		return "debug"
	}
}
