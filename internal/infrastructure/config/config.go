package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "github.com/Anonymouse-dev-hub/Ticket-Asset-Register-Web-App/internal/shared/config"
)

// EnvPrefix is prepended to every environment override, e.g.
// ASSETREG_AUTH_JWT_SECRET for auth.jwt.secret.
const EnvPrefix = "ASSETREG"

type Config struct {
	Server    sharedConfig.ServerConfig    `mapstructure:"server"`
	Database  sharedConfig.DatabaseConfig  `mapstructure:"database"`
	Logger    sharedConfig.LoggerConfig    `mapstructure:"logger"`
	Auth      sharedConfig.AuthConfig      `mapstructure:"auth"`
	Email     sharedConfig.EmailConfig     `mapstructure:"email"`
	Tickets   sharedConfig.TicketsConfig   `mapstructure:"tickets"`
	Redis     sharedConfig.RedisConfig     `mapstructure:"redis"`
	RateLimit sharedConfig.RateLimitConfig `mapstructure:"ratelimit"`
	Metrics   sharedConfig.MetricsConfig   `mapstructure:"metrics"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

var defaultConfigPaths = []string{"./configs", "../configs", "../../configs"}

// Load reads configs/config.yaml (optional), a .env file (optional) and
// ASSETREG_* environment variables, in increasing order of precedence.
func Load(env string) (*Config, error) {
	return LoadWithPaths(env, defaultConfigPaths...)
}

func LoadWithPaths(env string, configPaths ...string) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range configPaths {
		v.AddConfigPath(p)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Allow env parameter to override server mode if provided
	if env != "" && env != "default" {
		v.Set("server.mode", env)
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

// Validate refuses configurations that are missing a required secret.
func (c *Config) Validate() error {
	var missing []string

	if strings.TrimSpace(c.Auth.JWT.Secret) == "" {
		missing = append(missing, "auth.jwt.secret")
	}
	if !c.Database.IsSQLite() && c.Database.DSN == "" && c.Database.Password == "" {
		missing = append(missing, "database.password")
	}
	if c.Email.Enabled && strings.TrimSpace(c.Email.APIKey) == "" {
		missing = append(missing, "email.api_key")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	switch strings.ToLower(c.Database.Driver) {
	case sharedConfig.DriverMySQL, sharedConfig.DriverSQLite:
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}

	if c.Tickets.FallbackCompanyID == 0 || c.Tickets.SystemUserID == 0 {
		return fmt.Errorf("tickets.fallback_company_id and tickets.system_user_id must be set")
	}

	// Notifications run inside the request after the commit.
	if c.Server.WriteTimeoutSeconds > 0 && c.Email.SendTimeoutSeconds >= c.Server.WriteTimeoutSeconds {
		return fmt.Errorf("email.send_timeout_seconds (%d) must be below server.write_timeout_seconds (%d)",
			c.Email.SendTimeoutSeconds, c.Server.WriteTimeoutSeconds)
	}
	return nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	// Server defaults
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 5000)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.read_timeout_seconds", 15)
	v.SetDefault("server.write_timeout_seconds", 30)
	v.SetDefault("server.tls_cert_file", "")
	v.SetDefault("server.tls_key_file", "")

	// Database defaults
	v.SetDefault("database.driver", sharedConfig.DriverMySQL)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "crm")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 50)
	v.SetDefault("database.conn_max_lifetime", 60)

	// Logger defaults
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")
	v.SetDefault("logger.max_size_mb", 100)
	v.SetDefault("logger.max_backups", 5)
	v.SetDefault("logger.max_age_days", 30)

	// Auth defaults
	v.SetDefault("auth.password.bcrypt_cost", 10)
	v.SetDefault("auth.jwt.secret", "")
	v.SetDefault("auth.jwt.access_exp_minutes", 60)

	// Email defaults
	v.SetDefault("email.enabled", true)
	v.SetDefault("email.smtp_host", "smtp.sendgrid.net")
	v.SetDefault("email.smtp_port", 465)
	v.SetDefault("email.smtp_user", "apikey")
	v.SetDefault("email.api_key", "")
	v.SetDefault("email.from_address", "support@example.com")
	v.SetDefault("email.from_name", "Support")
	v.SetDefault("email.send_timeout_seconds", 10)

	// Ticket ingestion defaults
	v.SetDefault("tickets.fallback_company_id", 1)
	v.SetDefault("tickets.system_user_id", 2)

	// Redis defaults
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	// Rate limit defaults
	v.SetDefault("ratelimit.login_per_minute", 10)
	v.SetDefault("ratelimit.webhook_per_minute", 60)

	// Metrics defaults
	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}
