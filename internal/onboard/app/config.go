package app

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type Config struct {
	Env                  string        `env:"ENV" envDefault:"dev"`
	LogLevel             string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat            string        `env:"LOG_FORMAT" envDefault:"json"`
	Port                 int           `env:"PORT" envDefault:"8080"`
	ShutdownGracePeriod  time.Duration `env:"SHUTDOWN_GRACE_PERIOD" envDefault:"10s"`
	HousekeepingInterval time.Duration `env:"HOUSEKEEPING_INTERVAL" envDefault:"1h"`

	Database DatabaseConfig
	Auth     AuthConfig

	// ProvisionToken enables the provision RPC. Empty leaves it unregistered.
	ProvisionToken string `env:"PROVISION_TOKEN"`

	Invitation InvitationConfig
	SMTP       SMTPConfig
	OTel       OTelConfig
}

type DatabaseConfig struct {
	Driver   string `env:"DATABASE_DRIVER" envDefault:"sqlite"`
	File     string `env:"DATABASE_FILE" envDefault:"onboard.db"`
	URL      string `env:"DATABASE_URL"`
	MaxConns int    `env:"DATABASE_MAX_CONNS" envDefault:"10"`
}

type AuthConfig struct {
	Issuer   string   `env:"AUTH_ISSUER" envDefault:"bartab-auth"`
	Audience []string `env:"AUTH_AUDIENCE" envSeparator:","`

	// JWKSURL points at the auth service. When empty a local Ed25519 key is
	// loaded from SigningKeyFile, which also lets `onboard token` mint tokens.
	JWKSURL        string        `env:"AUTH_JWKS_URL"`
	JWKSRefresh    time.Duration `env:"AUTH_JWKS_REFRESH" envDefault:"5m"`
	SigningKeyFile string        `env:"AUTH_SIGNING_KEY_FILE" envDefault:"onboard-dev.pem"`
	KeyID          string        `env:"AUTH_KEY_ID" envDefault:"onboard-dev"`
	RequiredScope  string        `env:"AUTH_REQUIRED_SCOPE"`
}

type InvitationConfig struct {
	TTL         time.Duration `env:"INVITATION_TTL" envDefault:"168h"`
	BaseURL     string        `env:"INVITATION_BASE_URL" envDefault:"http://localhost:8080/accept"`
	ReturnToken bool          `env:"INVITATION_RETURN_TOKEN"`
	Retention   time.Duration `env:"INVITATION_RETENTION" envDefault:"720h"`
}

type SMTPConfig struct {
	Addr     string `env:"SMTP_ADDR"`
	From     string `env:"SMTP_FROM"`
	Username string `env:"SMTP_USERNAME"`
	Password string `env:"SMTP_PASSWORD"`
}

type OTelConfig struct {
	Endpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	Enabled  bool   `env:"OTEL_ENABLED" envDefault:"true"`
}

// LoadConfig reads the environment. Callers load any .env file first.
func LoadConfig() (Config, error) {
	return parseConfig(env.Options{})
}

func parseConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.File == "" {
			return fmt.Errorf("config: DATABASE_FILE is required for sqlite")
		}
	case DriverPostgres:
		if c.Database.URL == "" {
			return fmt.Errorf("config: DATABASE_URL is required for postgres")
		}
	default:
		return fmt.Errorf("config: unknown DATABASE_DRIVER %q", c.Database.Driver)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: invalid PORT %d", c.Port)
	}
	if c.Invitation.TTL <= 0 {
		return fmt.Errorf("config: INVITATION_TTL must be positive")
	}
	if c.Auth.JWKSURL != "" && c.Auth.JWKSRefresh <= 0 {
		return fmt.Errorf("config: AUTH_JWKS_REFRESH must be positive")
	}
	return nil
}
