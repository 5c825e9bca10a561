package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	neturl "net/url"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Storage drivers understood by the server.
const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

var (
	// ErrMissingJWTSecret is fatal: the server must not start without a signing secret.
	ErrMissingJWTSecret = errors.New("JWT_SECRET is required")
	// ErrInvalidJWTExpiry rejects token lifetimes that would issue already expired tokens.
	ErrInvalidJWTExpiry = errors.New("JWT_EXPIRY must be positive")
	// ErrMissingDatabase means the postgres driver was selected without a DSN.
	ErrMissingDatabase = errors.New("database configuration missing: provide DATABASE_URL or PG* env vars")
)

// Config centralises runtime configuration.
type Config struct {
	AppEnv string `envconfig:"APP_ENV" default:"development"`

	HTTPPort       string        `envconfig:"HTTP_PORT"`
	Port           string        `envconfig:"PORT" default:"8080"`
	ReadTimeout    time.Duration `envconfig:"HTTP_READ_TIMEOUT" default:"15s"`
	WriteTimeout   time.Duration `envconfig:"HTTP_WRITE_TIMEOUT" default:"15s"`
	IdleTimeout    time.Duration `envconfig:"HTTP_IDLE_TIMEOUT" default:"60s"`
	RequestTimeout time.Duration `envconfig:"HTTP_REQUEST_TIMEOUT" default:"30s"`
	AllowedOrigins []string      `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`

	StorageDriver string `envconfig:"STORAGE_DRIVER" default:"postgres"`
	DatabaseURL   string `envconfig:"DATABASE_URL"`

	JWTSecret  string        `envconfig:"JWT_SECRET"`
	JWTIssuer  string        `envconfig:"JWT_ISSUER" default:"bookmarks-api"`
	JWTExpiry  time.Duration `envconfig:"JWT_EXPIRY" default:"15m"`
	BcryptCost int           `envconfig:"BCRYPT_COST" default:"10"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"text"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
}

// pgEnv mirrors the libpq environment variables used when DATABASE_URL is absent.
type pgEnv struct {
	Host     string `envconfig:"PGHOST"`
	Port     string `envconfig:"PGPORT" default:"5432"`
	User     string `envconfig:"PGUSER"`
	Password string `envconfig:"PGPASSWORD"`
	Database string `envconfig:"PGDATABASE"`
	SSLMode  string `envconfig:"PGSSLMODE" default:"require"`
}

// Load reads configuration from an optional .env file and the environment.
func Load() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}

	if cfg.DatabaseURL == "" {
		var pg pgEnv
		if err := envconfig.Process("", &pg); err != nil {
			return Config{}, fmt.Errorf("reading PG* environment: %w", err)
		}
		cfg.DatabaseURL = pg.dsn()
	}
	cfg.DatabaseURL = normalisePostgresScheme(strings.TrimSpace(cfg.DatabaseURL))
	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports configuration the server cannot run with.
func (c Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}
	if c.JWTExpiry <= 0 {
		return ErrInvalidJWTExpiry
	}
	switch c.StorageDriver {
	case StoragePostgres:
		if c.DatabaseURL == "" {
			return ErrMissingDatabase
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unsupported STORAGE_DRIVER %q", c.StorageDriver)
	}
	return nil
}

// Addr returns the listen address, preferring HTTP_PORT over PORT.
func (c Config) Addr() string {
	addr := c.HTTPPort
	if addr == "" {
		addr = c.Port
	}
	if !strings.Contains(addr, ":") {
		addr = ":" + addr
	}
	return addr
}

// IsProduction returns true when the application runs in production.
func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func (p pgEnv) dsn() string {
	if p.Host == "" || p.User == "" {
		return ""
	}
	database := p.Database
	if database == "" {
		database = p.User
	}

	dsn := &neturl.URL{
		Scheme: "postgres",
		Host:   net.JoinHostPort(p.Host, p.Port),
		Path:   "/" + database,
		User:   neturl.User(p.User),
	}
	if p.Password != "" {
		dsn.User = neturl.UserPassword(p.User, p.Password)
	}

	query := dsn.Query()
	if p.SSLMode != "" {
		query.Set("sslmode", p.SSLMode)
	}
	dsn.RawQuery = query.Encode()
	return dsn.String()
}

func normalisePostgresScheme(url string) string {
	if strings.HasPrefix(url, "postgresql://") {
		return "postgres://" + strings.TrimPrefix(url, "postgresql://")
	}
	return url
}
