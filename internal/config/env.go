package config

import (
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// EnvConfig holds all environment-based configuration.
type EnvConfig struct {
	// Host is the server host to bind to.
	// Env: HOST (default: 0.0.0.0)
	Host string `envconfig:"HOST" default:"0.0.0.0"`

	// Port is the server port to listen on.
	// Env: PORT (default: 8080)
	Port int `envconfig:"PORT" default:"8080"`

	// DataDir is the data directory path.
	// Env: DATA_DIR
	// Default: ~/.catalog
	DataDir string `envconfig:"DATA_DIR"`

	// DBURL is the database connection URL.
	// Env: DB_URL
	// Default: sqlite:///{data_dir}/catalog.db
	DBURL string `envconfig:"DB_URL"`

	// LogLevel is the log verbosity level.
	// Env: LOG_LEVEL (default: INFO)
	LogLevel string `envconfig:"LOG_LEVEL" default:"INFO"`

	// LogFormat is the log output format (pretty or json).
	// Env: LOG_FORMAT (default: pretty)
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// APIKeys is a comma-separated list of keys accepted for write requests.
	// Env: API_KEYS
	APIKeys string `envconfig:"API_KEYS"`

	// CORSAllowedOrigins is a comma-separated list of allowed origins.
	// Env: CORS_ALLOWED_ORIGINS
	CORSAllowedOrigins string `envconfig:"CORS_ALLOWED_ORIGINS"`

	// RequestTimeoutSeconds bounds HTTP API request handling.
	// Env: REQUEST_TIMEOUT_SECONDS (default: 60)
	RequestTimeoutSeconds float64 `envconfig:"REQUEST_TIMEOUT_SECONDS" default:"60"`

	// DB configures the connection pool.
	DB DBEnv `envconfig:"DB"`
}

// DBEnv holds connection pool settings.
type DBEnv struct {
	// MaxOpenConns is the open connection limit.
	// Env: DB_MAX_OPEN_CONNS (default: 10)
	MaxOpenConns int `envconfig:"MAX_OPEN_CONNS" default:"10"`

	// MaxIdleConns is the idle connection limit.
	// Env: DB_MAX_IDLE_CONNS (default: 5)
	MaxIdleConns int `envconfig:"MAX_IDLE_CONNS" default:"5"`

	// ConnMaxLifetimeSeconds is how long a connection may be reused.
	// Env: DB_CONN_MAX_LIFETIME_SECONDS (default: 1800)
	ConnMaxLifetimeSeconds float64 `envconfig:"CONN_MAX_LIFETIME_SECONDS" default:"1800"`
}

// LoadFromEnv loads configuration from environment variables.
func LoadFromEnv() (EnvConfig, error) {
	return LoadFromEnvWithPrefix("")
}

// LoadFromEnvWithPrefix loads configuration with a custom prefix.
// For example, prefix "CATALOG" would require CATALOG_DATA_DIR instead of DATA_DIR.
func LoadFromEnvWithPrefix(prefix string) (EnvConfig, error) {
	var cfg EnvConfig
	if err := envconfig.Process(prefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// ToAppConfig converts EnvConfig to AppConfig.
func (e EnvConfig) ToAppConfig() AppConfig {
	cfg := NewAppConfig()

	if e.Host != "" {
		cfg = applyOption(cfg, WithHost(e.Host))
	}
	if e.Port != 0 {
		cfg = applyOption(cfg, WithPort(e.Port))
	}
	if e.DataDir != "" {
		cfg = applyOption(cfg, WithDataDir(e.DataDir))
	}
	if e.DBURL != "" {
		cfg = applyOption(cfg, WithDBURL(e.DBURL))
	}
	if e.LogLevel != "" {
		cfg = applyOption(cfg, WithLogLevel(strings.ToUpper(e.LogLevel)))
	}
	if e.LogFormat != "" {
		cfg = applyOption(cfg, WithLogFormat(parseLogFormat(e.LogFormat)))
	}
	if e.APIKeys != "" {
		cfg = applyOption(cfg, WithAPIKeys(ParseList(e.APIKeys)))
	}
	if e.CORSAllowedOrigins != "" {
		cfg = applyOption(cfg, WithCORSAllowedOrigins(ParseList(e.CORSAllowedOrigins)))
	}

	cfg = applyOption(cfg, WithRequestTimeout(seconds(e.RequestTimeoutSeconds)))
	cfg = applyOption(cfg, WithPool(e.DB.ToPoolConfig()))
	return cfg
}

// ToPoolConfig converts DBEnv to PoolConfig.
func (d DBEnv) ToPoolConfig() PoolConfig {
	return NewPoolConfig().
		WithMaxOpenConns(d.MaxOpenConns).
		WithMaxIdleConns(d.MaxIdleConns).
		WithConnMaxLifetime(seconds(d.ConnMaxLifetimeSeconds))
}

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

func applyOption(cfg AppConfig, opt AppConfigOption) AppConfig {
	opt(&cfg)
	return cfg
}

func parseLogFormat(s string) LogFormat {
	switch strings.ToLower(s) {
	case "json":
		return LogFormatJSON
	default:
		return LogFormatPretty
	}
}
