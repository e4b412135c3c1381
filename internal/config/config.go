// Package config provides application configuration.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Default configuration values.
const (
	DefaultHost              = "0.0.0.0"
	DefaultPort              = 8080
	DefaultLogLevel          = "INFO"
	DefaultDBFile            = "catalog.db"
	DefaultDBMaxOpenConns    = 10
	DefaultDBMaxIdleConns    = 5
	DefaultDBConnMaxLifetime = 30 * time.Minute
	DefaultRequestTimeout    = 60 * time.Second
)

// LogFormat represents the log output format.
type LogFormat string

// LogFormat values.
const (
	LogFormatPretty LogFormat = "pretty"
	LogFormatJSON   LogFormat = "json"
)

// PoolConfig configures the database connection pool.
type PoolConfig struct {
	maxOpenConns    int
	maxIdleConns    int
	connMaxLifetime time.Duration
}

// NewPoolConfig creates a PoolConfig with defaults.
func NewPoolConfig() PoolConfig {
	return PoolConfig{
		maxOpenConns:    DefaultDBMaxOpenConns,
		maxIdleConns:    DefaultDBMaxIdleConns,
		connMaxLifetime: DefaultDBConnMaxLifetime,
	}
}

// MaxOpenConns returns the maximum number of open connections.
func (p PoolConfig) MaxOpenConns() int { return p.maxOpenConns }

// MaxIdleConns returns the maximum number of idle connections.
func (p PoolConfig) MaxIdleConns() int { return p.maxIdleConns }

// ConnMaxLifetime returns how long a connection may be reused.
func (p PoolConfig) ConnMaxLifetime() time.Duration { return p.connMaxLifetime }

// WithMaxOpenConns returns a copy with the given open connection limit.
func (p PoolConfig) WithMaxOpenConns(n int) PoolConfig {
	if n > 0 {
		p.maxOpenConns = n
	}
	return p
}

// WithMaxIdleConns returns a copy with the given idle connection limit.
func (p PoolConfig) WithMaxIdleConns(n int) PoolConfig {
	if n > 0 {
		p.maxIdleConns = n
	}
	return p
}

// WithConnMaxLifetime returns a copy with the given connection lifetime.
func (p PoolConfig) WithConnMaxLifetime(d time.Duration) PoolConfig {
	if d > 0 {
		p.connMaxLifetime = d
	}
	return p
}

// AppConfig holds the main application configuration.
type AppConfig struct {
	host               string
	port               int
	dataDir            string
	dbURL              string
	logLevel           string
	logFormat          LogFormat
	apiKeys            []string
	corsAllowedOrigins []string
	pool               PoolConfig
	requestTimeout     time.Duration
}

// DefaultDataDir returns the default data directory.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".catalog"
	}
	return filepath.Join(home, ".catalog")
}

// PrepareDataDir creates the data directory if it does not exist and returns it.
func PrepareDataDir(dataDir string) (string, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return dataDir, nil
}

// NewAppConfig creates a new AppConfig with defaults.
func NewAppConfig() AppConfig {
	dataDir := DefaultDataDir()
	return AppConfig{
		host:               DefaultHost,
		port:               DefaultPort,
		dataDir:            dataDir,
		dbURL:              "sqlite:///" + filepath.Join(dataDir, DefaultDBFile),
		logLevel:           DefaultLogLevel,
		logFormat:          LogFormatPretty,
		apiKeys:            []string{},
		corsAllowedOrigins: []string{},
		pool:               NewPoolConfig(),
		requestTimeout:     DefaultRequestTimeout,
	}
}

// Host returns the server host to bind to.
func (c AppConfig) Host() string { return c.host }

// Port returns the server port to listen on.
func (c AppConfig) Port() int { return c.port }

// Addr returns the combined host:port address.
func (c AppConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.host, c.port)
}

// DataDir returns the data directory path.
func (c AppConfig) DataDir() string { return c.dataDir }

// DBURL returns the database connection URL.
func (c AppConfig) DBURL() string { return c.dbURL }

// LogLevel returns the log level.
func (c AppConfig) LogLevel() string { return c.logLevel }

// LogFormat returns the log format.
func (c AppConfig) LogFormat() LogFormat { return c.logFormat }

// APIKeys returns the configured API keys.
func (c AppConfig) APIKeys() []string {
	keys := make([]string, len(c.apiKeys))
	copy(keys, c.apiKeys)
	return keys
}

// CORSAllowedOrigins returns the origins allowed to call the HTTP API.
func (c AppConfig) CORSAllowedOrigins() []string {
	origins := make([]string, len(c.corsAllowedOrigins))
	copy(origins, c.corsAllowedOrigins)
	return origins
}

// Pool returns the database pool configuration.
func (c AppConfig) Pool() PoolConfig { return c.pool }

// RequestTimeout returns the HTTP API request timeout.
func (c AppConfig) RequestTimeout() time.Duration { return c.requestTimeout }

// EnsureDataDir creates the data directory if it doesn't exist.
func (c AppConfig) EnsureDataDir() error {
	return os.MkdirAll(c.dataDir, 0o755)
}

// AppConfigOption is a functional option for AppConfig.
type AppConfigOption func(*AppConfig)

// WithHost sets the server host.
func WithHost(host string) AppConfigOption {
	return func(c *AppConfig) { c.host = host }
}

// WithPort sets the server port.
func WithPort(port int) AppConfigOption {
	return func(c *AppConfig) { c.port = port }
}

// WithDataDir sets the data directory. A default SQLite URL follows it.
func WithDataDir(dir string) AppConfigOption {
	return func(c *AppConfig) {
		c.dataDir = dir
		if c.dbURL == "" || strings.HasSuffix(c.dbURL, DefaultDBFile) {
			c.dbURL = "sqlite:///" + filepath.Join(dir, DefaultDBFile)
		}
	}
}

// WithDBURL sets the database URL.
func WithDBURL(url string) AppConfigOption {
	return func(c *AppConfig) { c.dbURL = url }
}

// WithLogLevel sets the log level.
func WithLogLevel(level string) AppConfigOption {
	return func(c *AppConfig) { c.logLevel = level }
}

// WithLogFormat sets the log format.
func WithLogFormat(format LogFormat) AppConfigOption {
	return func(c *AppConfig) { c.logFormat = format }
}

// WithAPIKeys sets the API keys.
func WithAPIKeys(keys []string) AppConfigOption {
	return func(c *AppConfig) {
		c.apiKeys = make([]string, len(keys))
		copy(c.apiKeys, keys)
	}
}

// WithCORSAllowedOrigins sets the origins allowed to call the HTTP API.
func WithCORSAllowedOrigins(origins []string) AppConfigOption {
	return func(c *AppConfig) {
		c.corsAllowedOrigins = make([]string, len(origins))
		copy(c.corsAllowedOrigins, origins)
	}
}

// WithPool sets the database pool configuration.
func WithPool(p PoolConfig) AppConfigOption {
	return func(c *AppConfig) { c.pool = p }
}

// WithRequestTimeout sets the HTTP API request timeout.
func WithRequestTimeout(d time.Duration) AppConfigOption {
	return func(c *AppConfig) {
		if d > 0 {
			c.requestTimeout = d
		}
	}
}

// NewAppConfigWithOptions creates an AppConfig with functional options.
func NewAppConfigWithOptions(opts ...AppConfigOption) AppConfig {
	c := NewAppConfig()
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Apply returns a new AppConfig with the given options applied.
func (c AppConfig) Apply(opts ...AppConfigOption) AppConfig {
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// LogAttrs returns slog attributes for logging the configuration.
// API keys are reported as a count.
func (c AppConfig) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String("addr", c.Addr()),
		slog.String("data_dir", c.dataDir),
		slog.String("log_level", c.logLevel),
		slog.String("db_url", c.maskedDBURL()),
		slog.Int("api_keys_count", len(c.apiKeys)),
		slog.Int("cors_origins_count", len(c.corsAllowedOrigins)),
		slog.Int("db_max_open_conns", c.pool.MaxOpenConns()),
	}
}

func (c AppConfig) maskedDBURL() string {
	if c.dbURL == "" {
		return "(default)"
	}
	if strings.HasPrefix(c.dbURL, "sqlite:") {
		return c.dbURL
	}
	return "postgres://***@***"
}

// ParseList parses a comma-separated string, dropping blank entries.
func ParseList(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	items := make([]string, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
