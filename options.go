package catalog

import (
	"log/slog"

	"github.com/helixml/catalog/internal/config"
)

type databaseType int

const (
	databaseUnset databaseType = iota
	databaseSQLite
	databasePostgres
	databaseURL
)

type clientConfig struct {
	database    databaseType
	dbPath      string
	dbDSN       string
	logger      *slog.Logger
	pool        *config.PoolConfig
	skipMigrate bool
}

func newClientConfig() *clientConfig {
	return &clientConfig{}
}

// Option configures the Client.
type Option func(*clientConfig)

// WithSQLite stores the catalog in the SQLite file at path.
// ":memory:" opens a private in-memory database.
func WithSQLite(path string) Option {
	return func(c *clientConfig) {
		c.database = databaseSQLite
		c.dbPath = path
	}
}

// WithPostgres stores the catalog in PostgreSQL.
func WithPostgres(dsn string) Option {
	return func(c *clientConfig) {
		c.database = databasePostgres
		c.dbDSN = dsn
	}
}

// WithDatabaseURL selects the database from a URL such as
// "sqlite:///data/catalog.db" or "postgres://user@host/catalog".
func WithDatabaseURL(url string) Option {
	return func(c *clientConfig) {
		c.database = databaseURL
		c.dbDSN = url
	}
}

// WithLogger sets a custom logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = l
	}
}

// WithPool sets connection pool limits.
func WithPool(p config.PoolConfig) Option {
	return func(c *clientConfig) {
		c.pool = &p
	}
}

// WithSkipMigrate opens the database without running migrations. The schema
// is still validated.
func WithSkipMigrate() Option {
	return func(c *clientConfig) {
		c.skipMigrate = true
	}
}

func buildDatabaseURL(cfg *clientConfig) (string, error) {
	switch cfg.database {
	case databaseSQLite:
		return "sqlite:///" + cfg.dbPath, nil
	case databasePostgres, databaseURL:
		return cfg.dbDSN, nil
	default:
		return "", ErrNoDatabase
	}
}
