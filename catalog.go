// Package catalog attaches ordered attribute values to catalog entities.
//
// Attributes own a set of values. An attribute is enabled for an entity kind
// through a link on the entity's type (product type, page type, or the site
// settings for categories and collections). Associating values with an
// entity validates ownership, reuses or creates the entity's assignment,
// replaces its value set and stores the requested display order.
//
// Basic usage:
//
//	client, err := catalog.New(catalog.WithSQLite("catalog.db"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	assignment, err := client.Associate(ctx, attribute.KindProduct, productID, colorID, []int64{green, red})
package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync/atomic"

	"github.com/helixml/catalog/application/service"
	"github.com/helixml/catalog/domain/attribute"
	"github.com/helixml/catalog/infrastructure/persistence"
	"github.com/helixml/catalog/infrastructure/seed"
	"github.com/helixml/catalog/internal/database"
)

// Client is the main entry point for the catalog library.
//
//	client.Attributes.Values(ctx, attributeID)
//	client.Associate(ctx, attribute.KindPage, pageID, attributeID, valueIDs)
type Client struct {
	Attributes *service.Attribute
	Catalog    persistence.CatalogStore

	db          database.Database
	attributes  persistence.AttributeStore
	links       persistence.LinkStore
	assignments persistence.AssignmentStore

	logger *slog.Logger
	closed atomic.Bool
}

// New opens the database, migrates the schema and wires the stores.
func New(opts ...Option) (*Client, error) {
	cfg := newClientConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	dbURL, err := buildDatabaseURL(cfg)
	if err != nil {
		return nil, err
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	ctx := context.Background()
	db, err := database.NewDatabaseWithLogger(ctx, dbURL, logger)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if cfg.pool != nil {
		if err := db.ConfigurePool(cfg.pool.MaxOpenConns(), cfg.pool.MaxIdleConns(), cfg.pool.ConnMaxLifetime()); err != nil {
			errClose := db.Close()
			return nil, errors.Join(fmt.Errorf("configure pool: %w", err), errClose)
		}
	}

	if !cfg.skipMigrate {
		if err := persistence.AutoMigrate(db); err != nil {
			errClose := db.Close()
			return nil, errors.Join(fmt.Errorf("auto migrate: %w", err), errClose)
		}
	}

	if err := persistence.ValidateSchema(db); err != nil {
		errClose := db.Close()
		return nil, errors.Join(fmt.Errorf("validate schema: %w", err), errClose)
	}

	c := &Client{
		Catalog:     persistence.NewCatalogStore(db),
		db:          db,
		attributes:  persistence.NewAttributeStore(db),
		links:       persistence.NewLinkStore(db),
		assignments: persistence.NewAssignmentStore(db),
		logger:      logger,
	}
	c.Attributes = service.NewAttribute(c.attributes, c.links, c.assignments, c.Catalog)
	return c, nil
}

// Associate replaces the values of attributeID on the entity and orders them
// as given. All writes apply in one transaction.
func (c *Client) Associate(ctx context.Context, kind attribute.Kind, entityID, attributeID int64, valueIDs []int64) (attribute.Assignment, error) {
	if c.closed.Load() {
		return attribute.Assignment{}, ErrClientClosed
	}
	assignment, err := database.WithTransactionResult(ctx, c.db, func(ctx context.Context) (attribute.Assignment, error) {
		return c.Attributes.AssociateByID(ctx, kind, entityID, attributeID, valueIDs)
	})
	if err != nil {
		return attribute.Assignment{}, err
	}
	c.logger.DebugContext(ctx, "attribute values associated",
		slog.String("kind", kind.String()),
		slog.Int64("entity_id", entityID),
		slog.Int64("attribute_id", attributeID),
		slog.Int("values", len(valueIDs)),
	)
	return assignment, nil
}

// Assigned returns the values of attributeID on the entity in display order.
func (c *Client) Assigned(ctx context.Context, kind attribute.Kind, entityID, attributeID int64) (attribute.Assignment, error) {
	if c.closed.Load() {
		return attribute.Assignment{}, ErrClientClosed
	}
	return c.Attributes.AssignedByID(ctx, kind, entityID, attributeID)
}

// Seed parses a YAML fixture from r and loads it in one transaction.
func (c *Client) Seed(ctx context.Context, r io.Reader) (seed.Index, error) {
	if c.closed.Load() {
		return seed.Index{}, ErrClientClosed
	}
	doc, err := seed.Parse(r)
	if err != nil {
		return seed.Index{}, err
	}
	stores := seed.Stores{
		Attributes: c.attributes,
		Links:      c.links,
		Catalog:    c.Catalog,
		Associator: c.Attributes,
	}
	return seed.Load(ctx, c.db, stores, doc)
}

// Transaction runs fn in a database transaction. Client and service calls
// made with the context passed to fn join it.
func (c *Client) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if c.closed.Load() {
		return ErrClientClosed
	}
	return database.WithTransaction(ctx, c.db, fn)
}

// Ping checks the database connection.
func (c *Client) Ping(ctx context.Context) error {
	if c.closed.Load() {
		return ErrClientClosed
	}
	return c.db.Ping(ctx)
}

// Logger returns the client's logger.
func (c *Client) Logger() *slog.Logger {
	return c.logger
}

// Close releases the database connection.
func (c *Client) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return ErrClientClosed
	}
	if err := c.db.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}
	c.logger.Info("catalog client closed")
	return nil
}
