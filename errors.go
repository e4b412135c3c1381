package catalog

import "errors"

// Client errors.
var (
	// ErrNoDatabase indicates New was called without a database option.
	ErrNoDatabase = errors.New("catalog: no database configured")

	// ErrClientClosed indicates the client has been closed.
	ErrClientClosed = errors.New("catalog: client is closed")
)
