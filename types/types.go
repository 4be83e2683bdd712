package types

import "errors"

// Order is the sort direction of a clustering column.
type Order string

const (
	// Asc sorts rows within a partition in ascending clustering order.
	Asc Order = "ASC"
	// Desc sorts rows within a partition in descending clustering order.
	Desc Order = "DESC"
)

// String returns the CQL token for the order.
func (o Order) String() string {
	return string(o)
}

// Valid reports whether the order is one of the two CQL sort directions.
func (o Order) Valid() bool {
	return o == Asc || o == Desc
}

// Logger defines the logging interface used by cqltable components.
//
// Methods accept a message and alternating key-value pairs, matching the
// style of structured loggers like slog and zap's sugared logger:
//
//	logger.Info("creating table", "keyspace", t.Keyspace(), "table", t.Name())
//
// Implementations must be safe for concurrent use.
type Logger interface {
	// Debug logs a message at debug level with optional key-value pairs.
	Debug(msg string, keysAndValues ...any)

	// Info logs a message at info level with optional key-value pairs.
	Info(msg string, keysAndValues ...any)

	// Warn logs a message at warn level with optional key-value pairs.
	Warn(msg string, keysAndValues ...any)

	// Error logs a message at error level with optional key-value pairs.
	Error(msg string, keysAndValues ...any)

	// Fatal logs a message at fatal level with optional key-value pairs.
	// Implementations may exit the process.
	Fatal(msg string, keysAndValues ...any)
}

// Sentinel errors for descriptor and generation failures.
var (
	// ErrNoPartitionKey indicates a table descriptor with zero partition-key
	// columns. A CQL table cannot exist without a partition key, so this is
	// raised at descriptor construction, before any statement is generated.
	ErrNoPartitionKey = errors.New("cqltable: table has no partition key column")

	// ErrNoUpdatableColumns indicates that an update statement was requested
	// but every candidate column is part of the primary key. Key columns are
	// immutable via UPDATE in CQL, so there is nothing to set.
	ErrNoUpdatableColumns = errors.New("cqltable: table has no updatable columns")

	// ErrNoKeyspace indicates a table descriptor with an empty keyspace.
	ErrNoKeyspace = errors.New("cqltable: keyspace cannot be empty")

	// ErrNoTableName indicates a table descriptor with an empty table name.
	ErrNoTableName = errors.New("cqltable: table name cannot be empty")

	// ErrNilSession indicates that a nil gocql session was provided.
	ErrNilSession = errors.New("cqltable: session cannot be nil")
)
