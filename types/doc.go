// Package types provides shared types and error definitions for the cqltable library.
//
// This is a leaf package with zero cqltable imports to prevent import cycles.
// All packages in cqltable can safely import this package.
//
// # Types
//
// Order is the sort direction of a clustering column inside its partition:
//
//	const (
//	    Asc  Order = "ASC"
//	    Desc Order = "DESC"
//	)
//
// Logger and MetricsCollector are the pluggable observability interfaces
// consumed by the executor session. Both have no-op defaults under
// internal/logging and internal/metrics, so nil checks are never needed.
//
// # Errors
//
// Sentinel errors are provided for descriptor and generation failures:
//
//   - ErrNoPartitionKey: descriptor declares no partition-key column
//   - ErrNoUpdatableColumns: every column is part of the primary key
//   - ErrNoKeyspace: descriptor declares an empty keyspace
//   - ErrNoTableName: descriptor declares an empty table name
//   - ErrNilSession: a nil gocql session was provided to the executor
package types
