package cqltable

import (
	"context"
	"fmt"
	"time"

	"github.com/gocql/gocql"

	"github.com/NunuM/cqltable/internal/logging"
	"github.com/NunuM/cqltable/internal/metrics"
	"github.com/NunuM/cqltable/types"
)

// Session executes generated statements against a Cassandra cluster through
// an underlying gocql session.
//
// The compiler itself never touches the network; Session is the glue between
// descriptors and the driver, the counterpart of the driver wiring in the
// worked example. It is safe for concurrent use, since it holds no mutable
// state beyond the gocql session it wraps.
type Session struct {
	session *gocql.Session
	config  *SessionConfig
}

// NewSession wraps a gocql session for executing generated statements.
//
// The caller keeps ownership of the gocql session; closing the Session
// closes it.
//
// Parameters:
//   - session: Connected gocql session (required)
//   - opts: Optional configuration options
//
// Returns:
//   - *Session: The executor session
//   - error: types.ErrNilSession when session is nil
func NewSession(session *gocql.Session, opts ...Option) (*Session, error) {
	if session == nil {
		return nil, types.ErrNilSession
	}

	config := DefaultSessionConfig()
	for _, opt := range opts {
		opt(config)
	}

	if config.Logger == nil {
		config.Logger = logging.NewNopLogger()
	}
	if config.Metrics == nil {
		config.Metrics = metrics.NewNopMetrics()
	}

	return &Session{session: session, config: config}, nil
}

// CreateTable executes the table's CREATE TABLE IF NOT EXISTS statement.
func (s *Session) CreateTable(ctx context.Context, t *Table) error {
	s.config.Logger.Info("creating table", "keyspace", t.Keyspace(), "table", t.Name())
	return s.exec(ctx, "create", t.CreateCQL(), nil)
}

// DropTable executes the table's DROP TABLE IF EXISTS statement.
func (s *Session) DropTable(ctx context.Context, t *Table) error {
	s.config.Logger.Info("dropping table", "keyspace", t.Keyspace(), "table", t.Name())
	return s.exec(ctx, "drop", t.DropCQL(), nil)
}

// Store inserts the record's current values.
func (s *Session) Store(ctx context.Context, t *Table, rec Record) error {
	stmt := t.StoreQuery(rec)
	return s.exec(ctx, "insert", stmt.Query, stmt.Args)
}

// Update rewrites every non-key column of the record's row.
//
// Returns types.ErrNoUpdatableColumns when the table consists solely of key
// columns.
func (s *Session) Update(ctx context.Context, t *Table, rec Record) error {
	stmt, err := t.UpdateQuery(rec)
	if err != nil {
		return err
	}
	return s.exec(ctx, "update", stmt.Query, stmt.Args)
}

// Delete removes the record's row, keyed on its partition and clustering
// key values.
func (s *Session) Delete(ctx context.Context, t *Table, rec Record) error {
	stmt := t.DeleteQuery(rec)
	return s.exec(ctx, "delete", stmt.Query, stmt.Args)
}

// Select executes a partition-key lookup with the given projection and key
// values and returns the driver iterator for row scanning.
func (s *Session) Select(ctx context.Context, t *Table, p Projection, keys ...any) *gocql.Iter {
	stmt := t.SelectByPrimaryKeys(p)
	s.config.Metrics.IncQueryTotal("select")

	return s.query(ctx, stmt, keys).Iter()
}

// Close closes the underlying gocql session.
func (s *Session) Close() {
	s.session.Close()
}

func (s *Session) exec(ctx context.Context, op, stmt string, args []any) error {
	start := time.Now()
	s.config.Metrics.IncQueryTotal(op)

	err := s.query(ctx, stmt, args).Exec()
	s.config.Metrics.ObserveQueryDuration(op, time.Since(start).Seconds())
	if err != nil {
		s.config.Metrics.IncQueryError(op)
		s.config.Logger.Error("statement failed", "op", op, "query", stmt, "error", err)

		return fmt.Errorf("cqltable: %s failed: %w", op, err)
	}

	s.config.Logger.Debug("statement executed", "op", op, "query", stmt)

	return nil
}

func (s *Session) query(ctx context.Context, stmt string, args []any) *gocql.Query {
	return s.session.Query(stmt, args...).
		WithContext(ctx).
		Consistency(s.config.Consistency)
}
