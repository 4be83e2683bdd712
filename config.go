package cqltable

import (
	"github.com/gocql/gocql"

	"github.com/NunuM/cqltable/internal/logging"
	"github.com/NunuM/cqltable/internal/metrics"
	"github.com/NunuM/cqltable/types"
)

// SessionConfig holds configuration for the executor Session.
type SessionConfig struct {
	Logger      types.Logger
	Metrics     types.MetricsCollector
	Consistency gocql.Consistency
}

// DefaultSessionConfig returns a SessionConfig with sensible defaults:
// a no-op logger, a no-op metrics collector, and the driver's default
// consistency (Quorum).
func DefaultSessionConfig() *SessionConfig {
	return &SessionConfig{
		Logger:      logging.NewNopLogger(),
		Metrics:     metrics.NewNopMetrics(),
		Consistency: gocql.Quorum,
	}
}

// Option configures a SessionConfig.
type Option func(*SessionConfig)

// WithLogger sets the logger used by the session.
//
// Parameters:
//   - logger: The logger to use (nil falls back to the no-op logger)
//
// Returns:
//   - Option: Configuration option
func WithLogger(logger types.Logger) Option {
	return func(c *SessionConfig) {
		c.Logger = logger
	}
}

// WithMetrics sets the metrics collector used by the session.
//
// Parameters:
//   - collector: The metrics collector to use (nil falls back to no-op)
//
// Returns:
//   - Option: Configuration option
func WithMetrics(collector types.MetricsCollector) Option {
	return func(c *SessionConfig) {
		c.Metrics = collector
	}
}

// WithConsistency sets the consistency level applied to every statement
// the session executes.
//
// Parameters:
//   - consistency: The gocql consistency level
//
// Returns:
//   - Option: Configuration option
func WithConsistency(consistency gocql.Consistency) Option {
	return func(c *SessionConfig) {
		c.Consistency = consistency
	}
}
