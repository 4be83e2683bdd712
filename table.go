package cqltable

import (
	"strings"

	"github.com/NunuM/cqltable/types"
)

// Table is the immutable descriptor driving all statement generation.
//
// A Table is built once per record type with New and never mutated
// afterwards. Every generation method is a pure function of the descriptor,
// so a Table is safe to share between goroutines without locking and
// generated statements may be memoized for its lifetime.
type Table struct {
	keyspace string
	name     string
	options  []string
	columns  []Column

	cls classification
}

// TableOption configures a Table during construction.
type TableOption func(*Table)

// WithOptions sets the table's storage options from a single raw string of
// `|`-separated WITH clauses, e.g.
//
//	cqltable.WithOptions("comment='users' | COMPACTION = {'class':'SizeTieredCompactionStrategy'}")
//
// Clause order is preserved. Empty or whitespace-only segments are skipped
// so a stray delimiter never produces a malformed AND chain.
func WithOptions(raw string) TableOption {
	return func(t *Table) {
		for _, clause := range strings.Split(raw, "|") {
			clause = strings.TrimSpace(clause)
			if clause == "" {
				continue
			}
			t.options = append(t.options, clause)
		}
	}
}

// WithOptionClauses appends individual WITH clauses, order preserved.
// Empty or whitespace-only clauses are skipped.
func WithOptionClauses(clauses ...string) TableOption {
	return func(t *Table) {
		for _, clause := range clauses {
			clause = strings.TrimSpace(clause)
			if clause == "" {
				continue
			}
			t.options = append(t.options, clause)
		}
	}
}

// New creates a table descriptor and validates its key structure.
//
// Column order is significant: it drives the DDL column list and the INSERT
// column list. Key semantics come from each column's kind and position, not
// from declaration order, except as a tiebreak for duplicate positions.
//
// Parameters:
//   - keyspace: target keyspace, must be non-empty
//   - name: table name, must be non-empty (snake_case by CQL convention)
//   - columns: ordered column descriptors
//   - opts: optional configuration (storage options)
//
// Returns:
//   - *Table: the immutable descriptor
//   - error: types.ErrNoKeyspace, types.ErrNoTableName, or
//     types.ErrNoPartitionKey when the descriptor is malformed
func New(keyspace, name string, columns []Column, opts ...TableOption) (*Table, error) {
	if strings.TrimSpace(keyspace) == "" {
		return nil, types.ErrNoKeyspace
	}
	if strings.TrimSpace(name) == "" {
		return nil, types.ErrNoTableName
	}

	t := &Table{
		keyspace: keyspace,
		name:     name,
		columns:  make([]Column, len(columns)),
	}
	copy(t.columns, columns)

	for _, opt := range opts {
		opt(t)
	}

	cls, err := classify(t.columns)
	if err != nil {
		return nil, err
	}
	t.cls = cls

	// Normalize the declared columns too, so Columns() and the
	// classification agree on clustering order defaults.
	for i := range t.columns {
		if t.columns[i].Kind == KindClusterKey && t.columns[i].Order == "" {
			t.columns[i].Order = types.Desc
		}
	}

	return t, nil
}

// MustNew is like New but panics on a malformed descriptor.
//
// Intended for package-level table variables where a bad descriptor is a
// programming error:
//
//	var Users = cqltable.MustNew("app", "users", []cqltable.Column{...})
func MustNew(keyspace, name string, columns []Column, opts ...TableOption) *Table {
	t, err := New(keyspace, name, columns, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// Keyspace returns the keyspace the table lives in.
func (t *Table) Keyspace() string {
	return t.keyspace
}

// Name returns the table name.
func (t *Table) Name() string {
	return t.name
}

// Columns returns the declared columns in declaration order.
func (t *Table) Columns() []Column {
	cols := make([]Column, len(t.columns))
	copy(cols, t.columns)
	return cols
}

// PartitionKeys returns the partition-key columns, ascending by position.
func (t *Table) PartitionKeys() []Column {
	cols := make([]Column, len(t.cls.partitionKeys))
	copy(cols, t.cls.partitionKeys)
	return cols
}

// ClusterKeys returns the clustering columns, ascending by position.
func (t *Table) ClusterKeys() []Column {
	cols := make([]Column, len(t.cls.clusterKeys))
	copy(cols, t.cls.clusterKeys)
	return cols
}

// Options returns the parsed WITH clauses, order preserved.
func (t *Table) Options() []string {
	opts := make([]string, len(t.options))
	copy(opts, t.options)
	return opts
}

// qualifiedName returns "<keyspace>.<table>".
func (t *Table) qualifiedName() string {
	return t.keyspace + "." + t.name
}

// nonKeyColumns returns the updatable columns: everything outside the
// partition and clustering keys, declaration order preserved. Static
// columns are included since CQL allows updating them.
func (t *Table) nonKeyColumns() []Column {
	var cols []Column
	for _, col := range t.columns {
		if t.cls.isKeyColumn(col.Name) {
			continue
		}
		cols = append(cols, col)
	}
	return cols
}

// keyColumns returns the WHERE-clause columns for the requested selectivity:
// partition keys only, or partition keys followed by clustering keys.
func (t *Table) keyColumns(withCluster bool) []Column {
	cols := make([]Column, 0, len(t.cls.partitionKeys)+len(t.cls.clusterKeys))
	cols = append(cols, t.cls.partitionKeys...)
	if withCluster {
		cols = append(cols, t.cls.clusterKeys...)
	}
	return cols
}
