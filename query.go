package cqltable

// Statement is a generated CQL template together with the values bound to
// its placeholders, ready to hand to a driver.
type Statement struct {
	// Query is the parameterized CQL text.
	Query string

	// Args are the bound values, one per placeholder, in placeholder order.
	Args []any
}

// Record provides read access to a row's field values keyed by column name.
//
// The instance-level builders (StoreQuery, UpdateQuery, DeleteQuery) are the
// only operations that read actual field values; everything else is a pure
// function of the descriptor. The bind package adapts tagged structs to this
// interface; RecordMap is the map-based implementation.
type Record interface {
	// ColumnValue returns the current value of the named column.
	ColumnValue(name string) any
}

// RecordMap adapts a plain map to the Record interface.
type RecordMap map[string]any

// Compile-time assertion that RecordMap implements Record.
var _ Record = (RecordMap)(nil)

// ColumnValue returns the mapped value, or nil for unknown columns.
func (r RecordMap) ColumnValue(name string) any {
	return r[name]
}

// StoreQuery builds the bound INSERT for a record: the InsertCQL template
// with one value per declared column, in declaration order.
func (t *Table) StoreQuery(rec Record) Statement {
	args := make([]any, len(t.columns))
	for i, col := range t.columns {
		args[i] = rec.ColumnValue(col.Name)
	}

	return Statement{Query: t.InsertCQL(), Args: args}
}

// UpdateQuery builds the bound UPDATE for a record. The SET list covers
// every non-key column; the WHERE clause covers the partition keys followed
// by the clustering keys when the table has any. Values are ordered to
// match: updated columns first, then key columns in WHERE order.
//
// Returns:
//   - Statement: the bound update
//   - error: types.ErrNoUpdatableColumns when every column is part of the key
func (t *Table) UpdateQuery(rec Record) (Statement, error) {
	withCluster := len(t.cls.clusterKeys) > 0

	stmt, err := t.updateCQL(nil, withCluster)
	if err != nil {
		return Statement{}, err
	}

	nonKeys := t.nonKeyColumns()
	keys := t.keyColumns(withCluster)

	args := make([]any, 0, len(nonKeys)+len(keys))
	for _, col := range nonKeys {
		args = append(args, rec.ColumnValue(col.Name))
	}
	for _, col := range keys {
		args = append(args, rec.ColumnValue(col.Name))
	}

	return Statement{Query: stmt, Args: args}, nil
}

// DeleteQuery builds the bound DELETE for a record, keyed on the partition
// keys plus the clustering keys when the table has any. Values are the key
// column values in WHERE order.
func (t *Table) DeleteQuery(rec Record) Statement {
	withCluster := len(t.cls.clusterKeys) > 0

	var stmt string
	if withCluster {
		stmt = t.DeleteByPrimaryAndClusterKeys()
	} else {
		stmt = t.DeleteByPrimaryKeys()
	}

	keys := t.keyColumns(withCluster)
	args := make([]any, len(keys))
	for i, col := range keys {
		args[i] = rec.ColumnValue(col.Name)
	}

	return Statement{Query: stmt, Args: args}
}
