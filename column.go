package cqltable

import "github.com/NunuM/cqltable/types"

// ColumnKind identifies the role a column plays in the table's key structure.
type ColumnKind int

const (
	// KindRegular is an ordinary data column. It is never part of a key and
	// never appears in a generated WHERE clause.
	KindRegular ColumnKind = iota

	// KindPrimaryKey marks the single partition key of a table that has no
	// compound key. If any compound-key column is also declared, the compound
	// set takes precedence and the primary-key column is demoted to a regular
	// column.
	KindPrimaryKey

	// KindCompoundKey marks a member of a multi-column partition key. The
	// Position field orders members inside the partition-key tuple.
	KindCompoundKey

	// KindClusterKey marks a clustering column. The Position field orders
	// clustering columns; the Order field feeds CLUSTERING ORDER BY.
	KindClusterKey

	// KindStatic marks a column whose value is shared by every row of a
	// partition. Static columns only make sense on tables with at least one
	// clustering column; the compiler does not enforce this, matching the
	// lenient behavior of Cassandra's own tooling around it.
	KindStatic
)

// Column describes one column of a table.
//
// The Type field is an opaque CQL type token ("TEXT", "UUID",
// "map<text, int>", ...). It is emitted verbatim into generated DDL and
// never validated against a live schema.
type Column struct {
	// Name is the CQL column identifier.
	Name string

	// Type is the CQL type token, emitted verbatim.
	Type string

	// Kind is the key role of the column.
	Kind ColumnKind

	// Position ranks the column inside its key tuple. Only meaningful for
	// KindCompoundKey and KindClusterKey; ranks are 1-based by convention
	// and a lone primary key has the implicit position 0.
	Position int

	// Order is the clustering sort direction. Only meaningful for
	// KindClusterKey; defaults to DESC when left empty.
	Order types.Order
}

// NewColumn creates a regular data column.
func NewColumn(name, cqlType string) Column {
	return Column{Name: name, Type: cqlType, Kind: KindRegular}
}

// NewPrimaryKey creates the single partition-key column of a table.
func NewPrimaryKey(name, cqlType string) Column {
	return Column{Name: name, Type: cqlType, Kind: KindPrimaryKey}
}

// NewCompoundKey creates a member of a multi-column partition key.
//
// Parameters:
//   - name: CQL column identifier
//   - cqlType: CQL type token
//   - position: 1-based rank inside the partition-key tuple
func NewCompoundKey(name, cqlType string, position int) Column {
	return Column{Name: name, Type: cqlType, Kind: KindCompoundKey, Position: position}
}

// NewClusterKey creates a clustering column.
//
// Parameters:
//   - name: CQL column identifier
//   - cqlType: CQL type token
//   - position: 1-based rank among the clustering columns
//   - order: sort direction for CLUSTERING ORDER BY (empty defaults to DESC)
func NewClusterKey(name, cqlType string, position int, order types.Order) Column {
	return Column{Name: name, Type: cqlType, Kind: KindClusterKey, Position: position, Order: order}
}

// NewStaticColumn creates a static column, shared by all rows of a partition.
func NewStaticColumn(name, cqlType string) Column {
	return Column{Name: name, Type: cqlType, Kind: KindStatic}
}

// IsKey reports whether the column participates in the primary key
// (partition or clustering).
func (c Column) IsKey() bool {
	return c.Kind == KindPrimaryKey || c.Kind == KindCompoundKey || c.Kind == KindClusterKey
}

// IsStatic reports whether the column carries the STATIC qualifier.
func (c Column) IsStatic() bool {
	return c.Kind == KindStatic
}

// definition renders the column as it appears in a CREATE TABLE column list.
func (c Column) definition() string {
	if c.IsStatic() {
		return c.Name + " " + c.Type + " STATIC"
	}
	return c.Name + " " + c.Type
}
