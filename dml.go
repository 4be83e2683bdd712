package cqltable

import (
	"strings"

	"github.com/NunuM/cqltable/types"
)

// Projection selects what a generated SELECT statement returns: every
// column, a row count, or an explicit column list.
//
// The zero value projects all columns.
type Projection struct {
	count   bool
	columns []string
}

// ProjectAll projects every column (SELECT *).
func ProjectAll() Projection {
	return Projection{}
}

// ProjectCount projects a row count (SELECT COUNT(*)).
func ProjectCount() Projection {
	return Projection{count: true}
}

// ProjectColumns projects an explicit column list, order preserved.
func ProjectColumns(names ...string) Projection {
	return Projection{columns: names}
}

// render returns the projection's select-list text.
func (p Projection) render() string {
	switch {
	case p.count:
		return "COUNT(*)"
	case len(p.columns) > 0:
		return strings.Join(p.columns, ", ")
	default:
		return "*"
	}
}

// SelectByPrimaryKeys generates a SELECT template keyed on the partition
// key columns only:
//
//	SELECT <projection> FROM <keyspace>.<table> WHERE <pk1>=? AND <pk2>=?
func (t *Table) SelectByPrimaryKeys(p Projection) string {
	return t.selectCQL(p, false)
}

// SelectByPrimaryAndClusterKeys generates a SELECT template keyed on the
// partition key columns followed by the clustering columns.
func (t *Table) SelectByPrimaryAndClusterKeys(p Projection) string {
	return t.selectCQL(p, true)
}

func (t *Table) selectCQL(p Projection, withCluster bool) string {
	stmt := "SELECT " + p.render() + " FROM " + t.qualifiedName()
	return withWhere(stmt, wherePredicate(t.keyColumns(withCluster)))
}

// UpdateByPrimaryKeys generates an UPDATE template keyed on the partition
// key columns:
//
//	UPDATE <keyspace>.<table> SET <col>=?, ... WHERE <pk1>=? AND <pk2>=?
//
// Key columns are immutable via UPDATE in CQL, so any requested column that
// belongs to the primary key is dropped from the SET list. Requesting no
// columns at all updates every non-key column.
//
// Returns:
//   - string: the UPDATE template
//   - error: types.ErrNoUpdatableColumns when the SET list would be empty
func (t *Table) UpdateByPrimaryKeys(columns ...string) (string, error) {
	return t.updateCQL(columns, false)
}

// UpdateByPrimaryAndClusterKeys is UpdateByPrimaryKeys with the WHERE
// clause extended over the clustering columns.
func (t *Table) UpdateByPrimaryAndClusterKeys(columns ...string) (string, error) {
	return t.updateCQL(columns, true)
}

func (t *Table) updateCQL(columns []string, withCluster bool) (string, error) {
	set, err := t.updatableColumns(columns)
	if err != nil {
		return "", err
	}

	assignments := make([]string, len(set))
	for i, name := range set {
		assignments[i] = name + "=?"
	}

	stmt := "UPDATE " + t.qualifiedName() + " SET " + strings.Join(assignments, ", ")

	return withWhere(stmt, wherePredicate(t.keyColumns(withCluster))), nil
}

// updatableColumns resolves the SET list of an update: the requested names
// minus key columns, or every non-key column when none are requested.
func (t *Table) updatableColumns(requested []string) ([]string, error) {
	var set []string

	if len(requested) == 0 {
		for _, col := range t.nonKeyColumns() {
			set = append(set, col.Name)
		}
	} else {
		for _, name := range requested {
			if t.cls.isKeyColumn(name) {
				continue
			}
			set = append(set, name)
		}
	}

	if len(set) == 0 {
		return nil, types.ErrNoUpdatableColumns
	}

	return set, nil
}

// DeleteByPrimaryKeys generates a DELETE template keyed on the partition
// key columns:
//
//	DELETE FROM <keyspace>.<table> WHERE <pk1>=? AND <pk2>=?
func (t *Table) DeleteByPrimaryKeys() string {
	return withWhere("DELETE FROM "+t.qualifiedName(), wherePredicate(t.keyColumns(false)))
}

// DeleteByPrimaryAndClusterKeys is DeleteByPrimaryKeys with the WHERE
// clause extended over the clustering columns.
func (t *Table) DeleteByPrimaryAndClusterKeys() string {
	return withWhere("DELETE FROM "+t.qualifiedName(), wherePredicate(t.keyColumns(true)))
}

// InsertCQL generates the INSERT template covering every declared column in
// declaration order, keys included:
//
//	INSERT INTO <keyspace>.<table> (<col1>, <col2>, ...) VALUES (?, ?, ...)
func (t *Table) InsertCQL() string {
	names := make([]string, len(t.columns))
	marks := make([]string, len(t.columns))
	for i, col := range t.columns {
		names[i] = col.Name
		marks[i] = "?"
	}

	return "INSERT INTO " + t.qualifiedName() +
		" (" + strings.Join(names, ", ") + ") VALUES (" + strings.Join(marks, ", ") + ")"
}
