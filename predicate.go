package cqltable

import "strings"

// wherePredicate renders the "<col>=? AND <col>=?" fragment of a keyed DML
// statement over the given ordered columns. An empty column list yields an
// empty string, and the caller omits the WHERE keyword entirely.
func wherePredicate(columns []Column) string {
	if len(columns) == 0 {
		return ""
	}

	parts := make([]string, len(columns))
	for i, col := range columns {
		parts[i] = col.Name + "=?"
	}

	return strings.Join(parts, " AND ")
}

// withWhere appends " WHERE <predicate>" to stmt, or returns stmt untouched
// when the predicate is empty.
func withWhere(stmt, predicate string) string {
	if predicate == "" {
		return stmt
	}
	return stmt + " WHERE " + predicate
}
